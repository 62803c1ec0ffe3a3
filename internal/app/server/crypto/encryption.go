package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrDecrypt is returned for any envelope that cannot be opened:
// malformed encoding, wrong key, or tampered ciphertext. Callers never
// see a partial plaintext.
var ErrDecrypt = errors.New("cannot decrypt envelope")

const (
	// KeyLen is the required cipher key length in bytes (AES-256).
	KeyLen = 32

	envelopeSep = ":"
)

// Cipher seals credential plaintexts into storable envelope strings and
// opens them back. The envelope is hex(nonce) + ":" + hex(ciphertext),
// AES-256-GCM with a fresh random nonce per call. Cipher holds only the
// immutable key and is safe for concurrent use.
type Cipher struct {
	key []byte
}

func New(key []byte) (*Cipher, error) {
	if len(key) != KeyLen {
		return nil, fmt.Errorf("cipher key must be %d bytes, got %d", KeyLen, len(key))
	}
	return &Cipher{key: key}, nil
}

// NewFromHex builds a Cipher from a 64-character hex key, the form the
// key takes in operational configuration.
func NewFromHex(keyHex string) (*Cipher, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("decode cipher key: %w", err)
	}
	return New(key)
}

// Seal encrypts plaintext into an envelope string. Every call draws a
// fresh nonce, so sealing the same plaintext twice yields different
// envelopes.
func (c *Cipher) Seal(plaintext string) (string, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create GCM: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(nonce) + envelopeSep + hex.EncodeToString(ciphertext), nil
}

// Open decrypts an envelope produced by Seal. Any failure — bad format,
// bad hex, wrong key, tampered ciphertext — comes back as ErrDecrypt.
func (c *Cipher) Open(envelope string) (string, error) {
	nonceHex, ctHex, ok := strings.Cut(envelope, envelopeSep)
	if !ok {
		return "", ErrDecrypt
	}

	nonce, err := hex.DecodeString(nonceHex)
	if err != nil {
		return "", ErrDecrypt
	}
	ciphertext, err := hex.DecodeString(ctHex)
	if err != nil {
		return "", ErrDecrypt
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create GCM: %w", err)
	}

	if len(nonce) != gcm.NonceSize() {
		return "", ErrDecrypt
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrDecrypt
	}

	return string(plaintext), nil
}
