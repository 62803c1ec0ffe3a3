package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/exp/slog"
)

// TTL is the fixed validity window of an issued token.
const TTL = 8 * time.Hour

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)

type Servicer interface {
	Issue(identity string) (string, error)
	Verify(token string) (string, error)
}

// Service issues and verifies stateless HS256 session tokens. There is
// no server-side session store: validity is entirely determined by the
// signature and the embedded expiry.
type Service struct {
	secret []byte
	log    *slog.Logger

	// now is swappable in tests.
	now func() time.Time
}

type claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func NewService(secret string, log *slog.Logger) *Service {
	return &Service{
		secret: []byte(secret),
		log:    log.With("component", "session_service"),
		now:    time.Now,
	}
}

// Issue signs a token carrying the identity, valid for TTL from now.
func (s *Service) Issue(identity string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded identity.
func (s *Service) Verify(tokenString string) (string, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", ErrExpiredToken
	case err != nil:
		s.log.Debug("token verification failed", "error", err)
		return "", ErrInvalidToken
	case !token.Valid:
		return "", ErrInvalidToken
	}

	return c.Username, nil
}
