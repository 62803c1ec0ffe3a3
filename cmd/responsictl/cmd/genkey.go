package cmd

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"responsivas/internal/app/server/crypto"
)

var genkeyCmd = &cobra.Command{
	Use:   "genkey",
	Short: "Generate fresh keys for ENCRYPTION_KEY and JWT_SECRET",
	RunE: func(_ *cobra.Command, _ []string) error {
		cipherKey := make([]byte, crypto.KeyLen)
		if _, err := rand.Read(cipherKey); err != nil {
			return fmt.Errorf("generate cipher key: %w", err)
		}

		signingKey := make([]byte, 32)
		if _, err := rand.Read(signingKey); err != nil {
			return fmt.Errorf("generate signing key: %w", err)
		}

		color.Green("ENCRYPTION_KEY=%s", hex.EncodeToString(cipherKey))
		color.Green("JWT_SECRET=%s", hex.EncodeToString(signingKey))
		return nil
	},
}
