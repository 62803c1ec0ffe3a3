package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

var hashCost int

var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Generate the bcrypt hash for ADMIN_PASSWORD_HASH",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		fmt.Print("Confirm password: ")
		confirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		if string(password) != string(confirm) {
			return fmt.Errorf("passwords do not match")
		}
		if len(password) == 0 {
			return fmt.Errorf("password must not be empty")
		}

		hash, err := bcrypt.GenerateFromPassword(password, hashCost)
		if err != nil {
			return fmt.Errorf("generate hash: %w", err)
		}

		color.Green("ADMIN_PASSWORD_HASH=%s", hash)
		return nil
	},
}

func init() {
	hashCmd.Flags().IntVar(&hashCost, "cost", bcrypt.DefaultCost, "bcrypt cost factor")
}
