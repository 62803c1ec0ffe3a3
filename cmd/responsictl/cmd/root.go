package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "responsictl",
	Short: "Operational helper for the responsivas server",
	Long: `responsictl generates the secrets the server configuration needs:
the bcrypt hash for ADMIN_PASSWORD_HASH and fresh hex keys for
ENCRYPTION_KEY and JWT_SECRET.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(genkeyCmd)
}
