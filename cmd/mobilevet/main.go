package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Exit codes returned by the CLI.
const (
	ExitSuccess    = 0
	ExitInputError = 1
	ExitCheckFail  = 2
)

var rootCmd = &cobra.Command{
	Use:   "mobilevet",
	Short: "Vet mobile OS version requirements across platforms",
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitInputError)
	}
}
