package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "vesting-panel",
	Short:         "Local panel for a token-vesting contract",
	Long:          "Serves a form and JSON API that sign vesting contract calls with a local encrypted key file.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(walletCmd)
}
