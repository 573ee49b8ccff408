package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "screener",
	Short: "Campus Hire resume screener",
	Long: `Terminal client for the Campus Hire resume screener: browse job
postings, upload resume spreadsheets, and run the screening analysis.
Also bundles the local backend the console talks to.`,
}

func main() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(consoleCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
