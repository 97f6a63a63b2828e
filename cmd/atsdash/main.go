// Package main provides the entry point for the ATS analytics dashboard.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "atsdash",
	Short: "ATS resume analytics dashboard",
	Long:  "atsdash scores stored resume versions against job-description keywords and serves the ATS analytics dashboard via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
