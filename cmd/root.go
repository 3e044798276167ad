/*
Copyright © 2025
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "askdoc",
	Short: "Ask questions against a chunked document",
	Long: `askdoc splits a source document into bounded chunks, caches the chunk
set in object storage, and serves a chat endpoint that reports the chunk
count for the active document.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	settingDefaultConfig()
}
