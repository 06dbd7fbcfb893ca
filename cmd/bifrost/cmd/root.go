/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/ssargent/bifrost/pkg/di"
)

// container holds the application dependencies. main injects it through
// SetContainer before Execute runs.
var container *di.Container

// SetContainer injects the dependency container used by the commands.
func SetContainer(c *di.Container) {
	container = c
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bifrost",
	Short: "Bifrost - Base64 Codec Toolkit",
	Long: `Bifrost is a base64 toolkit: a configurable codec with standard,
MIME and URL-safe profiles, exact error reporting and line wrapping,
exposed as a CLI and a small REST service.`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
