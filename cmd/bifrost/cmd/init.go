/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/ssargent/bifrost/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the Bifrost configuration file",
	Long: `Create the Bifrost configuration file with a generated API key.

This command will:
- Create the configuration directory
- Write a config file with sensible defaults
- Generate a secure API key for the REST server

Examples:
  bifrost init
  bifrost init --preset mime --print-key
  bifrost init --config ./bifrost.yaml --force`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		preset, _ := cmd.Flags().GetString("preset")
		printKey, _ := cmd.Flags().GetBool("print-key")
		force, _ := cmd.Flags().GetBool("force")

		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		if config.ConfigExists(configPath) && !force {
			cmd.Printf("Configuration already exists at %s. Use --force to overwrite.\n", configPath)
			return
		}

		cfg, err := config.BootstrapConfig(configPath, preset)
		if err != nil {
			cmd.Printf("Error creating configuration: %v\n", err)
			os.Exit(1)
		}

		cmd.Printf("✅ Configuration created at %s\n", configPath)
		cmd.Printf("Default encoding preset: %s\n", cfg.Encoding.Preset)

		if printKey {
			cmd.Printf("\n🔑 API key: %s\n", cfg.Security.APIKey)
			cmd.Printf("\n⚠️  Store this key securely! It is also saved in %s\n", configPath)
		} else {
			cmd.Printf("API key generated and saved in the config file.\n")
		}

		cmd.Printf("\nYou can now start the server with:\n")
		cmd.Printf("  bifrost serve --config %s\n", configPath)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("config", "", "Path to config file (default: OS-specific location)")
	initCmd.Flags().String("preset", "", "Default encoding preset (standard, mime, url, url-nopad)")
	initCmd.Flags().Bool("print-key", false, "Print the generated API key to console")
	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration")
}
