/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ssargent/bifrost/pkg/api"
	"github.com/ssargent/bifrost/pkg/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the Bifrost REST API server.

The server exposes encode and decode endpoints under /api/v1 (protected by
an API key) and Prometheus metrics at /metrics. Configuration comes from
the config file, overridden by flags.

Examples:
  bifrost serve
  bifrost serve --port 9000 --bind 0.0.0.0
  bifrost serve --config ./bifrost.yaml --api-key mysecretkey`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		cfg, err := loadServeConfig(configPath)
		if err != nil {
			cmd.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}

		// Override config with command line flags if provided
		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("bind") {
			cfg.Bind, _ = cmd.Flags().GetString("bind")
		}
		if cmd.Flags().Changed("api-key") {
			cfg.Security.APIKey, _ = cmd.Flags().GetString("api-key")
		}
		if cmd.Flags().Changed("max-body") {
			cfg.Limits.MaxBodyBytes, _ = cmd.Flags().GetInt64("max-body")
		}

		serverConfig, err := serverConfigFromSettings(cfg)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		if container == nil {
			cmd.Printf("Error: dependency container not initialized\n")
			os.Exit(1)
		}

		serverFactory := container.GetServerFactory()
		serverStarter := serverFactory.CreateServerStarter()

		cmd.Printf("🚀 Starting Bifrost server on %s:%d\n", serverConfig.Bind, serverConfig.Port)

		if err := serverStarter.StartServer(serverConfig); err != nil {
			cmd.Printf("Error starting server: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("config", "", "Path to config file (default: OS-specific location)")
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind server to")
	serveCmd.Flags().String("api-key", "", "API key for request authentication")
	serveCmd.Flags().Int64("max-body", 0, "Maximum request body size in bytes")
}

// loadServeConfig loads the config file, falling back to defaults when the
// file does not exist.
func loadServeConfig(configPath string) (*config.Config, error) {
	if config.ConfigExists(configPath) {
		return config.LoadConfig(configPath)
	}
	return config.DefaultConfig(), nil
}

// serverConfigFromSettings maps the file/flag settings onto the API server
// configuration. The bootstrap placeholder key is rejected: serving with it
// would leave the API open.
func serverConfigFromSettings(cfg *config.Config) (api.ServerConfig, error) {
	if cfg.Security.APIKey == "" || cfg.Security.APIKey == "auto" {
		return api.ServerConfig{}, fmt.Errorf("no API key configured: run 'bifrost init' or pass --api-key")
	}

	encoding, err := cfg.Encoding.Resolve()
	if err != nil {
		return api.ServerConfig{}, err
	}

	return api.ServerConfig{
		Port:         cfg.Port,
		Bind:         cfg.Bind,
		APIKey:       cfg.Security.APIKey,
		MaxBodyBytes: cfg.Limits.MaxBodyBytes,
		Encoding:     encoding,
	}, nil
}
