/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ssargent/bifrost/pkg/b64"
)

// Config represents the Bifrost configuration
type Config struct {
	Port     int      `yaml:"port"`
	Bind     string   `yaml:"bind"`
	Security Security `yaml:"security"`
	Encoding Encoding `yaml:"encoding"`
	Limits   Limits   `yaml:"limits"`
	Logging  Logging  `yaml:"logging"`
}

// Security contains security-related configuration
type Security struct {
	APIKey string `yaml:"api_key"`
}

// Encoding selects the default base64 behavior for the CLI and the HTTP
// service. A non-empty Preset wins over the individual fields.
type Encoding struct {
	Preset          string `yaml:"preset,omitempty"`
	Alphabet        string `yaml:"alphabet,omitempty"`
	Pad             bool   `yaml:"pad"`
	StripWhitespace bool   `yaml:"strip_whitespace"`
	WrapWidth       int    `yaml:"wrap_width"`
	LineEnding      string `yaml:"line_ending,omitempty"`
}

// Limits contains request size limits for the HTTP service
type Limits struct {
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Port: 8080,
		Bind: "127.0.0.1",
		Security: Security{
			APIKey: "auto",
		},
		Encoding: Encoding{
			Preset: "standard",
		},
		Limits: Limits{
			MaxBodyBytes: 32 << 20, // 32 MiB
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// Resolve maps the encoding section onto a codec configuration.
func (e Encoding) Resolve() (b64.Config, error) {
	if e.Preset != "" {
		cfg, ok := b64.LookupPreset(e.Preset)
		if !ok {
			return b64.Config{}, fmt.Errorf("unknown encoding preset: %q", e.Preset)
		}
		return cfg, nil
	}

	var cs b64.CharacterSet
	switch e.Alphabet {
	case "", "standard":
		cs = b64.Standard
	case "url", "url-safe":
		cs = b64.URLSafe
	default:
		return b64.Config{}, fmt.Errorf("unknown encoding alphabet: %q", e.Alphabet)
	}

	var ending b64.LineEnding
	switch e.LineEnding {
	case "", "lf":
		ending = b64.LF
	case "crlf":
		ending = b64.CRLF
	default:
		return b64.Config{}, fmt.Errorf("unknown line ending: %q", e.LineEnding)
	}

	if e.WrapWidth < 0 {
		return b64.Config{}, fmt.Errorf("negative wrap width: %d", e.WrapWidth)
	}

	return b64.NewConfig(cs, e.Pad, e.StripWhitespace, b64.Wrap(e.WrapWidth, ending)), nil
}

// LoadConfig loads configuration from the specified path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	// Validate path to prevent directory traversal
	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if _, err := config.Encoding.Resolve(); err != nil {
		return nil, fmt.Errorf("invalid encoding section: %w", err)
	}

	return &config, nil
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write with secure permissions (0600)
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateSecureKey generates a cryptographically secure random key
func GenerateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate secure key: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// BootstrapConfig creates a new configuration with a generated API key.
// A non-empty preset becomes the default encoding.
func BootstrapConfig(configPath string, preset string) (*Config, error) {
	config := DefaultConfig()
	if preset != "" {
		config.Encoding = Encoding{Preset: preset}
	}

	if _, err := config.Encoding.Resolve(); err != nil {
		return nil, fmt.Errorf("invalid encoding section: %w", err)
	}

	apiKey, err := GenerateSecureKey(32) // 256 bits
	if err != nil {
		return nil, fmt.Errorf("failed to generate API key: %w", err)
	}
	config.Security.APIKey = apiKey

	// Save the configuration
	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save bootstrap config: %w", err)
	}

	return config, nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	// Use OS-specific default locations
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./bifrost.yaml"
	}

	// For Linux/macOS, use ~/.config/bifrost/config.yaml
	configDir := filepath.Join(homeDir, ".config", "bifrost")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
