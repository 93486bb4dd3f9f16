/*-------------------------------------------------------------------------
 *
 * Linear MCP Server
 *
 * Copyright (c) 2026, Linear MCP Server contributors
 * This software is released under The MIT License
 *
 *-------------------------------------------------------------------------
 */

// Package browse implements an interactive terminal client for
// exploring a running MCP server: resources, templates, tools,
// prompts, and directory listings.
package browse

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the browse client
type Config struct {
	MCP MCPConfig `yaml:"mcp"`
	UI  UIConfig  `yaml:"ui"`

	// DataDir holds the bookmark database and readline history file
	DataDir string `yaml:"data_dir"`
}

// MCPConfig holds MCP server connection configuration
type MCPConfig struct {
	Mode       string `yaml:"mode"`        // stdio or http
	URL        string `yaml:"url"`         // HTTP URL (for http mode)
	ServerPath string `yaml:"server_path"` // Path to server binary (for stdio mode)
	Token      string `yaml:"token"`       // Authentication token (for http mode)
	TLS        bool   `yaml:"tls"`         // Use TLS/HTTPS
}

// UIConfig holds UI configuration
type UIConfig struct {
	NoColor        bool `yaml:"no_color"`        // Disable colored output
	RenderMarkdown bool `yaml:"render_markdown"` // Render resource contents as markdown
}

// LoadConfig loads configuration from file, environment variables, and defaults
func LoadConfig(configPath string) (*Config, error) {
	cfg := &Config{
		MCP: MCPConfig{
			Mode:       getEnvOrDefault("LINEAR_MCP_BROWSE_MODE", "stdio"),
			URL:        os.Getenv("LINEAR_MCP_BROWSE_URL"),
			ServerPath: getEnvOrDefault("LINEAR_MCP_BROWSE_SERVER_PATH", "linear-mcp-svr"),
			Token:      "", // Loaded separately
			TLS:        false,
		},
		UI: UIConfig{
			NoColor:        os.Getenv("NO_COLOR") != "",
			RenderMarkdown: true,
		},
		DataDir: defaultDataDir(),
	}

	// Load from config file if provided
	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		// Try default locations
		defaultPaths := []string{
			".linear-mcp-browse.yaml",
			filepath.Join(os.Getenv("HOME"), ".linear-mcp-browse.yaml"),
			"/etc/linear-mcp/browse.yaml",
		}
		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err == nil {
					break
				}
			}
		}
	}

	// Load authentication token with priority
	if cfg.MCP.Token == "" {
		cfg.MCP.Token = loadAuthToken()
	}

	return cfg, nil
}

// loadConfigFile loads configuration from a YAML file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadAuthToken loads the authentication token with priority:
// 1. Environment variable LINEAR_MCP_SERVER_TOKEN
// 2. File ~/.linear-mcp-server-token
// 3. Returns empty string if not found (will prompt if needed)
func loadAuthToken() string {
	if token := os.Getenv("LINEAR_MCP_SERVER_TOKEN"); token != "" {
		return token
	}

	tokenPath := filepath.Join(os.Getenv("HOME"), ".linear-mcp-server-token")
	if data, err := os.ReadFile(tokenPath); err == nil {
		return strings.TrimSpace(string(data))
	}

	return ""
}

// defaultDataDir returns the default directory for local state
func defaultDataDir() string {
	home := os.Getenv("HOME")
	if home == "" {
		return ".linear-mcp-browse"
	}
	return filepath.Join(home, ".linear-mcp-browse")
}

// HistoryFile returns the readline history file path
func (c *Config) HistoryFile() string {
	return filepath.Join(c.DataDir, "history")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.MCP.Mode != "stdio" && c.MCP.Mode != "http" {
		return fmt.Errorf("invalid mode: %s (must be stdio or http)", c.MCP.Mode)
	}

	if c.MCP.Mode == "http" {
		if c.MCP.URL == "" {
			return fmt.Errorf("url is required for HTTP mode")
		}
	} else {
		if c.MCP.ServerPath == "" {
			return fmt.Errorf("server-path is required for stdio mode")
		}
	}

	return nil
}

// getEnvOrDefault returns the environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
