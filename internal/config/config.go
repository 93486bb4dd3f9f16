/*-------------------------------------------------------------------------
 *
 * Linear MCP Server
 *
 * Copyright (c) 2026, Linear MCP Server contributors
 * This software is released under The MIT License
 *
 *-------------------------------------------------------------------------
 */

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete server configuration
type Config struct {
	// HTTP server configuration
	HTTP HTTPConfig `yaml:"http"`

	// Linear API configuration
	Linear LinearConfig `yaml:"linear"`

	// Resource address-space gating
	Resources ResourcesConfig `yaml:"resources"`

	// Tool registration gating
	Tools ToolsConfig `yaml:"tools"`

	// Custom definitions file path (for user-defined prompts and saved views)
	CustomDefinitionsPath string `yaml:"custom_definitions_path"`
}

// HTTPConfig holds HTTP/HTTPS server settings
type HTTPConfig struct {
	Enabled bool       `yaml:"enabled"`
	Address string     `yaml:"address"`
	TLS     TLSConfig  `yaml:"tls"`
	Auth    AuthConfig `yaml:"auth"`
}

// AuthConfig holds authentication settings
type AuthConfig struct {
	Enabled   bool   `yaml:"enabled"`    // Whether authentication is required
	TokenFile string `yaml:"token_file"` // Path to bearer token file
	UserFile  string `yaml:"user_file"`  // Path to user account file
}

// TLSConfig holds TLS/HTTPS settings
type TLSConfig struct {
	Enabled   bool   `yaml:"enabled"`
	CertFile  string `yaml:"cert_file"`
	KeyFile   string `yaml:"key_file"`
	ChainFile string `yaml:"chain_file"`
}

// LinearConfig holds Linear API connection settings
type LinearConfig struct {
	Endpoint       string `yaml:"endpoint"`         // GraphQL endpoint (default: public Linear API)
	APIKey         string `yaml:"api_key"`          // API key (direct - discouraged, use api_key_file or env var)
	APIKeyFile     string `yaml:"api_key_file"`     // Path to file containing the API key
	TimeoutSeconds int    `yaml:"timeout_seconds"`  // Per-request timeout (default: 30)
	PageSize       int    `yaml:"page_size"`        // Default page size for paginated fetches (default: 50)
}

// ResourcesConfig gates individual resource addresses. Entries in
// Disabled name the URI or URI template exactly as registered, e.g.
// "resource://documents" or "resource://teams/{teamId}/cycles".
type ResourcesConfig struct {
	Disabled []string `yaml:"disabled"`
}

// Enabled reports whether the given URI template should be registered.
func (r *ResourcesConfig) Enabled(uri string) bool {
	for _, disabled := range r.Disabled {
		if disabled == uri {
			return false
		}
	}
	return true
}

// ToolsConfig gates individual tools by name. Entries in Disabled name
// the tool exactly as registered, e.g. "create_issue" or "search_issues".
type ToolsConfig struct {
	Disabled []string `yaml:"disabled"`
}

// Enabled reports whether the named tool should be registered.
func (t *ToolsConfig) Enabled(name string) bool {
	for _, disabled := range t.Disabled {
		if disabled == name {
			return false
		}
	}
	return true
}

// LoadConfig loads configuration with proper priority:
// 1. Command line flags (highest priority)
// 2. Environment variables
// 3. Configuration file
// 4. Hard-coded defaults (lowest priority)
func LoadConfig(configPath string, cliFlags CLIFlags) (*Config, error) {
	// Start with defaults
	cfg := defaultConfig()

	// Load config file if it exists
	if configPath != "" {
		fileCfg, err := loadConfigFile(configPath)
		if err != nil {
			// If file was explicitly specified, error out
			if cliFlags.ConfigFileSet {
				return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
			}
			// Otherwise just use defaults (file may not exist and that's ok)
		} else {
			// Merge file config into defaults
			mergeConfig(cfg, fileCfg)
		}
	}

	// Override with environment variables
	applyEnvironmentVariables(cfg)

	// Override with command line flags (highest priority)
	applyCLIFlags(cfg, cliFlags)

	// Validate final configuration
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// CLIFlags represents command line flag values and whether they were explicitly set
type CLIFlags struct {
	ConfigFileSet bool
	ConfigFile    string

	// HTTP flags
	HTTPEnabled    bool
	HTTPEnabledSet bool
	HTTPAddr       string
	HTTPAddrSet    bool

	// TLS flags
	TLSEnabled    bool
	TLSEnabledSet bool
	TLSCertFile   string
	TLSCertSet    bool
	TLSKeyFile    string
	TLSKeySet     bool
	TLSChainFile  string
	TLSChainSet   bool

	// Auth flags
	AuthEnabled    bool
	AuthEnabledSet bool
	AuthTokenFile  string
	AuthTokenSet   bool
	AuthUserFile   string
	AuthUserSet    bool

	// Linear API flags
	Endpoint      string
	EndpointSet   bool
	APIKey        string
	APIKeySet     bool
	APIKeyFile    string
	APIKeyFileSet bool
	Timeout       int
	TimeoutSet    bool

	// Definitions flags
	DefinitionsPath    string
	DefinitionsPathSet bool
}

// defaultConfig returns configuration with hard-coded defaults
func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Enabled: false,
			Address: ":8080",
			TLS: TLSConfig{
				Enabled:   false,
				CertFile:  "./server.crt",
				KeyFile:   "./server.key",
				ChainFile: "",
			},
			Auth: AuthConfig{
				Enabled:   true, // Authentication enabled by default
				TokenFile: "",   // Will be set to default path if not specified
				UserFile:  "",   // Will be set to default path if not specified
			},
		},
		Linear: LinearConfig{
			Endpoint:       "", // Empty selects the client's built-in default
			APIKey:         "",
			APIKeyFile:     "",
			TimeoutSeconds: 30,
			PageSize:       50,
		},
		CustomDefinitionsPath: "",
	}
}

// loadConfigFile loads configuration from a YAML file
func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &cfg, nil
}

// mergeConfig merges source config into dest, only overriding non-zero values
func mergeConfig(dest, src *Config) {
	// HTTP
	if src.HTTP.Enabled {
		dest.HTTP.Enabled = src.HTTP.Enabled
	}
	if src.HTTP.Address != "" {
		dest.HTTP.Address = src.HTTP.Address
	}

	// TLS
	if src.HTTP.TLS.Enabled {
		dest.HTTP.TLS.Enabled = src.HTTP.TLS.Enabled
	}
	if src.HTTP.TLS.CertFile != "" {
		dest.HTTP.TLS.CertFile = src.HTTP.TLS.CertFile
	}
	if src.HTTP.TLS.KeyFile != "" {
		dest.HTTP.TLS.KeyFile = src.HTTP.TLS.KeyFile
	}
	if src.HTTP.TLS.ChainFile != "" {
		dest.HTTP.TLS.ChainFile = src.HTTP.TLS.ChainFile
	}

	// Auth - note: we need to preserve false values, so check if src differs from default
	// Use a simple heuristic: if token file is set, assume auth config is intentional
	if src.HTTP.Auth.TokenFile != "" || !src.HTTP.Auth.Enabled {
		dest.HTTP.Auth.Enabled = src.HTTP.Auth.Enabled
		dest.HTTP.Auth.TokenFile = src.HTTP.Auth.TokenFile
	}
	if src.HTTP.Auth.UserFile != "" {
		dest.HTTP.Auth.UserFile = src.HTTP.Auth.UserFile
	}

	// Linear
	if src.Linear.Endpoint != "" {
		dest.Linear.Endpoint = src.Linear.Endpoint
	}
	if src.Linear.APIKey != "" {
		dest.Linear.APIKey = src.Linear.APIKey
	}
	if src.Linear.APIKeyFile != "" {
		dest.Linear.APIKeyFile = src.Linear.APIKeyFile
	}
	if src.Linear.TimeoutSeconds != 0 {
		dest.Linear.TimeoutSeconds = src.Linear.TimeoutSeconds
	}
	if src.Linear.PageSize != 0 {
		dest.Linear.PageSize = src.Linear.PageSize
	}

	// Resources
	if len(src.Resources.Disabled) > 0 {
		dest.Resources.Disabled = src.Resources.Disabled
	}

	// Tools
	if len(src.Tools.Disabled) > 0 {
		dest.Tools.Disabled = src.Tools.Disabled
	}

	// Custom definitions path
	if src.CustomDefinitionsPath != "" {
		dest.CustomDefinitionsPath = src.CustomDefinitionsPath
	}
}

// setStringFromEnv sets a string config value from an environment variable if it exists
func setStringFromEnv(dest *string, key string) {
	if val := os.Getenv(key); val != "" {
		*dest = val
	}
}

// setStringFromEnvWithFallback sets a string config value from an environment variable,
// checking multiple environment variable names in priority order
func setStringFromEnvWithFallback(dest *string, keys ...string) {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			*dest = val
			return
		}
	}
}

// setBoolFromEnv sets a boolean config value from an environment variable if it exists
// Accepts "true", "1", or "yes" as true values
func setBoolFromEnv(dest *bool, key string) {
	if val := os.Getenv(key); val != "" {
		*dest = val == "true" || val == "1" || val == "yes"
	}
}

// setIntFromEnv sets an integer config value from an environment variable if it exists
func setIntFromEnv(dest *int, key string) {
	if val := os.Getenv(key); val != "" {
		var intVal int
		_, err := fmt.Sscanf(val, "%d", &intVal)
		if err == nil {
			*dest = intVal
		}
	}
}

// applyEnvironmentVariables overrides config with environment variables if they exist
// Server-specific variables use the LINEAR_MCP_ prefix; the standard
// LINEAR_API_KEY name is also honored for the API key.
func applyEnvironmentVariables(cfg *Config) {
	// HTTP
	setBoolFromEnv(&cfg.HTTP.Enabled, "LINEAR_MCP_HTTP_ENABLED")
	setStringFromEnv(&cfg.HTTP.Address, "LINEAR_MCP_HTTP_ADDRESS")

	// TLS
	setBoolFromEnv(&cfg.HTTP.TLS.Enabled, "LINEAR_MCP_TLS_ENABLED")
	setStringFromEnv(&cfg.HTTP.TLS.CertFile, "LINEAR_MCP_TLS_CERT_FILE")
	setStringFromEnv(&cfg.HTTP.TLS.KeyFile, "LINEAR_MCP_TLS_KEY_FILE")
	setStringFromEnv(&cfg.HTTP.TLS.ChainFile, "LINEAR_MCP_TLS_CHAIN_FILE")

	// Auth
	setBoolFromEnv(&cfg.HTTP.Auth.Enabled, "LINEAR_MCP_AUTH_ENABLED")
	setStringFromEnv(&cfg.HTTP.Auth.TokenFile, "LINEAR_MCP_AUTH_TOKEN_FILE")
	setStringFromEnv(&cfg.HTTP.Auth.UserFile, "LINEAR_MCP_AUTH_USER_FILE")

	// Linear API
	setStringFromEnv(&cfg.Linear.Endpoint, "LINEAR_MCP_ENDPOINT")
	setIntFromEnv(&cfg.Linear.TimeoutSeconds, "LINEAR_MCP_TIMEOUT_SECONDS")
	setIntFromEnv(&cfg.Linear.PageSize, "LINEAR_MCP_PAGE_SIZE")

	// API key loading priority: env vars > api_key_file > direct config value
	// 1. Try environment variables first (LINEAR_MCP_ prefixed, then standard)
	setStringFromEnvWithFallback(&cfg.Linear.APIKey, "LINEAR_MCP_API_KEY", "LINEAR_API_KEY")
	// 2. If env vars not set and api_key_file is specified, load from file
	if cfg.Linear.APIKey == "" && cfg.Linear.APIKeyFile != "" {
		if key, err := readAPIKeyFromFile(cfg.Linear.APIKeyFile); err == nil && key != "" {
			cfg.Linear.APIKey = key
		}
		// Note: errors are silently ignored - file may not exist and that's ok
	}
	// 3. Direct config value (if set) is already in cfg.Linear.APIKey from mergeConfig

	// Custom definitions path
	setStringFromEnv(&cfg.CustomDefinitionsPath, "LINEAR_MCP_CUSTOM_DEFINITIONS_PATH")
}

// applyCLIFlags overrides config with CLI flags if they were explicitly set
func applyCLIFlags(cfg *Config, flags CLIFlags) {
	// HTTP
	if flags.HTTPEnabledSet {
		cfg.HTTP.Enabled = flags.HTTPEnabled
	}
	if flags.HTTPAddrSet {
		cfg.HTTP.Address = flags.HTTPAddr
	}

	// TLS
	if flags.TLSEnabledSet {
		cfg.HTTP.TLS.Enabled = flags.TLSEnabled
	}
	if flags.TLSCertSet {
		cfg.HTTP.TLS.CertFile = flags.TLSCertFile
	}
	if flags.TLSKeySet {
		cfg.HTTP.TLS.KeyFile = flags.TLSKeyFile
	}
	if flags.TLSChainSet {
		cfg.HTTP.TLS.ChainFile = flags.TLSChainFile
	}

	// Auth
	if flags.AuthEnabledSet {
		cfg.HTTP.Auth.Enabled = flags.AuthEnabled
	}
	if flags.AuthTokenSet {
		cfg.HTTP.Auth.TokenFile = flags.AuthTokenFile
	}
	if flags.AuthUserSet {
		cfg.HTTP.Auth.UserFile = flags.AuthUserFile
	}

	// Linear API
	if flags.EndpointSet {
		cfg.Linear.Endpoint = flags.Endpoint
	}
	if flags.APIKeySet {
		cfg.Linear.APIKey = flags.APIKey
	}
	if flags.APIKeyFileSet {
		cfg.Linear.APIKeyFile = flags.APIKeyFile
		if key, err := readAPIKeyFromFile(flags.APIKeyFile); err == nil && key != "" {
			cfg.Linear.APIKey = key
		}
	}
	if flags.TimeoutSet {
		cfg.Linear.TimeoutSeconds = flags.Timeout
	}

	// Definitions
	if flags.DefinitionsPathSet {
		cfg.CustomDefinitionsPath = flags.DefinitionsPath
	}
}

// validateConfig checks if the configuration is valid
func validateConfig(cfg *Config) error {
	// TLS requires HTTP to be enabled
	if cfg.HTTP.TLS.Enabled && !cfg.HTTP.Enabled {
		return fmt.Errorf("TLS requires HTTP mode to be enabled")
	}

	// If HTTPS is enabled, cert and key are required
	if cfg.HTTP.TLS.Enabled {
		if cfg.HTTP.TLS.CertFile == "" {
			return fmt.Errorf("TLS certificate file is required when HTTPS is enabled")
		}
		if cfg.HTTP.TLS.KeyFile == "" {
			return fmt.Errorf("TLS key file is required when HTTPS is enabled")
		}
	}

	if cfg.Linear.TimeoutSeconds < 0 {
		return fmt.Errorf("linear timeout must not be negative")
	}
	if cfg.Linear.PageSize < 0 {
		return fmt.Errorf("linear page size must not be negative")
	}

	return nil
}

// readAPIKeyFromFile reads an API key from a file
// Returns the key with whitespace trimmed, or empty string if file doesn't exist or is empty
func readAPIKeyFromFile(filePath string) (string, error) {
	if filePath == "" {
		return "", nil
	}

	// Expand tilde to home directory
	if filePath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		filePath = filepath.Join(homeDir, filePath[1:])
	}

	// Check if file exists
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return "", nil // File doesn't exist, return empty (not an error)
	}

	// Read file contents
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read API key file %s: %w", filePath, err)
	}

	// Return trimmed contents (remove whitespace/newlines)
	key := strings.TrimSpace(string(data))
	return key, nil
}

// GetDefaultConfigPath returns the default config file path
// Searches /etc/linear-mcp/ first, then binary directory
func GetDefaultConfigPath(binaryPath string) string {
	systemPath := "/etc/linear-mcp/linear-mcp-server.yaml"
	if _, err := os.Stat(systemPath); err == nil {
		return systemPath
	}

	dir := filepath.Dir(binaryPath)
	return filepath.Join(dir, "linear-mcp-server.yaml")
}

// ConfigFileExists checks if a config file exists at the given path
func ConfigFileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Write with restrictive permissions (the file may carry an API key)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
