/*-------------------------------------------------------------------------
 *
 * Linear MCP Server
 *
 * Copyright (c) 2026, Linear MCP Server contributors
 * This software is released under The MIT License
 *
 *-------------------------------------------------------------------------
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"linear-mcp/internal/auth"
	"linear-mcp/internal/config"
	"linear-mcp/internal/definitions"
	"linear-mcp/internal/linear"
	"linear-mcp/internal/mcp"
	"linear-mcp/internal/prompts"
	"linear-mcp/internal/resources"
	"linear-mcp/internal/tools"
)

// tokenCleanupInterval is how often expired API tokens are purged while
// the server is running.
const tokenCleanupInterval = 5 * time.Minute

func main() {
	// Get executable path for default config location
	execPath, err := os.Executable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to get executable path: %v\n", err)
		os.Exit(1)
	}
	defaultConfigPath := config.GetDefaultConfigPath(execPath)

	// Command line flags
	configFile := flag.String("config", defaultConfigPath, "Path to configuration file")
	httpMode := flag.Bool("http", false, "Enable HTTP transport mode (default: stdio)")
	httpAddr := flag.String("addr", "", "HTTP server address")
	tlsMode := flag.Bool("tls", false, "Enable TLS/HTTPS (requires -http)")
	certFile := flag.String("cert", "", "Path to TLS certificate file")
	keyFile := flag.String("key", "", "Path to TLS key file")
	chainFile := flag.String("chain", "", "Path to TLS certificate chain file (optional)")
	noAuth := flag.Bool("no-auth", false, "Disable API token authentication in HTTP mode")
	debug := flag.Bool("debug", false, "Enable debug logging (logs HTTP requests/responses)")
	tokenFilePath := flag.String("token-file", "", "Path to API token file")

	// Linear API flags
	endpoint := flag.String("endpoint", "", "Linear GraphQL API endpoint")
	apiKey := flag.String("api-key", "", "Linear API key (discouraged; prefer -api-key-file or LINEAR_API_KEY)")
	apiKeyFile := flag.String("api-key-file", "", "Path to file containing the Linear API key")
	timeout := flag.Int("timeout", 0, "Linear API request timeout in seconds")
	definitionsPath := flag.String("definitions", "", "Path to custom prompt/view definitions file")

	// Token management commands
	addTokenCmd := flag.Bool("add-token", false, "Add a new API token")
	removeTokenCmd := flag.String("remove-token", "", "Remove an API token by ID or hash prefix")
	listTokensCmd := flag.Bool("list-tokens", false, "List all API tokens")
	tokenNote := flag.String("token-note", "", "Annotation for the new token (used with -add-token)")
	tokenExpiry := flag.String("token-expiry", "", "Token expiry duration: '30d', '1y', '2w', '12h', 'never' (used with -add-token)")

	// User management commands
	userFilePath := flag.String("user-file", "", "Path to user account file")
	addUserCmd := flag.Bool("add-user", false, "Add a new user")
	updateUserCmd := flag.Bool("update-user", false, "Update an existing user")
	deleteUserCmd := flag.Bool("delete-user", false, "Delete a user")
	listUsersCmd := flag.Bool("list-users", false, "List all users")
	enableUserCmd := flag.Bool("enable-user", false, "Enable a user account")
	disableUserCmd := flag.Bool("disable-user", false, "Disable a user account")
	username := flag.String("username", "", "Username for user management commands")
	userPassword := flag.String("password", "", "Password for user management commands (prompted if not provided)")
	userNote := flag.String("user-note", "", "Annotation for the new user (used with -add-user)")

	flag.Parse()

	// Handle token management commands
	if *addTokenCmd || *removeTokenCmd != "" || *listTokensCmd {
		tokenFile := *tokenFilePath
		if tokenFile == "" {
			tokenFile = auth.GetDefaultTokenPath(execPath)
		}

		if *addTokenCmd {
			var expiry time.Duration
			switch {
			case *tokenExpiry != "" && *tokenExpiry != "never":
				var err error
				expiry, err = parseDuration(*tokenExpiry)
				if err != nil {
					fmt.Fprintf(os.Stderr, "ERROR: Invalid expiry duration: %v\n", err)
					os.Exit(1)
				}
			case *tokenExpiry == "":
				expiry = 0 // Will prompt user
			default:
				expiry = -1 // Never expires
			}

			if err := addTokenCommand(tokenFile, *tokenNote, expiry); err != nil {
				fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
				os.Exit(1)
			}
			return
		}

		if *removeTokenCmd != "" {
			if err := removeTokenCommand(tokenFile, *removeTokenCmd); err != nil {
				fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
				os.Exit(1)
			}
			return
		}

		if *listTokensCmd {
			if err := listTokensCommand(tokenFile); err != nil {
				fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	// Handle user management commands
	if *addUserCmd || *updateUserCmd || *deleteUserCmd || *listUsersCmd || *enableUserCmd || *disableUserCmd {
		userFile := *userFilePath
		if userFile == "" {
			userFile = auth.GetDefaultUserPath(execPath)
		}

		var err error
		switch {
		case *addUserCmd:
			err = addUserCommand(userFile, *username, *userPassword, *userNote)
		case *updateUserCmd:
			err = updateUserCommand(userFile, *username, *userPassword, *userNote)
		case *deleteUserCmd:
			err = deleteUserCommand(userFile, *username)
		case *listUsersCmd:
			err = listUsersCommand(userFile)
		case *enableUserCmd:
			err = setUserEnabledCommand(userFile, *username, true)
		case *disableUserCmd:
			err = setUserEnabledCommand(userFile, *username, false)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Track which flags were explicitly set
	cliFlags := config.CLIFlags{}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "config":
			cliFlags.ConfigFileSet = true
			cliFlags.ConfigFile = *configFile
		case "http":
			cliFlags.HTTPEnabledSet = true
			cliFlags.HTTPEnabled = *httpMode
		case "addr":
			cliFlags.HTTPAddrSet = true
			cliFlags.HTTPAddr = *httpAddr
		case "tls":
			cliFlags.TLSEnabledSet = true
			cliFlags.TLSEnabled = *tlsMode
		case "cert":
			cliFlags.TLSCertSet = true
			cliFlags.TLSCertFile = *certFile
		case "key":
			cliFlags.TLSKeySet = true
			cliFlags.TLSKeyFile = *keyFile
		case "chain":
			cliFlags.TLSChainSet = true
			cliFlags.TLSChainFile = *chainFile
		case "no-auth":
			cliFlags.AuthEnabledSet = true
			cliFlags.AuthEnabled = !*noAuth // Invert because it's "no-auth"
		case "token-file":
			cliFlags.AuthTokenSet = true
			cliFlags.AuthTokenFile = *tokenFilePath
		case "user-file":
			cliFlags.AuthUserSet = true
			cliFlags.AuthUserFile = *userFilePath
		case "endpoint":
			cliFlags.EndpointSet = true
			cliFlags.Endpoint = *endpoint
		case "api-key":
			cliFlags.APIKeySet = true
			cliFlags.APIKey = *apiKey
		case "api-key-file":
			cliFlags.APIKeyFileSet = true
			cliFlags.APIKeyFile = *apiKeyFile
		case "timeout":
			cliFlags.TimeoutSet = true
			cliFlags.Timeout = *timeout
		case "definitions":
			cliFlags.DefinitionsPathSet = true
			cliFlags.DefinitionsPath = *definitionsPath
		}
	})

	// Validate basic flag dependencies before loading full config
	if !*httpMode && (*tlsMode || *certFile != "" || *keyFile != "" || *chainFile != "") {
		fmt.Fprintf(os.Stderr, "ERROR: TLS options (-tls, -cert, -key, -chain) require -http flag\n")
		flag.Usage()
		os.Exit(1)
	}

	// Determine which config file to load
	configPath := *configFile
	if !cliFlags.ConfigFileSet {
		configPath = defaultConfigPath
	}

	// Only attempt to load the file if it exists; an empty path means
	// env vars and defaults alone.
	configPathForLoad := ""
	if config.ConfigFileExists(configPath) {
		configPathForLoad = configPath
	}

	cfg, err := config.LoadConfig(configPathForLoad, cliFlags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	// Set default credential file paths if not specified and HTTP is enabled
	if cfg.HTTP.Enabled && cfg.HTTP.Auth.TokenFile == "" {
		cfg.HTTP.Auth.TokenFile = auth.GetDefaultTokenPath(execPath)
	}
	if cfg.HTTP.Enabled && cfg.HTTP.Auth.UserFile == "" {
		cfg.HTTP.Auth.UserFile = auth.GetDefaultUserPath(execPath)
	}

	// Verify TLS files exist if HTTPS is enabled
	if cfg.HTTP.TLS.Enabled {
		if _, err := os.Stat(cfg.HTTP.TLS.CertFile); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Certificate file not found: %s\n", cfg.HTTP.TLS.CertFile)
			os.Exit(1)
		}
		if _, err := os.Stat(cfg.HTTP.TLS.KeyFile); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Key file not found: %s\n", cfg.HTTP.TLS.KeyFile)
			os.Exit(1)
		}
		if cfg.HTTP.TLS.ChainFile != "" {
			if _, err := os.Stat(cfg.HTTP.TLS.ChainFile); err != nil {
				fmt.Fprintf(os.Stderr, "ERROR: Chain file not found: %s\n", cfg.HTTP.TLS.ChainFile)
				os.Exit(1)
			}
		}
	}

	// Load credential stores if HTTP auth is enabled
	var tokenStore *auth.TokenStore
	var userStore *auth.UserStore
	if cfg.HTTP.Enabled && cfg.HTTP.Auth.Enabled {
		if _, err := os.Stat(cfg.HTTP.Auth.TokenFile); os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "ERROR: Token file not found: %s\n", cfg.HTTP.Auth.TokenFile)
			fmt.Fprintf(os.Stderr, "Create tokens with: %s -add-token\n", os.Args[0])
			fmt.Fprintf(os.Stderr, "Or disable authentication with: -no-auth\n")
			os.Exit(1)
		}

		tokenStore, err = auth.LoadTokenStore(cfg.HTTP.Auth.TokenFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to load token file: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Loaded %d API token(s) from %s\n", len(tokenStore.Tokens), cfg.HTTP.Auth.TokenFile)

		// Start watching the token file for changes
		if err := tokenStore.StartWatching(); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: Failed to start watching token file: %v\n", err)
			fmt.Fprintf(os.Stderr, "         Token changes will require server restart\n")
		} else {
			fmt.Fprintf(os.Stderr, "Watching %s for changes\n", cfg.HTTP.Auth.TokenFile)
		}

		// Load user store for Basic authentication
		if _, err := os.Stat(cfg.HTTP.Auth.UserFile); os.IsNotExist(err) {
			// User file doesn't exist - start with an empty store.
			// Users can be added via CLI commands.
			userStore = auth.InitializeUserStore()
			fmt.Fprintf(os.Stderr, "User file not found, initialized empty user store\n")
		} else {
			userStore, err = auth.LoadUserStore(cfg.HTTP.Auth.UserFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "ERROR: Failed to load user file: %v\n", err)
				os.Exit(1)
			}
			fmt.Fprintf(os.Stderr, "Loaded %d user(s) from %s\n", len(userStore.Users), cfg.HTTP.Auth.UserFile)

			if err := userStore.StartWatching(); err != nil {
				fmt.Fprintf(os.Stderr, "WARNING: Failed to start watching user file: %v\n", err)
				fmt.Fprintf(os.Stderr, "         User changes will require server restart\n")
			} else {
				fmt.Fprintf(os.Stderr, "Watching %s for changes\n", cfg.HTTP.Auth.UserFile)
			}
		}
	}

	// Cancellable context for graceful shutdown of background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Linear API backend shared by resources and tools
	client := linear.NewClient(cfg.Linear.Endpoint, cfg.Linear.APIKey, time.Duration(cfg.Linear.TimeoutSeconds)*time.Second)
	client.SetPageSize(cfg.Linear.PageSize)
	apiEndpoint := cfg.Linear.Endpoint
	if apiEndpoint == "" {
		apiEndpoint = linear.DefaultEndpoint
	}
	if client.IsConfigured() {
		fmt.Fprintf(os.Stderr, "Linear API: configured (endpoint %s)\n", apiEndpoint)
	} else {
		fmt.Fprintf(os.Stderr, "Linear API: no API key configured; requests will be rejected by the backend\n")
		fmt.Fprintf(os.Stderr, "Set LINEAR_API_KEY or use -api-key-file\n")
	}

	// Resource router with the built-in address set
	router := resources.NewRouter()
	if err := resources.RegisterAll(router, client, cfg.Resources.Enabled); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to register resources: %v\n", err)
		os.Exit(1)
	}

	// Custom prompt and view definitions
	var defs *definitions.Definitions
	if cfg.CustomDefinitionsPath != "" {
		defs, err = definitions.LoadDefinitions(cfg.CustomDefinitionsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to load definitions from %s: %v\n", cfg.CustomDefinitionsPath, err)
			os.Exit(1)
		}
		if err := resources.RegisterViewResources(router, client, defs.Views); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to register view resources: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Loaded %d prompt(s) and %d view(s) from %s\n",
			len(defs.Prompts), len(defs.Views), cfg.CustomDefinitionsPath)
	}

	provider := resources.NewRouterProvider(router)

	// Tool registry; the router provider doubles as the resource reader
	// and directory lister for the meta tools.
	registry := tools.NewRegistry()
	tools.RegisterAll(registry, client, provider, provider, cfg.Tools.Enabled)

	server := mcp.NewServer(registry)
	server.SetResourceProvider(provider)
	server.SetDirectoryProvider(provider)

	// Register prompts
	promptRegistry := prompts.NewRegistry()
	promptRegistry.Register("triage_issue", prompts.TriageIssue())
	promptRegistry.Register("standup_report", prompts.StandupReport())
	promptRegistry.Register("cycle_review", prompts.CycleReview())
	if defs != nil {
		for _, def := range defs.Prompts {
			if err := promptRegistry.RegisterStatic(def); err != nil {
				fmt.Fprintf(os.Stderr, "ERROR: Failed to register prompt %q: %v\n", def.Name, err)
				os.Exit(1)
			}
		}
	}
	server.SetPromptProvider(promptRegistry)

	// Start periodic cleanup of expired tokens if auth is enabled
	if cfg.HTTP.Enabled && cfg.HTTP.Auth.Enabled {
		if removed := tokenStore.CleanupExpiredTokens(); removed > 0 {
			fmt.Fprintf(os.Stderr, "Removed %d expired token(s)\n", removed)
			if err := auth.SaveTokenStore(cfg.HTTP.Auth.TokenFile, tokenStore); err != nil {
				fmt.Fprintf(os.Stderr, "WARNING: Failed to save cleaned token file: %v\n", err)
			}
		}

		go func() {
			ticker := time.NewTicker(tokenCleanupInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if removed := tokenStore.CleanupExpiredTokens(); removed > 0 {
						fmt.Fprintf(os.Stderr, "Removed %d expired token(s)\n", removed)
						if err := auth.SaveTokenStore(cfg.HTTP.Auth.TokenFile, tokenStore); err != nil {
							fmt.Fprintf(os.Stderr, "WARNING: Failed to save cleaned token file: %v\n", err)
						}
					}
				}
			}
		}()
	}

	if cfg.HTTP.Enabled {
		httpConfig := &mcp.HTTPConfig{
			Addr:        cfg.HTTP.Address,
			TLSEnable:   cfg.HTTP.TLS.Enabled,
			CertFile:    cfg.HTTP.TLS.CertFile,
			KeyFile:     cfg.HTTP.TLS.KeyFile,
			ChainFile:   cfg.HTTP.TLS.ChainFile,
			AuthEnabled: cfg.HTTP.Auth.Enabled,
			TokenStore:  tokenStore,
			UserStore:   userStore,
			Debug:       *debug,
		}

		if cfg.HTTP.TLS.Enabled {
			fmt.Fprintf(os.Stderr, "Starting MCP server in HTTPS mode on %s\n", cfg.HTTP.Address)
			fmt.Fprintf(os.Stderr, "Certificate: %s\n", cfg.HTTP.TLS.CertFile)
			fmt.Fprintf(os.Stderr, "Key: %s\n", cfg.HTTP.TLS.KeyFile)
			if cfg.HTTP.TLS.ChainFile != "" {
				fmt.Fprintf(os.Stderr, "Chain: %s\n", cfg.HTTP.TLS.ChainFile)
			}
		} else {
			fmt.Fprintf(os.Stderr, "Starting MCP server in HTTP mode on %s\n", cfg.HTTP.Address)
		}

		if cfg.HTTP.Auth.Enabled {
			fmt.Fprintf(os.Stderr, "Authentication: ENABLED\n")
		} else {
			fmt.Fprintf(os.Stderr, "Authentication: DISABLED (warning: server is not secured)\n")
		}

		if *debug {
			fmt.Fprintf(os.Stderr, "Debug logging: ENABLED\n")
		}

		err = server.RunHTTP(httpConfig)
	} else {
		fmt.Fprintf(os.Stderr, "Mode: STDIO\n")
		err = server.Run()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	// Stop file watchers
	if tokenStore != nil {
		tokenStore.StopWatching()
	}
	if userStore != nil {
		userStore.StopWatching()
	}
}
