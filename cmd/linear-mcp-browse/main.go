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
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"linear-mcp/internal/browse"
)

var (
	configFile  string
	mode        string
	serverURL   string
	serverPath  string
	token       string
	useTLS      bool
	noColor     bool
	showVersion bool
)

var rootCmd = &cobra.Command{
	Use:   "linear-mcp-browse",
	Short: "Interactive terminal browser for a Linear MCP server",
	Long: `linear-mcp-browse connects to a running Linear MCP server and lets you
explore its resources, templates, tools, and prompts from an interactive
prompt. It speaks MCP over stdio (spawning the server binary) or over
HTTP/HTTPS against a remote server.

Resources are addressed by URI, e.g. resource://teams or
resource://issues/ENG-123. Type /help at the prompt for commands.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to configuration file")
	rootCmd.Flags().StringVarP(&mode, "mode", "m", "", "Connection mode: stdio or http")
	rootCmd.Flags().StringVarP(&serverURL, "url", "u", "", "MCP server URL (http mode)")
	rootCmd.Flags().StringVar(&serverPath, "server-path", "", "Path to server binary (stdio mode)")
	rootCmd.Flags().StringVar(&token, "token", "", "API token for the server (http mode)")
	rootCmd.Flags().BoolVar(&useTLS, "tls", false, "Use HTTPS when connecting (http mode)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Print version and exit")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	if showVersion {
		fmt.Printf("linear-mcp-browse %s\n", browse.ClientVersion)
		return nil
	}

	cfg, err := browse.LoadConfig(configFile)
	if err != nil {
		return err
	}

	// Command line flags override config file and environment
	if mode != "" {
		cfg.MCP.Mode = mode
	}
	if serverURL != "" {
		cfg.MCP.URL = serverURL
	}
	if serverPath != "" {
		cfg.MCP.ServerPath = serverPath
	}
	if token != "" {
		cfg.MCP.Token = token
	}
	if cmd.Flags().Changed("tls") {
		cfg.MCP.TLS = useTLS
	}
	if noColor {
		cfg.UI.NoColor = true
	}

	// Cancel the session on SIGINT/SIGTERM so the readline loop and any
	// spawned server subprocess shut down cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := browse.NewClient(cfg)
	if err != nil {
		return err
	}

	return client.Run(ctx)
}
