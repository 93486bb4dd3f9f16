/*-------------------------------------------------------------------------
 *
 * Linear MCP Server
 *
 * Copyright (c) 2026, Linear MCP Server contributors
 * This software is released under The MIT License
 *
 *-------------------------------------------------------------------------
 */

package browse

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"linear-mcp/internal/bookmarks"
)

// Client is the interactive browse client
type Client struct {
	config    *Config
	ui        *UI
	mcp       MCPClient
	bookmarks *bookmarks.Store
}

// NewClient creates a new browse client
func NewClient(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store, err := bookmarks.NewStore(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open bookmark store: %w", err)
	}

	return &Client{
		config:    cfg,
		ui:        NewUI(cfg.UI.NoColor, cfg.UI.RenderMarkdown),
		bookmarks: store,
	}, nil
}

// Run starts the browse client
func (c *Client) Run(ctx context.Context) error {
	defer c.bookmarks.Close()

	if err := c.connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to MCP server: %w", err)
	}
	defer c.mcp.Close()

	if err := c.mcp.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize MCP connection: %w", err)
	}

	serverName, serverVersion := c.mcp.ServerInfo()
	c.ui.PrintWelcome(ClientVersion, serverName, serverVersion)

	tools, err := c.mcp.ListTools(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tools: %w", err)
	}
	resources, err := c.mcp.ListResources(ctx)
	if err != nil {
		return fmt.Errorf("failed to list resources: %w", err)
	}
	templates, err := c.mcp.ListResourceTemplates(ctx)
	if err != nil {
		return fmt.Errorf("failed to list resource templates: %w", err)
	}

	c.ui.PrintSystemMessage(fmt.Sprintf("%d tools, %d resources, %d templates available",
		len(tools), len(resources), len(templates)))
	c.ui.PrintSeparator()

	return c.loop(ctx)
}

// connect establishes the MCP server connection
func (c *Client) connect(ctx context.Context) error {
	if c.config.MCP.Mode == "http" {
		token := c.config.MCP.Token
		if token == "" {
			token = c.ui.PromptForToken()
			if token == "" {
				return fmt.Errorf("authentication token is required for HTTP mode")
			}
		}

		c.mcp = NewHTTPClient(normalizeURL(c.config.MCP.URL, c.config.MCP.TLS), token)
		return nil
	}

	mcpClient, err := NewStdioClient(c.config.MCP.ServerPath)
	if err != nil {
		return err
	}
	c.mcp = mcpClient
	return nil
}

// normalizeURL adds the scheme and /mcp/v1 suffix when missing
func normalizeURL(url string, tlsEnabled bool) string {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		if tlsEnabled {
			url = "https://" + url
		} else {
			url = "http://" + url
		}
	}

	if !strings.HasSuffix(url, "/mcp/v1") {
		if strings.HasSuffix(url, "/") {
			url += "mcp/v1"
		} else {
			url += "/mcp/v1"
		}
	}

	return url
}

// loop runs the interactive readline loop
func (c *Client) loop(ctx context.Context) error {
	if err := os.MkdirAll(c.config.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 c.ui.GetPrompt(),
		HistoryFile:            c.config.HistoryFile(),
		HistoryLimit:           1000,
		DisableAutoSaveHistory: false,
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
		HistorySearchFold:      true, // Case-insensitive history search
	})
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer rl.Close()

	// Closing readline causes Readline() to return an error
	go func() {
		<-ctx.Done()
		rl.Close()
	}()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt || err == io.EOF || ctx.Err() != nil {
				fmt.Println()
				c.ui.PrintSystemMessage("Goodbye!")
				return nil
			}
			return fmt.Errorf("readline error: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		cmd := ParseCommand(input)
		if cmd == nil {
			c.ui.PrintError("not a command (type /help for available commands)")
			continue
		}

		// Record in the persistent command history; failures are
		// not worth interrupting the session for
		if err := c.bookmarks.RecordCommand(input); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to record history: %v\n", err)
		}

		if !c.HandleCommand(ctx, cmd) {
			c.ui.PrintSystemMessage("Goodbye!")
			return nil
		}
	}
}
