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
	"strconv"
	"strings"
)

// Command represents a parsed browse command
type Command struct {
	Name string
	Args []string
}

// ParseCommand parses a slash command from user input. Bare input
// without a leading slash is treated as /open when it looks like a URI.
func ParseCommand(input string) *Command {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	if !strings.HasPrefix(input, "/") {
		// Convenience: a pasted URI opens directly
		if strings.HasPrefix(input, "resource://") {
			return &Command{Name: "open", Args: []string{input}}
		}
		return nil
	}

	parts := parseQuotedArgs(strings.TrimPrefix(input, "/"))
	if len(parts) == 0 {
		return nil
	}

	return &Command{
		Name: parts[0],
		Args: parts[1:],
	}
}

// parseQuotedArgs splits a string into arguments, respecting quoted strings
func parseQuotedArgs(input string) []string {
	var args []string
	var current strings.Builder
	inQuote := false
	quoteChar := rune(0)

	runes := []rune(input)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch {
		case (r == '"' || r == '\'') && !inQuote:
			// Start of quoted string
			inQuote = true
			quoteChar = r
		case r == quoteChar && inQuote:
			// End of quoted string
			inQuote = false
			quoteChar = 0
		case r == ' ' && !inQuote:
			// Space outside quotes - end of argument
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		case r == '\\' && inQuote && i+1 < len(runes):
			// Escape sequence in quoted string
			next := runes[i+1]
			if next == quoteChar || next == '\\' {
				current.WriteRune(next)
				i++
			} else {
				current.WriteRune(r)
			}
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		args = append(args, current.String())
	}

	return args
}

// parseKeyValueArgs converts ["state=started", "limit=5"] into a map.
// Values that parse as numbers or booleans keep their native type so
// tool input schemas validate correctly.
func parseKeyValueArgs(args []string) (map[string]interface{}, error) {
	result := make(map[string]interface{})
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid argument %q (expected key=value)", arg)
		}

		switch {
		case value == "true":
			result[key] = true
		case value == "false":
			result[key] = false
		default:
			if n, err := strconv.Atoi(value); err == nil {
				result[key] = n
			} else if f, err := strconv.ParseFloat(value, 64); err == nil {
				result[key] = f
			} else {
				result[key] = value
			}
		}
	}
	return result, nil
}

// parseStringArgs converts ["teamId=team-1"] into a string map for prompts
func parseStringArgs(args []string) (map[string]string, error) {
	result := make(map[string]string)
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid argument %q (expected key=value)", arg)
		}
		result[key] = value
	}
	return result, nil
}

// HandleCommand dispatches a parsed command, returning false when the
// client should exit
func (c *Client) HandleCommand(ctx context.Context, cmd *Command) bool {
	switch cmd.Name {
	case "help":
		c.ui.PrintHelp()

	case "quit", "exit":
		return false

	case "clear":
		c.ui.ClearScreen()

	case "open":
		c.handleOpen(ctx, cmd.Args)

	case "ls":
		c.handleList(ctx, cmd.Args)

	case "resources":
		c.handleResources(ctx)

	case "templates":
		c.handleTemplates(ctx)

	case "tools":
		c.handleTools(ctx)

	case "prompts":
		c.handlePrompts(ctx)

	case "prompt":
		c.handlePrompt(ctx, cmd.Args)

	case "call":
		c.handleCall(ctx, cmd.Args)

	case "pin":
		c.handlePin(cmd.Args)

	case "unpin":
		c.handleUnpin(cmd.Args)

	case "pins":
		c.handlePins()

	case "history":
		c.handleHistory(cmd.Args)

	case "set":
		c.handleSet(cmd.Args)

	default:
		c.ui.PrintError(fmt.Sprintf("unknown command: /%s (type /help for available commands)", cmd.Name))
	}

	return true
}

func (c *Client) handleOpen(ctx context.Context, args []string) {
	if len(args) != 1 {
		c.ui.PrintError("usage: /open <uri>")
		return
	}

	content, err := c.mcp.ReadResource(ctx, args[0])
	if err != nil {
		c.ui.PrintError(err.Error())
		return
	}

	for _, item := range content.Contents {
		c.ui.PrintContent(item.Text)
	}
}

func (c *Client) handleList(ctx context.Context, args []string) {
	uri := "resource://teams"
	if len(args) > 0 {
		uri = args[0]
	}

	result, err := c.mcp.ListDirectory(ctx, uri)
	if err != nil {
		c.ui.PrintError(err.Error())
		return
	}

	if len(result.Entries) == 0 {
		c.ui.PrintSystemMessage(fmt.Sprintf("%s has no children", uri))
		return
	}

	c.ui.PrintSystemMessage(fmt.Sprintf("%d entries under %s", len(result.Entries), result.URI))
	for _, entry := range result.Entries {
		name := entry.Name
		if name != "" && name != entry.URI {
			name = fmt.Sprintf("%s (%s)", entry.URI, name)
		} else {
			name = entry.URI
		}
		c.ui.PrintEntry(name, entry.Description)
	}
}

func (c *Client) handleResources(ctx context.Context) {
	resources, err := c.mcp.ListResources(ctx)
	if err != nil {
		c.ui.PrintError(err.Error())
		return
	}

	c.ui.PrintSystemMessage(fmt.Sprintf("%d resources", len(resources)))
	for _, res := range resources {
		c.ui.PrintEntry(res.URI, res.Description)
	}
}

func (c *Client) handleTemplates(ctx context.Context) {
	templates, err := c.mcp.ListResourceTemplates(ctx)
	if err != nil {
		c.ui.PrintError(err.Error())
		return
	}

	c.ui.PrintSystemMessage(fmt.Sprintf("%d resource templates", len(templates)))
	for _, tmpl := range templates {
		c.ui.PrintEntry(tmpl.URITemplate, tmpl.Description)
	}
}

func (c *Client) handleTools(ctx context.Context) {
	tools, err := c.mcp.ListTools(ctx)
	if err != nil {
		c.ui.PrintError(err.Error())
		return
	}

	c.ui.PrintSystemMessage(fmt.Sprintf("%d tools", len(tools)))
	for _, tool := range tools {
		c.ui.PrintEntry(tool.Name, firstLine(tool.Description))
	}
}

func (c *Client) handlePrompts(ctx context.Context) {
	prompts, err := c.mcp.ListPrompts(ctx)
	if err != nil {
		c.ui.PrintError(err.Error())
		return
	}

	c.ui.PrintSystemMessage(fmt.Sprintf("%d prompts", len(prompts)))
	for _, prompt := range prompts {
		var argNames []string
		for _, arg := range prompt.Arguments {
			argNames = append(argNames, arg.Name)
		}
		id := prompt.Name
		if len(argNames) > 0 {
			id = fmt.Sprintf("%s [%s]", prompt.Name, strings.Join(argNames, ", "))
		}
		c.ui.PrintEntry(id, firstLine(prompt.Description))
	}
}

func (c *Client) handlePrompt(ctx context.Context, args []string) {
	if len(args) == 0 {
		c.ui.PrintError("usage: /prompt <name> [key=value ...]")
		return
	}

	promptArgs, err := parseStringArgs(args[1:])
	if err != nil {
		c.ui.PrintError(err.Error())
		return
	}

	result, err := c.mcp.GetPrompt(ctx, args[0], promptArgs)
	if err != nil {
		c.ui.PrintError(err.Error())
		return
	}

	for _, msg := range result.Messages {
		c.ui.PrintSystemMessage(msg.Role + ":")
		c.ui.PrintContent(msg.Content.Text)
	}
}

func (c *Client) handleCall(ctx context.Context, args []string) {
	if len(args) == 0 {
		c.ui.PrintError("usage: /call <tool> [key=value ...]")
		return
	}

	toolArgs, err := parseKeyValueArgs(args[1:])
	if err != nil {
		c.ui.PrintError(err.Error())
		return
	}

	response, err := c.mcp.CallTool(ctx, args[0], toolArgs)
	if err != nil {
		c.ui.PrintError(err.Error())
		return
	}

	for _, item := range response.Content {
		if response.IsError {
			c.ui.PrintError(item.Text)
		} else {
			c.ui.PrintContent(item.Text)
		}
	}
}

func (c *Client) handlePin(args []string) {
	if len(args) == 0 {
		c.ui.PrintError("usage: /pin <uri> [label]")
		return
	}

	label := ""
	if len(args) > 1 {
		label = strings.Join(args[1:], " ")
	}

	pin, err := c.bookmarks.AddPin(args[0], label)
	if err != nil {
		c.ui.PrintError(err.Error())
		return
	}

	c.ui.PrintSystemMessage(fmt.Sprintf("pinned %s (%s)", pin.URI, pin.ID))
}

func (c *Client) handleUnpin(args []string) {
	if len(args) != 1 {
		c.ui.PrintError("usage: /unpin <uri|id>")
		return
	}

	if err := c.bookmarks.RemovePin(args[0]); err != nil {
		c.ui.PrintError(err.Error())
		return
	}

	c.ui.PrintSystemMessage("unpinned " + args[0])
}

func (c *Client) handlePins() {
	pins, err := c.bookmarks.ListPins()
	if err != nil {
		c.ui.PrintError(err.Error())
		return
	}

	if len(pins) == 0 {
		c.ui.PrintSystemMessage("no pins (use /pin <uri> to bookmark a resource)")
		return
	}

	for _, pin := range pins {
		c.ui.PrintEntry(pin.URI, pin.Label)
	}
}

func (c *Client) handleHistory(args []string) {
	limit := 20
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			c.ui.PrintError("usage: /history [n]")
			return
		}
		limit = n
	}

	entries, err := c.bookmarks.History(limit)
	if err != nil {
		c.ui.PrintError(err.Error())
		return
	}

	// Oldest first for readability
	for i := len(entries) - 1; i >= 0; i-- {
		c.ui.PrintEntry(entries[i].CreatedAt.Local().Format("2006-01-02 15:04"), entries[i].Command)
	}
}

func (c *Client) handleSet(args []string) {
	if len(args) != 2 {
		c.ui.PrintError("usage: /set markdown <on|off>")
		return
	}

	switch args[0] {
	case "markdown":
		switch args[1] {
		case "on":
			c.ui.RenderMarkdown = true
			c.ui.PrintSystemMessage("markdown rendering enabled")
		case "off":
			c.ui.RenderMarkdown = false
			c.ui.PrintSystemMessage("markdown rendering disabled")
		default:
			c.ui.PrintError("usage: /set markdown <on|off>")
		}
	default:
		c.ui.PrintError(fmt.Sprintf("unknown setting: %s", args[0]))
	}
}

// firstLine extracts the first non-empty line of a description
func firstLine(desc string) string {
	for _, line := range strings.Split(desc, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return desc
}
