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
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// Color codes for terminal output
const (
	ColorReset   = "\033[0m"
	ColorRed     = "\033[31m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorBlue    = "\033[34m"
	ColorMagenta = "\033[35m"
	ColorCyan    = "\033[36m"
	ColorGray    = "\033[90m"
	ColorBold    = "\033[1m"
)

// UI handles the user interface
type UI struct {
	noColor        bool
	RenderMarkdown bool
}

// NewUI creates a new UI instance
func NewUI(noColor bool, renderMarkdown bool) *UI {
	return &UI{
		noColor:        noColor,
		RenderMarkdown: renderMarkdown,
	}
}

// colorize applies color if colors are enabled
func (ui *UI) colorize(color, text string) string {
	if ui.noColor {
		return text
	}
	return color + text + ColorReset
}

// PrintWelcome prints the welcome banner
func (ui *UI) PrintWelcome(clientVersion, serverName, serverVersion string) {
	banner := fmt.Sprintf(`
  linear-mcp-browse %s
  Connected to %s %s
  Type /help for commands, /quit to leave
`, clientVersion, serverName, serverVersion)
	fmt.Println(ui.colorize(ColorCyan, banner))
}

// GetPrompt returns the prompt string for readline
func (ui *UI) GetPrompt() string {
	return ui.colorize(ColorGreen+ColorBold, "browse> ")
}

// PrintContent prints resource or tool output, rendering markdown when enabled
func (ui *UI) PrintContent(text string) {
	if ui.RenderMarkdown {
		// Configure glamour renderer based on color settings
		var style string
		if ui.noColor {
			style = "notty"
		} else {
			style = "dark"
		}

		// Get terminal width, but cap at a reasonable maximum so tables
		// don't become excessively wide on large terminals
		width := ui.getTerminalWidth()
		if width > 120 {
			width = 120
		}

		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithStylePath(style),
			glamour.WithWordWrap(width),
		)
		if err == nil {
			rendered, err := r.Render(text)
			if err == nil {
				fmt.Print(rendered)
				return
			}
			// If rendering fails, fall back to plain text
		}
	}

	fmt.Println(text)
}

// PrintSystemMessage prints a system message
func (ui *UI) PrintSystemMessage(text string) {
	fmt.Println(ui.colorize(ColorYellow, "System: ") + text)
}

// PrintError prints an error message
func (ui *UI) PrintError(text string) {
	fmt.Println(ui.colorize(ColorRed, "Error: ") + text)
}

// PrintEntry prints one listing line with a highlighted identifier
func (ui *UI) PrintEntry(id, description string) {
	if description == "" {
		fmt.Println("  " + ui.colorize(ColorCyan, id))
		return
	}
	fmt.Println("  " + ui.colorize(ColorCyan, id) + ui.colorize(ColorGray, " - "+description))
}

// PrintSeparator prints a separator line
func (ui *UI) PrintSeparator() {
	fmt.Println(ui.colorize(ColorGray, strings.Repeat("─", 80)))
}

// getTerminalWidth returns the maximum width for markdown rendering
func (ui *UI) getTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		// Leave a small margin to prevent awkward wrapping at terminal edge
		if width > 2 {
			return width - 2
		}
		return width
	}
	// Default to 80 columns if we can't determine terminal width
	return 80
}

// PromptForToken prompts the user to enter an authentication token
func (ui *UI) PromptForToken() string {
	fmt.Print(ui.colorize(ColorYellow, "Enter MCP server authentication token: "))
	var token string
	_, _ = fmt.Scanln(&token) //nolint:errcheck // User input, errors not actionable
	return strings.TrimSpace(token)
}

// PrintHelp prints the help message
func (ui *UI) PrintHelp() {
	help := `
Commands:
  /open <uri>                  Read a resource and display its contents
  /ls [uri]                    List children of a collection (default: resource://teams)
  /resources                   List concrete resources advertised by the server
  /templates                   List resource templates
  /tools                       List available tools
  /prompts                     List available prompts
  /prompt <name> [k=v ...]     Render a prompt with arguments
  /call <tool> [k=v ...]       Call a tool with arguments
  /pin <uri> [label]           Bookmark a resource URI
  /unpin <uri|id>              Remove a bookmark
  /pins                        List bookmarks
  /history [n]                 Show recent commands
  /set markdown <on|off>       Toggle markdown rendering
  /help                        Show this help message
  /clear                       Clear the screen
  /quit, /exit                 Exit

History navigation:
  Up/Down   - Navigate through command history
  Ctrl+R    - Reverse search history
`
	fmt.Println(ui.colorize(ColorCyan, help))
}

// ClearScreen clears the terminal screen
func (ui *UI) ClearScreen() {
	fmt.Print("\033[H\033[2J")
}
