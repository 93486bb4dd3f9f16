/*-------------------------------------------------------------------------
 *
 * Linear MCP Server
 *
 * Copyright (c) 2026, Linear MCP Server contributors
 * This software is released under The MIT License
 *
 *-------------------------------------------------------------------------
 */

package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"

	"linear-mcp/internal/linear"
	"linear-mcp/internal/logging"
	"linear-mcp/internal/mcp"
)

// captureMaxChars caps the converted page content so a long article does
// not balloon the issue description.
const captureMaxChars = 8000

// captureTimeout bounds the page fetch.
const captureTimeout = 30 * time.Second

// CaptureIssueTool creates the capture_issue tool. It fetches a web
// page, converts its content to markdown, and drafts or creates an
// issue from it. httpClient may be nil; a client with a sane timeout is
// used then.
func CaptureIssueTool(backend Backend, httpClient *http.Client) Tool {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: captureTimeout}
	}

	return Tool{
		Definition: mcp.Tool{
			Name: "capture_issue",
			Description: `Capture a web page as an issue: fetch the URL, convert the page to markdown, and draft an issue from it.

<usecase>
Use capture_issue to turn external content into tracked work:
- File a bug from an error-tracker or forum page
- Capture a blog post or announcement that requires follow-up work
- Turn a support thread into an actionable issue with context attached
</usecase>

<examples>
✓ capture_issue(url="https://example.com/incident/42", team_id="abc123") → Draft shown, nothing created
✓ capture_issue(url="https://example.com/incident/42", team_id="abc123", create=true) → Issue created
✓ capture_issue(url="...", team_id="abc123", title="Handle API deprecation") → Draft with your title
</examples>

<important>
- By default only a draft is returned; pass create=true to actually file the issue
- The page title becomes the issue title unless you provide one
- Page content is converted to markdown and truncated if very long
- Only http and https URLs are accepted
</important>`,
			InputSchema: mcp.InputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"url": map[string]interface{}{
						"type":        "string",
						"description": "URL of the page to capture",
					},
					"team_id": map[string]interface{}{
						"type":        "string",
						"description": "ID of the team the issue belongs to",
					},
					"title": map[string]interface{}{
						"type":        "string",
						"description": "Issue title (default: the page's <title>)",
					},
					"create": map[string]interface{}{
						"type":        "boolean",
						"description": "Create the issue instead of returning a draft (default: false)",
						"default":     false,
					},
				},
				Required: []string{"url", "team_id"},
			},
		},
		Handler: func(ctx context.Context, args map[string]interface{}) (mcp.ToolResponse, error) {
			if !backend.IsConfigured() {
				return mcp.NewToolError(mcp.APIKeyMissingError)
			}

			pageURL, errResp := ValidateStringParam(args, "url")
			if errResp != nil {
				return *errResp, nil
			}
			teamID, errResp := ValidateStringParam(args, "team_id")
			if errResp != nil {
				return *errResp, nil
			}
			title := ValidateOptionalStringParam(args, "title", "")
			create := ValidateBoolParam(args, "create", false)

			parsed, err := url.Parse(pageURL)
			if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
				return mcp.NewToolError(fmt.Sprintf("Invalid URL: %s (only http and https are supported)", pageURL))
			}

			pageTitle, content, err := capturePage(ctx, httpClient, parsed)
			if err != nil {
				return mcp.NewToolError(fmt.Sprintf("Failed to capture page: %v", err))
			}

			if title == "" {
				title = pageTitle
			}
			if title == "" {
				title = pageURL
			}

			description := fmt.Sprintf("%s\n\n---\n\nCaptured from %s", content, pageURL)

			if !create {
				var sb strings.Builder
				sb.WriteString("Draft issue (pass create=true to file it):\n\n")
				sb.WriteString(fmt.Sprintf("Team: %s\n", teamID))
				sb.WriteString(fmt.Sprintf("Title: %s\n\n", title))
				sb.WriteString(description)
				return mcp.NewToolSuccess(sb.String())
			}

			issue, err := backend.CreateIssue(ctx, linear.IssueCreateInput{
				TeamID:      teamID,
				Title:       title,
				Description: &description,
			})
			if err != nil {
				return mcp.NewToolError(fmt.Sprintf("Failed to create issue: %v", err))
			}

			logging.Info("issue_captured",
				"identifier", issue.Identifier,
				"source_url", pageURL,
			)

			msg := fmt.Sprintf("Created issue %s from %s", issue.Identifier, pageURL)
			if issue.URL != "" {
				msg += fmt.Sprintf("\nURL: %s", issue.URL)
			}
			return mcp.NewToolSuccess(msg)
		},
	}
}

// capturePage fetches the URL and returns the page title and its main
// content converted to markdown.
func capturePage(ctx context.Context, client *http.Client, pageURL *url.URL) (title string, content string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL.String(), nil)
	if err != nil {
		return "", "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("fetch returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse page: %w", err)
	}

	title = strings.TrimSpace(doc.Find("title").First().Text())

	// Boilerplate elements only add noise to an issue description.
	doc.Find("script, style, noscript, nav, header, footer, iframe").Remove()

	selection := doc.Find("article").First()
	if selection.Length() == 0 {
		selection = doc.Find("main").First()
	}
	if selection.Length() == 0 {
		selection = doc.Selection
	}

	converter := md.NewConverter(pageURL.Host, true, nil)
	content = strings.TrimSpace(converter.Convert(selection))
	if content == "" {
		return "", "", fmt.Errorf("no convertible content found at %s", pageURL)
	}

	if len(content) > captureMaxChars {
		content = content[:captureMaxChars] + "\n\n*(content truncated)*"
	}

	return title, content, nil
}
