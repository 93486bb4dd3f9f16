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
	"strings"

	"linear-mcp/internal/format"
	"linear-mcp/internal/linear"
	"linear-mcp/internal/logging"
	"linear-mcp/internal/mcp"
	"linear-mcp/internal/pagination"
)

// SearchIssuesTool creates the search_issues tool for text search
func SearchIssuesTool(backend Backend) Tool {
	return Tool{
		Definition: mcp.Tool{
			Name: "search_issues",
			Description: `Search issues by text query across titles and descriptions.

<usecase>
Use search_issues when you know words but not identifiers:
- Find the issue tracking a bug you only remember by symptom
- Check whether a problem has already been filed before creating a duplicate
- Locate issues mentioning a component or error message
</usecase>

<examples>
✓ search_issues(query="login timeout") → Issues mentioning login timeout
✓ search_issues(query="crash", limit=5) → Top 5 matches for "crash"
</examples>

<important>
- Matching is full-text on the Linear side; quote nothing, just give words
- Use get_issue with a result's ID for full detail
- For structural filters (team, assignee, state) prefer list_issues
</important>`,
			InputSchema: mcp.InputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"query": map[string]interface{}{
						"type":        "string",
						"description": "Text to search for",
					},
					"limit": map[string]interface{}{
						"type":        "number",
						"description": fmt.Sprintf("Maximum number of issues to return (default: %d)", pagination.DefaultPageSize),
					},
				},
				Required: []string{"query"},
			},
		},
		Handler: func(ctx context.Context, args map[string]interface{}) (mcp.ToolResponse, error) {
			if !backend.IsConfigured() {
				return mcp.NewToolError(mcp.APIKeyMissingError)
			}

			query, errResp := ValidateStringParam(args, "query")
			if errResp != nil {
				return *errResp, nil
			}

			limit := ValidateOptionalNumberParam(args, "limit", pagination.DefaultPageSize)
			if errResp := ValidatePositiveNumber(limit, "limit"); errResp != nil {
				return *errResp, nil
			}

			issues, hasMore, err := searchWithFallback(ctx, backend, query, int(limit))
			if err != nil {
				return mcp.NewToolError(fmt.Sprintf("Failed to search issues: %v", err))
			}

			if len(issues) == 0 {
				return mcp.NewToolSuccess(fmt.Sprintf("No issues match %q.", query))
			}

			var sb strings.Builder
			sb.WriteString(format.IssueTable(issues))
			sb.WriteString(fmt.Sprintf("\n\n%d issue(s) matching %q", len(issues), query))
			if hasMore {
				sb.WriteString(" (more available, raise the limit to see them)")
			}

			return mcp.NewToolSuccess(sb.String())
		},
	}
}

// searchWithFallback runs the backend's full-text search, and when that
// fails falls back to scanning the issue list for substring matches.
// Some API key scopes reject the search query while still allowing
// plain listing.
func searchWithFallback(ctx context.Context, backend Backend, query string, limit int) ([]linear.Issue, bool, error) {
	fetch := func(ctx context.Context, req pagination.PageRequest) (pagination.Page[linear.Issue], error) {
		return backend.SearchIssues(ctx, query, req)
	}
	paginator, err := pagination.NewPaginatorWithPageSize(fetch, limit)
	if err != nil {
		return nil, false, err
	}

	page, err := paginator.NextPage(ctx)
	if err == nil {
		return page.Nodes, paginator.HasNextPage(), nil
	}

	logging.Warn("Issue search failed, scanning issue list instead",
		"error", err.Error(),
	)

	all, err := pagination.FetchAllPages(ctx, func(ctx context.Context, req pagination.PageRequest) (pagination.Page[linear.Issue], error) {
		return backend.Issues(ctx, req, nil)
	}, pagination.PageRequest{})
	if err != nil {
		return nil, false, err
	}

	needle := strings.ToLower(query)
	var matches []linear.Issue
	for _, issue := range all {
		if issueMatches(issue, needle) {
			matches = append(matches, issue)
			if len(matches) > limit {
				break
			}
		}
	}

	if len(matches) > limit {
		return matches[:limit], true, nil
	}
	return matches, false, nil
}

func issueMatches(issue linear.Issue, needle string) bool {
	if strings.Contains(strings.ToLower(issue.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(issue.Identifier), needle) {
		return true
	}
	if issue.Description != nil && strings.Contains(strings.ToLower(*issue.Description), needle) {
		return true
	}
	return false
}
