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
	"errors"
	"fmt"
	"strings"

	"linear-mcp/internal/format"
	"linear-mcp/internal/linear"
	"linear-mcp/internal/mcp"
	"linear-mcp/internal/pagination"
)

// GetIssueTool creates the get_issue tool for reading a single issue
func GetIssueTool(backend Backend) Tool {
	return Tool{
		Definition: mcp.Tool{
			Name: "get_issue",
			Description: `Get the full detail of a single issue, optionally with its comment thread.

<usecase>
Use get_issue when you need everything about one work item:
- Read the description before proposing a fix
- Check state, priority, assignee, and project in one call
- Review the discussion by including comments
</usecase>

<examples>
✓ get_issue(id="issue-uuid") → Issue rendered as markdown
✓ get_issue(id="issue-uuid", include_comments=true) → Issue plus its comment thread
</examples>

<important>
- id is the issue's ID, not the human identifier like ENG-42; use
  list_issues or search_issues to find the ID first
- include_comments adds one extra backend call
</important>`,
			InputSchema: mcp.InputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"id": map[string]interface{}{
						"type":        "string",
						"description": "ID of the issue to fetch",
					},
					"include_comments": map[string]interface{}{
						"type":        "boolean",
						"description": "Also fetch the issue's comments (default: false)",
						"default":     false,
					},
				},
				Required: []string{"id"},
			},
		},
		Handler: func(ctx context.Context, args map[string]interface{}) (mcp.ToolResponse, error) {
			if !backend.IsConfigured() {
				return mcp.NewToolError(mcp.APIKeyMissingError)
			}

			id, errResp := ValidateStringParam(args, "id")
			if errResp != nil {
				return *errResp, nil
			}
			includeComments := ValidateBoolParam(args, "include_comments", false)

			issue, err := backend.Issue(ctx, id)
			if err != nil {
				if errors.Is(err, linear.ErrNotFound) {
					return mcp.NewToolError(fmt.Sprintf("Issue not found: %s", id))
				}
				return mcp.NewToolError(fmt.Sprintf("Failed to fetch issue: %v", err))
			}

			var sb strings.Builder
			sb.WriteString(format.IssueMarkdown(issue))

			if includeComments {
				comments, err := pagination.FetchAllPages(ctx, func(ctx context.Context, req pagination.PageRequest) (pagination.Page[linear.Comment], error) {
					return backend.IssueComments(ctx, id, req)
				}, pagination.PageRequest{})
				if err != nil {
					return mcp.NewToolError(fmt.Sprintf("Failed to fetch comments: %v", err))
				}
				sb.WriteString("\n\n## Comments\n\n")
				if len(comments) == 0 {
					sb.WriteString("No comments.")
				} else {
					sb.WriteString(format.CommentThread(comments))
				}
			}

			return mcp.NewToolSuccess(sb.String())
		},
	}
}
