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
	"linear-mcp/internal/mcp"
	"linear-mcp/internal/pagination"
)

// ListTeamsTool creates the list_teams tool
func ListTeamsTool(backend Backend) Tool {
	return Tool{
		Definition: mcp.Tool{
			Name: "list_teams",
			Description: `List the teams in the Linear workspace.

<usecase>
Use list_teams to discover the workspace structure:
- Find the team ID needed by create_issue and list_issues
- See team keys (the prefix in issue identifiers like ENG-42)
- Get an overview of how the workspace is organized
</usecase>

<examples>
✓ list_teams() → First 50 teams with IDs, keys, and names
✓ list_teams(limit=10) → Only the first 10 teams
</examples>

<important>
- Team IDs returned here are the values other tools expect as team_id
- Results are tab-separated with a header row
- If more teams exist than the limit, the response says so
</important>`,
			InputSchema: mcp.InputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"limit": map[string]interface{}{
						"type":        "number",
						"description": fmt.Sprintf("Maximum number of teams to return (default: %d)", pagination.DefaultPageSize),
					},
				},
				Required: []string{},
			},
		},
		Handler: func(ctx context.Context, args map[string]interface{}) (mcp.ToolResponse, error) {
			if !backend.IsConfigured() {
				return mcp.NewToolError(mcp.APIKeyMissingError)
			}

			limit := ValidateOptionalNumberParam(args, "limit", pagination.DefaultPageSize)
			if errResp := ValidatePositiveNumber(limit, "limit"); errResp != nil {
				return *errResp, nil
			}

			paginator, err := pagination.NewPaginatorWithPageSize(backend.Teams, int(limit))
			if err != nil {
				return mcp.NewToolError(fmt.Sprintf("Invalid limit: %v", err))
			}

			page, err := paginator.NextPage(ctx)
			if err != nil {
				return mcp.NewToolError(fmt.Sprintf("Failed to list teams: %v", err))
			}

			if len(page.Nodes) == 0 {
				return mcp.NewToolSuccess("No teams found.")
			}

			var sb strings.Builder
			sb.WriteString(format.TeamTable(page.Nodes))
			sb.WriteString(fmt.Sprintf("\n\n%d team(s)", len(page.Nodes)))
			if paginator.HasNextPage() {
				sb.WriteString(" (more available, raise the limit to see them)")
			}

			return mcp.NewToolSuccess(sb.String())
		},
	}
}
