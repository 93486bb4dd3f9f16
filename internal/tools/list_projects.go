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

// ListProjectsTool creates the list_projects tool
func ListProjectsTool(backend Backend) Tool {
	return Tool{
		Definition: mcp.Tool{
			Name: "list_projects",
			Description: `List the projects in the workspace.

<usecase>
Use list_projects to see larger initiatives:
- Find the project ID needed by create_issue or list_issues
- Check project states and progress at a glance
- See target dates across running projects
</usecase>

<examples>
✓ list_projects() → First 50 projects with state and progress
✓ list_projects(limit=10) → Only the first 10 projects
</examples>

<important>
- Project IDs returned here are the values other tools expect as project_id
- Progress is a percentage derived from completed issues
- If more projects exist than the limit, the response says so
</important>`,
			InputSchema: mcp.InputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"limit": map[string]interface{}{
						"type":        "number",
						"description": fmt.Sprintf("Maximum number of projects to return (default: %d)", pagination.DefaultPageSize),
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

			paginator, err := pagination.NewPaginatorWithPageSize(backend.Projects, int(limit))
			if err != nil {
				return mcp.NewToolError(fmt.Sprintf("Invalid limit: %v", err))
			}

			page, err := paginator.NextPage(ctx)
			if err != nil {
				return mcp.NewToolError(fmt.Sprintf("Failed to list projects: %v", err))
			}

			if len(page.Nodes) == 0 {
				return mcp.NewToolSuccess("No projects found.")
			}

			var sb strings.Builder
			sb.WriteString(format.ProjectTable(page.Nodes))
			sb.WriteString(fmt.Sprintf("\n\n%d project(s)", len(page.Nodes)))
			if paginator.HasNextPage() {
				sb.WriteString(" (more available, raise the limit to see them)")
			}

			return mcp.NewToolSuccess(sb.String())
		},
	}
}
