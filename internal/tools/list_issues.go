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
	"linear-mcp/internal/mcp"
	"linear-mcp/internal/pagination"
)

// ListIssuesTool creates the list_issues tool for filtered issue listing
func ListIssuesTool(backend Backend) Tool {
	return Tool{
		Definition: mcp.Tool{
			Name: "list_issues",
			Description: `List issues in the workspace, optionally filtered by team, assignee, state, or project.

<usecase>
Use list_issues to survey work items:
- Review a team's backlog before planning
- Find what a specific person is working on
- Check which issues sit in a given workflow state
- List everything attached to a project
</usecase>

<examples>
✓ list_issues(team_id="abc123") → Issues belonging to one team
✓ list_issues(assignee_id="user-1", state="In Progress") → One person's active work
✓ list_issues(project_id="proj-9", limit=10) → First 10 issues of a project
✓ list_issues() → First 50 issues across the workspace
</examples>

<important>
- Filters combine with AND semantics: every filter given must match
- state matches the workflow state name exactly (for example "In Progress")
- Use get_issue with an identifier from the results for full detail
- If more issues match than the limit, the response says so
</important>`,
			InputSchema: mcp.InputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"team_id": map[string]interface{}{
						"type":        "string",
						"description": "Only issues belonging to this team",
					},
					"assignee_id": map[string]interface{}{
						"type":        "string",
						"description": "Only issues assigned to this user",
					},
					"state": map[string]interface{}{
						"type":        "string",
						"description": "Only issues in this workflow state (exact name, e.g. \"Todo\")",
					},
					"project_id": map[string]interface{}{
						"type":        "string",
						"description": "Only issues attached to this project",
					},
					"limit": map[string]interface{}{
						"type":        "number",
						"description": fmt.Sprintf("Maximum number of issues to return (default: %d)", pagination.DefaultPageSize),
					},
				},
				Required: []string{},
			},
		},
		Handler: func(ctx context.Context, args map[string]interface{}) (mcp.ToolResponse, error) {
			if !backend.IsConfigured() {
				return mcp.NewToolError(mcp.APIKeyMissingError)
			}

			filter := issueFilterFromArgs(args)

			limit := ValidateOptionalNumberParam(args, "limit", pagination.DefaultPageSize)
			if errResp := ValidatePositiveNumber(limit, "limit"); errResp != nil {
				return *errResp, nil
			}

			fetch := func(ctx context.Context, req pagination.PageRequest) (pagination.Page[linear.Issue], error) {
				return backend.Issues(ctx, req, filter)
			}
			paginator, err := pagination.NewPaginatorWithPageSize(fetch, int(limit))
			if err != nil {
				return mcp.NewToolError(fmt.Sprintf("Invalid limit: %v", err))
			}

			page, err := paginator.NextPage(ctx)
			if err != nil {
				return mcp.NewToolError(fmt.Sprintf("Failed to list issues: %v", err))
			}

			if len(page.Nodes) == 0 {
				return mcp.NewToolSuccess("No issues match the given filters.")
			}

			var sb strings.Builder
			sb.WriteString(format.IssueTable(page.Nodes))
			sb.WriteString(fmt.Sprintf("\n\n%d issue(s)", len(page.Nodes)))
			if paginator.HasNextPage() {
				sb.WriteString(" (more available, raise the limit to see them)")
			}

			return mcp.NewToolSuccess(sb.String())
		},
	}
}

// issueFilterFromArgs builds an IssueFilter from the optional filter
// arguments. Returns nil when no filter was given so the backend can
// skip the filter clause entirely.
func issueFilterFromArgs(args map[string]interface{}) *linear.IssueFilter {
	filter := &linear.IssueFilter{
		TeamID:     ValidateOptionalStringParam(args, "team_id", ""),
		AssigneeID: ValidateOptionalStringParam(args, "assignee_id", ""),
		StateName:  ValidateOptionalStringParam(args, "state", ""),
		ProjectID:  ValidateOptionalStringParam(args, "project_id", ""),
	}
	if *filter == (linear.IssueFilter{}) {
		return nil
	}
	return filter
}
