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

	"linear-mcp/internal/linear"
	"linear-mcp/internal/logging"
	"linear-mcp/internal/mcp"
)

// CreateIssueTool creates the create_issue tool
func CreateIssueTool(backend Backend) Tool {
	return Tool{
		Definition: mcp.Tool{
			Name: "create_issue",
			Description: `Create a new issue in a team.

<usecase>
Use create_issue to file new work items:
- Record a bug report with reproduction steps in the description
- Capture a feature request discussed in conversation
- Break a large task into tracked sub-tasks
</usecase>

<examples>
✓ create_issue(team_id="abc123", title="Fix login flow") → Minimal issue
✓ create_issue(team_id="abc123", title="Crash on startup", priority=1, assignee_id="user-1") → Urgent, assigned
✓ create_issue(team_id="abc123", title="Docs pass", description="...", labels=["docs"]) → With body and labels
</examples>

<important>
- team_id and title are required; find team IDs with list_teams
- priority uses Linear's scale: 1=Urgent, 2=High, 3=Medium, 4=Low
- labels takes label IDs, not label names
- The response includes the new issue's identifier and URL
</important>`,
			InputSchema: mcp.InputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"team_id": map[string]interface{}{
						"type":        "string",
						"description": "ID of the team the issue belongs to",
					},
					"title": map[string]interface{}{
						"type":        "string",
						"description": "Issue title",
					},
					"description": map[string]interface{}{
						"type":        "string",
						"description": "Issue description in markdown",
					},
					"priority": map[string]interface{}{
						"type":        "number",
						"description": "Priority: 1=Urgent, 2=High, 3=Medium, 4=Low",
					},
					"assignee_id": map[string]interface{}{
						"type":        "string",
						"description": "ID of the user to assign",
					},
					"project_id": map[string]interface{}{
						"type":        "string",
						"description": "ID of the project to attach the issue to",
					},
					"labels": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Label IDs to apply",
					},
				},
				Required: []string{"team_id", "title"},
			},
		},
		Handler: func(ctx context.Context, args map[string]interface{}) (mcp.ToolResponse, error) {
			if !backend.IsConfigured() {
				return mcp.NewToolError(mcp.APIKeyMissingError)
			}

			teamID, errResp := ValidateStringParam(args, "team_id")
			if errResp != nil {
				return *errResp, nil
			}
			title, errResp := ValidateStringParam(args, "title")
			if errResp != nil {
				return *errResp, nil
			}

			input := linear.IssueCreateInput{
				TeamID:   teamID,
				Title:    title,
				LabelIDs: ValidateStringSliceParam(args, "labels"),
			}
			if desc := ValidateOptionalStringParam(args, "description", ""); desc != "" {
				input.Description = &desc
			}
			if p := ValidateOptionalNumberParam(args, "priority", 0); p != 0 {
				priority := int(p)
				if priority < 1 || priority > 4 {
					return mcp.NewToolError("Invalid priority: must be 1 (Urgent), 2 (High), 3 (Medium), or 4 (Low)")
				}
				input.Priority = &priority
			}
			if assignee := ValidateOptionalStringParam(args, "assignee_id", ""); assignee != "" {
				input.AssigneeID = &assignee
			}
			if project := ValidateOptionalStringParam(args, "project_id", ""); project != "" {
				input.ProjectID = &project
			}

			issue, err := backend.CreateIssue(ctx, input)
			if err != nil {
				return mcp.NewToolError(fmt.Sprintf("Failed to create issue: %v", err))
			}

			logging.Info("issue_created",
				"identifier", issue.Identifier,
				"team_id", teamID,
			)

			msg := fmt.Sprintf("Created issue %s: %s", issue.Identifier, issue.Title)
			if issue.URL != "" {
				msg += fmt.Sprintf("\nURL: %s", issue.URL)
			}
			return mcp.NewToolSuccess(msg)
		},
	}
}
