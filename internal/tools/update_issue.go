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

	"linear-mcp/internal/linear"
	"linear-mcp/internal/logging"
	"linear-mcp/internal/mcp"
)

// UpdateIssueTool creates the update_issue tool
func UpdateIssueTool(backend Backend) Tool {
	return Tool{
		Definition: mcp.Tool{
			Name: "update_issue",
			Description: `Update fields of an existing issue. Only the fields given change; everything else is left as it was.

<usecase>
Use update_issue to move work forward:
- Reassign an issue to someone else
- Move an issue to another workflow state
- Raise or lower priority as plans change
- Rewrite the title or description for clarity
</usecase>

<examples>
✓ update_issue(id="issue-uuid", priority=2) → Only priority changes
✓ update_issue(id="issue-uuid", assignee_id="user-1", state_id="state-3") → Reassign and move
✓ update_issue(id="issue-uuid", title="Clearer title") → Rename
</examples>

<important>
- id is required; at least one other field must be given
- state_id is a workflow state ID, not a state name
- priority uses Linear's scale: 1=Urgent, 2=High, 3=Medium, 4=Low
</important>`,
			InputSchema: mcp.InputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"id": map[string]interface{}{
						"type":        "string",
						"description": "ID of the issue to update",
					},
					"title": map[string]interface{}{
						"type":        "string",
						"description": "New title",
					},
					"description": map[string]interface{}{
						"type":        "string",
						"description": "New description in markdown",
					},
					"priority": map[string]interface{}{
						"type":        "number",
						"description": "New priority: 1=Urgent, 2=High, 3=Medium, 4=Low",
					},
					"state_id": map[string]interface{}{
						"type":        "string",
						"description": "ID of the workflow state to move the issue to",
					},
					"assignee_id": map[string]interface{}{
						"type":        "string",
						"description": "ID of the user to assign",
					},
					"project_id": map[string]interface{}{
						"type":        "string",
						"description": "ID of the project to attach the issue to",
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

			var input linear.IssueUpdateInput
			changed := false
			if title := ValidateOptionalStringParam(args, "title", ""); title != "" {
				input.Title = &title
				changed = true
			}
			if desc := ValidateOptionalStringParam(args, "description", ""); desc != "" {
				input.Description = &desc
				changed = true
			}
			if p := ValidateOptionalNumberParam(args, "priority", 0); p != 0 {
				priority := int(p)
				if priority < 1 || priority > 4 {
					return mcp.NewToolError("Invalid priority: must be 1 (Urgent), 2 (High), 3 (Medium), or 4 (Low)")
				}
				input.Priority = &priority
				changed = true
			}
			if state := ValidateOptionalStringParam(args, "state_id", ""); state != "" {
				input.StateID = &state
				changed = true
			}
			if assignee := ValidateOptionalStringParam(args, "assignee_id", ""); assignee != "" {
				input.AssigneeID = &assignee
				changed = true
			}
			if project := ValidateOptionalStringParam(args, "project_id", ""); project != "" {
				input.ProjectID = &project
				changed = true
			}

			if !changed {
				return mcp.NewToolError("Nothing to update: provide at least one field besides 'id'")
			}

			issue, err := backend.UpdateIssue(ctx, id, input)
			if err != nil {
				if errors.Is(err, linear.ErrNotFound) {
					return mcp.NewToolError(fmt.Sprintf("Issue not found: %s", id))
				}
				return mcp.NewToolError(fmt.Sprintf("Failed to update issue: %v", err))
			}

			logging.Info("issue_updated",
				"identifier", issue.Identifier,
			)

			return mcp.NewToolSuccess(fmt.Sprintf("Updated issue %s: %s", issue.Identifier, issue.Title))
		},
	}
}
