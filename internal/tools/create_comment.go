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

// CreateCommentTool creates the create_comment tool
func CreateCommentTool(backend Backend) Tool {
	return Tool{
		Definition: mcp.Tool{
			Name: "create_comment",
			Description: `Add a comment to an issue.

<usecase>
Use create_comment to record findings on an issue:
- Post investigation results or a root-cause summary
- Leave a status update without changing issue fields
- Answer a question asked in the issue thread
</usecase>

<examples>
✓ create_comment(issue_id="issue-uuid", body="Root cause: stale cache entry") → Comment posted
✓ create_comment(issue_id="issue-uuid", body="Fixed in #412, verifying on staging") → Status note
</examples>

<important>
- body is markdown; code blocks and links render in Linear
- issue_id is the issue's ID, not the identifier like ENG-42
- Comments cannot be edited through this server once posted
</important>`,
			InputSchema: mcp.InputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"issue_id": map[string]interface{}{
						"type":        "string",
						"description": "ID of the issue to comment on",
					},
					"body": map[string]interface{}{
						"type":        "string",
						"description": "Comment body in markdown",
					},
				},
				Required: []string{"issue_id", "body"},
			},
		},
		Handler: func(ctx context.Context, args map[string]interface{}) (mcp.ToolResponse, error) {
			if !backend.IsConfigured() {
				return mcp.NewToolError(mcp.APIKeyMissingError)
			}

			issueID, errResp := ValidateStringParam(args, "issue_id")
			if errResp != nil {
				return *errResp, nil
			}
			body, errResp := ValidateStringParam(args, "body")
			if errResp != nil {
				return *errResp, nil
			}

			comment, err := backend.CreateComment(ctx, linear.CommentCreateInput{
				IssueID: issueID,
				Body:    body,
			})
			if err != nil {
				if errors.Is(err, linear.ErrNotFound) {
					return mcp.NewToolError(fmt.Sprintf("Issue not found: %s", issueID))
				}
				return mcp.NewToolError(fmt.Sprintf("Failed to create comment: %v", err))
			}

			logging.Info("comment_created",
				"issue_id", issueID,
			)

			msg := "Comment added."
			if comment.URL != "" {
				msg = fmt.Sprintf("Comment added: %s", comment.URL)
			}
			return mcp.NewToolSuccess(msg)
		},
	}
}
