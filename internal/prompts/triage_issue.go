/*-------------------------------------------------------------------------
 *
 * Linear MCP Server
 *
 * Copyright (c) 2026, Linear MCP Server contributors
 * This software is released under The MIT License
 *
 *-------------------------------------------------------------------------
 */

package prompts

import (
	"fmt"

	"linear-mcp/internal/mcp"
)

// TriageIssue creates a prompt for triaging a single issue end to end
func TriageIssue() Prompt {
	return Prompt{
		Definition: mcp.Prompt{
			Name:        "triage-issue",
			Description: "Guided triage of one issue: assess severity, set priority, assign an owner, and record the reasoning as a comment.",
			Arguments: []mcp.PromptArgument{
				{
					Name:        "issue_id",
					Description: "ID of the issue to triage",
					Required:    true,
				},
			},
		},
		Handler: func(args map[string]string) mcp.PromptResult {
			issueID := args["issue_id"]

			return mcp.PromptResult{
				Description: fmt.Sprintf("Triaging issue %s", issueID),
				Messages: []mcp.PromptMessage{
					{
						Role: "user",
						Content: mcp.ContentItem{
							Type: "text",
							Text: fmt.Sprintf(`Triage the issue with ID %q and bring it into a workable state.

<triage_workflow>
Step 1: Read the Issue
- Call: get_issue(id=%q, include_comments=true)
- Understand: what is reported, how it was found, who is affected
- Check the comments for reproduction details or prior analysis

Step 2: Assess Severity
- Data loss, security exposure, or a full outage → priority 1 (Urgent)
- Broken core workflow with no workaround → priority 2 (High)
- Degraded behavior with a workaround → priority 3 (Medium)
- Cosmetic or minor annoyance → priority 4 (Low)

Step 3: Find an Owner
- Call: list_issues(team_id=..., assignee_id=...) for candidate owners' current load
- Prefer whoever touched the affected area last; avoid overloading one person
- If ownership is unclear, leave it unassigned and say so in the comment

Step 4: Apply the Decision
- Call: update_issue(id=%q, priority=..., assignee_id=...)
- Only set the fields you decided on; leave the rest untouched

Step 5: Record the Reasoning
- Call: create_comment(issue_id=%q, body=...)
- One short paragraph: severity rationale, chosen owner, next step
</triage_workflow>

<early_exit_conditions>
Stop and report instead of updating if:
- The issue cannot be found: the ID may be stale
- The issue is already triaged (priority set and assigned): nothing to do
- The report lacks enough detail to judge severity: comment asking for reproduction steps
</early_exit_conditions>

Work through the steps now and summarize the decision you applied.`, issueID, issueID, issueID, issueID),
						},
					},
				},
			}
		},
	}
}
