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

// StandupReport creates a prompt that compiles a team standup summary
func StandupReport() Prompt {
	return Prompt{
		Definition: mcp.Prompt{
			Name:        "standup-report",
			Description: "Compile a standup-style status report for a team: what is in progress, what is blocked, and what sits untouched in the backlog.",
			Arguments: []mcp.PromptArgument{
				{
					Name:        "team_id",
					Description: "ID of the team to report on",
					Required:    true,
				},
			},
		},
		Handler: func(args map[string]string) mcp.PromptResult {
			teamID := args["team_id"]

			return mcp.PromptResult{
				Description: fmt.Sprintf("Standup report for team %s", teamID),
				Messages: []mcp.PromptMessage{
					{
						Role: "user",
						Content: mcp.ContentItem{
							Type: "text",
							Text: fmt.Sprintf(`Compile a standup report for the team with ID %q.

<report_workflow>
Step 1: Collect Active Work
- Call: list_issues(team_id=%q, state="In Progress")
- Group the results by assignee; unassigned active issues are a flag

Step 2: Collect Queued Work
- Call: list_issues(team_id=%q, state="Todo")
- Note the urgent and high-priority items near the top of the queue

Step 3: Spot Blockers
- For active issues that look stalled, call get_issue(id=..., include_comments=true)
- A trailing comment asking a question with no answer usually means blocked

Step 4: Write the Report
Format the summary as:
- **In progress** - one line per person: who, what, how long
- **Blocked** - issue, what it waits on
- **Up next** - the top 3-5 queued items by priority
Keep each line short; link issues by identifier (e.g. ENG-42)
</report_workflow>

<important>
- Do not modify any issue while reporting; this is a read-only pass
- If a state name does not exist for this team, list without the state filter and group manually
</important>

Produce the report now.`, teamID, teamID, teamID),
						},
					},
				},
			}
		},
	}
}
