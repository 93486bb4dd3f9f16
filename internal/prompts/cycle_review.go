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

// CycleReview creates a prompt for reviewing a team's cycle progress
func CycleReview() Prompt {
	return Prompt{
		Definition: mcp.Prompt{
			Name:        "cycle-review",
			Description: "Review a team's cycles: which cycle is current, how its scope is progressing, and what should move to the next cycle.",
			Arguments: []mcp.PromptArgument{
				{
					Name:        "team_id",
					Description: "ID of the team whose cycles to review",
					Required:    true,
				},
			},
		},
		Handler: func(args map[string]string) mcp.PromptResult {
			teamID := args["team_id"]

			return mcp.PromptResult{
				Description: fmt.Sprintf("Cycle review for team %s", teamID),
				Messages: []mcp.PromptMessage{
					{
						Role: "user",
						Content: mcp.ContentItem{
							Type: "text",
							Text: fmt.Sprintf(`Review the cycles of the team with ID %q.

<review_workflow>
Step 1: List the Team's Cycles
- Call: read_resource(uri="resource://teams/%s/cycles")
- OR: list_resources(uri="resource://teams/%s/cycles") for a quick index
- Identify the current cycle by its start and end dates

Step 2: Inspect the Current Cycle
- Call: read_resource(uri="resource://cycles/{cycleId}") with the current cycle's ID
- Note the cycle's name, number, and remaining days

Step 3: Measure Progress
- Call: list_issues(team_id=%q) and relate issues to the cycle scope
- Count: completed vs in progress vs untouched
- Flag urgent items that are still untouched late in the cycle

Step 4: Recommend Adjustments
- Issues that clearly will not land: recommend moving to the next cycle
- Unassigned items mid-cycle: recommend owners
- Scope that grew after start: call it out explicitly
</review_workflow>

<important>
- This is an advisory pass; do not move issues without being asked
- If the team has no cycles, say so and stop - not every team runs cycles
</important>

Run the review and present findings as a short report with a recommendation list.`, teamID, teamID, teamID, teamID),
						},
					},
				},
			}
		},
	}
}
