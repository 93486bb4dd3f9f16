/*-------------------------------------------------------------------------
 *
 * Linear MCP Server
 *
 * Copyright (c) 2026, Linear MCP Server contributors
 * This software is released under The MIT License
 *
 *-------------------------------------------------------------------------
 */

package format

import (
	"fmt"
	"strings"

	"linear-mcp/internal/linear"
)

// IssueMarkdown renders one issue as a markdown document for tool
// output.
func IssueMarkdown(issue *linear.Issue) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s: %s\n\n", issue.Identifier, issue.Title)

	if issue.State != nil {
		fmt.Fprintf(&sb, "- **State**: %s\n", issue.State.Name)
	}
	fmt.Fprintf(&sb, "- **Priority**: %s\n", linear.PriorityLabel(issue.Priority))
	if issue.Assignee != nil {
		fmt.Fprintf(&sb, "- **Assignee**: %s\n", issue.Assignee.Name)
	}
	if issue.Team != nil {
		fmt.Fprintf(&sb, "- **Team**: %s (%s)\n", issue.Team.Name, issue.Team.Key)
	}
	if issue.Project != nil {
		fmt.Fprintf(&sb, "- **Project**: %s\n", issue.Project.Name)
	}
	if issue.Labels != nil && len(issue.Labels.Nodes) > 0 {
		names := make([]string, 0, len(issue.Labels.Nodes))
		for _, label := range issue.Labels.Nodes {
			names = append(names, label.Name)
		}
		fmt.Fprintf(&sb, "- **Labels**: %s\n", strings.Join(names, ", "))
	}
	if issue.URL != "" {
		fmt.Fprintf(&sb, "- **URL**: %s\n", issue.URL)
	}

	if issue.Description != nil && *issue.Description != "" {
		sb.WriteString("\n")
		sb.WriteString(*issue.Description)
		sb.WriteString("\n")
	}

	return sb.String()
}

// IssueTable renders issues as a TSV table with one row per issue.
func IssueTable(issues []linear.Issue) string {
	columns := []string{"identifier", "title", "state", "priority", "assignee", "team"}
	rows := make([][]interface{}, 0, len(issues))

	for _, issue := range issues {
		state := ""
		if issue.State != nil {
			state = issue.State.Name
		}
		assignee := ""
		if issue.Assignee != nil {
			assignee = issue.Assignee.Name
		}
		team := ""
		if issue.Team != nil {
			team = issue.Team.Key
		}
		rows = append(rows, []interface{}{
			issue.Identifier,
			issue.Title,
			state,
			linear.PriorityLabel(issue.Priority),
			assignee,
			team,
		})
	}

	return Table(columns, rows)
}

// TeamTable renders teams as a TSV table.
func TeamTable(teams []linear.Team) string {
	columns := []string{"id", "key", "name", "description"}
	rows := make([][]interface{}, 0, len(teams))

	for _, team := range teams {
		rows = append(rows, []interface{}{team.ID, team.Key, team.Name, team.Description})
	}

	return Table(columns, rows)
}

// ProjectTable renders projects as a TSV table.
func ProjectTable(projects []linear.Project) string {
	columns := []string{"id", "name", "state", "progress", "target_date", "lead"}
	rows := make([][]interface{}, 0, len(projects))

	for _, project := range projects {
		lead := ""
		if project.Lead != nil {
			lead = project.Lead.Name
		}
		rows = append(rows, []interface{}{
			project.ID,
			project.Name,
			project.State,
			fmt.Sprintf("%.0f%%", project.Progress*100),
			project.TargetDate,
			lead,
		})
	}

	return Table(columns, rows)
}

// CommentThread renders an issue's comments as markdown sections in
// thread order.
func CommentThread(comments []linear.Comment) string {
	var sb strings.Builder

	for i, comment := range comments {
		if i > 0 {
			sb.WriteString("\n---\n\n")
		}
		author := "Unknown"
		if comment.User != nil {
			author = comment.User.Name
		}
		when := ""
		if comment.CreatedAt != nil {
			when = comment.CreatedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(&sb, "**%s** %s\n\n%s\n", author, when, comment.Body)
	}

	return sb.String()
}
