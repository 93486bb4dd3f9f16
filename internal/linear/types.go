/*-------------------------------------------------------------------------
 *
 * Linear MCP - Linear API Client
 *
 * Copyright (c) 2026, Linear MCP Server contributors
 * This software is released under The MIT License
 *
 *-------------------------------------------------------------------------
 */

package linear

import "time"

// The entity structs mirror exactly the fields the queries in queries.go
// select. Fields the API may omit or null out are pointers; everything
// else is required and validated by decoding.

// Team is a Linear team, the container for issues and cycles.
type Team struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Key         string  `json:"key"`
	Description *string `json:"description"`
}

// WorkflowState is one column of a team's issue workflow.
type WorkflowState struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color"`
}

// UserRef is the compact user shape embedded in other entities.
type UserRef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// User is a workspace member.
type User struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	DisplayName string     `json:"displayName"`
	Email       string     `json:"email"`
	Active      bool       `json:"active"`
	CreatedAt   *time.Time `json:"createdAt"`
}

// TeamRef is the compact team shape embedded in other entities.
type TeamRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Key  string `json:"key"`
}

// ProjectRef is the compact project shape embedded in other entities.
type ProjectRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Label is an issue label.
type Label struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	Description *string `json:"description"`
}

// Issue is a Linear issue with the relations the server renders.
type Issue struct {
	ID          string         `json:"id"`
	Identifier  string         `json:"identifier"`
	Title       string         `json:"title"`
	Description *string        `json:"description"`
	Priority    int            `json:"priority"`
	URL         string         `json:"url"`
	CreatedAt   *time.Time     `json:"createdAt"`
	UpdatedAt   *time.Time     `json:"updatedAt"`
	State       *WorkflowState `json:"state"`
	Assignee    *UserRef       `json:"assignee"`
	Team        *TeamRef       `json:"team"`
	Project     *ProjectRef    `json:"project"`
	Labels      *LabelList     `json:"labels"`
}

// LabelList is the nested label connection embedded in an issue. Labels
// per issue are few, so the embedded page is never paged further.
type LabelList struct {
	Nodes []Label `json:"nodes"`
}

// Project is a Linear project.
type Project struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	State       string     `json:"state"`
	Progress    float64    `json:"progress"`
	TargetDate  *string    `json:"targetDate"`
	URL         string     `json:"url"`
	CreatedAt   *time.Time `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
	Lead        *UserRef   `json:"lead"`
}

// Cycle is one sprint-like iteration owned by a team.
type Cycle struct {
	ID          string     `json:"id"`
	Number      int        `json:"number"`
	Name        *string    `json:"name"`
	StartsAt    *time.Time `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt"`
	Progress    float64    `json:"progress"`
	CompletedAt *time.Time `json:"completedAt"`
	Team        *TeamRef   `json:"team"`
}

// Comment is one entry of an issue's comment thread.
type Comment struct {
	ID        string     `json:"id"`
	Body      string     `json:"body"`
	URL       string     `json:"url"`
	CreatedAt *time.Time `json:"createdAt"`
	User      *UserRef   `json:"user"`
}

// Document is a Linear document, optionally attached to a project.
type Document struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Icon      *string     `json:"icon"`
	Content   *string     `json:"content"`
	URL       string      `json:"url"`
	CreatedAt *time.Time  `json:"createdAt"`
	UpdatedAt *time.Time  `json:"updatedAt"`
	Project   *ProjectRef `json:"project"`
}

// IssueFilter narrows an issue listing. Zero-valued fields are omitted
// from the query.
type IssueFilter struct {
	TeamID     string
	AssigneeID string
	StateName  string
	ProjectID  string
}

// toGraphQL builds the nested filter object the issues query expects.
// Returns nil when no field is set so the variable can be omitted.
func (f *IssueFilter) toGraphQL() map[string]interface{} {
	if f == nil {
		return nil
	}
	filter := make(map[string]interface{})
	if f.TeamID != "" {
		filter["team"] = map[string]interface{}{"id": map[string]interface{}{"eq": f.TeamID}}
	}
	if f.AssigneeID != "" {
		filter["assignee"] = map[string]interface{}{"id": map[string]interface{}{"eq": f.AssigneeID}}
	}
	if f.StateName != "" {
		filter["state"] = map[string]interface{}{"name": map[string]interface{}{"eqIgnoreCase": f.StateName}}
	}
	if f.ProjectID != "" {
		filter["project"] = map[string]interface{}{"id": map[string]interface{}{"eq": f.ProjectID}}
	}
	if len(filter) == 0 {
		return nil
	}
	return filter
}

// IssueCreateInput is the payload for creating an issue.
type IssueCreateInput struct {
	TeamID      string   `json:"teamId"`
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Priority    *int     `json:"priority,omitempty"`
	AssigneeID  *string  `json:"assigneeId,omitempty"`
	ProjectID   *string  `json:"projectId,omitempty"`
	LabelIDs    []string `json:"labelIds,omitempty"`
}

// IssueUpdateInput is the payload for updating an issue. Nil fields are
// left untouched by the API.
type IssueUpdateInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Priority    *int    `json:"priority,omitempty"`
	StateID     *string `json:"stateId,omitempty"`
	AssigneeID  *string `json:"assigneeId,omitempty"`
	ProjectID   *string `json:"projectId,omitempty"`
}

// CommentCreateInput is the payload for adding a comment to an issue.
type CommentCreateInput struct {
	IssueID string `json:"issueId"`
	Body    string `json:"body"`
}

// PriorityLabel names the priority scale used across Linear.
func PriorityLabel(priority int) string {
	switch priority {
	case 1:
		return "Urgent"
	case 2:
		return "High"
	case 3:
		return "Medium"
	case 4:
		return "Low"
	default:
		return "No priority"
	}
}
