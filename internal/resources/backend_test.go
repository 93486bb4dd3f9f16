/*-------------------------------------------------------------------------
 *
 * Linear MCP Server
 *
 * Copyright (c) 2026, Linear MCP Server contributors
 * This software is released under The MIT License
 *
 *-------------------------------------------------------------------------
 */

package resources

import (
	"context"
	"sync"

	"linear-mcp/internal/linear"
	"linear-mcp/internal/pagination"
)

// fakeBackend serves canned workspace data and counts every backend
// call. When err is set, all methods fail with it. Safe for the
// concurrent fetches the cycle aggregation performs.
type fakeBackend struct {
	mu sync.Mutex

	teams     []linear.Team
	cycles    map[string][]linear.Cycle
	issues    []linear.Issue
	comments  map[string][]linear.Comment
	projects  []linear.Project
	users     []linear.User
	labels    []linear.Label
	documents []linear.Document
	viewer    linear.User

	calls int
	err   error
}

func (b *fakeBackend) record() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++
	return b.err
}

func (b *fakeBackend) callCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

func singlePage[T any](nodes []T) (pagination.Page[T], error) {
	return pagination.Page[T]{
		Nodes:    nodes,
		PageInfo: &pagination.PageInfo{HasNextPage: false},
	}, nil
}

func (b *fakeBackend) Viewer(_ context.Context) (*linear.User, error) {
	if err := b.record(); err != nil {
		return nil, err
	}
	viewer := b.viewer
	return &viewer, nil
}

func (b *fakeBackend) Teams(_ context.Context, _ pagination.PageRequest) (pagination.Page[linear.Team], error) {
	if err := b.record(); err != nil {
		return pagination.Page[linear.Team]{}, err
	}
	return singlePage(b.teams)
}

func (b *fakeBackend) Team(_ context.Context, id string) (*linear.Team, error) {
	if err := b.record(); err != nil {
		return nil, err
	}
	for i := range b.teams {
		if b.teams[i].ID == id {
			return &b.teams[i], nil
		}
	}
	return nil, linear.ErrNotFound
}

func (b *fakeBackend) TeamCycles(_ context.Context, teamID string, _ pagination.PageRequest) (pagination.Page[linear.Cycle], error) {
	if err := b.record(); err != nil {
		return pagination.Page[linear.Cycle]{}, err
	}
	return singlePage(b.cycles[teamID])
}

func (b *fakeBackend) Cycle(_ context.Context, id string) (*linear.Cycle, error) {
	if err := b.record(); err != nil {
		return nil, err
	}
	for _, cycles := range b.cycles {
		for i := range cycles {
			if cycles[i].ID == id {
				return &cycles[i], nil
			}
		}
	}
	return nil, linear.ErrNotFound
}

func (b *fakeBackend) Issues(_ context.Context, _ pagination.PageRequest, filter *linear.IssueFilter) (pagination.Page[linear.Issue], error) {
	if err := b.record(); err != nil {
		return pagination.Page[linear.Issue]{}, err
	}
	if filter == nil {
		return singlePage(b.issues)
	}

	var filtered []linear.Issue
	for _, issue := range b.issues {
		if filter.TeamID != "" && (issue.Team == nil || issue.Team.ID != filter.TeamID) {
			continue
		}
		if filter.AssigneeID != "" && (issue.Assignee == nil || issue.Assignee.ID != filter.AssigneeID) {
			continue
		}
		if filter.StateName != "" && (issue.State == nil || issue.State.Name != filter.StateName) {
			continue
		}
		if filter.ProjectID != "" && (issue.Project == nil || issue.Project.ID != filter.ProjectID) {
			continue
		}
		filtered = append(filtered, issue)
	}
	return singlePage(filtered)
}

func (b *fakeBackend) Issue(_ context.Context, id string) (*linear.Issue, error) {
	if err := b.record(); err != nil {
		return nil, err
	}
	for i := range b.issues {
		if b.issues[i].ID == id {
			return &b.issues[i], nil
		}
	}
	return nil, linear.ErrNotFound
}

func (b *fakeBackend) IssueComments(_ context.Context, issueID string, _ pagination.PageRequest) (pagination.Page[linear.Comment], error) {
	if err := b.record(); err != nil {
		return pagination.Page[linear.Comment]{}, err
	}
	comments, ok := b.comments[issueID]
	if !ok {
		return pagination.Page[linear.Comment]{}, linear.ErrNotFound
	}
	return singlePage(comments)
}

func (b *fakeBackend) Projects(_ context.Context, _ pagination.PageRequest) (pagination.Page[linear.Project], error) {
	if err := b.record(); err != nil {
		return pagination.Page[linear.Project]{}, err
	}
	return singlePage(b.projects)
}

func (b *fakeBackend) Project(_ context.Context, id string) (*linear.Project, error) {
	if err := b.record(); err != nil {
		return nil, err
	}
	for i := range b.projects {
		if b.projects[i].ID == id {
			return &b.projects[i], nil
		}
	}
	return nil, linear.ErrNotFound
}

func (b *fakeBackend) Users(_ context.Context, _ pagination.PageRequest) (pagination.Page[linear.User], error) {
	if err := b.record(); err != nil {
		return pagination.Page[linear.User]{}, err
	}
	return singlePage(b.users)
}

func (b *fakeBackend) User(_ context.Context, id string) (*linear.User, error) {
	if err := b.record(); err != nil {
		return nil, err
	}
	for i := range b.users {
		if b.users[i].ID == id {
			return &b.users[i], nil
		}
	}
	return nil, linear.ErrNotFound
}

func (b *fakeBackend) Labels(_ context.Context, _ pagination.PageRequest) (pagination.Page[linear.Label], error) {
	if err := b.record(); err != nil {
		return pagination.Page[linear.Label]{}, err
	}
	return singlePage(b.labels)
}

func (b *fakeBackend) Documents(_ context.Context, _ pagination.PageRequest) (pagination.Page[linear.Document], error) {
	if err := b.record(); err != nil {
		return pagination.Page[linear.Document]{}, err
	}
	return singlePage(b.documents)
}

func (b *fakeBackend) Document(_ context.Context, id string) (*linear.Document, error) {
	if err := b.record(); err != nil {
		return nil, err
	}
	for i := range b.documents {
		if b.documents[i].ID == id {
			return &b.documents[i], nil
		}
	}
	return nil, linear.ErrNotFound
}

// workspaceBackend builds a fakeBackend with three teams owning two
// cycles each, plus a handful of issues, projects, users, labels, and
// documents.
func workspaceBackend() *fakeBackend {
	cycleName := func(s string) *string { return &s }

	return &fakeBackend{
		teams: []linear.Team{
			{ID: "team-1", Name: "Platform", Key: "PLT"},
			{ID: "team-2", Name: "Mobile", Key: "MOB"},
			{ID: "team-3", Name: "Web", Key: "WEB"},
		},
		cycles: map[string][]linear.Cycle{
			"team-1": {
				{ID: "cycle-1a", Number: 1, Name: cycleName("Kickoff")},
				{ID: "cycle-1b", Number: 2},
			},
			"team-2": {
				{ID: "cycle-2a", Number: 7},
				{ID: "cycle-2b", Number: 8},
			},
			"team-3": {
				{ID: "cycle-3a", Number: 3},
				{ID: "cycle-3b", Number: 4, Name: cycleName("Polish")},
			},
		},
		issues: []linear.Issue{
			{
				ID:         "issue-1",
				Identifier: "PLT-1",
				Title:      "Fix login flow",
				Team:       &linear.TeamRef{ID: "team-1", Name: "Platform", Key: "PLT"},
				State:      &linear.WorkflowState{ID: "state-1", Name: "Todo", Type: "unstarted"},
				Assignee:   &linear.UserRef{ID: "user-1", Name: "Ada"},
			},
			{
				ID:         "issue-2",
				Identifier: "MOB-4",
				Title:      "Crash on startup",
				Team:       &linear.TeamRef{ID: "team-2", Name: "Mobile", Key: "MOB"},
				State:      &linear.WorkflowState{ID: "state-2", Name: "In Progress", Type: "started"},
			},
		},
		comments: map[string][]linear.Comment{
			"issue-1": {
				{ID: "comment-1", Body: "Repro confirmed"},
				{ID: "comment-2", Body: "Fix is up for review"},
			},
		},
		projects: []linear.Project{
			{ID: "proj-1", Name: "Onboarding", State: "started", Progress: 0.4},
		},
		users: []linear.User{
			{ID: "user-1", Name: "Ada", DisplayName: "ada", Email: "ada@example.com", Active: true},
			{ID: "user-2", Name: "Grace", DisplayName: "grace", Email: "grace@example.com", Active: true},
		},
		labels: []linear.Label{
			{ID: "label-1", Name: "bug", Color: "#e11"},
		},
		documents: []linear.Document{
			{ID: "doc-1", Title: "Runbook"},
		},
		viewer: linear.User{ID: "user-1", Name: "Ada", DisplayName: "ada", Email: "ada@example.com", Active: true},
	}
}
