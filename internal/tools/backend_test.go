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
	"strconv"
	"strings"

	"linear-mcp/internal/linear"
	"linear-mcp/internal/pagination"
)

// fakeBackend implements Backend against in-memory fixtures. Mutation
// calls record their inputs so tests can assert what was sent upstream.
type fakeBackend struct {
	configured bool
	teams      []linear.Team
	issues     []linear.Issue
	comments   map[string][]linear.Comment
	projects   []linear.Project

	err       error
	searchErr error

	createdIssue   *linear.IssueCreateInput
	updatedIssueID string
	updatedInput   *linear.IssueUpdateInput
	createdComment *linear.CommentCreateInput
}

func newFakeBackend() *fakeBackend {
	desc := "Login fails after session expiry"
	return &fakeBackend{
		configured: true,
		teams: []linear.Team{
			{ID: "team-1", Name: "Platform", Key: "PLT"},
			{ID: "team-2", Name: "Mobile", Key: "MOB"},
			{ID: "team-3", Name: "Web", Key: "WEB"},
		},
		issues: []linear.Issue{
			{
				ID:          "issue-1",
				Identifier:  "PLT-1",
				Title:       "Fix login flow",
				Description: &desc,
				Priority:    2,
				URL:         "https://linear.app/acme/issue/PLT-1",
				State:       &linear.WorkflowState{ID: "state-1", Name: "Todo"},
				Assignee:    &linear.UserRef{ID: "user-1", Name: "Ada"},
				Team:        &linear.TeamRef{ID: "team-1", Name: "Platform", Key: "PLT"},
			},
			{
				ID:         "issue-2",
				Identifier: "MOB-4",
				Title:      "Crash on startup",
				Priority:   1,
				State:      &linear.WorkflowState{ID: "state-2", Name: "In Progress"},
				Team:       &linear.TeamRef{ID: "team-2", Name: "Mobile", Key: "MOB"},
			},
		},
		comments: map[string][]linear.Comment{
			"issue-1": {
				{ID: "comment-1", Body: "Reproduced on staging", User: &linear.UserRef{Name: "Grace"}},
				{ID: "comment-2", Body: "Session token is not refreshed", User: &linear.UserRef{Name: "Ada"}},
			},
		},
		projects: []linear.Project{
			{ID: "proj-1", Name: "Onboarding", State: "started"},
		},
	}
}

// pageOf slices nodes into one page honoring First and a decimal-index
// After cursor, mimicking the backend's connection shape.
func pageOf[T any](nodes []T, req pagination.PageRequest) pagination.Page[T] {
	start := 0
	if req.After != "" {
		start, _ = strconv.Atoi(req.After)
	}
	first := req.First
	if first <= 0 {
		first = pagination.DefaultPageSize
	}
	end := start + first
	if end > len(nodes) {
		end = len(nodes)
	}

	cursor := strconv.Itoa(end)
	return pagination.Page[T]{
		Nodes:    append([]T(nil), nodes[start:end]...),
		PageInfo: &pagination.PageInfo{HasNextPage: end < len(nodes), EndCursor: &cursor},
	}
}

func (f *fakeBackend) IsConfigured() bool { return f.configured }

func (f *fakeBackend) Teams(ctx context.Context, req pagination.PageRequest) (pagination.Page[linear.Team], error) {
	if f.err != nil {
		return pagination.Page[linear.Team]{}, f.err
	}
	return pageOf(f.teams, req), nil
}

func (f *fakeBackend) Projects(ctx context.Context, req pagination.PageRequest) (pagination.Page[linear.Project], error) {
	if f.err != nil {
		return pagination.Page[linear.Project]{}, f.err
	}
	return pageOf(f.projects, req), nil
}

func (f *fakeBackend) Issues(ctx context.Context, req pagination.PageRequest, filter *linear.IssueFilter) (pagination.Page[linear.Issue], error) {
	if f.err != nil {
		return pagination.Page[linear.Issue]{}, f.err
	}
	matched := make([]linear.Issue, 0, len(f.issues))
	for _, issue := range f.issues {
		if issueMatchesFilter(issue, filter) {
			matched = append(matched, issue)
		}
	}
	return pageOf(matched, req), nil
}

func issueMatchesFilter(issue linear.Issue, filter *linear.IssueFilter) bool {
	if filter == nil {
		return true
	}
	if filter.TeamID != "" && (issue.Team == nil || issue.Team.ID != filter.TeamID) {
		return false
	}
	if filter.AssigneeID != "" && (issue.Assignee == nil || issue.Assignee.ID != filter.AssigneeID) {
		return false
	}
	if filter.StateName != "" && (issue.State == nil || issue.State.Name != filter.StateName) {
		return false
	}
	if filter.ProjectID != "" && (issue.Project == nil || issue.Project.ID != filter.ProjectID) {
		return false
	}
	return true
}

func (f *fakeBackend) Issue(ctx context.Context, id string) (*linear.Issue, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.issues {
		if f.issues[i].ID == id {
			return &f.issues[i], nil
		}
	}
	return nil, linear.ErrNotFound
}

func (f *fakeBackend) IssueComments(ctx context.Context, issueID string, req pagination.PageRequest) (pagination.Page[linear.Comment], error) {
	if f.err != nil {
		return pagination.Page[linear.Comment]{}, f.err
	}
	if _, err := f.Issue(ctx, issueID); err != nil {
		return pagination.Page[linear.Comment]{}, err
	}
	return pageOf(f.comments[issueID], req), nil
}

func (f *fakeBackend) SearchIssues(ctx context.Context, term string, req pagination.PageRequest) (pagination.Page[linear.Issue], error) {
	if f.err != nil {
		return pagination.Page[linear.Issue]{}, f.err
	}
	if f.searchErr != nil {
		return pagination.Page[linear.Issue]{}, f.searchErr
	}
	needle := strings.ToLower(term)
	var matched []linear.Issue
	for _, issue := range f.issues {
		if strings.Contains(strings.ToLower(issue.Title), needle) {
			matched = append(matched, issue)
		}
	}
	return pageOf(matched, req), nil
}

func (f *fakeBackend) CreateIssue(ctx context.Context, input linear.IssueCreateInput) (*linear.Issue, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.createdIssue = &input
	return &linear.Issue{
		ID:         "issue-new",
		Identifier: "PLT-99",
		Title:      input.Title,
		URL:        "https://linear.app/acme/issue/PLT-99",
	}, nil
}

func (f *fakeBackend) UpdateIssue(ctx context.Context, id string, input linear.IssueUpdateInput) (*linear.Issue, error) {
	if f.err != nil {
		return nil, f.err
	}
	issue, err := f.Issue(ctx, id)
	if err != nil {
		return nil, err
	}
	f.updatedIssueID = id
	f.updatedInput = &input

	updated := *issue
	if input.Title != nil {
		updated.Title = *input.Title
	}
	return &updated, nil
}

func (f *fakeBackend) CreateComment(ctx context.Context, input linear.CommentCreateInput) (*linear.Comment, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, err := f.Issue(ctx, input.IssueID); err != nil {
		return nil, err
	}
	f.createdComment = &input
	return &linear.Comment{
		ID:   "comment-new",
		Body: input.Body,
		URL:  "https://linear.app/acme/comment/comment-new",
	}, nil
}

var _ Backend = (*fakeBackend)(nil)
