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

	"linear-mcp/internal/linear"
	"linear-mcp/internal/pagination"
)

// Backend is the slice of the Linear API surface the resource handlers
// read from. *linear.Client satisfies it; tests substitute fakes.
type Backend interface {
	Viewer(ctx context.Context) (*linear.User, error)

	Teams(ctx context.Context, req pagination.PageRequest) (pagination.Page[linear.Team], error)
	Team(ctx context.Context, id string) (*linear.Team, error)
	TeamCycles(ctx context.Context, teamID string, req pagination.PageRequest) (pagination.Page[linear.Cycle], error)
	Cycle(ctx context.Context, id string) (*linear.Cycle, error)

	Issues(ctx context.Context, req pagination.PageRequest, filter *linear.IssueFilter) (pagination.Page[linear.Issue], error)
	Issue(ctx context.Context, id string) (*linear.Issue, error)
	IssueComments(ctx context.Context, issueID string, req pagination.PageRequest) (pagination.Page[linear.Comment], error)

	Projects(ctx context.Context, req pagination.PageRequest) (pagination.Page[linear.Project], error)
	Project(ctx context.Context, id string) (*linear.Project, error)

	Users(ctx context.Context, req pagination.PageRequest) (pagination.Page[linear.User], error)
	User(ctx context.Context, id string) (*linear.User, error)

	Labels(ctx context.Context, req pagination.PageRequest) (pagination.Page[linear.Label], error)

	Documents(ctx context.Context, req pagination.PageRequest) (pagination.Page[linear.Document], error)
	Document(ctx context.Context, id string) (*linear.Document, error)
}

var _ Backend = (*linear.Client)(nil)
