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

	"linear-mcp/internal/linear"
	"linear-mcp/internal/pagination"
)

// Backend is the upstream tracker surface the built-in tools call.
// *linear.Client satisfies it.
type Backend interface {
	IsConfigured() bool

	Teams(ctx context.Context, req pagination.PageRequest) (pagination.Page[linear.Team], error)
	Projects(ctx context.Context, req pagination.PageRequest) (pagination.Page[linear.Project], error)

	Issues(ctx context.Context, req pagination.PageRequest, filter *linear.IssueFilter) (pagination.Page[linear.Issue], error)
	Issue(ctx context.Context, id string) (*linear.Issue, error)
	IssueComments(ctx context.Context, issueID string, req pagination.PageRequest) (pagination.Page[linear.Comment], error)
	SearchIssues(ctx context.Context, term string, req pagination.PageRequest) (pagination.Page[linear.Issue], error)

	CreateIssue(ctx context.Context, input linear.IssueCreateInput) (*linear.Issue, error)
	UpdateIssue(ctx context.Context, id string, input linear.IssueUpdateInput) (*linear.Issue, error)
	CreateComment(ctx context.Context, input linear.CommentCreateInput) (*linear.Comment, error)
}

var _ Backend = (*linear.Client)(nil)
