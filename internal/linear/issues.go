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

import (
	"context"
	"fmt"

	"linear-mcp/internal/pagination"
)

// Issues fetches one page of issues, optionally narrowed by filter.
func (c *Client) Issues(ctx context.Context, req pagination.PageRequest, filter *IssueFilter) (pagination.Page[Issue], error) {
	vars := c.pageVariables(req)
	if gql := filter.toGraphQL(); gql != nil {
		vars["filter"] = gql
	}

	var result struct {
		Issues pagination.Page[Issue] `json:"issues"`
	}
	if err := c.execute(ctx, queryIssues, vars, &result); err != nil {
		return pagination.Page[Issue]{}, err
	}
	return result.Issues, nil
}

// Issue fetches a single issue. The ID may be a UUID or a human
// identifier such as ENG-123; the API accepts both.
func (c *Client) Issue(ctx context.Context, id string) (*Issue, error) {
	var result struct {
		Issue *Issue `json:"issue"`
	}
	if err := c.execute(ctx, queryIssue, map[string]interface{}{"id": id}, &result); err != nil {
		return nil, notFoundErr(err, "issue", id)
	}
	if result.Issue == nil {
		return nil, fmt.Errorf("%w: issue %s", ErrNotFound, id)
	}
	return result.Issue, nil
}

// SearchIssues fetches one page of full-text search results.
func (c *Client) SearchIssues(ctx context.Context, term string, req pagination.PageRequest) (pagination.Page[Issue], error) {
	vars := c.pageVariables(req)
	vars["term"] = term

	var result struct {
		SearchIssues pagination.Page[Issue] `json:"searchIssues"`
	}
	if err := c.execute(ctx, querySearchIssues, vars, &result); err != nil {
		return pagination.Page[Issue]{}, err
	}
	return result.SearchIssues, nil
}

// IssueComments fetches one page of an issue's comment thread.
func (c *Client) IssueComments(ctx context.Context, issueID string, req pagination.PageRequest) (pagination.Page[Comment], error) {
	vars := c.pageVariables(req)
	vars["issueId"] = issueID

	var result struct {
		Issue *struct {
			Comments pagination.Page[Comment] `json:"comments"`
		} `json:"issue"`
	}
	if err := c.execute(ctx, queryIssueComments, vars, &result); err != nil {
		return pagination.Page[Comment]{}, notFoundErr(err, "issue", issueID)
	}
	if result.Issue == nil {
		return pagination.Page[Comment]{}, fmt.Errorf("%w: issue %s", ErrNotFound, issueID)
	}
	return result.Issue.Comments, nil
}

// CreateIssue creates an issue and returns the created record.
func (c *Client) CreateIssue(ctx context.Context, input IssueCreateInput) (*Issue, error) {
	var result struct {
		IssueCreate struct {
			Success bool   `json:"success"`
			Issue   *Issue `json:"issue"`
		} `json:"issueCreate"`
	}
	if err := c.execute(ctx, mutationCreateIssue, map[string]interface{}{"input": input}, &result); err != nil {
		return nil, err
	}
	if !result.IssueCreate.Success || result.IssueCreate.Issue == nil {
		return nil, fmt.Errorf("issue creation was not accepted by the API")
	}
	return result.IssueCreate.Issue, nil
}

// UpdateIssue applies input to an existing issue and returns the updated
// record.
func (c *Client) UpdateIssue(ctx context.Context, id string, input IssueUpdateInput) (*Issue, error) {
	vars := map[string]interface{}{"id": id, "input": input}

	var result struct {
		IssueUpdate struct {
			Success bool   `json:"success"`
			Issue   *Issue `json:"issue"`
		} `json:"issueUpdate"`
	}
	if err := c.execute(ctx, mutationUpdateIssue, vars, &result); err != nil {
		return nil, notFoundErr(err, "issue", id)
	}
	if !result.IssueUpdate.Success || result.IssueUpdate.Issue == nil {
		return nil, fmt.Errorf("issue update was not accepted by the API")
	}
	return result.IssueUpdate.Issue, nil
}

// CreateComment adds a comment to an issue and returns the created
// record.
func (c *Client) CreateComment(ctx context.Context, input CommentCreateInput) (*Comment, error) {
	var result struct {
		CommentCreate struct {
			Success bool     `json:"success"`
			Comment *Comment `json:"comment"`
		} `json:"commentCreate"`
	}
	if err := c.execute(ctx, mutationCreateComment, map[string]interface{}{"input": input}, &result); err != nil {
		return nil, notFoundErr(err, "issue", input.IssueID)
	}
	if !result.CommentCreate.Success || result.CommentCreate.Comment == nil {
		return nil, fmt.Errorf("comment creation was not accepted by the API")
	}
	return result.CommentCreate.Comment, nil
}
