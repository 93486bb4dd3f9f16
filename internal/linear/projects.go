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

// Projects fetches one page of the workspace's projects.
func (c *Client) Projects(ctx context.Context, req pagination.PageRequest) (pagination.Page[Project], error) {
	var result struct {
		Projects pagination.Page[Project] `json:"projects"`
	}
	if err := c.execute(ctx, queryProjects, c.pageVariables(req), &result); err != nil {
		return pagination.Page[Project]{}, err
	}
	return result.Projects, nil
}

// Project fetches a single project by ID.
func (c *Client) Project(ctx context.Context, id string) (*Project, error) {
	var result struct {
		Project *Project `json:"project"`
	}
	if err := c.execute(ctx, queryProject, map[string]interface{}{"id": id}, &result); err != nil {
		return nil, notFoundErr(err, "project", id)
	}
	if result.Project == nil {
		return nil, fmt.Errorf("%w: project %s", ErrNotFound, id)
	}
	return result.Project, nil
}

// Labels fetches one page of the workspace's issue labels.
func (c *Client) Labels(ctx context.Context, req pagination.PageRequest) (pagination.Page[Label], error) {
	var result struct {
		IssueLabels pagination.Page[Label] `json:"issueLabels"`
	}
	if err := c.execute(ctx, queryLabels, c.pageVariables(req), &result); err != nil {
		return pagination.Page[Label]{}, err
	}
	return result.IssueLabels, nil
}

// Documents fetches one page of the workspace's documents. Content is
// not selected on the listing query; fetch a single document for it.
func (c *Client) Documents(ctx context.Context, req pagination.PageRequest) (pagination.Page[Document], error) {
	var result struct {
		Documents pagination.Page[Document] `json:"documents"`
	}
	if err := c.execute(ctx, queryDocuments, c.pageVariables(req), &result); err != nil {
		return pagination.Page[Document]{}, err
	}
	return result.Documents, nil
}

// Document fetches a single document, including its content.
func (c *Client) Document(ctx context.Context, id string) (*Document, error) {
	var result struct {
		Document *Document `json:"document"`
	}
	if err := c.execute(ctx, queryDocument, map[string]interface{}{"id": id}, &result); err != nil {
		return nil, notFoundErr(err, "document", id)
	}
	if result.Document == nil {
		return nil, fmt.Errorf("%w: document %s", ErrNotFound, id)
	}
	return result.Document, nil
}
