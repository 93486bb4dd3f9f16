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
	"linear-mcp/internal/mcp"
	"linear-mcp/internal/pagination"
)

// RegisterIssueResources registers the issue address space:
//
//	resource://issues                     directory of issues
//	resource://issues/{issueId}           one issue
//	resource://issues/{issueId}/comments  an issue's comment thread
//
// The comment thread has no per-comment address, so it reads as plain
// content and offers no directory listing.
func RegisterIssueResources(router *Router, backend Backend, enabled func(string) bool) error {
	issueTemplate := MustParseURITemplate(URIIssue)

	if enabled(URIIssues) {
		err := router.Register("issues", URIIssues, RegistrationOptions{
			Description: "Issues across the workspace, most recently updated first",
			List: func(ctx context.Context, _ map[string]string) ([]Descriptor, error) {
				issues, err := pagination.NewPaginator(issuesFetch(backend, nil)).FetchAll(ctx)
				if err != nil {
					return nil, err
				}

				descriptors := make([]Descriptor, 0, len(issues))
				for _, issue := range issues {
					uri, err := issueTemplate.Expand(map[string]string{"issueId": issue.ID})
					if err != nil {
						return nil, err
					}
					descriptors = append(descriptors, Descriptor{
						URI:         uri,
						Name:        issue.Identifier,
						Description: issue.Title,
					})
				}
				return descriptors, nil
			},
		}, func(ctx context.Context, uri string, _ map[string]string) (mcp.ResourceContent, error) {
			paginator := pagination.NewPaginator(issuesFetch(backend, nil))
			issues, truncated, err := collectLimited(ctx, paginator, DefaultCollectionLimit)
			if err != nil {
				return backendErrorContent(uri, err)
			}
			return renderCollection(uri, issues, truncated)
		})
		if err != nil {
			return err
		}
	}

	if enabled(URIIssue) {
		err := router.Register("issue", URIIssue, RegistrationOptions{
			Description: "A single issue by identifier",
		}, func(ctx context.Context, uri string, vars map[string]string) (mcp.ResourceContent, error) {
			issue, err := backend.Issue(ctx, vars["issueId"])
			if err != nil {
				return entityError(uri, err)
			}
			return renderJSON(uri, issue)
		})
		if err != nil {
			return err
		}
	}

	if enabled(URIIssueComments) {
		err := router.Register("issue_comments", URIIssueComments, RegistrationOptions{
			Description: "The comment thread of a single issue",
		}, func(ctx context.Context, uri string, vars map[string]string) (mcp.ResourceContent, error) {
			paginator := pagination.NewPaginator(issueCommentsFetch(backend, vars["issueId"]))
			comments, truncated, err := collectLimited(ctx, paginator, DefaultCollectionLimit)
			if err != nil {
				return entityError(uri, err)
			}
			return renderCollection(uri, comments, truncated)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// issuesFetch binds an optional filter into a page fetch function.
func issuesFetch(backend Backend, filter *linear.IssueFilter) pagination.PageFetchFunc[linear.Issue] {
	return func(ctx context.Context, req pagination.PageRequest) (pagination.Page[linear.Issue], error) {
		return backend.Issues(ctx, req, filter)
	}
}

// issueCommentsFetch binds an issue identifier into a page fetch function.
func issueCommentsFetch(backend Backend, issueID string) pagination.PageFetchFunc[linear.Comment] {
	return func(ctx context.Context, req pagination.PageRequest) (pagination.Page[linear.Comment], error) {
		return backend.IssueComments(ctx, issueID, req)
	}
}
