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

	"linear-mcp/internal/definitions"
	"linear-mcp/internal/linear"
	"linear-mcp/internal/logging"
	"linear-mcp/internal/mcp"
	"linear-mcp/internal/pagination"
)

// RegisterViewResources registers the saved-view address space:
//
//	resource://views         directory of saved views
//	resource://views/{name}  the issues matching one saved view
//
// Saved views come from the definitions file. With no views defined,
// nothing is registered and the addresses stay unknown to the router.
func RegisterViewResources(router *Router, backend Backend, views []definitions.ViewDefinition) error {
	if len(views) == 0 {
		return nil
	}

	byName := make(map[string]definitions.ViewDefinition, len(views))
	for _, view := range views {
		byName[view.Name] = view
	}

	viewTemplate := MustParseURITemplate(URIView)

	err := router.Register("views", URIViews, RegistrationOptions{
		Description: "Saved issue views defined in the definitions file",
		List: func(_ context.Context, _ map[string]string) ([]Descriptor, error) {
			descriptors := make([]Descriptor, 0, len(views))
			for _, view := range views {
				uri, err := viewTemplate.Expand(map[string]string{"name": view.Name})
				if err != nil {
					return nil, err
				}
				descriptors = append(descriptors, Descriptor{
					URI:         uri,
					Name:        view.Name,
					Description: view.Description,
				})
			}
			return descriptors, nil
		},
	}, func(_ context.Context, uri string, _ map[string]string) (mcp.ResourceContent, error) {
		return renderCollection(uri, views, false)
	})
	if err != nil {
		return err
	}

	return router.Register("view", URIView, RegistrationOptions{
		Description: "The issues matching a saved view, by view name",
	}, func(ctx context.Context, uri string, vars map[string]string) (mcp.ResourceContent, error) {
		view, ok := byName[vars["name"]]
		if !ok {
			logging.Debug("Unknown saved view requested", "uri", uri, "name", vars["name"])
			return NotFoundContent(uri), nil
		}

		limit := view.Limit
		if limit <= 0 {
			limit = DefaultCollectionLimit
		}

		filter := &linear.IssueFilter{
			TeamID:     view.Filter.TeamID,
			AssigneeID: view.Filter.AssigneeID,
			StateName:  view.Filter.StateName,
			ProjectID:  view.Filter.ProjectID,
		}

		paginator := pagination.NewPaginator(issuesFetch(backend, filter))
		issues, truncated, err := collectLimited(ctx, paginator, limit)
		if err != nil {
			return backendErrorContent(uri, err)
		}
		return renderCollection(uri, issues, truncated)
	})
}
