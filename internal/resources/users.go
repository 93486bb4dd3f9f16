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

	"linear-mcp/internal/mcp"
	"linear-mcp/internal/pagination"
)

// RegisterUserResources registers the user address space:
//
//	resource://users           directory of workspace members
//	resource://users/{userId}  one member
//	resource://viewer          the authenticated user
//
// The viewer lives on its own scheme-level address rather than under
// users/, so a member whose identifier is literally "me" stays
// reachable.
func RegisterUserResources(router *Router, backend Backend, enabled func(string) bool) error {
	userTemplate := MustParseURITemplate(URIUser)

	if enabled(URIUsers) {
		err := router.Register("users", URIUsers, RegistrationOptions{
			Description: "All members of the workspace",
			List: func(ctx context.Context, _ map[string]string) ([]Descriptor, error) {
				users, err := pagination.NewPaginator(backend.Users).FetchAll(ctx)
				if err != nil {
					return nil, err
				}

				descriptors := make([]Descriptor, 0, len(users))
				for _, user := range users {
					uri, err := userTemplate.Expand(map[string]string{"userId": user.ID})
					if err != nil {
						return nil, err
					}
					descriptors = append(descriptors, Descriptor{
						URI:         uri,
						Name:        user.Name,
						Description: user.Email,
					})
				}
				return descriptors, nil
			},
		}, func(ctx context.Context, uri string, _ map[string]string) (mcp.ResourceContent, error) {
			paginator := pagination.NewPaginator(backend.Users)
			users, truncated, err := collectLimited(ctx, paginator, DefaultCollectionLimit)
			if err != nil {
				return backendErrorContent(uri, err)
			}
			return renderCollection(uri, users, truncated)
		})
		if err != nil {
			return err
		}
	}

	if enabled(URIUser) {
		err := router.Register("user", URIUser, RegistrationOptions{
			Description: "A single workspace member by identifier",
		}, func(ctx context.Context, uri string, vars map[string]string) (mcp.ResourceContent, error) {
			user, err := backend.User(ctx, vars["userId"])
			if err != nil {
				return entityError(uri, err)
			}
			return renderJSON(uri, user)
		})
		if err != nil {
			return err
		}
	}

	if enabled(URIViewer) {
		err := router.Register("viewer", URIViewer, RegistrationOptions{
			Description: "The user the configured API key authenticates as",
		}, func(ctx context.Context, uri string, _ map[string]string) (mcp.ResourceContent, error) {
			viewer, err := backend.Viewer(ctx)
			if err != nil {
				return entityError(uri, err)
			}
			return renderJSON(uri, viewer)
		})
		if err != nil {
			return err
		}
	}

	return nil
}
