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

// RegisterProjectResources registers the project address space:
//
//	resource://projects              directory of projects
//	resource://projects/{projectId}  one project
func RegisterProjectResources(router *Router, backend Backend, enabled func(string) bool) error {
	projectTemplate := MustParseURITemplate(URIProject)

	if enabled(URIProjects) {
		err := router.Register("projects", URIProjects, RegistrationOptions{
			Description: "All projects in the workspace with state and progress",
			List: func(ctx context.Context, _ map[string]string) ([]Descriptor, error) {
				projects, err := pagination.NewPaginator(backend.Projects).FetchAll(ctx)
				if err != nil {
					return nil, err
				}

				descriptors := make([]Descriptor, 0, len(projects))
				for _, project := range projects {
					uri, err := projectTemplate.Expand(map[string]string{"projectId": project.ID})
					if err != nil {
						return nil, err
					}
					descriptors = append(descriptors, Descriptor{
						URI:         uri,
						Name:        project.Name,
						Description: project.Description,
					})
				}
				return descriptors, nil
			},
		}, func(ctx context.Context, uri string, _ map[string]string) (mcp.ResourceContent, error) {
			paginator := pagination.NewPaginator(backend.Projects)
			projects, truncated, err := collectLimited(ctx, paginator, DefaultCollectionLimit)
			if err != nil {
				return backendErrorContent(uri, err)
			}
			return renderCollection(uri, projects, truncated)
		})
		if err != nil {
			return err
		}
	}

	if enabled(URIProject) {
		err := router.Register("project", URIProject, RegistrationOptions{
			Description: "A single project by identifier",
		}, func(ctx context.Context, uri string, vars map[string]string) (mcp.ResourceContent, error) {
			project, err := backend.Project(ctx, vars["projectId"])
			if err != nil {
				return entityError(uri, err)
			}
			return renderJSON(uri, project)
		})
		if err != nil {
			return err
		}
	}

	return nil
}
