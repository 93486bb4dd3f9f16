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
	"errors"

	"linear-mcp/internal/logging"
	"linear-mcp/internal/mcp"
)

// RouterProvider adapts a Router to the protocol server's resource and
// directory provider interfaces.
type RouterProvider struct {
	router *Router
}

// NewRouterProvider creates a provider backed by the given router.
func NewRouterProvider(router *Router) *RouterProvider {
	return &RouterProvider{router: router}
}

// List returns the static addresses for resources/list. Templated
// addresses are advertised through ListTemplates instead.
func (p *RouterProvider) List() []mcp.Resource {
	var out []mcp.Resource
	for _, reg := range p.router.Registrations() {
		if !reg.Template.IsStatic() {
			continue
		}
		out = append(out, mcp.Resource{
			URI:         reg.Template.String(),
			Name:        reg.Name,
			Description: reg.Description,
			MimeType:    reg.MimeType,
		})
	}
	return out
}

// ListTemplates returns the templated addresses for
// resources/templates/list.
func (p *RouterProvider) ListTemplates() []mcp.ResourceTemplate {
	var out []mcp.ResourceTemplate
	for _, reg := range p.router.Registrations() {
		if reg.Template.IsStatic() {
			continue
		}
		out = append(out, mcp.ResourceTemplate{
			URITemplate: reg.Template.String(),
			Name:        reg.Name,
			Description: reg.Description,
			MimeType:    reg.MimeType,
		})
	}
	return out
}

// Read resolves a URI through the router. An address no registration
// matches renders as not-found content rather than a protocol error, so
// clients always get readable contents back.
func (p *RouterProvider) Read(ctx context.Context, uri string) (mcp.ResourceContent, error) {
	content, err := p.router.Resolve(ctx, uri)
	if errors.Is(err, ErrResourceNotFound) {
		logging.Debug("Unknown resource requested", "uri", uri)
		return NotFoundContent(uri), nil
	}
	return content, err
}

// ListDirectory enumerates the children of a collection URI.
func (p *RouterProvider) ListDirectory(ctx context.Context, uri string) ([]mcp.DirectoryEntry, error) {
	descriptors, err := p.router.List(ctx, uri)
	if err != nil {
		return nil, err
	}

	entries := make([]mcp.DirectoryEntry, 0, len(descriptors))
	for _, descriptor := range descriptors {
		entries = append(entries, mcp.DirectoryEntry{
			URI:         descriptor.URI,
			Name:        descriptor.Name,
			Description: descriptor.Description,
		})
	}
	return entries, nil
}
