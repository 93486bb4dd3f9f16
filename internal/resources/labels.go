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

// RegisterLabelResources registers resource://labels. Labels carry no
// individual address, so the collection reads as plain content and
// offers no directory listing.
func RegisterLabelResources(router *Router, backend Backend, enabled func(string) bool) error {
	if !enabled(URILabels) {
		return nil
	}

	return router.Register("labels", URILabels, RegistrationOptions{
		Description: "All issue labels in the workspace",
	}, func(ctx context.Context, uri string, _ map[string]string) (mcp.ResourceContent, error) {
		paginator := pagination.NewPaginator(backend.Labels)
		labels, truncated, err := collectLimited(ctx, paginator, DefaultCollectionLimit)
		if err != nil {
			return backendErrorContent(uri, err)
		}
		return renderCollection(uri, labels, truncated)
	})
}
