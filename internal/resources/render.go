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
	"encoding/json"
	"errors"
	"fmt"

	"linear-mcp/internal/linear"
	"linear-mcp/internal/logging"
	"linear-mcp/internal/mcp"
	"linear-mcp/internal/pagination"
)

// collectionPayload is the JSON wrapper for collection resources.
type collectionPayload struct {
	URI       string      `json:"uri"`
	Count     int         `json:"count"`
	Truncated bool        `json:"truncated,omitempty"`
	Items     interface{} `json:"items"`
}

// renderJSON marshals v as indented JSON resource content.
func renderJSON(uri string, v interface{}) (mcp.ResourceContent, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewResourceError(uri, fmt.Sprintf("JSON encoding error: %v", err))
	}
	return mcp.NewResourceSuccess(uri, "application/json", string(data))
}

// renderCollection renders a slice of records with count metadata.
func renderCollection[T any](uri string, items []T, truncated bool) (mcp.ResourceContent, error) {
	if items == nil {
		items = []T{}
	}
	return renderJSON(uri, collectionPayload{
		URI:       uri,
		Count:     len(items),
		Truncated: truncated,
		Items:     items,
	})
}

// collectLimited drains pages from a paginator until the backend runs
// out of records or the limit is reached. It reports whether records
// were left behind.
func collectLimited[T any](ctx context.Context, p *pagination.Paginator[T], limit int) ([]T, bool, error) {
	var items []T
	for p.HasNextPage() && len(items) < limit {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, false, err
		}
		items = append(items, page.Nodes...)
	}

	truncated := len(items) > limit || p.HasNextPage()
	if len(items) > limit {
		items = items[:limit]
	}
	return items, truncated, nil
}

// entityError translates a backend failure into resource content. An
// upstream "no such record" answer renders as not-found content with a
// nil error; anything else is a real backend failure and propagates.
func entityError(uri string, err error) (mcp.ResourceContent, error) {
	if errors.Is(err, linear.ErrNotFound) {
		logging.Debug("Resource target missing upstream", "uri", uri)
		return NotFoundContent(uri), nil
	}
	return backendErrorContent(uri, err)
}

// backendErrorContent pairs error text content with the error itself so
// the protocol layer can decide how to surface it.
func backendErrorContent(uri string, err error) (mcp.ResourceContent, error) {
	return mcp.ResourceContent{
		URI: uri,
		Contents: []mcp.ContentItem{
			{
				Type: "text",
				Text: fmt.Sprintf("Error reading resource: %v", err),
			},
		},
	}, err
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
