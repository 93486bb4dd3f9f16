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
	"fmt"

	"linear-mcp/internal/mcp"
)

var (
	// ErrResourceNotFound is returned when no registered template
	// matches a requested URI.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrListingUnsupported is returned when a URI resolves to a
	// registration that has no listing function.
	ErrListingUnsupported = errors.New("listing not supported")
)

// ReadFunc resolves a matched URI into resource content. The vars map
// carries the values captured by the registration's template variables.
type ReadFunc func(ctx context.Context, uri string, vars map[string]string) (mcp.ResourceContent, error)

// ListFunc enumerates the children of a matched collection URI.
type ListFunc func(ctx context.Context, vars map[string]string) ([]Descriptor, error)

// Descriptor identifies one child of a collection resource.
type Descriptor struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Registration binds a URI template to its read and list behavior.
type Registration struct {
	Name        string
	Description string
	MimeType    string
	Template    *URITemplate
	read        ReadFunc
	list        ListFunc
}

// RegistrationOptions carries the optional parts of a registration.
type RegistrationOptions struct {
	Description string
	MimeType    string
	List        ListFunc
}

// Router maps URI templates to resource handlers. All registrations
// happen during startup, before the router serves requests, so lookups
// need no locking. Overlapping templates are rejected at registration
// time, which keeps resolution deterministic: at most one registration
// can match any concrete URI.
type Router struct {
	registrations []*Registration
	names         map[string]bool
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{
		names: make(map[string]bool),
	}
}

// Register adds a template under a unique name. It fails when the
// template does not parse, when the name is already taken, or when the
// template overlaps a previous registration.
func (r *Router) Register(name, template string, opts RegistrationOptions, read ReadFunc) error {
	if name == "" {
		return fmt.Errorf("registration name is required")
	}
	if read == nil {
		return fmt.Errorf("registration %q: read function is required", name)
	}
	if r.names[name] {
		return fmt.Errorf("registration %q: name already registered", name)
	}

	parsed, err := ParseURITemplate(template)
	if err != nil {
		return fmt.Errorf("registration %q: %w", name, err)
	}

	for _, existing := range r.registrations {
		if parsed.Overlaps(existing.Template) {
			return fmt.Errorf("registration %q: template %q overlaps %q (registered as %q)",
				name, template, existing.Template.String(), existing.Name)
		}
	}

	mimeType := opts.MimeType
	if mimeType == "" {
		mimeType = "application/json"
	}

	r.names[name] = true
	r.registrations = append(r.registrations, &Registration{
		Name:        name,
		Description: opts.Description,
		MimeType:    mimeType,
		Template:    parsed,
		read:        read,
		list:        opts.List,
	})

	return nil
}

// Resolve matches a URI against the registered templates and invokes
// the winning registration's read function. A URI that matches no
// template returns ErrResourceNotFound without touching any backend.
func (r *Router) Resolve(ctx context.Context, uri string) (mcp.ResourceContent, error) {
	for _, reg := range r.registrations {
		if vars, ok := reg.Template.Match(uri); ok {
			return reg.read(ctx, uri, vars)
		}
	}
	return mcp.ResourceContent{}, fmt.Errorf("%w: %s", ErrResourceNotFound, uri)
}

// List matches a URI against the registered templates and invokes the
// winning registration's list function. A matched registration without
// a list function returns ErrListingUnsupported; an unmatched URI
// returns ErrResourceNotFound.
func (r *Router) List(ctx context.Context, uri string) ([]Descriptor, error) {
	for _, reg := range r.registrations {
		if vars, ok := reg.Template.Match(uri); ok {
			if reg.list == nil {
				return nil, fmt.Errorf("%w: %s", ErrListingUnsupported, uri)
			}
			return reg.list(ctx, vars)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, uri)
}

// Registrations returns the registrations in registration order.
func (r *Router) Registrations() []*Registration {
	return r.registrations
}

// NotFoundContent builds the standard content payload for a URI that
// does not resolve to anything, mirroring what MCP clients expect from
// a missing resource.
func NotFoundContent(uri string) mcp.ResourceContent {
	return mcp.ResourceContent{
		URI: uri,
		Contents: []mcp.ContentItem{
			{
				Type: "text",
				Text: "Resource not found: " + uri,
			},
		},
	}
}
