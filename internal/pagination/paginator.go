/*-------------------------------------------------------------------------
 *
 * Linear MCP - Cursor Pagination
 *
 * Copyright (c) 2026, Linear MCP Server contributors
 * This software is released under The MIT License
 *
 *-------------------------------------------------------------------------
 */

// Package pagination normalizes cursor-based traversal of the Linear
// API's Relay-style connections. A Paginator walks one endpoint page by
// page and knows when the traversal is exhausted; FetchAllPages drains an
// endpoint in one call for sites that never need to resume.
package pagination

import (
	"context"
	"errors"
	"fmt"
)

// DefaultPageSize is the page size used when a traversal does not
// specify one.
const DefaultPageSize = 50

// ErrInvalidPageSize reports a page size that is zero or negative.
var ErrInvalidPageSize = errors.New("page size must be a positive integer")

// PageInfo is the pagination metadata the backend returns alongside each
// page of nodes. A missing endCursor means the sequence is finished no
// matter what hasNextPage claims.
type PageInfo struct {
	HasNextPage bool    `json:"hasNextPage"`
	EndCursor   *string `json:"endCursor"`
}

// Page is one backend fetch result: nodes in backend order plus optional
// metadata. Connections decode straight into this shape.
type Page[T any] struct {
	Nodes    []T       `json:"nodes"`
	PageInfo *PageInfo `json:"pageInfo,omitempty"`
}

// PageRequest carries the cursor arguments for one backend fetch. A zero
// First means "use DefaultPageSize"; an empty After means "start at the
// beginning".
type PageRequest struct {
	First int
	After string
}

// PageFetchFunc fetches one page from the backend. Implementations issue
// exactly one query per call and never retry.
type PageFetchFunc[T any] func(ctx context.Context, req PageRequest) (Page[T], error)

// Paginator holds the cursor state for one traversal of a paginated
// endpoint. It is created per logical traversal, owned by a single
// caller, and never shared between goroutines.
type Paginator[T any] struct {
	fetch   PageFetchFunc[T]
	first   int
	cursor  string
	hasMore bool
}

// NewPaginator creates a Paginator with DefaultPageSize. No I/O happens
// until the first NextPage call.
func NewPaginator[T any](fetch PageFetchFunc[T]) *Paginator[T] {
	return &Paginator[T]{fetch: fetch, first: DefaultPageSize, hasMore: true}
}

// NewPaginatorWithPageSize creates a Paginator with an explicit page
// size. A size that is not a positive integer is a validation error.
func NewPaginatorWithPageSize[T any](fetch PageFetchFunc[T], first int) (*Paginator[T], error) {
	if first <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPageSize, first)
	}
	return &Paginator[T]{fetch: fetch, first: first, hasMore: true}, nil
}

// NextPage fetches the next page and advances the cursor. Once the
// traversal is exhausted it returns an empty page without contacting the
// backend. A fetch error propagates unmodified and leaves the cursor
// state unchanged, so the caller may call NextPage again.
func (p *Paginator[T]) NextPage(ctx context.Context) (Page[T], error) {
	if !p.hasMore {
		return Page[T]{Nodes: []T{}}, nil
	}

	page, err := p.fetch(ctx, PageRequest{First: p.first, After: p.cursor})
	if err != nil {
		return Page[T]{}, err
	}

	info := page.PageInfo
	switch {
	case info == nil || !info.HasNextPage || info.EndCursor == nil:
		p.hasMore = false
	case len(page.Nodes) < p.first:
		// Short page: the backend ran out of records even though its
		// metadata claims another page. Trust the count, not the flag.
		p.hasMore = false
	default:
		p.cursor = *info.EndCursor
	}

	return page, nil
}

// HasNextPage reports whether another NextPage call would contact the
// backend. It performs no I/O.
func (p *Paginator[T]) HasNextPage() bool {
	return p.hasMore
}

// Reset returns the cursor to the beginning so the traversal can be
// replayed without constructing a new Paginator.
func (p *Paginator[T]) Reset() {
	p.cursor = ""
	p.hasMore = true
}

// FetchAll drains the remaining pages and returns their nodes in fetch
// order.
func (p *Paginator[T]) FetchAll(ctx context.Context) ([]T, error) {
	var all []T
	for p.hasMore {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Nodes...)
	}
	return all, nil
}

// FetchAllPages drains fetch starting from req and returns all nodes in
// fetch order. It runs the same exhaustion rules as Paginator without
// retaining resumable cursor state, for one-shot aggregation sites.
func FetchAllPages[T any](ctx context.Context, fetch PageFetchFunc[T], req PageRequest) ([]T, error) {
	if req.First < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPageSize, req.First)
	}
	if req.First == 0 {
		req.First = DefaultPageSize
	}

	var all []T
	after := req.After
	for {
		page, err := fetch(ctx, PageRequest{First: req.First, After: after})
		if err != nil {
			return nil, err
		}
		all = append(all, page.Nodes...)

		info := page.PageInfo
		if info == nil || !info.HasNextPage || info.EndCursor == nil {
			break
		}
		if len(page.Nodes) < req.First {
			break
		}
		after = *info.EndCursor
	}
	return all, nil
}
