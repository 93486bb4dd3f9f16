/*-------------------------------------------------------------------------
 *
 * Linear MCP Server
 *
 * Copyright (c) 2026, Linear MCP Server contributors
 * This software is released under The MIT License
 *
 *-------------------------------------------------------------------------
 */

package pagination

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// fakeBackend serves pages keyed by the After cursor so a traversal can
// be replayed deterministically after Reset.
type fakeBackend struct {
	pages    map[string]Page[string]
	requests []PageRequest
	err      error
}

func (f *fakeBackend) fetch(_ context.Context, req PageRequest) (Page[string], error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return Page[string]{}, f.err
	}
	page, ok := f.pages[req.After]
	if !ok {
		return Page[string]{}, fmt.Errorf("no page registered for cursor %q", req.After)
	}
	return page, nil
}

func strPtr(s string) *string {
	return &s
}

func makeNodes(prefix string, n int) []string {
	nodes := make([]string, n)
	for i := range nodes {
		nodes[i] = fmt.Sprintf("%s-%d", prefix, i)
	}
	return nodes
}

func TestNewPaginator(t *testing.T) {
	backend := &fakeBackend{}
	p := NewPaginator(backend.fetch)

	if p.first != DefaultPageSize {
		t.Errorf("page size = %d, want %d", p.first, DefaultPageSize)
	}
	if !p.HasNextPage() {
		t.Error("HasNextPage() = false, want true before first fetch")
	}
	if len(backend.requests) != 0 {
		t.Errorf("construction performed %d backend calls, want 0", len(backend.requests))
	}
}

func TestNewPaginatorWithPageSize(t *testing.T) {
	backend := &fakeBackend{}

	t.Run("valid size", func(t *testing.T) {
		p, err := NewPaginatorWithPageSize(backend.fetch, 5)
		if err != nil {
			t.Fatalf("NewPaginatorWithPageSize(5) error = %v", err)
		}
		if p.first != 5 {
			t.Errorf("page size = %d, want 5", p.first)
		}
	})

	t.Run("zero size", func(t *testing.T) {
		_, err := NewPaginatorWithPageSize(backend.fetch, 0)
		if !errors.Is(err, ErrInvalidPageSize) {
			t.Errorf("error = %v, want ErrInvalidPageSize", err)
		}
	})

	t.Run("negative size", func(t *testing.T) {
		_, err := NewPaginatorWithPageSize(backend.fetch, -3)
		if !errors.Is(err, ErrInvalidPageSize) {
			t.Errorf("error = %v, want ErrInvalidPageSize", err)
		}
	})
}

func TestNextPageAdvancesCursor(t *testing.T) {
	backend := &fakeBackend{pages: map[string]Page[string]{
		"":   {Nodes: makeNodes("a", 2), PageInfo: &PageInfo{HasNextPage: true, EndCursor: strPtr("c1")}},
		"c1": {Nodes: makeNodes("b", 2), PageInfo: &PageInfo{HasNextPage: true, EndCursor: strPtr("c2")}},
		"c2": {Nodes: makeNodes("c", 1), PageInfo: &PageInfo{HasNextPage: false, EndCursor: nil}},
	}}

	p, err := NewPaginatorWithPageSize(backend.fetch, 2)
	if err != nil {
		t.Fatal(err)
	}

	for p.HasNextPage() {
		if _, err := p.NextPage(context.Background()); err != nil {
			t.Fatalf("NextPage() error = %v", err)
		}
	}

	wantAfter := []string{"", "c1", "c2"}
	if len(backend.requests) != len(wantAfter) {
		t.Fatalf("backend calls = %d, want %d", len(backend.requests), len(wantAfter))
	}
	for i, want := range wantAfter {
		if backend.requests[i].After != want {
			t.Errorf("request %d After = %q, want %q", i, backend.requests[i].After, want)
		}
		if backend.requests[i].First != 2 {
			t.Errorf("request %d First = %d, want 2", i, backend.requests[i].First)
		}
	}
}

func TestFetchAllStopsOnShortPageDespiteMetadata(t *testing.T) {
	// Page 2 is short but still claims hasNextPage. The count wins and
	// the traversal must stop without a third request.
	backend := &fakeBackend{pages: map[string]Page[string]{
		"":   {Nodes: makeNodes("p1", 50), PageInfo: &PageInfo{HasNextPage: true, EndCursor: strPtr("c1")}},
		"c1": {Nodes: makeNodes("p2", 12), PageInfo: &PageInfo{HasNextPage: true, EndCursor: strPtr("c2")}},
	}}

	p, err := NewPaginatorWithPageSize(backend.fetch, 50)
	if err != nil {
		t.Fatal(err)
	}

	all, err := p.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}

	if len(all) != 62 {
		t.Errorf("FetchAll() returned %d items, want 62", len(all))
	}
	if len(backend.requests) != 2 {
		t.Errorf("backend calls = %d, want 2", len(backend.requests))
	}
	if backend.requests[1].After != "c1" {
		t.Errorf("second request After = %q, want %q", backend.requests[1].After, "c1")
	}
	if p.HasNextPage() {
		t.Error("HasNextPage() = true after short page, want false")
	}
}

func TestFetchAllWellBehavedBackend(t *testing.T) {
	backend := &fakeBackend{pages: map[string]Page[string]{
		"":   {Nodes: makeNodes("x", 3), PageInfo: &PageInfo{HasNextPage: true, EndCursor: strPtr("c1")}},
		"c1": {Nodes: makeNodes("y", 3), PageInfo: &PageInfo{HasNextPage: true, EndCursor: strPtr("c2")}},
		"c2": {Nodes: makeNodes("z", 2), PageInfo: &PageInfo{HasNextPage: false, EndCursor: nil}},
	}}

	p, err := NewPaginatorWithPageSize(backend.fetch, 3)
	if err != nil {
		t.Fatal(err)
	}

	all, err := p.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}

	if len(all) != 8 {
		t.Errorf("FetchAll() returned %d items, want 8", len(all))
	}
	if all[0] != "x-0" || all[3] != "y-0" || all[7] != "z-1" {
		t.Errorf("items out of fetch order: %v", all)
	}
	if len(backend.requests) != 3 {
		t.Errorf("backend calls = %d, want 3", len(backend.requests))
	}
}

func TestNextPageStopsWhenPageInfoMissing(t *testing.T) {
	backend := &fakeBackend{pages: map[string]Page[string]{
		"": {Nodes: makeNodes("only", 2)},
	}}

	p, err := NewPaginatorWithPageSize(backend.fetch, 2)
	if err != nil {
		t.Fatal(err)
	}

	page, err := p.NextPage(context.Background())
	if err != nil {
		t.Fatalf("NextPage() error = %v", err)
	}
	if len(page.Nodes) != 2 {
		t.Errorf("page has %d nodes, want 2", len(page.Nodes))
	}
	if p.HasNextPage() {
		t.Error("HasNextPage() = true with no pageInfo, want false")
	}
}

func TestNextPageStopsWhenEndCursorAbsent(t *testing.T) {
	backend := &fakeBackend{pages: map[string]Page[string]{
		"": {Nodes: makeNodes("only", 2), PageInfo: &PageInfo{HasNextPage: true, EndCursor: nil}},
	}}

	p, err := NewPaginatorWithPageSize(backend.fetch, 2)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := p.NextPage(context.Background()); err != nil {
		t.Fatalf("NextPage() error = %v", err)
	}
	if p.HasNextPage() {
		t.Error("HasNextPage() = true with absent endCursor, want false")
	}
}

func TestNextPageAfterExhaustionIsIdempotent(t *testing.T) {
	backend := &fakeBackend{pages: map[string]Page[string]{
		"": {Nodes: makeNodes("only", 1), PageInfo: &PageInfo{HasNextPage: false}},
	}}

	p, err := NewPaginatorWithPageSize(backend.fetch, 5)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := p.NextPage(context.Background()); err != nil {
		t.Fatal(err)
	}
	calls := len(backend.requests)

	for i := 0; i < 3; i++ {
		page, err := p.NextPage(context.Background())
		if err != nil {
			t.Fatalf("NextPage() after exhaustion error = %v", err)
		}
		if len(page.Nodes) != 0 {
			t.Errorf("NextPage() after exhaustion returned %d nodes, want 0", len(page.Nodes))
		}
	}

	if len(backend.requests) != calls {
		t.Errorf("backend calls = %d after exhaustion, want %d", len(backend.requests), calls)
	}
}

func TestResetReplaysTraversal(t *testing.T) {
	backend := &fakeBackend{pages: map[string]Page[string]{
		"":   {Nodes: makeNodes("a", 2), PageInfo: &PageInfo{HasNextPage: true, EndCursor: strPtr("c1")}},
		"c1": {Nodes: makeNodes("b", 1), PageInfo: &PageInfo{HasNextPage: false}},
	}}

	p, err := NewPaginatorWithPageSize(backend.fetch, 2)
	if err != nil {
		t.Fatal(err)
	}

	first, err := p.FetchAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	p.Reset()
	if !p.HasNextPage() {
		t.Fatal("HasNextPage() = false after Reset, want true")
	}

	second, err := p.FetchAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(first) != len(second) {
		t.Fatalf("replay returned %d items, want %d", len(second), len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("item %d = %q on replay, want %q", i, second[i], first[i])
		}
	}
}

func TestNextPagePropagatesBackendError(t *testing.T) {
	backendErr := errors.New("upstream unavailable")
	backend := &fakeBackend{err: backendErr}

	p, err := NewPaginatorWithPageSize(backend.fetch, 2)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := p.NextPage(context.Background()); !errors.Is(err, backendErr) {
		t.Errorf("NextPage() error = %v, want wrapped %v", err, backendErr)
	}
	if !p.HasNextPage() {
		t.Error("HasNextPage() = false after a failed fetch, want true so the caller can retry")
	}

	// Recovery: the same cursor is requested again.
	backend.err = nil
	backend.pages = map[string]Page[string]{
		"": {Nodes: makeNodes("a", 1), PageInfo: &PageInfo{HasNextPage: false}},
	}
	page, err := p.NextPage(context.Background())
	if err != nil {
		t.Fatalf("NextPage() after recovery error = %v", err)
	}
	if len(page.Nodes) != 1 {
		t.Errorf("recovered page has %d nodes, want 1", len(page.Nodes))
	}
}

func TestFetchAllPages(t *testing.T) {
	t.Run("drains from the beginning", func(t *testing.T) {
		backend := &fakeBackend{pages: map[string]Page[string]{
			"":   {Nodes: makeNodes("a", 2), PageInfo: &PageInfo{HasNextPage: true, EndCursor: strPtr("c1")}},
			"c1": {Nodes: makeNodes("b", 2), PageInfo: &PageInfo{HasNextPage: false}},
		}}

		all, err := FetchAllPages(context.Background(), backend.fetch, PageRequest{First: 2})
		if err != nil {
			t.Fatalf("FetchAllPages() error = %v", err)
		}
		if len(all) != 4 {
			t.Errorf("FetchAllPages() returned %d items, want 4", len(all))
		}
	})

	t.Run("honors the initial cursor", func(t *testing.T) {
		backend := &fakeBackend{pages: map[string]Page[string]{
			"c1": {Nodes: makeNodes("b", 1), PageInfo: &PageInfo{HasNextPage: false}},
		}}

		all, err := FetchAllPages(context.Background(), backend.fetch, PageRequest{First: 2, After: "c1"})
		if err != nil {
			t.Fatalf("FetchAllPages() error = %v", err)
		}
		if len(all) != 1 || all[0] != "b-0" {
			t.Errorf("FetchAllPages() = %v, want [b-0]", all)
		}
		if backend.requests[0].After != "c1" {
			t.Errorf("first request After = %q, want %q", backend.requests[0].After, "c1")
		}
	})

	t.Run("zero size takes the default", func(t *testing.T) {
		backend := &fakeBackend{pages: map[string]Page[string]{
			"": {Nodes: makeNodes("a", 1), PageInfo: &PageInfo{HasNextPage: false}},
		}}

		if _, err := FetchAllPages(context.Background(), backend.fetch, PageRequest{}); err != nil {
			t.Fatalf("FetchAllPages() error = %v", err)
		}
		if backend.requests[0].First != DefaultPageSize {
			t.Errorf("request First = %d, want %d", backend.requests[0].First, DefaultPageSize)
		}
	})

	t.Run("negative size is rejected", func(t *testing.T) {
		backend := &fakeBackend{}
		_, err := FetchAllPages(context.Background(), backend.fetch, PageRequest{First: -1})
		if !errors.Is(err, ErrInvalidPageSize) {
			t.Errorf("error = %v, want ErrInvalidPageSize", err)
		}
		if len(backend.requests) != 0 {
			t.Errorf("backend calls = %d, want 0", len(backend.requests))
		}
	})

	t.Run("stops on short page despite metadata", func(t *testing.T) {
		backend := &fakeBackend{pages: map[string]Page[string]{
			"":   {Nodes: makeNodes("a", 3), PageInfo: &PageInfo{HasNextPage: true, EndCursor: strPtr("c1")}},
			"c1": {Nodes: makeNodes("b", 1), PageInfo: &PageInfo{HasNextPage: true, EndCursor: strPtr("c2")}},
		}}

		all, err := FetchAllPages(context.Background(), backend.fetch, PageRequest{First: 3})
		if err != nil {
			t.Fatalf("FetchAllPages() error = %v", err)
		}
		if len(all) != 4 {
			t.Errorf("FetchAllPages() returned %d items, want 4", len(all))
		}
		if len(backend.requests) != 2 {
			t.Errorf("backend calls = %d, want 2", len(backend.requests))
		}
	})
}
