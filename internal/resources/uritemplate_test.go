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
	"reflect"
	"testing"
)

func TestParseURITemplate_Valid(t *testing.T) {
	tests := []struct {
		name      string
		template  string
		static    bool
		variables []string
	}{
		{
			name:     "static single segment",
			template: "resource://teams",
			static:   true,
		},
		{
			name:      "single variable",
			template:  "resource://teams/{teamId}",
			variables: []string{"teamId"},
		},
		{
			name:      "variable between literals",
			template:  "resource://teams/{teamId}/cycles",
			variables: []string{"teamId"},
		},
		{
			name:      "multiple variables",
			template:  "resource://teams/{teamId}/issues/{issueId}",
			variables: []string{"teamId", "issueId"},
		},
		{
			name:     "static nested path",
			template: "resource://workspace/settings",
			static:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := ParseURITemplate(tt.template)
			if err != nil {
				t.Fatalf("ParseURITemplate(%q) error = %v", tt.template, err)
			}

			if tmpl.String() != tt.template {
				t.Errorf("String() = %q, want %q", tmpl.String(), tt.template)
			}

			if tmpl.Scheme() != "resource" {
				t.Errorf("Scheme() = %q, want %q", tmpl.Scheme(), "resource")
			}

			if tmpl.IsStatic() != tt.static {
				t.Errorf("IsStatic() = %v, want %v", tmpl.IsStatic(), tt.static)
			}

			got := tmpl.Variables()
			if len(got) != len(tt.variables) {
				t.Fatalf("Variables() = %v, want %v", got, tt.variables)
			}
			for i, name := range tt.variables {
				if got[i] != name {
					t.Errorf("Variables()[%d] = %q, want %q", i, got[i], name)
				}
			}
		})
	}
}

func TestParseURITemplate_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		template string
	}{
		{"no scheme", "teams/{teamId}"},
		{"empty scheme", "://teams"},
		{"no path", "resource://"},
		{"empty middle segment", "resource://teams//cycles"},
		{"empty variable name", "resource://teams/{}"},
		{"variable name with space", "resource://teams/{team id}"},
		{"variable name with dash", "resource://teams/{team-id}"},
		{"duplicate variable", "resource://{id}/children/{id}"},
		{"braces inside segment", "resource://te{am}s"},
		{"unclosed brace", "resource://teams/{teamId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseURITemplate(tt.template); err == nil {
				t.Errorf("ParseURITemplate(%q) expected error, got nil", tt.template)
			}
		})
	}
}

func TestMustParseURITemplate_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseURITemplate with invalid template did not panic")
		}
	}()
	MustParseURITemplate("not a template")
}

func TestURITemplateMatch(t *testing.T) {
	tests := []struct {
		name     string
		template string
		uri      string
		want     map[string]string
		ok       bool
	}{
		{
			name:     "variable captures segment",
			template: "resource://teams/{teamId}",
			uri:      "resource://teams/abc123",
			want:     map[string]string{"teamId": "abc123"},
			ok:       true,
		},
		{
			name:     "static exact match",
			template: "resource://teams",
			uri:      "resource://teams",
			want:     map[string]string{},
			ok:       true,
		},
		{
			name:     "nested template",
			template: "resource://teams/{teamId}/cycles",
			uri:      "resource://teams/team-1/cycles",
			want:     map[string]string{"teamId": "team-1"},
			ok:       true,
		},
		{
			name:     "literal mismatch",
			template: "resource://teams/{teamId}",
			uri:      "resource://users/abc123",
			ok:       false,
		},
		{
			name:     "too many segments",
			template: "resource://teams/{teamId}",
			uri:      "resource://teams/abc123/cycles",
			ok:       false,
		},
		{
			name:     "too few segments",
			template: "resource://teams/{teamId}",
			uri:      "resource://teams",
			ok:       false,
		},
		{
			name:     "scheme mismatch",
			template: "resource://teams/{teamId}",
			uri:      "linear://teams/abc123",
			ok:       false,
		},
		{
			name:     "variable decodes percent escapes",
			template: "resource://teams/{teamId}",
			uri:      "resource://teams/a%20b",
			want:     map[string]string{"teamId": "a b"},
			ok:       true,
		},
		{
			name:     "encoded slash stays one segment",
			template: "resource://teams/{teamId}",
			uri:      "resource://teams/a%2Fb",
			want:     map[string]string{"teamId": "a/b"},
			ok:       true,
		},
		{
			name:     "literal compares decoded",
			template: "resource://teams/{teamId}",
			uri:      "resource://te%61ms/abc",
			want:     map[string]string{"teamId": "abc"},
			ok:       true,
		},
		{
			name:     "invalid percent escape",
			template: "resource://teams/{teamId}",
			uri:      "resource://teams/%zz",
			ok:       false,
		},
		{
			name:     "missing scheme",
			template: "resource://teams/{teamId}",
			uri:      "teams/abc123",
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := ParseURITemplate(tt.template)
			if err != nil {
				t.Fatalf("ParseURITemplate(%q) error = %v", tt.template, err)
			}

			vars, ok := tmpl.Match(tt.uri)
			if ok != tt.ok {
				t.Fatalf("Match(%q) ok = %v, want %v", tt.uri, ok, tt.ok)
			}
			if !tt.ok {
				return
			}

			if !reflect.DeepEqual(vars, tt.want) {
				t.Errorf("Match(%q) vars = %v, want %v", tt.uri, vars, tt.want)
			}
		})
	}
}

func TestURITemplateMatch_EmptySegments(t *testing.T) {
	tmpl := MustParseURITemplate("resource://teams/{teamId}/cycles")

	uris := []string{
		"resource://teams//cycles",
		"resource://teams/abc/cycles/",
		"resource://teams/abc//",
	}

	for _, uri := range uris {
		if _, ok := tmpl.Match(uri); ok {
			t.Errorf("Match(%q) = true, want false", uri)
		}
	}
}

func TestURITemplateExpand(t *testing.T) {
	tmpl := MustParseURITemplate("resource://teams/{teamId}/cycles")

	t.Run("basic substitution", func(t *testing.T) {
		uri, err := tmpl.Expand(map[string]string{"teamId": "team-1"})
		if err != nil {
			t.Fatalf("Expand() error = %v", err)
		}
		if uri != "resource://teams/team-1/cycles" {
			t.Errorf("Expand() = %q, want %q", uri, "resource://teams/team-1/cycles")
		}
	})

	t.Run("escapes reserved characters", func(t *testing.T) {
		uri, err := tmpl.Expand(map[string]string{"teamId": "a/b c"})
		if err != nil {
			t.Fatalf("Expand() error = %v", err)
		}
		if uri != "resource://teams/a%2Fb%20c/cycles" {
			t.Errorf("Expand() = %q, want %q", uri, "resource://teams/a%2Fb%20c/cycles")
		}
	})

	t.Run("missing variable", func(t *testing.T) {
		if _, err := tmpl.Expand(map[string]string{}); err == nil {
			t.Error("Expand() with missing variable expected error, got nil")
		}
	})

	t.Run("empty variable value", func(t *testing.T) {
		if _, err := tmpl.Expand(map[string]string{"teamId": ""}); err == nil {
			t.Error("Expand() with empty value expected error, got nil")
		}
	})
}

func TestURITemplateExpandMatchRoundTrip(t *testing.T) {
	tmpl := MustParseURITemplate("resource://issues/{issueId}/comments")

	values := []string{"simple", "with space", "with/slash", "ENG-42"}
	for _, value := range values {
		uri, err := tmpl.Expand(map[string]string{"issueId": value})
		if err != nil {
			t.Fatalf("Expand(%q) error = %v", value, err)
		}

		vars, ok := tmpl.Match(uri)
		if !ok {
			t.Fatalf("Match(%q) = false, want true", uri)
		}
		if vars["issueId"] != value {
			t.Errorf("round trip of %q gave %q", value, vars["issueId"])
		}
	}
}

func TestURITemplateOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{"identical static", "resource://teams", "resource://teams", true},
		{"different literals", "resource://teams", "resource://users", false},
		{"different schemes", "resource://teams", "linear://teams", false},
		{"different segment counts", "resource://teams", "resource://teams/{teamId}", false},
		{"variable shadows literal", "resource://{entity}", "resource://teams", true},
		{"variables at same position", "resource://teams/{a}", "resource://teams/{b}", true},
		{"distinct literal tails", "resource://teams/{teamId}/cycles", "resource://teams/{teamId}/issues", false},
		{"variable against literal tail", "resource://teams/{teamId}/{rest}", "resource://teams/{teamId}/cycles", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := MustParseURITemplate(tt.a)
			b := MustParseURITemplate(tt.b)

			if got := a.Overlaps(b); got != tt.want {
				t.Errorf("Overlaps(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := b.Overlaps(a); got != tt.want {
				t.Errorf("Overlaps(%q, %q) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}
