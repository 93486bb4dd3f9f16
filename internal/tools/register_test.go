/*-------------------------------------------------------------------------
 *
 * Linear MCP Server
 *
 * Copyright (c) 2026, Linear MCP Server contributors
 * This software is released under The MIT License
 *
 *-------------------------------------------------------------------------
 */

package tools

import (
	"testing"
)

func TestRegisterAll(t *testing.T) {
	builtinNames := []string{
		"capture_issue",
		"create_comment",
		"create_issue",
		"get_issue",
		"list_issues",
		"list_projects",
		"list_resources",
		"list_teams",
		"read_resource",
		"search_issues",
		"update_issue",
	}

	t.Run("registers every builtin", func(t *testing.T) {
		registry := NewRegistry()
		RegisterAll(registry, newFakeBackend(), &mockResourceReader{}, &mockDirectoryLister{}, nil)

		tools := registry.List()
		if len(tools) != len(builtinNames) {
			t.Fatalf("List() returned %d tools, want %d", len(tools), len(builtinNames))
		}
		for i, name := range builtinNames {
			if tools[i].Name != name {
				t.Errorf("List()[%d].Name = %q, want %q", i, tools[i].Name, name)
			}
		}
	})

	t.Run("enabled filter excludes tools", func(t *testing.T) {
		registry := NewRegistry()
		RegisterAll(registry, newFakeBackend(), &mockResourceReader{}, &mockDirectoryLister{}, func(name string) bool {
			return name != "capture_issue" && name != "update_issue"
		})

		if _, exists := registry.Get("capture_issue"); exists {
			t.Error("capture_issue should be filtered out")
		}
		if _, exists := registry.Get("update_issue"); exists {
			t.Error("update_issue should be filtered out")
		}
		if _, exists := registry.Get("list_teams"); !exists {
			t.Error("list_teams should still be registered")
		}

		if got := len(registry.List()); got != len(builtinNames)-2 {
			t.Errorf("List() returned %d tools, want %d", got, len(builtinNames)-2)
		}
	})

	t.Run("definitions carry schemas", func(t *testing.T) {
		registry := NewRegistry()
		RegisterAll(registry, newFakeBackend(), &mockResourceReader{}, &mockDirectoryLister{}, nil)

		for _, def := range registry.List() {
			if def.Description == "" {
				t.Errorf("Tool %s has no description", def.Name)
			}
			if def.InputSchema.Type != "object" {
				t.Errorf("Tool %s schema type = %q, want object", def.Name, def.InputSchema.Type)
			}
		}
	})
}
