/*-------------------------------------------------------------------------
 *
 * Linear MCP Server
 *
 * Copyright (c) 2026, Linear MCP Server contributors
 * This software is released under The MIT License
 *
 *-------------------------------------------------------------------------
 */

package definitions

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefinitions_YAML(t *testing.T) {
	content := `
prompts:
  - name: test-prompt
    description: Test prompt
    arguments:
      - name: arg1
        description: First argument
        required: true
    messages:
      - role: user
        content:
          type: text
          text: "Test {{arg1}}"

views:
  - name: my-bugs
    description: Bugs assigned to me
    filter:
      assignee_id: user-1
      state: Todo
`

	tmpFile := createTempFile(t, "test-*.yaml", content)
	defer os.Remove(tmpFile)

	defs, err := LoadDefinitions(tmpFile)
	if err != nil {
		t.Fatalf("Failed to load definitions: %v", err)
	}

	if len(defs.Prompts) != 1 {
		t.Errorf("Expected 1 prompt, got %d", len(defs.Prompts))
	}

	if len(defs.Views) != 1 {
		t.Errorf("Expected 1 view, got %d", len(defs.Views))
	}
}

func TestLoadDefinitions_InvalidYAML(t *testing.T) {
	content := `
prompts:
  - name: test
    invalid: : yaml
`
	tmpFile := createTempFile(t, "test-*.yaml", content)
	defer os.Remove(tmpFile)

	_, err := LoadDefinitions(tmpFile)
	if err == nil {
		t.Error("Expected error for invalid YAML, got nil")
	}
}

func TestLoadDefinitions_UnsupportedFormat(t *testing.T) {
	content := `test content`
	tmpFile := createTempFile(t, "test-*.txt", content)
	defer os.Remove(tmpFile)

	_, err := LoadDefinitions(tmpFile)
	if err == nil {
		t.Error("Expected error for unsupported format, got nil")
	}
}

func TestLoadDefinitions_FileNotFound(t *testing.T) {
	_, err := LoadDefinitions("/nonexistent/file.yaml")
	if err == nil {
		t.Error("Expected error for nonexistent file, got nil")
	}
}

func TestLoadDefinitions_EmptyFile(t *testing.T) {
	content := ``
	tmpFile := createTempFile(t, "test-*.yaml", content)
	defer os.Remove(tmpFile)

	defs, err := LoadDefinitions(tmpFile)
	if err != nil {
		t.Fatalf("Failed to load empty definitions: %v", err)
	}

	if len(defs.Prompts) != 0 {
		t.Errorf("Expected 0 prompts, got %d", len(defs.Prompts))
	}

	if len(defs.Views) != 0 {
		t.Errorf("Expected 0 views, got %d", len(defs.Views))
	}
}

func createTempFile(t *testing.T, pattern string, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp("", pattern)
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	if _, err := tmpFile.WriteString(content); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	if err := tmpFile.Close(); err != nil {
		t.Fatalf("Failed to close temp file: %v", err)
	}
	return tmpFile.Name()
}

func TestLoadDefinitions_ViewFilters(t *testing.T) {
	content := `
views:
  - name: team-backlog
    filter:
      team_id: team-1
      state: Backlog
  - name: project-work
    filter:
      project_id: proj-1
    limit: 25
  - name: everything
`

	tmpFile := createTempFile(t, "test-*.yaml", content)
	defer os.Remove(tmpFile)

	defs, err := LoadDefinitions(tmpFile)
	if err != nil {
		t.Fatalf("Failed to load definitions: %v", err)
	}

	if len(defs.Views) != 3 {
		t.Fatalf("Expected 3 views, got %d", len(defs.Views))
	}

	if defs.Views[0].Filter.TeamID != "team-1" {
		t.Errorf("Expected team_id 'team-1', got '%s'", defs.Views[0].Filter.TeamID)
	}

	if defs.Views[0].Filter.StateName != "Backlog" {
		t.Errorf("Expected state 'Backlog', got '%s'", defs.Views[0].Filter.StateName)
	}

	if defs.Views[1].Limit != 25 {
		t.Errorf("Expected limit 25, got %d", defs.Views[1].Limit)
	}

	if defs.Views[2].Filter != (ViewFilter{}) {
		t.Errorf("Expected empty filter, got %+v", defs.Views[2].Filter)
	}
}

func TestLoadDefinitions_YMLExtension(t *testing.T) {
	content := `
views:
  - name: test
`

	tmpFile := createTempFile(t, "test-*.yml", content)
	defer os.Remove(tmpFile)

	_, err := LoadDefinitions(tmpFile)
	if err != nil {
		t.Fatalf("Failed to load .yml file: %v", err)
	}
}

func TestLoadDefinitions_RelativePath(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.yaml")
	content := `prompts: []
views: []`

	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}

	_, err := LoadDefinitions(tmpFile)
	if err != nil {
		t.Fatalf("Failed to load definitions from relative path: %v", err)
	}
}
