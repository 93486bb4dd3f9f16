/*-------------------------------------------------------------------------
 *
 * Linear MCP Server
 *
 * Copyright (c) 2026, Linear MCP Server contributors
 * This software is released under The MIT License
 *
 *-------------------------------------------------------------------------
 */

package prompts

import (
	"testing"

	"linear-mcp/internal/definitions"
)

func TestRegisterStatic_BasicPrompt(t *testing.T) {
	registry := NewRegistry()

	def := definitions.PromptDefinition{
		Name:        "test-prompt",
		Description: "Test description",
		Arguments:   []definitions.ArgumentDef{},
		Messages: []definitions.MessageDef{
			{
				Role: "user",
				Content: definitions.ContentDef{
					Type: "text",
					Text: "Test message",
				},
			},
		},
	}

	err := registry.RegisterStatic(def)
	if err != nil {
		t.Fatalf("Failed to register prompt: %v", err)
	}

	prompt, exists := registry.Get("test-prompt")
	if !exists {
		t.Fatal("Prompt not found in registry")
	}

	if prompt.Definition.Name != "test-prompt" {
		t.Errorf("Expected name 'test-prompt', got '%s'", prompt.Definition.Name)
	}

	if prompt.Definition.Description != "Test description" {
		t.Errorf("Expected description 'Test description', got '%s'", prompt.Definition.Description)
	}
}

func TestRegisterStatic_WithArguments(t *testing.T) {
	registry := NewRegistry()

	def := definitions.PromptDefinition{
		Name: "test-prompt",
		Arguments: []definitions.ArgumentDef{
			{Name: "arg1", Description: "First arg", Required: true},
			{Name: "arg2", Description: "Second arg", Required: false},
		},
		Messages: []definitions.MessageDef{
			{
				Role: "user",
				Content: definitions.ContentDef{
					Type: "text",
					Text: "Test",
				},
			},
		},
	}

	err := registry.RegisterStatic(def)
	if err != nil {
		t.Fatalf("Failed to register prompt: %v", err)
	}

	prompt, _ := registry.Get("test-prompt")
	if len(prompt.Definition.Arguments) != 2 {
		t.Errorf("Expected 2 arguments, got %d", len(prompt.Definition.Arguments))
	}

	if prompt.Definition.Arguments[0].Name != "arg1" {
		t.Errorf("Expected first argument name 'arg1', got '%s'", prompt.Definition.Arguments[0].Name)
	}

	if !prompt.Definition.Arguments[0].Required {
		t.Error("Expected first argument to be required")
	}

	if prompt.Definition.Arguments[1].Required {
		t.Error("Expected second argument to be optional")
	}
}

func TestRegisterStatic_TemplateInterpolation(t *testing.T) {
	registry := NewRegistry()

	def := definitions.PromptDefinition{
		Name: "test-prompt",
		Arguments: []definitions.ArgumentDef{
			{Name: "name", Required: true},
			{Name: "action", Required: true},
		},
		Messages: []definitions.MessageDef{
			{
				Role: "user",
				Content: definitions.ContentDef{
					Type: "text",
					Text: "Hello {{name}}, please {{action}}",
				},
			},
		},
	}

	err := registry.RegisterStatic(def)
	if err != nil {
		t.Fatalf("Failed to register prompt: %v", err)
	}

	result, err := registry.Execute("test-prompt", map[string]string{
		"name":   "Ada",
		"action": "triage the backlog",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	got := result.Messages[0].Content.Text
	want := "Hello Ada, please triage the backlog"
	if got != want {
		t.Errorf("Interpolated text = %q, want %q", got, want)
	}
}

func TestRegisterStatic_MissingArgumentLeavesPlaceholder(t *testing.T) {
	registry := NewRegistry()

	def := definitions.PromptDefinition{
		Name: "test-prompt",
		Arguments: []definitions.ArgumentDef{
			{Name: "name", Required: false},
		},
		Messages: []definitions.MessageDef{
			{
				Role: "user",
				Content: definitions.ContentDef{
					Type: "text",
					Text: "Hello {{name}}",
				},
			},
		},
	}

	if err := registry.RegisterStatic(def); err != nil {
		t.Fatalf("Failed to register prompt: %v", err)
	}

	result, err := registry.Execute("test-prompt", map[string]string{})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.Messages[0].Content.Text != "Hello {{name}}" {
		t.Errorf("Unfilled placeholder should survive, got %q", result.Messages[0].Content.Text)
	}
}

func TestRegisterStatic_ResourceContent(t *testing.T) {
	registry := NewRegistry()

	def := definitions.PromptDefinition{
		Name: "test-prompt",
		Arguments: []definitions.ArgumentDef{
			{Name: "team", Required: true},
		},
		Messages: []definitions.MessageDef{
			{
				Role: "user",
				Content: definitions.ContentDef{
					Type: "text",
					Text: "Review the team's cycles",
				},
			},
			{
				Role: "user",
				Content: definitions.ContentDef{
					Type: "resource",
					URI:  "resource://teams/{{team}}/cycles",
				},
			},
		},
	}

	if err := registry.RegisterStatic(def); err != nil {
		t.Fatalf("Failed to register prompt: %v", err)
	}

	result, err := registry.Execute("test-prompt", map[string]string{"team": "team-1"})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(result.Messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(result.Messages))
	}

	resourceMsg := result.Messages[1]
	if resourceMsg.Content.Type != "resource" {
		t.Errorf("Content type = %q, want 'resource'", resourceMsg.Content.Type)
	}
	if resourceMsg.Content.Text != "resource://teams/team-1/cycles" {
		t.Errorf("Resource URI = %q, want interpolated URI", resourceMsg.Content.Text)
	}
}

func TestRegisterStatic_MultipleMessages(t *testing.T) {
	registry := NewRegistry()

	def := definitions.PromptDefinition{
		Name: "test-prompt",
		Messages: []definitions.MessageDef{
			{
				Role:    "system",
				Content: definitions.ContentDef{Type: "text", Text: "You are a project assistant"},
			},
			{
				Role:    "user",
				Content: definitions.ContentDef{Type: "text", Text: "Summarize the backlog"},
			},
		},
	}

	if err := registry.RegisterStatic(def); err != nil {
		t.Fatalf("Failed to register prompt: %v", err)
	}

	result, err := registry.Execute("test-prompt", nil)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(result.Messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(result.Messages))
	}
	if result.Messages[0].Role != "system" || result.Messages[1].Role != "user" {
		t.Errorf("Roles = %q, %q", result.Messages[0].Role, result.Messages[1].Role)
	}
}

func TestInterpolateTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     map[string]string
		want     string
	}{
		{
			name:     "single placeholder",
			template: "Hello {{name}}",
			args:     map[string]string{"name": "Ada"},
			want:     "Hello Ada",
		},
		{
			name:     "repeated placeholder",
			template: "{{x}} and {{x}}",
			args:     map[string]string{"x": "again"},
			want:     "again and again",
		},
		{
			name:     "no placeholders",
			template: "static text",
			args:     map[string]string{"name": "Ada"},
			want:     "static text",
		},
		{
			name:     "empty args",
			template: "Hello {{name}}",
			args:     map[string]string{},
			want:     "Hello {{name}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := interpolateTemplate(tt.template, tt.args)
			if got != tt.want {
				t.Errorf("interpolateTemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}
