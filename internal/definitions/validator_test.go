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
	"strings"
	"testing"
)

func TestValidateDefinitions_ValidPrompt(t *testing.T) {
	defs := &Definitions{
		Prompts: []PromptDefinition{
			{
				Name:        "test-prompt",
				Description: "Test",
				Arguments: []ArgumentDef{
					{Name: "arg1", Required: true},
				},
				Messages: []MessageDef{
					{
						Role: "user",
						Content: ContentDef{
							Type: "text",
							Text: "Test {{arg1}}",
						},
					},
				},
			},
		},
	}

	err := ValidateDefinitions(defs)
	if err != nil {
		t.Errorf("Expected valid prompt to pass, got error: %v", err)
	}
}

func TestValidateDefinitions_PromptMissingName(t *testing.T) {
	defs := &Definitions{
		Prompts: []PromptDefinition{
			{
				Messages: []MessageDef{
					{Role: "user", Content: ContentDef{Type: "text", Text: "Test"}},
				},
			},
		},
	}

	err := ValidateDefinitions(defs)
	if err == nil {
		t.Error("Expected error for missing prompt name")
	}
	if !strings.Contains(err.Error(), "name is required") {
		t.Errorf("Expected 'name is required' error, got: %v", err)
	}
}

func TestValidateDefinitions_PromptNoMessages(t *testing.T) {
	defs := &Definitions{
		Prompts: []PromptDefinition{
			{Name: "test", Messages: []MessageDef{}},
		},
	}

	err := ValidateDefinitions(defs)
	if err == nil {
		t.Error("Expected error for prompt with no messages")
	}
}

func TestValidateDefinitions_DuplicatePromptName(t *testing.T) {
	defs := &Definitions{
		Prompts: []PromptDefinition{
			{
				Name: "test",
				Messages: []MessageDef{
					{Role: "user", Content: ContentDef{Type: "text", Text: "A"}},
				},
			},
			{
				Name: "test",
				Messages: []MessageDef{
					{Role: "user", Content: ContentDef{Type: "text", Text: "B"}},
				},
			},
		},
	}

	err := ValidateDefinitions(defs)
	if err == nil {
		t.Error("Expected error for duplicate prompt name")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("Expected 'duplicate' error, got: %v", err)
	}
}

func TestValidateDefinitions_InvalidRole(t *testing.T) {
	defs := &Definitions{
		Prompts: []PromptDefinition{
			{
				Name: "test",
				Messages: []MessageDef{
					{Role: "invalid", Content: ContentDef{Type: "text", Text: "Test"}},
				},
			},
		},
	}

	err := ValidateDefinitions(defs)
	if err == nil {
		t.Error("Expected error for invalid role")
	}
}

func TestValidateDefinitions_ValidRoles(t *testing.T) {
	roles := []string{"user", "assistant", "system"}
	for _, role := range roles {
		defs := &Definitions{
			Prompts: []PromptDefinition{
				{
					Name: "test",
					Messages: []MessageDef{
						{Role: role, Content: ContentDef{Type: "text", Text: "Test"}},
					},
				},
			},
		}

		err := ValidateDefinitions(defs)
		if err != nil {
			t.Errorf("Expected role '%s' to be valid, got error: %v", role, err)
		}
	}
}

func TestValidateDefinitions_InvalidContentType(t *testing.T) {
	defs := &Definitions{
		Prompts: []PromptDefinition{
			{
				Name: "test",
				Messages: []MessageDef{
					{Role: "user", Content: ContentDef{Type: "invalid", Text: "Test"}},
				},
			},
		},
	}

	err := ValidateDefinitions(defs)
	if err == nil {
		t.Error("Expected error for invalid content type")
	}
}

func TestValidateDefinitions_TextContentMissingText(t *testing.T) {
	defs := &Definitions{
		Prompts: []PromptDefinition{
			{
				Name: "test",
				Messages: []MessageDef{
					{Role: "user", Content: ContentDef{Type: "text"}},
				},
			},
		},
	}

	err := ValidateDefinitions(defs)
	if err == nil {
		t.Error("Expected error for text content without text field")
	}
}

func TestValidateDefinitions_ResourceContentMissingURI(t *testing.T) {
	defs := &Definitions{
		Prompts: []PromptDefinition{
			{
				Name: "test",
				Messages: []MessageDef{
					{Role: "user", Content: ContentDef{Type: "resource"}},
				},
			},
		},
	}

	err := ValidateDefinitions(defs)
	if err == nil {
		t.Error("Expected error for resource content without uri field")
	}
}

func TestValidateDefinitions_UndefinedArgument(t *testing.T) {
	defs := &Definitions{
		Prompts: []PromptDefinition{
			{
				Name: "test",
				Arguments: []ArgumentDef{
					{Name: "arg1"},
				},
				Messages: []MessageDef{
					{
						Role: "user",
						Content: ContentDef{
							Type: "text",
							Text: "Test {{undefined_arg}}",
						},
					},
				},
			},
		},
	}

	err := ValidateDefinitions(defs)
	if err == nil {
		t.Error("Expected error for undefined argument in template")
	}
	if !strings.Contains(err.Error(), "undefined argument") {
		t.Errorf("Expected 'undefined argument' error, got: %v", err)
	}
}

func TestValidateDefinitions_ArgumentMissingName(t *testing.T) {
	defs := &Definitions{
		Prompts: []PromptDefinition{
			{
				Name: "test",
				Arguments: []ArgumentDef{
					{Description: "No name"},
				},
				Messages: []MessageDef{
					{Role: "user", Content: ContentDef{Type: "text", Text: "Test"}},
				},
			},
		},
	}

	err := ValidateDefinitions(defs)
	if err == nil {
		t.Error("Expected error for argument without name")
	}
}

func TestValidateDefinitions_ValidView(t *testing.T) {
	defs := &Definitions{
		Views: []ViewDefinition{
			{
				Name:        "my-bugs",
				Description: "Bugs assigned to me",
				Filter:      ViewFilter{AssigneeID: "user-1", StateName: "Todo"},
				Limit:       25,
			},
		},
	}

	err := ValidateDefinitions(defs)
	if err != nil {
		t.Errorf("Expected valid view to pass, got error: %v", err)
	}
}

func TestValidateDefinitions_ViewMissingName(t *testing.T) {
	defs := &Definitions{
		Views: []ViewDefinition{
			{Filter: ViewFilter{TeamID: "team-1"}},
		},
	}

	err := ValidateDefinitions(defs)
	if err == nil {
		t.Error("Expected error for missing view name")
	}
}

func TestValidateDefinitions_DuplicateViewName(t *testing.T) {
	defs := &Definitions{
		Views: []ViewDefinition{
			{Name: "test"},
			{Name: "test"},
		},
	}

	err := ValidateDefinitions(defs)
	if err == nil {
		t.Error("Expected error for duplicate view name")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("Expected 'duplicate' error, got: %v", err)
	}
}

func TestValidateDefinitions_ViewNameCharacters(t *testing.T) {
	valid := []string{"bugs", "my-bugs", "my_bugs", "sprint42", "Q3-planning"}
	for _, name := range valid {
		defs := &Definitions{Views: []ViewDefinition{{Name: name}}}
		if err := ValidateDefinitions(defs); err != nil {
			t.Errorf("Expected view name '%s' to be valid, got error: %v", name, err)
		}
	}

	invalid := []string{"my bugs", "bugs/all", "bugs?", "{bugs}", "a.b"}
	for _, name := range invalid {
		defs := &Definitions{Views: []ViewDefinition{{Name: name}}}
		if err := ValidateDefinitions(defs); err == nil {
			t.Errorf("Expected view name '%s' to be rejected", name)
		}
	}
}

func TestValidateDefinitions_NegativeViewLimit(t *testing.T) {
	defs := &Definitions{
		Views: []ViewDefinition{
			{Name: "test", Limit: -1},
		},
	}

	err := ValidateDefinitions(defs)
	if err == nil {
		t.Error("Expected error for negative view limit")
	}
}

func TestGetTemplatePlaceholders(t *testing.T) {
	tests := []struct {
		template    string
		expected    []string
		description string
	}{
		{
			template:    "No placeholders",
			expected:    []string{},
			description: "Text without placeholders",
		},
		{
			template:    "Hello {{name}}",
			expected:    []string{"name"},
			description: "Single placeholder",
		},
		{
			template:    "{{greeting}} {{name}}!",
			expected:    []string{"greeting", "name"},
			description: "Multiple placeholders",
		},
		{
			template:    "{{arg1}} and {{arg1}} again",
			expected:    []string{"arg1", "arg1"},
			description: "Duplicate placeholders",
		},
		{
			template:    "Nested {{outer_{{inner}}}}",
			expected:    []string{"inner"},
			description: "Nested braces",
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			result := GetTemplatePlaceholders(tt.template)
			if len(result) != len(tt.expected) {
				t.Errorf("Expected %d placeholders, got %d", len(tt.expected), len(result))
				return
			}
			for i, exp := range tt.expected {
				if result[i] != exp {
					t.Errorf("Expected placeholder '%s' at index %d, got '%s'", exp, i, result[i])
				}
			}
		})
	}
}

func TestValidateDefinitions_EmptyDefinitions(t *testing.T) {
	defs := &Definitions{}

	err := ValidateDefinitions(defs)
	if err != nil {
		t.Errorf("Expected empty definitions to be valid, got error: %v", err)
	}
}
