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
	"fmt"
	"regexp"
)

var (
	// Valid message roles
	validRoles = map[string]bool{
		"user":      true,
		"assistant": true,
		"system":    true,
	}

	// Valid content types
	validContentTypes = map[string]bool{
		"text":     true,
		"resource": true,
	}

	// Pattern to find template placeholders like {{arg_name}}
	placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

	// View names become URI path segments, so they stay plain
	viewNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// ValidateDefinitions validates all prompt and view definitions
func ValidateDefinitions(defs *Definitions) error {
	promptNames := make(map[string]bool)
	viewNames := make(map[string]bool)

	for i, prompt := range defs.Prompts {
		if err := validatePrompt(&prompt, promptNames); err != nil {
			return fmt.Errorf("prompt %d: %w", i, err)
		}
	}

	for i := range defs.Views {
		if err := validateView(&defs.Views[i], viewNames); err != nil {
			return fmt.Errorf("view %d: %w", i, err)
		}
	}

	return nil
}

// validatePrompt validates a single prompt definition
func validatePrompt(prompt *PromptDefinition, seenNames map[string]bool) error {
	if prompt.Name == "" {
		return fmt.Errorf("name is required")
	}

	if seenNames[prompt.Name] {
		return fmt.Errorf("duplicate prompt name: %s", prompt.Name)
	}
	seenNames[prompt.Name] = true

	if len(prompt.Messages) == 0 {
		return fmt.Errorf("at least one message is required")
	}

	argNames := make(map[string]bool)
	for _, arg := range prompt.Arguments {
		if arg.Name == "" {
			return fmt.Errorf("argument name is required")
		}
		argNames[arg.Name] = true
	}

	for j, msg := range prompt.Messages {
		if err := validateMessage(&msg, argNames); err != nil {
			return fmt.Errorf("message %d: %w", j, err)
		}
	}

	return nil
}

// validateMessage validates a prompt message
func validateMessage(msg *MessageDef, validArgs map[string]bool) error {
	if !validRoles[msg.Role] {
		return fmt.Errorf("invalid role %q (must be user, assistant, or system)", msg.Role)
	}

	if !validContentTypes[msg.Content.Type] {
		return fmt.Errorf("invalid content type %q (must be text or resource)", msg.Content.Type)
	}

	switch msg.Content.Type {
	case "text":
		if msg.Content.Text == "" {
			return fmt.Errorf("text content requires 'text' field")
		}
		// Template placeholders must reference declared arguments
		matches := placeholderPattern.FindAllStringSubmatch(msg.Content.Text, -1)
		for _, match := range matches {
			argName := match[1]
			if !validArgs[argName] {
				return fmt.Errorf("template references undefined argument: %s", argName)
			}
		}
	case "resource":
		if msg.Content.URI == "" {
			return fmt.Errorf("resource content requires 'uri' field")
		}
	}

	return nil
}

// validateView validates a single saved-view definition
func validateView(view *ViewDefinition, seenNames map[string]bool) error {
	if view.Name == "" {
		return fmt.Errorf("name is required")
	}

	if !viewNamePattern.MatchString(view.Name) {
		return fmt.Errorf("invalid view name %q (letters, digits, underscore, and hyphen only)", view.Name)
	}

	if seenNames[view.Name] {
		return fmt.Errorf("duplicate view name: %s", view.Name)
	}
	seenNames[view.Name] = true

	if view.Limit < 0 {
		return fmt.Errorf("limit must not be negative")
	}

	return nil
}

// GetTemplatePlaceholders extracts all {{placeholder}} names from a template string
func GetTemplatePlaceholders(template string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)
	placeholders := make([]string, 0, len(matches))
	for _, match := range matches {
		placeholders = append(placeholders, match[1])
	}
	return placeholders
}
