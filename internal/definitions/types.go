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

// Definitions contains user-defined prompts and saved views loaded from a file
type Definitions struct {
	Prompts []PromptDefinition `json:"prompts,omitempty" yaml:"prompts,omitempty"`
	Views   []ViewDefinition   `json:"views,omitempty" yaml:"views,omitempty"`
}

// PromptDefinition defines a user-defined prompt with templates
type PromptDefinition struct {
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Arguments   []ArgumentDef `json:"arguments,omitempty" yaml:"arguments,omitempty"`
	Messages    []MessageDef  `json:"messages" yaml:"messages"`
}

// ArgumentDef defines a prompt argument
type ArgumentDef struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool   `json:"required" yaml:"required"`
}

// MessageDef defines a message in a prompt
type MessageDef struct {
	Role    string     `json:"role" yaml:"role"`
	Content ContentDef `json:"content" yaml:"content"`
}

// ContentDef defines message content (text or an embedded resource)
type ContentDef struct {
	Type     string `json:"type" yaml:"type"`
	Text     string `json:"text,omitempty" yaml:"text,omitempty"`
	MimeType string `json:"mimeType,omitempty" yaml:"mimeType,omitempty"`
	URI      string `json:"uri,omitempty" yaml:"uri,omitempty"`
}

// ViewDefinition defines a saved issue view served under
// resource://views/{name}
type ViewDefinition struct {
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Filter      ViewFilter `json:"filter,omitempty" yaml:"filter,omitempty"`
	Limit       int        `json:"limit,omitempty" yaml:"limit,omitempty"`
}

// ViewFilter narrows the issues a view selects. Empty fields leave the
// view unconstrained in that dimension.
type ViewFilter struct {
	TeamID     string `json:"team_id,omitempty" yaml:"team_id,omitempty"`
	AssigneeID string `json:"assignee_id,omitempty" yaml:"assignee_id,omitempty"`
	StateName  string `json:"state,omitempty" yaml:"state,omitempty"`
	ProjectID  string `json:"project_id,omitempty" yaml:"project_id,omitempty"`
}
