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
	"fmt"
	"strings"

	"linear-mcp/internal/definitions"
	"linear-mcp/internal/mcp"
)

// RegisterStatic registers a user-defined prompt from a definition
func (r *Registry) RegisterStatic(def definitions.PromptDefinition) error {
	mcpArgs := make([]mcp.PromptArgument, len(def.Arguments))
	for i, arg := range def.Arguments {
		mcpArgs[i] = mcp.PromptArgument{
			Name:        arg.Name,
			Description: arg.Description,
			Required:    arg.Required,
		}
	}

	handler := func(args map[string]string) mcp.PromptResult {
		messages := make([]mcp.PromptMessage, len(def.Messages))
		for i, msgDef := range def.Messages {
			content := mcp.ContentItem{
				Type: msgDef.Content.Type,
			}

			switch msgDef.Content.Type {
			case "text":
				content.Text = interpolateTemplate(msgDef.Content.Text, args)
			case "resource":
				// Resource content carries its target URI in the text
				// slot; placeholders in the URI interpolate too.
				content.Text = interpolateTemplate(msgDef.Content.URI, args)
			default:
				content.Text = msgDef.Content.Text
			}

			messages[i] = mcp.PromptMessage{
				Role:    msgDef.Role,
				Content: content,
			}
		}

		return mcp.PromptResult{
			Description: def.Description,
			Messages:    messages,
		}
	}

	prompt := Prompt{
		Definition: mcp.Prompt{
			Name:        def.Name,
			Description: def.Description,
			Arguments:   mcpArgs,
		},
		Handler: handler,
	}

	r.Register(def.Name, prompt)
	return nil
}

// interpolateTemplate replaces {{arg_name}} placeholders with argument values
func interpolateTemplate(template string, args map[string]string) string {
	result := template
	for key, value := range args {
		placeholder := fmt.Sprintf("{{%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}
