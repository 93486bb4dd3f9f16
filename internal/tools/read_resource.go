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
	"context"
	"strings"

	"linear-mcp/internal/mcp"
)

// ResourceReader is the slice of the resource surface this tool needs
type ResourceReader interface {
	List() []mcp.Resource
	ListTemplates() []mcp.ResourceTemplate
	Read(ctx context.Context, uri string) (mcp.ResourceContent, error)
}

// ReadResourceTool creates a tool that reads MCP resources through the
// tool interface, for clients without native resource support
func ReadResourceTool(resourceProvider ResourceReader) Tool {
	return Tool{
		Definition: mcp.Tool{
			Name: "read_resource",
			Description: `Read MCP resources via tool interface (backward compatibility).

<important>
This tool provides backward compatibility with older MCP clients. Modern MCP clients should use the native resources/read endpoint instead, which is more efficient and follows MCP standards.
</important>

<usecase>
Use read_resource when:
- Your MCP client doesn't support the native resources/read endpoint
- You need resource content as tool output (not native resource format)
- Building tool-only workflows without resource support
- Testing or debugging resource access
</usecase>

<available_resources>
Collections: resource://teams, resource://issues, resource://projects,
resource://users, resource://labels, resource://documents,
resource://cycles, resource://views

Individual records follow templates such as resource://teams/{teamId},
resource://issues/{issueId}, resource://cycles/{cycleId}. Use
read_resource(list=true) for the full catalog with descriptions.
</available_resources>

<usage>
- List all resources and templates: read_resource(list=true)
- Read a specific resource: read_resource(uri="resource://teams")
</usage>`,
			InputSchema: mcp.InputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"uri": map[string]interface{}{
						"type":        "string",
						"description": "The URI of the resource to read. Example: 'resource://teams'",
					},
					"list": map[string]interface{}{
						"type":        "boolean",
						"description": "Optional: if true, list all available resources and templates instead of reading a specific one",
					},
				},
				Required: []string{},
			},
		},
		Handler: func(ctx context.Context, args map[string]interface{}) (mcp.ToolResponse, error) {
			if ValidateBoolParam(args, "list", false) {
				var sb strings.Builder
				sb.WriteString("Available Resources:\n")
				sb.WriteString("====================\n\n")
				for _, resource := range resourceProvider.List() {
					sb.WriteString("URI: " + resource.URI + "\n")
					sb.WriteString("Name: " + resource.Name + "\n")
					sb.WriteString("Description: " + resource.Description + "\n")
					sb.WriteString("MIME Type: " + resource.MimeType + "\n\n")
				}

				sb.WriteString("Resource Templates:\n")
				sb.WriteString("===================\n\n")
				for _, tmpl := range resourceProvider.ListTemplates() {
					sb.WriteString("URI Template: " + tmpl.URITemplate + "\n")
					sb.WriteString("Name: " + tmpl.Name + "\n")
					sb.WriteString("Description: " + tmpl.Description + "\n\n")
				}

				return mcp.NewToolSuccess(sb.String())
			}

			uri, ok := args["uri"].(string)
			if !ok || uri == "" {
				return mcp.NewToolError("Error: 'uri' parameter is required. Provide a resource URI (e.g., 'resource://teams') or use 'list': true to see all available resources.")
			}

			resourceContent, err := resourceProvider.Read(ctx, uri)
			if err != nil {
				return mcp.NewToolError("Error reading resource: " + err.Error())
			}

			return mcp.ToolResponse{
				Content: resourceContent.Contents,
			}, nil
		},
	}
}
