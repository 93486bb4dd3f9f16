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
	"fmt"
	"strings"

	"linear-mcp/internal/mcp"
)

// DirectoryLister enumerates the children of a collection resource
type DirectoryLister interface {
	ListDirectory(ctx context.Context, uri string) ([]mcp.DirectoryEntry, error)
}

// ListResourcesTool creates a tool that enumerates the children of a
// collection resource, for clients without the linear/listDirectory
// extension
func ListResourcesTool(lister DirectoryLister) Tool {
	return Tool{
		Definition: mcp.Tool{
			Name: "list_resources",
			Description: `List the child resources of a collection resource, one URI per child.

<usecase>
Use list_resources to navigate the resource tree:
- Enumerate teams before drilling into one
- List the cycles of every team in a single call
- Walk a collection without fetching each child's full content
</usecase>

<examples>
✓ list_resources(uri="resource://teams") → One entry per team with its URI
✓ list_resources(uri="resource://cycles") → Every cycle of every team
✓ list_resources(uri="resource://teams/abc123/cycles") → Cycles of one team
</examples>

<important>
- Each entry's URI can be passed straight to read_resource
- Collections whose children have no URI of their own (labels, comments) do not support listing
- Reading the same URI with read_resource returns full content instead of the entry list
</important>`,
			InputSchema: mcp.InputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"uri": map[string]interface{}{
						"type":        "string",
						"description": "URI of the collection to enumerate. Example: 'resource://teams'",
					},
				},
				Required: []string{"uri"},
			},
		},
		Handler: func(ctx context.Context, args map[string]interface{}) (mcp.ToolResponse, error) {
			uri, errResp := ValidateStringParam(args, "uri")
			if errResp != nil {
				return *errResp, nil
			}

			entries, err := lister.ListDirectory(ctx, uri)
			if err != nil {
				return mcp.NewToolError("Error listing resources: " + err.Error())
			}

			if len(entries) == 0 {
				return mcp.NewToolSuccess(fmt.Sprintf("No entries under %s", uri))
			}

			var sb strings.Builder
			sb.WriteString(fmt.Sprintf("%d entries under %s:\n\n", len(entries), uri))
			for _, entry := range entries {
				sb.WriteString(entry.URI)
				if entry.Name != "" {
					sb.WriteString("\t" + entry.Name)
				}
				if entry.Description != "" {
					sb.WriteString("\t" + entry.Description)
				}
				sb.WriteString("\n")
			}

			return mcp.NewToolSuccess(sb.String())
		},
	}
}
