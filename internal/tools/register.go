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

import "net/http"

// RegisterAll registers the built-in tools on the registry. enabled
// filters tools by name; a nil enabled registers everything. reader and
// lister back the resource bridge tools and usually share one
// implementation (the resource router provider).
func RegisterAll(registry *Registry, backend Backend, reader ResourceReader, lister DirectoryLister, enabled func(name string) bool) {
	if enabled == nil {
		enabled = func(string) bool { return true }
	}

	builtins := []Tool{
		ListTeamsTool(backend),
		ListIssuesTool(backend),
		GetIssueTool(backend),
		CreateIssueTool(backend),
		UpdateIssueTool(backend),
		SearchIssuesTool(backend),
		CreateCommentTool(backend),
		ListProjectsTool(backend),
		CaptureIssueTool(backend, &http.Client{Timeout: captureTimeout}),
		ReadResourceTool(reader),
		ListResourcesTool(lister),
	}

	for _, tool := range builtins {
		if enabled(tool.Definition.Name) {
			registry.Register(tool.Definition.Name, tool)
		}
	}
}
