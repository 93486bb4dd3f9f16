/*-------------------------------------------------------------------------
 *
 * Linear MCP Server
 *
 * Copyright (c) 2026, Linear MCP Server contributors
 * This software is released under The MIT License
 *
 *-------------------------------------------------------------------------
 */

package mcp

// NewToolError creates a standardized error response for tools
func NewToolError(message string) (ToolResponse, error) {
	return ToolResponse{
		Content: []ContentItem{
			{
				Type: "text",
				Text: message,
			},
		},
		IsError: true,
	}, nil
}

// NewToolSuccess creates a standardized success response for tools
func NewToolSuccess(message string) (ToolResponse, error) {
	return ToolResponse{
		Content: []ContentItem{
			{
				Type: "text",
				Text: message,
			},
		},
		IsError: false,
	}, nil
}

// NewResourceError creates a standardized error response for resources
func NewResourceError(uri string, message string) (ResourceContent, error) {
	return ResourceContent{
		URI: uri,
		Contents: []ContentItem{
			{
				Type: "text",
				Text: message,
			},
		},
	}, nil
}

// NewResourceSuccess creates a standardized success response for resources
func NewResourceSuccess(uri string, mimeType string, content string) (ResourceContent, error) {
	return ResourceContent{
		URI:      uri,
		MimeType: mimeType,
		Contents: []ContentItem{
			{
				Type: "text",
				Text: content,
			},
		},
	}, nil
}

// APIKeyMissingError is a standard error message for when no Linear API key is configured
const APIKeyMissingError = "No Linear API key is configured. Set LINEAR_API_KEY or add an api_key entry to the configuration file, then restart the server."

// APIKeyMissingErrorShort is a shorter version for resources
const APIKeyMissingErrorShort = "Error: Linear API key not configured"
