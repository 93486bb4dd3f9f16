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

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
)

const (
	ProtocolVersion = "2024-11-05"
	ServerName      = "linear-mcp-server"
	ServerVersion   = "1.0.0-beta1"
)

// ToolProvider is an interface for listing and executing tools
type ToolProvider interface {
	List() []Tool
	Execute(ctx context.Context, name string, args map[string]interface{}) (ToolResponse, error)
}

// ResourceProvider is an interface for listing and reading resources.
// List advertises static URIs, ListTemplates advertises parameterized
// ones, and Read resolves any concrete URI.
type ResourceProvider interface {
	List() []Resource
	ListTemplates() []ResourceTemplate
	Read(ctx context.Context, uri string) (ResourceContent, error)
}

// PromptProvider is an interface for listing and executing prompts
type PromptProvider interface {
	List() []Prompt
	Execute(name string, args map[string]string) (PromptResult, error)
}

// DirectoryProvider enumerates the children of a collection URI. It
// backs the linear/listDirectory extension method used by clients that
// browse the resource hierarchy.
type DirectoryProvider interface {
	ListDirectory(ctx context.Context, uri string) ([]DirectoryEntry, error)
}

// Server handles MCP protocol communication
type Server struct {
	tools       ToolProvider
	resources   ResourceProvider
	prompts     PromptProvider
	directories DirectoryProvider
	debug       bool // Enable debug logging for HTTP mode
}

// NewServer creates a new MCP server
func NewServer(tools ToolProvider) *Server {
	return &Server{
		tools: tools,
	}
}

// SetResourceProvider sets the resource provider for the server
func (s *Server) SetResourceProvider(resources ResourceProvider) {
	s.resources = resources
}

// SetPromptProvider sets the prompt provider for the server
func (s *Server) SetPromptProvider(prompts PromptProvider) {
	s.prompts = prompts
}

// SetDirectoryProvider sets the directory provider for the server
func (s *Server) SetDirectoryProvider(directories DirectoryProvider) {
	s.directories = directories
}

// Run starts the stdio server loop
func (s *Server) Run() error {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, ScannerInitialBufferSize), ScannerMaxBufferSize)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		var req JSONRPCRequest
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			sendError(nil, -32700, "Parse error", err.Error())
			continue
		}

		s.handleRequest(req)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

func (s *Server) handleRequest(req JSONRPCRequest) {
	switch req.Method {
	case "initialize":
		s.handleInitialize(req)
	case "notifications/initialized":
		// Client notification - no response needed
	case "tools/list":
		s.handleToolsList(req)
	case "tools/call":
		s.handleToolCall(req)
	case "resources/list":
		s.handleResourcesList(req)
	case "resources/templates/list":
		s.handleResourceTemplatesList(req)
	case "resources/read":
		s.handleResourceRead(req)
	case "prompts/list":
		s.handlePromptsList(req)
	case "prompts/get":
		s.handlePromptsGet(req)
	case "linear/listDirectory":
		s.handleListDirectory(req)
	default:
		if req.ID != nil {
			sendError(req.ID, -32601, "Method not found", nil)
		}
	}
}

func (s *Server) handleInitialize(req JSONRPCRequest) {
	paramsBytes, err := json.Marshal(req.Params)
	if err != nil {
		sendError(req.ID, -32602, "Invalid params", err.Error())
		return
	}
	var params InitializeParams
	if err := json.Unmarshal(paramsBytes, &params); err != nil {
		sendError(req.ID, -32602, "Invalid params", err.Error())
		return
	}

	// Accept the client's protocol version for compatibility
	protocolVersion := params.ProtocolVersion
	if protocolVersion == "" {
		protocolVersion = ProtocolVersion
	}

	result := InitializeResult{
		ProtocolVersion: protocolVersion,
		Capabilities:    s.capabilities(),
		ServerInfo: Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
	}

	sendResponse(req.ID, result)
}

// capabilities reports what the configured providers support.
func (s *Server) capabilities() map[string]interface{} {
	capabilities := map[string]interface{}{
		"tools": map[string]interface{}{},
	}
	if s.resources != nil {
		capabilities["resources"] = map[string]interface{}{}
	}
	if s.prompts != nil {
		capabilities["prompts"] = map[string]interface{}{}
	}
	return capabilities
}

func (s *Server) handleToolsList(req JSONRPCRequest) {
	result := ToolsListResult{Tools: s.tools.List()}
	sendResponse(req.ID, result)
}

func (s *Server) handleToolCall(req JSONRPCRequest) {
	paramsBytes, err := json.Marshal(req.Params)
	if err != nil {
		sendError(req.ID, -32602, "Invalid params", err.Error())
		return
	}
	var params ToolCallParams
	if err := json.Unmarshal(paramsBytes, &params); err != nil {
		sendError(req.ID, -32602, "Invalid params", err.Error())
		return
	}

	// For stdio mode, use background context (no authentication)
	response, err := s.tools.Execute(context.Background(), params.Name, params.Arguments)
	if err != nil {
		sendError(req.ID, -32603, "Tool execution error", err.Error())
		return
	}

	sendResponse(req.ID, response)
}

func (s *Server) handleResourcesList(req JSONRPCRequest) {
	if s.resources == nil {
		sendError(req.ID, -32601, "Resources not supported", nil)
		return
	}

	result := ResourcesListResult{Resources: s.resources.List()}
	sendResponse(req.ID, result)
}

func (s *Server) handleResourceTemplatesList(req JSONRPCRequest) {
	if s.resources == nil {
		sendError(req.ID, -32601, "Resources not supported", nil)
		return
	}

	result := ResourceTemplatesListResult{ResourceTemplates: s.resources.ListTemplates()}
	sendResponse(req.ID, result)
}

func (s *Server) handleResourceRead(req JSONRPCRequest) {
	if s.resources == nil {
		sendError(req.ID, -32601, "Resources not supported", nil)
		return
	}

	paramsBytes, err := json.Marshal(req.Params)
	if err != nil {
		sendError(req.ID, -32602, "Invalid params", err.Error())
		return
	}
	var params ResourceReadParams
	if err := json.Unmarshal(paramsBytes, &params); err != nil {
		sendError(req.ID, -32602, "Invalid params", err.Error())
		return
	}

	// Use background context for stdio mode (no HTTP request context available)
	content, err := s.resources.Read(context.Background(), params.URI)
	if err != nil {
		sendError(req.ID, -32603, "Resource read error", err.Error())
		return
	}

	sendResponse(req.ID, content)
}

func (s *Server) handlePromptsList(req JSONRPCRequest) {
	if s.prompts == nil {
		sendError(req.ID, -32601, "Prompts not supported", nil)
		return
	}

	result := PromptsListResult{Prompts: s.prompts.List()}
	sendResponse(req.ID, result)
}

func (s *Server) handlePromptsGet(req JSONRPCRequest) {
	if s.prompts == nil {
		sendError(req.ID, -32601, "Prompts not supported", nil)
		return
	}

	paramsBytes, err := json.Marshal(req.Params)
	if err != nil {
		sendError(req.ID, -32602, "Invalid params", err.Error())
		return
	}
	var params PromptGetParams
	if err := json.Unmarshal(paramsBytes, &params); err != nil {
		sendError(req.ID, -32602, "Invalid params", err.Error())
		return
	}

	result, err := s.prompts.Execute(params.Name, params.Arguments)
	if err != nil {
		sendError(req.ID, -32603, "Prompt execution error", err.Error())
		return
	}

	sendResponse(req.ID, result)
}

func (s *Server) handleListDirectory(req JSONRPCRequest) {
	if s.directories == nil {
		sendError(req.ID, -32601, "Directory listing not supported", nil)
		return
	}

	paramsBytes, err := json.Marshal(req.Params)
	if err != nil {
		sendError(req.ID, -32602, "Invalid params", err.Error())
		return
	}
	var params DirectoryListParams
	if err := json.Unmarshal(paramsBytes, &params); err != nil {
		sendError(req.ID, -32602, "Invalid params", err.Error())
		return
	}

	if params.URI == "" {
		sendError(req.ID, -32602, "Invalid params", "uri is required")
		return
	}

	// Use background context for stdio mode (no HTTP request context available)
	entries, err := s.directories.ListDirectory(context.Background(), params.URI)
	if err != nil {
		sendError(req.ID, -32603, "Directory listing error", err.Error())
		return
	}

	result := DirectoryListResult{URI: params.URI, Entries: entries}
	sendResponse(req.ID, result)
}

func sendResponse(id, result interface{}) {
	resp := JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	}

	data, err := json.Marshal(resp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to marshal response: %v\n", err)
		return
	}
	fmt.Println(string(data))
	_ = os.Stdout.Sync()
}

func sendError(id interface{}, code int, message string, data interface{}) {
	resp := JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &RPCError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}

	respData, err := json.Marshal(resp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to marshal error response: %v\n", err)
		return
	}
	fmt.Println(string(respData))
	_ = os.Stdout.Sync()
}
