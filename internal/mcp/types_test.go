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
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONRPCRequestMarshal(t *testing.T) {
	req := JSONRPCRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "test/method",
		Params:  map[string]string{"key": "value"},
	}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var decoded JSONRPCRequest
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if decoded.JSONRPC != req.JSONRPC {
		t.Errorf("expected jsonrpc %q, got %q", req.JSONRPC, decoded.JSONRPC)
	}
	if decoded.Method != req.Method {
		t.Errorf("expected method %q, got %q", req.Method, decoded.Method)
	}
}

func TestJSONRPCRequestWithNilParams(t *testing.T) {
	req := JSONRPCRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "test/method",
	}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	// Should not include "params" in JSON when nil
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("failed to unmarshal to map: %v", err)
	}

	if _, exists := raw["params"]; exists {
		t.Error("params should be omitted when nil")
	}
}

func TestJSONRPCResponseMarshal(t *testing.T) {
	resp := JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      1,
		Result:  map[string]string{"status": "ok"},
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var decoded JSONRPCResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if decoded.JSONRPC != resp.JSONRPC {
		t.Errorf("expected jsonrpc %q, got %q", resp.JSONRPC, decoded.JSONRPC)
	}
}

func TestJSONRPCResponseWithError(t *testing.T) {
	resp := JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      1,
		Error: &RPCError{
			Code:    -32600,
			Message: "Invalid Request",
			Data:    "test data",
		},
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var decoded JSONRPCResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if decoded.Error == nil {
		t.Fatal("expected error to be non-nil")
	}
	if decoded.Error.Code != -32600 {
		t.Errorf("expected code -32600, got %d", decoded.Error.Code)
	}
	if decoded.Error.Message != "Invalid Request" {
		t.Errorf("expected message 'Invalid Request', got %q", decoded.Error.Message)
	}
}

func TestInitializeParamsMarshal(t *testing.T) {
	params := InitializeParams{
		ProtocolVersion: "2024-11-05",
		Capabilities:    map[string]interface{}{"tools": true},
		ClientInfo: ClientInfo{
			Name:    "test-client",
			Version: "1.0.0",
		},
	}

	data, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var decoded InitializeParams
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if decoded.ProtocolVersion != params.ProtocolVersion {
		t.Errorf("expected protocol version %q, got %q",
			params.ProtocolVersion, decoded.ProtocolVersion)
	}
	if decoded.ClientInfo.Name != params.ClientInfo.Name {
		t.Errorf("expected client name %q, got %q",
			params.ClientInfo.Name, decoded.ClientInfo.Name)
	}
}

func TestToolMarshal(t *testing.T) {
	tool := Tool{
		Name:        "list_issues",
		Description: "List issues with optional filters",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"team_id": map[string]interface{}{
					"type":        "string",
					"description": "Filter issues by team",
				},
			},
			Required: []string{"team_id"},
		},
	}

	data, err := json.Marshal(tool)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var decoded Tool
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if decoded.Name != tool.Name {
		t.Errorf("expected name %q, got %q", tool.Name, decoded.Name)
	}
	if decoded.Description != tool.Description {
		t.Errorf("expected description %q, got %q", tool.Description, decoded.Description)
	}
	if len(decoded.InputSchema.Required) != 1 || decoded.InputSchema.Required[0] != "team_id" {
		t.Errorf("expected required [team_id], got %v", decoded.InputSchema.Required)
	}
}

func TestToolResponseMarshal(t *testing.T) {
	resp := ToolResponse{
		Content: []ContentItem{
			{Type: "text", Text: "result"},
		},
		IsError: false,
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var decoded ToolResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if len(decoded.Content) != 1 {
		t.Fatalf("expected 1 content item, got %d", len(decoded.Content))
	}
	if decoded.Content[0].Text != "result" {
		t.Errorf("expected text 'result', got %q", decoded.Content[0].Text)
	}
	if decoded.IsError {
		t.Error("expected IsError to be false")
	}
}

func TestResourceMarshal(t *testing.T) {
	resource := Resource{
		URI:         "resource://teams",
		Name:        "teams",
		Description: "All teams in the workspace",
		MimeType:    "application/json",
	}

	data, err := json.Marshal(resource)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var decoded Resource
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if decoded.URI != resource.URI {
		t.Errorf("expected URI %q, got %q", resource.URI, decoded.URI)
	}
	if decoded.MimeType != resource.MimeType {
		t.Errorf("expected mimeType %q, got %q", resource.MimeType, decoded.MimeType)
	}
}

func TestResourceTemplateMarshal(t *testing.T) {
	template := ResourceTemplate{
		URITemplate: "resource://teams/{teamId}",
		Name:        "team",
		Description: "A single team by identifier",
		MimeType:    "application/json",
	}

	data, err := json.Marshal(template)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	// The wire field is camelCase per the MCP schema
	if !strings.Contains(string(data), `"uriTemplate"`) {
		t.Errorf("expected uriTemplate field in JSON, got %s", data)
	}

	var decoded ResourceTemplate
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if decoded.URITemplate != template.URITemplate {
		t.Errorf("expected uriTemplate %q, got %q", template.URITemplate, decoded.URITemplate)
	}
}

func TestPromptMarshal(t *testing.T) {
	prompt := Prompt{
		Name:        "triage_issue",
		Description: "Triage an issue",
		Arguments: []PromptArgument{
			{Name: "issue_id", Description: "The issue to triage", Required: true},
			{Name: "focus", Description: "Optional triage focus", Required: false},
		},
	}

	data, err := json.Marshal(prompt)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var decoded Prompt
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if decoded.Name != prompt.Name {
		t.Errorf("expected name %q, got %q", prompt.Name, decoded.Name)
	}
	if len(decoded.Arguments) != 2 {
		t.Fatalf("expected 2 arguments, got %d", len(decoded.Arguments))
	}
	if !decoded.Arguments[0].Required {
		t.Error("expected first argument to be required")
	}
}

func TestPromptResultMarshal(t *testing.T) {
	result := PromptResult{
		Description: "Test prompt result",
		Messages: []PromptMessage{
			{
				Role:    "user",
				Content: ContentItem{Type: "text", Text: "Hello"},
			},
			{
				Role:    "assistant",
				Content: ContentItem{Type: "text", Text: "Hi there!"},
			},
		},
	}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var decoded PromptResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if len(decoded.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(decoded.Messages))
	}
	if decoded.Messages[0].Role != "user" {
		t.Errorf("expected first message role 'user', got %q", decoded.Messages[0].Role)
	}
	if decoded.Messages[1].Role != "assistant" {
		t.Errorf("expected second message role 'assistant', got %q", decoded.Messages[1].Role)
	}
}

func TestResourceContentMarshal(t *testing.T) {
	content := ResourceContent{
		URI:      "resource://issues/abc123",
		MimeType: "application/json",
		Contents: []ContentItem{
			{Type: "text", Text: `{"data": "test"}`},
		},
	}

	data, err := json.Marshal(content)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var decoded ResourceContent
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if decoded.URI != content.URI {
		t.Errorf("expected URI %q, got %q", content.URI, decoded.URI)
	}
	if len(decoded.Contents) != 1 {
		t.Fatalf("expected 1 content item, got %d", len(decoded.Contents))
	}
}

func TestToolCallParamsMarshal(t *testing.T) {
	params := ToolCallParams{
		Name: "search_issues",
		Arguments: map[string]interface{}{
			"query": "login timeout",
			"limit": float64(10),
		},
	}

	data, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var decoded ToolCallParams
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if decoded.Name != params.Name {
		t.Errorf("expected name %q, got %q", params.Name, decoded.Name)
	}
	if decoded.Arguments["query"] != "login timeout" {
		t.Errorf("expected query argument, got %v", decoded.Arguments)
	}
}
