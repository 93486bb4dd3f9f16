/*-------------------------------------------------------------------------
 *
 * Linear MCP Server
 *
 * Copyright (c) 2026, Linear MCP Server contributors
 * This software is released under The MIT License
 *
 *-------------------------------------------------------------------------
 */

package browse

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os/exec"
	"sync"

	"linear-mcp/internal/mcp"
)

// ClientVersion is the browse client version reported during the handshake
const ClientVersion = "1.0.0-beta1"

// MCPClient provides a unified interface for communicating with MCP servers
// via both stdio and HTTP modes
type MCPClient interface {
	// Initialize establishes connection and performs handshake
	Initialize(ctx context.Context) error

	// ServerInfo returns the name and version reported by the server
	ServerInfo() (name, version string)

	// ListTools returns available tools from the server
	ListTools(ctx context.Context) ([]mcp.Tool, error)

	// ListResources returns available resources from the server
	ListResources(ctx context.Context) ([]mcp.Resource, error)

	// ListResourceTemplates returns parameterized resource addresses
	ListResourceTemplates(ctx context.Context) ([]mcp.ResourceTemplate, error)

	// ListPrompts returns available prompts from the server
	ListPrompts(ctx context.Context) ([]mcp.Prompt, error)

	// GetPrompt renders a prompt with the given arguments
	GetPrompt(ctx context.Context, name string, args map[string]string) (mcp.PromptResult, error)

	// CallTool executes a tool with the given arguments
	CallTool(ctx context.Context, name string, args map[string]interface{}) (mcp.ToolResponse, error)

	// ReadResource reads a resource by URI
	ReadResource(ctx context.Context, uri string) (mcp.ResourceContent, error)

	// ListDirectory lists the children of a collection resource via the
	// linear/listDirectory extension method
	ListDirectory(ctx context.Context, uri string) (mcp.DirectoryListResult, error)

	// Close cleans up resources
	Close() error
}

// serverInfo caches the handshake result for both client flavors
type serverInfo struct {
	name    string
	version string
}

// stdioClient implements MCPClient for stdio communication
type stdioClient struct {
	cmd       *exec.Cmd
	stdin     io.WriteCloser
	stdout    io.ReadCloser
	scanner   *bufio.Scanner
	info      serverInfo
	requestID int
	mu        sync.Mutex
}

// NewStdioClient spawns the server binary and communicates over its stdio.
// Extra arguments are passed through to the server command line.
func NewStdioClient(serverPath string, args ...string) (MCPClient, error) {
	cmd := exec.Command(serverPath, args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stdin pipe: %w", err)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start MCP server: %w", err)
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max buffer

	return &stdioClient{
		cmd:       cmd,
		stdin:     stdin,
		stdout:    stdout,
		scanner:   scanner,
		requestID: 0,
	}, nil
}

func (c *stdioClient) Initialize(ctx context.Context) error {
	params := mcp.InitializeParams{
		ProtocolVersion: mcp.ProtocolVersion,
		Capabilities:    map[string]interface{}{},
		ClientInfo: mcp.ClientInfo{
			Name:    "linear-mcp-browse",
			Version: ClientVersion,
		},
	}

	var result mcp.InitializeResult
	if err := c.sendRequest(ctx, "initialize", params, &result); err != nil {
		return fmt.Errorf("initialize failed: %w", err)
	}
	c.info = serverInfo{name: result.ServerInfo.Name, version: result.ServerInfo.Version}

	// Send initialized notification
	notification := mcp.JSONRPCRequest{
		JSONRPC: "2.0",
		Method:  "notifications/initialized",
		Params:  map[string]interface{}{},
	}

	data, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if _, err := c.stdin.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}

func (c *stdioClient) ServerInfo() (string, string) {
	return c.info.name, c.info.version
}

func (c *stdioClient) ListTools(ctx context.Context) ([]mcp.Tool, error) {
	var result mcp.ToolsListResult
	if err := c.sendRequest(ctx, "tools/list", nil, &result); err != nil {
		return nil, err
	}
	return result.Tools, nil
}

func (c *stdioClient) ListResources(ctx context.Context) ([]mcp.Resource, error) {
	var result mcp.ResourcesListResult
	if err := c.sendRequest(ctx, "resources/list", nil, &result); err != nil {
		return nil, err
	}
	return result.Resources, nil
}

func (c *stdioClient) ListResourceTemplates(ctx context.Context) ([]mcp.ResourceTemplate, error) {
	var result mcp.ResourceTemplatesListResult
	if err := c.sendRequest(ctx, "resources/templates/list", nil, &result); err != nil {
		return nil, err
	}
	return result.ResourceTemplates, nil
}

func (c *stdioClient) ListPrompts(ctx context.Context) ([]mcp.Prompt, error) {
	var result mcp.PromptsListResult
	if err := c.sendRequest(ctx, "prompts/list", nil, &result); err != nil {
		return nil, err
	}
	return result.Prompts, nil
}

func (c *stdioClient) GetPrompt(ctx context.Context, name string, args map[string]string) (mcp.PromptResult, error) {
	params := mcp.PromptGetParams{Name: name, Arguments: args}

	var result mcp.PromptResult
	if err := c.sendRequest(ctx, "prompts/get", params, &result); err != nil {
		return mcp.PromptResult{}, err
	}
	return result, nil
}

func (c *stdioClient) CallTool(ctx context.Context, name string, args map[string]interface{}) (mcp.ToolResponse, error) {
	params := mcp.ToolCallParams{
		Name:      name,
		Arguments: args,
	}

	var result mcp.ToolResponse
	if err := c.sendRequest(ctx, "tools/call", params, &result); err != nil {
		return mcp.ToolResponse{}, err
	}
	return result, nil
}

func (c *stdioClient) ReadResource(ctx context.Context, uri string) (mcp.ResourceContent, error) {
	params := mcp.ResourceReadParams{
		URI: uri,
	}

	var result mcp.ResourceContent
	if err := c.sendRequest(ctx, "resources/read", params, &result); err != nil {
		return mcp.ResourceContent{}, err
	}
	return result, nil
}

func (c *stdioClient) ListDirectory(ctx context.Context, uri string) (mcp.DirectoryListResult, error) {
	params := mcp.DirectoryListParams{URI: uri}

	var result mcp.DirectoryListResult
	if err := c.sendRequest(ctx, "linear/listDirectory", params, &result); err != nil {
		return mcp.DirectoryListResult{}, err
	}
	return result, nil
}

func (c *stdioClient) Close() error {
	if c.stdin != nil {
		c.stdin.Close()
	}
	if c.cmd != nil && c.cmd.Process != nil {
		_ = c.cmd.Process.Kill() //nolint:errcheck // Best effort cleanup, errors not actionable
		_ = c.cmd.Wait()         //nolint:errcheck // Best effort cleanup, errors not actionable
	}
	return nil
}

func (c *stdioClient) sendRequest(ctx context.Context, method string, params interface{}, result interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requestID++
	req := mcp.JSONRPCRequest{
		JSONRPC: "2.0",
		ID:      c.requestID,
		Method:  method,
		Params:  params,
	}

	reqData, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	// Send request
	if _, err := c.stdin.Write(append(reqData, '\n')); err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	// Read response
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}
		return fmt.Errorf("unexpected EOF")
	}

	var resp mcp.JSONRPCResponse
	if err := json.Unmarshal(c.scanner.Bytes(), &resp); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if resp.Error != nil {
		return fmt.Errorf("RPC error %d: %s", resp.Error.Code, resp.Error.Message)
	}

	// Marshal and unmarshal to convert to target type
	resultData, err := json.Marshal(resp.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := json.Unmarshal(resultData, result); err != nil {
		return fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return nil
}

// httpClient implements MCPClient for HTTP communication
type httpClient struct {
	url       string
	token     string
	client    *http.Client
	info      serverInfo
	requestID int
	mu        sync.Mutex
}

// NewHTTPClient creates a new HTTP-based MCP client
func NewHTTPClient(url, token string) MCPClient {
	return &httpClient{
		url:       url,
		token:     token,
		client:    &http.Client{},
		requestID: 0,
	}
}

func (c *httpClient) Initialize(ctx context.Context) error {
	params := mcp.InitializeParams{
		ProtocolVersion: mcp.ProtocolVersion,
		Capabilities:    map[string]interface{}{},
		ClientInfo: mcp.ClientInfo{
			Name:    "linear-mcp-browse",
			Version: ClientVersion,
		},
	}

	var result mcp.InitializeResult
	if err := c.sendRequest(ctx, "initialize", params, &result); err != nil {
		return fmt.Errorf("initialize failed: %w", err)
	}
	c.info = serverInfo{name: result.ServerInfo.Name, version: result.ServerInfo.Version}

	return nil
}

func (c *httpClient) ServerInfo() (string, string) {
	return c.info.name, c.info.version
}

func (c *httpClient) ListTools(ctx context.Context) ([]mcp.Tool, error) {
	var result mcp.ToolsListResult
	if err := c.sendRequest(ctx, "tools/list", nil, &result); err != nil {
		return nil, err
	}
	return result.Tools, nil
}

func (c *httpClient) ListResources(ctx context.Context) ([]mcp.Resource, error) {
	var result mcp.ResourcesListResult
	if err := c.sendRequest(ctx, "resources/list", nil, &result); err != nil {
		return nil, err
	}
	return result.Resources, nil
}

func (c *httpClient) ListResourceTemplates(ctx context.Context) ([]mcp.ResourceTemplate, error) {
	var result mcp.ResourceTemplatesListResult
	if err := c.sendRequest(ctx, "resources/templates/list", nil, &result); err != nil {
		return nil, err
	}
	return result.ResourceTemplates, nil
}

func (c *httpClient) ListPrompts(ctx context.Context) ([]mcp.Prompt, error) {
	var result mcp.PromptsListResult
	if err := c.sendRequest(ctx, "prompts/list", nil, &result); err != nil {
		return nil, err
	}
	return result.Prompts, nil
}

func (c *httpClient) GetPrompt(ctx context.Context, name string, args map[string]string) (mcp.PromptResult, error) {
	params := mcp.PromptGetParams{Name: name, Arguments: args}

	var result mcp.PromptResult
	if err := c.sendRequest(ctx, "prompts/get", params, &result); err != nil {
		return mcp.PromptResult{}, err
	}
	return result, nil
}

func (c *httpClient) CallTool(ctx context.Context, name string, args map[string]interface{}) (mcp.ToolResponse, error) {
	params := mcp.ToolCallParams{
		Name:      name,
		Arguments: args,
	}

	var result mcp.ToolResponse
	if err := c.sendRequest(ctx, "tools/call", params, &result); err != nil {
		return mcp.ToolResponse{}, err
	}
	return result, nil
}

func (c *httpClient) ReadResource(ctx context.Context, uri string) (mcp.ResourceContent, error) {
	params := mcp.ResourceReadParams{
		URI: uri,
	}

	var result mcp.ResourceContent
	if err := c.sendRequest(ctx, "resources/read", params, &result); err != nil {
		return mcp.ResourceContent{}, err
	}
	return result, nil
}

func (c *httpClient) ListDirectory(ctx context.Context, uri string) (mcp.DirectoryListResult, error) {
	params := mcp.DirectoryListParams{URI: uri}

	var result mcp.DirectoryListResult
	if err := c.sendRequest(ctx, "linear/listDirectory", params, &result); err != nil {
		return mcp.DirectoryListResult{}, err
	}
	return result, nil
}

func (c *httpClient) Close() error {
	return nil
}

func (c *httpClient) sendRequest(ctx context.Context, method string, params interface{}, result interface{}) error {
	c.mu.Lock()
	c.requestID++
	id := c.requestID
	c.mu.Unlock()

	req := mcp.JSONRPCRequest{
		JSONRPC: "2.0",
		ID:      id,
		Method:  method,
		Params:  params,
	}

	reqData, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.url, bytes.NewBuffer(reqData))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("HTTP error %d (failed to read body: %w)", resp.StatusCode, err)
		}
		return fmt.Errorf("HTTP error %d: %s", resp.StatusCode, string(body))
	}

	var jsonResp mcp.JSONRPCResponse
	if err := json.NewDecoder(resp.Body).Decode(&jsonResp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if jsonResp.Error != nil {
		return fmt.Errorf("RPC error %d: %s", jsonResp.Error.Code, jsonResp.Error.Message)
	}

	// Marshal and unmarshal to convert to target type
	resultData, err := json.Marshal(jsonResp.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := json.Unmarshal(resultData, result); err != nil {
		return fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return nil
}
