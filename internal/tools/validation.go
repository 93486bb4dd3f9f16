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
	"fmt"

	"linear-mcp/internal/mcp"
)

// ValidateStringParam validates and extracts a required string parameter from args
// Returns the string value and a ToolResponse error if validation fails
func ValidateStringParam(args map[string]interface{}, name string) (string, *mcp.ToolResponse) {
	value, ok := args[name].(string)
	if !ok || value == "" {
		resp, err := mcp.NewToolError(fmt.Sprintf("Missing or invalid '%s' argument", name))
		if err != nil {
			return "", &resp
		}
		return "", &resp
	}
	return value, nil
}

// ValidateOptionalStringParam validates and extracts an optional string parameter
// Returns the string value (or defaultValue if not present)
func ValidateOptionalStringParam(args map[string]interface{}, name string, defaultValue string) string {
	value, ok := args[name].(string)
	if !ok {
		return defaultValue
	}
	return value
}

// ValidateOptionalNumberParam validates and extracts an optional number parameter
// Returns the float64 value (or defaultValue if not present)
func ValidateOptionalNumberParam(args map[string]interface{}, name string, defaultValue float64) float64 {
	value, ok := args[name].(float64)
	if !ok {
		return defaultValue
	}
	return value
}

// ValidateBoolParam validates and extracts an optional boolean parameter
// Returns the bool value (or defaultValue if not present)
func ValidateBoolParam(args map[string]interface{}, name string, defaultValue bool) bool {
	value, ok := args[name].(bool)
	if !ok {
		return defaultValue
	}
	return value
}

// ValidateStringSliceParam extracts an optional string array parameter.
// JSON arrays arrive as []interface{}; non-string elements are skipped.
func ValidateStringSliceParam(args map[string]interface{}, name string) []string {
	raw, ok := args[name].([]interface{})
	if !ok {
		return nil
	}
	values := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok && s != "" {
			values = append(values, s)
		}
	}
	return values
}

// ValidatePositiveNumber checks if a number is greater than zero
// Returns a ToolResponse error if validation fails, nil otherwise
func ValidatePositiveNumber(value float64, name string) *mcp.ToolResponse {
	if value <= 0 {
		resp, err := mcp.NewToolError(fmt.Sprintf("Error: %s must be greater than 0", name))
		if err != nil {
			return &resp
		}
		return &resp
	}
	return nil
}
