/*-------------------------------------------------------------------------
 *
 * Linear MCP Server
 *
 * Copyright (c) 2026, Linear MCP Server contributors
 * This software is released under The MIT License
 *
 *-------------------------------------------------------------------------
 */

package format

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Value converts a value to a TSV-safe string.
// Handles nils, special characters, and complex types.
func Value(v interface{}) string {
	if v == nil {
		return ""
	}

	var s string
	switch val := v.(type) {
	case string:
		s = val
	case *string:
		if val == nil {
			return ""
		}
		s = *val
	case []byte:
		s = string(val)
	case time.Time:
		s = val.Format(time.RFC3339)
	case *time.Time:
		if val == nil {
			return ""
		}
		s = val.Format(time.RFC3339)
	case bool:
		if val {
			s = "true"
		} else {
			s = "false"
		}
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		s = fmt.Sprintf("%d", val)
	case float32, float64:
		s = fmt.Sprintf("%v", val)
	case []interface{}, map[string]interface{}:
		// Complex values serialize to JSON so rows stay one line
		jsonBytes, err := json.Marshal(val)
		if err != nil {
			s = fmt.Sprintf("%v", val)
		} else {
			s = string(jsonBytes)
		}
	default:
		s = fmt.Sprintf("%v", val)
	}

	// Escape characters that would break TSV parsing
	s = strings.ReplaceAll(s, "\t", "\\t")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")

	return s
}

// Table converts rows to TSV: a header row followed by data rows.
func Table(columns []string, rows [][]interface{}) string {
	if len(columns) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(columns, "\t"))

	for _, row := range rows {
		sb.WriteString("\n")
		values := make([]string, len(row))
		for i, val := range row {
			values[i] = Value(val)
		}
		sb.WriteString(strings.Join(values, "\t"))
	}

	return sb.String()
}

// Row creates a single TSV row from string values.
func Row(values ...string) string {
	escaped := make([]string, len(values))
	for i, v := range values {
		escaped[i] = Value(v)
	}
	return strings.Join(escaped, "\t")
}
