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
	"testing"
	"time"
)

func TestValue(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{"nil value", nil, ""},
		{"empty string", "", ""},
		{"simple string", "hello", "hello"},
		{"string with tab", "hello\tworld", "hello\\tworld"},
		{"string with newline", "hello\nworld", "hello\\nworld"},
		{"string with carriage return", "hello\rworld", "hello\\rworld"},
		{"integer", 42, "42"},
		{"negative integer", -17, "-17"},
		{"int64", int64(9223372036854775807), "9223372036854775807"},
		{"float64", 3.14159, "3.14159"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"byte slice", []byte("bytes"), "bytes"},
		{"array", []interface{}{"a", "b"}, `["a","b"]`},
		{"map", map[string]interface{}{"key": "value"}, `{"key":"value"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Value(tt.input)
			if result != tt.expected {
				t.Errorf("Value(%v) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValue_Time(t *testing.T) {
	testTime := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	result := Value(testTime)
	expected := "2024-01-15T10:30:00Z"

	if result != expected {
		t.Errorf("Value(time) = %q, want %q", result, expected)
	}
}

func TestValue_Pointers(t *testing.T) {
	s := "hello"
	if got := Value(&s); got != "hello" {
		t.Errorf("Value(*string) = %q, want %q", got, "hello")
	}

	var nilStr *string
	if got := Value(nilStr); got != "" {
		t.Errorf("Value(nil *string) = %q, want empty", got)
	}

	when := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	if got := Value(&when); got != "2024-01-15T10:30:00Z" {
		t.Errorf("Value(*time.Time) = %q", got)
	}

	var nilTime *time.Time
	if got := Value(nilTime); got != "" {
		t.Errorf("Value(nil *time.Time) = %q, want empty", got)
	}
}

func TestTable(t *testing.T) {
	columns := []string{"id", "name", "active"}
	rows := [][]interface{}{
		{1, "Alice", true},
		{2, "Bob", false},
	}

	result := Table(columns, rows)
	expected := "id\tname\tactive\n1\tAlice\ttrue\n2\tBob\tfalse"

	if result != expected {
		t.Errorf("Table() = %q, want %q", result, expected)
	}
}

func TestTable_Empty(t *testing.T) {
	result := Table([]string{}, nil)
	if result != "" {
		t.Errorf("Table(empty) = %q, want empty string", result)
	}
}

func TestRow(t *testing.T) {
	result := Row("a", "b\tc", "d")
	expected := "a\tb\\tc\td"

	if result != expected {
		t.Errorf("Row() = %q, want %q", result, expected)
	}
}
