/*-------------------------------------------------------------------------
 *
 * Linear MCP Server
 *
 * Copyright (c) 2026, Linear MCP Server contributors
 * This software is released under The MIT License
 *
 *-------------------------------------------------------------------------
 */

package resources

import (
	"fmt"
	"net/url"
	"strings"
)

// URITemplate is a parsed resource address pattern such as
// "resource://teams/{teamId}/cycles". A template consists of a scheme
// followed by one or more slash-separated segments, each either a
// literal or a {variable} placeholder.
type URITemplate struct {
	raw      string
	scheme   string
	segments []templateSegment
}

type templateSegment struct {
	value string
	isVar bool
}

// ParseURITemplate parses and validates a URI template string.
func ParseURITemplate(raw string) (*URITemplate, error) {
	idx := strings.Index(raw, "://")
	if idx <= 0 {
		return nil, fmt.Errorf("invalid URI template %q: missing scheme", raw)
	}

	scheme := raw[:idx]
	rest := raw[idx+3:]
	if rest == "" {
		return nil, fmt.Errorf("invalid URI template %q: missing path segments", raw)
	}

	parts := strings.Split(rest, "/")
	segments := make([]templateSegment, 0, len(parts))
	seen := make(map[string]bool)

	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("invalid URI template %q: empty segment", raw)
		}

		if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
			name := part[1 : len(part)-1]
			if name == "" {
				return nil, fmt.Errorf("invalid URI template %q: empty variable name", raw)
			}
			if !isValidVariableName(name) {
				return nil, fmt.Errorf("invalid URI template %q: bad variable name %q", raw, name)
			}
			if seen[name] {
				return nil, fmt.Errorf("invalid URI template %q: duplicate variable %q", raw, name)
			}
			seen[name] = true
			segments = append(segments, templateSegment{value: name, isVar: true})
			continue
		}

		// Braces are only valid as a full-segment variable wrapper
		if strings.ContainsAny(part, "{}") {
			return nil, fmt.Errorf("invalid URI template %q: malformed segment %q", raw, part)
		}

		segments = append(segments, templateSegment{value: part})
	}

	return &URITemplate{
		raw:      raw,
		scheme:   scheme,
		segments: segments,
	}, nil
}

// MustParseURITemplate is like ParseURITemplate but panics on error.
// It is intended for the package-level template constants.
func MustParseURITemplate(raw string) *URITemplate {
	t, err := ParseURITemplate(raw)
	if err != nil {
		panic(err)
	}
	return t
}

func isValidVariableName(name string) bool {
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}

// String returns the original template text.
func (t *URITemplate) String() string {
	return t.raw
}

// Scheme returns the template's scheme.
func (t *URITemplate) Scheme() string {
	return t.scheme
}

// IsStatic reports whether the template contains no variables.
func (t *URITemplate) IsStatic() bool {
	for _, seg := range t.segments {
		if seg.isVar {
			return false
		}
	}
	return true
}

// Variables returns the variable names in path order.
func (t *URITemplate) Variables() []string {
	var names []string
	for _, seg := range t.segments {
		if seg.isVar {
			names = append(names, seg.value)
		}
	}
	return names
}

// Match tests a concrete URI against the template. The scheme and the
// segment count must match exactly. Literal segments compare against the
// percent-decoded URI segment, and each variable captures exactly one
// non-empty decoded segment. On success the returned map holds a value
// for every variable in the template.
func (t *URITemplate) Match(uri string) (map[string]string, bool) {
	idx := strings.Index(uri, "://")
	if idx <= 0 {
		return nil, false
	}
	if uri[:idx] != t.scheme {
		return nil, false
	}

	rest := uri[idx+3:]
	parts := strings.Split(rest, "/")
	if len(parts) != len(t.segments) {
		return nil, false
	}

	vars := make(map[string]string)
	for i, part := range parts {
		decoded, err := url.PathUnescape(part)
		if err != nil {
			return nil, false
		}
		// An empty segment can never satisfy a template segment,
		// so trailing or doubled slashes fail the match.
		if decoded == "" {
			return nil, false
		}

		seg := t.segments[i]
		if seg.isVar {
			vars[seg.value] = decoded
			continue
		}
		if decoded != seg.value {
			return nil, false
		}
	}

	return vars, true
}

// Expand substitutes variable values into the template and returns the
// concrete URI. Values are percent-escaped. Every template variable must
// be present in vars.
func (t *URITemplate) Expand(vars map[string]string) (string, error) {
	var sb strings.Builder
	sb.WriteString(t.scheme)
	sb.WriteString("://")

	for i, seg := range t.segments {
		if i > 0 {
			sb.WriteString("/")
		}
		if !seg.isVar {
			sb.WriteString(seg.value)
			continue
		}

		value, ok := vars[seg.value]
		if !ok || value == "" {
			return "", fmt.Errorf("template %q: missing value for variable %q", t.raw, seg.value)
		}
		sb.WriteString(url.PathEscape(value))
	}

	return sb.String(), nil
}

// Overlaps reports whether two templates could both match some URI.
// That holds when the schemes and segment counts agree and every
// position is compatible: equal literals, or a variable on either side.
func (t *URITemplate) Overlaps(other *URITemplate) bool {
	if t.scheme != other.scheme {
		return false
	}
	if len(t.segments) != len(other.segments) {
		return false
	}

	for i, seg := range t.segments {
		otherSeg := other.segments[i]
		if seg.isVar || otherSeg.isVar {
			continue
		}
		if seg.value != otherSeg.value {
			return false
		}
	}

	return true
}
