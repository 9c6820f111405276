package planner

import (
	"encoding/json"
	"strings"
)

// ParseResponse extracts JSON from a raw model response. Models wrap JSON
// in prose or markdown fences more often than not, so parsing runs a chain
// of increasingly permissive strategies and the first hit wins:
//
//  1. the whole response is JSON
//  2. a ```json fenced block
//  3. the outermost { ... } or [ ... ] span
func ParseResponse(raw string) Result {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Failure("empty response")
	}

	if data, ok := tryJSON(trimmed); ok {
		return Success(data)
	}
	if block, ok := fencedBlock(trimmed); ok {
		if data, ok := tryJSON(block); ok {
			return Success(data)
		}
	}
	if span, ok := braceSpan(trimmed); ok {
		if data, ok := tryJSON(span); ok {
			return Success(data)
		}
	}

	return Failure("no parseable JSON in response")
}

func tryJSON(s string) (json.RawMessage, bool) {
	var probe any
	if err := json.Unmarshal([]byte(s), &probe); err != nil {
		return nil, false
	}
	switch probe.(type) {
	case map[string]any, []any:
		return json.RawMessage(s), true
	}
	// Bare scalars parse but carry no schedule.
	return nil, false
}

// fencedBlock pulls the contents of the first ```json (or bare ```) fence.
func fencedBlock(s string) (string, bool) {
	start := strings.Index(s, "```json")
	offset := len("```json")
	if start == -1 {
		start = strings.Index(s, "```")
		offset = len("```")
	}
	if start == -1 {
		return "", false
	}
	rest := s[start+offset:]
	end := strings.Index(rest, "```")
	if end == -1 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}

// braceSpan returns the span from the first opening brace or bracket to its
// matching last counterpart.
func braceSpan(s string) (string, bool) {
	objStart := strings.Index(s, "{")
	arrStart := strings.Index(s, "[")

	start, closer := objStart, "}"
	if objStart == -1 || (arrStart != -1 && arrStart < objStart) {
		start, closer = arrStart, "]"
	}
	if start == -1 {
		return "", false
	}
	end := strings.LastIndex(s, closer)
	if end <= start {
		return "", false
	}
	return s[start : end+1], true
}
