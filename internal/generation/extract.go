package generation

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrExtraction means every parsing strategy was exhausted without finding
// a JSON object or array in the model output.
var ErrExtraction = errors.New("generation: model output contains no parseable JSON document")

// A strategy attempts one way of pulling a JSON document out of raw model
// text. Strategies are total: they report failure instead of panicking or
// returning partial results.
type strategy func(s string) (json.RawMessage, bool)

// Ordered by decreasing confidence: well-formed JSON, then markdown-fenced
// JSON, then an object embedded in prose, then an array embedded in prose.
var strategies = []strategy{
	parseDirect,
	parseFenced,
	parseObjectSpan,
	parseArraySpan,
}

// Extract pulls a structured JSON document (object or array) out of raw
// model output. The first strategy that succeeds wins.
func Extract(raw string) (json.RawMessage, error) {
	for _, try := range strategies {
		if doc, ok := try(raw); ok {
			return doc, nil
		}
	}
	return nil, ErrExtraction
}

func parseDirect(s string) (json.RawMessage, bool) {
	return validDocument(strings.TrimSpace(s))
}

// parseFenced strips a leading/trailing markdown code fence, with or
// without a language tag, and retries a direct parse.
func parseFenced(s string) (json.RawMessage, bool) {
	return validDocument(stripFences(s))
}

func parseObjectSpan(s string) (json.RawMessage, bool) {
	return validSpan(stripFences(s), '{', '}')
}

func parseArraySpan(s string) (json.RawMessage, bool) {
	return validSpan(stripFences(s), '[', ']')
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	// Drop the opening fence line, including any language tag after it.
	if idx := strings.IndexByte(s, '\n'); idx != -1 {
		s = s[idx+1:]
	} else {
		return ""
	}
	if end := strings.LastIndex(s, "```"); end != -1 {
		s = s[:end]
	}
	return strings.TrimSpace(s)
}

func validSpan(s string, open, close byte) (json.RawMessage, bool) {
	start := strings.IndexByte(s, open)
	end := strings.LastIndexByte(s, close)
	if start == -1 || end <= start {
		return nil, false
	}
	return validDocument(s[start : end+1])
}

// validDocument accepts only a JSON object or array. Bare strings and
// numbers are valid JSON but useless downstream, so they fail here and the
// caller falls through to the next strategy.
func validDocument(s string) (json.RawMessage, bool) {
	if s == "" || (s[0] != '{' && s[0] != '[') {
		return nil, false
	}
	if !json.Valid([]byte(s)) {
		return nil, false
	}
	return json.RawMessage(s), true
}
