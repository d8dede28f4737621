package common

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StripFences removes one leading markdown fence line (three backticks,
// optionally followed by a language tag) and one trailing fence line.
// Replies without fences pass through untouched.
func StripFences(reply string) string {
	text := strings.TrimSpace(reply)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = text[3:]
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}

	// Skip a language tag like "json" on the fence line.
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		first := strings.TrimSpace(text[:nl])
		if first != "" && !strings.ContainsAny(first, "{}[]") {
			text = text[nl+1:]
		}
	} else if strings.HasPrefix(text, "json") {
		text = text[4:]
	}

	return strings.TrimSpace(text)
}

// ParseJSON strips markdown fencing the model sometimes wraps replies in
// and unmarshals the remainder into T.
func ParseJSON[T any](reply string) (T, error) {
	var result T
	cleaned := StripFences(reply)
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return result, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return result, nil
}
