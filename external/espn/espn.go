package espn

import (
	"strconv"
	"strings"
)

// Tolerant accessors over the provider's loosely-typed JSON. Missing keys
// and unexpected shapes yield zero values; a single odd field never fails
// an entire payload.

func getString(src map[string]any, key string) string {
	if src == nil {
		return ""
	}
	raw, ok := src[key]
	if !ok || raw == nil {
		return ""
	}
	value, ok := raw.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

func getInt(src map[string]any, key string) int {
	if src == nil {
		return 0
	}
	switch typed := src[key].(type) {
	case float64:
		return int(typed)
	case float32:
		return int(typed)
	case int:
		return typed
	case int64:
		return int(typed)
	case string:
		// Scores arrive as strings on the scoreboard endpoint.
		value, err := strconv.Atoi(strings.TrimSpace(typed))
		if err != nil {
			return 0
		}
		return value
	default:
		return 0
	}
}

func getBool(src map[string]any, key string) bool {
	if src == nil {
		return false
	}
	value, ok := src[key].(bool)
	return ok && value
}

func getMap(src map[string]any, key string) map[string]any {
	if src == nil {
		return nil
	}
	value, ok := src[key].(map[string]any)
	if !ok {
		return nil
	}
	return value
}

func getSlice(src map[string]any, key string) []any {
	if src == nil {
		return nil
	}
	value, ok := src[key].([]any)
	if !ok {
		return nil
	}
	return value
}

func firstMap(items []any) map[string]any {
	for _, raw := range items {
		if value, ok := raw.(map[string]any); ok {
			return value
		}
	}
	return nil
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
