package workflow

import "fmt"

// Tool results arrive as loosely typed JSON maps; these accessors degrade
// missing or oddly typed fields to zero values the way the capability layer
// does on its side.

func mapStr(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func mapInt(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

func mapList(m map[string]any, key string) []map[string]any {
	items, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}

func strOr(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
