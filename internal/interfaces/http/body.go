package http

import (
	"strconv"
	"strings"
)

// stringField lee body[key] como texto; acepta números (el carnet suele llegar como número).
func stringField(body map[string]any, key string) string {
	switch v := body[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}
