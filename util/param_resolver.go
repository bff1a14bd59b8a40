package util

import (
	"fmt"
	"strings"

	"github.com/oliveagle/jsonpath"
)

// ResolveValue returns ref itself unless it is a json path ("$..."), in which
// case the path is looked up in data. The second return is false when the path
// does not resolve.
func ResolveValue(data map[string]any, ref string) (string, bool) {
	if !strings.HasPrefix(ref, "$") {
		return ref, true
	}
	if data == nil {
		return "", false
	}
	value, err := jsonpath.JsonPathLookup(data, ref)
	if err != nil || value == nil {
		return "", false
	}
	switch v := value.(type) {
	case string:
		return v, true
	case []any:
		parts := make([]string, 0, len(v))
		for _, p := range v {
			parts = append(parts, fmt.Sprintf("%v", p))
		}
		return strings.Join(parts, ", "), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}
