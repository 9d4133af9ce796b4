package agent

// Param accessors for the loosely typed task parameter map. Tasks
// arrive with caller-shaped params; handlers read them through these
// so a missing or mistyped value degrades to a zero value instead of
// a panic.

// StringParam returns the string value for key, or empty.
func StringParam(params map[string]any, key string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return ""
}

// StringOrDefault returns the string value for key, or def when the
// key is absent or not a string.
func StringOrDefault(params map[string]any, key, def string) string {
	if v, ok := params[key].(string); ok && v != "" {
		return v
	}
	return def
}

// BoolParam returns the bool value for key, or false.
func BoolParam(params map[string]any, key string) bool {
	v, _ := params[key].(bool)
	return v
}

// IntParam returns the int value for key, accepting float64 from
// decoded JSON, or 0.
func IntParam(params map[string]any, key string) int {
	switch v := params[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// IntOrDefault returns the int value for key, or def when the key is
// absent or not numeric.
func IntOrDefault(params map[string]any, key string, def int) int {
	switch v := params[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return def
}

// MapParam returns the map value for key, or an empty map.
func MapParam(params map[string]any, key string) map[string]any {
	if v, ok := params[key].(map[string]any); ok {
		return v
	}
	return map[string]any{}
}

// StringsParam returns the string-slice value for key. Both []string
// and []any of strings are accepted; anything else yields nil.
func StringsParam(params map[string]any, key string) []string {
	switch v := params[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// SliceParam returns the raw slice value for key, or nil.
func SliceParam(params map[string]any, key string) []any {
	if v, ok := params[key].([]any); ok {
		return v
	}
	return nil
}

// StringsOrDefault returns the string-slice value for key, or def
// when the key is absent or empty.
func StringsOrDefault(params map[string]any, key string, def []string) []string {
	if v := StringsParam(params, key); len(v) > 0 {
		return v
	}
	return def
}
