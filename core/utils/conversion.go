package utils

import (
	"strconv"
	"strings"
)

// ToBool converts query and flag style values to bool.
// It accepts bool, integers (1=true) and strings ("1", "true", "yes", "on").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int:
		return v == 1
	case int64:
		return v == 1
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "on":
			return true
		}
		return false
	case []byte:
		return ToBool(string(v))
	default:
		return false
	}
}

// FormatMarkers renders numbers as a comma separated marker list ("L3, L7"),
// or "None" when there are none.
func FormatMarkers(numbers []int) string {
	if len(numbers) == 0 {
		return "None"
	}
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = "L" + strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
