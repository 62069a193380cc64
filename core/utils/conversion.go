package utils

import (
	"fmt"
	"strconv"
)

// ToString converts various types to string.
// Floats use the shortest decimal form that round-trips, so 300 becomes "300"
// and 2.5 becomes "2.5".
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}
