package utils

import (
	"strconv"
	"strings"
	"time"
)

// ParseDuration safely parses duration strings like "1h", falling back
// to the given default on empty or malformed input
func ParseDuration(d string, fallback time.Duration) time.Duration {
	if d == "" {
		return fallback
	}
	duration, err := time.ParseDuration(d)
	if err != nil {
		return fallback
	}
	return duration
}

// ParseValue coerces a CSV cell into int, float or string
func ParseValue(s string) interface{} {
	// Trim whitespace first
	s = strings.TrimSpace(s)

	// try int
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	// try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// IsNumeric reports whether a raw cell parses as int or float
func IsNumeric(s string) bool {
	switch ParseValue(s).(type) {
	case int, float64:
		return true
	}
	return false
}
