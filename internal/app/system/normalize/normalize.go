// Package normalize provides helper functions for consistent string
// normalization across the application. Use these helpers instead of
// scattered strings.TrimSpace and strconv calls so that query parameters
// and list fields behave the same everywhere.
package normalize

import (
	"strconv"
	"strings"
)

// QueryParam normalizes a query or form parameter by trimming whitespace.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}

// Year parses a query parameter as a year. It trims whitespace and
// returns 0 when the value is empty or not an integer; the filter layer
// treats 0 as "no bound".
func Year(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// ListField splits a comma-separated catalog field (countries, genres,
// cast) into trimmed items, dropping empties.
func ListField(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
