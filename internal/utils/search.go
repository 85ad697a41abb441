package utils

import "strings"

// MatchesQuery reports whether the case-insensitive query occurs as a
// substring of any field. An empty query matches everything, so filtering
// a list with it returns the list unchanged.
func MatchesQuery(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
