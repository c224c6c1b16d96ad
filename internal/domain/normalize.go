package domain

import (
	"strings"
)

// NormalizeQuery prepares a search query for storage: surrounding whitespace
// is removed, letter case is kept as typed.
func NormalizeQuery(query string) string {
	return strings.TrimSpace(query)
}

// QueryKey is the comparison key for search-history de-duplication.
// It must stay in sync with the lower(query) unique index on search_history.
func QueryKey(query string) string {
	return strings.ToLower(NormalizeQuery(query))
}
