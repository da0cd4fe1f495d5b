package services

import "strings"

// Status filters treat "" and "all" as no filter.
const FilterAll = "all"

func filterItems[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// matchesSearch is a case-insensitive substring match against any field.
// An empty query matches everything.
func matchesSearch(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func matchesStatus(filter, status string) bool {
	f := strings.TrimSpace(filter)
	return f == "" || f == FilterAll || strings.EqualFold(f, status)
}
