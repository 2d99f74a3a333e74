// Package content implements search and category filtering over portfolio
// content collections.
package content

import "strings"

// Entry is anything the filter can search and categorize
type Entry interface {
	// SearchableText returns the free-text fields. Multi-valued fields
	// contribute one element per value.
	SearchableText() []string
	// Tags returns the category tags in display order
	Tags() []string
}

// Criteria is a single search + category selection
type Criteria struct {
	Query    string     `json:"query"`
	Category CategoryID `json:"category"`
}

// Filter returns the entries matching both the search query and the
// category, preserving the collection order. The input is never modified.
// No match yields an empty, non-nil slice.
func Filter[T Entry](items []T, c Criteria) []T {
	q := strings.ToLower(c.Query)
	category := c.Category
	if category == "" {
		category = CategoryAll
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if !matchesSearch(item, q) {
			continue
		}
		if category != CategoryAll && !MatchesCategory(item, category) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// MatchesSearch reports whether the query is a case-insensitive substring of
// any text field or tag. An empty query matches everything.
func MatchesSearch(e Entry, query string) bool {
	return matchesSearch(e, strings.ToLower(query))
}

func matchesSearch(e Entry, q string) bool {
	if q == "" {
		return true
	}
	for _, text := range e.SearchableText() {
		if strings.Contains(strings.ToLower(text), q) {
			return true
		}
	}
	for _, tag := range e.Tags() {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// MatchesCategory reports whether at least one tag contains one of the
// category's markers. Categories without a keyword table match nothing;
// "all" matches every entry.
func MatchesCategory(e Entry, id CategoryID) bool {
	if id == CategoryAll {
		return true
	}
	markers, ok := keywords[id]
	if !ok {
		return false
	}
	for _, tag := range e.Tags() {
		tag = strings.ToLower(tag)
		for _, m := range markers {
			if strings.Contains(tag, m) {
				return true
			}
		}
	}
	return false
}
