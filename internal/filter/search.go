// Package filter implements the two filtering axes over a recipe subset:
// free-text search and tag selections. Both return a subsequence of their
// input in the original order and never fail.
package filter

import (
	"strings"
	"unicode/utf8"

	"github.com/sferrer-dev/petitsplats/internal/match"
	"github.com/sferrer-dev/petitsplats/internal/recipes"
	"github.com/sferrer-dev/petitsplats/internal/text"
)

// MinQueryLength is the shortest trimmed query, in characters, that
// triggers a search. Shorter queries leave the input unchanged.
const MinQueryLength = 3

// ListSeparator joins flattened ingredient and utensil names. It never
// appears inside a word, so a match cannot span two names.
const ListSeparator = ","

// IsActiveQuery reports whether query is long enough to filter.
func IsActiveQuery(query string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(query)) >= MinQueryLength
}

// SearchByText keeps the recipes whose name, description or ingredient
// names contain a word starting with query, ignoring case and diacritics.
func SearchByText(query string, rs []*recipes.Recipe) []*recipes.Recipe {
	if !IsActiveQuery(query) {
		return rs
	}

	m, err := match.Build(text.Normalize(strings.TrimSpace(query)), false)
	if err != nil {
		return []*recipes.Recipe{}
	}

	out := make([]*recipes.Recipe, 0, len(rs))
	for _, r := range rs {
		if matchesText(m, r) {
			out = append(out, r)
		}
	}
	return out
}

func matchesText(m *match.Matcher, r *recipes.Recipe) bool {
	return m.Test(text.Normalize(r.Name)) ||
		m.Test(text.Normalize(r.Description)) ||
		m.Test(flatten(r.IngredientNames()))
}

func flatten(names []string) string {
	return text.Normalize(strings.Join(names, ListSeparator))
}
