package filter

import (
	"github.com/sferrer-dev/petitsplats/internal/match"
	"github.com/sferrer-dev/petitsplats/internal/recipes"
	"github.com/sferrer-dev/petitsplats/internal/tags"
	"github.com/sferrer-dev/petitsplats/internal/text"
)

// FilterByTags keeps the recipes satisfying every selection. Selections are
// applied left to right, each one narrowing the previous result, so two
// values of the same category must both match.
func FilterByTags(sels []tags.Selection, rs []*recipes.Recipe) []*recipes.Recipe {
	out := rs
	for _, sel := range sels {
		out = matchCategory(sel, out)
	}
	return out
}

// matchCategory keeps the recipes whose values of sel.Category contain
// sel.Value as a whole word. Unknown categories and values that cannot be
// turned into a matcher keep nothing.
func matchCategory(sel tags.Selection, rs []*recipes.Recipe) []*recipes.Recipe {
	haystack := haystackFor(sel.Category)
	if haystack == nil {
		return []*recipes.Recipe{}
	}

	m, err := match.Build(text.Normalize(sel.Value), true)
	if err != nil {
		return []*recipes.Recipe{}
	}

	out := make([]*recipes.Recipe, 0, len(rs))
	for _, r := range rs {
		if m.Test(haystack(r)) {
			out = append(out, r)
		}
	}
	return out
}

func haystackFor(c tags.Category) func(*recipes.Recipe) string {
	switch c {
	case tags.Appliances:
		return func(r *recipes.Recipe) string { return text.Normalize(r.Appliance) }
	case tags.Ingredients:
		return func(r *recipes.Recipe) string { return flatten(r.IngredientNames()) }
	case tags.Utensils:
		return func(r *recipes.Recipe) string { return flatten(r.Utensils()) }
	}
	return nil
}
