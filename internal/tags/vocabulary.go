package tags

import (
	"slices"
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/sferrer-dev/petitsplats/internal/recipes"
	"github.com/sferrer-dev/petitsplats/internal/text"
)

// Vocabulary holds the distinct tag values of a recipe subset, one list per
// category. Values keep first-seen order until Sorted is applied.
type Vocabulary struct {
	Ingredients []string `json:"ingredients" yaml:"ingredients"`
	Utensils    []string `json:"utensils" yaml:"utensils"`
	Appliances  []string `json:"appliances" yaml:"appliances"`
}

// Extract collects the vocabulary of rs. Values are de-duplicated by exact
// string equality; an empty input yields three empty lists.
func Extract(rs []*recipes.Recipe) Vocabulary {
	ingredients := linkedhashset.New()
	utensils := linkedhashset.New()
	appliances := linkedhashset.New()

	for _, r := range rs {
		for _, name := range r.IngredientNames() {
			ingredients.Add(name)
		}
		for _, u := range r.Utensils() {
			utensils.Add(u)
		}
		if r.Appliance != "" {
			appliances.Add(r.Appliance)
		}
	}

	return Vocabulary{
		Ingredients: setStrings(ingredients),
		Utensils:    setStrings(utensils),
		Appliances:  setStrings(appliances),
	}
}

func setStrings(s *linkedhashset.Set) []string {
	values := s.Values()
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.(string))
	}
	return out
}

// For returns the list of category c. Unknown categories have no values.
func (v Vocabulary) For(c Category) []string {
	switch c {
	case Ingredients:
		return v.Ingredients
	case Utensils:
		return v.Utensils
	case Appliances:
		return v.Appliances
	}
	return nil
}

// Contains reports whether value is in the list of category c.
func (v Vocabulary) Contains(c Category, value string) bool {
	return slices.Contains(v.For(c), value)
}

// Len is the total number of values across the three lists.
func (v Vocabulary) Len() int {
	return len(v.Ingredients) + len(v.Utensils) + len(v.Appliances)
}

// Sorted returns a copy with every list in ascending locale order.
func (v Vocabulary) Sorted(s *text.Sorter) Vocabulary {
	return Vocabulary{
		Ingredients: s.Sorted(v.Ingredients),
		Utensils:    s.Sorted(v.Utensils),
		Appliances:  s.Sorted(v.Appliances),
	}
}

// Without returns a copy with the already selected values of each
// category removed, so active tags are never offered again.
func (v Vocabulary) Without(sels []Selection) Vocabulary {
	return v.filter(func(c Category, value string) bool {
		return !slices.Contains(sels, Selection{Category: c, Value: value})
	})
}

// Narrow keeps the values of category c that contain query, ignoring case
// and diacritics. The other categories are returned unchanged; an empty
// query is a no-op.
func (v Vocabulary) Narrow(c Category, query string) Vocabulary {
	needle := fold(strings.TrimSpace(query))
	if needle == "" {
		return v
	}
	return v.filter(func(cat Category, value string) bool {
		return cat != c || strings.Contains(fold(value), needle)
	})
}

func (v Vocabulary) filter(keep func(Category, string) bool) Vocabulary {
	pick := func(c Category, values []string) []string {
		out := make([]string, 0, len(values))
		for _, value := range values {
			if keep(c, value) {
				out = append(out, value)
			}
		}
		return out
	}
	return Vocabulary{
		Ingredients: pick(Ingredients, v.Ingredients),
		Utensils:    pick(Utensils, v.Utensils),
		Appliances:  pick(Appliances, v.Appliances),
	}
}

func fold(s string) string {
	return strings.ToLower(text.Normalize(s))
}
