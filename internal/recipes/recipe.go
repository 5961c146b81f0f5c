// Package recipes defines the recipe model and the read-only catalog that
// every filter works from.
package recipes

import (
	"fmt"
	"strconv"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	Name     string
	Quantity float64
	Unit     string
}

// Amount renders the quantity part the way the recipe cards show it,
// e.g. "400 ml" or "2". An ingredient without quantity renders empty.
func (i Ingredient) Amount() string {
	if i.Quantity == 0 && i.Unit == "" {
		return ""
	}
	q := strconv.FormatFloat(i.Quantity, 'f', -1, 64)
	if i.Unit == "" {
		return q
	}
	return q + " " + i.Unit
}

// Recipe is immutable once the catalog is loaded.
type Recipe struct {
	ID          int
	Name        string
	Servings    int
	Time        int
	Description string
	Appliance   string
	Ingredients *IngredientList
	utensils    *linkedhashset.Set
}

// Utensils returns the recipe's utensils in their first-seen order.
func (r *Recipe) Utensils() []string {
	if r.utensils == nil {
		return []string{}
	}
	values := r.utensils.Values()
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.(string))
	}
	return out
}

// HasUtensil reports whether the recipe lists the utensil, compared exactly.
func (r *Recipe) HasUtensil(name string) bool {
	return r.utensils != nil && r.utensils.Contains(name)
}

// IngredientNames returns the canonical ingredient names in stored order.
func (r *Recipe) IngredientNames() []string {
	if r.Ingredients == nil {
		return []string{}
	}
	return r.Ingredients.Keys()
}

func (r *Recipe) String() string {
	return fmt.Sprintf("#%d %s", r.ID, r.Name)
}
