// Package tags derives the selectable tag vocabularies from a recipe subset
// and models the active tag selections.
package tags

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Category is one of the three tag families a recipe can be filtered on.
type Category string

const (
	Ingredients Category = "ingredients"
	Utensils    Category = "utensils"
	Appliances  Category = "appliances"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{Ingredients, Utensils, Appliances}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case Ingredients, Utensils, Appliances:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// Label is the heading the recipe site used for the category's dropdown.
func (c Category) Label() string {
	switch c {
	case Ingredients:
		return "Ingrédients"
	case Utensils:
		return "Ustensiles"
	case Appliances:
		return "Appareils"
	}
	return string(c)
}

// ParseCategory accepts the canonical names, their singular forms and the
// "ustensils" spelling used by the catalog data.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ingredients", "ingredient":
		return Ingredients, nil
	case "utensils", "utensil", "ustensils", "ustensil":
		return Utensils, nil
	case "appliances", "appliance":
		return Appliances, nil
	}
	return "", errors.WithHint(
		errors.Newf("unknown tag category %q", s),
		"valid categories are ingredients, utensils and appliances",
	)
}
