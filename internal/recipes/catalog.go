package recipes

import (
	"slices"
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/sferrer-dev/petitsplats/internal/text"
)

// Catalog is the full, immutable recipe collection. It is built once by Load
// and shared read-only by every filter.
type Catalog struct {
	recipes []*Recipe
	byID    map[int]*Recipe
}

// Load builds a catalog from raw records, keeping their order. The first
// malformed record aborts the load with a *DataError.
func Load(raw []RawRecipe) (*Catalog, error) {
	c := &Catalog{
		recipes: make([]*Recipe, 0, len(raw)),
		byID:    make(map[int]*Recipe, len(raw)),
	}

	for i, rec := range raw {
		r, err := build(i, rec)
		if err != nil {
			return nil, err
		}
		if _, exists := c.byID[r.ID]; exists {
			return nil, dataError(i, r.ID, "id", "duplicate recipe id")
		}
		c.byID[r.ID] = r
		c.recipes = append(c.recipes, r)
	}
	return c, nil
}

// All returns every recipe in input order. The slice is a copy; the recipes
// themselves are shared and must not be modified.
func (c *Catalog) All() []*Recipe {
	if c == nil {
		return []*Recipe{}
	}
	return slices.Clone(c.recipes)
}

// Count returns the number of recipes.
func (c *Catalog) Count() int {
	if c == nil {
		return 0
	}
	return len(c.recipes)
}

// ByID looks a recipe up by its identifier.
func (c *Catalog) ByID(id int) (*Recipe, bool) {
	if c == nil {
		return nil, false
	}
	r, ok := c.byID[id]
	return r, ok
}

func build(index int, rec RawRecipe) (*Recipe, error) {
	if rec.ID == nil {
		return nil, dataError(index, 0, "id", "missing")
	}
	id := *rec.ID

	switch {
	case rec.Name == nil:
		return nil, dataError(index, id, "name", "missing")
	case strings.TrimSpace(*rec.Name) == "":
		return nil, dataError(index, id, "name", "empty")
	case rec.Servings == nil:
		return nil, dataError(index, id, "servings", "missing")
	case rec.Time == nil:
		return nil, dataError(index, id, "time", "missing")
	case rec.Description == nil:
		return nil, dataError(index, id, "description", "missing")
	case rec.Ingredients == nil:
		return nil, dataError(index, id, "ingredients", "missing")
	case rec.Ustensils == nil:
		return nil, dataError(index, id, "ustensils", "missing")
	}

	r := &Recipe{
		ID:          id,
		Name:        *rec.Name,
		Servings:    *rec.Servings,
		Time:        *rec.Time,
		Description: *rec.Description,
		Appliance:   text.CapitalizeFirstLetter(strings.TrimSpace(rec.Appliance)),
		Ingredients: newIngredientList(),
		utensils:    linkedhashset.New(),
	}

	for _, raw := range *rec.Ingredients {
		name := strings.TrimSpace(raw.Ingredient)
		if name == "" {
			return nil, dataError(index, id, "ingredients", "ingredient without a name")
		}
		ing := Ingredient{Name: name}
		if raw.Quantity != nil {
			ing.Quantity = *raw.Quantity
		}
		if raw.Unit != nil {
			ing.Unit = *raw.Unit
		}
		r.Ingredients.set(text.CapitalizeFirstLetter(name), ing)
	}

	for _, u := range *rec.Ustensils {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		r.utensils.Add(text.CapitalizeFirstLetter(u))
	}

	return r, nil
}
