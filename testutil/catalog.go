// Package testutil provides fixtures shared by the package tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/sferrer-dev/petitsplats/internal/recipes"
)

// Recipe ids of the sample catalog.
const (
	TarteAuxPommes = 1
	Soupe          = 2
	CremeBrulee    = 3
	SelleDAgneau   = 4
	PatesAuBeurre  = 5
)

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }

// Raw builds a complete raw record. Ingredients carry no quantity.
func Raw(id int, name, description, appliance string, ingredients, utensils []string) recipes.RawRecipe {
	ings := make([]recipes.RawIngredient, 0, len(ingredients))
	for _, ing := range ingredients {
		ings = append(ings, recipes.RawIngredient{Ingredient: ing})
	}
	return recipes.RawRecipe{
		ID:          Ptr(id),
		Name:        Ptr(name),
		Servings:    Ptr(4),
		Time:        Ptr(30),
		Description: Ptr(description),
		Appliance:   appliance,
		Ingredients: &ings,
		Ustensils:   Ptr(append([]string{}, utensils...)),
	}
}

// SampleRecords returns a small catalog covering diacritics, parentheses
// and words sharing a prefix ("Sel", "Selle").
func SampleRecords() []recipes.RawRecipe {
	return []recipes.RawRecipe{
		Raw(TarteAuxPommes, "Tarte aux pommes", "Dessert sucré", "Four",
			[]string{"Pomme", "Sucre"}, []string{"Moule"}),
		Raw(Soupe, "Soupe", "Plat chaud", "Blender",
			[]string{"Carotte"}, []string{"Louche"}),
		Raw(CremeBrulee, "Crème brûlée", "Dessert à la crème (classique)", "Four",
			[]string{"Crème fraîche", "Sucre", "Oeuf"}, []string{"Ramequins", "Casserole"}),
		Raw(SelleDAgneau, "Selle d'agneau rôtie", "Rôti du dimanche", "Four",
			[]string{"Selle d'agneau", "Sel", "Poivre"}, []string{"Plat à four"}),
		Raw(PatesAuBeurre, "Pâtes au beurre", "Simple et rapide", "Casserole",
			[]string{"Pâtes", "Beurre", "Sel"}, []string{"Passoire", "Casserole"}),
	}
}

// SampleCatalog loads SampleRecords.
func SampleCatalog(t *testing.T) *recipes.Catalog {
	t.Helper()
	c, err := recipes.Load(SampleRecords())
	if err != nil {
		t.Fatalf("failed to load sample catalog: %v", err)
	}
	return c
}

// IDs returns the ids of rs in order.
func IDs(rs []*recipes.Recipe) []int {
	ids := make([]int, 0, len(rs))
	for _, r := range rs {
		ids = append(ids, r.ID)
	}
	return ids
}

// WriteCatalog writes records to dir/name, as YAML when name ends in .yaml
// or .yml and as JSON otherwise, and returns the file path.
func WriteCatalog(t *testing.T, dir, name string, records []recipes.RawRecipe) string {
	t.Helper()

	var (
		data []byte
		err  error
	)
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(records)
	default:
		data, err = json.MarshalIndent(records, "", "  ")
	}
	if err != nil {
		t.Fatalf("failed to encode catalog: %v", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}
	return path
}
