package recipes

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func rawRecipe(id int, name string) RawRecipe {
	return RawRecipe{
		ID:          ptr(id),
		Name:        ptr(name),
		Servings:    ptr(4),
		Time:        ptr(30),
		Description: ptr("Description de " + name),
		Appliance:   "four",
		Ingredients: &[]RawIngredient{{Ingredient: "Farine", Quantity: ptr(250.0), Unit: ptr("grammes")}},
		Ustensils:   &[]string{"saladier"},
	}
}

func TestLoadKeepsInputOrder(t *testing.T) {
	c, err := Load([]RawRecipe{rawRecipe(3, "Crêpes"), rawRecipe(1, "Gaufres"), rawRecipe(2, "Quiche")})
	require.NoError(t, err)

	assert.Equal(t, 3, c.Count())
	names := []string{}
	for _, r := range c.All() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"Crêpes", "Gaufres", "Quiche"}, names)
}

func TestLoadEmpty(t *testing.T) {
	c, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Count())
	assert.Empty(t, c.All())
}

func TestLoadCanonicalizesTags(t *testing.T) {
	raw := rawRecipe(1, "Limonade de Coco")
	raw.Appliance = "BLENDER"
	raw.Ingredients = &[]RawIngredient{
		{Ingredient: "lait de Coco", Quantity: ptr(400.0), Unit: ptr("ml")},
		{Ingredient: "Jus de citron", Quantity: ptr(2.0)},
		{Ingredient: "Glaçons"},
	}
	raw.Ustensils = &[]string{"cuillère à Soupe", "verres", "Verres", "  "}

	c, err := Load([]RawRecipe{raw})
	require.NoError(t, err)
	r := c.All()[0]

	assert.Equal(t, "Blender", r.Appliance)
	assert.Equal(t, []string{"Lait de coco", "Jus de citron", "Glaçons"}, r.IngredientNames())
	assert.Equal(t, []string{"Cuillère à soupe", "Verres"}, r.Utensils())
	assert.True(t, r.HasUtensil("Verres"))
	assert.False(t, r.HasUtensil("verres"))

	coco, ok := r.Ingredients.Get("Lait de coco")
	require.True(t, ok)
	assert.Equal(t, "lait de Coco", coco.Name)
	assert.Equal(t, 400.0, coco.Quantity)
	assert.Equal(t, "ml", coco.Unit)

	ice, ok := r.Ingredients.Get("Glaçons")
	require.True(t, ok)
	assert.Equal(t, 0.0, ice.Quantity)
	assert.Equal(t, "", ice.Unit)
}

func TestLoadDuplicateIngredientKeepsFirstPosition(t *testing.T) {
	raw := rawRecipe(1, "Pâtes")
	raw.Ingredients = &[]RawIngredient{
		{Ingredient: "Sel", Quantity: ptr(1.0)},
		{Ingredient: "Pâtes", Quantity: ptr(500.0), Unit: ptr("g")},
		{Ingredient: "sel", Quantity: ptr(2.0)},
	}

	c, err := Load([]RawRecipe{raw})
	require.NoError(t, err)
	r := c.All()[0]

	assert.Equal(t, 2, r.Ingredients.Len())
	assert.Equal(t, []string{"Sel", "Pâtes"}, r.IngredientNames())
	sel, _ := r.Ingredients.Get("Sel")
	assert.Equal(t, 2.0, sel.Quantity)
}

func TestLoadRejectsMalformedRecords(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*RawRecipe)
		wantField string
	}{
		{name: "missing id", mutate: func(r *RawRecipe) { r.ID = nil }, wantField: "id"},
		{name: "missing name", mutate: func(r *RawRecipe) { r.Name = nil }, wantField: "name"},
		{name: "blank name", mutate: func(r *RawRecipe) { r.Name = ptr("  ") }, wantField: "name"},
		{name: "missing servings", mutate: func(r *RawRecipe) { r.Servings = nil }, wantField: "servings"},
		{name: "missing time", mutate: func(r *RawRecipe) { r.Time = nil }, wantField: "time"},
		{name: "missing description", mutate: func(r *RawRecipe) { r.Description = nil }, wantField: "description"},
		{name: "missing ingredients", mutate: func(r *RawRecipe) { r.Ingredients = nil }, wantField: "ingredients"},
		{name: "missing ustensils", mutate: func(r *RawRecipe) { r.Ustensils = nil }, wantField: "ustensils"},
		{
			name:      "unnamed ingredient",
			mutate:    func(r *RawRecipe) { r.Ingredients = &[]RawIngredient{{Ingredient: ""}} },
			wantField: "ingredients",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := rawRecipe(2, "Soupe")
			tt.mutate(&bad)

			c, err := Load([]RawRecipe{rawRecipe(1, "Tarte"), bad})
			require.Error(t, err)
			assert.Nil(t, c)

			de, ok := AsDataError(err)
			require.True(t, ok, "error %v is not a DataError", err)
			assert.Equal(t, 1, de.Index)
			assert.Equal(t, tt.wantField, de.Field)
			assert.NotEmpty(t, errors.GetAllHints(err))
		})
	}
}

func TestLoadRejectsDuplicateIDs(t *testing.T) {
	_, err := Load([]RawRecipe{rawRecipe(7, "Tarte"), rawRecipe(7, "Soupe")})
	require.Error(t, err)

	de, ok := AsDataError(err)
	require.True(t, ok)
	assert.Equal(t, 7, de.ID)
	assert.Equal(t, "id", de.Field)
	assert.Contains(t, err.Error(), "duplicate recipe id")
}

func TestEmptyCollectionsAreValid(t *testing.T) {
	raw := rawRecipe(1, "Eau")
	raw.Ingredients = &[]RawIngredient{}
	raw.Ustensils = &[]string{}
	raw.Appliance = ""

	c, err := Load([]RawRecipe{raw})
	require.NoError(t, err)
	r := c.All()[0]
	assert.Empty(t, r.IngredientNames())
	assert.Empty(t, r.Utensils())
	assert.Equal(t, "", r.Appliance)
}

func TestAllReturnsCopy(t *testing.T) {
	c, err := Load([]RawRecipe{rawRecipe(1, "Tarte"), rawRecipe(2, "Soupe")})
	require.NoError(t, err)

	all := c.All()
	all[0] = nil
	assert.NotNil(t, c.All()[0])
}

func TestByID(t *testing.T) {
	c, err := Load([]RawRecipe{rawRecipe(1, "Tarte"), rawRecipe(2, "Soupe")})
	require.NoError(t, err)

	r, ok := c.ByID(2)
	require.True(t, ok)
	assert.Equal(t, "Soupe", r.Name)

	_, ok = c.ByID(99)
	assert.False(t, ok)
}

func TestIngredientAmount(t *testing.T) {
	tests := []struct {
		ing  Ingredient
		want string
	}{
		{Ingredient{Name: "Sel"}, ""},
		{Ingredient{Name: "Lait", Quantity: 400, Unit: "ml"}, "400 ml"},
		{Ingredient{Name: "Citron", Quantity: 2}, "2"},
		{Ingredient{Name: "Beurre", Quantity: 0.5, Unit: "kg"}, "0.5 kg"},
		{Ingredient{Name: "Poivre", Unit: "pincée"}, "0 pincée"},
	}
	for _, tt := range tests {
		t.Run(tt.ing.Name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ing.Amount())
		})
	}
}
