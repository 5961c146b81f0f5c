package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/sferrer-dev/petitsplats/internal/config"
	"github.com/sferrer-dev/petitsplats/internal/pipeline"
	"github.com/sferrer-dev/petitsplats/internal/recipes"
	"github.com/sferrer-dev/petitsplats/internal/tags"
	"github.com/sferrer-dev/petitsplats/internal/text"
	"github.com/sferrer-dev/petitsplats/internal/tui"
)

type ingredientView struct {
	Name     string  `json:"name" yaml:"name"`
	Quantity float64 `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	Unit     string  `json:"unit,omitempty" yaml:"unit,omitempty"`
}

type recipeView struct {
	ID          int              `json:"id" yaml:"id"`
	Name        string           `json:"name" yaml:"name"`
	Servings    int              `json:"servings" yaml:"servings"`
	Time        int              `json:"time" yaml:"time"`
	Appliance   string           `json:"appliance" yaml:"appliance"`
	Ingredients []ingredientView `json:"ingredients" yaml:"ingredients"`
	Utensils    []string         `json:"utensils" yaml:"utensils"`
	Description string           `json:"description" yaml:"description"`
}

type resultView struct {
	Query   string           `json:"query" yaml:"query"`
	Tags    []tags.Selection `json:"tags" yaml:"tags"`
	Count   int              `json:"count" yaml:"count"`
	Recipes []recipeView     `json:"recipes" yaml:"recipes"`
}

func newRecipeView(r *recipes.Recipe) recipeView {
	v := recipeView{
		ID:          r.ID,
		Name:        r.Name,
		Servings:    r.Servings,
		Time:        r.Time,
		Appliance:   r.Appliance,
		Ingredients: make([]ingredientView, 0, r.Ingredients.Len()),
		Utensils:    r.Utensils(),
		Description: r.Description,
	}
	r.Ingredients.Each(func(key string, ing recipes.Ingredient) {
		v.Ingredients = append(v.Ingredients, ingredientView{Name: key, Quantity: ing.Quantity, Unit: ing.Unit})
	})
	return v
}

func newResultView(res pipeline.Result) resultView {
	v := resultView{
		Query:   res.Query,
		Tags:    res.Tags,
		Count:   len(res.Visible),
		Recipes: make([]recipeView, 0, len(res.Visible)),
	}
	for _, r := range res.Visible {
		v.Recipes = append(v.Recipes, newRecipeView(r))
	}
	return v
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return errors.Wrap(enc.Encode(v), "encode json")
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return errors.Wrap(enc.Close(), "encode yaml")
	}
	return errors.Newf("unsupported output format %q", format)
}

func writeResult(w io.Writer, format string, res pipeline.Result, sorter *text.Sorter) error {
	if format != config.OutputText {
		return writeStructured(w, format, newResultView(res))
	}

	if res.Empty() {
		fmt.Fprintln(w, tui.EmptyMessage)
		return nil
	}
	for i, r := range res.Visible {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeCard(w, r, sorter)
	}
	return nil
}

// writeCard prints a recipe the way the recipe site's cards show it:
// title and time, ingredients by name, then the description.
func writeCard(w io.Writer, r *recipes.Recipe, sorter *text.Sorter) {
	fmt.Fprintf(w, "#%d %s · %d min\n", r.ID, r.Name, r.Time)

	names := sorter.Sorted(r.IngredientNames())
	for _, name := range names {
		ing, _ := r.Ingredients.Get(name)
		if amount := ing.Amount(); amount != "" {
			fmt.Fprintf(w, "  %s : %s\n", name, amount)
			continue
		}
		fmt.Fprintf(w, "  %s\n", name)
	}

	var details []string
	if r.Appliance != "" {
		details = append(details, "Appareil : "+r.Appliance)
	}
	if utensils := r.Utensils(); len(utensils) > 0 {
		details = append(details, "Ustensiles : "+strings.Join(utensils, ", "))
	}
	details = append(details, fmt.Sprintf("%d pers.", r.Servings))
	fmt.Fprintf(w, "  %s\n", strings.Join(details, " · "))
	fmt.Fprintf(w, "  %s\n", r.Description)
}

func writeVocabulary(w io.Writer, format string, v tags.Vocabulary, only []tags.Category) error {
	if format != config.OutputText {
		if len(only) == 1 {
			return writeStructured(w, format, v.For(only[0]))
		}
		return writeStructured(w, format, v)
	}

	for i, c := range only {
		values := v.For(c)
		if len(only) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s (%d)\n", c.Label(), len(values))
		}
		for _, value := range values {
			if len(only) > 1 {
				fmt.Fprint(w, "  ")
			}
			fmt.Fprintln(w, value)
		}
	}
	return nil
}
