package cli

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/sferrer-dev/petitsplats/internal/pipeline"
	"github.com/sferrer-dev/petitsplats/internal/recipes"
	"github.com/sferrer-dev/petitsplats/internal/tags"
	"github.com/sferrer-dev/petitsplats/internal/text"
)

var ErrUnknownTag = errors.New("unknown tag")

// tagFlags holds the repeatable --ingredient, --utensil and --appliance
// flags shared by the catalog commands.
type tagFlags struct {
	ingredients []string
	utensils    []string
	appliances  []string
}

func (f *tagFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.ingredients, "ingredient", "i", nil, "Keep recipes with this ingredient (repeatable)")
	cmd.Flags().StringArrayVarP(&f.utensils, "utensil", "u", nil, "Keep recipes with this utensil (repeatable)")
	cmd.Flags().StringArrayVarP(&f.appliances, "appliance", "a", nil, "Keep recipes made with this appliance (repeatable)")
}

// selections resolves the flag values against the catalog vocabulary, in
// ingredient, utensil, appliance order. Values match ignoring case and
// diacritics; anything else is an ErrUnknownTag with suggestions.
func (f *tagFlags) selections(catalog *recipes.Catalog) ([]tags.Selection, error) {
	vocab := tags.Extract(catalog.All())
	groups := []struct {
		category tags.Category
		values   []string
	}{
		{tags.Ingredients, f.ingredients},
		{tags.Utensils, f.utensils},
		{tags.Appliances, f.appliances},
	}

	var sels []tags.Selection
	for _, g := range groups {
		for _, value := range g.values {
			canonical, err := resolveTag(vocab, g.category, value)
			if err != nil {
				return nil, err
			}
			sels = append(sels, tags.Selection{Category: g.category, Value: canonical})
		}
	}
	return sels, nil
}

func resolveTag(vocab tags.Vocabulary, c tags.Category, value string) (string, error) {
	candidates := vocab.For(c)
	if vocab.Contains(c, value) {
		return value, nil
	}

	want := foldTag(value)
	for _, candidate := range candidates {
		if foldTag(candidate) == want {
			return candidate, nil
		}
	}

	err := errors.Wrapf(ErrUnknownTag, "%s %q", strings.TrimSuffix(string(c), "s"), value)
	if suggestions := tags.Suggest(value, candidates); len(suggestions) > 0 {
		return "", errors.WithHintf(err, "did you mean: %s", strings.Join(suggestions, ", "))
	}
	return "", errors.WithHintf(err, "run 'petitsplats tags --category %s' to list the known values", c)
}

func foldTag(s string) string {
	return strings.ToLower(text.Normalize(strings.TrimSpace(s)))
}

// run applies query then every selection to a fresh pipeline and returns
// the final result.
func run(p *pipeline.Pipeline, query string, sels []tags.Selection) pipeline.Result {
	res := p.SetQuery(query)
	for _, sel := range sels {
		res = p.AddTag(sel)
	}
	return res
}
