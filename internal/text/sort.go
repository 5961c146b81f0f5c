package text

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is the catalog language.
const DefaultLocale = "fr"

// Sorter orders strings the way a reader of the configured locale expects,
// so "Économe" sorts next to "Eau" rather than after "Z".
// A Sorter is not safe for concurrent use.
type Sorter struct {
	locale   language.Tag
	collator *collate.Collator
}

// NewSorter returns a Sorter for the BCP 47 tag. Empty or unparsable tags
// fall back to DefaultLocale.
func NewSorter(tag string) *Sorter {
	lang, err := language.Parse(strings.TrimSpace(tag))
	if err != nil || lang == language.Und {
		lang = language.French
	}
	return &Sorter{
		locale:   lang,
		collator: collate.New(lang),
	}
}

// Locale reports the language the Sorter collates for.
func (s *Sorter) Locale() string {
	return s.locale.String()
}

// Compare returns -1, 0 or 1. Strings the collator considers equal are
// ordered by their bytes so the result is total.
func (s *Sorter) Compare(a, b string) int {
	if c := s.collator.CompareString(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Sort sorts values in place in ascending order.
func (s *Sorter) Sort(values []string) {
	slices.SortStableFunc(values, s.Compare)
}

// Sorted returns a sorted copy of values.
func (s *Sorter) Sorted(values []string) []string {
	out := slices.Clone(values)
	s.Sort(out)
	return out
}
