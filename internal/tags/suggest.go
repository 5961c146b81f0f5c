package tags

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// MaxSuggestions bounds the number of values Suggest returns.
const MaxSuggestions = 3

// Suggest ranks the candidates closest to value, for "did you mean" hints.
// Candidates equal to value once case and diacritics are folded come first,
// then fuzzy matches by score. It is never used to match recipes.
func Suggest(value string, candidates []string) []string {
	pattern := fold(strings.TrimSpace(value))
	if pattern == "" || len(candidates) == 0 {
		return nil
	}

	folded := make([]string, 0, len(candidates))
	for _, c := range candidates {
		folded = append(folded, fold(c))
	}

	out := []string{}
	seen := map[int]bool{}
	for i, f := range folded {
		if f == pattern {
			out = append(out, candidates[i])
			seen[i] = true
		}
	}

	for _, m := range fuzzy.FindFrom(pattern, stringSource(folded)) {
		if len(out) == MaxSuggestions {
			break
		}
		if seen[m.Index] {
			continue
		}
		seen[m.Index] = true
		out = append(out, candidates[m.Index])
	}

	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}

type stringSource []string

func (s stringSource) Len() int {
	return len(s)
}

func (s stringSource) String(i int) string {
	return s[i]
}
