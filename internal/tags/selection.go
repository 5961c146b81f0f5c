package tags

import (
	"fmt"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// Selection is one active filter chip: a category and the exact tag value
// as it appears in the vocabulary.
type Selection struct {
	Category Category `json:"category" yaml:"category"`
	Value    string   `json:"value" yaml:"value"`
}

func (s Selection) String() string {
	return fmt.Sprintf("%s:%s", s.Category, s.Value)
}

// Selections is an insertion-ordered set of Selection values. The zero
// value is not usable; call NewSelections.
type Selections struct {
	set *linkedhashset.Set
}

// NewSelections returns a set holding sels in order, duplicates dropped.
func NewSelections(sels ...Selection) *Selections {
	s := &Selections{set: linkedhashset.New()}
	for _, sel := range sels {
		s.Add(sel)
	}
	return s
}

// Add appends sel and reports whether it was not already present.
func (s *Selections) Add(sel Selection) bool {
	if s.set.Contains(sel) {
		return false
	}
	s.set.Add(sel)
	return true
}

// Remove drops sel and reports whether it was present.
func (s *Selections) Remove(sel Selection) bool {
	if !s.set.Contains(sel) {
		return false
	}
	s.set.Remove(sel)
	return true
}

func (s *Selections) Contains(sel Selection) bool {
	return s.set.Contains(sel)
}

func (s *Selections) Len() int {
	return s.set.Size()
}

func (s *Selections) Clear() {
	s.set.Clear()
}

// List returns the selections in insertion order.
func (s *Selections) List() []Selection {
	values := s.set.Values()
	out := make([]Selection, 0, len(values))
	for _, v := range values {
		out = append(out, v.(Selection))
	}
	return out
}

// Values returns the selected values of one category in insertion order.
func (s *Selections) Values(c Category) []string {
	out := []string{}
	for _, sel := range s.List() {
		if sel.Category == c {
			out = append(out, sel.Value)
		}
	}
	return out
}
