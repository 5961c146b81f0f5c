package recipes

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// IngredientList maps a canonical ingredient name to its Ingredient, keeping
// the order in which names first appeared in the source record.
type IngredientList struct {
	m *orderedmap.OrderedMap[string, Ingredient]
}

func newIngredientList() *IngredientList {
	return &IngredientList{m: orderedmap.New[string, Ingredient]()}
}

// set stores ing under key. A repeated key replaces the value in place.
func (l *IngredientList) set(key string, ing Ingredient) {
	l.m.Set(key, ing)
}

// Get returns the ingredient stored under the canonical name.
func (l *IngredientList) Get(key string) (Ingredient, bool) {
	if l == nil {
		return Ingredient{}, false
	}
	return l.m.Get(key)
}

// Len returns the number of distinct ingredients.
func (l *IngredientList) Len() int {
	if l == nil {
		return 0
	}
	return l.m.Len()
}

// Keys returns the canonical names in stored order.
func (l *IngredientList) Keys() []string {
	keys := make([]string, 0, l.Len())
	l.Each(func(key string, _ Ingredient) {
		keys = append(keys, key)
	})
	return keys
}

// Each calls fn for every entry in stored order.
func (l *IngredientList) Each(fn func(key string, ing Ingredient)) {
	if l == nil {
		return
	}
	for pair := l.m.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}
