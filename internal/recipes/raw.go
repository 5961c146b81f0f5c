package recipes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a raw catalog.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// RawIngredient is an ingredient entry as it appears in the data source.
type RawIngredient struct {
	Ingredient string   `json:"ingredient" yaml:"ingredient"`
	Quantity   *float64 `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	Unit       *string  `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// RawRecipe is a recipe record as it appears in the data source. Pointer
// fields distinguish a missing key from a zero value.
type RawRecipe struct {
	ID          *int             `json:"id" yaml:"id"`
	Name        *string          `json:"name" yaml:"name"`
	Servings    *int             `json:"servings" yaml:"servings"`
	Time        *int             `json:"time" yaml:"time"`
	Description *string          `json:"description" yaml:"description"`
	Appliance   string           `json:"appliance" yaml:"appliance"`
	Ingredients *[]RawIngredient `json:"ingredients" yaml:"ingredients"`
	Ustensils   *[]string        `json:"ustensils" yaml:"ustensils"`
}

type rawDocument[T any] struct {
	Recipes []T `json:"recipes" yaml:"recipes"`
}

// Decode reads raw records from r. The document is either a list of
// records or an object with a "recipes" list. Syntax errors are reported
// as parse errors; a record holding a value of the wrong type is a
// *DataError naming the record and field.
func Decode(r io.Reader, format Format) ([]RawRecipe, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog")
	}

	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	default:
		return nil, errors.Newf("unsupported catalog format %q", format)
	}
}

func decodeJSON(data []byte) ([]RawRecipe, error) {
	var records []json.RawMessage
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var doc rawDocument[json.RawMessage]
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, errors.Wrap(err, "parse catalog")
		}
		records = doc.Recipes
	} else if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, errors.Wrap(err, "parse catalog")
	}

	out := make([]RawRecipe, len(records))
	for i, rec := range records {
		err := json.Unmarshal(rec, &out[i])
		if err == nil {
			continue
		}
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, errors.Wrap(err, "parse catalog")
		}
		field := typeErr.Field
		if field == "" {
			field = "record"
		}
		return nil, dataError(i, idOf(out[i]), field, fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value))
	}
	return out, nil
}

func decodeYAML(data []byte) ([]RawRecipe, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, errors.Wrap(err, "parse catalog")
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	var records []yaml.Node
	root := node.Content[0]
	if root.Kind == yaml.MappingNode {
		var doc rawDocument[yaml.Node]
		if err := root.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "parse catalog")
		}
		records = doc.Recipes
	} else if err := root.Decode(&records); err != nil {
		return nil, errors.Wrap(err, "parse catalog")
	}

	out := make([]RawRecipe, len(records))
	for i := range records {
		err := records[i].Decode(&out[i])
		if err == nil {
			continue
		}
		var typeErr *yaml.TypeError
		if !errors.As(err, &typeErr) {
			return nil, errors.Wrap(err, "parse catalog")
		}
		return nil, dataError(i, idOf(out[i]), yamlField(&records[i]), strings.Join(typeErr.Errors, "; "))
	}
	return out, nil
}

// yamlField returns the first key of a record mapping whose value does not
// decode into RawRecipe.
func yamlField(rec *yaml.Node) string {
	if rec.Kind != yaml.MappingNode {
		return "record"
	}
	for i := 0; i+1 < len(rec.Content); i += 2 {
		pair := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: rec.Content[i : i+2]}
		var scratch RawRecipe
		if err := pair.Decode(&scratch); err != nil {
			return rec.Content[i].Value
		}
	}
	return "record"
}

func idOf(r RawRecipe) int {
	if r.ID == nil {
		return 0
	}
	return *r.ID
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, bool) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".json"):
		return FormatJSON, true
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return FormatYAML, true
	default:
		return "", false
	}
}
