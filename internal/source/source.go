// Package source supplies the raw recipe records: the catalog built into
// the binary, or a JSON or YAML file chosen by the user.
package source

import (
	"bytes"
	_ "embed"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/sferrer-dev/petitsplats/internal/recipes"
)

// EmbeddedName stands for the built-in catalog wherever a path is shown.
const EmbeddedName = "built-in"

// ErrUnknownFormat is returned for a catalog file whose extension is not
// .json, .yaml or .yml.
var ErrUnknownFormat = errors.New("unknown catalog format")

//go:embed data/recipes.json
var embedded []byte

type Status struct {
	Path     string         `json:"path" yaml:"path"`
	Embedded bool           `json:"embedded" yaml:"embedded"`
	Format   recipes.Format `json:"format" yaml:"format"`
	Exists   bool           `json:"exists" yaml:"exists"`
}

// Open reads and loads the catalog at path. An empty path opens the
// built-in catalog.
func Open(path string) (*recipes.Catalog, error) {
	raw, err := Read(path)
	if err != nil {
		return nil, err
	}
	c, err := recipes.Load(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "load catalog %s", display(path))
	}
	return c, nil
}

// Read decodes the raw records at path without validating them.
func Read(path string) ([]recipes.RawRecipe, error) {
	if path == "" {
		raw, err := recipes.Decode(bytes.NewReader(embedded), recipes.FormatJSON)
		if err != nil {
			return nil, errors.Wrap(err, "decode built-in catalog")
		}
		return raw, nil
	}

	format, ok := recipes.FormatFromPath(path)
	if !ok {
		return nil, errors.WithHint(
			errors.Wrapf(ErrUnknownFormat, "catalog %s", path),
			"catalog files must end in .json, .yaml or .yml",
		)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithHint(
			errors.Wrap(err, "open catalog"),
			"set catalog_path with 'petitsplats config set catalog_path <file>', or leave it empty for the built-in catalog",
		)
	}
	defer f.Close()

	raw, err := recipes.Decode(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "decode catalog %s", path)
	}
	return raw, nil
}

// Describe reports where the catalog at path comes from.
func Describe(path string) Status {
	if path == "" {
		return Status{Path: EmbeddedName, Embedded: true, Format: recipes.FormatJSON, Exists: true}
	}

	format, _ := recipes.FormatFromPath(path)
	info, err := os.Stat(path)
	return Status{
		Path:   path,
		Format: format,
		Exists: err == nil && !info.IsDir(),
	}
}

func display(path string) string {
	if path == "" {
		return EmbeddedName
	}
	return path
}
