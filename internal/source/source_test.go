package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sferrer-dev/petitsplats/internal/recipes"
	"github.com/sferrer-dev/petitsplats/testutil"
)

func TestOpenEmbedded(t *testing.T) {
	c, err := Open("")
	require.NoError(t, err)
	assert.Greater(t, c.Count(), 5)

	r, ok := c.ByID(1)
	require.True(t, ok)
	assert.Equal(t, "Limonade de Coco", r.Name)
	assert.Equal(t, []string{"Cuillère à soupe", "Verres", "Presse citron"}, r.Utensils())
}

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"recipes.json", "recipes.yaml", "recipes.yml"} {
		t.Run(name, func(t *testing.T) {
			path := testutil.WriteCatalog(t, dir, name, testutil.SampleRecords())

			c, err := Open(path)
			require.NoError(t, err)
			assert.Equal(t, len(testutil.SampleRecords()), c.Count())
			assert.Equal(t, []int{1, 2, 3, 4, 5}, testutil.IDs(c.All()))
		})
	}
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()

	bad := testutil.SampleRecords()
	bad[2].Time = nil
	badPath := testutil.WriteCatalog(t, dir, "bad.json", bad)

	txtPath := filepath.Join(dir, "recipes.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("[]"), 0o644))

	brokenPath := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(brokenPath, []byte("[{"), 0o644))

	t.Run("unknown extension", func(t *testing.T) {
		_, err := Open(txtPath)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownFormat))
		assert.NotEmpty(t, errors.GetAllHints(err))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Open(filepath.Join(dir, "absent.json"))
		require.Error(t, err)
		var pathErr *os.PathError
		assert.True(t, errors.As(err, &pathErr))
		assert.NotEmpty(t, errors.GetAllHints(err))
	})

	t.Run("malformed record", func(t *testing.T) {
		_, err := Open(badPath)
		require.Error(t, err)
		de, ok := recipes.AsDataError(err)
		require.True(t, ok)
		assert.Equal(t, "time", de.Field)
		assert.Equal(t, 2, de.Index)
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := Open(brokenPath)
		require.Error(t, err)
		_, ok := recipes.AsDataError(err)
		assert.False(t, ok)
	})
}

func TestDescribe(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteCatalog(t, dir, "recipes.yaml", testutil.SampleRecords())

	assert.Equal(t, Status{Path: EmbeddedName, Embedded: true, Format: recipes.FormatJSON, Exists: true}, Describe(""))
	assert.Equal(t, Status{Path: path, Format: recipes.FormatYAML, Exists: true}, Describe(path))
	assert.Equal(t, Status{Path: dir, Exists: false}, Describe(dir))
}
