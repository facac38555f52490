package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nasdf/gqlselect/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gqlselect.yaml")
	data := `
package: blog
output: blog_gen.go
schema:
  - schema.graphql
  - /abs/extra.graphql
scalars:
  DateTime:
    type: time.Time
    import: time
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "blog", cfg.Package)
	assert.Equal(t, filepath.Join(dir, "blog_gen.go"), cfg.Output)
	assert.Equal(t, []string{filepath.Join(dir, "schema.graphql"), "/abs/extra.graphql"}, cfg.Schema)
	assert.Equal(t, map[string]types.Scalar{"DateTime": {Type: "time.Time", Import: "time"}}, cfg.Scalars)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gqlselect.yaml")
	require.NoError(t, os.WriteFile(path, []byte("package: [blog"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestValidate(t *testing.T) {
	cfg := Config{
		Scalars: map[string]types.Scalar{"Time": {}},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package is required")
	assert.Contains(t, err.Error(), "output is required")
	assert.Contains(t, err.Error(), "at least one schema file is required")
	assert.Contains(t, err.Error(), "scalar Time: type is required")
}
