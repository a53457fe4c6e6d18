package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "lobsterinfo.toml")
	require.NoError(t, os.WriteFile(name, []byte(text), 0644))
	return name
}

func TestLoadConfig(t *testing.T) {
	name := writeConfig(t, `
coops = false
parquet = "out/icohps.parquet"
compression = "zstd"
plotdir = "plots"

[[structures]]
name = "bccFe"
dir = "../../test"

[[structures]]
dir = "../../test/gz"
`)
	cfg, err := loadConfig(name)
	require.NoError(t, err)
	assert.False(t, cfg.Coops)
	assert.Equal(t, "out/icohps.parquet", cfg.Parquet)
	assert.Equal(t, "zstd", cfg.Compression)
	assert.Equal(t, "plots", cfg.PlotDir)
	assert.Equal(t, defaultTop, cfg.Top)
	require.Len(t, cfg.Structures, 2)
	assert.Equal(t, Structure{Name: "bccFe", Dir: "../../test"}, cfg.Structures[0])
	assert.Equal(t, Structure{Name: "../../test/gz", Dir: "../../test/gz"}, cfg.Structures[1])
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "none.toml"))
	assert.Error(t, err)

	bad := map[string]string{
		"no structures": `top = 3`,
		"no dir": `
[[structures]]
name = "a"
`,
		"repeated": `
[[structures]]
name = "a"
dir = "x"
[[structures]]
name = "a"
dir = "y"
`,
		"syntax": `top = `,
	}
	for k, v := range bad {
		_, err := loadConfig(writeConfig(t, v))
		assert.Error(t, err, k)
	}
}
