package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteBuiltinTemplate_BaseConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "config")

	require.NoError(t, WriteBuiltinTemplate(TemplateBaseConfig, dir))

	mainPath := filepath.Join(dir, "mapproxy.yaml")
	seedPath := filepath.Join(dir, "seed.yaml")
	assert.FileExists(t, mainPath)
	assert.FileExists(t, seedPath)

	// The rendered pair must survive its own validation.
	config, err := LoadMainConfig(mainPath)
	require.NoError(t, err)
	require.NoError(t, ValidateMainConfigSyntax(&config))

	seeding, err := LoadSeedingConfig(seedPath)
	require.NoError(t, err)
	require.NoError(t, ValidateSeedingConfigSyntax(&seeding))
}

func TestWriteBuiltinTemplate_NeverOverwrites(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.MkdirAll(dir, 0755))

	mainPath := filepath.Join(dir, "mapproxy.yaml")
	require.NoError(t, os.WriteFile(mainPath, []byte("user edited\n"), 0644))

	require.NoError(t, WriteBuiltinTemplate(TemplateBaseConfig, dir))

	data, err := os.ReadFile(mainPath)
	require.NoError(t, err)
	assert.Equal(t, "user edited\n", string(data))
	assert.FileExists(t, filepath.Join(dir, "seed.yaml"), "missing half of the pair is still rendered")
}

func TestWriteBuiltinTemplate_LogIni(t *testing.T) {
	target := filepath.Join(t.TempDir(), "log.ini")

	require.NoError(t, WriteBuiltinTemplate(TemplateLogIni, target))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[loggers]")
	assert.Contains(t, string(data), "qualname=mapproxy")
}

func TestWriteBuiltinTemplate_Unknown(t *testing.T) {
	err := WriteBuiltinTemplate("full-example", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown template")
}
