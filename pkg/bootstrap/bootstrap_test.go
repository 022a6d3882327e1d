package bootstrap

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/lqh2307/mapproxy/pkg/tools"
	"github.com/lqh2307/mapproxy/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBootstrap_Defaults(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv("MPBOOT_OPTS_FILE", "")
	t.Setenv("MAPPROXY_CONFIG_DIR", configDir)
	t.Setenv(EnvNoSeed, "")
	t.Setenv(EnvSeedNumCore, "")

	b, err := NewBootstrap()
	require.NoError(t, err)

	configDir = tools.ResolvePath(configDir)
	assert.Equal(t, filepath.Join(configDir, "mapproxy.yaml"), b.Options.MainConfigPath)
	assert.Equal(t, filepath.Join(configDir, "seed.yaml"), b.Options.SeedConfigPath)
	assert.Equal(t, filepath.Join(configDir, "log.ini"), b.Options.LogConfigPath)
	assert.Equal(t, "mapproxy-util", b.Options.UtilBin)
	assert.Equal(t, "mapproxy-seed", b.Options.SeedBin)
	assert.DirExists(t, b.Options.StorePath)

	assert.False(t, b.Seeding.Skip)
	assert.Equal(t, tools.CPUCount(), b.Seeding.Concurrency)
}

func TestNewBootstrap_SeedGate(t *testing.T) {
	tests := []struct {
		name        string
		noSeed      string
		numCore     string
		wantSkip    bool
		wantWorkers int
	}{
		{name: "opt out", noSeed: "YES", wantSkip: true, wantWorkers: tools.CPUCount()},
		{name: "literal match only", noSeed: "yes", wantSkip: false, wantWorkers: tools.CPUCount()},
		{name: "explicit workers", numCore: "4", wantWorkers: 4},
		{name: "invalid workers fall back", numCore: "many", wantWorkers: tools.CPUCount()},
		{name: "non-positive workers fall back", numCore: "0", wantWorkers: tools.CPUCount()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MPBOOT_OPTS_FILE", "")
			t.Setenv("MAPPROXY_CONFIG_DIR", t.TempDir())
			t.Setenv(EnvNoSeed, tt.noSeed)
			t.Setenv(EnvSeedNumCore, tt.numCore)

			b, err := NewBootstrap()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSkip, b.Seeding.Skip)
			assert.Equal(t, tt.wantWorkers, b.Seeding.Concurrency)
		})
	}
}

func TestNewBootstrap_OptsFile(t *testing.T) {
	dir := t.TempDir()
	optsPath := filepath.Join(dir, "mpboot.json")

	opts := types.Options{
		ConfigDir: filepath.Join(dir, "conf"),
		UtilBin:   "/opt/mapproxy/bin/mapproxy-util",
	}
	data, err := json.Marshal(opts)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(optsPath, data, 0644))

	t.Setenv("MPBOOT_OPTS_FILE", optsPath)

	b, err := NewBootstrap()
	require.NoError(t, err)

	assert.Equal(t, "/opt/mapproxy/bin/mapproxy-util", b.Options.UtilBin)
	assert.Equal(t, "mapproxy-seed", b.Options.SeedBin, "unset options keep their defaults")
	assert.Equal(t, filepath.Join(dir, "conf", "mapproxy.yaml"), b.Options.MainConfigPath)
}
