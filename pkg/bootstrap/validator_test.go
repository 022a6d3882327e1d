package bootstrap

import (
	"testing"

	"github.com/lqh2307/mapproxy/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMainConfig() types.MainConfig {
	return types.MainConfig{
		Services: map[string]interface{}{"demo": nil, "wms": nil},
		Layers: []types.Layer{
			{Name: "osm", Title: "OSM", Sources: []string{"osm_cache"}},
		},
		Sources: map[string]types.Source{
			"osm_wms": {Type: "wms", Req: map[string]interface{}{"url": "http://example/service?"}},
		},
		Caches: map[string]types.Cache{
			"osm_cache": {Sources: []string{"osm_wms"}, Grids: []string{"webmercator"}},
		},
	}
}

func TestValidateMainConfigSyntax(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *types.MainConfig)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *types.MainConfig) {},
		},
		{
			name:    "no services",
			mutate:  func(c *types.MainConfig) { c.Services = nil },
			wantErr: "at least one service",
		},
		{
			name:    "no layers",
			mutate:  func(c *types.MainConfig) { c.Layers = nil },
			wantErr: "at least one layer",
		},
		{
			name: "layer without sources",
			mutate: func(c *types.MainConfig) {
				c.Layers[0].Sources = nil
			},
			wantErr: `layer "osm" has no sources`,
		},
		{
			name: "layer references unknown source",
			mutate: func(c *types.MainConfig) {
				c.Layers[0].Sources = []string{"nope"}
			},
			wantErr: `references unknown source "nope"`,
		},
		{
			name: "bad layer name",
			mutate: func(c *types.MainConfig) {
				c.Layers[0].Name = "bad name!"
				c.Layers[0].Sources = []string{"osm_cache"}
			},
			wantErr: "invalid layer name",
		},
		{
			name: "source without type",
			mutate: func(c *types.MainConfig) {
				c.Sources["osm_wms"] = types.Source{}
			},
			wantErr: `source "osm_wms" has no type`,
		},
		{
			name: "cache without sources",
			mutate: func(c *types.MainConfig) {
				c.Caches["osm_cache"] = types.Cache{}
			},
			wantErr: `cache "osm_cache" has no sources`,
		},
		{
			name: "cache references unknown source",
			mutate: func(c *types.MainConfig) {
				c.Caches["osm_cache"] = types.Cache{Sources: []string{"nope"}}
			},
			wantErr: `cache "osm_cache" references unknown source "nope"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validMainConfig()
			tt.mutate(&config)

			err := ValidateMainConfigSyntax(&config)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateSeedingConfigSyntax(t *testing.T) {
	valid := types.SeedingConfig{
		Seeds: map[string]types.SeedTask{
			"base": {Caches: []string{"osm_cache"}, Coverages: []string{"world"}},
		},
		Coverages: map[string]interface{}{"world": nil},
	}
	require.NoError(t, ValidateSeedingConfigSyntax(&valid))

	empty := types.SeedingConfig{}
	err := ValidateSeedingConfigSyntax(&empty)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one seed task")

	unknownCoverage := types.SeedingConfig{
		Seeds: map[string]types.SeedTask{
			"base": {Caches: []string{"osm_cache"}, Coverages: []string{"nope"}},
		},
	}
	err = ValidateSeedingConfigSyntax(&unknownCoverage)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown coverage "nope"`)

	noCaches := types.SeedingConfig{
		Seeds: map[string]types.SeedTask{"base": {}},
	}
	err = ValidateSeedingConfigSyntax(&noCaches)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no caches")
}
