package types

// MainConfig mirrors the subset of a MapProxy configuration that mpboot
// validates. The wrapped server accepts far more than this; unknown sections
// are carried through untouched as free-form maps.
type MainConfig struct {
	Services map[string]interface{} `yaml:"services" json:"services"`
	Layers   []Layer                `yaml:"layers" json:"layers"`
	Sources  map[string]Source      `yaml:"sources" json:"sources"`
	Caches   map[string]Cache       `yaml:"caches" json:"caches,omitempty"`
	Grids    map[string]interface{} `yaml:"grids" json:"grids,omitempty"`
	Globals  map[string]interface{} `yaml:"globals" json:"globals,omitempty"`
}

type Layer struct {
	Name    string   `yaml:"name" json:"name"`
	Title   string   `yaml:"title" json:"title,omitempty"` // non mandatory
	Sources []string `yaml:"sources" json:"sources"`
}

type Source struct {
	Type string                 `yaml:"type" json:"type"`
	Req  map[string]interface{} `yaml:"req" json:"req,omitempty"`   // non mandatory, request parameters for wms-like sources
	Grid string                 `yaml:"grid" json:"grid,omitempty"` // non mandatory, only for tile sources
	URL  string                 `yaml:"url" json:"url,omitempty"`   // non mandatory
}

type Cache struct {
	Sources []string               `yaml:"sources" json:"sources"`
	Grids   []string               `yaml:"grids" json:"grids,omitempty"`
	Cache   map[string]interface{} `yaml:"cache" json:"cache,omitempty"` // non mandatory, backend selection
}

// SeedingConfig mirrors the subset of a seeding configuration that mpboot
// validates.
type SeedingConfig struct {
	Seeds     map[string]SeedTask    `yaml:"seeds" json:"seeds"`
	Coverages map[string]interface{} `yaml:"coverages" json:"coverages,omitempty"`
	Cleanups  map[string]interface{} `yaml:"cleanups" json:"cleanups,omitempty"`
}

type SeedTask struct {
	Caches        []string               `yaml:"caches" json:"caches"`
	Grids         []string               `yaml:"grids" json:"grids,omitempty"`
	Levels        map[string]interface{} `yaml:"levels" json:"levels,omitempty"`
	Coverages     []string               `yaml:"coverages" json:"coverages,omitempty"`
	RefreshBefore map[string]interface{} `yaml:"refresh_before" json:"refresh_before,omitempty"`
}
