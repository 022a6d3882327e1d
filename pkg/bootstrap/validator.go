package bootstrap

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/lqh2307/mapproxy/pkg/types"
	"gopkg.in/yaml.v3"
)

var layerNamePattern = regexp.MustCompile(`^[A-Za-z0-9_\-\.]+$`)

// LoadMainConfig reads and decodes a main configuration file.
func LoadMainConfig(path string) (config types.MainConfig, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	err = yaml.Unmarshal(data, &config)
	return
}

// LoadSeedingConfig reads and decodes a seeding configuration file.
func LoadSeedingConfig(path string) (config types.SeedingConfig, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	err = yaml.Unmarshal(data, &config)
	return
}

// ValidateMainConfigSyntax checks the structural constraints of a main
// configuration that the schema alone cannot express.
func ValidateMainConfigSyntax(c *types.MainConfig) error {
	var errs []string

	if len(c.Services) == 0 {
		errs = append(errs, "at least one service must be enabled")
	}

	if len(c.Layers) == 0 {
		errs = append(errs, "at least one layer must be defined")
	}

	for _, layer := range c.Layers {
		if !layerNamePattern.MatchString(layer.Name) {
			errs = append(errs, fmt.Sprintf("invalid layer name %q", layer.Name))
		}
		if len(layer.Sources) == 0 {
			errs = append(errs, fmt.Sprintf("layer %q has no sources", layer.Name))
			continue
		}
		for _, src := range layer.Sources {
			if _, ok := c.Sources[src]; ok {
				continue
			}
			if _, ok := c.Caches[src]; ok {
				continue
			}
			errs = append(errs, fmt.Sprintf("layer %q references unknown source %q", layer.Name, src))
		}
	}

	for name, source := range c.Sources {
		if strings.TrimSpace(source.Type) == "" {
			errs = append(errs, fmt.Sprintf("source %q has no type", name))
		}
	}

	for name, cache := range c.Caches {
		if len(cache.Sources) == 0 {
			errs = append(errs, fmt.Sprintf("cache %q has no sources", name))
			continue
		}
		for _, src := range cache.Sources {
			if _, ok := c.Sources[src]; !ok {
				errs = append(errs, fmt.Sprintf("cache %q references unknown source %q", name, src))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n - %s", strings.Join(errs, "\n - "))
	}

	return nil
}

// ValidateSeedingConfigSyntax checks the structural constraints of a seeding
// configuration.
func ValidateSeedingConfigSyntax(c *types.SeedingConfig) error {
	var errs []string

	if len(c.Seeds) == 0 {
		errs = append(errs, "at least one seed task must be defined")
	}

	for name, task := range c.Seeds {
		if len(task.Caches) == 0 {
			errs = append(errs, fmt.Sprintf("seed task %q has no caches", name))
		}
		for _, coverage := range task.Coverages {
			if _, ok := c.Coverages[coverage]; !ok {
				errs = append(errs, fmt.Sprintf("seed task %q references unknown coverage %q", name, coverage))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid seeding configuration:\n - %s", strings.Join(errs, "\n - "))
	}

	return nil
}
