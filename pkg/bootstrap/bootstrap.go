package bootstrap

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/lqh2307/mapproxy/pkg/tools"
	"github.com/lqh2307/mapproxy/pkg/types"
)

// Environment variables recognized by the seeding gate.
const (
	EnvNoSeed      = "NO_SEED"
	EnvSeedNumCore = "SEED_NUM_CORE"
)

type Bootstrap struct {
	Options types.Options
	Seeding types.SeedOptions
	Runner  tools.CommandRunner
	Ctx     context.Context
}

// NewBootstrap creates a new mpboot instance.
func NewBootstrap() (b Bootstrap, err error) {
	b.Options, err = getOptions()
	if err != nil {
		return
	}

	b.Seeding = getSeedOptions()
	b.Runner = tools.ExecRunner{}
	b.Ctx = context.Background()
	return
}

// getOptions reads mpboot configuration options following a defined
// priority order:
//  1. If the MPBOOT_OPTS_FILE environment variable is set, the configuration
//     file path is extracted from this variable and used as the sole source.
//  2. Otherwise, configuration files are searched in two predefined
//     locations, in order:
//     a. In the working directory: "./mpboot.json".
//     b. In the system directory: "/etc/mapproxy/mpboot.json".
//  3. If any configuration file is found, options are loaded from that file.
//  4. If no configuration file is found, or an error occurs during reading,
//     defaults are used. The configuration directory defaults to "config"
//     under the working directory and can be overridden with the
//     MAPPROXY_CONFIG_DIR environment variable.
//  5. Derived artifact paths are then computed and the necessary
//     directories created, if they don't exist.
func getOptions() (options types.Options, err error) {
	var confPaths []string

	if os.Getenv("MPBOOT_OPTS_FILE") != "" {
		confPaths = append(confPaths, os.Getenv("MPBOOT_OPTS_FILE"))
	} else {
		confPaths = append(confPaths, "mpboot.json")
		confPaths = append(confPaths, filepath.Join("/", "etc", "mapproxy", "mpboot.json"))
	}

	found := false
	for _, confPath := range confPaths {
		if _, err = os.Stat(confPath); err == nil {
			options, err = readOptions(confPath)
			if err != nil {
				return
			}
			found = true
			break
		}
	}

	if !found {
		configDir := "config"
		if os.Getenv("MAPPROXY_CONFIG_DIR") != "" {
			configDir = os.Getenv("MAPPROXY_CONFIG_DIR")
		}
		options = types.Options{
			ConfigDir: configDir,
		}
	}
	err = nil

	applyDefaults(&options)

	// Mounted volumes are often reached through symlinks
	options.ConfigDir = tools.ResolvePath(options.ConfigDir)

	// Derived artifact paths are always computed from the config dir
	options.MainConfigPath = filepath.Join(options.ConfigDir, options.MainConfigName)
	options.SeedConfigPath = filepath.Join(options.ConfigDir, options.SeedConfigName)
	options.LogConfigPath = filepath.Join(options.ConfigDir, options.LogConfigName)

	err = tools.EnsureDir(options.StorePath)
	if err != nil {
		return
	}

	return
}

// applyDefaults fills in every option the configuration file left empty.
func applyDefaults(options *types.Options) {
	if options.ConfigDir == "" {
		options.ConfigDir = "config"
	}
	if options.MainConfigName == "" {
		options.MainConfigName = "mapproxy.yaml"
	}
	if options.SeedConfigName == "" {
		options.SeedConfigName = "seed.yaml"
	}
	if options.LogConfigName == "" {
		options.LogConfigName = "log.ini"
	}
	if options.UtilBin == "" {
		options.UtilBin = "mapproxy-util"
	}
	if options.SeedBin == "" {
		options.SeedBin = "mapproxy-seed"
	}
	if options.StorePath == "" {
		options.StorePath = filepath.Join(options.ConfigDir, ".mpboot")
	}
	if options.SeedLogPath == "" {
		options.SeedLogPath = filepath.Join(options.ConfigDir, "seed.log")
	}
}

// getSeedOptions populates the seeding gate from the environment, once.
// NO_SEED must carry the literal value "YES" to suppress seeding; any other
// value leaves it active. SEED_NUM_CORE values that do not parse as a
// positive integer fall back to the detected processor count.
func getSeedOptions() (seeding types.SeedOptions) {
	seeding.Skip = os.Getenv(EnvNoSeed) == "YES"

	seeding.Concurrency = tools.CPUCount()
	if raw := os.Getenv(EnvSeedNumCore); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			seeding.Concurrency = n
		}
	}

	return
}

// readOptions reads the options from the given json file.
func readOptions(path string) (options types.Options, err error) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	err = json.NewDecoder(file).Decode(&options)
	return
}
