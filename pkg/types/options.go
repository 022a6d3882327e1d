/*
* Copyright (c) 2025 FABRICATORS S.R.L.
* Licensed under the Fabricators Public Access License (FPAL) v1.0
* See https://github.com/fabricatorsltd/FPAL for details.
 */
package types

// Options is the struct that represents the options for the Bootstrap struct.
type Options struct {
	// ConfigDir is the path to the directory where the MapProxy
	// configuration artifacts live. In a container deployment this is
	// usually a mounted volume, so artifacts survive restarts.
	ConfigDir string `json:"config_dir,omitempty"`

	// MainConfigName is the file name of the main MapProxy configuration
	// inside ConfigDir.
	MainConfigName string `json:"main_config_name,omitempty"`

	// SeedConfigName is the file name of the seeding configuration inside
	// ConfigDir. The main and seed configurations are a pair: seeding is
	// only possible when both are present.
	SeedConfigName string `json:"seed_config_name,omitempty"`

	// LogConfigName is the file name of the logging configuration inside
	// ConfigDir, consumed by the wrapped server's logging subsystem.
	LogConfigName string `json:"log_config_name,omitempty"`

	// UtilBin is the name (or path) of the external template-creation
	// tool, invoked as `<util> create -t <template> <target>`.
	UtilBin string `json:"util_bin,omitempty"`

	// SeedBin is the name (or path) of the external seeding tool, invoked
	// as `<seed> -f <main-config> -s <seed-config> -c <concurrency>`.
	SeedBin string `json:"seed_bin,omitempty"`

	// StorePath is the path to the directory where the sqlite database
	// with recorded seed runs will be stored.
	StorePath string `json:"store_path,omitempty"`

	// SeedLogPath is the file the detached seeding process writes its
	// output to.
	SeedLogPath string `json:"seed_log_path,omitempty"`

	// Following paths are not meant to be set by the user, they are set
	// by mpboot during its initialization.
	MainConfigPath string `json:"main_config_path,omitempty"`
	SeedConfigPath string `json:"seed_config_path,omitempty"`
	LogConfigPath  string `json:"log_config_path,omitempty"`
}
