package types

import "time"

// SeedOptions holds the environment-derived seeding policy. It is populated
// once at startup and never re-read.
type SeedOptions struct {
	// Skip suppresses seeding entirely. Set when the NO_SEED environment
	// variable carries the literal value "YES".
	Skip bool `json:"skip"`

	// Concurrency is the number of parallel seeding workers, from the
	// SEED_NUM_CORE environment variable, defaulting to the detected
	// processor count.
	Concurrency int `json:"concurrency"`
}

// SeedRun is a record of a launched seeding process. Runs are recorded when
// the process is spawned; mpboot never waits on them, so completion state is
// resolved later by checking whether the pid is still alive.
type SeedRun struct {
	Id          string    `json:"id"`
	Pid         int       `json:"pid"`
	Concurrency int       `json:"concurrency"`
	MainConfig  string    `json:"main_config"`
	SeedConfig  string    `json:"seed_config"`
	LogPath     string    `json:"log_path"`
	Timestamp   time.Time `json:"timestamp"`
}
