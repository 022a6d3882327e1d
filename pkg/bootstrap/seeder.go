package bootstrap

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lqh2307/mapproxy/pkg/types"
)

// SeedCommand returns the argument vector for one seeding invocation:
// `<seed-bin> -f <main-config> -s <seed-config> -c <concurrency>`.
func (b *Bootstrap) SeedCommand(concurrency int) (name string, args []string) {
	name = b.Options.SeedBin
	args = []string{
		"-f", b.Options.MainConfigPath,
		"-s", b.Options.SeedConfigPath,
		"-c", strconv.Itoa(concurrency),
	}
	return
}

// RunSeedForeground runs one seeding pass and waits for it, forwarding the
// tool's own output. Used by the on-demand and scheduled seed commands, not
// by the bootstrap flow.
func (b *Bootstrap) RunSeedForeground(concurrency int) error {
	if concurrency < 1 {
		concurrency = b.Seeding.Concurrency
	}

	name, args := b.SeedCommand(concurrency)
	if err := b.Runner.Run(name, args...); err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}

func (b *Bootstrap) newSeedRun(pid int) types.SeedRun {
	return types.SeedRun{
		Id:          uuid.New().String(),
		Pid:         pid,
		Concurrency: b.Seeding.Concurrency,
		MainConfig:  b.Options.MainConfigPath,
		SeedConfig:  b.Options.SeedConfigPath,
		LogPath:     b.Options.SeedLogPath,
		Timestamp:   time.Now(),
	}
}

func (b *Bootstrap) recordSeedRun(run types.SeedRun) error {
	store, err := NewStore(b.Options.StorePath)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.RecordSeedRun(run)
}
