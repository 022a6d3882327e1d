package bootstrap

import (
	"fmt"

	"github.com/lqh2307/mapproxy/pkg/logger"
	"github.com/lqh2307/mapproxy/pkg/tools"
	"github.com/lqh2307/mapproxy/pkg/types"
)

// Template names understood by the external template-creation tool.
const (
	TemplateBaseConfig = "base-config"
	TemplateLogIni     = "log-ini"
)

// EnsureBaseConfig guarantees the main and seed configuration pair exists.
// When either file is missing the template tool regenerates the whole
// configuration directory; files already present are never overwritten, so
// a restart with a persisted volume is a no-op.
func (b *Bootstrap) EnsureBaseConfig() (created bool, err error) {
	if tools.Exists(b.Options.MainConfigPath) && tools.Exists(b.Options.SeedConfigPath) {
		logger.Debugf("configuration pair already present in %s", b.Options.ConfigDir)
		return
	}

	logger.Printf("generating default configuration in %s", b.Options.ConfigDir)
	err = b.Runner.Run(b.Options.UtilBin, "create", "-t", TemplateBaseConfig, b.Options.ConfigDir)
	if err != nil {
		err = fmt.Errorf("template generation for %s failed: %w", TemplateBaseConfig, err)
		return
	}

	created = true
	return
}

// EnsureLogConfig guarantees the logging configuration exists, generating it
// from its template when absent.
func (b *Bootstrap) EnsureLogConfig() (created bool, err error) {
	if tools.Exists(b.Options.LogConfigPath) {
		logger.Debugf("logging configuration already present at %s", b.Options.LogConfigPath)
		return
	}

	logger.Printf("generating logging configuration at %s", b.Options.LogConfigPath)
	err = b.Runner.Run(b.Options.UtilBin, "create", "-t", TemplateLogIni, b.Options.LogConfigPath)
	if err != nil {
		err = fmt.Errorf("template generation for %s failed: %w", TemplateLogIni, err)
		return
	}

	created = true
	return
}

// Up runs the whole bootstrap sequence short of the final process-image
// replacement: it ensures all configuration artifacts exist and, unless the
// gate says otherwise, launches the seeding process in the background.
//
// Template generation failures are fatal and abort the container start. A
// seeding launch failure is logged and swallowed: the seeding process is
// fire and forget, and must never keep the main service from starting.
func (b *Bootstrap) Up() (err error) {
	_, err = b.EnsureBaseConfig()
	if err != nil {
		return
	}

	_, err = b.EnsureLogConfig()
	if err != nil {
		return
	}

	if b.Seeding.Skip {
		logger.Printf("seeding disabled via %s", EnvNoSeed)
		return
	}

	run, seedErr := b.LaunchSeed()
	if seedErr != nil {
		logger.Warnf("seeding not started: %v", seedErr)
		return nil
	}

	logger.WithField("pid", run.Pid).
		Printf("seeding started with concurrency %d, log at %s", run.Concurrency, run.LogPath)
	return
}

// LaunchSeed spawns the seeding tool detached, in its own session, and
// records the run in the store. The seeding pair must be present; the caller
// decides whether a refusal matters.
func (b *Bootstrap) LaunchSeed() (run types.SeedRun, err error) {
	if !tools.Exists(b.Options.MainConfigPath) || !tools.Exists(b.Options.SeedConfigPath) {
		err = fmt.Errorf("configuration pair incomplete in %s, refusing to seed", b.Options.ConfigDir)
		return
	}

	name, args := b.SeedCommand(b.Seeding.Concurrency)
	pid, err := tools.StartDetached(b.Options.SeedLogPath, name, args...)
	if err != nil {
		err = fmt.Errorf("starting %s: %w", name, err)
		return
	}

	run = b.newSeedRun(pid)

	// A failed record is not worth losing the already-running seed over.
	if storeErr := b.recordSeedRun(run); storeErr != nil {
		logger.Warnf("seed run %s not recorded: %v", run.Id, storeErr)
	}

	return
}
