package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lqh2307/mapproxy/pkg/bootstrap"
	"github.com/lqh2307/mapproxy/pkg/logger"
	"github.com/lqh2307/mapproxy/pkg/tools"
	"github.com/spf13/cobra"
)

func NewSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Run tile seeding against the current configuration",
		Long: `Run tile seeding against the current configuration.

Runs in the foreground by default. With --detach the seeding process is
started in its own session and mpboot returns immediately; with --schedule
mpboot stays up and re-seeds on the given cron expression.`,
		RunE: RunSeed,
	}
	cmd.Flags().IntP("concurrency", "c", 0, "Number of parallel seeding workers (default: detected core count)")
	cmd.Flags().BoolP("detach", "d", false, "Start seeding in the background and return")
	cmd.Flags().StringP("schedule", "s", "", "Re-seed on a cron schedule (e.g. \"0 3 * * *\")")

	return cmd
}

func seedError(iErr error) (err error) {
	err = fmt.Errorf("an error occurred while seeding: %s", iErr)
	return
}

func RunSeed(cmd *cobra.Command, args []string) (err error) {
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	detach, _ := cmd.Flags().GetBool("detach")
	schedule, _ := cmd.Flags().GetString("schedule")

	b, err := bootstrap.NewBootstrap()
	if err != nil {
		return seedError(err)
	}

	if concurrency > 0 {
		b.Seeding.Concurrency = concurrency
	}

	if schedule != "" {
		return runScheduledSeed(&b, schedule)
	}

	if detach {
		run, err := b.LaunchSeed()
		if err != nil {
			return seedError(err)
		}
		logger.Printf("seeding started with pid %d, log at %s", run.Pid, run.LogPath)
		return nil
	}

	err = b.RunSeedForeground(b.Seeding.Concurrency)
	if err != nil {
		logger.Errorf("seeder exited with code %d", tools.ExitCode(err))
		return seedError(err)
	}

	return nil
}

// runScheduledSeed blocks until interrupted, re-seeding on the given cron
// expression.
func runScheduledSeed(b *bootstrap.Bootstrap, schedule string) error {
	scheduler, err := b.ScheduleSeed(schedule, b.Seeding.Concurrency)
	if err != nil {
		return seedError(err)
	}
	defer scheduler.Stop()

	logger.Printf("re-seeding on schedule %q, waiting", schedule)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Println("Scheduler stopped")
	return nil
}
