package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lqh2307/mapproxy/pkg/bootstrap"
	"github.com/lqh2307/mapproxy/pkg/logger"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func NewWaitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wait",
		Short: "Wait until the MapProxy server answers HTTP requests",
		Long: `Wait until the MapProxy server answers HTTP requests.

Useful as an init-container or compose healthcheck step: mpboot polls the
given URL until it responds, then exits 0. A timeout exits non-zero.`,
		RunE: RunWait,
	}
	cmd.Flags().StringP("url", "u", "http://localhost:8080/demo/", "URL to probe")
	cmd.Flags().DurationP("timeout", "t", 60*time.Second, "Give up after this long")
	cmd.Flags().Duration("interval", time.Second, "Delay between probes")

	return cmd
}

func RunWait(cmd *cobra.Command, args []string) (err error) {
	url, _ := cmd.Flags().GetString("url")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	interval, _ := cmd.Flags().GetDuration("interval")

	b, err := bootstrap.NewBootstrap()
	if err != nil {
		return err
	}

	var cancel context.CancelFunc
	b.Ctx, cancel = context.WithTimeout(b.Ctx, timeout)
	defer cancel()

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(fmt.Sprintf("Waiting for %s", url)),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionOnCompletion(func() { fmt.Fprint(os.Stderr, "\n") }),
	)

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}()

	err = b.WaitReady(url, interval)
	close(done)
	_ = bar.Finish()
	if err != nil {
		return err
	}

	logger.Println("Server is ready at", url)
	return nil
}
