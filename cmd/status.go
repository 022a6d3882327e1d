package cmd

import (
	"fmt"
	"strconv"

	"github.com/lqh2307/mapproxy/pkg/bootstrap"
	"github.com/lqh2307/mapproxy/pkg/tools"
	"github.com/spf13/cobra"
)

func NewStatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "List recorded seed runs",
		Long:  "List recorded seed runs and whether their process is still alive.",
		RunE:  RunStatus,
	}
	return cmd
}

func RunStatus(cmd *cobra.Command, args []string) (err error) {
	b, err := bootstrap.NewBootstrap()
	if err != nil {
		return err
	}

	store, err := bootstrap.NewStore(b.Options.StorePath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.GetSeedRuns()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No seed runs recorded.")
		return nil
	}

	data := [][]string{}
	for _, run := range runs {
		state := "finished"
		if tools.PidAlive(run.Pid) {
			state = "running"
		}
		data = append(data, []string{
			shortId(run.Id),
			strconv.Itoa(run.Pid),
			strconv.Itoa(run.Concurrency),
			state,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.LogPath,
		})
	}

	tools.ShowTable([]string{"Id", "Pid", "Workers", "State", "Started", "Log"}, data)
	return nil
}

func shortId(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
