package cmd

import (
	"fmt"
	"os"

	"github.com/lqh2307/mapproxy/pkg/bootstrap"
	"github.com/lqh2307/mapproxy/pkg/logger"
	"github.com/lqh2307/mapproxy/pkg/tools"
	"github.com/spf13/cobra"
)

func NewResetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove the generated configuration artifacts",
		Long: `Remove the generated configuration artifacts.

The next bootstrap regenerates them from templates. Tile caches and the
seed-run history are left untouched.`,
		Args: cobra.NoArgs,
		RunE: RunReset,
	}
	cmd.Flags().BoolP("force", "f", false, "Do not ask for confirmation")

	return cmd
}

func RunReset(cmd *cobra.Command, args []string) (err error) {
	force, _ := cmd.Flags().GetBool("force")

	b, err := bootstrap.NewBootstrap()
	if err != nil {
		return err
	}

	if !force && !tools.ConfirmOperation(
		fmt.Sprintf("Remove the configuration artifacts in %s?", b.Options.ConfigDir)) {
		return nil
	}

	for _, path := range []string{
		b.Options.MainConfigPath,
		b.Options.SeedConfigPath,
		b.Options.LogConfigPath,
	} {
		if !tools.Exists(path) {
			continue
		}
		if err = os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
		logger.Println("Removed", path)
	}

	return nil
}
