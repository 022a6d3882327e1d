package cmd

/*
mpboot bootstrap [--] <command> [args...]
*/

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/lqh2307/mapproxy/pkg/bootstrap"
	"github.com/spf13/cobra"
)

func NewBootstrapCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bootstrap <command> [args...]",
		Short: "Prepare a MapProxy container and hand off to the given command",
		Long: `Prepare a MapProxy container, then hand off to the given command.

Missing configuration artifacts are generated from templates, existing ones
are left untouched. Unless NO_SEED=YES is set, tile seeding is started in the
background. The supplied command then replaces the mpboot process, so it
receives signals directly and its exit code becomes the container's.`,
		Args: cobra.MinimumNArgs(1),
		RunE: RunBootstrap,
	}
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func bootstrapError(iErr error) (err error) {
	err = fmt.Errorf("an error occurred while bootstrapping the container: %s", iErr)
	return
}

func RunBootstrap(cmd *cobra.Command, args []string) (err error) {
	b, err := bootstrap.NewBootstrap()
	if err != nil {
		return bootstrapError(err)
	}

	err = b.Up()
	if err != nil {
		return bootstrapError(err)
	}

	return execHandoff(args)
}

// execHandoff replaces the current process image with the given command.
// Spawn-and-wait would leave mpboot sitting between the init system and the
// service, so signals are delivered to the service only via exec.
func execHandoff(argv []string) error {
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return bootstrapError(err)
	}

	err = syscall.Exec(path, argv, os.Environ())
	// Exec only returns on failure.
	return bootstrapError(err)
}
