package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lqh2307/mapproxy/pkg/types"
	"github.com/spf13/cobra"
)

// NewInitCommand creates the `init` command for scaffolding an mpboot.json
// options file.
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize an mpboot.json options file in the current directory",
		RunE:  initRun,
	}

	cmd.Flags().StringP("config-dir", "C", "config", "Directory holding the MapProxy configuration artifacts")
	cmd.Flags().String("util-bin", "", "Path to the template-creation tool")
	cmd.Flags().String("seed-bin", "", "Path to the seeding tool")
	cmd.Flags().String("seed-log", "", "File the detached seeding process logs to")

	return cmd
}

// initRun writes mpboot.json based on the provided flags. Only explicitly
// given options are written; everything else stays a runtime default.
func initRun(cmd *cobra.Command, args []string) error {
	configDir, _ := cmd.Flags().GetString("config-dir")
	utilBin, _ := cmd.Flags().GetString("util-bin")
	seedBin, _ := cmd.Flags().GetString("seed-bin")
	seedLog, _ := cmd.Flags().GetString("seed-log")

	options := types.Options{
		ConfigDir:   configDir,
		UtilBin:     utilBin,
		SeedBin:     seedBin,
		SeedLogPath: seedLog,
	}

	if _, err := os.Stat("mpboot.json"); err == nil {
		return fmt.Errorf("mpboot.json already exists, refusing to overwrite")
	}

	data, err := json.MarshalIndent(options, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize options: %w", err)
	}
	if err := os.WriteFile("mpboot.json", data, 0644); err != nil {
		return fmt.Errorf("failed to write mpboot.json: %w", err)
	}

	fmt.Println("Created mpboot.json successfully.")
	return nil
}
