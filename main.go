package main

import (
	"fmt"
	"os"

	"github.com/lqh2307/mapproxy/cmd"
	"github.com/spf13/cobra"
)

var version = "0.0.1"

func main() {
	rootCmd := &cobra.Command{
		Use:   "mpboot",
		Short: "bootstrap and seeding orchestrator for MapProxy containers",
		Long:  `mpboot prepares a MapProxy container on start: it generates missing configuration from templates, launches background tile seeding, and hands off to the server process`,
	}

	rootCmd.AddCommand(cmd.NewBootstrapCommand())
	rootCmd.AddCommand(cmd.NewInitCommand())
	rootCmd.AddCommand(cmd.NewCreateCommand())
	rootCmd.AddCommand(cmd.NewSeedCommand())
	rootCmd.AddCommand(cmd.NewStatusCommand())
	rootCmd.AddCommand(cmd.NewConfigCommand())
	rootCmd.AddCommand(cmd.NewResetCommand())
	rootCmd.AddCommand(cmd.NewValidateCommand())
	rootCmd.AddCommand(cmd.NewWaitCommand())
	rootCmd.AddCommand(cmd.NewGenSchemaCommand())

	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
