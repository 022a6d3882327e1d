package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/lqh2307/mapproxy/pkg/bootstrap"
	"github.com/lqh2307/mapproxy/pkg/tools"
	"github.com/spf13/cobra"
)

func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective mpboot options and seeding gate",
		Args:  cobra.NoArgs,
		RunE:  RunConfig,
	}
	cmd.Flags().BoolP("json", "j", false, "Print output in JSON format")

	return cmd
}

func RunConfig(cmd *cobra.Command, args []string) (err error) {
	jsonFlag, _ := cmd.Flags().GetBool("json")

	b, err := bootstrap.NewBootstrap()
	if err != nil {
		return err
	}

	if jsonFlag {
		out, err := json.MarshalIndent(map[string]interface{}{
			"options": b.Options,
			"seeding": b.Seeding,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println("Options:")
	tools.PrintStructKeyVal(b.Options)
	fmt.Println("Seeding gate:")
	fmt.Printf("  - skip: %t\n", b.Seeding.Skip)
	fmt.Printf("  - concurrency: %d\n", b.Seeding.Concurrency)
	return nil
}
