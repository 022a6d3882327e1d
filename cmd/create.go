package cmd

import (
	"fmt"
	"os/exec"

	"github.com/lqh2307/mapproxy/pkg/bootstrap"
	"github.com/lqh2307/mapproxy/pkg/logger"
	"github.com/spf13/cobra"
)

func NewCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <target>",
		Short: "Create a configuration artifact from a template",
		Long: `Create a configuration artifact from a template.

By default the external template tool is invoked. With --builtin, or when the
tool is not installed and --builtin is allowed, mpboot renders its own
built-in templates instead. Existing files are never overwritten.`,
		Args: cobra.ExactArgs(1),
		RunE: RunCreate,
	}
	cmd.Flags().StringP("template", "t", bootstrap.TemplateBaseConfig, "Template to render (base-config, log-ini)")
	cmd.Flags().Bool("builtin", false, "Render the built-in template instead of invoking the external tool")

	return cmd
}

func createError(iErr error) (err error) {
	err = fmt.Errorf("an error occurred while creating the configuration: %s", iErr)
	return
}

func RunCreate(cmd *cobra.Command, args []string) (err error) {
	target := args[0]

	template, _ := cmd.Flags().GetString("template")
	builtin, _ := cmd.Flags().GetBool("builtin")

	b, err := bootstrap.NewBootstrap()
	if err != nil {
		return createError(err)
	}

	if !builtin {
		if _, lookErr := exec.LookPath(b.Options.UtilBin); lookErr == nil {
			err = b.Runner.Run(b.Options.UtilBin, "create", "-t", template, target)
			if err != nil {
				return createError(err)
			}
			return nil
		}
		logger.Warnf("%s not found, falling back to built-in templates", b.Options.UtilBin)
	}

	err = bootstrap.WriteBuiltinTemplate(template, target)
	if err != nil {
		return createError(err)
	}

	logger.Println("Configuration created at", target)
	return nil
}
