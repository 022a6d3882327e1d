package tools

import (
	"errors"
	"os"
	"os/exec"
)

// CommandRunner abstracts execution of the external MapProxy tools so that
// orchestration logic can be exercised without the real binaries installed.
type CommandRunner interface {
	Run(name string, args ...string) error
}

// ExecRunner executes commands on the local host, forwarding their output to
// the mpboot process streams so tool diagnostics stay visible in container
// logs.
type ExecRunner struct{}

func (r ExecRunner) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// ExitCode extracts the process exit code from a Run error. Commands that
// could not be started at all report 127, following shell conventions.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return 127
	}

	return 1
}
