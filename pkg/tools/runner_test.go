package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner(t *testing.T) {
	runner := ExecRunner{}

	require.NoError(t, runner.Run("true"))
	require.Error(t, runner.Run("false"))
}

func TestExitCode(t *testing.T) {
	runner := ExecRunner{}

	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 3, ExitCode(runner.Run("sh", "-c", "exit 3")))
	assert.Equal(t, 127, ExitCode(runner.Run("definitely-not-a-binary")))
}
