package tools

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCPUCount(t *testing.T) {
	assert.Greater(t, CPUCount(), 0)
}

func TestPidAlive(t *testing.T) {
	assert.True(t, PidAlive(os.Getpid()))
	assert.False(t, PidAlive(1<<30))
}

func TestStartDetached(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "out.log")
	marker := filepath.Join(dir, "marker")

	script := filepath.Join(dir, "tool.sh")
	require.NoError(t, os.WriteFile(script,
		[]byte("#!/bin/sh\necho started\ntouch \"$1\"\n"), 0755))

	pid, err := StartDetached(logPath, script, marker)
	require.NoError(t, err)
	assert.Greater(t, pid, 0)

	assert.Eventually(t, func() bool {
		_, err := os.Stat(marker)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond, "detached process should run to completion on its own")

	assert.Eventually(t, func() bool {
		data, err := os.ReadFile(logPath)
		return err == nil && string(data) == "started\n"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestStartDetached_BadLogPath(t *testing.T) {
	_, err := StartDetached(filepath.Join(t.TempDir(), "missing", "out.log"), "true")
	require.Error(t, err)
}
