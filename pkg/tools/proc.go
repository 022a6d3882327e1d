package tools

import (
	"os"
	"os/exec"
	"runtime"
	"syscall"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/process"
)

// CPUCount returns the number of logical processors on the host. It falls
// back to the Go runtime's view when the host query fails.
func CPUCount() int {
	count, err := cpu.Counts(true)
	if err != nil || count < 1 {
		return runtime.NumCPU()
	}
	return count
}

// PidAlive reports whether the process with the given pid is still running.
func PidAlive(pid int) bool {
	alive, err := process.PidExists(int32(pid))
	if err != nil {
		return false
	}
	return alive
}

// StartDetached starts the given command in its own session with stdout and
// stderr appended to logPath, releases it, and returns its pid. The command
// keeps running after the caller exits or replaces its process image; nobody
// ever waits on it.
func StartDetached(logPath string, name string, args ...string) (pid int, err error) {
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return
	}
	defer logFile.Close()

	cmd := exec.Command(name, args...)
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}

	err = cmd.Start()
	if err != nil {
		return
	}

	pid = cmd.Process.Pid
	err = cmd.Process.Release()
	return
}
