// Package shell wraps the handful of external process commands used to
// discover, launch, and terminate the menubar application.
package shell

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
)

// ErrUnsupported is returned on platforms without the menubar application's
// process tooling.
var ErrUnsupported = errors.New("platform not supported")

var darwin = runtime.GOOS == "darwin"

// Pgrep returns the pids of running processes whose name matches exactly.
// No matches is not an error.
func Pgrep(name string) ([]int, error) {
	if !darwin {
		return nil, ErrUnsupported
	}
	out, err := exec.Command("pgrep", "-x", name).Output()
	if err != nil {
		// pgrep exits 1 when nothing matches.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return nil, nil
		}
		return nil, fmt.Errorf("pgrep %s: %w", name, err)
	}
	var pids []int
	for _, field := range strings.Fields(string(out)) {
		pid, convErr := strconv.Atoi(field)
		if convErr == nil {
			pids = append(pids, pid)
		}
	}
	return pids, nil
}

// Open launches a macOS application, optionally as a new instance, with any
// extra KEY=VALUE environment entries, and returns the newest matching pid.
func Open(app string, newInstance bool, env ...string) (int, error) {
	if !darwin {
		return 0, ErrUnsupported
	}
	args := []string{"-a", app}
	if newInstance {
		args = append([]string{"-n"}, args...)
	}
	cmd := exec.Command("open", args...)
	cmd.Env = append(os.Environ(), env...)
	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("open %s: %w", app, err)
	}
	pids, err := Pgrep(app)
	if err != nil {
		return 0, err
	}
	if len(pids) == 0 {
		return 0, fmt.Errorf("open %s: no running process found", app)
	}
	return pids[len(pids)-1], nil
}

// Kill sends SIGHUP to a process.
func Kill(pid int) error {
	if !darwin {
		return ErrUnsupported
	}
	return exec.Command("kill", "-HUP", strconv.Itoa(pid)).Run()
}

// Killall terminates every process with the given name. Missing processes
// are not an error.
func Killall(name string) error {
	if !darwin {
		return ErrUnsupported
	}
	err := exec.Command("killall", name).Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil
	}
	return err
}
