package scheduler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-ps"
)

// errAlreadyRunning indicates another scheduler instance owns the terminal.
var errAlreadyRunning = errors.New("another alarm-scheduler instance is already running")

// ensureSingleInstance scans the process table and refuses to start when a
// process with this executable's name is already running.
func ensureSingleInstance() error {
	executable, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}

	processes, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}

	if pid, found := findOtherInstance(processes, filepath.Base(executable), os.Getpid()); found {
		return fmt.Errorf("%w (pid %d)", errAlreadyRunning, pid)
	}

	return nil
}

// findOtherInstance reports the pid of a process with the given executable
// name other than selfPID, if one exists.
func findOtherInstance(processes []ps.Process, executable string, selfPID int) (int, bool) {
	for _, process := range processes {
		if process.Pid() == selfPID {
			continue
		}

		if process.Executable() == executable {
			return process.Pid(), true
		}
	}

	return 0, false
}
