package cdhit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattsolo1/grove-cdhit/pkg/exec"
)

// ErrUnknownCommand is returned when a command outside the CD-HIT family is
// requested. No locator or process call is made in that case.
var ErrUnknownCommand = errors.New("unknown cd-hit command")

// RunError reports a CD-HIT process that could not be started, exited
// non-zero or was killed. ExitCode is -1 unless the process exited on its
// own; Started tells a killed process apart from one that never ran.
type RunError struct {
	Command  CommandName
	Args     []string
	ExitCode int
	Started  bool
	Err      error
}

func (e *RunError) Error() string {
	if !e.Started {
		return fmt.Sprintf("failed to run %s (%s): %v", e.Command, strings.Join(e.Args, " "), e.Err)
	}
	if e.ExitCode < 0 {
		return fmt.Sprintf("%s was terminated (%s): %v", e.Command, strings.Join(e.Args, " "), e.Err)
	}
	return fmt.Sprintf("%s exited with code %d (%s): %v", e.Command, e.ExitCode, strings.Join(e.Args, " "), e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

func newRunError(command CommandName, args []string, err error) *RunError {
	exitCode := -1
	started := false
	var execErr *exec.ExecError
	if errors.As(err, &execErr) {
		exitCode = execErr.ExitCode
		started = execErr.Started
	}
	return &RunError{
		Command:  command,
		Args:     args,
		ExitCode: exitCode,
		Started:  started,
		Err:      err,
	}
}
