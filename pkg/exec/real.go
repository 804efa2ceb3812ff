package exec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// stderrTail bounds how much of the child's stderr is kept for error messages.
const stderrTail = 4096

// ExecError wraps an execution error with the exit code and the tail of
// the command's stderr. Started is false when the process could not be
// started; a started process killed by a signal has ExitCode -1.
type ExecError struct {
	Err      error
	ExitCode int
	Started  bool
	Output   string
}

func (e *ExecError) Error() string {
	if e.Output == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Output)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// RealCommandExecutor implements CommandExecutor using the actual os/exec package.
// Child output is streamed to Stdout and Stderr; nil writers default to the
// parent's stdout and stderr.
type RealCommandExecutor struct {
	Stdout io.Writer
	Stderr io.Writer
}

// LookPath searches for an executable named file in the directories
// named by the PATH environment variable.
func (e *RealCommandExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Execute runs the command with the given name and arguments.
// It waits for the command to complete and returns an *ExecError when the
// process cannot be started or exits non-zero.
func (e *RealCommandExecutor) Execute(name string, arg ...string) error {
	stdout, stderr := e.Stdout, e.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	tail := &tailBuffer{limit: stderrTail}
	cmd := exec.Command(name, arg...)
	cmd.Stdout = stdout
	cmd.Stderr = io.MultiWriter(stderr, tail)

	err := cmd.Run()
	if err == nil {
		return nil
	}

	exitCode := -1
	started := false
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
		started = true
	}
	return &ExecError{
		Err:      err,
		ExitCode: exitCode,
		Started:  started,
		Output:   strings.TrimSpace(tail.String()),
	}
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	buf   bytes.Buffer
	limit int
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	n := len(p)
	t.buf.Write(p)
	if over := t.buf.Len() - t.limit; over > 0 {
		t.buf.Next(over)
	}
	return n, nil
}

func (t *tailBuffer) String() string {
	return t.buf.String()
}
