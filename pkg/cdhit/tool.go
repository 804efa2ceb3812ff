package cdhit

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-cdhit/pkg/exec"
)

// Locator ensures CD-HIT is installed and returns the absolute path of the
// primary cd-hit executable.
type Locator interface {
	InstallAndGetPath() (string, error)
}

// Tool runs CD-HIT commands. It is safe for concurrent use as long as the
// Locator and CommandExecutor are; concurrent runs must not share an output
// path.
type Tool struct {
	locator  Locator
	executor exec.CommandExecutor
	logger   logrus.FieldLogger
}

// NewTool creates a Tool. A nil logger falls back to the logrus standard logger.
func NewTool(locator Locator, executor exec.CommandExecutor, logger logrus.FieldLogger) *Tool {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Tool{
		locator:  locator,
		executor: executor,
		logger:   logger,
	}
}

// Path returns the path of command, a sibling of the located cd-hit binary.
func (t *Tool) Path(command CommandName) (string, error) {
	if err := command.Validate(); err != nil {
		return "", err
	}
	primary, err := t.locator.InstallAndGetPath()
	if err != nil {
		return "", fmt.Errorf("locate cd-hit: %w", err)
	}
	return filepath.Join(filepath.Dir(primary), string(command)), nil
}

// Invocation returns the argv Execute would run, without running it.
func (t *Tool) Invocation(command CommandName, inputPath, outputPath string, options *Options, optionString string) ([]string, error) {
	binary, err := t.Path(command)
	if err != nil {
		return nil, err
	}
	return BuildArgs(binary, inputPath, outputPath, options, optionString)
}

// Execute runs command on inputPath, writing outputPath, and blocks until the
// process exits. A non-zero exit or a failure to start is returned as a
// *RunError.
func (t *Tool) Execute(command CommandName, inputPath, outputPath string, options *Options, optionString string) error {
	args, err := t.Invocation(command, inputPath, outputPath, options, optionString)
	if err != nil {
		return err
	}

	log := t.logger.WithFields(logrus.Fields{
		"command":       string(command),
		"invocation_id": uuid.NewString(),
	})
	log.Debugf("Calling %s: %s", command, strings.Join(args, " "))

	start := time.Now()
	runErr := t.executor.Execute(args[0], args[1:]...)
	if runErr != nil {
		rerr := newRunError(command, args, runErr)
		log.WithFields(logrus.Fields{
			"exit_code":   rerr.ExitCode,
			"duration_ms": time.Since(start).Milliseconds(),
		}).Debug("cd-hit run failed")
		return rerr
	}

	log.WithField("duration_ms", time.Since(start).Milliseconds()).Debug("cd-hit run completed")
	return nil
}
