// Package locator finds, and when needed installs, the cd-hit binaries.
package locator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-cdhit/pkg/config"
	"github.com/mattsolo1/grove-cdhit/pkg/exec"
)

// PrimaryBinary is the executable every locator resolves; the other CD-HIT
// programs are installed next to it.
const PrimaryBinary = "cd-hit"

var (
	// ErrInstall is wrapped by every failure to install the package.
	ErrInstall = errors.New("cd-hit install failed")
	// ErrNotInstalled is returned when a locator that cannot install finds no binary.
	ErrNotInstalled = errors.New("cd-hit is not installed")
)

// ToolLocator ensures the package is installed and returns the absolute path
// of the primary executable.
type ToolLocator interface {
	InstallAndGetPath() (string, error)
}

// New returns the locator selected by cfg.Method.
func New(cfg config.Install, executor exec.CommandExecutor, logger logrus.FieldLogger) (ToolLocator, error) {
	switch cfg.Method {
	case config.MethodConda:
		return NewCondaLocator(cfg, executor, logger), nil
	case config.MethodPath:
		return &PathLocator{Executor: executor}, nil
	case config.MethodStatic:
		return &StaticLocator{Path: cfg.Path}, nil
	default:
		return nil, fmt.Errorf("unknown install method %q", cfg.Method)
	}
}

// PathLocator resolves cd-hit on $PATH. It never installs anything.
type PathLocator struct {
	Executor exec.CommandExecutor
}

func (l *PathLocator) InstallAndGetPath() (string, error) {
	path, err := l.Executor.LookPath(PrimaryBinary)
	if err != nil {
		return "", fmt.Errorf("%w: %s not found on PATH: %v", ErrNotInstalled, PrimaryBinary, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	return abs, nil
}

// StaticLocator returns a fixed, already installed binary.
type StaticLocator struct {
	Path string
}

func (l *StaticLocator) InstallAndGetPath() (string, error) {
	abs, err := filepath.Abs(l.Path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", l.Path, err)
	}
	if !isExecutable(abs) {
		return "", fmt.Errorf("%w: %s is not an executable file", ErrNotInstalled, abs)
	}
	return abs, nil
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0111 != 0
}
