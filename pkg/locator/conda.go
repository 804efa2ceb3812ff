package locator

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-cdhit/pkg/config"
	"github.com/mattsolo1/grove-cdhit/pkg/exec"
)

// PackageName is the conda package providing the CD-HIT binaries.
const PackageName = "cd-hit"

// CondaLocator installs a pinned cd-hit build into a private conda prefix.
// The resolved path is cached for the life of the locator; failures are not.
type CondaLocator struct {
	executor exec.CommandExecutor
	logger   logrus.FieldLogger

	frontend string
	prefix   string
	channels []string
	version  string
	build    string

	mu   sync.Mutex
	path string
}

// NewCondaLocator creates a CondaLocator from install settings.
func NewCondaLocator(cfg config.Install, executor exec.CommandExecutor, logger logrus.FieldLogger) *CondaLocator {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	frontend := cfg.Frontend
	if frontend == "" {
		frontend = "conda"
	}
	return &CondaLocator{
		executor: executor,
		logger:   logger,
		frontend: frontend,
		prefix:   cfg.Prefix,
		channels: cfg.Channels,
		version:  cfg.Version,
		build:    cfg.Build,
	}
}

// InstallAndGetPath returns <prefix>/bin/cd-hit, installing the package first
// if the pinned version is not present.
func (l *CondaLocator) InstallAndGetPath() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.path != "" {
		return l.path, nil
	}

	binary := filepath.Join(l.prefix, "bin", PrimaryBinary)
	if !l.installed(binary) {
		if err := l.install(); err != nil {
			return "", err
		}
		if !l.installed(binary) {
			return "", fmt.Errorf("%w: %s not found in %s after install", ErrInstall, l.PackageSpec(), l.prefix)
		}
	}

	l.path = binary
	return binary, nil
}

// PackageSpec returns the conda match spec, e.g. cd-hit=4.6.6=0.
func (l *CondaLocator) PackageSpec() string {
	spec := PackageName + "=" + l.version
	if l.build != "" {
		spec += "=" + l.build
	}
	return spec
}

// installed reports whether conda-meta records the pinned version and the
// binary exists.
func (l *CondaLocator) installed(binary string) bool {
	build := l.build
	if build == "" {
		build = "*"
	}
	pattern := filepath.Join(l.prefix, "conda-meta", fmt.Sprintf("%s-%s-%s.json", PackageName, l.version, build))
	matches, err := filepath.Glob(pattern)
	if err != nil || len(matches) == 0 {
		return false
	}
	return isExecutable(binary)
}

func (l *CondaLocator) install() error {
	frontend, err := l.executor.LookPath(l.frontend)
	if err != nil {
		return fmt.Errorf("%w: %s not found on PATH: %v", ErrInstall, l.frontend, err)
	}

	// An existing environment gets the package installed into it; otherwise
	// the environment is created with it.
	verb := "create"
	if info, err := os.Stat(filepath.Join(l.prefix, "conda-meta")); err == nil && info.IsDir() {
		verb = "install"
	}

	args := []string{verb, "-y", "-q", "-p", l.prefix}
	for _, ch := range l.channels {
		args = append(args, "-c", ch)
	}
	args = append(args, l.PackageSpec())

	l.logger.WithFields(logrus.Fields{
		"package":  l.PackageSpec(),
		"prefix":   l.prefix,
		"frontend": frontend,
	}).Info("Installing cd-hit")

	if err := l.executor.Execute(frontend, args...); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrInstall, l.frontend, verb, err)
	}
	return nil
}
