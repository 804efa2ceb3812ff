package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-cdhit/pkg/cdhit"
	"github.com/mattsolo1/grove-cdhit/pkg/config"
	"github.com/mattsolo1/grove-cdhit/pkg/exec"
	"github.com/mattsolo1/grove-cdhit/pkg/locator"
)

//go:generate sh -c "cd .. && go run ./tools/schema-generator/"

// app bundles what a subcommand needs once configuration is loaded.
type app struct {
	cfg     *config.Config
	locator locator.ToolLocator
	tool    *cdhit.Tool
}

// loadConfig loads an explicit config file, or the global and project
// hierarchy rooted at the current directory.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		cfg, err := config.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		return cfg, nil
	}
	cfg, err := config.LoadFrom(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func newApp(cmd *cobra.Command, opts *globalOptions) (*app, error) {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}

	stderr := cmd.ErrOrStderr()
	logger, err := newLogger(stderr, cfg.LogLevel, opts.verbose)
	if err != nil {
		return nil, err
	}

	// Installer output goes to stderr so stdout stays usable by scripts.
	installExec := &exec.RealCommandExecutor{Stdout: stderr, Stderr: stderr}
	loc, err := locator.New(cfg.Install, installExec, logger)
	if err != nil {
		return nil, err
	}

	runExec := &exec.RealCommandExecutor{Stdout: cmd.OutOrStdout(), Stderr: stderr}
	return &app{
		cfg:     cfg,
		locator: loc,
		tool:    cdhit.NewTool(loc, runExec, logger),
	}, nil
}
