package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	verbose    bool
	noColor    bool
}

// NewRootCmd builds the cdhit command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "cdhit",
		Short: "Install and run the CD-HIT sequence clustering programs",
		Long: `Install and run the CD-HIT family of sequence clustering programs
(cd-hit, cd-hit-est, cd-hit-2d, cd-hit-est-2d and cd-hit-454).

The binaries are installed into a private conda environment on first use
unless cdhit.yml selects another install method.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a cdhit.yml file (default: global config layered with ./cdhit.yml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newRunCmd(opts),
		newInstallCmd(opts),
		newPathCmd(opts),
		newCommandsCmd(),
		NewVersionCmd(),
	)
	return rootCmd
}
