package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newInstallCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install CD-HIT if needed and print the cd-hit path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			path, err := a.locator.InstallAndGetPath()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s cd-hit is installed\n", color.GreenString("✓"))
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
