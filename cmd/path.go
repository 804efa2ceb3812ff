package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-cdhit/pkg/cdhit"
)

func newPathCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "path [command]",
		Short:     "Print the resolved path of one or all CD-HIT programs",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: commandNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			commands := cdhit.Commands()
			if len(args) == 1 {
				c, err := cdhit.ParseCommandName(args[0])
				if err != nil {
					return err
				}
				commands = []cdhit.CommandName{c}
			}

			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			for _, c := range commands {
				path, err := a.tool.Path(c)
				if err != nil {
					return err
				}
				if len(commands) == 1 {
					fmt.Fprintln(cmd.OutOrStdout(), path)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c, path)
				}
			}
			return nil
		},
	}
}
