package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-cdhit/pkg/cdhit"
)

func newRunCmd(opts *globalOptions) *cobra.Command {
	var (
		input        string
		output       string
		rawOpts      []string
		optionString string
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:   "run <command>",
		Short: "Run a CD-HIT program",
		Long: `Run one of the CD-HIT programs on an input file.

Options configured under defaults.<command> in cdhit.yml are applied first;
--opt values override them in place. Extra arguments can be passed as one
shell-quoted string with --option-string.

Examples:
  # Cluster nucleotide reads at 95% identity
  cdhit run cd-hit-est -i reads.fa -o clusters.fa --opt=-c=0.95 --opt=-n=10

  # Pass a flag without a value and quoted extras
  cdhit run cd-hit -i prot.fa -o nr.fa --opt=-g --option-string '-T 4 -M 16000'`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: commandNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			command, err := cdhit.ParseCommandName(args[0])
			if err != nil {
				return err
			}
			cliOpts, err := parseOptFlags(rawOpts)
			if err != nil {
				return err
			}

			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			options := a.cfg.DefaultOptions(command).Merge(cliOpts)

			if dryRun {
				argv, err := a.tool.Invocation(command, input, output, options, optionString)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), shellquote.Join(argv...))
				return nil
			}

			if err := a.tool.Execute(command, input, output, options, optionString); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s wrote %s\n", color.GreenString("✓"), command, color.CyanString(output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Input FASTA file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file")
	cmd.Flags().StringArrayVar(&rawOpts, "opt", nil, "Program option as FLAG=VALUE, or FLAG alone for a flag without a value (repeatable)")
	cmd.Flags().StringVar(&optionString, "option-string", "", "Extra arguments as a single shell-quoted string")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the command line instead of running it")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// parseOptFlags turns repeated --opt values into ordered options. "-c=0.9"
// sets a value, "-g" a key-only flag and "-T=" an empty value.
func parseOptFlags(raw []string) (*cdhit.Options, error) {
	opts := &cdhit.Options{}
	for _, r := range raw {
		flag, value, hasValue := strings.Cut(r, "=")
		if flag == "" {
			return nil, fmt.Errorf("invalid --opt %q: missing flag name", r)
		}
		if hasValue {
			opts.Set(flag, cdhit.String(value))
		} else {
			opts.Set(flag, cdhit.Absent())
		}
	}
	return opts, nil
}

func commandNames() []string {
	var names []string
	for _, c := range cdhit.Commands() {
		names = append(names, string(c))
	}
	return names
}
