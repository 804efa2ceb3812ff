package cdhit

import (
	"fmt"

	"github.com/kballard/go-shellquote"
)

// BuildArgs assembles the argv for one run: the binary, the input and output
// paths, the flattened options and the tokens of optionString.
func BuildArgs(binary, inputPath, outputPath string, options *Options, optionString string) ([]string, error) {
	args := []string{binary, "-i", inputPath, "-o", outputPath}
	args = append(args, options.Args()...)

	if optionString != "" {
		extra, err := shellquote.Split(optionString)
		if err != nil {
			return nil, fmt.Errorf("parse option string %q: %w", optionString, err)
		}
		args = append(args, extra...)
	}
	return args, nil
}
