package cdhit

import (
	"fmt"
	"strings"
)

// CommandName is one of the CD-HIT executables.
type CommandName string

const (
	CdHit      CommandName = "cd-hit"
	CdHitEst   CommandName = "cd-hit-est"
	CdHit2D    CommandName = "cd-hit-2d"
	CdHitEst2D CommandName = "cd-hit-est-2d"
	CdHit454   CommandName = "cd-hit-454"
)

var commands = []CommandName{CdHit, CdHitEst, CdHit2D, CdHitEst2D, CdHit454}

// Commands returns every supported command in a fixed order.
func Commands() []CommandName {
	out := make([]CommandName, len(commands))
	copy(out, commands)
	return out
}

// Validate reports ErrUnknownCommand if c is not a supported command.
func (c CommandName) Validate() error {
	for _, known := range commands {
		if c == known {
			return nil
		}
	}
	names := make([]string, len(commands))
	for i, known := range commands {
		names[i] = string(known)
	}
	return fmt.Errorf("%w %q (expected one of: %s)", ErrUnknownCommand, string(c), strings.Join(names, ", "))
}

// ParseCommandName converts s to a CommandName, validating it.
func ParseCommandName(s string) (CommandName, error) {
	c := CommandName(s)
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

func (c CommandName) String() string {
	return string(c)
}
