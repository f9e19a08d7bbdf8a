// Package model defines the data structures shared by the dialect tooling.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyTarget is returned when a substitution has nothing to search for.
var ErrEmptyTarget = errors.New("substitution target is empty")

// Substitution replaces every occurrence of Target with Replacement.
type Substitution struct {
	Target      string `yaml:"target"`
	Replacement string `yaml:"replacement"`
}

// Substitutions is an ordered list of substitutions. Each entry operates on
// the output of the previous one.
type Substitutions []Substitution

// CaseVariants derives the exact, lowercase and uppercase substitutions for
// renaming current to next, in that order.
//
// Mixed-case spellings such as "StandAlone" are not covered.
func CaseVariants(current, next string) Substitutions {
	return Substitutions{
		{Target: current, Replacement: next},
		{Target: strings.ToLower(current), Replacement: strings.ToLower(next)},
		{Target: strings.ToUpper(current), Replacement: strings.ToUpper(next)},
	}
}

// Validate reports the first substitution with an empty target.
func (s Substitutions) Validate() error {
	for i, sub := range s {
		if sub.Target == "" {
			return fmt.Errorf("substitution %d: %w", i, ErrEmptyTarget)
		}
	}

	return nil
}

// Apply runs every substitution over text in order.
func (s Substitutions) Apply(text string) string {
	for _, sub := range s {
		text = strings.ReplaceAll(text, sub.Target, sub.Replacement)
	}

	return text
}
