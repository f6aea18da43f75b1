// --- START OF NEW FILE internal/cli/options/errors.go ---
package options

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingInput indicates that the required input file positional was not given.
var ErrMissingInput = errors.New("input file not specified")

// Reason classifies a ParseError.
type Reason string

const (
	// ReasonUnmappedToken marks a token that matches no option or positional slot.
	ReasonUnmappedToken Reason = "unmapped-token"
	// ReasonBadRepeatCount marks an option given too often or without its value.
	ReasonBadRepeatCount Reason = "bad-repeat-count"
	// ReasonBlockedByConflict marks a value token of an option rejected by a conflict.
	ReasonBlockedByConflict Reason = "blocked-by-conflict"
	// ReasonConflictingOption marks an option that conflicts with one given earlier.
	ReasonConflictingOption Reason = "conflicting-option"
	// ReasonInvalidValue marks a value that does not parse as the option's type.
	ReasonInvalidValue Reason = "invalid-value"
)

// ParseError describes one offending token.
type ParseError struct {
	Position int    // Index of the token in the argument vector (element 0 is the program)
	Token    string // The offending token as given
	Param    string // Matched option name, empty when no option matched
	Reason   Reason
	Message  string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "argument %d %q: %s", e.Position, e.Token, e.Reason)
	if e.Param != "" {
		fmt.Fprintf(&b, " (--%s)", e.Param)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// ParseErrors collects every ParseError of one parse, in token order.
type ParseErrors []*ParseError

// Error implements the error interface.
func (errs ParseErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Reasons returns the reason tags in order, mainly for tests and logging.
func (errs ParseErrors) Reasons() []Reason {
	out := make([]Reason, len(errs))
	for i, e := range errs {
		out[i] = e.Reason
	}
	return out
}

// --- END OF NEW FILE internal/cli/options/errors.go ---
