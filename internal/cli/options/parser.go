// --- START OF NEW FILE internal/cli/options/parser.go ---
package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// ParsedOptionSet is the read-only result of a successful Parse.
type ParsedOptionSet struct {
	fs    *pflag.FlagSet
	input string
	help  bool
}

// Parse parses argv against schema. argv[0] is the program invocation token and is skipped.
//
// Every offending token is reported in one ParseErrors value. Parse errors take
// priority over a help request. Without errors and without help, a missing input
// file yields ErrMissingInput.
func Parse(argv []string, schema Schema) (*ParsedOptionSet, error) {
	p := &parser{schema: schema, fs: schema.FlagSet(), counts: make(map[string]int)}
	p.run(argv)
	if len(p.errs) > 0 {
		return nil, p.errs
	}

	set := &ParsedOptionSet{fs: p.fs, input: p.input, help: p.help}
	if !set.help && set.input == "" {
		return nil, ErrMissingInput
	}
	return set, nil
}

// Input returns the input file positional.
func (s *ParsedOptionSet) Input() string { return s.input }

// HelpRequested reports whether --help or -h was given.
func (s *ParsedOptionSet) HelpRequested() bool { return s.help }

// Has reports whether the option was given explicitly.
func (s *ParsedOptionSet) Has(name string) bool { return s.fs.Changed(name) }

// String returns a string option's value or its default.
func (s *ParsedOptionSet) String(name string) string {
	v, _ := s.fs.GetString(name)
	return v
}

// Bool returns a bool option's value or its default.
func (s *ParsedOptionSet) Bool(name string) bool {
	v, _ := s.fs.GetBool(name)
	return v
}

// Float returns a numeric option's value or its default.
func (s *ParsedOptionSet) Float(name string) float64 {
	v, _ := s.fs.GetFloat64(name)
	return v
}

// Strings returns a multi-value option's values in the order given.
func (s *ParsedOptionSet) Strings(name string) []string {
	v, _ := s.fs.GetStringSlice(name)
	return v
}

// FlagSet exposes the underlying flag set, e.g. for binding into viper.
func (s *ParsedOptionSet) FlagSet() *pflag.FlagSet { return s.fs }

// parser scans tokens itself so that every failure carries a position and reason;
// values are stored and type-checked through the pflag set.
type parser struct {
	schema   Schema
	fs       *pflag.FlagSet
	counts   map[string]int
	order    []string
	input    string
	inputSet bool
	help     bool
	errs     ParseErrors
}

func (p *parser) run(argv []string) {
	positionalOnly := false
	for i := 1; i < len(argv); i++ {
		tok := argv[i]
		switch {
		case positionalOnly || tok == "-" || !strings.HasPrefix(tok, "-"):
			p.positional(i, tok)
		case tok == "--":
			positionalOnly = true
		case strings.HasPrefix(tok, "--"):
			name, value, inline := strings.Cut(tok[2:], "=")
			opt, ok := p.schema.Lookup(name)
			if !ok {
				p.fail(i, tok, "", ReasonUnmappedToken, "unrecognized option")
				continue
			}
			i = p.option(argv, i, opt, value, inline)
		default:
			name, value, inline := strings.Cut(tok[1:], "=")
			opt, ok := p.schema.LookupShorthand(name)
			if !ok {
				p.fail(i, tok, "", ReasonUnmappedToken, "unrecognized shorthand option")
				continue
			}
			i = p.option(argv, i, opt, value, inline)
		}
	}
}

func (p *parser) positional(i int, tok string) {
	if p.inputSet {
		p.fail(i, tok, "", ReasonUnmappedToken, fmt.Sprintf("unexpected positional argument, %s already given", p.schema.Positional.Name))
		return
	}
	p.input = tok
	p.inputSet = true
}

// option consumes one occurrence of opt starting at argv[pos] and returns the index
// of the last token it consumed.
func (p *parser) option(argv []string, pos int, opt Option, value string, inline bool) int {
	tok := argv[pos]
	last := pos
	switch {
	case opt.Arity == ArityFlag && !inline:
		value = "true"
	case !inline:
		if pos+1 >= len(argv) || !isValue(argv[pos+1]) {
			p.fail(pos, tok, opt.Name, ReasonBadRepeatCount, "option requires a value")
			return pos
		}
		last = pos + 1
		value = argv[last]
	}

	for _, prev := range p.order {
		if prev == opt.Name || !p.schema.Conflicts(opt.Name, prev) {
			continue
		}
		p.fail(pos, tok, opt.Name, ReasonConflictingOption, fmt.Sprintf("cannot be combined with --%s", prev))
		if last != pos {
			p.fail(last, argv[last], opt.Name, ReasonBlockedByConflict, fmt.Sprintf("value of --%s ignored", opt.Name))
		}
		return last
	}

	if opt.Arity != ArityMulti && p.counts[opt.Name] > 0 {
		p.fail(pos, tok, opt.Name, ReasonBadRepeatCount, "option may only be given once")
		return last
	}

	if err := p.fs.Set(opt.Name, value); err != nil {
		p.fail(last, argv[last], opt.Name, ReasonInvalidValue, err.Error())
		return last
	}
	if p.counts[opt.Name] == 0 {
		p.order = append(p.order, opt.Name)
	}
	p.counts[opt.Name]++
	if opt.Name == OptHelp {
		p.help, _ = p.fs.GetBool(OptHelp)
	}
	return last
}

func (p *parser) fail(pos int, tok, param string, reason Reason, msg string) {
	p.errs = append(p.errs, &ParseError{Position: pos, Token: tok, Param: param, Reason: reason, Message: msg})
}

// isValue reports whether tok can be consumed as an option value.
// Negative numbers are values; anything else starting with '-' is an option.
func isValue(tok string) bool {
	if tok == "-" || !strings.HasPrefix(tok, "-") {
		return true
	}
	_, err := strconv.ParseFloat(tok, 64)
	return err == nil
}

// --- END OF NEW FILE internal/cli/options/parser.go ---
