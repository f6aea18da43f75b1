// --- START OF FINAL REVISED FILE internal/cli/cli.go ---
// Package cli wires argument parsing, option resolution, the converter and
// result persistence into one invocation, and computes the process exit code.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/infosia/FBX-glTF-conv/internal/cli/backend"
	"github.com/infosia/FBX-glTF-conv/internal/cli/config"
	"github.com/infosia/FBX-glTF-conv/internal/cli/options"
	"github.com/infosia/FBX-glTF-conv/internal/cli/progress"
	"github.com/infosia/FBX-glTF-conv/pkg/converter"
	"github.com/infosia/FBX-glTF-conv/pkg/converter/atomicfile"
	"github.com/infosia/FBX-glTF-conv/pkg/converter/bufwriter"
	"github.com/infosia/FBX-glTF-conv/pkg/converter/logsink"
)

// Process exit codes.
const (
	// ExitOK means the document (and the log, if requested) were written.
	ExitOK = 0
	// ExitFailureCaptured means a failure occurred but was caught and reported.
	ExitFailureCaptured = 1
	// ExitUsage means the run stopped before conversion: bad arguments, help, or resolution failure.
	ExitUsage = -1
)

// State is a stage of one invocation.
type State int

const (
	StateParsing State = iota
	StateResolving
	StateConverting
	StatePersisting
	StateDone
	StateFailed
)

var stateNames = [...]string{"parsing", "resolving", "converting", "persisting", "done", "failed"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// ConverterFactory builds the converter once the configuration is resolved.
// handler receives the converter's own diagnostics.
type ConverterFactory func(res *config.Resolution, handler slog.Handler) converter.Converter

// ExecBackend is the default ConverterFactory: the configured engine process.
func ExecBackend(res *config.Resolution, handler slog.Handler) converter.Converter {
	return backend.NewExecConverter(res.BackendCommand, handler)
}

// App carries the collaborators of one invocation. Zero-valued optional fields fall back to defaults.
type App struct {
	Schema    options.Schema
	Usage     func() string                                  // Optional: renders help text; defaults to Schema.Usage
	Converter ConverterFactory                               // Optional: defaults to ExecBackend
	Progress  func(res *config.Resolution) progress.Reporter // Optional: defaults to a stderr spinner when appropriate
	Stdout    io.Writer
	Stderr    io.Writer
	Cwd       string
}

// Run executes one invocation for argv (argv[0] is the program) and returns the exit code.
func (a *App) Run(ctx context.Context, argv []string) int {
	r := &run{app: a, state: StateParsing}
	return r.execute(ctx, argv)
}

// run holds the mutable state of one invocation.
type run struct {
	app    *App
	state  State
	logger *slog.Logger
}

func (r *run) transition(s State) {
	if r.logger != nil {
		r.logger.Debug("State transition", slog.String("from", r.state.String()), slog.String("to", s.String()))
	}
	r.state = s
}

func (r *run) usage() string {
	if r.app.Usage != nil {
		return r.app.Usage()
	}
	return r.app.Schema.Usage()
}

func (r *run) execute(ctx context.Context, argv []string) int {
	a := r.app

	// --- Parsing ---
	set, err := options.Parse(argv, a.Schema)
	if err != nil {
		var perrs options.ParseErrors
		switch {
		case errors.As(err, &perrs):
			for _, pe := range perrs {
				fmt.Fprintln(a.Stderr, pe.Error())
			}
		case errors.Is(err, options.ErrMissingInput):
			fmt.Fprintln(a.Stderr, "Input file not specified.")
		default:
			fmt.Fprintln(a.Stderr, err)
		}
		fmt.Fprintln(a.Stdout, r.usage())
		r.state = StateFailed
		return ExitUsage
	}
	if set.HelpRequested() {
		fmt.Fprintln(a.Stdout, r.usage())
		r.state = StateDone
		return ExitUsage
	}

	level := slog.LevelInfo
	if set.Bool(options.OptVerbose) {
		level = slog.LevelDebug
	}
	// Diagnostics go to stderr until the sink exists.
	r.logger = slog.New(slog.NewTextHandler(a.Stderr, &slog.HandlerOptions{Level: level}))

	// --- Resolving ---
	r.transition(StateResolving)
	res, err := config.Resolve(set, a.Cwd, r.logger)
	if err != nil {
		r.logger.Error("Failed to resolve options", slog.Any("error", err))
		r.transition(StateFailed)
		return ExitUsage
	}

	sink := logsink.Select(res.LogFile, a.Stdout, a.Stderr)
	r.logger = slog.New(logsink.NewHandler(sink, level))
	for _, w := range res.Warnings {
		r.logger.Warn(w)
	}

	reporter := r.reporter(res)
	opts := res.Options
	opts.Writer = bufwriter.New(res.OutputFile,
		bufwriter.WithLogger(r.logger),
		bufwriter.WithWriteHook(progress.WriteHook(reporter)),
	)
	opts.Logger = sink

	// --- Converting ---
	r.transition(StateConverting)
	factory := a.Converter
	if factory == nil {
		factory = ExecBackend
	}
	retval := ExitOK
	doc, convErr := factory(res, r.logger.Handler()).Convert(ctx, res.InputFile, opts)
	_ = reporter.Close()
	if convErr != nil {
		sink.Log(converter.LevelFatal, converter.Text(convErr.Error()))
		retval = ExitFailureCaptured
	}

	// --- Persisting ---
	r.transition(StatePersisting)
	if convErr == nil {
		if err := writeDocument(res.OutputFile, doc); err != nil {
			sink.Log(converter.LevelFatal, converter.Text(err.Error()))
			retval = ExitFailureCaptured
		} else {
			r.logger.Debug("Document written", slog.String("path", res.OutputFile))
		}
	}

	// The log is never logged into: a failed flush goes straight to stderr.
	if err := sink.Flush(); err != nil {
		fmt.Fprintln(a.Stderr, err)
		retval = ExitFailureCaptured
	}

	if retval == ExitOK {
		r.state = StateDone
	} else {
		r.state = StateFailed
	}
	return retval
}

func (r *run) reporter(res *config.Resolution) progress.Reporter {
	if r.app.Progress != nil {
		return r.app.Progress(res)
	}
	enabled := progress.Enabled(r.app.Stderr, res.LogFile, res.Options.Verbose)
	return progress.New(r.app.Stderr, enabled, res.InputFile)
}

// writeDocument serializes doc with the standard indent and replaces path atomically.
func writeDocument(path string, doc converter.Document) error {
	if doc == nil {
		return fmt.Errorf("%w: converter returned no document", converter.ErrDocumentWrite)
	}
	data, err := doc.Serialize(converter.DocumentIndent)
	if err != nil {
		return err
	}
	if err := atomicfile.WriteBytes(path, data, 0644); err != nil {
		return fmt.Errorf("%w: '%s': %w", converter.ErrDocumentWrite, path, err)
	}
	return nil
}

// --- END OF FINAL REVISED FILE internal/cli/cli.go ---
