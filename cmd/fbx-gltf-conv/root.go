// --- START OF FINAL REVISED FILE cmd/fbx-gltf-conv/root.go ---
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/infosia/FBX-glTF-conv/internal/cli"
	"github.com/infosia/FBX-glTF-conv/internal/cli/args"
	"github.com/infosia/FBX-glTF-conv/internal/cli/options"
)

var (
	// These are set during build time using -ldflags
	version = "dev"     // Default version
	commit  = "none"    // Default commit hash
	date    = "unknown" // Default build date
)

// usageTemplate renders help from the schema's flag set. %s and %s are the positional name and doc.
const usageTemplate = `{{.Long}}

Usage:
  {{.UseLine}}

Arguments:
  %s   %s

Options:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
`

// newRootCmd builds the root command for schema. Flag parsing is left to the
// options parser so that every token reaches it in order; cobra only carries the
// invocation and renders help. The run's exit code is stored in *code.
// A nil factory selects the configured backend process.
func newRootCmd(schema options.Schema, factory cli.ConverterFactory, code *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s [options] <%s>", schema.Program, schema.Positional.Name),
		Short: schema.Summary,
		Long: fmt.Sprintf("%s\nVersion %s (commit: %s, built: %s)",
			schema.Summary, version, commit, date),
		Args:                  cobra.ArbitraryArgs,
		DisableFlagParsing:    true,
		DisableFlagsInUseLine: true,
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	cmd.Flags().AddFlagSet(schema.FlagSet())
	cmd.SetUsageTemplate(fmt.Sprintf(usageTemplate, schema.Positional.Name, schema.Positional.Doc))

	cmd.RunE = func(cmd *cobra.Command, tokens []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Cannot determine working directory: %v\n", err)
			*code = cli.ExitUsage
			return nil
		}
		app := &cli.App{
			Schema:    schema,
			Usage:     func() string { return strings.TrimRight(cmd.UsageString(), "\n") },
			Converter: factory,
			Stdout:    cmd.OutOrStdout(),
			Stderr:    cmd.ErrOrStderr(),
			Cwd:       cwd,
		}
		*code = app.Run(cmd.Context(), append([]string{schema.Program}, tokens...))
		return nil
	}
	return cmd
}

// Execute normalizes the process arguments, runs the root command and returns the exit code.
func Execute() int {
	norm := args.Normalizer{Fallback: os.Getenv(args.EnvArgEncoding)}
	argv, err := norm.Normalize(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitUsage
	}

	// Create a context that listens for interrupt signals
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	code := cli.ExitOK
	cmd := newRootCmd(options.DefaultSchema(), nil, &code)
	tokens := []string{}
	if len(argv) > 1 {
		tokens = argv[1:]
	}
	cmd.SetArgs(tokens)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitUsage
	}
	return code
}

// --- END OF FINAL REVISED FILE cmd/fbx-gltf-conv/root.go ---
