// Package cli implements the pencils command-line interface.
//
// Every construction reads a scene file holding a primary and a secondary
// selection of marks and circles, runs the construction and prints the
// resulting circle.
//
// # Commands
//
//   - pencil: circle in a pencil orthogonal to a circle
//   - orthogonal: circle orthogonal to three circles
//   - help: help about any command
//
// # Logging
//
// Messages for the user go through charmbracelet/log on stderr. Library
// tracing is switched on with --trace.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"

	"github.com/npillmayer/pencils/pencil"
)

const appName = "pencils"

// traceKeys are the tracing keys of the library packages.
var traceKeys = []string{
	"pencils.polyn",
	"pencils.circle",
	"pencils.pencil",
	"pencils.selection",
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	trace  string
	quiet  bool
}

// New creates a CLI logging to w.
func New(w io.Writer) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: false,
			Prefix:          appName,
			Level:           log.InfoLevel,
		}),
		trace: "error",
	}
}

// RootCommand builds the command tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Circle constructions on pencils of circles",
		Long: `pencils constructs circles orthogonal to other circles.

Marks are treated as circles of radius 0. Input is a TOML scene file
with a [primary] table and [[secondary]] tables, each holding either
point = [x, y] or circle = [x, y, radius].`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.configure()
		},
	}
	root.PersistentFlags().StringVar(&c.trace, "trace", c.trace, "trace level of the geometry packages (error, info, debug)")
	root.PersistentFlags().BoolVarP(&c.quiet, "quiet", "q", false, "only report errors")

	root.AddCommand(c.constructCmd("pencil", pencil.ModeInPencil))
	root.AddCommand(c.constructCmd("orthogonal", pencil.ModeOrthogonal))
	return root
}

// configure applies the flags to the logger and to library tracing.
func (c *CLI) configure() error {
	level, err := traceLevel(c.trace)
	if err != nil {
		return err
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	switch {
	case c.quiet:
		c.Logger.SetLevel(log.ErrorLevel)
	case level == tracing.LevelDebug:
		c.Logger.SetLevel(log.DebugLevel)
	default:
		c.Logger.SetLevel(log.InfoLevel)
	}
	return nil
}

func traceLevel(s string) (tracing.TraceLevel, error) {
	switch strings.ToLower(s) {
	case "error", "":
		return tracing.LevelError, nil
	case "info":
		return tracing.LevelInfo, nil
	case "debug":
		return tracing.LevelDebug, nil
	}
	return tracing.LevelError, fmt.Errorf("invalid trace level %q (use error, info or debug)", s)
}
