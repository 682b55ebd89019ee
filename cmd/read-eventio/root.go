package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/robert-malhotra/go-eventio/eventio"
	"github.com/robert-malhotra/go-eventio/internal/cmderr"
)

const (
	verboseFlag = "verbose"
	summaryFlag = "summary"
	colorFlag   = "color"
)

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read-eventio <path>",
		Short: "Print the object tree of an eventio file",
		Long: `Prints every object of an eventio file, one per line, indented by nesting depth.
Command and config lines are printed as "<timestamp> <text>". Gzip and zstd
compressed files are decompressed transparently.`,
		Args:          exactlyOnePath,
		RunE:          entryPoint,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(os.Stdout)

	flags := cmd.Flags()
	flags.BoolP(verboseFlag, "v", false, "Log decoding details to stderr")
	flags.Bool(summaryFlag, false, "Print a table of object counts per type instead of the tree")
	flags.String(colorFlag, "auto", "Color object names: auto, always or never")
	return cmd
}

func exactlyOnePath(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return cmderr.ExitErr{
			Code:  cmderr.CodeUsage,
			Cause: fmt.Errorf("%w\n%s", err, cmd.UsageString()),
		}
	}
	return nil
}

func entryPoint(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool(verboseFlag)
	summary, _ := cmd.Flags().GetBool(summaryFlag)
	colorMode, _ := cmd.Flags().GetString(colorFlag)

	colored, err := useColor(colorMode, cmd.OutOrStdout())
	if err != nil {
		return cmderr.ExitErr{Code: cmderr.CodeUsage, Cause: err}
	}

	log := newLogger(cmd.ErrOrStderr(), verbose)
	defer log.Sync()

	path, err := homedir.Expand(args[0])
	if err != nil {
		return fmt.Errorf("expanding path: %w", err)
	}

	f, err := eventio.Open(path, eventio.WithLogger(log))
	if err != nil {
		return err
	}
	defer f.Close()
	log.Debug("reading file", zap.String("path", path), zap.Stringer("format", f.Format()))

	if summary {
		return printSummary(f, cmd.OutOrStdout())
	}
	return printTree(f, cmd.OutOrStdout(), colored)
}

// newLogger builds a console logger writing to w, at warn level unless verbose.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	c := zap.NewProductionEncoderConfig()
	c.EncodeTime = zapcore.ISO8601TimeEncoder

	lvl := zap.WarnLevel
	if verbose {
		lvl = zap.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(c), zapcore.AddSync(w), lvl)
	return zap.New(core, zap.AddStacktrace(zap.NewAtomicLevelAt(zap.FatalLevel)))
}

func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := w.(*os.File)
		return ok && isatty.IsTerminal(f.Fd()) && os.Getenv("NO_COLOR") == "", nil
	default:
		return false, fmt.Errorf("invalid --%s value %q: want auto, always or never", colorFlag, mode)
	}
}

// nameColor returns the function used to render object names.
func nameColor(enabled bool) func(a ...any) string {
	c := color.New(color.FgCyan, color.Bold)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.SprintFunc()
}
