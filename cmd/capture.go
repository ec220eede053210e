package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thellimist/parsehelp/internal/helpsrc"
)

var flagTimeout = 10000

var captureCmd = &cobra.Command{
	Use:   "capture <program> [args...]",
	Short: "Run a program's --help and extract its flags",
	Long: `Run <program> [args...] --help (falling back to -h) and extract flag records
from its output, exactly as if it had been piped to parsehelp.

Examples:
  parsehelp capture http
  parsehelp capture --timeout 2000 --format json http

  # Use -- when the program's own args look like flags
  parsehelp capture -- git commit --dry-run`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCapture,
}

func init() {
	captureCmd.Flags().IntVar(&flagTimeout, "timeout", 10000, "timeout in milliseconds for the help command")
}

func runCapture(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(flagTimeout)*time.Millisecond)
	defer cancel()

	logger.Debug("capturing help", zap.Strings("command", args))
	text, err := helpsrc.Capture(ctx, args[0], args[1:])
	if err != nil {
		return err
	}
	logger.Debug("captured help", zap.Int("bytes", len(text)))

	return emit(cmd.OutOrStdout(), text)
}
