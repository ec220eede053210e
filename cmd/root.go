package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thellimist/parsehelp/internal/extract"
	"github.com/thellimist/parsehelp/internal/logging"
	"github.com/thellimist/parsehelp/internal/output"
)

var appVersion = "dev"

func SetVersion(v string) {
	appVersion = v
}

var (
	flagInput           string
	flagFormat          string
	flagIncludeSections string
	flagExcludeSections string
	flagVerbose         bool
)

// logger is replaced in PersistentPreRunE once --verbose is known.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "parsehelp",
	Short: "Extract flag records from a CLI help screen",
	Long: `parsehelp reads the help output of a command-line HTTP client and prints one
JSON object per recognized flag, with the section it appeared under.

Examples:
  # Parse help text from stdin
  http --help | parsehelp

  # Parse a saved help screen as YAML
  parsehelp --input help.txt --format yaml

  # Only keep flags from some sections
  http --help | parsehelp --include-sections "OUTPUT PROCESSING,NETWORK"`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.New(cmd.ErrOrStderr(), flagVerbose)
		return validateFlags()
	},
	RunE: runRoot,
}

func init() {
	rootCmd.Flags().StringVarP(&flagInput, "input", "i", "-", "help text file to read ('-' for stdin)")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagFormat, "format", "ndjson", "output format: ndjson, json or yaml")
	pf.StringVar(&flagIncludeSections, "include-sections", "", "only keep flags from these sections (comma-separated)")
	pf.StringVar(&flagExcludeSections, "exclude-sections", "", "drop flags from these sections (comma-separated)")
	pf.BoolVar(&flagVerbose, "verbose", false, "log progress to stderr")

	rootCmd.AddCommand(captureCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.SetVersionTemplate(fmt.Sprintf("parsehelp v%s\n", appVersion))
}

func Execute() error {
	rootCmd.Version = appVersion
	defer func() { _ = logger.Sync() }()
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd.InOrStdin(), flagInput)
	if err != nil {
		return err
	}
	return emit(cmd.OutOrStdout(), text)
}

// readInput returns the whole help text from stdin or the named file.
func readInput(stdin io.Reader, path string) (string, error) {
	var r io.Reader = stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	logger.Debug("read input", zap.String("source", sourceName(path)), zap.Int("bytes", len(data)))
	return string(data), nil
}

func sourceName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}

// emit extracts, filters and writes features for text.
func emit(w io.Writer, text string) error {
	features := extract.Extract(text)
	logger.Debug("extracted features", zap.Int("count", len(features)))

	filtered, err := filterFeatures(features, text)
	if err != nil {
		return err
	}
	if len(filtered) != len(features) {
		logger.Debug("after section filtering", zap.Int("count", len(filtered)))
	}
	if len(features) == 0 && strings.TrimSpace(text) != "" {
		logger.Warn("no flag lines recognized in input")
	}

	format, err := output.ParseFormat(flagFormat)
	if err != nil {
		return err
	}
	return output.Write(w, format, filtered)
}
