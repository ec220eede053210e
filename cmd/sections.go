package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thellimist/parsehelp/internal/extract"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the section headers of a help screen",
	Long: `List every section header found in the help text, one per line, in the
order they appear. Useful for picking values for --include-sections.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSections,
}

func init() {
	sectionsCmd.Flags().StringVarP(&flagInput, "input", "i", "-", "help text file to read ('-' for stdin)")
}

func runSections(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd.InOrStdin(), flagInput)
	if err != nil {
		return err
	}
	for _, h := range extract.Headers(text) {
		fmt.Fprintln(cmd.OutOrStdout(), h)
	}
	return nil
}
