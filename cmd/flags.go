package cmd

import (
	"fmt"

	"github.com/thellimist/parsehelp/internal/extract"
	"github.com/thellimist/parsehelp/internal/output"
	"github.com/thellimist/parsehelp/internal/sectionfilter"
)

func validateFlags() error {
	if flagIncludeSections != "" && flagExcludeSections != "" {
		return fmt.Errorf("--include-sections and --exclude-sections cannot be used together")
	}

	if _, err := output.ParseFormat(flagFormat); err != nil {
		return err
	}

	if flagTimeout <= 0 {
		return fmt.Errorf("--timeout must be positive, got %d", flagTimeout)
	}

	return nil
}

// filterFeatures applies --include-sections/--exclude-sections. Include names
// are validated against every header in text, not only those with flags.
func filterFeatures(features []extract.Feature, text string) ([]extract.Feature, error) {
	include := sectionfilter.ParseList(flagIncludeSections)
	exclude := sectionfilter.ParseList(flagExcludeSections)
	return sectionfilter.Filter(features, extract.Headers(text), include, exclude)
}
