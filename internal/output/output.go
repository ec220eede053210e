// Package output renders extracted features as NDJSON, a JSON array or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/thellimist/parsehelp/internal/extract"
	"gopkg.in/yaml.v3"
)

// Format selects how features are rendered.
type Format string

const (
	FormatNDJSON Format = "ndjson" // One JSON object per line (default).
	FormatJSON   Format = "json"   // A single indented JSON array.
	FormatYAML   Format = "yaml"   // A YAML sequence.
)

// ParseFormat maps a --format value to a Format. Matching is
// case-insensitive and an empty value selects NDJSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatNDJSON, nil
	case FormatNDJSON, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("output: unknown format %q (must be %s, %s or %s)", s, FormatNDJSON, FormatJSON, FormatYAML)
	}
}

// Write renders features to w in the given format.
func Write(w io.Writer, format Format, features []extract.Feature) error {
	switch format {
	case FormatNDJSON, "":
		return writeNDJSON(w, features)
	case FormatJSON:
		return writeJSON(w, features)
	case FormatYAML:
		return writeYAML(w, features)
	default:
		return fmt.Errorf("output: unknown format %q", format)
	}
}

func writeNDJSON(w io.Writer, features []extract.Feature) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, f := range features {
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("output: encoding %q: %w", f.Slug, err)
		}
	}
	return nil
}

func writeJSON(w io.Writer, features []extract.Feature) error {
	if features == nil {
		features = []extract.Feature{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(features); err != nil {
		return fmt.Errorf("output: encoding features: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, features []extract.Feature) error {
	if features == nil {
		features = []extract.Feature{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(features); err != nil {
		return fmt.Errorf("output: encoding features: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("output: flushing yaml: %w", err)
	}
	return nil
}
