// Package extract turns the help screen of a CLI into a list of flag records.
//
// Recognition is line-shape based: unindented all-caps lines are section
// headers, indented lines starting with a short and/or long flag are
// candidates. A candidate becomes a Feature only when both a slug and a
// description can be derived from it.
package extract

import "strings"

// Extract scans text line by line and returns the recognized features in
// input order. It never fails; lines that do not look like flags are skipped.
func Extract(text string) []Feature {
	var features []Feature
	var section *string

	for _, line := range strings.Split(text, "\n") {
		if trimSpace(line) == "" {
			continue
		}

		if isSectionHeader(line) {
			name := trimSpace(line)
			section = &name
			continue
		}

		f, ok := parseFlagLine(line)
		if !ok {
			continue
		}
		f.Section = section
		features = append(features, f)
	}

	return features
}

// Sections returns the distinct sections of features in first-seen order.
// Features outside any section are ignored.
func Sections(features []Feature) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, f := range features {
		if f.Section == nil {
			continue
		}
		if _, dup := seen[*f.Section]; dup {
			continue
		}
		seen[*f.Section] = struct{}{}
		names = append(names, *f.Section)
	}
	return names
}

// Headers returns every section header in text, in order, including headers
// that are not followed by any flag line.
func Headers(text string) []string {
	var headers []string
	for _, line := range strings.Split(text, "\n") {
		if trimSpace(line) == "" {
			continue
		}
		if isSectionHeader(line) {
			headers = append(headers, trimSpace(line))
		}
	}
	return headers
}
