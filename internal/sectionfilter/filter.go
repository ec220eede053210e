// Package sectionfilter narrows extracted features to, or away from, a set of
// help-screen sections.
package sectionfilter

import (
	"fmt"
	"strings"

	"github.com/thellimist/parsehelp/internal/extract"
)

// ParseList splits a comma-separated --include-sections/--exclude-sections
// value into trimmed, non-empty names. Duplicates are dropped and the first
// occurrence keeps its position.
func ParseList(csv string) []string {
	if csv == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var result []string
	for _, p := range strings.Split(csv, ",") {
		name := strings.TrimSpace(p)
		if name == "" {
			continue
		}
		key := strings.ToUpper(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, name)
	}
	return result
}

// Filter applies include or exclude filtering by section name. Names compare
// case-insensitively since headers are upper case but users rarely type them
// that way.
//
// Rules:
//   - include and exclude together is an error.
//   - Include mode keeps features whose section is listed, in input order.
//     Names are checked against known, the headers of the help text, so a
//     header with no flags under it is valid and simply selects nothing.
//     A listed name that is not known is an error, with a suggestion when a
//     header is within Levenshtein distance 3.
//   - Exclude mode drops features whose section is listed. Features seen
//     before any header have no section and are always kept. An empty result
//     is not an error.
//   - With neither set, features are returned unchanged.
func Filter(features []extract.Feature, known, include, exclude []string) ([]extract.Feature, error) {
	if len(include) > 0 && len(exclude) > 0 {
		return nil, fmt.Errorf("--include-sections and --exclude-sections cannot be used together")
	}
	if len(include) == 0 && len(exclude) == 0 {
		return features, nil
	}

	if len(include) > 0 {
		knownSet := toSet(known)
		for _, name := range include {
			if _, ok := knownSet[strings.ToUpper(name)]; ok {
				continue
			}
			msg := fmt.Sprintf("section '%s' not found. Available sections: %s",
				name, strings.Join(known, ", "))
			if suggestion := Suggest(name, known); suggestion != "" {
				msg += fmt.Sprintf(" Did you mean '%s'?", suggestion)
			}
			return nil, fmt.Errorf("%s", msg)
		}
		return keep(features, toSet(include), true), nil
	}

	return keep(features, toSet(exclude), false), nil
}

// keep returns the features whose section membership in set equals want.
// Features without a section are never members.
func keep(features []extract.Feature, set map[string]struct{}, want bool) []extract.Feature {
	var result []extract.Feature
	for _, f := range features {
		member := false
		if f.Section != nil {
			_, member = set[strings.ToUpper(*f.Section)]
		}
		if member == want {
			result = append(result, f)
		}
	}
	return result
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[strings.ToUpper(n)] = struct{}{}
	}
	return set
}
