package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// space is Unicode whitespace: ASCII \s plus \v, the information separators,
// NEL and every Z category rune (NBSP, em space, line separator, ...).
const space = `[\s\v\x1c-\x1f\x{85}\p{Z}]`

// flagLinePattern matches an indented "-X", "-X, --long" or "--long" prefix.
// Every group is optional, so any indented line matches; the slug and
// description checks in parseFlagLine do the real filtering.
var flagLinePattern = regexp.MustCompile(`^` + space + `+(-[a-zA-Z])?(?:,` + space + `+)?(--[\p{L}\p{N}_-]+)?`)

// isSpace matches the runes in space: unicode.IsSpace plus the information
// separators U+001C..U+001F.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// descriptionSkip is the set of leading runes stepped over to reach the
// description text.
const descriptionSkip = "-,. \t"

// isSectionHeader reports whether line is an unindented, all-caps header such
// as "OPTIONS" or "POSITIONAL ARGUMENTS".
func isSectionHeader(line string) bool {
	if line == "" || line[0] == ' ' || line[0] == '\t' {
		return false
	}
	return isShouting(line)
}

// isShouting reports whether s has at least one cased letter and no lowercase
// or titlecase letters. Other_Lowercase runes such as ª and ᵃ count as
// lowercase. Digits, punctuation and spaces are ignored.
func isShouting(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r), unicode.Is(unicode.Other_Lowercase, r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}

// parseFlagLine derives a Feature (without Section) from a non-header line.
// ok is false when the line yields no slug or no description.
func parseFlagLine(line string) (f Feature, ok bool) {
	m := flagLinePattern.FindStringSubmatch(line)
	if m == nil {
		return Feature{}, false
	}

	slug := m[2]
	if slug == "" {
		slug = m[1]
	}
	slug = strings.TrimLeft(slug, "-")

	description := firstLine(descriptionOf(line))
	if description == "" || slug == "" {
		return Feature{}, false
	}

	return Feature{
		Name:        truncate(description, MaxNameLen),
		Flag:        flagToken(line),
		Description: description,
		Slug:        slug,
	}, true
}

// flagToken returns the first whitespace-separated token of line.
func flagToken(line string) string {
	fields := strings.FieldsFunc(line, isSpace)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// descriptionOf returns the left-trimmed line starting at the first rune that
// is not flag punctuation. For "-h, --help  Show help" that is
// "h, --help  Show help": only the leading dash run is stepped over.
func descriptionOf(line string) string {
	rest := strings.TrimLeftFunc(line, isSpace)
	i := strings.IndexFunc(rest, func(r rune) bool {
		return !strings.ContainsRune(descriptionSkip, r)
	})
	if i < 0 {
		return ""
	}
	return trimSpace(rest[i:])
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return trimSpace(line)
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
