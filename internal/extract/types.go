package extract

// Feature is one flag line recognized in a help screen.
type Feature struct {
	Name        string  `json:"name" yaml:"name"`               // Description truncated to MaxNameLen runes
	Flag        string  `json:"flag" yaml:"flag"`               // First token of the source line (e.g., "-h,")
	Description string  `json:"description" yaml:"description"` // Text after the leading flag punctuation
	Section     *string `json:"section" yaml:"section"`         // Nearest preceding header, nil before any
	Slug        string  `json:"slug" yaml:"slug"`               // Long flag name, else short, without dashes
}

// MaxNameLen caps Feature.Name, counted in runes.
const MaxNameLen = 60
