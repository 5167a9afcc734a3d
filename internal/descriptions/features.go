package descriptions

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseFeatures splits free-form feature text on commas and newlines, trims
// each entry and strips one leading bullet marker. Empty entries are dropped;
// order and duplicates are kept.
func ParseFeatures(text string) []string {
	features := []string{}
	for _, segment := range strings.FieldsFunc(text, isFeatureSeparator) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		if segment = stripBullet(segment); segment != "" {
			features = append(features, segment)
		}
	}
	return features
}

func isFeatureSeparator(r rune) bool {
	return r == ',' || r == '\n'
}

func stripBullet(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	switch r {
	case '-', '•', '*':
		return strings.TrimLeftFunc(s[size:], unicode.IsSpace)
	}
	return s
}

// CountWords returns the number of whitespace-separated words in text. Blank
// text has no words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
