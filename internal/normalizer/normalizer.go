// Package normalizer cleans up input text before it reaches the
// phonemizer. The rule tables match accented letters as single precomposed
// glyphs, so decomposed input is composed first.
package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Options selects the normalization steps Normalize applies.
type Options struct {
	// FoldWidth maps full-width Latin letters to ASCII and half-width
	// katakana to full-width.
	FoldWidth bool
}

// DefaultOptions is what the CLI uses when normalize_input is on.
var DefaultOptions = Options{FoldWidth: true}

// Compose returns the NFC form of s.
func Compose(s string) string {
	return norm.NFC.String(s)
}

// CollapseSpace replaces control characters and runs of whitespace with a
// single space and trims both ends.
func CollapseSpace(s string) string {
	var result strings.Builder
	result.Grow(len(s))

	space := false
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			space = true
			continue
		}
		if space && result.Len() > 0 {
			result.WriteByte(' ')
		}
		space = false
		result.WriteRune(r)
	}

	return result.String()
}

// Normalize applies the selected steps followed by NFC composition and
// whitespace collapsing.
func Normalize(s string, opts Options) string {
	if opts.FoldWidth {
		s = width.Fold.String(s)
	}
	return CollapseSpace(Compose(s))
}

// IsComposed reports whether s is already in NFC.
func IsComposed(s string) bool {
	return norm.NFC.IsNormalString(s)
}
