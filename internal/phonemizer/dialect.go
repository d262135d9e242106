// Package phonemizer converts text into the phoneme strings consumed by the
// acoustic model. Each supported dialect has an ordered, hand-authored table
// of substitution rules; every result then goes through a shared
// post-processing pass that maps the intermediate alphabet onto the model's
// symbol vocabulary.
package phonemizer

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Dialect identifies a language variant with its own rule table.
type Dialect int

const (
	// DialectNone means no language has been selected yet. It is never a
	// valid phonemization target.
	DialectNone Dialect = iota
	EnglishUS
	EnglishGB
	JapaneseJP
	ChineseCN
	FrenchFR
	HindiIN
	ItalianIT
	SpanishES
	PortugueseBR
)

var dialectTags = map[Dialect]string{
	DialectNone:  "none",
	EnglishUS:    "en-US",
	EnglishGB:    "en-GB",
	JapaneseJP:   "ja-JP",
	ChineseCN:    "zh-CN",
	FrenchFR:     "fr-FR",
	HindiIN:      "hi-IN",
	ItalianIT:    "it-IT",
	SpanishES:    "es-ES",
	PortugueseBR: "pt-BR",
}

// Dialects returns every selectable dialect, excluding DialectNone.
func Dialects() []Dialect {
	return []Dialect{
		EnglishUS, EnglishGB, JapaneseJP, ChineseCN, FrenchFR,
		HindiIN, ItalianIT, SpanishES, PortugueseBR,
	}
}

// String returns the BCP 47 tag of the dialect.
func (d Dialect) String() string {
	if tag, ok := dialectTags[d]; ok {
		return tag
	}
	return fmt.Sprintf("Dialect(%d)", int(d))
}

// Valid reports whether d is one of the selectable dialects.
func (d Dialect) Valid() bool {
	return d > DialectNone && d <= PortugueseBR
}

// IsEnglish reports whether d shares the English rule table.
func (d Dialect) IsEnglish() bool {
	return d == EnglishUS || d == EnglishGB
}

// ParseDialect resolves a BCP 47 tag such as "en-GB" or "pt" to a dialect.
// A bare language subtag resolves through the most likely region for that
// language, so "en" yields en-US and "pt" yields pt-BR.
func ParseDialect(s string) (Dialect, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DialectNone, fmt.Errorf("%w: empty dialect tag", ErrLanguageNotFound)
	}

	tag, err := language.Parse(s)
	if err != nil {
		return DialectNone, fmt.Errorf("%w: %q: %v", ErrLanguageNotFound, s, err)
	}

	base, _ := tag.Base()
	region, _ := tag.Region()
	key := base.String() + "-" + region.String()

	for _, d := range Dialects() {
		if dialectTags[d] == key {
			return d, nil
		}
	}
	return DialectNone, fmt.Errorf("%w: unsupported dialect %q", ErrLanguageNotFound, s)
}
