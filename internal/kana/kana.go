// Package kana rewrites kanji in Japanese text as katakana readings so the
// ja-JP rule table, which only knows kana, can phonemize them.
package kana

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"phonemize/internal/phonemizer"
)

// Reader converts kanji words to their dictionary readings. A Reader is
// safe for concurrent use.
type Reader struct {
	t *tokenizer.Tokenizer
}

// New builds a Reader over the IPA dictionary.
func New() (*Reader, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("failed to create tokenizer: %w", err)
	}
	return &Reader{t: t}, nil
}

// Katakana replaces every token that contains a kanji with its katakana
// reading. Tokens without a reading, and tokens without kanji, are kept as
// written.
func (r *Reader) Katakana(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, tok := range r.t.Tokenize(text) {
		if hasKanji(tok.Surface) {
			if reading, ok := tok.Reading(); ok && reading != "*" {
				b.WriteString(reading)
				continue
			}
		}
		b.WriteString(tok.Surface)
	}
	return b.String()
}

// Preprocess rewrites ja-JP text with Katakana and returns text for other
// dialects unchanged. Its signature matches batch.Preprocessor.
func (r *Reader) Preprocess(text string, d phonemizer.Dialect) string {
	if d != phonemizer.JapaneseJP {
		return text
	}
	return r.Katakana(text)
}

func hasKanji(s string) bool {
	for _, c := range s {
		if unicode.Is(unicode.Han, c) {
			return true
		}
	}
	return false
}
