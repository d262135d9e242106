package kana

import (
	"testing"

	"phonemize/internal/phonemizer"
)

func newReader(t *testing.T) *Reader {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return r
}

func TestKatakana(t *testing.T) {
	r := newReader(t)

	tests := []struct {
		input    string
		expected string
	}{
		{"東京", "トウキョウ"},
		{"日本語", "ニホンゴ"},
		{"東京へ", "トウキョウへ"},
		{"こんにちは", "こんにちは"},
		{"カタカナ", "カタカナ"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := r.Katakana(tt.input); got != tt.expected {
			t.Errorf("Katakana(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestPreprocess(t *testing.T) {
	r := newReader(t)

	if got := r.Preprocess("東京", phonemizer.EnglishUS); got != "東京" {
		t.Errorf("Preprocess(en-US) = %q, want input unchanged", got)
	}
	if got := r.Preprocess("東京", phonemizer.JapaneseJP); got != "トウキョウ" {
		t.Errorf("Preprocess(ja-JP) = %q, want %q", got, "トウキョウ")
	}
}

// Without the reading pass kanji never match the kana table.
func TestPreprocessThenPhonemize(t *testing.T) {
	r := newReader(t)
	e := phonemizer.NewEngine()
	if err := e.SetLanguage(phonemizer.VoiceJFAlpha); err != nil {
		t.Fatal(err)
	}

	got, err := e.Phonemize(r.Preprocess("東京", e.Dialect()))
	if err != nil {
		t.Fatal(err)
	}
	if got != "tɔɯkijɔɯ" {
		t.Errorf("Phonemize(東京) = %q, want %q", got, "tɔɯkijɔɯ")
	}
}

func TestHasKanji(t *testing.T) {
	if !hasKanji("東") || hasKanji("ひらがな") || hasKanji("abc") {
		t.Error("hasKanji misclassified input")
	}
}
