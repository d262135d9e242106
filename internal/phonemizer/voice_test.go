package phonemizer

import (
	"errors"
	"sort"
	"strings"
	"testing"
)

func TestLanguageForVoice(t *testing.T) {
	tests := []struct {
		voice Voice
		want  Dialect
	}{
		{VoiceAFHeart, EnglishUS},
		{VoiceAMPuck, EnglishUS},
		{VoiceBFEmma, EnglishGB},
		{VoiceBMLewis, EnglishGB},
		{VoiceJFAlpha, JapaneseJP},
		{VoiceJMKumo, JapaneseJP},
		{VoiceZFXiaobei, ChineseCN},
		{VoiceFFSiwis, FrenchFR},
		{VoiceHMOmega, HindiIN},
		{VoiceIFSara, ItalianIT},
		{VoiceEMAlex, SpanishES},
		{VoicePFDora, PortugueseBR},
	}

	for _, tt := range tests {
		got, err := LanguageForVoice(tt.voice)
		if err != nil {
			t.Errorf("LanguageForVoice(%q) error: %v", tt.voice, err)
			continue
		}
		if got != tt.want {
			t.Errorf("LanguageForVoice(%q) = %v, want %v", tt.voice, got, tt.want)
		}
	}
}

// Every voice resolves, and the prefix letter agrees with the dialect.
func TestVoiceTableTotal(t *testing.T) {
	prefixes := map[byte]Dialect{
		'a': EnglishUS,
		'b': EnglishGB,
		'j': JapaneseJP,
		'z': ChineseCN,
		'f': FrenchFR,
		'h': HindiIN,
		'i': ItalianIT,
		'e': SpanishES,
		'p': PortugueseBR,
	}

	for _, v := range Voices() {
		d, err := LanguageForVoice(v)
		if err != nil {
			t.Errorf("LanguageForVoice(%q) error: %v", v, err)
			continue
		}
		if !d.Valid() {
			t.Errorf("LanguageForVoice(%q) = %v, not a selectable dialect", v, d)
		}
		want, ok := prefixes[v[0]]
		if !ok || want != d {
			t.Errorf("voice %q maps to %v, prefix disagrees", v, d)
		}
	}
}

func TestLanguageForVoiceUnknown(t *testing.T) {
	for _, v := range []Voice{"", "xx_nobody", "AF_HEART", "af_heart "} {
		d, err := LanguageForVoice(v)
		if !errors.Is(err, ErrLanguageNotFound) {
			t.Errorf("LanguageForVoice(%q) error = %v, want ErrLanguageNotFound", v, err)
		}
		if d != DialectNone {
			t.Errorf("LanguageForVoice(%q) = %v, want DialectNone", v, d)
		}
	}
}

func TestVoicesSorted(t *testing.T) {
	voices := Voices()
	if len(voices) != len(voiceLanguages) {
		t.Fatalf("Voices() returned %d voices, want %d", len(voices), len(voiceLanguages))
	}
	if !sort.SliceIsSorted(voices, func(i, j int) bool { return voices[i] < voices[j] }) {
		t.Error("Voices() is not sorted")
	}
}

func TestVoicesFor(t *testing.T) {
	gb := VoicesFor(EnglishGB)
	if len(gb) != 8 {
		t.Errorf("VoicesFor(en-GB) returned %d voices, want 8", len(gb))
	}
	for _, v := range gb {
		if !strings.HasPrefix(string(v), "b") {
			t.Errorf("VoicesFor(en-GB) contains %q", v)
		}
	}
	if got := VoicesFor(DialectNone); len(got) != 0 {
		t.Errorf("VoicesFor(none) = %v, want empty", got)
	}
}
