package phonemizer

import (
	"errors"
	"testing"
)

func TestPhonemizeLanguageNotSet(t *testing.T) {
	e := NewEngine()
	if e.Dialect() != DialectNone {
		t.Errorf("NewEngine().Dialect() = %v, want none", e.Dialect())
	}
	for _, text := range []string{"hello", ""} {
		if _, err := e.Phonemize(text); !errors.Is(err, ErrLanguageNotSet) {
			t.Errorf("Phonemize(%q) error = %v, want ErrLanguageNotSet", text, err)
		}
	}
}

func TestPhonemizeEmpty(t *testing.T) {
	for _, d := range Dialects() {
		e := NewEngine()
		if err := e.SetDialect(d); err != nil {
			t.Fatalf("SetDialect(%v): %v", d, err)
		}
		got, err := e.Phonemize("")
		if err != nil || got != "" {
			t.Errorf("%v: Phonemize(\"\") = %q, %v, want empty", d, got, err)
		}
	}
}

func TestPhonemize(t *testing.T) {
	tests := []struct {
		voice Voice
		text  string
		want  string
	}{
		// English, US and GB
		{VoiceAFHeart, "sh", "ʃ"},
		{VoiceAFHeart, "low", "lO"},
		{VoiceBFEmma, "low", "lɔʊ"},
		{VoiceAFHeart, "boy", "bY"},
		{VoiceAFHeart, "night", "nIt"},
		{VoiceAFHeart, "cheese", "ʧisɛ"},
		{VoiceBFEmma, "cheese", "ʧiːsɛ"},
		{VoiceAFHeart, "bird", "bɜɹd"},
		{VoiceBFEmma, "bird", "bɜːd"},
		{VoiceAFHeart, "house", "hWsɛ"},
		{VoiceAFHeart, "hear", "hiə"},
		{VoiceBFEmma, "hear", "hɪə"},
		{VoiceAFHeart, "Hello World", "hɛllɔ wɔld"},
		{VoiceAFHeart, "the nation", "θɛ næʃən"},
		{VoiceAMAdam, "judge", "ʤʌʤ"},
		{VoiceAMAdam, "  ship  ", "ʃɪp"},

		// Japanese
		{VoiceJFAlpha, "あ", "a"},
		{VoiceJFAlpha, "こんにちは", "kɔɴɲitɕiha"},
		{VoiceJFAlpha, "Tokyo とうきょう", "tɔɯkijɔɯ"},
		{VoiceJFAlpha, "abcあ", "a"},
		{VoiceJMKumo, "カタカナ", "katakana"},
		{VoiceJMKumo, "きっと", "kittɔ"},

		// Chinese
		{VoiceZFXiaobei, "ni hao", "ni hW"},
		{VoiceZFXiaobei, "zhongguo", "ʈʂʊŋkuɔ"},
		{VoiceZMYunxi, "xie xie", "ɕiɛ ɕiɛ"},

		// French
		{VoiceFFSiwis, "bonjour", "bɔ̃ʒuʁ"},
		{VoiceFFSiwis, "chat", "ʃat"},
		{VoiceFFSiwis, "café", "kafA"},
		{VoiceFFSiwis, "oui", "ui"},

		// Italian
		{VoiceIFSara, "ciao", "ʧaɔ"},
		{VoiceIFSara, "gnocchi", "ɲɔkki"},
		{VoiceIMNicola, "grazie", "ɡɹatsiA"},

		// Spanish
		{VoiceEFDora, "chico", "ʧikɔ"},
		{VoiceEFDora, "queso", "kAsɔ"},
		{VoiceEMAlex, "hola", "ɔla"},
		{VoiceEMAlex, "mañana", "maɲana"},

		// Portuguese
		{VoicePFDora, "obrigado", "ɔbɾiɡadɔ"},
		{VoicePFDora, "filho", "fiʎɔ"},
		{VoicePMAlex, "coração", "kɔɾasə̃w̃"},

		// Hindi
		{VoiceHFAlpha, "राम", "ɹamə"},
		{VoiceHFBeta, "नमस्ते", "nəməst̪A"},
		{VoiceHMOmega, "हिन्दी", "ɦɪnd̪i"},
	}

	for _, tt := range tests {
		t.Run(string(tt.voice)+"/"+tt.text, func(t *testing.T) {
			e := NewEngine()
			if err := e.SetLanguage(tt.voice); err != nil {
				t.Fatalf("SetLanguage(%q): %v", tt.voice, err)
			}
			got, err := e.Phonemize(tt.text)
			if err != nil {
				t.Fatalf("Phonemize(%q) error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("Phonemize(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// "sh" must become one symbol; single-letter rules would otherwise fire.
func TestPhonemizeDigraphFirst(t *testing.T) {
	e := NewEngine()
	if err := e.SetDialect(EnglishUS); err != nil {
		t.Fatal(err)
	}
	got, err := e.Phonemize("sh")
	if err != nil {
		t.Fatal(err)
	}
	if got != "ʃ" {
		t.Errorf("Phonemize(%q) = %q, want %q", "sh", got, "ʃ")
	}
}

func TestPhonemizeGBBranch(t *testing.T) {
	results := map[Dialect]string{}
	for _, d := range []Dialect{EnglishUS, EnglishGB} {
		e := NewEngine()
		if err := e.SetDialect(d); err != nil {
			t.Fatal(err)
		}
		out, err := e.Phonemize("boat")
		if err != nil {
			t.Fatal(err)
		}
		results[d] = out
	}
	if results[EnglishUS] == results[EnglishGB] {
		t.Errorf("en-US and en-GB both produced %q for %q", results[EnglishUS], "boat")
	}
}

func TestSetLanguageUnknownKeepsDialect(t *testing.T) {
	e := NewEngine()
	if err := e.SetLanguage(VoiceFFSiwis); err != nil {
		t.Fatal(err)
	}
	if err := e.SetLanguage("zz_unknown"); !errors.Is(err, ErrLanguageNotFound) {
		t.Errorf("SetLanguage(unknown) error = %v, want ErrLanguageNotFound", err)
	}
	if e.Dialect() != FrenchFR {
		t.Errorf("Dialect() = %v after failed SetLanguage, want fr-FR", e.Dialect())
	}
}

func TestSetDialect(t *testing.T) {
	e := NewEngine()
	if err := e.SetDialect(Dialect(99)); !errors.Is(err, ErrLanguageNotFound) {
		t.Errorf("SetDialect(99) error = %v, want ErrLanguageNotFound", err)
	}
	if err := e.SetDialect(HindiIN); err != nil {
		t.Fatal(err)
	}
	if err := e.SetDialect(DialectNone); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Phonemize("x"); !errors.Is(err, ErrLanguageNotSet) {
		t.Errorf("Phonemize after clearing error = %v, want ErrLanguageNotSet", err)
	}
}

func BenchmarkPhonemize(b *testing.B) {
	e := NewEngine()
	if err := e.SetLanguage(VoiceAFHeart); err != nil {
		b.Fatal(err)
	}
	text := "The quick brown fox jumps over the lazy dog while the nation watches."
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Phonemize(text); err != nil {
			b.Fatal(err)
		}
	}
}
