package batch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"phonemize/internal/phonemizer"
	"phonemize/internal/schema"
)

func TestRead(t *testing.T) {
	input := "# comment\nsh\n\nbf_emma\tlow\nff_siwis\tchat\r\n  \njf_alpha\tあ\n"

	utterances, err := Read(strings.NewReader(input), "af_heart")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	want := []schema.Utterance{
		{Line: 2, Voice: "af_heart", Text: "sh"},
		{Line: 4, Voice: "bf_emma", Text: "low"},
		{Line: 5, Voice: "ff_siwis", Text: "chat"},
		{Line: 7, Voice: "jf_alpha", Text: "あ"},
	}

	if len(utterances) != len(want) {
		t.Fatalf("Read returned %d utterances, want %d: %+v", len(utterances), len(want), utterances)
	}
	for i := range want {
		if utterances[i] != want[i] {
			t.Errorf("utterance %d = %+v, want %+v", i, utterances[i], want[i])
		}
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("hello\nworld\n"), 0644); err != nil {
		t.Fatal(err)
	}

	utterances, err := ReadFile(path, "am_adam")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(utterances) != 2 || utterances[1].Voice != "am_adam" {
		t.Errorf("ReadFile = %+v", utterances)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"), "am_adam"); err == nil {
		t.Error("ReadFile on a missing file should fail")
	}
}

func testUtterances() []schema.Utterance {
	return []schema.Utterance{
		{Line: 1, Voice: "af_heart", Text: "sh"},
		{Line: 2, Voice: "bf_emma", Text: "low"},
		{Line: 3, Voice: "xx_nobody", Text: "hello"},
		{Line: 4, Voice: "jf_alpha", Text: "あ"},
		{Line: 5, Voice: "af_heart", Text: "low"},
		{Line: 6, Voice: "ff_siwis", Text: ""},
	}
}

func checkResults(t *testing.T, results []*schema.Transcription) {
	t.Helper()

	want := []struct {
		phonemes string
		dialect  string
		failed   bool
	}{
		{"ʃ", "en-US", false},
		{"lɔʊ", "en-GB", false},
		{"", "", true},
		{"a", "ja-JP", false},
		{"lO", "en-US", false},
		{"", "fr-FR", false},
	}

	if len(results) != len(want) {
		t.Fatalf("got %d results, want %d", len(results), len(want))
	}
	for i, w := range want {
		r := results[i]
		if r.Line != i+1 {
			t.Errorf("result %d has line %d, order not preserved", i, r.Line)
		}
		if r.Failed() != w.failed {
			t.Errorf("result %d Failed() = %v (%q), want %v", i, r.Failed(), r.Error, w.failed)
		}
		if r.Phonemes != w.phonemes || r.Dialect != w.dialect {
			t.Errorf("result %d = %q/%q, want %q/%q", i, r.Phonemes, r.Dialect, w.phonemes, w.dialect)
		}
	}
}

func TestRunSequential(t *testing.T) {
	results := Run(context.Background(), testUtterances(), Config{Workers: 1}, nil)
	checkResults(t, results)
}

func TestRunParallel(t *testing.T) {
	var mu sync.Mutex
	seen := make(map[int]bool)

	results := Run(context.Background(), testUtterances(), Config{Workers: 4}, func(index int, r *schema.Transcription) {
		mu.Lock()
		seen[index] = true
		mu.Unlock()
	})

	checkResults(t, results)
	if len(seen) != len(testUtterances()) {
		t.Errorf("callback saw %d utterances, want %d", len(seen), len(testUtterances()))
	}
}

// Many workers over many utterances, each with its own engine; run with
// -race to catch shared engine state.
func TestRunParallelManyVoices(t *testing.T) {
	var utterances []schema.Utterance
	voices := []string{"af_heart", "bf_emma"}
	for i := 0; i < 500; i++ {
		utterances = append(utterances, schema.Utterance{Line: i + 1, Voice: voices[i%2], Text: "low"})
	}

	results := Run(context.Background(), utterances, Config{Workers: 8}, nil)
	for i, r := range results {
		want := "lO"
		if i%2 == 1 {
			want = "lɔʊ"
		}
		if r.Phonemes != want {
			t.Fatalf("result %d (%s) = %q, want %q", i, r.Voice, r.Phonemes, want)
		}
	}
}

func TestRunDialectOverride(t *testing.T) {
	utterances := []schema.Utterance{{Line: 1, Voice: "xx_nobody", Text: "low"}}
	results := Run(context.Background(), utterances, Config{Dialect: phonemizer.EnglishGB}, nil)

	if results[0].Failed() {
		t.Fatalf("override run failed: %s", results[0].Error)
	}
	if results[0].Phonemes != "lɔʊ" {
		t.Errorf("Phonemes = %q, want %q", results[0].Phonemes, "lɔʊ")
	}
}

func TestRunPreprocess(t *testing.T) {
	var gotDialect phonemizer.Dialect
	config := Config{
		Preprocess: func(text string, d phonemizer.Dialect) string {
			gotDialect = d
			return strings.TrimPrefix(text, "skip:")
		},
	}

	utterances := []schema.Utterance{{Line: 1, Voice: "af_heart", Text: "skip:sh"}}
	results := Run(context.Background(), utterances, config, nil)

	if results[0].Phonemes != "ʃ" {
		t.Errorf("Phonemes = %q, want %q", results[0].Phonemes, "ʃ")
	}
	if gotDialect != phonemizer.EnglishUS {
		t.Errorf("preprocess saw dialect %v, want en-US", gotDialect)
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		results := Run(ctx, testUtterances(), Config{Workers: workers}, nil)
		if len(results) != len(testUtterances()) {
			t.Fatalf("workers=%d: got %d results, want %d", workers, len(results), len(testUtterances()))
		}
		for i, r := range results {
			if r == nil {
				t.Fatalf("workers=%d: result %d is nil", workers, i)
			}
		}
		if workers == 1 {
			for i, r := range results {
				if !r.Failed() {
					t.Errorf("result %d processed after cancellation", i)
				}
			}
		}
	}
}

func TestAggregate(t *testing.T) {
	results := Run(context.Background(), testUtterances(), Config{Workers: 2}, nil)
	stats := Aggregate(results)

	if stats.Total != 6 {
		t.Errorf("Total = %d, want 6", stats.Total)
	}
	if stats.Succeeded != 5 || stats.Failed != 1 {
		t.Errorf("Succeeded/Failed = %d/%d, want 5/1", stats.Succeeded, stats.Failed)
	}
	if stats.ByDialect["en-US"] != 2 {
		t.Errorf("ByDialect[en-US] = %d, want 2", stats.ByDialect["en-US"])
	}
	if stats.ByVoice["af_heart"] != 2 {
		t.Errorf("ByVoice[af_heart] = %d, want 2", stats.ByVoice["af_heart"])
	}
	if len(stats.ByError) != 1 {
		t.Errorf("ByError = %v, want one error kind", stats.ByError)
	}
}
