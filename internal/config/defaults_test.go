package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDecode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[defaults]
voice = "bf_emma"
workers = 4
normalize_input = true

[speech]
sample_rate = 16000
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if cfg.Defaults.Voice != "bf_emma" {
		t.Errorf("Voice = %q, want %q", cfg.Defaults.Voice, "bf_emma")
	}
	if cfg.Defaults.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Defaults.Workers)
	}
	if !cfg.Defaults.NormalizeInput {
		t.Error("NormalizeInput = false, want true")
	}
	if cfg.Speech.SampleRate != 16000 {
		t.Errorf("SampleRate = %d, want 16000", cfg.Speech.SampleRate)
	}

	// Keys absent from the file keep their fallbacks.
	if cfg.Defaults.OutputDir != fallbackDefaults.OutputDir {
		t.Errorf("OutputDir = %q, want fallback %q", cfg.Defaults.OutputDir, fallbackDefaults.OutputDir)
	}
	if cfg.Speech.BreakerFailures != fallbackSpeech.BreakerFailures {
		t.Errorf("BreakerFailures = %d, want fallback %d", cfg.Speech.BreakerFailures, fallbackSpeech.BreakerFailures)
	}
}

func TestDecodeInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[defaults\nvoice ="), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(path); err == nil {
		t.Error("Decode accepted malformed TOML")
	}
}

func TestWorkers(t *testing.T) {
	tests := []struct {
		requested, jobs, want int
	}{
		{0, 3, 3},
		{0, 100, MaxWorkers},
		{2, 100, 2},
		{20, 5, MaxWorkers},
		{0, 0, 1},
		{-1, 0, 1},
	}

	for _, tt := range tests {
		if got := Workers(tt.requested, tt.jobs); got != tt.want {
			t.Errorf("Workers(%d, %d) = %d, want %d", tt.requested, tt.jobs, got, tt.want)
		}
	}
}

func TestDefaultAccessors(t *testing.T) {
	cfg := Load()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"DefaultVoice", DefaultVoice(), cfg.Defaults.Voice},
		{"DefaultOutputDir", DefaultOutputDir(), cfg.Defaults.OutputDir},
		{"DefaultDatabase", DefaultDatabase(), cfg.Defaults.Database},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s() = %q, want %q", tt.name, tt.got, tt.want)
		}
		if tt.got == "" {
			t.Errorf("%s() is empty", tt.name)
		}
	}
}
