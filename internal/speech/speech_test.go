package speech

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/wav"
	"github.com/sony/gobreaker"

	"phonemize/internal/config"
	"phonemize/internal/phonemizer"
)

// recorder is a fake model that records its input and returns one sample
// per phoneme rune.
type recorder struct {
	phonemes []string
	err      error
}

func (r *recorder) Synthesize(ctx context.Context, phonemes string, voice phonemizer.Voice) ([]float32, error) {
	r.phonemes = append(r.phonemes, phonemes)
	if r.err != nil {
		return nil, r.err
	}
	samples := make([]float32, 0, len(phonemes))
	for range phonemes {
		samples = append(samples, 0.5)
	}
	return samples, nil
}

func TestSessionLifecycle(t *testing.T) {
	var activated, deactivated int
	s := NewSession(Hooks{
		OnActivate:   func() error { activated++; return nil },
		OnDeactivate: func() error { deactivated++; return nil },
	})

	if s.Active() {
		t.Fatal("new session should be inactive")
	}
	if err := s.Activate(); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}
	if err := s.Activate(); !errors.Is(err, ErrSessionActive) {
		t.Errorf("second Activate = %v, want ErrSessionActive", err)
	}
	if !s.Active() {
		t.Error("session should be active")
	}
	if err := s.Deactivate(); err != nil {
		t.Fatalf("Deactivate failed: %v", err)
	}
	if err := s.Deactivate(); err != nil {
		t.Errorf("second Deactivate = %v, want nil", err)
	}
	if activated != 1 || deactivated != 1 {
		t.Errorf("hooks ran %d/%d times, want 1/1", activated, deactivated)
	}
}

func TestSessionActivateHookError(t *testing.T) {
	boom := errors.New("no audio device")
	s := NewSession(Hooks{OnActivate: func() error { return boom }})

	if err := s.Activate(); !errors.Is(err, boom) {
		t.Errorf("Activate = %v, want %v", err, boom)
	}
	if s.Active() {
		t.Error("session should stay inactive after a failed hook")
	}
}

func TestPipelineSynthesize(t *testing.T) {
	model := &recorder{}
	session := NewSession(Hooks{})
	p := NewPipeline(model, session, 0)

	if _, _, err := p.Synthesize(context.Background(), phonemizer.VoiceAFHeart, "sh"); !errors.Is(err, ErrSessionInactive) {
		t.Fatalf("Synthesize on inactive session = %v, want ErrSessionInactive", err)
	}

	if err := session.Activate(); err != nil {
		t.Fatal(err)
	}
	defer session.Deactivate()

	result, samples, err := p.Synthesize(context.Background(), phonemizer.VoiceAFHeart, "sh")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if result.Phonemes != "ʃ" {
		t.Errorf("Phonemes = %q, want %q", result.Phonemes, "ʃ")
	}
	if result.Dialect != phonemizer.EnglishUS {
		t.Errorf("Dialect = %v, want %v", result.Dialect, phonemizer.EnglishUS)
	}
	if len(model.phonemes) != 1 || model.phonemes[0] != "ʃ" {
		t.Errorf("model received %q", model.phonemes)
	}
	if result.Samples != len(samples) {
		t.Errorf("Samples = %d, want %d", result.Samples, len(samples))
	}
}

func TestPipelineUnknownVoice(t *testing.T) {
	model := &recorder{}
	p := NewPipeline(model, nil, 0)

	_, _, err := p.Synthesize(context.Background(), phonemizer.Voice("xx_nobody"), "hello")
	if !errors.Is(err, phonemizer.ErrLanguageNotFound) {
		t.Errorf("Synthesize = %v, want ErrLanguageNotFound", err)
	}
	if len(model.phonemes) != 0 {
		t.Errorf("model should not be called, got %q", model.phonemes)
	}
}

func TestPipelineSpeakWritesWAV(t *testing.T) {
	p := NewPipeline(&recorder{}, nil, 16000)
	path := filepath.Join(t.TempDir(), "out", "speech.wav")

	result, err := p.Speak(context.Background(), phonemizer.VoiceJFAlpha, "あい", path)
	if err != nil {
		t.Fatalf("Speak failed: %v", err)
	}
	if result.Path != path {
		t.Errorf("Path = %q, want %q", result.Path, path)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	decoder := wav.NewDecoder(file)
	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer failed: %v", err)
	}
	if decoder.SampleRate != 16000 || decoder.NumChans != 1 || decoder.BitDepth != 16 {
		t.Errorf("format = %d Hz, %d ch, %d bit", decoder.SampleRate, decoder.NumChans, decoder.BitDepth)
	}
	if len(buf.Data) != result.Samples {
		t.Errorf("decoded %d samples, want %d", len(buf.Data), result.Samples)
	}
}

func TestWriteWAVClamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clamp.wav")
	if err := WriteWAVFile(path, []float32{2, -2, 0}, DefaultSampleRate); err != nil {
		t.Fatalf("WriteWAVFile failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	buf, err := wav.NewDecoder(file).FullPCMBuffer()
	if err != nil {
		t.Fatal(err)
	}
	want := []int{32767, -32767, 0}
	if len(buf.Data) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(buf.Data), len(want))
	}
	for i := range want {
		if buf.Data[i] != want[i] {
			t.Errorf("sample %d = %d, want %d", i, buf.Data[i], want[i])
		}
	}
}

func TestBreakerModelOpens(t *testing.T) {
	model := &recorder{err: errors.New("model crashed")}
	b := NewBreakerModel(model, BreakerConfig{Name: "test", Failures: 2, Timeout: time.Minute})

	for i := 0; i < 2; i++ {
		if _, err := b.Synthesize(context.Background(), "a", phonemizer.VoiceAFHeart); err == nil {
			t.Fatalf("call %d should fail", i)
		}
	}
	if b.State() != "open" {
		t.Errorf("State() = %q, want %q", b.State(), "open")
	}

	_, err := b.Synthesize(context.Background(), "a", phonemizer.VoiceAFHeart)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Synthesize on open breaker = %v, want ErrOpenState", err)
	}
	if len(model.phonemes) != 2 {
		t.Errorf("model called %d times, want 2", len(model.phonemes))
	}
}

func TestBreakerModelIgnoresCancellation(t *testing.T) {
	model := ModelFunc(func(ctx context.Context, phonemes string, voice phonemizer.Voice) ([]float32, error) {
		return nil, context.Canceled
	})
	b := NewBreakerModel(model, BreakerConfig{Name: "test", Failures: 1, Timeout: time.Minute})

	for i := 0; i < 3; i++ {
		if _, err := b.Synthesize(context.Background(), "a", phonemizer.VoiceAFHeart); !errors.Is(err, context.Canceled) {
			t.Fatalf("call %d = %v, want context.Canceled", i, err)
		}
	}
	if b.State() != "closed" {
		t.Errorf("State() = %q, want %q", b.State(), "closed")
	}
}

func TestBreakerConfigFrom(t *testing.T) {
	tests := []struct {
		in       config.Speech
		failures uint32
		timeout  time.Duration
	}{
		{config.Speech{BreakerFailures: 3, BreakerTimeoutMS: 30000}, 3, 30 * time.Second},
		{config.Speech{BreakerFailures: 0, BreakerTimeoutMS: 500}, 1, 500 * time.Millisecond},
	}

	for _, tt := range tests {
		got := BreakerConfigFrom(tt.in)
		if got.Failures != tt.failures || got.Timeout != tt.timeout {
			t.Errorf("BreakerConfigFrom(%+v) = %+v, want %d failures, %v", tt.in, got, tt.failures, tt.timeout)
		}
	}
}

func TestDefaultBreakerConfig(t *testing.T) {
	cfg := DefaultBreakerConfig()
	if cfg.Name != "acoustic-model" {
		t.Errorf("Name = %q, want %q", cfg.Name, "acoustic-model")
	}
	if cfg.Failures < 1 {
		t.Errorf("Failures = %d, want at least 1", cfg.Failures)
	}
}
