// Package speech connects phonemizer output to an acoustic model and
// writes the synthesized audio.
package speech

import (
	"context"

	"phonemize/internal/phonemizer"
)

// AcousticModel turns a phoneme string into mono audio samples in the range
// [-1, 1] for the given voice.
type AcousticModel interface {
	Synthesize(ctx context.Context, phonemes string, voice phonemizer.Voice) ([]float32, error)
}

// ModelFunc adapts a function to the AcousticModel interface.
type ModelFunc func(ctx context.Context, phonemes string, voice phonemizer.Voice) ([]float32, error)

// Synthesize calls f.
func (f ModelFunc) Synthesize(ctx context.Context, phonemes string, voice phonemizer.Voice) ([]float32, error) {
	return f(ctx, phonemes, voice)
}
