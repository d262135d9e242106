package speech

import (
	"context"
	"fmt"

	"phonemize/internal/config"
	"phonemize/internal/phonemizer"
)

// Pipeline phonemizes text for a voice, synthesizes it and writes a WAV
// file. A Pipeline owns its Engine and is not safe for concurrent use.
type Pipeline struct {
	engine     *phonemizer.Engine
	model      AcousticModel
	session    *Session
	sampleRate int
}

// NewPipeline returns a pipeline that plays through session. A nil session
// skips the session check. A sampleRate of zero uses the configured rate.
func NewPipeline(model AcousticModel, session *Session, sampleRate int) *Pipeline {
	if sampleRate <= 0 {
		sampleRate = config.Load().Speech.SampleRate
	}
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &Pipeline{
		engine:     phonemizer.NewEngine(),
		model:      model,
		session:    session,
		sampleRate: sampleRate,
	}
}

// Result describes one synthesized utterance.
type Result struct {
	Voice    phonemizer.Voice
	Dialect  phonemizer.Dialect
	Phonemes string
	Samples  int
	Path     string
}

// Synthesize runs text through the engine and the model for voice. The
// samples are returned along with the phoneme string that produced them.
func (p *Pipeline) Synthesize(ctx context.Context, voice phonemizer.Voice, text string) (*Result, []float32, error) {
	if p.session != nil && !p.session.Active() {
		return nil, nil, ErrSessionInactive
	}

	if err := p.engine.SetLanguage(voice); err != nil {
		return nil, nil, err
	}
	phonemes, err := p.engine.Phonemize(text)
	if err != nil {
		return nil, nil, err
	}

	samples, err := p.model.Synthesize(ctx, phonemes, voice)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to synthesize %q: %w", phonemes, err)
	}

	return &Result{
		Voice:    voice,
		Dialect:  p.engine.Dialect(),
		Phonemes: phonemes,
		Samples:  len(samples),
	}, samples, nil
}

// Speak synthesizes text and writes it to path as WAV.
func (p *Pipeline) Speak(ctx context.Context, voice phonemizer.Voice, text, path string) (*Result, error) {
	result, samples, err := p.Synthesize(ctx, voice, text)
	if err != nil {
		return nil, err
	}
	if err := WriteWAVFile(path, samples, p.sampleRate); err != nil {
		return nil, err
	}
	result.Path = path
	return result, nil
}
