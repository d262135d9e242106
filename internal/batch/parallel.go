package batch

import (
	"context"
	"sync"

	"phonemize/internal/phonemizer"
	"phonemize/internal/schema"
)

// Preprocessor rewrites input text before phonemization.
type Preprocessor func(text string, d phonemizer.Dialect) string

// Config configures a batch run.
type Config struct {
	Workers int // Number of parallel workers (1 or less = sequential)

	// Dialect, when set, overrides the dialect of every utterance's voice.
	Dialect phonemizer.Dialect

	// Preprocess runs before each utterance is phonemized.
	Preprocess Preprocessor
}

// ProgressCallback is called when an utterance completes processing.
type ProgressCallback func(index int, result *schema.Transcription)

// Run phonemizes utterances and returns one transcription per utterance in
// input order. Per-utterance failures are recorded on the transcription.
// Each worker owns its own Engine.
func Run(
	ctx context.Context,
	utterances []schema.Utterance,
	config Config,
	callback ProgressCallback,
) []*schema.Transcription {
	results := make([]*schema.Transcription, len(utterances))

	if config.Workers <= 1 {
		engine := phonemizer.NewEngine()
		for i, u := range utterances {
			if ctx.Err() != nil {
				break
			}
			results[i] = transcribe(engine, u, config)
			if callback != nil {
				callback(i, results[i])
			}
		}
		return fillCanceled(ctx, utterances, results)
	}

	// Parallel processing with worker pool
	type job struct {
		index     int
		utterance schema.Utterance
	}
	type done struct {
		index  int
		result *schema.Transcription
	}

	jobs := make(chan job)
	resultsChan := make(chan done, config.Workers)

	var wg sync.WaitGroup
	for w := 0; w < config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			engine := phonemizer.NewEngine()
			for j := range jobs {
				resultsChan <- done{j.index, transcribe(engine, j.utterance, config)}
			}
		}()
	}

	// Send jobs until canceled
	go func() {
		defer close(jobs)
		for i, u := range utterances {
			select {
			case <-ctx.Done():
				return
			case jobs <- job{i, u}:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	for r := range resultsChan {
		results[r.index] = r.result
		if callback != nil {
			callback(r.index, r.result)
		}
	}

	return fillCanceled(ctx, utterances, results)
}

// transcribe phonemizes one utterance with engine.
func transcribe(engine *phonemizer.Engine, u schema.Utterance, config Config) *schema.Transcription {
	result := &schema.Transcription{Utterance: u}

	var err error
	if config.Dialect != phonemizer.DialectNone {
		err = engine.SetDialect(config.Dialect)
	} else {
		err = engine.SetLanguage(phonemizer.Voice(u.Voice))
	}
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Dialect = engine.Dialect().String()

	text := u.Text
	if config.Preprocess != nil {
		text = config.Preprocess(text, engine.Dialect())
	}

	phonemes, err := engine.Phonemize(text)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Phonemes = phonemes
	return result
}

// fillCanceled marks utterances that were never processed.
func fillCanceled(ctx context.Context, utterances []schema.Utterance, results []*schema.Transcription) []*schema.Transcription {
	for i, r := range results {
		if r == nil {
			msg := "canceled"
			if err := ctx.Err(); err != nil {
				msg = err.Error()
			}
			results[i] = &schema.Transcription{Utterance: utterances[i], Error: msg}
		}
	}
	return results
}

// Stats holds aggregate statistics from a batch run.
type Stats struct {
	Total     int
	Succeeded int
	Failed    int
	ByDialect map[string]int
	ByVoice   map[string]int
	ByError   map[string]int
}

// Aggregate computes statistics from batch results.
func Aggregate(results []*schema.Transcription) *Stats {
	stats := &Stats{
		Total:     len(results),
		ByDialect: make(map[string]int),
		ByVoice:   make(map[string]int),
		ByError:   make(map[string]int),
	}

	for _, r := range results {
		if r.Failed() {
			stats.Failed++
			stats.ByError[r.Error]++
			continue
		}
		stats.Succeeded++
		stats.ByDialect[r.Dialect]++
		stats.ByVoice[r.Voice]++
	}

	return stats
}
