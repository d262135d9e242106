package speech

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"

	"phonemize/internal/config"
	"phonemize/internal/phonemizer"
)

// BreakerConfig controls when a BreakerModel stops calling its model.
type BreakerConfig struct {
	Name string
	// Failures is the number of consecutive failures that opens the breaker.
	Failures uint32
	// Timeout is how long the breaker stays open before a trial call.
	Timeout time.Duration
}

// BreakerConfigFrom builds breaker settings from the [speech] section of
// the configuration file.
func BreakerConfigFrom(s config.Speech) BreakerConfig {
	failures := s.BreakerFailures
	if failures < 1 {
		failures = 1
	}
	return BreakerConfig{
		Name:     "acoustic-model",
		Failures: uint32(failures),
		Timeout:  time.Duration(s.BreakerTimeoutMS) * time.Millisecond,
	}
}

// DefaultBreakerConfig returns the configured breaker settings.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfigFrom(config.Load().Speech)
}

// BreakerModel wraps an AcousticModel with a circuit breaker. While the
// breaker is open, Synthesize fails fast with gobreaker.ErrOpenState.
type BreakerModel struct {
	model AcousticModel
	cb    *gobreaker.CircuitBreaker
}

// NewBreakerModel wraps model.
func NewBreakerModel(model AcousticModel, cfg BreakerConfig) *BreakerModel {
	failures := cfg.Failures
	if failures == 0 {
		failures = 1
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		// Cancellation is the caller's doing, not a model fault.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
	}

	return &BreakerModel{
		model: model,
		cb:    gobreaker.NewCircuitBreaker(settings),
	}
}

// Synthesize calls the wrapped model through the breaker.
func (b *BreakerModel) Synthesize(ctx context.Context, phonemes string, voice phonemizer.Voice) ([]float32, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.model.Synthesize(ctx, phonemes, voice)
	})
	if err != nil {
		return nil, err
	}
	samples, _ := result.([]float32)
	return samples, nil
}

// State returns the breaker state name: "closed", "half-open" or "open".
func (b *BreakerModel) State() string {
	return b.cb.State().String()
}
