package phonemizer

import (
	"fmt"
	"strings"
)

// Engine phonemizes text for one selected dialect.
//
// The selected dialect is the only state an Engine holds. An Engine is not
// safe for concurrent use: give each goroutine its own Engine, or guard a
// shared one with a mutex. The rule tables themselves are immutable and
// shared by all engines.
type Engine struct {
	dialect Dialect
}

// NewEngine returns an Engine with no language selected.
func NewEngine() *Engine {
	return &Engine{}
}

// SetLanguage selects the dialect spoken by voice v.
func (e *Engine) SetLanguage(v Voice) error {
	d, err := LanguageForVoice(v)
	if err != nil {
		return err
	}
	e.dialect = d
	return nil
}

// SetDialect selects dialect d directly. DialectNone clears the selection.
func (e *Engine) SetDialect(d Dialect) error {
	if d != DialectNone && !d.Valid() {
		return fmt.Errorf("%w: %s", ErrLanguageNotFound, d)
	}
	e.dialect = d
	return nil
}

// Dialect returns the selected dialect, or DialectNone.
func (e *Engine) Dialect() Dialect {
	return e.dialect
}

// Phonemize converts text into a phoneme string for the selected dialect.
// It fails with ErrLanguageNotSet if no language has been selected. Empty
// text yields an empty result without running any rules.
func (e *Engine) Phonemize(text string) (string, error) {
	if e.dialect == DialectNone {
		return "", ErrLanguageNotSet
	}
	if text == "" {
		return "", nil
	}

	table, ok := tableFor(e.dialect)
	if !ok {
		return "", fmt.Errorf("%w: no rules for %s", ErrCouldNotPhonemize, e.dialect)
	}

	s := table.Apply(strings.ToLower(text))
	return PostProcess(s, e.dialect), nil
}
