package phonemizer

import "errors"

var (
	// ErrLanguageNotFound is returned when a voice or dialect tag has no
	// supported language.
	ErrLanguageNotFound = errors.New("language not found")

	// ErrLanguageNotSet is returned by Phonemize before a language is selected.
	ErrLanguageNotSet = errors.New("language not set")

	// ErrCouldNotPhonemize is returned when the selected dialect has no rule
	// table registered.
	ErrCouldNotPhonemize = errors.New("could not phonemize")
)
