// Package schema defines utterance and transcription records for phonemize.
package schema

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Utterance is one line of input text with the voice that will speak it.
type Utterance struct {
	Line  int    `json:"line"`
	Voice string `json:"voice"`
	Text  string `json:"text"`
}

// Transcription is the phonemizer output for one utterance. Error is set
// instead of Phonemes when the utterance could not be phonemized.
type Transcription struct {
	Utterance
	Dialect  string `json:"dialect"`
	Phonemes string `json:"phonemes,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Failed reports whether phonemization failed.
func (t *Transcription) Failed() bool {
	return t.Error != ""
}

// Document is a collection of transcriptions for one dialect.
type Document struct {
	Name           string           `json:"name"`
	Dialect        string           `json:"dialect"`
	Voices         map[string]bool  `json:"-"`
	Transcriptions []*Transcription `json:"-"`
	GeneratedAt    string           `json:"generated_at"`
	RunID          string           `json:"run_id,omitempty"`
}

// NewDocument creates a new Document.
func NewDocument(name, dialect string) *Document {
	return &Document{
		Name:        name,
		Dialect:     dialect,
		Voices:      make(map[string]bool),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// Add appends a transcription and records its voice.
func (d *Document) Add(t *Transcription) {
	d.Transcriptions = append(d.Transcriptions, t)
	d.Voices[t.Voice] = true
}

// Count returns the number of transcriptions.
func (d *Document) Count() int {
	return len(d.Transcriptions)
}

// Sorted returns transcriptions in input line order.
func (d *Document) Sorted() []*Transcription {
	out := make([]*Transcription, len(d.Transcriptions))
	copy(out, d.Transcriptions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Line < out[j].Line
	})
	return out
}

// MarshalJSON implements custom JSON marshaling.
func (d *Document) MarshalJSON() ([]byte, error) {
	voices := make([]string, 0, len(d.Voices))
	for k := range d.Voices {
		voices = append(voices, k)
	}
	sort.Strings(voices)

	transcriptions := d.Sorted()
	failed := 0
	for _, t := range transcriptions {
		if t.Failed() {
			failed++
		}
	}

	return json.Marshal(&struct {
		Name           string           `json:"name"`
		Dialect        string           `json:"dialect"`
		Voices         []string         `json:"voices"`
		GeneratedAt    string           `json:"generated_at"`
		RunID          string           `json:"run_id,omitempty"`
		Count          int              `json:"count"`
		Failed         int              `json:"failed"`
		Transcriptions []*Transcription `json:"transcriptions"`
	}{
		Name:           d.Name,
		Dialect:        d.Dialect,
		Voices:         voices,
		GeneratedAt:    d.GeneratedAt,
		RunID:          d.RunID,
		Count:          d.Count(),
		Failed:         failed,
		Transcriptions: transcriptions,
	})
}

// Save saves the document to a JSON file.
func (d *Document) Save(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	return d.writeTo(file)
}

// writeTo encodes the document to w and closes it. A failed Close is
// reported even when encoding succeeded.
func (d *Document) writeTo(w io.WriteCloser) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(d); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
