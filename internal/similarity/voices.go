package similarity

import (
	"strings"

	"phonemize/internal/phonemizer"
)

// DefaultMaxDistance is the edit distance allowed for voice suggestions.
const DefaultMaxDistance = 3

// VoiceIndex suggests known voices for a misspelled voice tag.
type VoiceIndex struct {
	tree *BKTree[phonemizer.Voice]
}

// NewVoiceIndex indexes every known voice.
func NewVoiceIndex() *VoiceIndex {
	tree := NewBKTree[phonemizer.Voice]()
	for _, v := range phonemizer.Voices() {
		tree.Insert(string(v), v)
	}
	return &VoiceIndex{tree: tree}
}

// Suggest returns up to limit voices closest to name. Matching is case
// insensitive. A limit of zero or less returns all matches.
func (idx *VoiceIndex) Suggest(name string, limit int) []phonemizer.Voice {
	name = strings.ToLower(strings.TrimSpace(name))
	matches := idx.tree.Search(name, DefaultMaxDistance)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	voices := make([]phonemizer.Voice, len(matches))
	for i, m := range matches {
		voices[i] = m.Value
	}
	return voices
}

// Size returns the number of indexed voices.
func (idx *VoiceIndex) Size() int {
	return idx.tree.Size()
}
