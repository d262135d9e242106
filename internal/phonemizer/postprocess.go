package phonemizer

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// syllabic is the combining vertical line below (U+0329).
const syllabic = "̩"

// mergeTable collapses diphthongs and affricates, written with a "^" tie,
// into the single stand-in symbols of the model vocabulary. It is sorted by
// descending pattern length so a longer sequence is merged before a shorter
// pattern can consume part of it; equal lengths keep the authored order.
var mergeTable = sortByPatternLength(pairs(
	"ʔˌn"+syllabic, "tn",
	"ʔn"+syllabic, "tn",
	"ʔn", "tn",
	"ʔ", "t",
	"a^ɪ", "I",
	"a^ʊ", "W",
	"d^ʒ", "ʤ",
	"e", "A",
	"e^ɪ", "A",
	"r", "ɹ",
	"t^ʃ", "ʧ",
	"x", "k",
	"ç", "k",
	"ɐ", "ə",
	"ɔ^ɪ", "Y",
	"ə^l", "ᵊl",
	"ɚ", "əɹ",
	"ɬ", "l",
	"ʲ", "",
	"ʲO", "jO",
	"ʲQ", "jQ",
))

// syllabicRules moves a syllabic mark in front of the symbol it follows as
// a schwa, then drops any marks left over.
var syllabicRules = RuleTable{
	Regex(`(\S)`+syllabic, "ᵊ$1"),
	Literal(syllabic, ""),
}

// britishRules give en-GB its vowel realizations; Q marks the GB GOAT vowel.
var britishRules = pairs(
	"e^ə", "ɛː",
	"iə", "ɪə",
	"ə^ʊ", "Q",
)

// defaultRules apply to every other dialect: rhotic vowels are normalized
// and length marks removed.
var defaultRules = pairs(
	"o^ʊ", "O",
	"ɜːɹ", "ɜɹ",
	"ɜː", "ɜɹ",
	"ɪə", "iə",
	"ː", "",
)

var finalRules = pairs(
	"o", "ɔ",
	"^", "",
)

func sortByPatternLength(t RuleTable) RuleTable {
	sorted := make(RuleTable, len(t))
	copy(sorted, t)
	sort.SliceStable(sorted, func(i, j int) bool {
		return utf8.RuneCountInString(sorted[i].Pattern) > utf8.RuneCountInString(sorted[j].Pattern)
	})
	return sorted
}

// PostProcess normalizes the output of a dialect rule table into the
// model vocabulary. It runs for every dialect; only en-GB takes its own
// vowel branch.
func PostProcess(s string, d Dialect) string {
	s = strings.TrimSpace(s)
	s = mergeTable.Apply(s)
	s = syllabicRules.Apply(s)

	if d == EnglishGB {
		s = britishRules.Apply(s)
	} else {
		s = defaultRules.Apply(s)
	}

	return finalRules.Apply(s)
}

// MergeTable returns a copy of the sorted merge table.
func MergeTable() RuleTable {
	t := make(RuleTable, len(mergeTable))
	copy(t, mergeTable)
	return t
}
