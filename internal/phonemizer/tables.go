package phonemizer

// Rule tables are authored in lowercase and applied in the order written.
// Multi-letter patterns come before the single-letter fallbacks for the same
// letters, and a rule whose replacement contains a letter that a later rule
// rewrites is listed after that rule. Do not sort these tables.

// englishRules is shared by en-US and en-GB; the two only differ in
// post-processing.
var englishRules = pairs(
	// Suffixes and clusters
	"tion", "ʃən",
	"sion", "ʒən",
	"ture", "t^ʃɚ",
	"ough", "ɔː",
	"ould", "ʊd",
	"eigh", "A",
	"igh", "I",
	"tch", "t^ʃ",
	"dge", "d^ʒ",
	"ght", "t",

	// Consonant digraphs
	"ch", "t^ʃ",
	"sh", "ʃ",
	"th", "θ",
	"ph", "f",
	"wh", "w",
	"wr", "r",
	"kn", "n",
	"ck", "k",
	"ng", "ŋ",
	"qu", "kw",
	"gh", "",
	"ce", "sɛ",
	"ci", "sɪ",

	// Vowel digraphs
	"eer", "ɪə",
	"ear", "ɪə",
	"ai", "A",
	"ay", "A",
	"oi", "ɔ^ɪ",
	"oy", "ɔ^ɪ",
	"ow", "o^ʊ",
	"oa", "o^ʊ",
	"au", "ɔː",
	"aw", "ɔː",
	"ar", "ɑː",
	"or", "ɔː",
	"ir", "ɜː",
	"er", "ɚ",

	// Single letters, interleaved with the digraphs whose replacements
	// contain them.
	"i", "ɪ",
	"ee", "iː",
	"ea", "iː",
	"a", "æ",
	"ou", "a^ʊ",
	"ur", "ɜː",
	"u", "ʌ",
	"oo", "uː",
	"j", "d^ʒ",
	"ew", "juː",
	"y", "j",
	"e", "ɛ",
	"c", "k",
	"g", "ɡ",
	"q", "k",
	"x", "ks",
)

// japaneseRules strips ASCII letters left in mixed-script input, then maps
// each kana to its romanized phonemes. Kana patterns are single glyphs and
// never overlap.
var japaneseRules = join(
	RuleTable{Regex(`[A-Za-z]+`, "")},
	hiraganaRules,
	katakanaRules,
	pairs(
		"ー", "ː",
		"、", ",",
		"。", ".",
		"！", "!",
		"？", "?",
		"　", " ",
	),
)

var hiraganaRules = pairs(
	"あ", "a", "い", "i", "う", "ɯ", "え", "e", "お", "o",
	"か", "ka", "き", "ki", "く", "kɯ", "け", "ke", "こ", "ko",
	"が", "ɡa", "ぎ", "ɡi", "ぐ", "ɡɯ", "げ", "ɡe", "ご", "ɡo",
	"さ", "sa", "し", "ɕi", "す", "sɯ", "せ", "se", "そ", "so",
	"ざ", "za", "じ", "dʑi", "ず", "zɯ", "ぜ", "ze", "ぞ", "zo",
	"た", "ta", "ち", "tɕi", "つ", "tsɯ", "て", "te", "と", "to",
	"だ", "da", "ぢ", "dʑi", "づ", "zɯ", "で", "de", "ど", "do",
	"な", "na", "に", "ɲi", "ぬ", "nɯ", "ね", "ne", "の", "no",
	"は", "ha", "ひ", "hi", "ふ", "ɸɯ", "へ", "he", "ほ", "ho",
	"ば", "ba", "び", "bi", "ぶ", "bɯ", "べ", "be", "ぼ", "bo",
	"ぱ", "pa", "ぴ", "pi", "ぷ", "pɯ", "ぺ", "pe", "ぽ", "po",
	"ま", "ma", "み", "mi", "む", "mɯ", "め", "me", "も", "mo",
	"や", "ja", "ゆ", "jɯ", "よ", "jo",
	"ら", "ɾa", "り", "ɾi", "る", "ɾɯ", "れ", "ɾe", "ろ", "ɾo",
	"わ", "wa", "を", "o", "ん", "ɴ",
	"ゃ", "ja", "ゅ", "jɯ", "ょ", "jo", "っ", "ʔ",
	"ぁ", "a", "ぃ", "i", "ぅ", "ɯ", "ぇ", "e", "ぉ", "o",
)

var katakanaRules = pairs(
	"ア", "a", "イ", "i", "ウ", "ɯ", "エ", "e", "オ", "o",
	"カ", "ka", "キ", "ki", "ク", "kɯ", "ケ", "ke", "コ", "ko",
	"ガ", "ɡa", "ギ", "ɡi", "グ", "ɡɯ", "ゲ", "ɡe", "ゴ", "ɡo",
	"サ", "sa", "シ", "ɕi", "ス", "sɯ", "セ", "se", "ソ", "so",
	"ザ", "za", "ジ", "dʑi", "ズ", "zɯ", "ゼ", "ze", "ゾ", "zo",
	"タ", "ta", "チ", "tɕi", "ツ", "tsɯ", "テ", "te", "ト", "to",
	"ダ", "da", "ヂ", "dʑi", "ヅ", "zɯ", "デ", "de", "ド", "do",
	"ナ", "na", "ニ", "ɲi", "ヌ", "nɯ", "ネ", "ne", "ノ", "no",
	"ハ", "ha", "ヒ", "hi", "フ", "ɸɯ", "ヘ", "he", "ホ", "ho",
	"バ", "ba", "ビ", "bi", "ブ", "bɯ", "ベ", "be", "ボ", "bo",
	"パ", "pa", "ピ", "pi", "プ", "pɯ", "ペ", "pe", "ポ", "po",
	"マ", "ma", "ミ", "mi", "ム", "mɯ", "メ", "me", "モ", "mo",
	"ヤ", "ja", "ユ", "jɯ", "ヨ", "jo",
	"ラ", "ɾa", "リ", "ɾi", "ル", "ɾɯ", "レ", "ɾe", "ロ", "ɾo",
	"ワ", "wa", "ヲ", "o", "ン", "ɴ", "ヴ", "vɯ",
	"ャ", "ja", "ュ", "jɯ", "ョ", "jo", "ッ", "ʔ",
	"ァ", "a", "ィ", "i", "ゥ", "ɯ", "ェ", "e", "ォ", "o",
)

// chineseRules works on Pinyin letters. It is not syllable or tone aware.
var chineseRules = pairs(
	// Retroflex initials
	"zh", "ʈʂ",
	"ch", "ʈʂʰ",
	"sh", "ʂ",

	// Finals
	"iang", "iɑŋ",
	"uang", "uɑŋ",
	"ang", "ɑŋ",
	"eng", "əŋ",
	"ing", "iŋ",
	"ong", "ʊŋ",
	"ian", "iɛn",
	"iu", "io^ʊ",
	"ui", "uɛ^ɪ",
	"ai", "a^ɪ",
	"ei", "ɛ^ɪ",
	"ao", "a^ʊ",
	"ou", "o^ʊ",
	"ie", "iɛ",
	"üe", "yɛ",
	"ue", "yɛ",
	"er", "ɚ",
	"en", "ən",

	// Aspirated stops before the unaspirated ones that turn into them
	"p", "pʰ",
	"t", "tʰ",
	"k", "kʰ",
	"b", "p",
	"d", "t",
	"g", "k",

	"j", "tɕ",
	"q", "tɕʰ",
	"x", "ɕ",
	"z", "ts",
	"c", "tsʰ",
	"r", "ʐ",
	"y", "j",
	"ü", "y",
	"v", "y",
	"e", "ɤ",
)

// TableFor returns a copy of the rule table for dialect d.
func TableFor(d Dialect) (RuleTable, bool) {
	t, ok := tableFor(d)
	if !ok {
		return nil, false
	}
	return append(RuleTable(nil), t...), true
}

// tableFor returns the shared table itself. Callers must not modify it.
func tableFor(d Dialect) (RuleTable, bool) {
	switch d {
	case EnglishUS, EnglishGB:
		return englishRules, true
	case JapaneseJP:
		return japaneseRules, true
	case ChineseCN:
		return chineseRules, true
	case FrenchFR:
		return frenchRules, true
	case HindiIN:
		return hindiRules, true
	case ItalianIT:
		return italianRules, true
	case SpanishES:
		return spanishRules, true
	case PortugueseBR:
		return portugueseRules, true
	default:
		return nil, false
	}
}
