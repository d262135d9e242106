package phonemizer

// Accented glyphs are matched as written. "é" and "e" are different
// patterns; input is not Unicode-normalized.

// frenchRules maps "j" first because later replacements emit /j/ glides.
// "ʉ" holds /u/ from "ou" until the single-letter u rule has run.
var frenchRules = pairs(
	"j", "ʒ",

	"eau", "o",
	"aux", "o",
	"tion", "sjɔ̃",
	"oin", "wɛ̃",
	"ain", "ɛ̃",
	"ein", "ɛ̃",
	"ion", "jɔ̃",

	"ch", "ʃ",
	"gn", "ɲ",
	"qu", "k",
	"ph", "f",
	"th", "t",
	"ll", "l",
	"ss", "s",

	"ou", "ʉ",
	"oi", "wa",
	"ai", "ɛ",
	"ei", "ɛ",
	"au", "o",
	"œu", "ø",
	"eu", "ø",

	"an", "ɑ̃",
	"am", "ɑ̃",
	"en", "ɑ̃",
	"em", "ɑ̃",
	"in", "ɛ̃",
	"im", "ɛ̃",
	"on", "ɔ̃",
	"om", "ɔ̃",
	"un", "œ̃",

	"e", "ə",
	"y", "i",
	"u", "y",
	"ʉ", "u",

	"é", "e",
	"è", "ɛ",
	"ê", "ɛ",
	"ë", "ɛ",
	"à", "a",
	"â", "ɑ",
	"î", "i",
	"ï", "i",
	"ô", "o",
	"û", "y",
	"ù", "y",
	"ç", "s",
	"œ", "ø",

	"h", "",
	"r", "ʁ",
	"c", "k",
	"g", "ɡ",
	"q", "k",
	"x", "ks",
)

var italianRules = pairs(
	"sch", "sk",
	"gli", "ʎi",
	"gn", "ɲ",
	"sci", "ʃi",
	"sce", "ʃe",
	"chi", "ki",
	"che", "ke",
	"ghi", "ɡi",
	"ghe", "ɡe",
	"cia", "t^ʃa",
	"cio", "t^ʃo",
	"ciu", "t^ʃu",
	"ci", "t^ʃi",
	"ce", "t^ʃe",
	"gia", "d^ʒa",
	"gio", "d^ʒo",
	"giu", "d^ʒu",
	"gi", "d^ʒi",
	"ge", "d^ʒe",
	"qu", "kw",
	"zz", "tts",
	"z", "ts",
	"ch", "k",
	"gh", "ɡ",

	"à", "a",
	"è", "ɛ",
	"é", "e",
	"ì", "i",
	"í", "i",
	"ò", "ɔ",
	"ó", "o",
	"ù", "u",
	"ú", "u",

	"c", "k",
	"g", "ɡ",
	"h", "",
)

// spanishRules strips accents early so "cé" still reaches the "ce" rule.
// "x" is mapped before the rules that emit /x/.
var spanishRules = pairs(
	"güe", "ɡwe",
	"güi", "ɡwi",
	"á", "a",
	"é", "e",
	"í", "i",
	"ó", "o",
	"ú", "u",
	"ü", "u",
	"x", "ks",

	"ch", "t^ʃ",
	"ll", "ʝ",
	"rr", "r",
	"qu", "k",
	"gue", "ɡe",
	"gui", "ɡi",
	"ce", "θe",
	"ci", "θi",
	"ge", "xe",
	"gi", "xi",
	"ñ", "ɲ",
	"j", "x",
	"z", "θ",
	"c", "k",
	"g", "ɡ",
	"h", "",
	"v", "b",
	"y", "ʝ",
)

// portugueseRules follows Brazilian pronunciation. "j" is mapped first
// because the nasal diphthong rules emit /j/ glides, and "h" is dropped
// before "rr" emits it.
var portugueseRules = pairs(
	"j", "ʒ",
	"ções", "sõjs",
	"ção", "sɐ̃w̃",
	"ão", "ɐ̃w̃",
	"õe", "õj",

	"á", "a",
	"à", "a",
	"â", "ɐ",
	"ã", "ɐ̃",
	"é", "ɛ",
	"ê", "e",
	"í", "i",
	"ó", "ɔ",
	"ô", "o",
	"ú", "u",

	"lh", "ʎ",
	"nh", "ɲ",
	"ch", "ʃ",
	"h", "",
	"rr", "h",
	"ss", "s",
	"qu", "k",
	"gue", "ɡe",
	"gui", "ɡi",
	"ce", "se",
	"ci", "si",
	"ge", "ʒe",
	"gi", "ʒi",
	"ti", "t^ʃi",
	"di", "d^ʒi",
	"ç", "s",
	"x", "ʃ",
	"c", "k",
	"g", "ɡ",
	"r", "ɾ",
)

// hindiRules gives every consonant its inherent schwa, then lets the vowel
// signs and the virama rewrite that schwa. Nukta sequences and the ज्ञ
// conjunct precede the consonants they start with.
var hindiRules = pairs(
	"ज्ञ", "ɡjə",

	// Nukta, precomposed and decomposed
	"\u0958", "qə", "\u0915\u093c", "qə",
	"\u0959", "xə", "\u0916\u093c", "xə",
	"\u095a", "ɣə", "\u0917\u093c", "ɣə",
	"\u095b", "zə", "\u091c\u093c", "zə",
	"\u095c", "ɽə", "\u0921\u093c", "ɽə",
	"\u095d", "ɽʱə", "\u0922\u093c", "ɽʱə",
	"\u095e", "fə", "\u092b\u093c", "fə",

	// Consonants
	"क", "kə", "ख", "kʰə", "ग", "ɡə", "घ", "ɡʱə", "ङ", "ŋə",
	"च", "t^ʃə", "छ", "t^ʃʰə", "ज", "d^ʒə", "झ", "d^ʒʱə", "ञ", "ɲə",
	"ट", "ʈə", "ठ", "ʈʰə", "ड", "ɖə", "ढ", "ɖʱə", "ण", "ɳə",
	"त", "t̪ə", "थ", "t̪ʰə", "द", "d̪ə", "ध", "d̪ʱə", "न", "nə",
	"प", "pə", "फ", "pʰə", "ब", "bə", "भ", "bʱə", "म", "mə",
	"य", "jə", "र", "rə", "ल", "lə", "व", "ʋə",
	"श", "ʃə", "ष", "ʂə", "स", "sə", "ह", "ɦə",

	// Vowel signs replace the inherent schwa
	"əा", "aː",
	"əि", "ɪ",
	"əी", "iː",
	"əु", "ʊ",
	"əू", "uː",
	"əृ", "rɪ",
	"əे", "eː",
	"əै", "ɛː",
	"əो", "oː",
	"əौ", "ɔː",
	"ə्", "",

	// Independent vowels
	"अ", "ə", "आ", "aː", "इ", "ɪ", "ई", "iː", "उ", "ʊ", "ऊ", "uː",
	"ऋ", "rɪ", "ए", "eː", "ऐ", "ɛː", "ओ", "oː", "औ", "ɔː",

	"ं", "n",
	"ँ", "\u0303",
	"ः", "h",
	"।", ".",
	"॥", ".",
)
