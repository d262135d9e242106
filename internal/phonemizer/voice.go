package phonemizer

import (
	"fmt"
	"sort"
)

// Voice is a voice tag of the acoustic model. The first letter of the tag
// encodes the language, the second the speaker gender.
type Voice string

// American English
const (
	VoiceAFAlloy   Voice = "af_alloy"
	VoiceAFAoede   Voice = "af_aoede"
	VoiceAFBella   Voice = "af_bella"
	VoiceAFHeart   Voice = "af_heart"
	VoiceAFJessica Voice = "af_jessica"
	VoiceAFKore    Voice = "af_kore"
	VoiceAFNicole  Voice = "af_nicole"
	VoiceAFNova    Voice = "af_nova"
	VoiceAFRiver   Voice = "af_river"
	VoiceAFSarah   Voice = "af_sarah"
	VoiceAFSky     Voice = "af_sky"
	VoiceAMAdam    Voice = "am_adam"
	VoiceAMEcho    Voice = "am_echo"
	VoiceAMEric    Voice = "am_eric"
	VoiceAMFenrir  Voice = "am_fenrir"
	VoiceAMLiam    Voice = "am_liam"
	VoiceAMMichael Voice = "am_michael"
	VoiceAMOnyx    Voice = "am_onyx"
	VoiceAMPuck    Voice = "am_puck"
)

// British English
const (
	VoiceBFAlice    Voice = "bf_alice"
	VoiceBFEmma     Voice = "bf_emma"
	VoiceBFIsabella Voice = "bf_isabella"
	VoiceBFLily     Voice = "bf_lily"
	VoiceBMDaniel   Voice = "bm_daniel"
	VoiceBMFable    Voice = "bm_fable"
	VoiceBMGeorge   Voice = "bm_george"
	VoiceBMLewis    Voice = "bm_lewis"
)

// Japanese
const (
	VoiceJFAlpha      Voice = "jf_alpha"
	VoiceJFGongitsune Voice = "jf_gongitsune"
	VoiceJFNezumi     Voice = "jf_nezumi"
	VoiceJFTebukuro   Voice = "jf_tebukuro"
	VoiceJMKumo       Voice = "jm_kumo"
)

// Mandarin Chinese
const (
	VoiceZFXiaobei  Voice = "zf_xiaobei"
	VoiceZFXiaoni   Voice = "zf_xiaoni"
	VoiceZFXiaoxiao Voice = "zf_xiaoxiao"
	VoiceZFXiaoyi   Voice = "zf_xiaoyi"
	VoiceZMYunjian  Voice = "zm_yunjian"
	VoiceZMYunxi    Voice = "zm_yunxi"
)

// Remaining languages
const (
	VoiceFFSiwis  Voice = "ff_siwis"
	VoiceHFAlpha  Voice = "hf_alpha"
	VoiceHFBeta   Voice = "hf_beta"
	VoiceHMOmega  Voice = "hm_omega"
	VoiceIFSara   Voice = "if_sara"
	VoiceIMNicola Voice = "im_nicola"
	VoiceEFDora   Voice = "ef_dora"
	VoiceEMAlex   Voice = "em_alex"
	VoicePFDora   Voice = "pf_dora"
	VoicePMAlex   Voice = "pm_alex"
)

// voiceLanguages maps every voice tag to its dialect. Several voices share a
// dialect; each voice has exactly one.
var voiceLanguages = map[Voice]Dialect{
	VoiceAFAlloy:   EnglishUS,
	VoiceAFAoede:   EnglishUS,
	VoiceAFBella:   EnglishUS,
	VoiceAFHeart:   EnglishUS,
	VoiceAFJessica: EnglishUS,
	VoiceAFKore:    EnglishUS,
	VoiceAFNicole:  EnglishUS,
	VoiceAFNova:    EnglishUS,
	VoiceAFRiver:   EnglishUS,
	VoiceAFSarah:   EnglishUS,
	VoiceAFSky:     EnglishUS,
	VoiceAMAdam:    EnglishUS,
	VoiceAMEcho:    EnglishUS,
	VoiceAMEric:    EnglishUS,
	VoiceAMFenrir:  EnglishUS,
	VoiceAMLiam:    EnglishUS,
	VoiceAMMichael: EnglishUS,
	VoiceAMOnyx:    EnglishUS,
	VoiceAMPuck:    EnglishUS,

	VoiceBFAlice:    EnglishGB,
	VoiceBFEmma:     EnglishGB,
	VoiceBFIsabella: EnglishGB,
	VoiceBFLily:     EnglishGB,
	VoiceBMDaniel:   EnglishGB,
	VoiceBMFable:    EnglishGB,
	VoiceBMGeorge:   EnglishGB,
	VoiceBMLewis:    EnglishGB,

	VoiceJFAlpha:      JapaneseJP,
	VoiceJFGongitsune: JapaneseJP,
	VoiceJFNezumi:     JapaneseJP,
	VoiceJFTebukuro:   JapaneseJP,
	VoiceJMKumo:       JapaneseJP,

	VoiceZFXiaobei:  ChineseCN,
	VoiceZFXiaoni:   ChineseCN,
	VoiceZFXiaoxiao: ChineseCN,
	VoiceZFXiaoyi:   ChineseCN,
	VoiceZMYunjian:  ChineseCN,
	VoiceZMYunxi:    ChineseCN,

	VoiceFFSiwis:  FrenchFR,
	VoiceHFAlpha:  HindiIN,
	VoiceHFBeta:   HindiIN,
	VoiceHMOmega:  HindiIN,
	VoiceIFSara:   ItalianIT,
	VoiceIMNicola: ItalianIT,
	VoiceEFDora:   SpanishES,
	VoiceEMAlex:   SpanishES,
	VoicePFDora:   PortugueseBR,
	VoicePMAlex:   PortugueseBR,
}

// LanguageForVoice returns the dialect a voice speaks.
func LanguageForVoice(v Voice) (Dialect, error) {
	d, ok := voiceLanguages[v]
	if !ok {
		return DialectNone, fmt.Errorf("%w: voice %q", ErrLanguageNotFound, string(v))
	}
	return d, nil
}

// Voices returns all known voice tags in sorted order.
func Voices() []Voice {
	voices := make([]Voice, 0, len(voiceLanguages))
	for v := range voiceLanguages {
		voices = append(voices, v)
	}
	sort.Slice(voices, func(i, j int) bool {
		return voices[i] < voices[j]
	})
	return voices
}

// VoicesFor returns the sorted voice tags that speak dialect d.
func VoicesFor(d Dialect) []Voice {
	var voices []Voice
	for _, v := range Voices() {
		if voiceLanguages[v] == d {
			voices = append(voices, v)
		}
	}
	return voices
}
