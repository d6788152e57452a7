package sentiment

// Phrase lexicons, loaded once as package state and never mutated. Order is
// significant only in that every phrase is checked independently; the Arabic
// negative list keeps its spelling-variant entries ("سيئ", "سئ", "سء", "سيء")
// so each variant present in a text counts on its own.

var positiveArabic = []string{
	"اعجبني",
	"أعجبني",
	"حلو",
	"جيد",
	"ممتاز",
	"رائع",
	"مريح",
	"سريع",
	"جميل",
	"ممتازة",
	"افضل",
	"أفضل",
	"احب",
}

var negativeArabic = []string{
	"سيئ",
	"سئ",
	"سء",
	"سيء",
	"لم يعجبني",
	"لا يعجبني",
	"سيئة",
	"بطئ",
	"بطيء",
	"غالي",
	"سعره غالي",
	"رديء",
	"رديئة",
	"تجربة سيئة",
}

var positiveEnglish = []string{
	"i like",
	"i like this",
	"like this",
	"like it",
	"good",
	"great",
	"excellent",
	"perfect",
	"love",
	"loved",
	"like",
	"liked",
	"amazing",
	"fast",
	"nice",
	"happy",
	"satisfied",
}

var negativeEnglish = []string{
	"bad",
	"very bad",
	"terrible",
	"awful",
	"slow",
	"hate",
	"dislike",
	"poor",
	"worst",
	"angry",
	"upset",
	"not good",
	"disappointed",
}

// Detected languages.
const (
	LangArabic  = "Arabic"
	LangEnglish = "English"
)

// DetectLanguage returns Arabic when any rune falls in the Arabic Unicode
// block (U+0600–U+06FF), otherwise English. The empty string is English.
func DetectLanguage(text string) string {
	for _, r := range text {
		if r >= 0x0600 && r <= 0x06FF {
			return LangArabic
		}
	}
	return LangEnglish
}

// lexiconFor selects the (positive, negative) phrase lists for a text.
func lexiconFor(text string) ([]string, []string) {
	if DetectLanguage(text) == LangArabic {
		return positiveArabic, negativeArabic
	}
	return positiveEnglish, negativeEnglish
}
