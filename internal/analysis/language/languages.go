package language

// Supported maps the ISO 639-1 codes the engine understands to display names.
// Anything outside this set is rejected as a target language and never comes
// back from detection.
var Supported = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"ru": "Russian",
	"zh": "Chinese",
	"ja": "Japanese",
	"ko": "Korean",
	"ar": "Arabic",
	"hi": "Hindi",
	"nl": "Dutch",
	"sv": "Swedish",
	"no": "Norwegian",
	"da": "Danish",
	"fi": "Finnish",
	"pl": "Polish",
	"tr": "Turkish",
	"he": "Hebrew",
}

func IsSupported(code string) bool {
	_, ok := Supported[code]
	return ok
}

// Name resolves a code to its display name, defaulting to English for codes
// that slipped through validation.
func Name(code string) string {
	if name, ok := Supported[code]; ok {
		return name
	}
	return Supported["en"]
}
