package models

// Language identifies one of the two supported response languages.
type Language string

const (
	LangEnglish Language = "en"
	LangTelugu  Language = "te"
)

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	return l == LangEnglish || l == LangTelugu
}

// Localized holds the English and Telugu renderings of one piece of text.
// Every response-producing call threads a Language through and picks one side.
type Localized struct {
	EN string
	TE string
}

// Get returns the text for lang, falling back to English for anything
// that is not Telugu.
func (t Localized) Get(lang Language) string {
	if lang == LangTelugu {
		return t.TE
	}
	return t.EN
}
