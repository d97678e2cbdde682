package gw2

// Language selects the locale for localized endpoints. The zero value is
// LanguageEn.
type Language string

// All languages supported by the API.
const (
	LanguageEn Language = "en"
	LanguageEs Language = "es"
	LanguageDe Language = "de"
	LanguageFr Language = "fr"
	LanguageZh Language = "zh"
)

// DefaultLanguage is used when the builder does not set one.
const DefaultLanguage = LanguageEn

// String returns the language tag sent in the lang query parameter.
func (l Language) String() string {
	return string(l)
}

// Valid reports whether l is one of the supported language tags.
func (l Language) Valid() bool {
	switch l {
	case LanguageEn, LanguageEs, LanguageDe, LanguageFr, LanguageZh:
		return true
	default:
		return false
	}
}
