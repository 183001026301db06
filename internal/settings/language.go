package settings

import "fmt"

// Language is one of the supported UI languages. The stored value is the
// language's own name for itself.
type Language string

const (
	LanguageEnglish Language = "English"
	LanguageGerman  Language = "Deutsch"
)

func (l Language) String() string {
	return string(l)
}

func ParseLanguage(s string) (Language, error) {
	switch s {
	case "English":
		return LanguageEnglish, nil
	case "Deutsch", "German":
		return LanguageGerman, nil
	default:
		return "", fmt.Errorf("unknown language: %q", s)
	}
}

func AllLanguages() []Language {
	return []Language{LanguageEnglish, LanguageGerman}
}
