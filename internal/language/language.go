// ============================================================================
// Scribe - Voice Dictation Assistant
// ============================================================================
//
// Package:     language
// Description: Canonical language catalog
// Created:     2026-07-18
// License:     MIT
// ============================================================================

package language

// Language represents one transcription language known to the application
type Language struct {
	// Code is the canonical short code (e.g. "en", "zh", "yue")
	Code string

	// Name is the English name
	Name string

	// NativeName is the name in the language itself
	NativeName string
}

// catalog is the master list of languages the application can present.
// Codes are canonical: script variants and regional forms are folded onto
// these entries by ToCanonical before any lookup.
var catalog = []Language{
	{Code: "ar", Name: "Arabic", NativeName: "العربية"},
	{Code: "de", Name: "German", NativeName: "Deutsch"},
	{Code: "en", Name: "English", NativeName: "English"},
	{Code: "es", Name: "Spanish", NativeName: "Español"},
	{Code: "fr", Name: "French", NativeName: "Français"},
	{Code: "it", Name: "Italian", NativeName: "Italiano"},
	{Code: "ja", Name: "Japanese", NativeName: "日本語"},
	{Code: "ko", Name: "Korean", NativeName: "한국어"},
	{Code: "nl", Name: "Dutch", NativeName: "Nederlands"},
	{Code: "no", Name: "Norwegian", NativeName: "Norsk"},
	{Code: "pl", Name: "Polish", NativeName: "Polski"},
	{Code: "pt", Name: "Portuguese", NativeName: "Português"},
	{Code: "ru", Name: "Russian", NativeName: "Русский"},
	{Code: "sv", Name: "Swedish", NativeName: "Svenska"},
	{Code: "tr", Name: "Turkish", NativeName: "Türkçe"},
	{Code: "uk", Name: "Ukrainian", NativeName: "Українська"},
	{Code: "yue", Name: "Cantonese", NativeName: "粵語"},
	{Code: "zh", Name: "Chinese", NativeName: "中文"},
}

// codeIndex maps canonical codes to their Language entries
var codeIndex map[string]Language

func init() {
	codeIndex = make(map[string]Language, len(catalog))
	for _, lang := range catalog {
		codeIndex[lang.Code] = lang
	}
}

// FromCode returns the catalog entry for a canonical code.
// The second result is false for codes outside the catalog.
func FromCode(code string) (Language, bool) {
	lang, ok := codeIndex[code]
	return lang, ok
}

// List returns all catalog languages in stable order
func List() []Language {
	result := make([]Language, len(catalog))
	copy(result, catalog)
	return result
}

// Codes returns all canonical codes in catalog order
func Codes() []string {
	codes := make([]string, len(catalog))
	for i, lang := range catalog {
		codes[i] = lang.Code
	}
	return codes
}
