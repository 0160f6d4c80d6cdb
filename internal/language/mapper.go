// ============================================================================
// Scribe - Voice Dictation Assistant
// ============================================================================
//
// Package:     language
// Description: Keyboard layout folding and backend locale mapping
// Created:     2026-07-18
// License:     MIT
// ============================================================================

package language

import "strings"

// baseAliases folds ISO variants onto the canonical code after the script
// prefixes have been handled: Norwegian Bokmål onto generic Norwegian,
// the Mandarin ISO-639-3 code onto Chinese.
var baseAliases = map[string]string{
	"nb":  "no",
	"cmn": "zh",
}

// ToCanonical converts a keyboard/input-source identifier into the
// application's canonical language code. The function is total: every
// input yields a code, unrecognized base codes pass through lowercased.
//
// Input-source identifiers arrive script-qualified ("zh-Hans") or in
// ISO-639-3 form ("cmn"); the catalog does not distinguish those, so
// folding happens here, before any support lookup.
func ToCanonical(raw string) string {
	id := strings.ToLower(raw)

	// Script-qualified Chinese and Cantonese fold onto one code each.
	// The two prefix tests are kept separate on purpose: they target
	// different codes even though the suffixes look alike.
	if strings.HasPrefix(id, "zh-hans") || strings.HasPrefix(id, "zh-hant") {
		return "zh"
	}
	if strings.HasPrefix(id, "yue-hans") || strings.HasPrefix(id, "yue-hant") {
		return "yue"
	}

	base := id
	if idx := strings.Index(id, "-"); idx >= 0 {
		base = id[:idx]
	}

	if alias, ok := baseAliases[base]; ok {
		return alias
	}
	return base
}

// DefaultBackendLocale is used for canonical codes without a table entry.
// Locale negotiation is best effort; an unknown code must still produce a
// locale the backend can reject on its own terms.
const DefaultBackendLocale = "en-US"

// backendLocales maps canonical codes to the transcription backend's
// locale identifiers
var backendLocales = map[string]string{
	"ar":  "ar-SA",
	"de":  "de-DE",
	"en":  "en-US",
	"es":  "es-ES",
	"fr":  "fr-FR",
	"it":  "it-IT",
	"ja":  "ja-JP",
	"ko":  "ko-KR",
	"pt":  "pt-BR",
	"yue": "yue-CN",
	"zh":  "zh-CN",
}

// BackendLocale converts a canonical code into the backend locale
// identifier. Total: unknown codes map to DefaultBackendLocale.
func BackendLocale(code string) string {
	if locale, ok := backendLocales[code]; ok {
		return locale
	}
	return DefaultBackendLocale
}

// BackendLocales returns the full canonical-code to backend-locale table
func BackendLocales() map[string]string {
	out := make(map[string]string, len(backendLocales))
	for code, locale := range backendLocales {
		out[code] = locale
	}
	return out
}
