package lang

import (
	"fmt"
	"strings"
)

// validLanguages contains ISO 639-1 language codes supported by AssemblyAI's
// transcription models. Not exhaustive; covers the languages the speech models
// document support for.
var validLanguages = map[string]bool{
	"de": true, // German
	"en": true, // English
	"es": true, // Spanish
	"fi": true, // Finnish
	"fr": true, // French
	"hi": true, // Hindi
	"it": true, // Italian
	"ja": true, // Japanese
	"ko": true, // Korean
	"nl": true, // Dutch
	"pl": true, // Polish
	"pt": true, // Portuguese
	"ru": true, // Russian
	"tr": true, // Turkish
	"uk": true, // Ukrainian
	"vi": true, // Vietnamese
	"zh": true, // Chinese
}

// Normalize normalizes a language code to AssemblyAI's lowercase underscore
// form. Accepts: "en-US", "en_US", "EN_US", "en_us" -> "en_us"
func Normalize(lang string) string {
	return strings.ToLower(strings.ReplaceAll(lang, "-", "_"))
}

// Validate checks if the language code is valid.
// Accepts ISO 639-1 codes (e.g., "en", "fr") and locales (e.g., "en_us").
// Returns ErrInvalid if the base language is not recognized.
func Validate(lang string) error {
	if lang == "" {
		return nil // Empty means the provider's default
	}

	if !validLanguages[BaseCode(lang)] {
		return fmt.Errorf("invalid language code %q (use ISO 639-1 codes like 'en', 'fr', 'en_us'): %w",
			lang, ErrInvalid)
	}

	return nil
}

// BaseCode extracts the ISO 639-1 base language code from a locale.
// Examples: "en_us" -> "en", "pt-BR" -> "pt", "en" -> "en"
func BaseCode(lang string) string {
	normalized := Normalize(lang)
	if idx := strings.Index(normalized, "_"); idx != -1 {
		return normalized[:idx]
	}
	return normalized
}
