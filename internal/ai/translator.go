package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// SupportedLanguages lists the languages directions can be translated into.
// English is the passthrough default.
var SupportedLanguages = []string{
	"English",
	"Hindi",
	"Bengali",
	"Telugu",
	"Marathi",
	"Tamil",
	"Urdu",
	"Gujarati",
	"Kannada",
	"Malayalam",
	"Punjabi",
}

// Translator renders directions text into a target language via the AI
// provider.
type Translator struct {
	provider Provider
}

// NewTranslator creates a Translator backed by the given provider.
func NewTranslator(provider Provider) *Translator {
	return &Translator{provider: provider}
}

// IsSupported reports whether lang is a known target language.
func IsSupported(lang string) bool {
	for _, l := range SupportedLanguages {
		if strings.EqualFold(l, lang) {
			return true
		}
	}
	return false
}

const translatePromptFmt = `Translate the following text from English to %s.
Maintain the formatting and structure of the original text.
Keep any numbers, place names, and special terms intact.
Respond with a JSON object of the form {"translation": "<translated text>"}.

Text to translate:
%s`

// Translate returns text rendered in the target language. English (or an
// empty target) is a passthrough with no network call.
func (t *Translator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if text == "" || targetLanguage == "" || strings.EqualFold(targetLanguage, "English") {
		return text, nil
	}
	if !IsSupported(targetLanguage) {
		return "", fmt.Errorf("unsupported language: %s", targetLanguage)
	}

	reply, err := t.provider.GenerateText(ctx, fmt.Sprintf(translatePromptFmt, targetLanguage, text))
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}

	var payload struct {
		Translation string `json:"translation"`
	}
	if err := json.Unmarshal([]byte(CleanResponse(reply)), &payload); err != nil || strings.TrimSpace(payload.Translation) == "" {
		// Some replies come back as bare text despite the instruction.
		if trimmed := strings.TrimSpace(reply); trimmed != "" && !strings.HasPrefix(trimmed, "{") {
			return trimmed, nil
		}
		return "", fmt.Errorf("translate: malformed reply")
	}
	return payload.Translation, nil
}
