// Package i18n localizes API response messages based on Accept-Language.
package i18n

import (
	"encoding/json"
	"fmt"
	"strings"

	"lingo-gate/internal/i18n/locales"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var (
	bundle *i18n.Bundle
)

// Init initializes i18n.
func Init() error {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	// Load supported language files
	languages := []string{"en-US", "zh-CN", "ja-JP"}
	for _, lang := range languages {
		if err := loadMessageFile(lang); err != nil {
			return fmt.Errorf("failed to load language file %s: %w", lang, err)
		}
	}

	return nil
}

// loadMessageFile loads a language file.
func loadMessageFile(lang string) error {
	messages := getMessages(lang)
	for id, msg := range messages {
		bundle.AddMessages(language.MustParse(lang), &i18n.Message{
			ID:    id,
			Other: msg,
		})
	}

	return nil
}

// getMessages returns the message map for a language.
func getMessages(lang string) map[string]string {
	switch lang {
	case "zh-CN":
		return locales.MessagesZhCN
	case "ja-JP":
		return locales.MessagesJaJP
	default:
		return locales.MessagesEnUS
	}
}

// GetLocalizer gets a localizer for the given Accept-Language header value.
func GetLocalizer(acceptLang string) *i18n.Localizer {
	langs := parseAcceptLanguage(acceptLang)

	if len(langs) == 0 {
		langs = []string{"en-US"}
	}

	return i18n.NewLocalizer(bundle, langs...)
}

// parseAcceptLanguage parses the Accept-Language header.
func parseAcceptLanguage(acceptLang string) []string {
	if acceptLang == "" {
		return nil
	}

	// Simple parsing, only take the first language
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(parts[0])
		// Remove quality factor (q=...)
		if idx := strings.Index(lang, ";"); idx > 0 {
			lang = lang[:idx]
		}

		lang = normalizeLanguageCode(lang)
		return []string{lang}
	}

	return nil
}

// normalizeLanguageCode maps loose language tags to supported locale codes.
func normalizeLanguageCode(lang string) string {
	lang = strings.TrimSpace(lang)
	if idx := strings.Index(lang, ";"); idx > 0 {
		lang = lang[:idx]
	}
	if idx := strings.Index(lang, ","); idx > 0 {
		lang = lang[:idx]
	}

	lower := strings.ToLower(lang)
	switch {
	case strings.HasPrefix(lower, "zh"):
		return "zh-CN"
	case strings.HasPrefix(lower, "ja"):
		return "ja-JP"
	case strings.HasPrefix(lower, "en"):
		return "en-US"
	default:
		return "en-US"
	}
}

// T translates a message by ID with optional template data.
func T(localizer *i18n.Localizer, msgID string, templateData ...map[string]any) string {
	config := &i18n.LocalizeConfig{
		MessageID: msgID,
	}
	if len(templateData) > 0 && templateData[0] != nil {
		config.TemplateData = templateData[0]
	}

	msg, err := localizer.Localize(config)
	if err != nil {
		// Fall back to the message ID when no translation exists
		return msgID
	}
	return msg
}
