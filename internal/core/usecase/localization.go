package usecase

import (
	"context"
	"errors"
	"fmt"

	"storefront-service/internal/contextkeys"
	"storefront-service/internal/core/port"

	"golang.org/x/text/language"
)

// DefaultLanguage is used whenever no valid preference is stored.
const DefaultLanguage = "pt-BR"

// supportedLanguages is the fixed allow-list of UI languages. Order
// matters: the first entry is the matcher's fallback.
var supportedLanguages = []string{"pt-BR", "en-US", "es-ES"}

// LocalizationUseCase resolves the visitor's UI language and serves the
// opaque key->string translation tables. The selected language is the
// only preference the storefront persists.
type LocalizationUseCase struct {
	prefs   port.PreferenceStorePort
	matcher language.Matcher
}

func NewLocalizationUseCase(prefs port.PreferenceStorePort) *LocalizationUseCase {
	tags := make([]language.Tag, len(supportedLanguages))
	for i, code := range supportedLanguages {
		tags[i] = language.MustParse(code)
	}
	return &LocalizationUseCase{
		prefs:   prefs,
		matcher: language.NewMatcher(tags),
	}
}

// Language returns the visitor's stored language, falling back to the
// default for absent or invalid stored values.
func (uc *LocalizationUseCase) Language(ctx context.Context, visitorID string) string {
	stored, err := uc.prefs.Get(ctx, languageKey(visitorID))
	if err != nil {
		if !errors.Is(err, port.ErrPreferenceNotFound) {
			contextkeys.LoggerFromContext(ctx).Warn("Failed to read language preference, using default", port.Fields{
				"visitor_id": visitorID,
				"error":      err.Error(),
			})
		}
		return DefaultLanguage
	}

	code, ok := uc.normalize(stored)
	if !ok {
		return DefaultLanguage
	}
	return code
}

// SetLanguage validates the code against the allow-list and persists
// it. It returns the canonical code that was stored.
func (uc *LocalizationUseCase) SetLanguage(ctx context.Context, visitorID, code string) (string, error) {
	canonical, ok := uc.normalize(code)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedLang, code)
	}
	if err := uc.prefs.Set(ctx, languageKey(visitorID), canonical); err != nil {
		return "", fmt.Errorf("localization: persist language for %s: %w", visitorID, err)
	}
	return canonical, nil
}

// Translate looks the key up in the language's table. Unknown keys come
// back verbatim so a missing translation never blanks the UI.
func (uc *LocalizationUseCase) Translate(lang, key string) string {
	table, ok := uc.Table(lang)
	if !ok {
		table = translations[DefaultLanguage]
	}
	if value, ok := table[key]; ok {
		return value
	}
	return key
}

func (uc *LocalizationUseCase) Table(lang string) (map[string]string, bool) {
	code, ok := uc.normalize(lang)
	if !ok {
		return nil, false
	}
	table, ok := translations[code]
	return table, ok
}

func (uc *LocalizationUseCase) Supported() []string {
	out := make([]string, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

// normalize maps the raw code onto the allow-list, accepting close
// matches like "en" for "en-US" but refusing anything else.
func (uc *LocalizationUseCase) normalize(code string) (string, bool) {
	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}
	_, index, confidence := uc.matcher.Match(tag)
	if confidence < language.High {
		return "", false
	}
	return supportedLanguages[index], true
}

func languageKey(visitorID string) string {
	return fmt.Sprintf("visitor:%s:language", visitorID)
}
