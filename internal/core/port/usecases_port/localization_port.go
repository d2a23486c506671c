package usecases_port

import "context"

type LocalizationUseCase interface {
	Language(ctx context.Context, visitorID string) string
	SetLanguage(ctx context.Context, visitorID, code string) (string, error)
	Translate(lang, key string) string
	Table(lang string) (map[string]string, bool)
	Supported() []string
}
