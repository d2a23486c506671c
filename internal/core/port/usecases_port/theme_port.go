package usecases_port

import "storefront-service/internal/core/domain"

type ThemeUseCase interface {
	Current() domain.Theme
	SetCurrentArtist(artistID string) (domain.Theme, error)
}
