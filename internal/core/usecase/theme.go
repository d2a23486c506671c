package usecase

import (
	"fmt"
	"sync"

	"storefront-service/internal/core/domain"
	"storefront-service/internal/core/port"
)

// ThemeUseCase is the single writer of the storefront theme. Everything
// else only reads the current descriptor; nothing mutates theme state
// from anywhere else.
type ThemeUseCase struct {
	catalog port.CatalogPort

	mu      sync.RWMutex
	current domain.Theme
}

// NewThemeUseCase starts with the first catalog artist's theme, matching
// the storefront's initial render.
func NewThemeUseCase(catalog port.CatalogPort) *ThemeUseCase {
	uc := &ThemeUseCase{catalog: catalog}

	uc.current = domain.Theme{Tag: domain.ThemeDefault}
	if artists := catalog.Artists(); len(artists) > 0 {
		uc.current = domain.Theme{ArtistID: artists[0].ID, Tag: artists[0].Theme}
	}
	return uc
}

func (uc *ThemeUseCase) Current() domain.Theme {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.current
}

func (uc *ThemeUseCase) SetCurrentArtist(artistID string) (domain.Theme, error) {
	artist, ok := uc.catalog.ArtistByID(artistID)
	if !ok {
		return domain.Theme{}, fmt.Errorf("%w: %s", ErrUnknownArtist, artistID)
	}

	uc.mu.Lock()
	uc.current = domain.Theme{ArtistID: artist.ID, Tag: artist.Theme}
	theme := uc.current
	uc.mu.Unlock()

	return theme, nil
}
