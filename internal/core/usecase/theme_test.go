package usecase

import (
	"testing"

	"storefront-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func themeCatalog() *mockCatalog {
	return &mockCatalog{
		artists: []domain.Artist{
			{ID: "1", Name: "A Fase", Theme: domain.ThemeStreet},
			{ID: "3", Name: "Zezão", Theme: domain.ThemeAbstract},
		},
	}
}

func TestTheme_StartsWithFirstArtist(t *testing.T) {
	uc := NewThemeUseCase(themeCatalog())

	theme := uc.Current()
	assert.Equal(t, "1", theme.ArtistID)
	assert.Equal(t, domain.ThemeStreet, theme.Tag)
}

func TestTheme_EmptyCatalogFallsBackToDefault(t *testing.T) {
	uc := NewThemeUseCase(&mockCatalog{})

	theme := uc.Current()
	assert.Empty(t, theme.ArtistID)
	assert.Equal(t, domain.ThemeDefault, theme.Tag)
}

func TestSetCurrentArtist(t *testing.T) {
	uc := NewThemeUseCase(themeCatalog())

	theme, err := uc.SetCurrentArtist("3")
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeAbstract, theme.Tag)
	assert.Equal(t, theme, uc.Current())
}

func TestSetCurrentArtist_UnknownArtist(t *testing.T) {
	uc := NewThemeUseCase(themeCatalog())
	before := uc.Current()

	_, err := uc.SetCurrentArtist("99")
	assert.ErrorIs(t, err, ErrUnknownArtist)
	assert.Equal(t, before, uc.Current())
}
