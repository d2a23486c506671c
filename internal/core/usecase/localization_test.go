package usecase

import (
	"context"
	"testing"

	"storefront-service/internal/adapters/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguage_DefaultsWhenUnset(t *testing.T) {
	uc := NewLocalizationUseCase(storage.NewMemoryPreferenceStore())

	assert.Equal(t, DefaultLanguage, uc.Language(context.Background(), "visitor-1"))
}

func TestLanguage_InvalidStoredValueFallsBack(t *testing.T) {
	store := storage.NewMemoryPreferenceStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "visitor:visitor-1:language", "!!not-a-language!!"))

	uc := NewLocalizationUseCase(store)
	assert.Equal(t, DefaultLanguage, uc.Language(ctx, "visitor-1"))
}

func TestSetLanguage_PersistsCanonicalCode(t *testing.T) {
	uc := NewLocalizationUseCase(storage.NewMemoryPreferenceStore())
	ctx := context.Background()

	canonical, err := uc.SetLanguage(ctx, "visitor-1", "en-US")
	require.NoError(t, err)
	assert.Equal(t, "en-US", canonical)
	assert.Equal(t, "en-US", uc.Language(ctx, "visitor-1"))

	// Another visitor is unaffected.
	assert.Equal(t, DefaultLanguage, uc.Language(ctx, "visitor-2"))
}

func TestSetLanguage_AcceptsCloseMatches(t *testing.T) {
	uc := NewLocalizationUseCase(storage.NewMemoryPreferenceStore())

	canonical, err := uc.SetLanguage(context.Background(), "visitor-1", "en")
	require.NoError(t, err)
	assert.Equal(t, "en-US", canonical)

	canonical, err = uc.SetLanguage(context.Background(), "visitor-1", "pt")
	require.NoError(t, err)
	assert.Equal(t, "pt-BR", canonical)
}

func TestSetLanguage_RejectsUnsupportedCodes(t *testing.T) {
	uc := NewLocalizationUseCase(storage.NewMemoryPreferenceStore())

	for _, code := range []string{"fr", "de-DE", "not a tag", ""} {
		_, err := uc.SetLanguage(context.Background(), "visitor-1", code)
		assert.ErrorIs(t, err, ErrUnsupportedLang, "code %q", code)
	}
}

func TestTranslate(t *testing.T) {
	uc := NewLocalizationUseCase(storage.NewMemoryPreferenceStore())

	assert.Equal(t, "Entrar", uc.Translate("pt-BR", "header.login"))
	assert.Equal(t, "Login", uc.Translate("en-US", "header.login"))

	// Unknown keys come back verbatim.
	assert.Equal(t, "no.such.key", uc.Translate("en-US", "no.such.key"))

	// Unknown languages fall back to the default table.
	assert.Equal(t, "Entrar", uc.Translate("fr", "header.login"))
}

func TestTable(t *testing.T) {
	uc := NewLocalizationUseCase(storage.NewMemoryPreferenceStore())

	table, ok := uc.Table("es-ES")
	require.True(t, ok)
	assert.NotEmpty(t, table)

	_, ok = uc.Table("fr")
	assert.False(t, ok)
}

func TestSupported(t *testing.T) {
	uc := NewLocalizationUseCase(storage.NewMemoryPreferenceStore())

	assert.Equal(t, []string{"pt-BR", "en-US", "es-ES"}, uc.Supported())
}
