package storage

import (
	"context"
	"testing"

	"storefront-service/internal/core/domain"
	"storefront-service/internal/core/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCartStore_GetUnknown(t *testing.T) {
	store := NewMemoryCartStore()

	_, err := store.Get(context.Background(), "visitor-1")
	assert.ErrorIs(t, err, port.ErrCartNotFound)
}

func TestMemoryCartStore_SaveAndGet(t *testing.T) {
	store := NewMemoryCartStore()
	ctx := context.Background()

	cart := domain.NewCart("visitor-1")
	cart.AddLine(domain.CartLine{Key: "1-print", ProductID: "1", SKU: domain.SKUPrint, UnitPriceUSD: 89, Quantity: 2})
	require.NoError(t, store.Save(ctx, cart))

	loaded, err := store.Get(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, cart.ID, loaded.ID)
	assert.Equal(t, cart.Lines, loaded.Lines)
}

func TestMemoryCartStore_CopiesOnReadAndWrite(t *testing.T) {
	store := NewMemoryCartStore()
	ctx := context.Background()

	cart := domain.NewCart("visitor-1")
	cart.AddLine(domain.CartLine{Key: "1-print", Quantity: 1})
	require.NoError(t, store.Save(ctx, cart))

	// Mutating the caller's cart after Save must not leak into the store.
	cart.Lines[0].Quantity = 99
	loaded, err := store.Get(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Lines[0].Quantity)

	// Neither must mutating a loaded copy.
	loaded.Lines[0].Quantity = 42
	reloaded, err := store.Get(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Lines[0].Quantity)
}

func TestMemoryCartStore_Delete(t *testing.T) {
	store := NewMemoryCartStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.NewCart("visitor-1")))
	require.NoError(t, store.Delete(ctx, "visitor-1"))

	_, err := store.Get(ctx, "visitor-1")
	assert.ErrorIs(t, err, port.ErrCartNotFound)
}

func TestMemoryPreferenceStore(t *testing.T) {
	store := NewMemoryPreferenceStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "visitor:1:language")
	assert.ErrorIs(t, err, port.ErrPreferenceNotFound)

	require.NoError(t, store.Set(ctx, "visitor:1:language", "en-US"))

	value, err := store.Get(ctx, "visitor:1:language")
	require.NoError(t, err)
	assert.Equal(t, "en-US", value)

	require.NoError(t, store.Set(ctx, "visitor:1:language", "es-ES"))
	value, err = store.Get(ctx, "visitor:1:language")
	require.NoError(t, err)
	assert.Equal(t, "es-ES", value)
}
