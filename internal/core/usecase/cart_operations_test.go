package usecase

import (
	"context"
	"testing"

	"storefront-service/internal/adapters/storage"
	"storefront-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartFixture(sessionState domain.SessionState) *CartOperationsUseCase {
	catalog := &mockCatalog{
		artists: []domain.Artist{
			{ID: "1", Name: "A Fase", CommissionRatePerM2USD: 800},
		},
		products: []domain.Product{
			{
				ID:       "1",
				Title:    "Cidade Neon",
				ArtistID: "1",
				Artist:   "A Fase",
				PricesUSD: map[domain.SKU]float64{
					domain.SKUOriginal: 4500,
					domain.SKUPrint:    89,
					domain.SKUMug:      32,
				},
			},
			{
				ID:       "2",
				Title:    "Reflexos Urbanos",
				ArtistID: "1",
				Artist:   "A Fase",
				PricesUSD: map[domain.SKU]float64{
					domain.SKUPrint: 69,
				},
			},
		},
	}
	session := &mockSession{session: domain.Session{State: sessionState}}
	return NewCartOperationsUseCase(storage.NewMemoryCartStore(), catalog, session)
}

func TestGetCart_UnknownIDIsEmptyCart(t *testing.T) {
	uc := cartFixture(domain.StateLoggedOut)

	cart, err := uc.GetCart(context.Background(), "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, "visitor-1", cart.ID)
	assert.Empty(t, cart.Lines)
}

func TestAddItem_PricesFromCatalog(t *testing.T) {
	uc := cartFixture(domain.StateLoggedOut)

	cart, err := uc.AddItem(context.Background(), "visitor-1", "1", domain.SKUPrint, 1)
	require.NoError(t, err)

	require.Len(t, cart.Lines, 1)
	line := cart.Lines[0]
	assert.Equal(t, domain.LineKey("1-print"), line.Key)
	assert.Equal(t, "Cidade Neon", line.Title)
	assert.Equal(t, "A Fase", line.Artist)
	assert.InDelta(t, 89, line.UnitPriceUSD, 1e-9)
	assert.Equal(t, 1, line.Quantity)
}

func TestAddItem_SameVariantMerges(t *testing.T) {
	uc := cartFixture(domain.StateLoggedOut)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "visitor-1", "1", domain.SKUPrint, 1)
	require.NoError(t, err)
	cart, err := uc.AddItem(ctx, "visitor-1", "1", domain.SKUPrint, 2)
	require.NoError(t, err)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
}

func TestAddItem_DifferentVariantsStaySeparate(t *testing.T) {
	uc := cartFixture(domain.StateLoggedOut)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "visitor-1", "1", domain.SKUPrint, 1)
	require.NoError(t, err)
	cart, err := uc.AddItem(ctx, "visitor-1", "1", domain.SKUMug, 1)
	require.NoError(t, err)

	require.Len(t, cart.Lines, 2)
	assert.Equal(t, domain.LineKey("1-print"), cart.Lines[0].Key)
	assert.Equal(t, domain.LineKey("1-mug"), cart.Lines[1].Key)
	assert.InDelta(t, 89+32, cart.TotalPriceUSD(), 1e-9)
}

func TestAddItem_UnknownProduct(t *testing.T) {
	uc := cartFixture(domain.StateLoggedOut)

	_, err := uc.AddItem(context.Background(), "visitor-1", "99", domain.SKUPrint, 1)
	assert.ErrorIs(t, err, ErrUnknownProduct)
}

func TestAddItem_VariantNotSoldForProduct(t *testing.T) {
	uc := cartFixture(domain.StateLoggedOut)

	// Product 2 only sells prints.
	_, err := uc.AddItem(context.Background(), "visitor-1", "2", domain.SKUMug, 1)
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	uc := cartFixture(domain.StateLoggedOut)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "visitor-1", "1", domain.SKUPrint, 2)
	require.NoError(t, err)

	cart, err := uc.UpdateQuantity(ctx, "visitor-1", "1-print", 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)

	// The removal must survive a reload from the store.
	cart, err = uc.GetCart(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestRemoveItem_UnknownKeyLeavesCartUntouched(t *testing.T) {
	uc := cartFixture(domain.StateLoggedOut)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "visitor-1", "1", domain.SKUPrint, 1)
	require.NoError(t, err)

	cart, err := uc.RemoveItem(ctx, "visitor-1", "99-print")
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 1)
}

func TestCheckout_RequiresLogin(t *testing.T) {
	uc := cartFixture(domain.StateLoggedOut)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "visitor-1", "1", domain.SKUPrint, 1)
	require.NoError(t, err)

	_, err = uc.Checkout(ctx, "visitor-1")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestCheckout_RejectsEmptyCart(t *testing.T) {
	uc := cartFixture(domain.StateLoggedIn)

	_, err := uc.Checkout(context.Background(), "visitor-1")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckout_ClearsCartAndReturnsOrderRef(t *testing.T) {
	uc := cartFixture(domain.StateLoggedIn)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "visitor-1", "1", domain.SKUPrint, 2)
	require.NoError(t, err)

	orderRef, err := uc.Checkout(ctx, "visitor-1")
	require.NoError(t, err)
	assert.NotEmpty(t, orderRef)

	cart, err := uc.GetCart(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}
