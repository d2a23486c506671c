package usecase

import (
	"context"
	"errors"
	"fmt"

	"storefront-service/internal/contextkeys"
	"storefront-service/internal/core/domain"
	"storefront-service/internal/core/port"
	"storefront-service/internal/core/port/usecases_port"

	"github.com/google/uuid"
)

var (
	ErrUnknownProduct  = errors.New("unknown product")
	ErrUnknownVariant  = errors.New("variant not sold for this product")
	ErrNotLoggedIn     = errors.New("checkout requires a logged-in session")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrUnknownArtist   = errors.New("unknown artist")
	ErrUnsupportedLang = errors.New("unsupported language")
)

// CartOperationsUseCase owns all cart mutations. Lines are priced from
// the catalog at add time, merged by composite key, and totals are
// always re-derived from the stored lines.
type CartOperationsUseCase struct {
	store   port.CartStorePort
	catalog port.CatalogPort
	session usecases_port.SessionUseCase
}

func NewCartOperationsUseCase(store port.CartStorePort, catalog port.CatalogPort, session usecases_port.SessionUseCase) *CartOperationsUseCase {
	return &CartOperationsUseCase{
		store:   store,
		catalog: catalog,
		session: session,
	}
}

// GetCart returns the stored cart, or a fresh empty one for an unknown
// ID. A visitor who has never added anything simply has an empty cart.
func (uc *CartOperationsUseCase) GetCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	cart, err := uc.store.Get(ctx, cartID)
	if errors.Is(err, port.ErrCartNotFound) {
		return domain.NewCart(cartID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cart operations: get cart %s: %w", cartID, err)
	}
	return cart, nil
}

func (uc *CartOperationsUseCase) AddItem(ctx context.Context, cartID string, productID string, sku domain.SKU, quantity int) (*domain.Cart, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "CartOperations.AddItem",
		"cart_id":  cartID,
	})

	product, ok := uc.catalog.ProductByID(productID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, productID)
	}
	price, ok := product.VariantPrice(sku)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownVariant, productID, sku)
	}

	cart, err := uc.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	cart.AddLine(domain.CartLine{
		Key:          domain.NewLineKey(product.ID, sku),
		ProductID:    product.ID,
		SKU:          sku,
		Title:        product.Title,
		Artist:       product.Artist,
		Image:        product.Image,
		UnitPriceUSD: price,
		Quantity:     quantity,
	})

	if err := uc.store.Save(ctx, cart); err != nil {
		logger.Error("Failed to save cart", err, nil)
		return nil, fmt.Errorf("cart operations: save cart %s: %w", cartID, err)
	}

	logger.Debug("Item added", port.Fields{
		"key":         domain.NewLineKey(product.ID, sku),
		"total_items": cart.TotalItems(),
	})
	return cart, nil
}

// UpdateQuantity sets the quantity of a line; zero or negative removes
// it. Unknown keys leave the cart untouched.
func (uc *CartOperationsUseCase) UpdateQuantity(ctx context.Context, cartID string, key domain.LineKey, quantity int) (*domain.Cart, error) {
	cart, err := uc.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	cart.SetQuantity(key, quantity)

	if err := uc.store.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("cart operations: save cart %s: %w", cartID, err)
	}
	return cart, nil
}

func (uc *CartOperationsUseCase) RemoveItem(ctx context.Context, cartID string, key domain.LineKey) (*domain.Cart, error) {
	cart, err := uc.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	cart.RemoveLine(key)

	if err := uc.store.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("cart operations: save cart %s: %w", cartID, err)
	}
	return cart, nil
}

// Checkout is simulated: it verifies the session, empties the cart and
// hands back an order reference. No payment is processed anywhere.
func (uc *CartOperationsUseCase) Checkout(ctx context.Context, cartID string) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "CartOperations.Checkout",
		"cart_id":  cartID,
	})

	if uc.session.Current().State != domain.StateLoggedIn {
		return "", ErrNotLoggedIn
	}

	cart, err := uc.GetCart(ctx, cartID)
	if err != nil {
		return "", err
	}
	if len(cart.Lines) == 0 {
		return "", ErrEmptyCart
	}

	orderRef := uuid.New().String()
	logger.Info("Simulated checkout completed", port.Fields{
		"order_ref":   orderRef,
		"total_items": cart.TotalItems(),
		"total_usd":   cart.TotalPriceUSD(),
	})

	cart.Clear()
	if err := uc.store.Save(ctx, cart); err != nil {
		return "", fmt.Errorf("cart operations: clear cart %s: %w", cartID, err)
	}
	return orderRef, nil
}
