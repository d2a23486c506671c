package usecases_port

import (
	"context"

	"storefront-service/internal/core/domain"
)

type CartOperationsUseCase interface {
	GetCart(ctx context.Context, cartID string) (*domain.Cart, error)
	AddItem(ctx context.Context, cartID string, productID string, sku domain.SKU, quantity int) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, cartID string, key domain.LineKey, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, cartID string, key domain.LineKey) (*domain.Cart, error)
	Checkout(ctx context.Context, cartID string) (string, error)
}
