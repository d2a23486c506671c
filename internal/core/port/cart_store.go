package port

import (
	"context"
	"errors"

	"storefront-service/internal/core/domain"
)

var ErrCartNotFound = errors.New("cart not found")

type CartStorePort interface {
	// Get returns the cart with the given ID or ErrCartNotFound.
	Get(ctx context.Context, cartID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, cartID string) error
}
