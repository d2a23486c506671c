package usecases_port

import (
	"context"

	"storefront-service/internal/core/domain"
)

type CommissionQuoteUseCase interface {
	// Execute returns ok=false when the dimensions are missing,
	// non-numeric or not positive; the quote must then be withheld.
	Execute(ctx context.Context, artistID, widthCm, heightCm string) (domain.CommissionQuote, bool, error)
}
