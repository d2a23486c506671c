package usecases_port

import (
	"context"

	"storefront-service/internal/core/domain"
)

type CurrencyProviderUseCase interface {
	Snapshot() domain.RateSnapshot
	Refresh(ctx context.Context)
	ConvertToLocal(usd float64) float64
	ConvertToUSD(local float64) (float64, error)
}
