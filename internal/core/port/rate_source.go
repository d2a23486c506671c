package port

import "context"

// RateSourcePort fetches the current exchange rate for one unit of the
// base currency (USD) expressed in the given local currency.
type RateSourcePort interface {
	FetchRate(ctx context.Context, currencyCode string) (float64, error)
}
