package usecase

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"storefront-service/internal/core/domain"
	"storefront-service/internal/core/port"
	"storefront-service/internal/core/port/usecases_port"

	"github.com/google/uuid"
)

// CommissionQuoteUseCase prices a custom commissioned painting from
// user-entered dimensions and the selected artist's per-square-meter
// rate. Incomplete or malformed input is not an error: the quote is
// simply withheld until both dimensions parse as positive numbers.
type CommissionQuoteUseCase struct {
	catalog  port.CatalogPort
	currency usecases_port.CurrencyProviderUseCase
}

func NewCommissionQuoteUseCase(catalog port.CatalogPort, currency usecases_port.CurrencyProviderUseCase) *CommissionQuoteUseCase {
	return &CommissionQuoteUseCase{
		catalog:  catalog,
		currency: currency,
	}
}

func (uc *CommissionQuoteUseCase) Execute(ctx context.Context, artistID, widthCm, heightCm string) (domain.CommissionQuote, bool, error) {
	artist, ok := uc.catalog.ArtistByID(artistID)
	if !ok {
		return domain.CommissionQuote{}, false, fmt.Errorf("%w: %s", ErrUnknownArtist, artistID)
	}

	areaM2, totalUSD, ok := ComputePrice(artist.CommissionRatePerM2USD, widthCm, heightCm)
	if !ok {
		return domain.CommissionQuote{}, false, nil
	}

	width, _ := parseDimension(widthCm)
	height, _ := parseDimension(heightCm)

	snapshot := uc.currency.Snapshot()
	return domain.CommissionQuote{
		ID:            uuid.New().String(),
		ArtistID:      artist.ID,
		ArtistName:    artist.Name,
		WidthCm:       width,
		HeightCm:      height,
		AreaM2:        areaM2,
		RatePerM2USD:  artist.CommissionRatePerM2USD,
		TotalUSD:      totalUSD,
		TotalLocal:    uc.currency.ConvertToLocal(totalUSD),
		LocalCurrency: snapshot.Currency,
	}, true, nil
}

// ComputePrice is the pure pricing function: area in square meters from
// centimeter dimensions, price as area times the per-m2 rate. ok=false
// whenever either dimension is missing, non-numeric, zero or negative —
// a zero or negative price must never come out of here.
func ComputePrice(ratePerM2USD float64, widthCm, heightCm string) (areaM2, totalUSD float64, ok bool) {
	width, ok := parseDimension(widthCm)
	if !ok {
		return 0, 0, false
	}
	height, ok := parseDimension(heightCm)
	if !ok {
		return 0, 0, false
	}

	areaM2 = (width / 100) * (height / 100)
	totalUSD = areaM2 * ratePerM2USD
	return areaM2, totalUSD, true
}

func parseDimension(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	// ParseFloat accepts "NaN" and "inf" without error; neither is a
	// usable dimension.
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return 0, false
	}
	return value, true
}
