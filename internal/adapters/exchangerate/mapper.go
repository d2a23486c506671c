package exchangerate

import "fmt"

// toDomainRate extracts the single rate the storefront cares about from
// the full rates table, isolating the core from the endpoint's format.
func toDomainRate(dto latestRatesResponse, currencyCode string) (float64, error) {
	if len(dto.Rates) == 0 {
		return 0, fmt.Errorf("exchange rate mapper: response has no rates object")
	}
	rate, ok := dto.Rates[currencyCode]
	if !ok {
		return 0, fmt.Errorf("exchange rate mapper: rates object has no %q entry", currencyCode)
	}
	if rate <= 0 {
		return 0, fmt.Errorf("exchange rate mapper: %s rate %v is not positive", currencyCode, rate)
	}
	return rate, nil
}
