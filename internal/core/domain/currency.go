package domain

import "time"

// RateSnapshot is the state of the exchange rate provider at one moment:
// the last good USD rate for the local currency, when it was fetched,
// whether a fetch is in flight, and the last fetch error if any.
type RateSnapshot struct {
	Rate        float64
	Currency    string
	LastUpdated time.Time
	Loading     bool
	FetchError  string
}
