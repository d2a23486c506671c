package domain

// CommissionQuote is an ephemeral derived price for a custom-sized
// commissioned painting. It is never persisted; the storefront shows it
// and the visitor either adds it to the cart or abandons it.
type CommissionQuote struct {
	ID         string
	ArtistID   string
	ArtistName string

	WidthCm  float64
	HeightCm float64
	AreaM2   float64

	RatePerM2USD float64
	TotalUSD     float64

	TotalLocal    float64
	LocalCurrency string
}
