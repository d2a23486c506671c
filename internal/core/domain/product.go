package domain

// SKU is the sellable form of an artwork.
type SKU string

const (
	SKUOriginal SKU = "original"
	SKUPrint    SKU = "print"
	SKUMug      SKU = "mug"
	SKUPen      SKU = "pen"
	SKUCustom   SKU = "custom"
)

// KnownSKUs lists every variant the storefront can sell directly.
// SKUCustom is intentionally absent: custom commissions are priced
// through a quote, never through the catalog price table.
var KnownSKUs = []SKU{SKUOriginal, SKUPrint, SKUMug, SKUPen}

type Product struct {
	ID       string
	Title    string
	ArtistID string
	Artist   string
	Image    string

	// PricesUSD maps a sellable variant to its catalog price in USD.
	PricesUSD map[SKU]float64

	// HasCustomService reports whether the artist offers this artwork
	// as a custom painted commission.
	HasCustomService bool
}

// VariantPrice returns the catalog price of the given variant.
func (p Product) VariantPrice(sku SKU) (float64, bool) {
	price, ok := p.PricesUSD[sku]
	return price, ok
}
