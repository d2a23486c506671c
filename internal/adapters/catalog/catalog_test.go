package catalog

import (
	"testing"

	"storefront-service/internal/core/domain"
	"storefront-service/internal/core/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, port.Fields)                 {}
func (nopLogger) Warn(string, port.Fields)                 {}
func (nopLogger) Error(string, error, port.Fields)         {}
func (nopLogger) Debug(string, port.Fields)                {}
func (n nopLogger) WithFields(port.Fields) port.LoggerPort { return n }

func TestNewCatalog_LoadsEmbeddedDocument(t *testing.T) {
	c, err := NewCatalog(nopLogger{})
	require.NoError(t, err)

	assert.Len(t, c.Artists(), 10)
	assert.Len(t, c.Products(), 6)
}

func TestCatalog_Lookups(t *testing.T) {
	c, err := NewCatalog(nopLogger{})
	require.NoError(t, err)

	artist, ok := c.ArtistByID("1")
	require.True(t, ok)
	assert.Equal(t, "A Fase", artist.Name)
	assert.Equal(t, domain.ThemeStreet, artist.Theme)
	assert.InDelta(t, 800, artist.CommissionRatePerM2USD, 1e-9)

	_, ok = c.ArtistByID("99")
	assert.False(t, ok)

	product, ok := c.ProductByID("1")
	require.True(t, ok)
	assert.Equal(t, "Cidade Neon", product.Title)
	assert.Equal(t, "A Fase", product.Artist)

	price, ok := product.VariantPrice(domain.SKUPrint)
	require.True(t, ok)
	assert.InDelta(t, 89, price, 1e-9)
}

func TestCatalog_ProductsByArtist(t *testing.T) {
	c, err := NewCatalog(nopLogger{})
	require.NoError(t, err)

	products := c.ProductsByArtist("1")
	assert.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, "1", p.ArtistID)
	}

	assert.Empty(t, c.ProductsByArtist("99"))
}

func TestCatalog_EveryProductPricesKnownVariants(t *testing.T) {
	c, err := NewCatalog(nopLogger{})
	require.NoError(t, err)

	for _, p := range c.Products() {
		require.NotEmpty(t, p.PricesUSD, "product %s has no prices", p.ID)
		for sku, price := range p.PricesUSD {
			assert.Contains(t, domain.KnownSKUs, sku, "product %s", p.ID)
			assert.Greater(t, price, 0.0, "product %s variant %s", p.ID, sku)
		}
	}
}

func TestNewCatalogFromBytes_RejectsSchemaViolations(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{
			"not json",
			`{"artists": [`,
		},
		{
			"missing commission rate",
			`{"artists":[{"id":"1","name":"A","handle":"@a","theme":"street"}],"products":[]}`,
		},
		{
			"non-positive commission rate",
			`{"artists":[{"id":"1","name":"A","handle":"@a","theme":"street","commission_rate_per_m2_usd":0}],"products":[]}`,
		},
		{
			"unknown variant in price table",
			`{"artists":[{"id":"1","name":"A","handle":"@a","theme":"street","commission_rate_per_m2_usd":800}],` +
				`"products":[{"id":"1","title":"T","artist_id":"1","prices_usd":{"sticker":5}}]}`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newCatalogFromBytes([]byte(tc.doc), nopLogger{})
			assert.Error(t, err)
		})
	}
}

func TestNewCatalogFromBytes_RejectsBrokenReferences(t *testing.T) {
	doc := `{"artists":[{"id":"1","name":"A","handle":"@a","theme":"street","commission_rate_per_m2_usd":800}],` +
		`"products":[{"id":"1","title":"T","artist_id":"99","prices_usd":{"print":10}}]}`

	_, err := newCatalogFromBytes([]byte(doc), nopLogger{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown artist")
}

func TestNewCatalogFromBytes_RejectsDuplicateIDs(t *testing.T) {
	doc := `{"artists":[` +
		`{"id":"1","name":"A","handle":"@a","theme":"street","commission_rate_per_m2_usd":800},` +
		`{"id":"1","name":"B","handle":"@b","theme":"pop","commission_rate_per_m2_usd":900}],` +
		`"products":[]}`

	_, err := newCatalogFromBytes([]byte(doc), nopLogger{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate artist")
}
