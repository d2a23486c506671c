package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"storefront-service/internal/contracts"
	"storefront-service/internal/core/domain"
	"storefront-service/internal/core/port"
)

//go:embed catalog.json
var catalogJSON []byte

// Catalog is the embedded, read-only artist and artwork catalog. The
// document is validated against its JSON Schema at construction and the
// artist references of every product are checked, so lookups later on
// never surprise anyone.
type Catalog struct {
	artists     []domain.Artist
	products    []domain.Product
	artistByID  map[string]domain.Artist
	productByID map[string]domain.Product
}

func NewCatalog(logger port.LoggerPort) (*Catalog, error) {
	return newCatalogFromBytes(catalogJSON, logger)
}

func newCatalogFromBytes(raw []byte, logger port.LoggerPort) (*Catalog, error) {
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("catalog: parse document: %w", err)
	}
	if err := contracts.ValidateCatalog(doc); err != nil {
		return nil, fmt.Errorf("catalog: document does not match schema: %w", err)
	}

	var dto catalogDocument
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil, fmt.Errorf("catalog: decode document: %w", err)
	}

	c := &Catalog{
		artistByID:  make(map[string]domain.Artist, len(dto.Artists)),
		productByID: make(map[string]domain.Product, len(dto.Products)),
	}

	for _, a := range dto.Artists {
		artist := toDomainArtist(a)
		if _, dup := c.artistByID[artist.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate artist id %q", artist.ID)
		}
		c.artists = append(c.artists, artist)
		c.artistByID[artist.ID] = artist
	}

	for _, p := range dto.Products {
		artist, ok := c.artistByID[p.ArtistID]
		if !ok {
			return nil, fmt.Errorf("catalog: product %q references unknown artist %q", p.ID, p.ArtistID)
		}
		product := toDomainProduct(p, artist)
		if _, dup := c.productByID[product.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate product id %q", product.ID)
		}
		c.products = append(c.products, product)
		c.productByID[product.ID] = product
	}

	logger.Info("Catalog loaded", port.Fields{
		"artists":  len(c.artists),
		"products": len(c.products),
	})
	return c, nil
}

func (c *Catalog) Artists() []domain.Artist {
	out := make([]domain.Artist, len(c.artists))
	copy(out, c.artists)
	return out
}

func (c *Catalog) ArtistByID(id string) (domain.Artist, bool) {
	artist, ok := c.artistByID[id]
	return artist, ok
}

func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) ProductsByArtist(artistID string) []domain.Product {
	var out []domain.Product
	for _, p := range c.products {
		if p.ArtistID == artistID {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) ProductByID(id string) (domain.Product, bool) {
	product, ok := c.productByID[id]
	return product, ok
}
