package port

import "storefront-service/internal/core/domain"

// CatalogPort exposes the artist and artwork catalog. The catalog is
// read-only for the lifetime of the process.
type CatalogPort interface {
	Artists() []domain.Artist
	ArtistByID(id string) (domain.Artist, bool)
	Products() []domain.Product
	ProductsByArtist(artistID string) []domain.Product
	ProductByID(id string) (domain.Product, bool)
}
