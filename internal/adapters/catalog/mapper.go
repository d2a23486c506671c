package catalog

import "storefront-service/internal/core/domain"

func toDomainArtist(dto artistDTO) domain.Artist {
	return domain.Artist{
		ID:                     dto.ID,
		Name:                   dto.Name,
		Handle:                 dto.Handle,
		Instagram:              dto.Instagram,
		Photo:                  dto.Photo,
		Theme:                  domain.ThemeTag(dto.Theme),
		Bio:                    dto.Bio,
		Specialty:              dto.Specialty,
		CommissionRatePerM2USD: dto.CommissionRatePerM2,
	}
}

func toDomainProduct(dto productDTO, artist domain.Artist) domain.Product {
	prices := make(map[domain.SKU]float64, len(dto.PricesUSD))
	for sku, price := range dto.PricesUSD {
		prices[domain.SKU(sku)] = price
	}
	return domain.Product{
		ID:               dto.ID,
		Title:            dto.Title,
		ArtistID:         artist.ID,
		Artist:           artist.Name,
		Image:            dto.Image,
		PricesUSD:        prices,
		HasCustomService: dto.HasCustomService,
	}
}
