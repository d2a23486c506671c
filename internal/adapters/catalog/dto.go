package catalog

type artistDTO struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Handle              string  `json:"handle"`
	Instagram           string  `json:"instagram"`
	Photo               string  `json:"photo"`
	Theme               string  `json:"theme"`
	Bio                 string  `json:"bio"`
	Specialty           string  `json:"specialty"`
	CommissionRatePerM2 float64 `json:"commission_rate_per_m2_usd"`
}

type productDTO struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	ArtistID         string             `json:"artist_id"`
	Image            string             `json:"image"`
	PricesUSD        map[string]float64 `json:"prices_usd"`
	HasCustomService bool               `json:"has_custom_service"`
}

type catalogDocument struct {
	Artists  []artistDTO  `json:"artists"`
	Products []productDTO `json:"products"`
}
