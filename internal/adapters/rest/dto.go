package rest

import (
	"time"

	"storefront-service/internal/core/domain"
)

type ArtistResponseDTO struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Handle    string  `json:"handle"`
	Instagram string  `json:"instagram,omitempty"`
	Photo     string  `json:"photo,omitempty"`
	Theme     string  `json:"theme"`
	Bio       string  `json:"bio,omitempty"`
	Specialty string  `json:"specialty,omitempty"`
	RatePerM2 float64 `json:"commission_rate_per_m2_usd"`
}

type ProductResponseDTO struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	ArtistID         string             `json:"artist_id"`
	Artist           string             `json:"artist"`
	Image            string             `json:"image,omitempty"`
	PricesUSD        map[string]float64 `json:"prices_usd"`
	HasCustomService bool               `json:"has_custom_service"`
}

type RateSnapshotResponseDTO struct {
	Rate        float64 `json:"rate"`
	Currency    string  `json:"currency"`
	LastUpdated *string `json:"last_updated"`
	Loading     bool    `json:"loading"`
	Error       string  `json:"error,omitempty"`
}

type CommissionQuoteRequestDTO struct {
	ArtistID string `json:"artist_id"`
	WidthCm  string `json:"width_cm"`
	HeightCm string `json:"height_cm"`
}

type CommissionQuoteResponseDTO struct {
	ID            string  `json:"id"`
	ArtistID      string  `json:"artist_id"`
	ArtistName    string  `json:"artist_name"`
	WidthCm       float64 `json:"width_cm"`
	HeightCm      float64 `json:"height_cm"`
	AreaM2        float64 `json:"area_m2"`
	RatePerM2USD  float64 `json:"rate_per_m2_usd"`
	TotalUSD      float64 `json:"total_usd"`
	TotalLocal    float64 `json:"total_local"`
	LocalCurrency string  `json:"local_currency"`
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
	SKU       string `json:"sku"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type CartLineResponseDTO struct {
	Key          string  `json:"key"`
	ProductID    string  `json:"product_id"`
	SKU          string  `json:"sku"`
	Title        string  `json:"title"`
	Artist       string  `json:"artist"`
	Image        string  `json:"image,omitempty"`
	UnitPriceUSD float64 `json:"unit_price_usd"`
	Quantity     int     `json:"quantity"`
}

type CartResponseDTO struct {
	ID              string                `json:"id"`
	Lines           []CartLineResponseDTO `json:"lines"`
	TotalItems      int                   `json:"total_items"`
	TotalPriceUSD   float64               `json:"total_price_usd"`
	TotalPriceLocal float64               `json:"total_price_local"`
	LocalCurrency   string                `json:"local_currency"`
}

type CheckoutResponseDTO struct {
	OrderRef string `json:"order_ref"`
}

type LanguageRequestDTO struct {
	Language string `json:"language"`
}

type LanguageResponseDTO struct {
	Language string `json:"language"`
}

type ThemeRequestDTO struct {
	ArtistID string `json:"artist_id"`
}

type ThemeResponseDTO struct {
	ArtistID string `json:"artist_id"`
	Theme    string `json:"theme"`
}

type CredentialsRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type SessionResponseDTO struct {
	State string           `json:"state"`
	User  *UserResponseDTO `json:"user,omitempty"`
}

type UserResponseDTO struct {
	ID        string              `json:"id"`
	Email     string              `json:"email"`
	Name      string              `json:"name"`
	Avatar    string              `json:"avatar,omitempty"`
	IsPrivate bool                `json:"is_private"`
	Badges    []BadgeResponseDTO  `json:"badges,omitempty"`
	Friends   []FriendResponseDTO `json:"friends,omitempty"`
}

type BadgeResponseDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon"`
}

type FriendResponseDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

func toArtistDTO(a domain.Artist) ArtistResponseDTO {
	return ArtistResponseDTO{
		ID:        a.ID,
		Name:      a.Name,
		Handle:    a.Handle,
		Instagram: a.Instagram,
		Photo:     a.Photo,
		Theme:     string(a.Theme),
		Bio:       a.Bio,
		Specialty: a.Specialty,
		RatePerM2: a.CommissionRatePerM2USD,
	}
}

func toProductDTO(p domain.Product) ProductResponseDTO {
	prices := make(map[string]float64, len(p.PricesUSD))
	for sku, price := range p.PricesUSD {
		prices[string(sku)] = price
	}
	return ProductResponseDTO{
		ID:               p.ID,
		Title:            p.Title,
		ArtistID:         p.ArtistID,
		Artist:           p.Artist,
		Image:            p.Image,
		PricesUSD:        prices,
		HasCustomService: p.HasCustomService,
	}
}

func toRateSnapshotDTO(s domain.RateSnapshot) RateSnapshotResponseDTO {
	dto := RateSnapshotResponseDTO{
		Rate:     s.Rate,
		Currency: s.Currency,
		Loading:  s.Loading,
		Error:    s.FetchError,
	}
	if !s.LastUpdated.IsZero() {
		formatted := s.LastUpdated.Format(time.RFC3339)
		dto.LastUpdated = &formatted
	}
	return dto
}

func toQuoteDTO(q domain.CommissionQuote) CommissionQuoteResponseDTO {
	return CommissionQuoteResponseDTO{
		ID:            q.ID,
		ArtistID:      q.ArtistID,
		ArtistName:    q.ArtistName,
		WidthCm:       q.WidthCm,
		HeightCm:      q.HeightCm,
		AreaM2:        q.AreaM2,
		RatePerM2USD:  q.RatePerM2USD,
		TotalUSD:      q.TotalUSD,
		TotalLocal:    q.TotalLocal,
		LocalCurrency: q.LocalCurrency,
	}
}

func toSessionDTO(s domain.Session) SessionResponseDTO {
	dto := SessionResponseDTO{State: string(s.State)}
	if s.User != nil {
		user := UserResponseDTO{
			ID:        s.User.ID,
			Email:     s.User.Email,
			Name:      s.User.Name,
			Avatar:    s.User.Avatar,
			IsPrivate: s.User.IsPrivate,
		}
		for _, b := range s.User.Badges {
			user.Badges = append(user.Badges, BadgeResponseDTO{
				ID:          b.ID,
				Name:        b.Name,
				Description: b.Description,
				Icon:        b.Icon,
			})
		}
		for _, f := range s.User.Friends {
			user.Friends = append(user.Friends, FriendResponseDTO{
				ID:     f.ID,
				Name:   f.Name,
				Avatar: f.Avatar,
			})
		}
		dto.User = &user
	}
	return dto
}
