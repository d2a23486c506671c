package usecase

import (
	"context"
	"sync"

	"storefront-service/internal/core/domain"
	"storefront-service/internal/core/port"
)

// nopLogger satisfies LoggerPort for use cases that take a logger
// directly instead of pulling it from the context.
type nopLogger struct{}

func (nopLogger) Info(string, port.Fields)         {}
func (nopLogger) Warn(string, port.Fields)         {}
func (nopLogger) Error(string, error, port.Fields) {}
func (nopLogger) Debug(string, port.Fields)        {}
func (n nopLogger) WithFields(port.Fields) port.LoggerPort {
	return n
}

// mockRateSource returns whatever its fetch func says, counting calls.
type mockRateSource struct {
	m     sync.Mutex
	calls int
	fetch func(ctx context.Context, currencyCode string) (float64, error)
}

func (s *mockRateSource) FetchRate(ctx context.Context, currencyCode string) (float64, error) {
	s.m.Lock()
	s.calls++
	s.m.Unlock()
	return s.fetch(ctx, currencyCode)
}

func (s *mockRateSource) callCount() int {
	s.m.Lock()
	defer s.m.Unlock()
	return s.calls
}

// mockCatalog serves a fixed set of artists and products.
type mockCatalog struct {
	artists  []domain.Artist
	products []domain.Product
}

func (c *mockCatalog) Artists() []domain.Artist { return c.artists }

func (c *mockCatalog) ArtistByID(id string) (domain.Artist, bool) {
	for _, a := range c.artists {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Artist{}, false
}

func (c *mockCatalog) Products() []domain.Product { return c.products }

func (c *mockCatalog) ProductsByArtist(artistID string) []domain.Product {
	var out []domain.Product
	for _, p := range c.products {
		if p.ArtistID == artistID {
			out = append(out, p)
		}
	}
	return out
}

func (c *mockCatalog) ProductByID(id string) (domain.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// mockCurrency converts with a fixed rate and never errors.
type mockCurrency struct {
	rate     float64
	currency string
}

func (c *mockCurrency) Snapshot() domain.RateSnapshot {
	return domain.RateSnapshot{Rate: c.rate, Currency: c.currency}
}

func (c *mockCurrency) Refresh(context.Context) {}

func (c *mockCurrency) ConvertToLocal(usd float64) float64 { return usd * c.rate }

func (c *mockCurrency) ConvertToUSD(local float64) (float64, error) {
	return local / c.rate, nil
}

// mockSession reports a fixed session state.
type mockSession struct {
	session domain.Session
}

func (s *mockSession) Current() domain.Session { return s.session }

func (s *mockSession) Login(context.Context, string, string) (domain.Session, error) {
	return s.session, nil
}

func (s *mockSession) Register(context.Context, string, string, string) (domain.Session, error) {
	return s.session, nil
}

func (s *mockSession) LoginWithGoogle(context.Context) (domain.Session, error) {
	return s.session, nil
}

func (s *mockSession) Logout() {}

// mockAuthenticator resolves to a fixed user or error.
type mockAuthenticator struct {
	user domain.User
	err  error
}

func (a *mockAuthenticator) Login(context.Context, string, string) (domain.User, error) {
	return a.user, a.err
}

func (a *mockAuthenticator) Register(context.Context, string, string, string) (domain.User, error) {
	return a.user, a.err
}

func (a *mockAuthenticator) LoginWithGoogle(context.Context) (domain.User, error) {
	return a.user, a.err
}
