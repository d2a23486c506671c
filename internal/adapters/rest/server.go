package rest

import (
	"context"
	"net/http"

	"storefront-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

type Handlers struct {
	Catalog      *CatalogHandler
	Currency     *CurrencyHandler
	Quote        *QuoteHandler
	Cart         *CartHandler
	Localization *LocalizationHandler
	Theme        *ThemeHandler
	Session      *SessionHandler
}

func NewServer(listenPort string, allowedOrigins []string, h Handlers, baseLogger port.LoggerPort) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/artists", h.Catalog.GetArtists)
		r.Get("/artists/{artistID}", h.Catalog.GetArtist)
		r.Get("/products", h.Catalog.GetProducts)
		r.Get("/products/{productID}", h.Catalog.GetProduct)

		r.Get("/exchange-rate", h.Currency.GetRate)
		r.Post("/exchange-rate/refresh", h.Currency.RefreshRate)

		r.Post("/quotes/commission", h.Quote.ComputeCommissionQuote)

		r.Route("/carts/{cartID}", func(r chi.Router) {
			r.Get("/", h.Cart.GetCart)
			r.Post("/items", h.Cart.AddItem)
			r.Put("/items/{key}", h.Cart.UpdateQuantity)
			r.Delete("/items/{key}", h.Cart.RemoveItem)
			r.Post("/checkout", h.Cart.Checkout)
		})

		r.Get("/preferences/{visitorID}/language", h.Localization.GetLanguage)
		r.Put("/preferences/{visitorID}/language", h.Localization.SetLanguage)
		r.Get("/translations/{lang}", h.Localization.GetTranslations)

		r.Get("/theme", h.Theme.GetTheme)
		r.Put("/theme", h.Theme.SetTheme)

		r.Get("/session", h.Session.GetSession)
		r.Post("/session/login", h.Session.Login)
		r.Post("/session/register", h.Session.Register)
		r.Post("/session/google", h.Session.LoginWithGoogle)
		r.Delete("/session", h.Session.Logout)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + listenPort,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
