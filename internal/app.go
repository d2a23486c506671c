package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	auth_adapter "storefront-service/internal/adapters/auth"
	catalog_adapter "storefront-service/internal/adapters/catalog"
	"storefront-service/internal/adapters/exchangerate"
	logger_adapter "storefront-service/internal/adapters/logger"
	"storefront-service/internal/adapters/rest"
	storage_adapter "storefront-service/internal/adapters/storage"
	"storefront-service/internal/configs"
	"storefront-service/internal/core/port"
	"storefront-service/internal/core/usecase"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/redis/go-redis/v9"
)

// App wires the adapters and use cases together and owns their lifecycle.
type App struct {
	config    *configs.Config
	logger    port.LoggerPort
	apiServer *rest.Server

	currencyProvider *usecase.CurrencyProviderUseCase

	fluentLogger *logger_adapter.FluentLoggerAdapter
	redisClient  *redis.Client
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	appLogger, fluentLogger, err := buildLogger(appConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	appLogger.Info("Logger initialized", port.Fields{"app": appConfig.AppName})

	// Outgoing adapters.
	var (
		redisClient *redis.Client
		cartStore   port.CartStorePort
		prefStore   port.PreferenceStorePort
	)
	if appConfig.Redis.Addr != "" {
		redisClient, err = storage_adapter.NewRedisClient(context.Background(),
			appConfig.Redis.Addr, appConfig.Redis.Password, appConfig.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		cartStore = storage_adapter.NewRedisCartStore(redisClient)
		prefStore = storage_adapter.NewRedisPreferenceStore(redisClient)
		appLogger.Info("Successfully connected to Redis", port.Fields{"addr": appConfig.Redis.Addr})
	} else {
		cartStore = storage_adapter.NewMemoryCartStore()
		prefStore = storage_adapter.NewMemoryPreferenceStore()
		appLogger.Info("REDIS_ADDR not set, using in-memory stores", nil)
	}

	catalog, err := catalog_adapter.NewCatalog(appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	rateClient := exchangerate.NewClient(appConfig.Rate.APIURL, 10*time.Second)
	authenticator := auth_adapter.NewSimulatedAuthenticator(appConfig.Auth.SimulatedDelay)
	appLogger.Info("All outgoing adapters initialized.", nil)

	// Use cases.
	currencyProvider, err := usecase.NewCurrencyProviderUseCase(
		rateClient,
		appConfig.Rate.LocalCurrency,
		appConfig.Rate.FallbackRate,
		appConfig.Rate.RefreshInterval,
		appLogger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create currency provider: %w", err)
	}
	sessionUseCase := usecase.NewSessionUseCase(authenticator)
	cartUseCase := usecase.NewCartOperationsUseCase(cartStore, catalog, sessionUseCase)
	quoteUseCase := usecase.NewCommissionQuoteUseCase(catalog, currencyProvider)
	localizationUseCase := usecase.NewLocalizationUseCase(prefStore)
	themeUseCase := usecase.NewThemeUseCase(catalog)
	appLogger.Info("All use cases initialized.", nil)

	// REST API server.
	handlers := rest.Handlers{
		Catalog:      rest.NewCatalogHandler(catalog),
		Currency:     rest.NewCurrencyHandler(currencyProvider),
		Quote:        rest.NewQuoteHandler(quoteUseCase),
		Cart:         rest.NewCartHandler(cartUseCase, currencyProvider),
		Localization: rest.NewLocalizationHandler(localizationUseCase),
		Theme:        rest.NewThemeHandler(themeUseCase),
		Session:      rest.NewSessionHandler(sessionUseCase),
	}
	apiServer := rest.NewServer(appConfig.Rest.Port, appConfig.Rest.AllowedOrigins, handlers, appLogger)

	return &App{
		config:           appConfig,
		logger:           appLogger,
		apiServer:        apiServer,
		currencyProvider: currencyProvider,
		fluentLogger:     fluentLogger,
		redisClient:      redisClient,
	}, nil
}

// Run starts the rate poller and the HTTP server and blocks until a
// shutdown signal arrives.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("App: Shutdown sequence initiated...", nil)

		a.currencyProvider.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.apiServer.Stop(shutdownCtx); err != nil {
			a.logger.Error("App: Error closing api server", err, nil)
		}

		if a.redisClient != nil {
			if err := a.redisClient.Close(); err != nil {
				a.logger.Error("App: Error closing Redis client", err, nil)
			}
		}

		a.logger.Info("Application shut down gracefully.", nil)
		if a.fluentLogger != nil {
			if err := a.fluentLogger.Close(); err != nil {
				log.Printf("App: Error closing fluent logger: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	a.currencyProvider.StartPolling(appCtx)

	serverErrors := make(chan error, 1)
	go func() {
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Info("App: Received signal. Shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-serverErrors:
		a.logger.Error("App: HTTP server failed. Shutting down...", err, nil)
	}

	cancelApp()

	return nil
}

// buildLogger assembles the stdout logger and, when enabled, a Fluent
// Bit logger fanned out behind a single LoggerPort.
func buildLogger(cfg *configs.Config) (port.LoggerPort, *logger_adapter.FluentLoggerAdapter, error) {
	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(cfg.StdoutLogger.Level),
		UseColor: true,
	})

	loggers := []port.LoggerPort{stdoutLogger}

	var fluentLogger *logger_adapter.FluentLoggerAdapter
	if cfg.FluentBit.Enabled {
		fluentClient, err := fluent.New(fluent.Config{
			FluentHost:    cfg.FluentBit.Host,
			FluentPort:    cfg.FluentBit.Port,
			Async:         true,
			TagPrefix:     cfg.AppName,
			MarshalAsJSON: true,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to fluent bit: %w", err)
		}
		fluentLogger, err = logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(cfg.FluentBit.Level))
		if err != nil {
			return nil, nil, err
		}
		loggers = append(loggers, fluentLogger)
	}

	combined, err := logger_adapter.NewMultiloggerAdapter(loggers...)
	if err != nil {
		return nil, nil, err
	}
	return combined, fluentLogger, nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
