package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"storefront-service/internal/core/domain"
	"storefront-service/internal/core/port"

	"golang.org/x/sync/singleflight"
)

// CurrencyProviderUseCase holds the last good USD rate for the local
// currency and refreshes it from a remote source on an interval. A
// failed fetch never touches the held rate: conversions keep working
// with the previous (possibly fallback) value and the failure is only
// surfaced through the snapshot.
type CurrencyProviderUseCase struct {
	source   port.RateSourcePort
	currency string
	interval time.Duration
	logger   port.LoggerPort

	// sfg collapses a manual refresh fired while the scheduled fetch
	// is still in flight into a single upstream call.
	sfg singleflight.Group

	mu          sync.RWMutex
	rate        float64
	lastUpdated time.Time
	loading     bool
	fetchErr    string

	polling  bool
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewCurrencyProviderUseCase seeds the provider with the fallback rate so
// conversions are sane before the first successful fetch. The fallback
// must be positive.
func NewCurrencyProviderUseCase(source port.RateSourcePort, currency string, fallbackRate float64, interval time.Duration, logger port.LoggerPort) (*CurrencyProviderUseCase, error) {
	if fallbackRate <= 0 {
		return nil, fmt.Errorf("currency provider: fallback rate must be positive, got %v", fallbackRate)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("currency provider: refresh interval must be positive, got %v", interval)
	}
	return &CurrencyProviderUseCase{
		source:   source,
		currency: currency,
		interval: interval,
		logger:   logger.WithFields(port.Fields{"component": "currency_provider", "currency": currency}),
		rate:     fallbackRate,
		loading:  true,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// StartPolling performs the first fetch immediately and then refreshes
// on the configured interval until Stop is called or ctx is cancelled.
func (uc *CurrencyProviderUseCase) StartPolling(ctx context.Context) {
	uc.mu.Lock()
	if uc.polling {
		uc.mu.Unlock()
		return
	}
	uc.polling = true
	uc.mu.Unlock()

	go func() {
		defer close(uc.done)

		uc.Refresh(ctx)

		ticker := time.NewTicker(uc.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				uc.Refresh(ctx)
			case <-uc.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop cancels the polling goroutine and waits for it to exit, so no
// timer outlives the owning application.
func (uc *CurrencyProviderUseCase) Stop() {
	uc.stopOnce.Do(func() {
		close(uc.stop)
	})

	uc.mu.RLock()
	polling := uc.polling
	uc.mu.RUnlock()
	if polling {
		<-uc.done
	}
}

// Refresh fetches the current rate once. Success replaces the held rate
// and clears the error; any failure keeps the previous rate and records
// the error message. The loading flag is cleared on every path.
func (uc *CurrencyProviderUseCase) Refresh(ctx context.Context) {
	uc.mu.Lock()
	uc.loading = true
	uc.mu.Unlock()

	_, _, _ = uc.sfg.Do(uc.currency, func() (interface{}, error) {
		defer func() {
			uc.mu.Lock()
			uc.loading = false
			uc.mu.Unlock()
		}()

		rate, err := uc.source.FetchRate(ctx, uc.currency)
		if err != nil {
			uc.logger.Warn("Rate fetch failed, keeping previous rate", port.Fields{"error": err.Error()})
			uc.mu.Lock()
			uc.fetchErr = fmt.Sprintf("failed to fetch %s rate: %v", uc.currency, err)
			uc.mu.Unlock()
			return nil, nil
		}
		if rate <= 0 {
			uc.logger.Warn("Rate source returned a non-positive rate, keeping previous rate", port.Fields{"rate": rate})
			uc.mu.Lock()
			uc.fetchErr = fmt.Sprintf("rate source returned non-positive %s rate %v", uc.currency, rate)
			uc.mu.Unlock()
			return nil, nil
		}

		uc.mu.Lock()
		uc.rate = rate
		uc.lastUpdated = time.Now()
		uc.fetchErr = ""
		uc.mu.Unlock()

		uc.logger.Debug("Rate refreshed", port.Fields{"rate": rate})
		return nil, nil
	})
}

// ConvertToLocal converts a USD amount using whatever rate is currently
// held, possibly stale or the fallback.
func (uc *CurrencyProviderUseCase) ConvertToLocal(usd float64) float64 {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return usd * uc.rate
}

// ConvertToUSD converts a local-currency amount back to USD. The held
// rate is positive by construction, so the error path exists only to
// keep the division total.
func (uc *CurrencyProviderUseCase) ConvertToUSD(local float64) (float64, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.rate == 0 {
		return 0, fmt.Errorf("currency provider: held rate is zero")
	}
	return local / uc.rate, nil
}

func (uc *CurrencyProviderUseCase) Snapshot() domain.RateSnapshot {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return domain.RateSnapshot{
		Rate:        uc.rate,
		Currency:    uc.currency,
		LastUpdated: uc.lastUpdated,
		Loading:     uc.loading,
		FetchError:  uc.fetchErr,
	}
}
