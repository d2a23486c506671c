package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"storefront-service/internal/contextkeys"
	"storefront-service/internal/core/port"
)

// Client fetches the latest USD-based exchange rates from a public
// endpoint (api.exchangerate-api.com style: a JSON document with a
// nested "rates" object keyed by currency code). No authentication, no
// retries — the caller's timer drives re-fetching.
type Client struct {
	endpointURL string
	httpClient  *http.Client
}

func NewClient(endpointURL string, timeout time.Duration) *Client {
	return &Client{
		endpointURL: endpointURL,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

func (c *Client) FetchRate(ctx context.Context, currencyCode string) (float64, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "ExchangeRateClient",
		"currency":  currencyCode,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpointURL, nil)
	if err != nil {
		return 0, fmt.Errorf("exchange rate client: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	logger.Debug("Fetching exchange rates", port.Fields{"url": c.endpointURL})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Failed to reach rate endpoint", err, nil)
		return 0, fmt.Errorf("exchange rate client: perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("rate endpoint returned non-success status code %d: %s", resp.StatusCode, string(bodyBytes))
		logger.Error("Received error response from rate endpoint", err, port.Fields{"status_code": resp.StatusCode})
		return 0, err
	}

	var dto latestRatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		logger.Error("Failed to decode rate response", err, nil)
		return 0, fmt.Errorf("exchange rate client: decode response: %w", err)
	}

	rate, err := toDomainRate(dto, currencyCode)
	if err != nil {
		logger.Error("Rate response did not contain a usable rate", err, nil)
		return 0, err
	}

	logger.Debug("Rate fetched", port.Fields{"rate": rate})
	return rate, nil
}
