package rest

import (
	"net/http"

	"storefront-service/internal/core/port/usecases_port"
)

type CurrencyHandler struct {
	currency usecases_port.CurrencyProviderUseCase
}

func NewCurrencyHandler(currency usecases_port.CurrencyProviderUseCase) *CurrencyHandler {
	return &CurrencyHandler{currency: currency}
}

func (h *CurrencyHandler) GetRate(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, toRateSnapshotDTO(h.currency.Snapshot()))
}

// RefreshRate triggers a fetch outside the timer, the user-facing
// retry. The snapshot after the refresh tells the caller whether it
// worked; a failed fetch is not an HTTP error.
func (h *CurrencyHandler) RefreshRate(w http.ResponseWriter, r *http.Request) {
	h.currency.Refresh(r.Context())
	RespondWithJSON(w, http.StatusOK, toRateSnapshotDTO(h.currency.Snapshot()))
}
