package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"storefront-service/internal/contextkeys"
	"storefront-service/internal/core/port"
	"storefront-service/internal/core/port/usecases_port"
	"storefront-service/internal/core/usecase"
)

type QuoteHandler struct {
	quote usecases_port.CommissionQuoteUseCase
}

func NewQuoteHandler(quote usecases_port.CommissionQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{quote: quote}
}

func (h *QuoteHandler) ComputeCommissionQuote(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ComputeCommissionQuote"})

	var reqDTO CommissionQuoteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		if err == io.EOF {
			WriteJSONError(w, http.StatusBadRequest, "Request body is empty")
			return
		}
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if reqDTO.ArtistID == "" {
		WriteJSONError(w, http.StatusBadRequest, "Field 'artist_id' is required")
		return
	}

	quote, ok, err := h.quote.Execute(r.Context(), reqDTO.ArtistID, reqDTO.WidthCm, reqDTO.HeightCm)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownArtist) {
			WriteJSONError(w, http.StatusNotFound, "artist not found")
			return
		}
		logger.Error("Quote use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to compute quote")
		return
	}
	if !ok {
		// Incomplete input is not an error in the core; the price is
		// simply withheld.
		WriteJSONError(w, http.StatusUnprocessableEntity, "dimensions must be positive numbers")
		return
	}

	RespondWithJSON(w, http.StatusOK, toQuoteDTO(quote))
}
