package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront-service/internal/core/port/usecases_port"
	"storefront-service/internal/core/usecase"

	"github.com/go-chi/chi/v5"
)

type LocalizationHandler struct {
	localization usecases_port.LocalizationUseCase
}

func NewLocalizationHandler(localization usecases_port.LocalizationUseCase) *LocalizationHandler {
	return &LocalizationHandler{localization: localization}
}

func (h *LocalizationHandler) GetLanguage(w http.ResponseWriter, r *http.Request) {
	visitorID := chi.URLParam(r, "visitorID")
	RespondWithJSON(w, http.StatusOK, LanguageResponseDTO{
		Language: h.localization.Language(r.Context(), visitorID),
	})
}

func (h *LocalizationHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	visitorID := chi.URLParam(r, "visitorID")

	var reqDTO LanguageRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	canonical, err := h.localization.SetLanguage(r.Context(), visitorID, reqDTO.Language)
	if err != nil {
		if errors.Is(err, usecase.ErrUnsupportedLang) {
			WriteJSONError(w, http.StatusBadRequest, "unsupported language")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "Failed to store language")
		return
	}
	RespondWithJSON(w, http.StatusOK, LanguageResponseDTO{Language: canonical})
}

// GetTranslations serves either the full table for a language or, with
// ?key=, a single lookup (unknown keys echo back verbatim).
func (h *LocalizationHandler) GetTranslations(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")

	if key := r.URL.Query().Get("key"); key != "" {
		RespondWithJSON(w, http.StatusOK, map[string]string{
			"key":   key,
			"value": h.localization.Translate(lang, key),
		})
		return
	}

	table, ok := h.localization.Table(lang)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "unsupported language")
		return
	}
	RespondWithJSON(w, http.StatusOK, table)
}
