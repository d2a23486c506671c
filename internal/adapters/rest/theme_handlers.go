package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront-service/internal/core/domain"
	"storefront-service/internal/core/port/usecases_port"
	"storefront-service/internal/core/usecase"
)

type ThemeHandler struct {
	theme usecases_port.ThemeUseCase
}

func NewThemeHandler(theme usecases_port.ThemeUseCase) *ThemeHandler {
	return &ThemeHandler{theme: theme}
}

func (h *ThemeHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, toThemeDTO(h.theme.Current()))
}

func (h *ThemeHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var reqDTO ThemeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if reqDTO.ArtistID == "" {
		WriteJSONError(w, http.StatusBadRequest, "Field 'artist_id' is required")
		return
	}

	theme, err := h.theme.SetCurrentArtist(reqDTO.ArtistID)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownArtist) {
			WriteJSONError(w, http.StatusNotFound, "artist not found")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "Failed to set theme")
		return
	}
	RespondWithJSON(w, http.StatusOK, toThemeDTO(theme))
}

func toThemeDTO(t domain.Theme) ThemeResponseDTO {
	return ThemeResponseDTO{ArtistID: t.ArtistID, Theme: string(t.Tag)}
}
