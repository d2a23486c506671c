package rest

import (
	"net/http"

	"storefront-service/internal/core/port"

	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalog port.CatalogPort
}

func NewCatalogHandler(catalog port.CatalogPort) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) GetArtists(w http.ResponseWriter, r *http.Request) {
	artists := h.catalog.Artists()
	out := make([]ArtistResponseDTO, 0, len(artists))
	for _, a := range artists {
		out = append(out, toArtistDTO(a))
	}
	RespondWithJSON(w, http.StatusOK, out)
}

func (h *CatalogHandler) GetArtist(w http.ResponseWriter, r *http.Request) {
	artistID := chi.URLParam(r, "artistID")
	artist, ok := h.catalog.ArtistByID(artistID)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "artist not found")
		return
	}
	RespondWithJSON(w, http.StatusOK, toArtistDTO(artist))
}

func (h *CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	var products = h.catalog.Products()
	if artistID := r.URL.Query().Get("artist"); artistID != "" {
		products = h.catalog.ProductsByArtist(artistID)
	}
	out := make([]ProductResponseDTO, 0, len(products))
	for _, p := range products {
		out = append(out, toProductDTO(p))
	}
	RespondWithJSON(w, http.StatusOK, out)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	product, ok := h.catalog.ProductByID(productID)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "product not found")
		return
	}
	RespondWithJSON(w, http.StatusOK, toProductDTO(product))
}
