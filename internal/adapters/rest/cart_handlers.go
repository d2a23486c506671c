package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"storefront-service/internal/contextkeys"
	"storefront-service/internal/core/domain"
	"storefront-service/internal/core/port"
	"storefront-service/internal/core/port/usecases_port"
	"storefront-service/internal/core/usecase"

	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	carts    usecases_port.CartOperationsUseCase
	currency usecases_port.CurrencyProviderUseCase
}

func NewCartHandler(carts usecases_port.CartOperationsUseCase, currency usecases_port.CurrencyProviderUseCase) *CartHandler {
	return &CartHandler{carts: carts, currency: currency}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")

	cart, err := h.carts.GetCart(r.Context(), cartID)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to load cart")
		return
	}
	RespondWithJSON(w, http.StatusOK, h.toCartDTO(cart))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "AddItem"})
	cartID := chi.URLParam(r, "cartID")

	var reqDTO AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		if err == io.EOF {
			WriteJSONError(w, http.StatusBadRequest, "Request body is empty")
			return
		}
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if reqDTO.ProductID == "" {
		WriteJSONError(w, http.StatusBadRequest, "Field 'product_id' is required")
		return
	}
	if reqDTO.SKU == "" {
		WriteJSONError(w, http.StatusBadRequest, "Field 'sku' is required")
		return
	}

	cart, err := h.carts.AddItem(r.Context(), cartID, reqDTO.ProductID, domain.SKU(reqDTO.SKU), reqDTO.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownProduct):
			WriteJSONError(w, http.StatusNotFound, "product not found")
		case errors.Is(err, usecase.ErrUnknownVariant):
			WriteJSONError(w, http.StatusBadRequest, "variant not sold for this product")
		default:
			logger.Error("Add item failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Failed to add item")
		}
		return
	}

	RespondWithJSON(w, http.StatusOK, h.toCartDTO(cart))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")
	key := chi.URLParam(r, "key")

	var reqDTO UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cart, err := h.carts.UpdateQuantity(r.Context(), cartID, domain.LineKey(key), reqDTO.Quantity)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to update quantity")
		return
	}
	RespondWithJSON(w, http.StatusOK, h.toCartDTO(cart))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")
	key := chi.URLParam(r, "key")

	cart, err := h.carts.RemoveItem(r.Context(), cartID, domain.LineKey(key))
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to remove item")
		return
	}
	RespondWithJSON(w, http.StatusOK, h.toCartDTO(cart))
}

func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Checkout"})
	cartID := chi.URLParam(r, "cartID")

	orderRef, err := h.carts.Checkout(r.Context(), cartID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotLoggedIn):
			WriteJSONError(w, http.StatusUnauthorized, "login required for checkout")
		case errors.Is(err, usecase.ErrEmptyCart):
			WriteJSONError(w, http.StatusConflict, "cart is empty")
		default:
			logger.Error("Checkout failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Failed to check out")
		}
		return
	}
	RespondWithJSON(w, http.StatusOK, CheckoutResponseDTO{OrderRef: orderRef})
}

func (h *CartHandler) toCartDTO(cart *domain.Cart) CartResponseDTO {
	lines := make([]CartLineResponseDTO, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, CartLineResponseDTO{
			Key:          string(line.Key),
			ProductID:    line.ProductID,
			SKU:          string(line.SKU),
			Title:        line.Title,
			Artist:       line.Artist,
			Image:        line.Image,
			UnitPriceUSD: line.UnitPriceUSD,
			Quantity:     line.Quantity,
		})
	}

	totalUSD := cart.TotalPriceUSD()
	snapshot := h.currency.Snapshot()
	return CartResponseDTO{
		ID:              cart.ID,
		Lines:           lines,
		TotalItems:      cart.TotalItems(),
		TotalPriceUSD:   totalUSD,
		TotalPriceLocal: h.currency.ConvertToLocal(totalUSD),
		LocalCurrency:   snapshot.Currency,
	}
}
