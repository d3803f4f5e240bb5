package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/gauravmishra2744/DHARMAVERSE/domain"
	"github.com/gauravmishra2744/DHARMAVERSE/ledger"
	"github.com/gauravmishra2744/DHARMAVERSE/payment"
)

// Handler adapts the ledger to HTTP for the storefront. The checkout
// handler owns the ordering rule: the gateway is charged first, and
// CreateOrder only runs for an authorized payment.
type Handler struct {
	Ledger  *ledger.Service
	Gateway payment.Gateway
	Log     zerolog.Logger
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/cart", h.getCart)
	r.Post("/cart/items", h.addItem)
	r.Put("/cart/items/{productID}", h.updateItem)
	r.Delete("/cart/items/{productID}", h.removeItem)
	r.Get("/cart/shipping", h.quoteShipping)

	r.Post("/checkout", h.checkout)

	r.Get("/orders", h.listOrders)
	r.Get("/orders/{id}", h.getOrder)
	r.Post("/orders/{id}/status", h.updateOrderStatus)
	r.Get("/tracking/{trackingID}", h.getTracking)

	r.Get("/addresses", h.listAddresses)
	r.Post("/addresses", h.addAddress)
	r.Get("/payment-methods", h.listPaymentMethods)
	r.Post("/payment-methods", h.addPaymentMethod)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

type cartResponse struct {
	Items    []domain.CartItem `json:"items"`
	Subtotal decimal.Decimal   `json:"subtotal"`
	Count    int               `json:"count"`
}

func (h *Handler) toCartResponse(cart domain.Cart) cartResponse {
	items := cart.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	return cartResponse{Items: items, Subtotal: cart.Subtotal(), Count: cart.Count()}
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.toCartResponse(h.Ledger.Cart()))
}

type addItemRequest struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.Ledger.AddToCart(r.Context(), req.Product, req.Quantity)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.toCartResponse(cart))
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	cart, err := h.Ledger.UpdateQuantity(r.Context(), chi.URLParam(r, "productID"), req.Quantity)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.toCartResponse(cart))
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Ledger.RemoveFromCart(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.toCartResponse(cart))
}

type shippingQuote struct {
	Method   domain.ShippingMethod `json:"method"`
	Shipping decimal.Decimal       `json:"shipping"`
	Days     int                   `json:"days"`
}

func (h *Handler) quoteShipping(w http.ResponseWriter, r *http.Request) {
	method := domain.ShippingMethod(r.URL.Query().Get("method"))
	if method == "" {
		method = domain.ShippingStandard
	}
	cart := h.Ledger.Cart()
	writeJSON(w, http.StatusOK, shippingQuote{
		Method:   method,
		Shipping: h.Ledger.CalculateShipping(cart.Items, method, domain.Address{}),
		Days:     domain.RateFor(method).Days,
	})
}

type checkoutRequest struct {
	Address    domain.Address        `json:"address"`
	CardNumber string                `json:"card_number"`
	Method     domain.ShippingMethod `json:"shipping_method"`
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Method == "" {
		req.Method = domain.ShippingStandard
	}

	cart := h.Ledger.Cart()
	if len(cart.Items) == 0 {
		writeError(w, http.StatusConflict, ledger.ErrEmptyCart.Error())
		return
	}

	subtotal := cart.Subtotal()
	shipping := h.Ledger.CalculateShipping(cart.Items, req.Method, req.Address)
	tax := subtotal.Mul(domain.TaxRate)
	total := subtotal.Add(shipping).Add(tax)

	result, err := h.Gateway.Charge(r.Context(), payment.Request{
		Amount:     total,
		Descriptor: req.CardNumber,
	})
	if err != nil {
		h.Log.Error().Err(err).Msg("payment gateway unavailable")
		writeError(w, http.StatusBadGateway, "payment gateway unavailable")
		return
	}
	if !result.Success {
		writeError(w, http.StatusPaymentRequired, result.Message)
		return
	}

	order, err := h.Ledger.CreateOrder(r.Context(), ledger.CheckoutData{
		Address:       req.Address,
		CardNumber:    req.CardNumber,
		Method:        req.Method,
		Subtotal:      subtotal,
		Shipping:      shipping,
		Tax:           tax,
		Total:         total,
		TransactionID: result.TransactionID,
	})
	if errors.Is(err, ledger.ErrEmptyCart) {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Ledger.Orders())
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Ledger.Order(chi.URLParam(r, "id"))
	if errors.Is(err, ledger.ErrOrderNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, order)
}

type statusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	order, err := h.Ledger.UpdateOrderStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	switch {
	case errors.Is(err, ledger.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ledger.ErrIllegalTransition):
		writeError(w, http.StatusConflict, err.Error())
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, order)
	}
}

func (h *Handler) getTracking(w http.ResponseWriter, r *http.Request) {
	info, err := h.Ledger.TrackingInfo(chi.URLParam(r, "trackingID"))
	if errors.Is(err, ledger.ErrTrackingNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (h *Handler) listAddresses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Ledger.Addresses())
}

func (h *Handler) addAddress(w http.ResponseWriter, r *http.Request) {
	var addr domain.Address
	if err := json.NewDecoder(r.Body).Decode(&addr); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	saved, err := h.Ledger.AddAddress(r.Context(), addr)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (h *Handler) listPaymentMethods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Ledger.PaymentMethods())
}

func (h *Handler) addPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var method domain.PaymentMethod
	if err := json.NewDecoder(r.Body).Decode(&method); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	saved, err := h.Ledger.AddPaymentMethod(r.Context(), method)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}
