package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/middleware"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderReader interface {
	GetOrder(ctx context.Context, id int64, customerID *int64, email string) (entities.Order, error)
}

type StoreService interface {
	GetCart(ctx context.Context, id int64) (entities.Cart, error)
	ListAddresses(ctx context.Context, customerID int64) ([]entities.SavedAddress, error)
	SaveAddress(ctx context.Context, customerID int64, a entities.Address) (entities.SavedAddress, error)
}

type StoreHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	orders   OrderReader
	store    StoreService
	auth     *middleware.Auth
}

func NewStoreHandler(logger *slog.Logger, orders OrderReader, store StoreService, auth *middleware.Auth) *StoreHandler {
	return &StoreHandler{
		logger:   logger.With(slog.String("handler", "store")),
		validate: newValidator(),
		orders:   orders,
		store:    store,
		auth:     auth,
	}
}

func (h *StoreHandler) Init(r chi.Router) {
	r.Get("/api/orders/{id}", h.GetOrder)
	r.Get("/orders/{id}", h.GetOrder)
	r.Get("/api/carts/{id}", h.GetCart)

	r.Group(func(r chi.Router) {
		r.Use(h.auth.Required)
		r.Get("/api/addresses", h.ListAddresses)
		r.Post("/api/addresses", h.SaveAddress)
	})
}

// GetOrder returns an order to its owner or to the guest who placed it.
// @Summary      Get order
// @Description  Authenticated customers see their own orders; guests pass the purchase email
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id     path   int     true   "Order id"
// @Param        email  query  string  false  "Guest email"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Router       /api/orders/{id} [get]
func (h *StoreHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	order, err := h.orders.GetOrder(ctx, id, middleware.CustomerID(ctx), r.URL.Query().Get("email"))
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to get order", slog.Int64("order_id", id))
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// GetCart returns cart contents and subtotal.
// @Summary      Get cart
// @Tags         carts
// @Produce      json
// @Param        id  path  int  true  "Cart id"
// @Success      200  {object}  Cart
// @Failure      404  {object}  utils.ErrorResponse "Cart not found"
// @Router       /api/carts/{id} [get]
func (h *StoreHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	cart, err := h.store.GetCart(ctx, id)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to get cart", slog.Int64("cart_id", id))
		return
	}

	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// ListAddresses returns the customer's saved addresses.
// @Summary      List addresses
// @Tags         addresses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   SavedAddress
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /api/addresses [get]
func (h *StoreHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	customerID := *middleware.CustomerID(ctx)

	addresses, err := h.store.ListAddresses(ctx, customerID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to list addresses", slog.Int64("customer_id", customerID))
		return
	}

	res := make([]SavedAddress, len(addresses))
	for i, a := range addresses {
		res[i] = SavedAddressEntityToJSON(a)
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// SaveAddress adds an address to the customer's address book.
// @Summary      Save address
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      Address  true  "Address"
// @Success      201  {object}  SavedAddress
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /api/addresses [post]
func (h *StoreHandler) SaveAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	customerID := *middleware.CustomerID(ctx)

	var body Address
	if !decodeAndValidate(w, r, h.validate, &body) {
		return
	}

	saved, err := h.store.SaveAddress(ctx, customerID, AddressJSONToEntity(body))
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to save address", slog.Int64("customer_id", customerID))
		return
	}

	utils.WriteJSON(w, SavedAddressEntityToJSON(saved), http.StatusCreated)
}

func (h *StoreHandler) idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	if err := h.validate.Var(raw, "required,number"); err != nil {
		utils.WriteValidationError(w, err)
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		utils.WriteError(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
