package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/middleware"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CardService interface {
	CreateIntent(ctx context.Context, req entities.CardIntentRequest) (entities.CardIntent, error)
	ConfirmOrder(ctx context.Context, req entities.CardConfirmRequest) (entities.FinalizeResult, error)
}

type CardHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CardService
	config   CardConfig
}

func NewCardHandler(logger *slog.Logger, svc CardService, config CardConfig) *CardHandler {
	return &CardHandler{
		logger:   logger.With(slog.String("handler", "card")),
		validate: newValidator(),
		svc:      svc,
		config:   config,
	}
}

func (h *CardHandler) Init(r chi.Router) {
	r.Route("/api/stripe", func(r chi.Router) {
		r.Get("/config", h.Config)
		r.Post("/intent", h.CreateIntent)
		r.Post("/confirm-order", h.ConfirmOrder)
	})
}

// Config tells the client whether to offer card payments.
// @Summary      Card gateway config
// @Tags         stripe
// @Produce      json
// @Success      200  {object}  CardConfig
// @Router       /api/stripe/config [get]
func (h *CardHandler) Config(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.config, http.StatusOK)
}

// CreateIntent prepares a card payment for the cart total.
// @Summary      Create payment intent
// @Description  Checks stock and returns the client secret for the hosted payment element. Addresses are saved address ids or full addresses.
// @Tags         stripe
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      CardIntentRequest  true  "Intent"
// @Success      200  {object}  CardIntent
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse "Cart or address not found"
// @Failure      409  {object}  utils.ErrorResponse "Out of stock"
// @Failure      500  {object}  utils.ErrorResponse "Gateway failure"
// @Router       /api/stripe/intent [post]
func (h *CardHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body CardIntentRequest
	if !decodeAndValidate(w, r, h.validate, &body) {
		return
	}

	intent, err := h.svc.CreateIntent(ctx, body.ToEntity(middleware.CustomerID(ctx)))
	observeGateway("stripe", "create_intent", err)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to create payment intent", slog.Int64("cart_id", body.CartID))
		return
	}

	utils.WriteJSON(w, CardIntent{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.PaymentIntentID,
		Amount:          intent.Amount,
		Currency:        intent.Currency,
	}, http.StatusOK)
}

// ConfirmOrder creates the order for a succeeded card payment.
// @Summary      Confirm card order
// @Tags         stripe
// @Accept       json
// @Produce      json
// @Param        request  body      CardConfirmRequest  true  "Confirmation"
// @Success      200  {object}  OrderCreated
// @Failure      400  {object}  VerifyFailure "Payment not succeeded"
// @Failure      404  {object}  utils.ErrorResponse "Cart not found"
// @Failure      409  {object}  utils.ErrorResponse "Cart already purchased"
// @Router       /api/stripe/confirm-order [post]
func (h *CardHandler) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body CardConfirmRequest
	if !decodeAndValidate(w, r, h.validate, &body) {
		return
	}

	res, err := h.svc.ConfirmOrder(ctx, body.ToEntity())
	observeGateway("stripe", "confirm", err)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to confirm order",
			slog.Int64("cart_id", body.CartID), slog.String("payment_intent", body.PaymentIntentID))
		return
	}
	if !res.Replayed {
		ordersCreated.WithLabelValues("stripe").Inc()
	}

	utils.WriteJSON(w, OrderCreated{Success: true, OrderID: res.OrderID, TransactionID: res.TransactionID}, http.StatusOK)
}
