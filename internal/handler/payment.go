package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type PaymentService interface {
	RequestPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentIntent, error)
	VerifyPayment(ctx context.Context, v entities.Verification) (entities.VerificationResult, error)
	InquirePayment(ctx context.Context, authority string) (entities.Inquiry, error)
	GetPendingPayment(ctx context.Context, authority string) (entities.PendingPayment, error)
	CreateOrder(ctx context.Context, req entities.CreateOrderRequest) (entities.FinalizeResult, error)
	CompleteRedirect(ctx context.Context, status entities.RedirectStatus, authority string) (entities.RedirectOutcome, error)
}

type PaymentHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	svc       PaymentService
	publicURL string
}

// NewPaymentHandler serves the regional gateway endpoints. publicURL is the
// storefront origin completed payments are redirected to.
func NewPaymentHandler(logger *slog.Logger, svc PaymentService, publicURL string) *PaymentHandler {
	return &PaymentHandler{
		logger:    logger.With(slog.String("handler", "payment")),
		validate:  newValidator(),
		svc:       svc,
		publicURL: publicURL,
	}
}

func (h *PaymentHandler) Init(r chi.Router) {
	r.Route("/api/zarinpal", func(r chi.Router) {
		r.Post("/request", h.Request)
		r.Post("/verify", h.Verify)
		r.Post("/create-order", h.CreateOrder)
		r.Post("/inquiry", h.Inquiry)
		r.Get("/pending/{authority}", h.GetPending)
	})
	r.Get("/checkout/verify", h.Callback)
}

// Request creates a regional gateway payment.
// @Summary      Request payment
// @Description  Creates a payment at the regional gateway and returns the page to redirect the customer to
// @Tags         zarinpal
// @Accept       json
// @Produce      json
// @Param        request  body      PaymentRequest  true  "Payment"
// @Success      200  {object}  PaymentResponse
// @Failure      400  {object}  utils.ErrorResponse "Invalid amount or below minimum"
// @Failure      500  {object}  utils.ErrorResponse "Gateway failure"
// @Router       /api/zarinpal/request [post]
func (h *PaymentHandler) Request(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body PaymentRequest
	if !h.decode(w, r, &body) {
		return
	}

	intent, err := h.svc.RequestPayment(ctx, body.ToEntity())
	observeGateway("zarinpal", "request", err)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to create payment request")
		return
	}

	utils.WriteJSON(w, PaymentResponse{
		Success:    true,
		Authority:  intent.Authority,
		PaymentURL: intent.PaymentURL,
		Amount:     intent.Amount,
		Message:    "Payment request created successfully",
	}, http.StatusOK)
}

// Verify settles a payment at the gateway.
// @Summary      Verify payment
// @Description  Verifies a payment after the customer returns from the gateway. Amount may be omitted when the payment was requested with a cart.
// @Tags         zarinpal
// @Accept       json
// @Produce      json
// @Param        request  body      VerifyRequest  true  "Verification"
// @Success      200  {object}  VerifyResponse
// @Failure      400  {object}  VerifyFailure "Gateway did not confirm the payment"
// @Failure      409  {object}  utils.ErrorResponse "Verification already in progress"
// @Failure      500  {object}  utils.ErrorResponse "Gateway failure"
// @Router       /api/zarinpal/verify [post]
func (h *PaymentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body VerifyRequest
	if !h.decode(w, r, &body) {
		return
	}

	start := time.Now()
	res, err := h.svc.VerifyPayment(ctx, entities.Verification{Authority: body.Authority, Amount: body.Amount})
	verifyDuration.Observe(time.Since(start).Seconds())
	observeGateway("zarinpal", "verify", err)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to verify payment", slog.String("authority", body.Authority))
		return
	}

	message := "Payment verified successfully"
	if res.AlreadyVerified {
		message = "Payment already verified"
	}
	utils.WriteJSON(w, VerifyResponse{
		Success:         true,
		Verified:        true,
		AlreadyVerified: res.AlreadyVerified,
		RefID:           res.RefID,
		CardPan:         res.CardPan,
		Fee:             res.Fee,
		Message:         message,
	}, http.StatusOK)
}

// CreateOrder finalizes a verified payment.
// @Summary      Create order
// @Description  Turns a verified payment into an order and empties the cart. Repeated calls for one authority return the same order.
// @Tags         zarinpal
// @Accept       json
// @Produce      json
// @Param        request  body      CreateOrderRequest  true  "Order"
// @Success      200  {object}  OrderCreated
// @Failure      400  {object}  utils.ErrorResponse "Missing fields"
// @Failure      404  {object}  utils.ErrorResponse "Cart not found"
// @Failure      409  {object}  utils.ErrorResponse "Cart already purchased"
// @Failure      500  {object}  utils.ErrorResponse "Internal error"
// @Router       /api/zarinpal/create-order [post]
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body CreateOrderRequest
	if !h.decode(w, r, &body) {
		return
	}

	res, err := h.svc.CreateOrder(ctx, body.ToEntity())
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to create order",
			slog.String("authority", body.Authority), slog.Any("cart_id", body.CartID))
		return
	}
	if !res.Replayed {
		ordersCreated.WithLabelValues("zarinpal").Inc()
	}

	utils.WriteJSON(w, OrderCreated{Success: true, OrderID: res.OrderID, TransactionID: res.TransactionID}, http.StatusOK)
}

// Inquiry reports the gateway-side state of a payment.
// @Summary      Inquire payment
// @Tags         zarinpal
// @Accept       json
// @Produce      json
// @Param        request  body      InquiryRequest  true  "Authority"
// @Success      200  {object}  InquiryResponse
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      500  {object}  utils.ErrorResponse "Gateway failure"
// @Router       /api/zarinpal/inquiry [post]
func (h *PaymentHandler) Inquiry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body InquiryRequest
	if !h.decode(w, r, &body) {
		return
	}

	res, err := h.svc.InquirePayment(ctx, body.Authority)
	observeGateway("zarinpal", "inquiry", err)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to inquire payment", slog.String("authority", body.Authority))
		return
	}

	utils.WriteJSON(w, InquiryResponse{
		Success:   true,
		Authority: res.Authority,
		Code:      res.Code,
		Status:    res.Status,
		Message:   res.Message,
	}, http.StatusOK)
}

// GetPending returns the pending payment recorded for an authority.
// @Summary      Get pending payment
// @Tags         zarinpal
// @Produce      json
// @Param        authority  path  string  true  "Gateway authority"
// @Success      200  {object}  PendingPayment
// @Failure      404  {object}  utils.ErrorResponse "Absent or expired"
// @Router       /api/zarinpal/pending/{authority} [get]
func (h *PaymentHandler) GetPending(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	authority := chi.URLParam(r, "authority")

	p, err := h.svc.GetPendingPayment(ctx, authority)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to get pending payment", slog.String("authority", authority))
		return
	}

	utils.WriteJSON(w, PendingEntityToJSON(p), http.StatusOK)
}

// Callback is where the gateway sends the customer back.
// @Summary      Gateway return
// @Description  Verifies and finalizes the payment, then redirects to the order page
// @Tags         zarinpal
// @Produce      json
// @Param        Status     query  string  true  "OK or NOK"
// @Param        Authority  query  string  true  "Gateway authority"
// @Success      200  {object}  RedirectResult "Cancelled or nothing to verify"
// @Success      303  "Redirect to the order"
// @Failure      400  {object}  utils.ErrorResponse
// @Router       /checkout/verify [get]
func (h *PaymentHandler) Callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	authority := q.Get("Authority")

	outcome, err := h.svc.CompleteRedirect(ctx, entities.RedirectStatus(q.Get("Status")), authority)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to complete payment", slog.String("authority", authority))
		return
	}
	redirectOutcomes.WithLabelValues(string(outcome.Kind)).Inc()

	switch outcome.Kind {
	case entities.OutcomeCancelled:
		utils.WriteJSON(w, RedirectResult{Status: string(outcome.Kind), Message: "Payment was cancelled"}, http.StatusOK)
	case entities.OutcomeNothingToVerify:
		utils.WriteJSON(w, RedirectResult{Status: string(outcome.Kind), Message: "There is no payment to verify"}, http.StatusOK)
	default:
		http.Redirect(w, r, h.orderURL(outcome), http.StatusSeeOther)
	}
}

func (h *PaymentHandler) orderURL(o entities.RedirectOutcome) string {
	u := fmt.Sprintf("%s/orders/%d", h.publicURL, o.OrderID)
	if o.Guest && o.CustomerEmail != "" {
		u += "?email=" + url.QueryEscape(o.CustomerEmail)
	}
	return u
}

func (h *PaymentHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	return decodeAndValidate(w, r, h.validate, v)
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, validate *validator.Validate, v any) bool {
	if err := utils.DecodeBody(r, v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	if err := validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}
