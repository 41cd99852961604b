package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"
)

const (
	CauseOutOfStock         = "OutOfStock"
	CauseAmountBelowMinimum = "AmountBelowMinimum"
)

// writeServiceError maps service errors onto HTTP responses. Upstream and
// unexpected failures are logged with attrs.
func writeServiceError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error, message string, attrs ...any) {
	var gerr *entities.GatewayError

	switch {
	case errors.Is(err, entities.ErrAmountBelowMinimum):
		utils.WriteJSON(w, utils.ErrorResponse{
			Error:   "amount below gateway minimum",
			Details: err.Error(),
			Cause:   &utils.ErrorCause{Code: CauseAmountBelowMinimum},
		}, http.StatusBadRequest)

	case errors.Is(err, entities.ErrOutOfStock):
		utils.WriteJSON(w, utils.ErrorResponse{
			Error:   "out of stock",
			Details: err.Error(),
			Cause:   &utils.ErrorCause{Code: CauseOutOfStock},
		}, http.StatusConflict)

	case errors.Is(err, entities.ErrInvalidRequest),
		errors.Is(err, entities.ErrInvalidAmount),
		errors.Is(err, entities.ErrInvalidCallback),
		errors.Is(err, entities.ErrEmptyCart),
		errors.Is(err, entities.ErrUnsupportedCurrency):
		utils.WriteErrorDetails(w, "invalid request", err.Error(), http.StatusBadRequest)

	case errors.Is(err, entities.ErrCartNotFound):
		utils.WriteError(w, "cart not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrPendingPaymentNotFound):
		utils.WriteError(w, "pending payment not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrAddressNotFound):
		utils.WriteError(w, "address not found", http.StatusNotFound)

	case errors.Is(err, entities.ErrCartAlreadyPurchased):
		utils.WriteError(w, "cart already purchased", http.StatusConflict)
	case errors.Is(err, entities.ErrVerificationInProgress):
		utils.WriteError(w, "verification already in progress", http.StatusConflict)

	case errors.Is(err, entities.ErrGatewayDisabled):
		utils.WriteError(w, "payment method not available", http.StatusServiceUnavailable)

	case errors.As(err, &gerr) && errors.Is(err, entities.ErrPaymentNotVerified):
		utils.WriteJSON(w, VerifyFailure{Code: gerr.Code, Message: gerr.Message}, http.StatusBadRequest)
	case errors.Is(err, entities.ErrPaymentNotVerified):
		utils.WriteErrorDetails(w, message, err.Error(), http.StatusBadRequest)

	case errors.Is(err, entities.ErrGatewayRejected), errors.Is(err, entities.ErrGatewayUnavailable):
		logger.ErrorContext(ctx, message, append(attrs, slog.Any("error", err))...)
		utils.WriteErrorDetails(w, message, err.Error(), http.StatusInternalServerError)

	default:
		logger.ErrorContext(ctx, message, append(attrs, slog.Any("error", err))...)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
