package entities

import (
	"errors"
	"fmt"
)

var (
	ErrCartNotFound           = errors.New("cart not found")
	ErrOrderNotFound          = errors.New("order not found")
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrPendingPaymentNotFound = errors.New("pending payment not found")
	ErrAddressNotFound        = errors.New("address not found")

	ErrInvalidRequest       = errors.New("invalid request")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrCartAlreadyPurchased = errors.New("cart already purchased")
	ErrAmountBelowMinimum   = errors.New("amount below gateway minimum")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrUnsupportedCurrency  = errors.New("unsupported currency")
	ErrOutOfStock           = errors.New("out of stock")

	ErrPaymentNotVerified     = errors.New("payment not verified")
	ErrVerificationInProgress = errors.New("verification already in progress")
	ErrInvalidCallback        = errors.New("invalid gateway callback")

	ErrGatewayRejected    = errors.New("gateway rejected request")
	ErrGatewayUnavailable = errors.New("gateway unavailable")
	ErrGatewayDisabled    = errors.New("gateway disabled")
)

// GatewayError carries the numeric status code and message a payment gateway
// returned. Err classifies it (ErrPaymentNotVerified, ErrGatewayRejected).
type GatewayError struct {
	Gateway Gateway
	Code    int
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s: code %d: %s", e.Gateway, e.Code, e.Message)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// OutOfStockError lists the cart lines that cannot be fulfilled.
type OutOfStockError struct {
	Shortages []StockShortage
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("%d cart item(s) out of stock", len(e.Shortages))
}

func (e *OutOfStockError) Unwrap() error {
	return ErrOutOfStock
}
