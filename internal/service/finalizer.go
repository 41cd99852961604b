package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/trm"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"

	"github.com/google/uuid"
)

type FinalizerRepo interface {
	// LockCart holds the cart row until the transaction ends.
	LockCart(ctx context.Context, id int64) (entities.Cart, error)
	MarkCartPurchased(ctx context.Context, id int64, at time.Time) error

	GetTransactionByIdempotencyKey(ctx context.Context, key string) (entities.Transaction, error)
	CreateTransaction(ctx context.Context, t entities.Transaction) (int64, error)
	LinkTransactionOrder(ctx context.Context, transactionID, orderID int64) error

	CreateOrder(ctx context.Context, o entities.Order) (int64, error)

	MarkPendingFinalized(ctx context.Context, authority string, orderID, transactionID int64) error
	InsertEvent(ctx context.Context, e entities.OutboxEvent) error
}

type orderFinalizer struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      FinalizerRepo
	retry     utils.RetryConfig
	now       func() time.Time
}

func NewOrderFinalizer(logger *slog.Logger, txManager trm.Manager, repo FinalizerRepo) *orderFinalizer {
	return &orderFinalizer{
		logger:    logger.With(slog.String("service", "finalizer")),
		txManager: txManager,
		repo:      repo,
		retry:     utils.DefaultRetry,
		now:       time.Now,
	}
}

var finalizeNonRetryable = []error{
	entities.ErrInvalidRequest,
	entities.ErrCartNotFound,
	entities.ErrCartAlreadyPurchased,
	entities.ErrEmptyCart,
	entities.ErrPaymentNotVerified,
	context.Canceled,
	context.DeadlineExceeded,
}

// Finalize turns a verified payment into a transaction and an order and
// empties the cart, all in one database transaction. Calling it again for the
// same gateway payment returns the first result without writing anything.
func (f *orderFinalizer) Finalize(ctx context.Context, in entities.FinalizeInput) (entities.FinalizeResult, error) {
	if err := in.Reference.Validate(); err != nil {
		return entities.FinalizeResult{}, fmt.Errorf("%w: %w", entities.ErrInvalidRequest, err)
	}
	if in.CartID <= 0 {
		return entities.FinalizeResult{}, fmt.Errorf("%w: cart id required", entities.ErrInvalidRequest)
	}

	var result entities.FinalizeResult
	fn := func() error {
		return f.txManager.Do(ctx, func(ctx context.Context) error {
			var err error
			result, err = f.finalize(ctx, in)
			return err
		})
	}

	if err := utils.Retry(ctx, f.retry, fn, finalizeNonRetryable...); err != nil {
		return entities.FinalizeResult{}, err
	}

	if result.Replayed {
		f.logger.InfoContext(ctx, "finalization replayed",
			slog.Int64("order_id", result.OrderID), slog.String("key", in.Reference.IdempotencyKey()))
	} else {
		f.logger.InfoContext(ctx, "order finalized",
			slog.Int64("order_id", result.OrderID), slog.Int64("transaction_id", result.TransactionID),
			slog.Int64("cart_id", in.CartID), slog.String("gateway", string(in.Reference.Kind)))
	}
	return result, nil
}

func (f *orderFinalizer) finalize(ctx context.Context, in entities.FinalizeInput) (entities.FinalizeResult, error) {
	key := in.Reference.IdempotencyKey()

	cart, err := f.repo.LockCart(ctx, in.CartID)
	if err != nil {
		return entities.FinalizeResult{}, fmt.Errorf("failed to load cart: %w", err)
	}

	// Checked under the cart lock so a concurrent finalization of the same
	// payment is seen once it commits.
	existing, err := f.repo.GetTransactionByIdempotencyKey(ctx, key)
	switch {
	case err == nil:
		if existing.OrderID == nil {
			return entities.FinalizeResult{}, fmt.Errorf("transaction %d has no order", existing.ID)
		}
		return entities.FinalizeResult{
			OrderID:       *existing.OrderID,
			TransactionID: existing.ID,
			CustomerID:    existing.CustomerID,
			CustomerEmail: existing.CustomerEmail,
			Replayed:      true,
		}, nil
	case !errors.Is(err, entities.ErrTransactionNotFound):
		return entities.FinalizeResult{}, fmt.Errorf("failed to look up transaction: %w", err)
	}

	if cart.IsPurchased() {
		return entities.FinalizeResult{}, entities.ErrCartAlreadyPurchased
	}
	if len(cart.Items) == 0 {
		return entities.FinalizeResult{}, entities.ErrEmptyCart
	}
	if c := in.Charged; c != nil && (c.Amount != cart.Subtotal || !strings.EqualFold(c.Currency, cart.Currency)) {
		return entities.FinalizeResult{}, fmt.Errorf("%w: charged %d %s, cart total is %d %s",
			entities.ErrPaymentNotVerified, c.Amount, c.Currency, cart.Subtotal, cart.Currency)
	}

	now := f.now()

	transactionID, err := f.repo.CreateTransaction(ctx, entities.Transaction{
		Status:         entities.TransactionSucceeded,
		Amount:         cart.Subtotal,
		Currency:       cart.Currency,
		CartID:         cart.ID,
		CustomerID:     cart.CustomerID,
		CustomerEmail:  in.CustomerEmail,
		Reference:      in.Reference,
		IdempotencyKey: key,
		CreatedAt:      now,
	})
	if err != nil {
		return entities.FinalizeResult{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	orderID, err := f.repo.CreateOrder(ctx, entities.Order{
		CustomerID:      cart.CustomerID,
		CustomerEmail:   in.CustomerEmail,
		Amount:          cart.Subtotal,
		Currency:        cart.Currency,
		Status:          entities.OrderProcessing,
		Items:           cart.Items,
		ShippingAddress: in.ShippingAddress,
		CreatedAt:       now,
	})
	if err != nil {
		return entities.FinalizeResult{}, fmt.Errorf("failed to create order: %w", err)
	}

	if err := f.repo.LinkTransactionOrder(ctx, transactionID, orderID); err != nil {
		return entities.FinalizeResult{}, fmt.Errorf("failed to link transaction: %w", err)
	}

	if err := f.repo.MarkCartPurchased(ctx, cart.ID, now); err != nil {
		return entities.FinalizeResult{}, fmt.Errorf("failed to mark cart purchased: %w", err)
	}

	if in.Reference.Kind == entities.GatewayZarinpal {
		err := f.repo.MarkPendingFinalized(ctx, in.Reference.Zarinpal.Authority, orderID, transactionID)
		if err != nil && !errors.Is(err, entities.ErrPendingPaymentNotFound) {
			return entities.FinalizeResult{}, fmt.Errorf("failed to finalize pending payment: %w", err)
		}
	}

	event, err := orderCreatedEvent(orderID, transactionID, cart, in, now)
	if err != nil {
		return entities.FinalizeResult{}, err
	}
	if err := f.repo.InsertEvent(ctx, event); err != nil {
		return entities.FinalizeResult{}, fmt.Errorf("failed to write order event: %w", err)
	}

	return entities.FinalizeResult{
		OrderID:       orderID,
		TransactionID: transactionID,
		CustomerID:    cart.CustomerID,
		CustomerEmail: in.CustomerEmail,
	}, nil
}

type orderCreatedPayload struct {
	OrderID       int64     `json:"orderId"`
	TransactionID int64     `json:"transactionId"`
	CartID        int64     `json:"cartId"`
	CustomerID    *int64    `json:"customerId,omitempty"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	Gateway       string    `json:"gateway"`
	Reference     string    `json:"reference"`
	Items         int       `json:"items"`
	CreatedAt     time.Time `json:"createdAt"`
}

func orderCreatedEvent(orderID, transactionID int64, cart entities.Cart, in entities.FinalizeInput, now time.Time) (entities.OutboxEvent, error) {
	payload, err := json.Marshal(orderCreatedPayload{
		OrderID:       orderID,
		TransactionID: transactionID,
		CartID:        cart.ID,
		CustomerID:    cart.CustomerID,
		CustomerEmail: in.CustomerEmail,
		Amount:        cart.Subtotal,
		Currency:      cart.Currency,
		Gateway:       string(in.Reference.Kind),
		Reference:     in.Reference.Composite(),
		Items:         len(cart.Items),
		CreatedAt:     now,
	})
	if err != nil {
		return entities.OutboxEvent{}, fmt.Errorf("failed to encode order event: %w", err)
	}
	return entities.OutboxEvent{
		EventID:   uuid.NewString(),
		Type:      entities.EventOrderCreated,
		Key:       fmt.Sprint(orderID),
		Payload:   payload,
		CreatedAt: now,
	}, nil
}
