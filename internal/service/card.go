package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/cardgateway"
)

type CardGateway interface {
	CreateIntent(ctx context.Context, p cardgateway.IntentParams) (cardgateway.Intent, error)
	GetIntent(ctx context.Context, id string) (cardgateway.Intent, error)
}

type CartRepo interface {
	GetCart(ctx context.Context, id int64) (entities.Cart, error)
	CheckStock(ctx context.Context, items []entities.LineItem) ([]entities.StockShortage, error)
}

type AddressResolver interface {
	ResolveAddress(ctx context.Context, customerID *int64, ref entities.AddressRef) (entities.Address, error)
}

type cardService struct {
	logger    *slog.Logger
	currency  string
	gateway   CardGateway
	carts     CartRepo
	addresses AddressResolver
	finalizer Finalizer
}

// NewCardService builds the card checkout. gateway may be nil, in which case
// every operation fails with ErrGatewayDisabled.
func NewCardService(
	logger *slog.Logger,
	currency string,
	gateway CardGateway,
	carts CartRepo,
	addresses AddressResolver,
	finalizer Finalizer,
) *cardService {
	return &cardService{
		logger:    logger.With(slog.String("service", "card")),
		currency:  strings.ToUpper(currency),
		gateway:   gateway,
		carts:     carts,
		addresses: addresses,
		finalizer: finalizer,
	}
}

// CreateIntent prepares a card payment for the cart total.
func (s *cardService) CreateIntent(ctx context.Context, req entities.CardIntentRequest) (entities.CardIntent, error) {
	if s.gateway == nil {
		return entities.CardIntent{}, entities.ErrGatewayDisabled
	}

	cart, err := s.carts.GetCart(ctx, req.CartID)
	if err != nil {
		return entities.CardIntent{}, err
	}
	if cart.IsPurchased() {
		return entities.CardIntent{}, entities.ErrCartAlreadyPurchased
	}
	if len(cart.Items) == 0 || cart.Subtotal <= 0 {
		return entities.CardIntent{}, entities.ErrEmptyCart
	}
	if s.currency != "" && !strings.EqualFold(cart.Currency, s.currency) {
		return entities.CardIntent{}, fmt.Errorf("%w: %s", entities.ErrUnsupportedCurrency, cart.Currency)
	}

	shortages, err := s.carts.CheckStock(ctx, cart.Items)
	if err != nil {
		return entities.CardIntent{}, fmt.Errorf("failed to check stock: %w", err)
	}
	if len(shortages) > 0 {
		return entities.CardIntent{}, &entities.OutOfStockError{Shortages: shortages}
	}

	if req.CustomerID == nil && strings.TrimSpace(req.CustomerEmail) == "" {
		return entities.CardIntent{}, fmt.Errorf("%w: guest checkout requires an email", entities.ErrInvalidRequest)
	}
	if req.BillingAddress.IsZero() {
		return entities.CardIntent{}, fmt.Errorf("%w: billing address required", entities.ErrInvalidRequest)
	}
	if _, err := s.addresses.ResolveAddress(ctx, req.CustomerID, req.BillingAddress); err != nil {
		return entities.CardIntent{}, err
	}
	shippingRef := req.ShippingAddress
	if shippingRef.IsZero() {
		shippingRef = req.BillingAddress
	}
	shipping, err := s.addresses.ResolveAddress(ctx, req.CustomerID, shippingRef)
	if err != nil {
		return entities.CardIntent{}, err
	}

	intent, err := s.gateway.CreateIntent(ctx, cardgateway.IntentParams{
		Amount:        cart.Subtotal,
		Currency:      cart.Currency,
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		CartID:        cart.ID,
		Description:   fmt.Sprintf("Cart %d", cart.ID),
		Shipping:      toShipping(shipping),
	})
	if err != nil {
		return entities.CardIntent{}, cardErr(err)
	}

	s.logger.InfoContext(ctx, "card intent created",
		slog.Int64("cart_id", cart.ID), slog.String("payment_intent", intent.ID))

	return entities.CardIntent{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
		Amount:          intent.Amount,
		Currency:        intent.Currency,
	}, nil
}

// ConfirmOrder finalizes a cart once its payment intent has succeeded. The
// finalizer rejects an intent whose amount no longer matches the cart.
func (s *cardService) ConfirmOrder(ctx context.Context, req entities.CardConfirmRequest) (entities.FinalizeResult, error) {
	if s.gateway == nil {
		return entities.FinalizeResult{}, entities.ErrGatewayDisabled
	}
	if req.PaymentIntentID == "" || req.CartID <= 0 {
		return entities.FinalizeResult{}, fmt.Errorf("%w: cartId and paymentIntentID required", entities.ErrInvalidRequest)
	}

	intent, err := s.gateway.GetIntent(ctx, req.PaymentIntentID)
	if err != nil {
		return entities.FinalizeResult{}, cardErr(err)
	}
	if intent.Status != cardgateway.StatusSucceeded || intent.CartID != req.CartID {
		return entities.FinalizeResult{}, &entities.GatewayError{
			Gateway: entities.GatewayStripe,
			Message: fmt.Sprintf("payment intent %s is %s", intent.ID, intent.Status),
			Err:     entities.ErrPaymentNotVerified,
		}
	}

	return s.finalizer.Finalize(ctx, entities.FinalizeInput{
		CartID:          req.CartID,
		Reference:       entities.StripeRef(intent.ID, intent.CustomerID),
		CustomerEmail:   strings.TrimSpace(req.CustomerEmail),
		ShippingAddress: req.ShippingAddress,
		Charged:         &entities.Charge{Amount: intent.Amount, Currency: intent.Currency},
	})
}

func toShipping(a entities.Address) *cardgateway.Shipping {
	name := strings.TrimSpace(a.FirstName + " " + a.LastName)
	if name == "" || a.AddressLine1 == "" {
		return nil
	}
	return &cardgateway.Shipping{
		Name:       name,
		Phone:      a.Phone,
		Line1:      a.AddressLine1,
		Line2:      a.AddressLine2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func cardErr(err error) error {
	switch {
	case errors.Is(err, cardgateway.ErrIntentNotFound):
		return &entities.GatewayError{Gateway: entities.GatewayStripe, Message: err.Error(), Err: entities.ErrPaymentNotVerified}
	case errors.Is(err, cardgateway.ErrUnavailable):
		return fmt.Errorf("%w: %w", entities.ErrGatewayUnavailable, err)
	}
	return &entities.GatewayError{Gateway: entities.GatewayStripe, Message: err.Error(), Err: entities.ErrGatewayRejected}
}
