package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Gateway string

const (
	GatewayZarinpal Gateway = "zarinpal"
	GatewayStripe   Gateway = "stripe"
)

type TransactionStatus string

const (
	TransactionSucceeded TransactionStatus = "succeeded"
	TransactionFailed    TransactionStatus = "failed"
)

type ZarinpalReference struct {
	Authority string
	RefID     string
	CardPan   string
}

type StripeReference struct {
	PaymentIntentID string
	CustomerID      string
}

// GatewayReference identifies a payment at the gateway that processed it.
// Kind selects which of Zarinpal and Stripe is populated.
type GatewayReference struct {
	Kind     Gateway
	Zarinpal *ZarinpalReference
	Stripe   *StripeReference
}

func ZarinpalRef(authority, refID, cardPan string) GatewayReference {
	return GatewayReference{
		Kind:     GatewayZarinpal,
		Zarinpal: &ZarinpalReference{Authority: authority, RefID: refID, CardPan: cardPan},
	}
}

func StripeRef(paymentIntentID, customerID string) GatewayReference {
	return GatewayReference{
		Kind:   GatewayStripe,
		Stripe: &StripeReference{PaymentIntentID: paymentIntentID, CustomerID: customerID},
	}
}

func (g GatewayReference) Validate() error {
	switch g.Kind {
	case GatewayZarinpal:
		if g.Zarinpal == nil || g.Zarinpal.Authority == "" || g.Zarinpal.RefID == "" {
			return fmt.Errorf("zarinpal reference requires authority and ref id")
		}
	case GatewayStripe:
		if g.Stripe == nil || g.Stripe.PaymentIntentID == "" {
			return fmt.Errorf("stripe reference requires payment intent id")
		}
	default:
		return fmt.Errorf("unknown gateway %q", g.Kind)
	}
	return nil
}

// Composite is the human-traceable reference stored next to the structured one,
// e.g. zarinpal_<refId>_<authority>.
func (g GatewayReference) Composite() string {
	switch g.Kind {
	case GatewayZarinpal:
		return fmt.Sprintf("zarinpal_%s_%s", g.Zarinpal.RefID, g.Zarinpal.Authority)
	case GatewayStripe:
		return "stripe_" + g.Stripe.PaymentIntentID
	}
	return ""
}

// IdempotencyKey is unique per gateway payment attempt.
func (g GatewayReference) IdempotencyKey() string {
	switch g.Kind {
	case GatewayZarinpal:
		return "zarinpal:" + g.Zarinpal.Authority
	case GatewayStripe:
		return "stripe:" + g.Stripe.PaymentIntentID
	}
	return ""
}

type Transaction struct {
	ID             int64
	Status         TransactionStatus
	Amount         int64
	Currency       string
	CartID         int64
	OrderID        *int64
	CustomerID     *int64
	CustomerEmail  string
	Reference      GatewayReference
	IdempotencyKey string
	CreatedAt      time.Time
}

type PendingStatus string

const (
	PendingAwaiting  PendingStatus = "pending"
	PendingVerified  PendingStatus = "verified"
	PendingFinalized PendingStatus = "finalized"
	PendingCancelled PendingStatus = "cancelled"
	PendingExpired   PendingStatus = "expired"
)

// PendingPayment is the server-side record of a redirect payment between the
// gateway request and order creation. Amount is in the gateway unit (rials).
type PendingPayment struct {
	Authority       string
	CartID          *int64
	Amount          int64
	Currency        string
	CustomerEmail   string
	ShippingAddress *Address
	Status          PendingStatus
	RefID           string
	CardPan         string
	OrderID         *int64
	TransactionID   *int64
	CreatedAt       time.Time
	ExpiresAt       time.Time
}

func (p PendingPayment) Expired(now time.Time) bool {
	return p.Status == PendingExpired || (p.Status == PendingAwaiting && !now.Before(p.ExpiresAt))
}

// PaymentRequest asks the regional gateway for a new payment. At least one of
// AmountInIRT (tomans) and AmountInUSD (dollars) must be positive.
type PaymentRequest struct {
	AmountInUSD     decimal.Decimal
	AmountInIRT     decimal.Decimal
	Description     string
	Mobile          string
	Email           string
	CartID          *int64
	ShippingAddress *Address
}

type PaymentIntent struct {
	Authority  string
	PaymentURL string
	Amount     int64
}

type Verification struct {
	Authority string
	Amount    int64
}

type VerificationResult struct {
	Authority       string
	Code            int
	RefID           string
	CardPan         string
	CardHash        string
	Fee             int64
	FeeType         string
	AlreadyVerified bool
}

type Inquiry struct {
	Authority string
	Code      int
	Status    string
	Message   string
}

// CreateOrderRequest finalizes a verified regional payment. Empty fields are
// filled from the pending payment recorded for Authority.
type CreateOrderRequest struct {
	CartID          *int64
	Authority       string
	RefID           string
	CardPan         string
	CustomerEmail   string
	ShippingAddress *Address
}

type FinalizeInput struct {
	CartID          int64
	Reference       GatewayReference
	CustomerEmail   string
	ShippingAddress *Address
	// Charged is what the gateway captured. When set it must match the
	// locked cart total.
	Charged *Charge
}

// Charge is an amount in minor units of Currency.
type Charge struct {
	Amount   int64
	Currency string
}

type FinalizeResult struct {
	OrderID       int64
	TransactionID int64
	CustomerID    *int64
	CustomerEmail string
	// Replayed is set when the payment had already been finalized.
	Replayed bool
}

type RedirectStatus string

const (
	RedirectOK  RedirectStatus = "OK"
	RedirectNOK RedirectStatus = "NOK"
)

type RedirectOutcomeKind string

const (
	OutcomeCompleted       RedirectOutcomeKind = "completed"
	OutcomeCancelled       RedirectOutcomeKind = "cancelled"
	OutcomeNothingToVerify RedirectOutcomeKind = "nothing_to_verify"
)

type RedirectOutcome struct {
	Kind          RedirectOutcomeKind
	OrderID       int64
	TransactionID int64
	CustomerEmail string
	Guest         bool
}

type CardIntentRequest struct {
	CartID          int64
	CustomerID      *int64
	CustomerEmail   string
	BillingAddress  AddressRef
	ShippingAddress AddressRef
}

type CardIntent struct {
	ClientSecret    string
	PaymentIntentID string
	Amount          int64
	Currency        string
}

type CardConfirmRequest struct {
	CartID          int64
	PaymentIntentID string
	CustomerEmail   string
	ShippingAddress *Address
}
