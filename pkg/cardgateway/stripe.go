package cardgateway

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

const StatusSucceeded = string(stripe.PaymentIntentStatusSucceeded)

var (
	ErrUnavailable    = errors.New("card gateway unavailable")
	ErrIntentNotFound = errors.New("payment intent not found")
)

type Shipping struct {
	Name       string
	Phone      string
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

type IntentParams struct {
	Amount        int64
	Currency      string
	CustomerEmail string
	CartID        int64
	Description   string
	Shipping      *Shipping
}

type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	Amount       int64
	Currency     string
	CustomerID   string
	CartID       int64
}

// Client creates and reads Stripe payment intents. Card data never reaches
// this service: the client secret is handed to the hosted payment element.
type Client struct {
	api *client.API
}

// New builds a client for secretKey. backends may be nil to use Stripe's API.
func New(secretKey string, backends *stripe.Backends) *Client {
	api := &client.API{}
	api.Init(secretKey, backends)
	return &Client{api: api}
}

func (c *Client) CreateIntent(ctx context.Context, p IntentParams) (Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(p.Amount),
		Currency: stripe.String(strings.ToLower(p.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if p.Description != "" {
		params.Description = stripe.String(p.Description)
	}
	if p.CustomerEmail != "" {
		params.ReceiptEmail = stripe.String(p.CustomerEmail)
	}
	if s := p.Shipping; s != nil {
		params.Shipping = &stripe.ShippingDetailsParams{
			Name:  stripe.String(s.Name),
			Phone: stripe.String(s.Phone),
			Address: &stripe.AddressParams{
				Line1:      stripe.String(s.Line1),
				Line2:      stripe.String(s.Line2),
				City:       stripe.String(s.City),
				State:      stripe.String(s.State),
				PostalCode: stripe.String(s.PostalCode),
				Country:    stripe.String(s.Country),
			},
		}
	}
	params.AddMetadata("cart_id", strconv.FormatInt(p.CartID, 10))

	pi, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return Intent{}, wrapErr("create payment intent", err)
	}
	return toIntent(pi), nil
}

func (c *Client) GetIntent(ctx context.Context, id string) (Intent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := c.api.PaymentIntents.Get(id, params)
	if err != nil {
		return Intent{}, wrapErr("get payment intent", err)
	}
	return toIntent(pi), nil
}

func toIntent(pi *stripe.PaymentIntent) Intent {
	intent := Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       pi.Amount,
		Currency:     strings.ToUpper(string(pi.Currency)),
	}
	if pi.Customer != nil {
		intent.CustomerID = pi.Customer.ID
	}
	if id, err := strconv.ParseInt(pi.Metadata["cart_id"], 10, 64); err == nil {
		intent.CartID = id
	}
	return intent
}

func wrapErr(op string, err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.Code == stripe.ErrorCodeResourceMissing {
			return fmt.Errorf("%s: %w", op, ErrIntentNotFound)
		}
		if stripeErr.HTTPStatusCode >= 500 || stripeErr.HTTPStatusCode == 0 {
			return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}
