package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"

	"github.com/shopspring/decimal"
)

// FlexString accepts a JSON string or number. Gateways report reference ids
// as numbers, clients tend to echo them back as strings.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}

// Address is a postal address
type Address struct {
	Title        string `json:"title,omitempty"`
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName,omitempty"`
	Company      string `json:"company,omitempty"`
	AddressLine1 string `json:"addressLine1" validate:"required"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	Country      string `json:"country" validate:"required,iso3166_1_alpha2"`
	Phone        string `json:"phone,omitempty"`
}

// AddressInput is either the id of a saved address or a full address
type AddressInput struct {
	ID      int64    `json:"id,omitempty" swaggertype:"integer"`
	Address *Address `json:"-"`
}

func (a *AddressInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] != '{' {
		id, err := strconv.ParseInt(string(bytes.Trim(data, `"`)), 10, 64)
		if err != nil {
			return fmt.Errorf("address must be an id or an object")
		}
		a.ID = id
		return nil
	}

	var v struct {
		ID *int64 `json:"id"`
		Address
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.ID != nil {
		a.ID = *v.ID
		return nil
	}
	a.Address = &v.Address
	return nil
}

func (a AddressInput) ToRef() entities.AddressRef {
	if a.Address != nil {
		return entities.EmbedAddress(AddressJSONToEntity(*a.Address))
	}
	return entities.RefAddress(a.ID)
}

// SavedAddress is an address stored in the customer's address book
type SavedAddress struct {
	ID int64 `json:"id"`
	Address
	CreatedAt time.Time `json:"createdAt"`
}

func AddressJSONToEntity(a Address) entities.Address {
	return entities.Address{
		Title:        a.Title,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Company:      a.Company,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		City:         a.City,
		State:        a.State,
		PostalCode:   a.PostalCode,
		Country:      a.Country,
		Phone:        a.Phone,
	}
}

func AddressEntityToJSON(a entities.Address) Address {
	return Address{
		Title:        a.Title,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Company:      a.Company,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		City:         a.City,
		State:        a.State,
		PostalCode:   a.PostalCode,
		Country:      a.Country,
		Phone:        a.Phone,
	}
}

func optionalAddress(a *Address) *entities.Address {
	if a == nil {
		return nil
	}
	e := AddressJSONToEntity(*a)
	return &e
}

func optionalAddressJSON(a *entities.Address) *Address {
	if a == nil {
		return nil
	}
	j := AddressEntityToJSON(*a)
	return &j
}

func SavedAddressEntityToJSON(a entities.SavedAddress) SavedAddress {
	return SavedAddress{ID: a.ID, Address: AddressEntityToJSON(a.Address), CreatedAt: a.CreatedAt}
}

// PaymentRequest starts a regional gateway payment
type PaymentRequest struct {
	AmountInUSD     decimal.Decimal `json:"amountInUSD" swaggertype:"number"`
	AmountInIRT     decimal.Decimal `json:"amountInIRT" swaggertype:"number"`
	Description     string          `json:"description" validate:"required_without=OrderID"`
	Mobile          string          `json:"mobile,omitempty"`
	Email           string          `json:"email,omitempty" validate:"omitempty,email"`
	OrderID         string          `json:"orderId,omitempty"`
	CartID          *int64          `json:"cartId,omitempty" validate:"omitempty,gt=0"`
	ShippingAddress *Address        `json:"shippingAddress,omitempty"`
}

func (p PaymentRequest) ToEntity() entities.PaymentRequest {
	description := p.Description
	if description == "" {
		description = "Order #" + p.OrderID
	}
	return entities.PaymentRequest{
		AmountInUSD:     p.AmountInUSD,
		AmountInIRT:     p.AmountInIRT,
		Description:     description,
		Mobile:          p.Mobile,
		Email:           p.Email,
		CartID:          p.CartID,
		ShippingAddress: optionalAddress(p.ShippingAddress),
	}
}

// PaymentResponse carries the authority and the page to send the customer to
type PaymentResponse struct {
	Success    bool   `json:"success"`
	Authority  string `json:"authority"`
	PaymentURL string `json:"paymentUrl"`
	Amount     int64  `json:"amount"`
	Message    string `json:"message"`
}

// VerifyRequest settles a payment after the customer returns from the gateway
type VerifyRequest struct {
	Authority string `json:"authority" validate:"required"`
	Amount    int64  `json:"amount,omitempty" validate:"gte=0"`
}

// VerifyResponse reports a verified payment
type VerifyResponse struct {
	Success         bool   `json:"success"`
	Verified        bool   `json:"verified"`
	AlreadyVerified bool   `json:"alreadyVerified,omitempty"`
	RefID           string `json:"refId"`
	CardPan         string `json:"cardPan,omitempty"`
	Fee             int64  `json:"fee"`
	Message         string `json:"message"`
}

// VerifyFailure reports a payment the gateway did not confirm
type VerifyFailure struct {
	Success  bool   `json:"success"`
	Verified bool   `json:"verified"`
	Code     int    `json:"code"`
	Message  string `json:"message"`
}

// CreateOrderRequest finalizes a verified regional payment
type CreateOrderRequest struct {
	CartID          *int64     `json:"cartId,omitempty" validate:"omitempty,gt=0"`
	Authority       string     `json:"authority" validate:"required"`
	RefID           FlexString `json:"refId,omitempty" swaggertype:"string"`
	CardPan         string     `json:"cardPan,omitempty"`
	CustomerEmail   string     `json:"customerEmail,omitempty" validate:"omitempty,email"`
	ShippingAddress *Address   `json:"shippingAddress,omitempty"`
}

func (c CreateOrderRequest) ToEntity() entities.CreateOrderRequest {
	return entities.CreateOrderRequest{
		CartID:          c.CartID,
		Authority:       c.Authority,
		RefID:           string(c.RefID),
		CardPan:         c.CardPan,
		CustomerEmail:   c.CustomerEmail,
		ShippingAddress: optionalAddress(c.ShippingAddress),
	}
}

// OrderCreated identifies the order and transaction written for a payment
type OrderCreated struct {
	Success       bool  `json:"success"`
	OrderID       int64 `json:"orderID"`
	TransactionID int64 `json:"transactionID"`
}

// InquiryRequest asks the gateway for the state of a payment
type InquiryRequest struct {
	Authority string `json:"authority" validate:"required"`
}

// InquiryResponse is the gateway-side state of a payment
type InquiryResponse struct {
	Success   bool   `json:"success"`
	Authority string `json:"authority"`
	Code      int    `json:"code"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

// PendingPayment is a regional payment awaiting completion
type PendingPayment struct {
	Authority       string    `json:"authority"`
	CartID          *int64    `json:"cartId,omitempty"`
	Amount          int64     `json:"amount"`
	Currency        string    `json:"currency"`
	CustomerEmail   string    `json:"customerEmail,omitempty"`
	ShippingAddress *Address  `json:"shippingAddress,omitempty"`
	Status          string    `json:"status"`
	OrderID         *int64    `json:"orderID,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	ExpiresAt       time.Time `json:"expiresAt"`
}

func PendingEntityToJSON(p entities.PendingPayment) PendingPayment {
	return PendingPayment{
		Authority:       p.Authority,
		CartID:          p.CartID,
		Amount:          p.Amount,
		Currency:        p.Currency,
		CustomerEmail:   p.CustomerEmail,
		ShippingAddress: optionalAddressJSON(p.ShippingAddress),
		Status:          string(p.Status),
		OrderID:         p.OrderID,
		CreatedAt:       p.CreatedAt,
		ExpiresAt:       p.ExpiresAt,
	}
}

// RedirectResult is shown when a gateway return does not produce an order
type RedirectResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CardIntentRequest prepares a card payment for a cart
type CardIntentRequest struct {
	CartID          int64         `json:"cartId" validate:"required,gt=0"`
	CustomerEmail   string        `json:"customerEmail,omitempty" validate:"omitempty,email"`
	BillingAddress  AddressInput  `json:"billingAddress"`
	ShippingAddress *AddressInput `json:"shippingAddress,omitempty"`
}

func (c CardIntentRequest) ToEntity(customerID *int64) entities.CardIntentRequest {
	req := entities.CardIntentRequest{
		CartID:         c.CartID,
		CustomerID:     customerID,
		CustomerEmail:  c.CustomerEmail,
		BillingAddress: c.BillingAddress.ToRef(),
	}
	if c.ShippingAddress != nil {
		req.ShippingAddress = c.ShippingAddress.ToRef()
	}
	return req
}

// CardIntent is handed to the hosted payment element
type CardIntent struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentID"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
}

// CardConfirmRequest finalizes a cart after a successful card payment
type CardConfirmRequest struct {
	CartID          int64    `json:"cartId" validate:"required,gt=0"`
	PaymentIntentID string   `json:"paymentIntentID" validate:"required"`
	CustomerEmail   string   `json:"customerEmail,omitempty" validate:"omitempty,email"`
	ShippingAddress *Address `json:"shippingAddress,omitempty"`
}

func (c CardConfirmRequest) ToEntity() entities.CardConfirmRequest {
	return entities.CardConfirmRequest{
		CartID:          c.CartID,
		PaymentIntentID: c.PaymentIntentID,
		CustomerEmail:   c.CustomerEmail,
		ShippingAddress: optionalAddress(c.ShippingAddress),
	}
}

// CardConfig tells clients whether card payments are available
type CardConfig struct {
	Enabled        bool   `json:"enabled"`
	PublishableKey string `json:"publishableKey,omitempty"`
	Currency       string `json:"currency,omitempty"`
}

// LineItem is one product line
type LineItem struct {
	ProductID int64  `json:"productId"`
	VariantID *int64 `json:"variantId,omitempty"`
	Quantity  int    `json:"quantity"`
}

func lineItemsToJSON(items []entities.LineItem) []LineItem {
	res := make([]LineItem, len(items))
	for i, it := range items {
		res[i] = LineItem{ProductID: it.ProductID, VariantID: it.VariantID, Quantity: it.Quantity}
	}
	return res
}

// Order is a purchased order
type Order struct {
	ID              int64      `json:"id"`
	CustomerID      *int64     `json:"customerId,omitempty"`
	CustomerEmail   string     `json:"customerEmail,omitempty"`
	Amount          int64      `json:"amount"`
	Currency        string     `json:"currency"`
	Status          string     `json:"status"`
	Items           []LineItem `json:"items"`
	ShippingAddress *Address   `json:"shippingAddress,omitempty"`
	Transactions    []int64    `json:"transactions"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func OrderEntityToJSON(o entities.Order) Order {
	transactions := o.TransactionIDs
	if transactions == nil {
		transactions = []int64{}
	}
	return Order{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		CustomerEmail:   o.CustomerEmail,
		Amount:          o.Amount,
		Currency:        o.Currency,
		Status:          string(o.Status),
		Items:           lineItemsToJSON(o.Items),
		ShippingAddress: optionalAddressJSON(o.ShippingAddress),
		Transactions:    transactions,
		CreatedAt:       o.CreatedAt,
	}
}

// Cart is a shopping cart with its computed subtotal
type Cart struct {
	ID          int64      `json:"id"`
	CustomerID  *int64     `json:"customerId,omitempty"`
	Items       []LineItem `json:"items"`
	Subtotal    int64      `json:"subtotal"`
	SubtotalIRT int64      `json:"subtotalIRT,omitempty"`
	Currency    string     `json:"currency"`
	Status      string     `json:"status"`
	PurchasedAt *time.Time `json:"purchasedAt,omitempty"`
}

func CartEntityToJSON(c entities.Cart) Cart {
	return Cart{
		ID:          c.ID,
		CustomerID:  c.CustomerID,
		Items:       lineItemsToJSON(c.Items),
		Subtotal:    c.Subtotal,
		SubtotalIRT: c.SubtotalIRT,
		Currency:    c.Currency,
		Status:      string(c.Status),
		PurchasedAt: c.PurchasedAt,
	}
}
