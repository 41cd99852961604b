package checkout

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type Address struct {
	Title        string `json:"title,omitempty"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName,omitempty"`
	Company      string `json:"company,omitempty"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	Country      string `json:"country"`
	Phone        string `json:"phone,omitempty"`
}

type SavedAddress struct {
	ID int64 `json:"id"`
	Address
	CreatedAt time.Time `json:"createdAt"`
}

// AddressRef is either a saved address id or an address held by the caller.
type AddressRef struct {
	ID       int64
	Embedded *Address
}

func RefAddress(id int64) AddressRef {
	return AddressRef{ID: id}
}

func EmbedAddress(a Address) AddressRef {
	return AddressRef{Embedded: &a}
}

func (r AddressRef) IsZero() bool {
	return r.ID == 0 && r.Embedded == nil
}

func (r AddressRef) MarshalJSON() ([]byte, error) {
	if r.Embedded != nil {
		return json.Marshal(r.Embedded)
	}
	return json.Marshal(r.ID)
}

type LineItem struct {
	ProductID int64  `json:"productId"`
	VariantID *int64 `json:"variantId,omitempty"`
	Quantity  int    `json:"quantity"`
}

// Cart amounts: Subtotal is minor units of Currency, SubtotalIRT is tomans
// and zero when no toman price is known.
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

type PaymentRequest struct {
	AmountInUSD     *decimal.Decimal `json:"amountInUSD,omitempty"`
	AmountInIRT     *decimal.Decimal `json:"amountInIRT,omitempty"`
	Description     string           `json:"description"`
	Mobile          string           `json:"mobile,omitempty"`
	Email           string           `json:"email,omitempty"`
	CartID          *int64           `json:"cartId,omitempty"`
	ShippingAddress *Address         `json:"shippingAddress,omitempty"`
}

type PaymentResponse struct {
	Success    bool   `json:"success"`
	Authority  string `json:"authority"`
	PaymentURL string `json:"paymentUrl"`
	Amount     int64  `json:"amount"`
	Message    string `json:"message"`
}

type Verification struct {
	Success         bool   `json:"success"`
	Verified        bool   `json:"verified"`
	AlreadyVerified bool   `json:"alreadyVerified"`
	RefID           string `json:"refId"`
	CardPan         string `json:"cardPan"`
	Fee             int64  `json:"fee"`
	Message         string `json:"message"`
}

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

type CreateOrderRequest struct {
	CartID          *int64   `json:"cartId,omitempty"`
	Authority       string   `json:"authority"`
	RefID           string   `json:"refId,omitempty"`
	CardPan         string   `json:"cardPan,omitempty"`
	CustomerEmail   string   `json:"customerEmail,omitempty"`
	ShippingAddress *Address `json:"shippingAddress,omitempty"`
}

type OrderCreated struct {
	Success       bool  `json:"success"`
	OrderID       int64 `json:"orderID"`
	TransactionID int64 `json:"transactionID"`
}

type CardIntentRequest struct {
	CartID          int64       `json:"cartId"`
	CustomerEmail   string      `json:"customerEmail,omitempty"`
	BillingAddress  AddressRef  `json:"billingAddress"`
	ShippingAddress *AddressRef `json:"shippingAddress,omitempty"`
}

type CardIntent struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentID"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
}

type CardConfirmRequest struct {
	CartID          int64    `json:"cartId"`
	PaymentIntentID string   `json:"paymentIntentID"`
	CustomerEmail   string   `json:"customerEmail,omitempty"`
	ShippingAddress *Address `json:"shippingAddress,omitempty"`
}
