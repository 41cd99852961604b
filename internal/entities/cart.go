package entities

import "time"

type CartStatus string

const (
	CartActive    CartStatus = "active"
	CartPurchased CartStatus = "purchased"
)

type LineItem struct {
	ProductID int64
	VariantID *int64
	Quantity  int
}

// Cart amounts are minor units: Subtotal in Currency, SubtotalIRT in tomans.
type Cart struct {
	ID          int64
	CustomerID  *int64
	Items       []LineItem
	Subtotal    int64
	SubtotalIRT int64
	Currency    string
	Status      CartStatus
	PurchasedAt *time.Time
	CreatedAt   time.Time
}

func (c Cart) IsPurchased() bool {
	return c.Status == CartPurchased
}

type StockShortage struct {
	ProductID int64
	VariantID *int64
	Requested int
	Available int
}
