package entities

import (
	"strings"
	"time"
)

type OrderStatus string

const OrderProcessing OrderStatus = "processing"

type Order struct {
	ID              int64
	CustomerID      *int64
	CustomerEmail   string
	Amount          int64
	Currency        string
	Status          OrderStatus
	Items           []LineItem
	ShippingAddress *Address
	TransactionIDs  []int64
	CreatedAt       time.Time
}

// AccessibleBy reports whether the order may be shown to the caller: the
// owning customer, or a guest presenting the email used at purchase.
func (o Order) AccessibleBy(customerID *int64, email string) bool {
	if o.CustomerID != nil {
		return customerID != nil && *customerID == *o.CustomerID
	}
	email = strings.TrimSpace(email)
	return email != "" && strings.EqualFold(email, o.CustomerEmail)
}
