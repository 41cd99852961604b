package repo

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
)

type Cart struct {
	ID          int64         `db:"id"`
	CustomerID  sql.NullInt64 `db:"customer_id"`
	Currency    string        `db:"currency"`
	Subtotal    int64         `db:"subtotal"`
	SubtotalIRT int64         `db:"subtotal_irt"`
	Status      string        `db:"status"`
	PurchasedAt sql.NullTime  `db:"purchased_at"`
	CreatedAt   time.Time     `db:"created_at"`
}

type LineItem struct {
	ParentID  int64         `db:"parent_id"`
	ProductID int64         `db:"product_id"`
	VariantID sql.NullInt64 `db:"variant_id"`
	Quantity  int           `db:"quantity"`
}

type Address struct {
	ID           int64          `db:"id"`
	CustomerID   int64          `db:"customer_id"`
	Title        sql.NullString `db:"title"`
	FirstName    sql.NullString `db:"first_name"`
	LastName     sql.NullString `db:"last_name"`
	Company      sql.NullString `db:"company"`
	AddressLine1 sql.NullString `db:"address_line1"`
	AddressLine2 sql.NullString `db:"address_line2"`
	City         sql.NullString `db:"city"`
	State        sql.NullString `db:"state"`
	PostalCode   sql.NullString `db:"postal_code"`
	Country      string         `db:"country"`
	Phone        sql.NullString `db:"phone"`
	CreatedAt    time.Time      `db:"created_at"`
}

// addressDoc is the jsonb copy of an address kept on orders and pending payments.
type addressDoc struct {
	Title        string `json:"title,omitempty"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	Company      string `json:"company,omitempty"`
	AddressLine1 string `json:"addressLine1,omitempty"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	Country      string `json:"country,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

type Order struct {
	ID              int64          `db:"id"`
	CustomerID      sql.NullInt64  `db:"customer_id"`
	CustomerEmail   sql.NullString `db:"customer_email"`
	Amount          int64          `db:"amount"`
	Currency        string         `db:"currency"`
	Status          string         `db:"status"`
	ShippingAddress []byte         `db:"shipping_address"`
	CreatedAt       time.Time      `db:"created_at"`
}

type Transaction struct {
	ID               int64          `db:"id"`
	Status           string         `db:"status"`
	Amount           int64          `db:"amount"`
	Currency         string         `db:"currency"`
	CartID           int64          `db:"cart_id"`
	OrderID          sql.NullInt64  `db:"order_id"`
	CustomerID       sql.NullInt64  `db:"customer_id"`
	CustomerEmail    sql.NullString `db:"customer_email"`
	Gateway          string         `db:"gateway"`
	GatewayReference []byte         `db:"gateway_reference"`
	Reference        string         `db:"reference"`
	IdempotencyKey   string         `db:"idempotency_key"`
	CreatedAt        time.Time      `db:"created_at"`
}

type zarinpalRefDoc struct {
	Authority string `json:"authority"`
	RefID     string `json:"refId"`
	CardPan   string `json:"cardPan,omitempty"`
}

type stripeRefDoc struct {
	PaymentIntentID string `json:"paymentIntentId"`
	CustomerID      string `json:"customerId,omitempty"`
}

type gatewayReferenceDoc struct {
	Kind     string          `json:"kind"`
	Zarinpal *zarinpalRefDoc `json:"zarinpal,omitempty"`
	Stripe   *stripeRefDoc   `json:"stripe,omitempty"`
}

type PendingPayment struct {
	Authority       string         `db:"authority"`
	CartID          sql.NullInt64  `db:"cart_id"`
	Amount          int64          `db:"amount"`
	Currency        string         `db:"currency"`
	CustomerEmail   sql.NullString `db:"customer_email"`
	ShippingAddress []byte         `db:"shipping_address"`
	Status          string         `db:"status"`
	RefID           sql.NullString `db:"ref_id"`
	CardPan         sql.NullString `db:"card_pan"`
	OrderID         sql.NullInt64  `db:"order_id"`
	TransactionID   sql.NullInt64  `db:"transaction_id"`
	CreatedAt       time.Time      `db:"created_at"`
	ExpiresAt       time.Time      `db:"expires_at"`
}

type OutboxEvent struct {
	ID        int64        `db:"id"`
	EventID   string       `db:"event_id"`
	EventType string       `db:"event_type"`
	Key       string       `db:"key"`
	Payload   []byte       `db:"payload"`
	CreatedAt time.Time    `db:"created_at"`
	SentAt    sql.NullTime `db:"sent_at"`
}

func CartToEntity(c Cart, items []LineItem) entities.Cart {
	cart := entities.Cart{
		ID:          c.ID,
		CustomerID:  nullInt64ToPtr(c.CustomerID),
		Items:       LineItemsToEntity(items),
		Subtotal:    c.Subtotal,
		SubtotalIRT: c.SubtotalIRT,
		Currency:    c.Currency,
		Status:      entities.CartStatus(c.Status),
		CreatedAt:   c.CreatedAt,
	}
	if c.PurchasedAt.Valid {
		t := c.PurchasedAt.Time
		cart.PurchasedAt = &t
	}
	return cart
}

func LineItemsToEntity(items []LineItem) []entities.LineItem {
	res := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		res = append(res, entities.LineItem{
			ProductID: it.ProductID,
			VariantID: nullInt64ToPtr(it.VariantID),
			Quantity:  it.Quantity,
		})
	}
	return res
}

func AddressToEntity(a Address) entities.SavedAddress {
	return entities.SavedAddress{
		ID:         a.ID,
		CustomerID: a.CustomerID,
		CreatedAt:  a.CreatedAt,
		Address: entities.Address{
			Title:        nullStringToString(a.Title),
			FirstName:    nullStringToString(a.FirstName),
			LastName:     nullStringToString(a.LastName),
			Company:      nullStringToString(a.Company),
			AddressLine1: nullStringToString(a.AddressLine1),
			AddressLine2: nullStringToString(a.AddressLine2),
			City:         nullStringToString(a.City),
			State:        nullStringToString(a.State),
			PostalCode:   nullStringToString(a.PostalCode),
			Country:      a.Country,
			Phone:        nullStringToString(a.Phone),
		},
	}
}

func addressToDoc(a *entities.Address) *addressDoc {
	if a == nil {
		return nil
	}
	return &addressDoc{
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

func addressFromDoc(data []byte) (*entities.Address, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var d addressDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to decode address: %w", err)
	}
	return &entities.Address{
		Title:        d.Title,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Company:      d.Company,
		AddressLine1: d.AddressLine1,
		AddressLine2: d.AddressLine2,
		City:         d.City,
		State:        d.State,
		PostalCode:   d.PostalCode,
		Country:      d.Country,
		Phone:        d.Phone,
	}, nil
}

func OrderToEntity(o Order, items []LineItem, transactionIDs []int64) (entities.Order, error) {
	shipping, err := addressFromDoc(o.ShippingAddress)
	if err != nil {
		return entities.Order{}, err
	}
	return entities.Order{
		ID:              o.ID,
		CustomerID:      nullInt64ToPtr(o.CustomerID),
		CustomerEmail:   nullStringToString(o.CustomerEmail),
		Amount:          o.Amount,
		Currency:        o.Currency,
		Status:          entities.OrderStatus(o.Status),
		Items:           LineItemsToEntity(items),
		ShippingAddress: shipping,
		TransactionIDs:  transactionIDs,
		CreatedAt:       o.CreatedAt,
	}, nil
}

func referenceToDoc(ref entities.GatewayReference) gatewayReferenceDoc {
	doc := gatewayReferenceDoc{Kind: string(ref.Kind)}
	if z := ref.Zarinpal; z != nil {
		doc.Zarinpal = &zarinpalRefDoc{Authority: z.Authority, RefID: z.RefID, CardPan: z.CardPan}
	}
	if s := ref.Stripe; s != nil {
		doc.Stripe = &stripeRefDoc{PaymentIntentID: s.PaymentIntentID, CustomerID: s.CustomerID}
	}
	return doc
}

func referenceFromDoc(data []byte) (entities.GatewayReference, error) {
	var doc gatewayReferenceDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return entities.GatewayReference{}, fmt.Errorf("failed to decode gateway reference: %w", err)
	}
	ref := entities.GatewayReference{Kind: entities.Gateway(doc.Kind)}
	if z := doc.Zarinpal; z != nil {
		ref.Zarinpal = &entities.ZarinpalReference{Authority: z.Authority, RefID: z.RefID, CardPan: z.CardPan}
	}
	if s := doc.Stripe; s != nil {
		ref.Stripe = &entities.StripeReference{PaymentIntentID: s.PaymentIntentID, CustomerID: s.CustomerID}
	}
	return ref, nil
}

func TransactionToEntity(t Transaction) (entities.Transaction, error) {
	ref, err := referenceFromDoc(t.GatewayReference)
	if err != nil {
		return entities.Transaction{}, err
	}
	return entities.Transaction{
		ID:             t.ID,
		Status:         entities.TransactionStatus(t.Status),
		Amount:         t.Amount,
		Currency:       t.Currency,
		CartID:         t.CartID,
		OrderID:        nullInt64ToPtr(t.OrderID),
		CustomerID:     nullInt64ToPtr(t.CustomerID),
		CustomerEmail:  nullStringToString(t.CustomerEmail),
		Reference:      ref,
		IdempotencyKey: t.IdempotencyKey,
		CreatedAt:      t.CreatedAt,
	}, nil
}

func PendingToEntity(p PendingPayment) (entities.PendingPayment, error) {
	shipping, err := addressFromDoc(p.ShippingAddress)
	if err != nil {
		return entities.PendingPayment{}, err
	}
	return entities.PendingPayment{
		Authority:       p.Authority,
		CartID:          nullInt64ToPtr(p.CartID),
		Amount:          p.Amount,
		Currency:        p.Currency,
		CustomerEmail:   nullStringToString(p.CustomerEmail),
		ShippingAddress: shipping,
		Status:          entities.PendingStatus(p.Status),
		RefID:           nullStringToString(p.RefID),
		CardPan:         nullStringToString(p.CardPan),
		OrderID:         nullInt64ToPtr(p.OrderID),
		TransactionID:   nullInt64ToPtr(p.TransactionID),
		CreatedAt:       p.CreatedAt,
		ExpiresAt:       p.ExpiresAt,
	}, nil
}

func OutboxEventToEntity(e OutboxEvent) entities.OutboxEvent {
	ev := entities.OutboxEvent{
		ID:        e.ID,
		EventID:   e.EventID,
		Type:      e.EventType,
		Key:       e.Key,
		Payload:   e.Payload,
		CreatedAt: e.CreatedAt,
	}
	if e.SentAt.Valid {
		t := e.SentAt.Time
		ev.SentAt = &t
	}
	return ev
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullInt64ToPtr(ni sql.NullInt64) *int64 {
	if ni.Valid {
		v := ni.Int64
		return &v
	}
	return nil
}

func addressJSON(a *entities.Address) (sql.NullString, error) {
	if a == nil {
		return sql.NullString{}, nil
	}
	return jsonb(addressToDoc(a))
}
