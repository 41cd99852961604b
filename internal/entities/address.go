package entities

import "time"

type Address struct {
	Title        string
	FirstName    string
	LastName     string
	Company      string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	Country      string
	Phone        string
}

type SavedAddress struct {
	ID         int64
	CustomerID int64
	Address    Address
	CreatedAt  time.Time
}

// AddressRef points at either a saved address or an unsaved one held by the
// caller. Exactly one of ID and Embedded is set.
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

func (r AddressRef) IsReference() bool {
	return r.Embedded == nil && r.ID != 0
}

// Resolve returns the embedded address or loads the referenced one with lookup.
func (r AddressRef) Resolve(lookup func(id int64) (Address, error)) (Address, error) {
	if r.Embedded != nil {
		return *r.Embedded, nil
	}
	if r.ID == 0 {
		return Address{}, ErrAddressNotFound
	}
	return lookup(r.ID)
}
