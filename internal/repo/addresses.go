package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var addressColumns = []string{
	"id", "customer_id", "title", "first_name", "last_name", "company",
	"address_line1", "address_line2", "city", "state", "postal_code",
	"country", "phone", "created_at",
}

func (r *postgresRepo) ListAddresses(ctx context.Context, customerID int64) ([]entities.SavedAddress, error) {
	query, args := r.qb.Select(addressColumns...).
		From("addresses").
		Where(sq.Eq{"customer_id": customerID}).
		OrderBy("created_at DESC", "id DESC").
		MustSql()

	var rows []Address
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select addresses: %w", err)
	}

	res := make([]entities.SavedAddress, 0, len(rows))
	for _, row := range rows {
		res = append(res, AddressToEntity(row))
	}
	return res, nil
}

// GetAddress only returns addresses owned by customerID.
func (r *postgresRepo) GetAddress(ctx context.Context, customerID, id int64) (entities.SavedAddress, error) {
	query, args := r.qb.Select(addressColumns...).
		From("addresses").
		Where(sq.Eq{"id": id, "customer_id": customerID}).
		MustSql()

	var row Address
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.SavedAddress{}, entities.ErrAddressNotFound
	}
	if err != nil {
		return entities.SavedAddress{}, fmt.Errorf("failed to get address: %w", err)
	}
	return AddressToEntity(row), nil
}

func (r *postgresRepo) SaveAddress(ctx context.Context, customerID int64, a entities.Address) (entities.SavedAddress, error) {
	query, args := r.qb.Insert("addresses").
		Columns(
			"customer_id", "title", "first_name", "last_name", "company",
			"address_line1", "address_line2", "city", "state", "postal_code",
			"country", "phone",
		).
		Values(
			customerID, nullString(a.Title), nullString(a.FirstName), nullString(a.LastName), nullString(a.Company),
			nullString(a.AddressLine1), nullString(a.AddressLine2), nullString(a.City), nullString(a.State),
			nullString(a.PostalCode), a.Country, nullString(a.Phone),
		).
		Suffix("RETURNING " + joinColumns(addressColumns)).
		MustSql()

	var row Address
	if err := r.getContext(ctx, &row, query, args...); err != nil {
		return entities.SavedAddress{}, fmt.Errorf("failed to save address: %w", err)
	}
	return AddressToEntity(row), nil
}
