package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) (int64, error) {
	shipping, err := addressJSON(o.ShippingAddress)
	if err != nil {
		return 0, err
	}

	query, args := r.qb.Insert("orders").
		Columns("customer_id", "customer_email", "amount", "currency", "status", "shipping_address", "created_at").
		Values(
			nullInt64(o.CustomerID), nullString(o.CustomerEmail), o.Amount, o.Currency,
			string(o.Status), shipping, o.CreatedAt,
		).
		Suffix("RETURNING id").
		MustSql()

	var id int64
	if err := r.getContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("failed to save order: %w", err)
	}

	if len(o.Items) == 0 {
		return id, nil
	}

	q := r.qb.Insert("order_items").Columns("order_id", "product_id", "variant_id", "quantity")
	for _, it := range o.Items {
		q = q.Values(id, it.ProductID, nullInt64(it.VariantID), it.Quantity)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("failed to save order items: %w", err)
	}
	return id, nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id int64) (entities.Order, error) {
	query, args := r.qb.Select(
		"id", "customer_id", "customer_email", "amount", "currency",
		"status", "shipping_address", "created_at").
		From("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select("order_id AS parent_id", "product_id", "variant_id", "quantity").
		From("order_items").
		Where(sq.Eq{"order_id": id}).
		OrderBy("id").
		MustSql()

	var items []LineItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	query, args = r.qb.Select("id").
		From("transactions").
		Where(sq.Eq{"order_id": id}).
		OrderBy("id").
		MustSql()

	var transactionIDs []int64
	if err := r.selectContext(ctx, &transactionIDs, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order transactions: %w", err)
	}

	return OrderToEntity(order, items, transactionIDs)
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
