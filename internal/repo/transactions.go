package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var transactionColumns = []string{
	"id", "status", "amount", "currency", "cart_id", "order_id", "customer_id",
	"customer_email", "gateway", "gateway_reference", "reference", "idempotency_key", "created_at",
}

func (r *postgresRepo) CreateTransaction(ctx context.Context, t entities.Transaction) (int64, error) {
	ref, err := jsonb(referenceToDoc(t.Reference))
	if err != nil {
		return 0, err
	}

	query, args := r.qb.Insert("transactions").
		Columns(
			"status", "amount", "currency", "cart_id", "order_id", "customer_id",
			"customer_email", "gateway", "gateway_reference", "reference", "idempotency_key", "created_at",
		).
		Values(
			string(t.Status), t.Amount, t.Currency, t.CartID, nullInt64(t.OrderID), nullInt64(t.CustomerID),
			nullString(t.CustomerEmail), string(t.Reference.Kind), ref, t.Reference.Composite(),
			t.IdempotencyKey, t.CreatedAt,
		).
		Suffix("RETURNING id").
		MustSql()

	var id int64
	if err := r.getContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("failed to save transaction: %w", err)
	}
	return id, nil
}

func (r *postgresRepo) LinkTransactionOrder(ctx context.Context, transactionID, orderID int64) error {
	query, args := r.qb.Update("transactions").
		Set("order_id", orderID).
		Where(sq.Eq{"id": transactionID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to link transaction: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entities.ErrTransactionNotFound
	}
	return nil
}

func (r *postgresRepo) GetTransactionByIdempotencyKey(ctx context.Context, key string) (entities.Transaction, error) {
	query, args := r.qb.Select(transactionColumns...).
		From("transactions").
		Where(sq.Eq{"idempotency_key": key}).
		MustSql()

	var row Transaction
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Transaction{}, entities.ErrTransactionNotFound
	}
	if err != nil {
		return entities.Transaction{}, fmt.Errorf("failed to get transaction: %w", err)
	}
	return TransactionToEntity(row)
}
