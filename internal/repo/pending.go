package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) SavePending(ctx context.Context, p entities.PendingPayment) error {
	shipping, err := addressJSON(p.ShippingAddress)
	if err != nil {
		return err
	}

	query, args := r.qb.Insert("pending_payments").
		Columns(
			"authority", "cart_id", "amount", "currency", "customer_email",
			"shipping_address", "status", "created_at", "expires_at",
		).
		Values(
			p.Authority, nullInt64(p.CartID), p.Amount, p.Currency, nullString(p.CustomerEmail),
			shipping, string(p.Status), p.CreatedAt, p.ExpiresAt,
		).
		Suffix("ON CONFLICT (authority) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save pending payment: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetPending(ctx context.Context, authority string) (entities.PendingPayment, error) {
	query, args := r.qb.Select(
		"authority", "cart_id", "amount", "currency", "customer_email", "shipping_address",
		"status", "ref_id", "card_pan", "order_id", "transaction_id", "created_at", "expires_at").
		From("pending_payments").
		Where(sq.Eq{"authority": authority}).
		MustSql()

	var row PendingPayment
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.PendingPayment{}, entities.ErrPendingPaymentNotFound
	}
	if err != nil {
		return entities.PendingPayment{}, fmt.Errorf("failed to get pending payment: %w", err)
	}
	return PendingToEntity(row)
}

func (r *postgresRepo) MarkPendingVerified(ctx context.Context, authority, refID, cardPan string) error {
	return r.updatePending(ctx, authority, map[string]any{
		"status":   string(entities.PendingVerified),
		"ref_id":   refID,
		"card_pan": nullString(cardPan),
	}, entities.PendingAwaiting, entities.PendingVerified)
}

func (r *postgresRepo) MarkPendingFinalized(ctx context.Context, authority string, orderID, transactionID int64) error {
	return r.updatePending(ctx, authority, map[string]any{
		"status":         string(entities.PendingFinalized),
		"order_id":       orderID,
		"transaction_id": transactionID,
	}, entities.PendingAwaiting, entities.PendingVerified, entities.PendingFinalized)
}

func (r *postgresRepo) MarkPendingCancelled(ctx context.Context, authority string) error {
	return r.updatePending(ctx, authority, map[string]any{
		"status": string(entities.PendingCancelled),
	}, entities.PendingAwaiting, entities.PendingCancelled)
}

// updatePending applies values only while the record is in one of from.
func (r *postgresRepo) updatePending(ctx context.Context, authority string, values map[string]any, from ...entities.PendingStatus) error {
	statuses := make([]string, 0, len(from))
	for _, s := range from {
		statuses = append(statuses, string(s))
	}

	query, args := r.qb.Update("pending_payments").
		SetMap(values).
		Where(sq.Eq{"authority": authority, "status": statuses}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update pending payment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entities.ErrPendingPaymentNotFound
	}
	return nil
}

// ExpirePending marks pending records whose deadline passed as expired.
func (r *postgresRepo) ExpirePending(ctx context.Context, now time.Time) (int64, error) {
	query, args := r.qb.Update("pending_payments").
		Set("status", string(entities.PendingExpired)).
		Where(sq.Eq{"status": string(entities.PendingAwaiting)}).
		Where(sq.LtOrEq{"expires_at": now}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to expire pending payments: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count expired pending payments: %w", err)
	}
	return n, nil
}
