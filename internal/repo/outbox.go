package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) InsertEvent(ctx context.Context, e entities.OutboxEvent) error {
	query, args := r.qb.Insert("outbox").
		Columns("event_id", "event_type", "key", "payload", "created_at").
		Values(e.EventID, e.Type, e.Key, string(e.Payload), e.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save outbox event: %w", err)
	}
	return nil
}

func (r *postgresRepo) FetchUnsent(ctx context.Context, limit int) ([]entities.OutboxEvent, error) {
	query, args := r.qb.Select("id", "event_id", "event_type", "key", "payload", "created_at", "sent_at").
		From("outbox").
		Where(sq.Eq{"sent_at": nil}).
		OrderBy("id").
		Limit(uint64(limit)).
		MustSql()

	var rows []OutboxEvent
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select outbox events: %w", err)
	}

	res := make([]entities.OutboxEvent, 0, len(rows))
	for _, row := range rows {
		res = append(res, OutboxEventToEntity(row))
	}
	return res, nil
}

func (r *postgresRepo) MarkSent(ctx context.Context, ids []int64, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	query, args := r.qb.Update("outbox").
		Set("sent_at", at).
		Where(sq.Eq{"id": ids}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark outbox events sent: %w", err)
	}
	return nil
}
