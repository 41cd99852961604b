package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
)

type OutboxRepo interface {
	FetchUnsent(ctx context.Context, limit int) ([]entities.OutboxEvent, error)
	MarkSent(ctx context.Context, ids []int64, at time.Time) error
}

type Publisher interface {
	Publish(ctx context.Context, events []entities.OutboxEvent) error
}

// outboxRelay forwards events written alongside checkout data to the broker.
// Delivery is at least once: a crash between Publish and MarkSent resends.
type outboxRelay struct {
	logger    *slog.Logger
	repo      OutboxRepo
	publisher Publisher
	batchSize int
}

func NewOutboxRelay(logger *slog.Logger, repo OutboxRepo, publisher Publisher, batchSize int) *outboxRelay {
	return &outboxRelay{
		logger:    logger.With(slog.String("service", "outbox")),
		repo:      repo,
		publisher: publisher,
		batchSize: batchSize,
	}
}

// RelayOnce publishes one batch and reports how many events were sent.
func (r *outboxRelay) RelayOnce(ctx context.Context) (int, error) {
	events, err := r.repo.FetchUnsent(ctx, r.batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch outbox: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	if err := r.publisher.Publish(ctx, events); err != nil {
		return 0, fmt.Errorf("failed to publish events: %w", err)
	}

	ids := make([]int64, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	if err := r.repo.MarkSent(ctx, ids, time.Now()); err != nil {
		return 0, fmt.Errorf("failed to mark events sent: %w", err)
	}

	r.logger.DebugContext(ctx, "outbox relayed", slog.Int("count", len(events)))
	return len(events), nil
}

// Relay drains the outbox until a batch comes back short.
func (r *outboxRelay) Relay(ctx context.Context) error {
	for {
		n, err := r.RelayOnce(ctx)
		if err != nil {
			return err
		}
		if n < r.batchSize {
			return nil
		}
	}
}
