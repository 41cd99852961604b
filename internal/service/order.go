package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"

	"golang.org/x/sync/singleflight"
)

type OrderRepo interface {
	GetOrderByID(ctx context.Context, id int64) (entities.Order, error)
}

type OrderCache interface {
	Get(key string) (entities.Order, bool)
	Set(key string, value entities.Order)
}

type orderService struct {
	logger *slog.Logger
	repo   OrderRepo
	cache  OrderCache
	group  singleflight.Group
	retry  utils.RetryConfig
}

func NewOrderService(logger *slog.Logger, repo OrderRepo, cache OrderCache) *orderService {
	return &orderService{
		logger: logger.With(slog.String("service", "order")),
		repo:   repo,
		cache:  cache,
		retry:  utils.DefaultRetry,
	}
}

// GetOrder returns the order when the caller owns it or, for a guest order,
// presents the purchase email. Any other caller gets ErrOrderNotFound.
func (s *orderService) GetOrder(ctx context.Context, id int64, customerID *int64, email string) (entities.Order, error) {
	order, err := s.load(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if !order.AccessibleBy(customerID, email) {
		s.logger.DebugContext(ctx, "order access denied", slog.Int64("order_id", id))
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return order, nil
}

const orderLoadTimeout = 10 * time.Second

// load reads through the cache. Concurrent misses share one database read,
// which outlives any single caller's cancellation.
func (s *orderService) load(ctx context.Context, id int64) (entities.Order, error) {
	key := strconv.FormatInt(id, 10)
	if order, ok := s.cache.Get(key); ok {
		return order, nil
	}

	ch := s.group.DoChan(key, func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), orderLoadTimeout)
		defer cancel()

		var order entities.Order
		fn := func() error {
			var err error
			order, err = s.repo.GetOrderByID(ctx, id)
			return err
		}
		if err := utils.Retry(ctx, s.retry, fn, entities.ErrOrderNotFound, context.DeadlineExceeded); err != nil {
			return entities.Order{}, err
		}
		s.cache.Set(key, order)
		return order, nil
	})

	select {
	case <-ctx.Done():
		return entities.Order{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return entities.Order{}, fmt.Errorf("failed to get order: %w", res.Err)
		}
		return res.Val.(entities.Order), nil
	}
}
