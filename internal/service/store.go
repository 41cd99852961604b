package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
)

type StoreRepo interface {
	GetCart(ctx context.Context, id int64) (entities.Cart, error)
	ListAddresses(ctx context.Context, customerID int64) ([]entities.SavedAddress, error)
	GetAddress(ctx context.Context, customerID, id int64) (entities.SavedAddress, error)
	SaveAddress(ctx context.Context, customerID int64, a entities.Address) (entities.SavedAddress, error)
}

type storeService struct {
	logger *slog.Logger
	repo   StoreRepo
}

func NewStoreService(logger *slog.Logger, repo StoreRepo) *storeService {
	return &storeService{
		logger: logger.With(slog.String("service", "store")),
		repo:   repo,
	}
}

func (s *storeService) GetCart(ctx context.Context, id int64) (entities.Cart, error) {
	return s.repo.GetCart(ctx, id)
}

func (s *storeService) ListAddresses(ctx context.Context, customerID int64) ([]entities.SavedAddress, error) {
	return s.repo.ListAddresses(ctx, customerID)
}

func (s *storeService) SaveAddress(ctx context.Context, customerID int64, a entities.Address) (entities.SavedAddress, error) {
	saved, err := s.repo.SaveAddress(ctx, customerID, a)
	if err != nil {
		return entities.SavedAddress{}, fmt.Errorf("failed to save address: %w", err)
	}
	s.logger.DebugContext(ctx, "address saved", slog.Int64("customer_id", customerID), slog.Int64("address_id", saved.ID))
	return saved, nil
}

// ResolveAddress returns an embedded address as is. Saved addresses can only
// be referenced by their owner.
func (s *storeService) ResolveAddress(ctx context.Context, customerID *int64, ref entities.AddressRef) (entities.Address, error) {
	return ref.Resolve(func(id int64) (entities.Address, error) {
		if customerID == nil {
			return entities.Address{}, entities.ErrAddressNotFound
		}
		saved, err := s.repo.GetAddress(ctx, *customerID, id)
		if err != nil {
			if errors.Is(err, entities.ErrAddressNotFound) {
				return entities.Address{}, err
			}
			return entities.Address{}, fmt.Errorf("failed to load address: %w", err)
		}
		return saved.Address, nil
	})
}
