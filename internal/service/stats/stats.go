package stats

import (
	"context"
	"fmt"

	"parcel-service/internal/entities"
)

type Stats struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Stats {
	return &Stats{
		repository: repository,
		txManager:  txManager,
	}
}

// GetStats собирает счетчики из одного снимка базы.
func (s *Stats) GetStats(ctx context.Context) (*entities.Stats, error) {
	var result entities.Stats

	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		booked, err := s.repository.CountParcels(ctx)
		if err != nil {
			return fmt.Errorf("count parcels: %w", err)
		}

		delivered, err := s.repository.CountParcelsByStatus(ctx, entities.ParcelDelivered)
		if err != nil {
			return fmt.Errorf("count delivered parcels: %w", err)
		}

		users, err := s.repository.CountUsers(ctx)
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}

		bookings, err := s.repository.GetBookingsByDate(ctx)
		if err != nil {
			return fmt.Errorf("get bookings by date: %w", err)
		}

		result = entities.Stats{
			Booked:         booked,
			Delivered:      delivered,
			Users:          users,
			BookingsByDate: bookings,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
