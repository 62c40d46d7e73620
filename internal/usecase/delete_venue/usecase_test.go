package delete_venue

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuebook/VB-BookingService/internal/domain"
	venueRepo "github.com/venuebook/VB-BookingService/internal/infra/storage/venue"
)

type mockVenueRepo struct {
	getByIDFn func(ctx context.Context, id string) (*domain.Venue, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (m *mockVenueRepo) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockVenueRepo) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

type mockBookingRepo struct {
	receiptIDsFn       func(ctx context.Context, venueID string) ([]string, error)
	deleteByVenueIDFn  func(ctx context.Context, venueID string) (int64, error)
}

func (m *mockBookingRepo) ReceiptPublicIDsByVenueID(ctx context.Context, venueID string) ([]string, error) {
	return m.receiptIDsFn(ctx, venueID)
}

func (m *mockBookingRepo) DeleteByVenueID(ctx context.Context, venueID string) (int64, error) {
	return m.deleteByVenueIDFn(ctx, venueID)
}

type mockAssetStore struct {
	destroyFn func(ctx context.Context, publicID string) error
	destroyed []string
}

func (m *mockAssetStore) Destroy(ctx context.Context, publicID string) error {
	m.destroyed = append(m.destroyed, publicID)
	if m.destroyFn != nil {
		return m.destroyFn(ctx, publicID)
	}
	return nil
}

type inlineTxManager struct{}

func (inlineTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func testVenue() *domain.Venue {
	return &domain.Venue{
		ID:      "venue-1",
		OwnerID: "owner-1",
		Images: []domain.VenueImage{
			{URL: "https://cdn.example/img-1.jpg", PublicID: "venues/img-1", IsPrimary: true},
			{URL: "https://cdn.example/img-2.jpg", PublicID: "venues/img-2"},
		},
	}
}

func TestUsecase_Execute(t *testing.T) {
	t.Run("cascade delete reports booking count and cleans assets", func(t *testing.T) {
		venues := &mockVenueRepo{
			getByIDFn: func(ctx context.Context, id string) (*domain.Venue, error) {
				return testVenue(), nil
			},
			deleteFn: func(ctx context.Context, id string) error { return nil },
		}
		bookings := &mockBookingRepo{
			receiptIDsFn: func(ctx context.Context, venueID string) ([]string, error) {
				return []string{"receipts/r-1", "receipts/r-2"}, nil
			},
			deleteByVenueIDFn: func(ctx context.Context, venueID string) (int64, error) {
				return 3, nil
			},
		}
		assets := &mockAssetStore{}

		uc := NewUsecase(venues, bookings, assets, inlineTxManager{}, noopLogger{})
		resp, err := uc.Execute(context.Background(), &DeleteVenueRequest{
			VenueID: "venue-1",
			OwnerID: "owner-1",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(3), resp.DeletedBookings)
		assert.ElementsMatch(t,
			[]string{"receipts/r-1", "receipts/r-2", "venues/img-1", "venues/img-2"},
			assets.destroyed)
	})

	t.Run("foreign venue is rejected", func(t *testing.T) {
		venues := &mockVenueRepo{
			getByIDFn: func(ctx context.Context, id string) (*domain.Venue, error) {
				return testVenue(), nil
			},
		}

		uc := NewUsecase(venues, &mockBookingRepo{}, &mockAssetStore{}, inlineTxManager{}, noopLogger{})
		_, err := uc.Execute(context.Background(), &DeleteVenueRequest{
			VenueID: "venue-1",
			OwnerID: "intruder",
		})

		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("unknown venue", func(t *testing.T) {
		venues := &mockVenueRepo{
			getByIDFn: func(ctx context.Context, id string) (*domain.Venue, error) {
				return nil, venueRepo.ErrVenueNotFound
			},
		}

		uc := NewUsecase(venues, &mockBookingRepo{}, &mockAssetStore{}, inlineTxManager{}, noopLogger{})
		_, err := uc.Execute(context.Background(), &DeleteVenueRequest{
			VenueID: "missing",
			OwnerID: "owner-1",
		})

		assert.ErrorIs(t, err, ErrVenueNotFound)
	})

	t.Run("transaction failure keeps assets untouched", func(t *testing.T) {
		venues := &mockVenueRepo{
			getByIDFn: func(ctx context.Context, id string) (*domain.Venue, error) {
				return testVenue(), nil
			},
			deleteFn: func(ctx context.Context, id string) error {
				return errors.New("connection reset")
			},
		}
		bookings := &mockBookingRepo{
			receiptIDsFn: func(ctx context.Context, venueID string) ([]string, error) {
				return []string{"receipts/r-1"}, nil
			},
			deleteByVenueIDFn: func(ctx context.Context, venueID string) (int64, error) {
				return 1, nil
			},
		}
		assets := &mockAssetStore{}

		uc := NewUsecase(venues, bookings, assets, inlineTxManager{}, noopLogger{})
		_, err := uc.Execute(context.Background(), &DeleteVenueRequest{
			VenueID: "venue-1",
			OwnerID: "owner-1",
		})

		assert.ErrorIs(t, err, ErrInternal)
		assert.Empty(t, assets.destroyed)
	})

	t.Run("asset destroy failure does not fail the request", func(t *testing.T) {
		venues := &mockVenueRepo{
			getByIDFn: func(ctx context.Context, id string) (*domain.Venue, error) {
				return testVenue(), nil
			},
			deleteFn: func(ctx context.Context, id string) error { return nil },
		}
		bookings := &mockBookingRepo{
			receiptIDsFn: func(ctx context.Context, venueID string) ([]string, error) {
				return nil, nil
			},
			deleteByVenueIDFn: func(ctx context.Context, venueID string) (int64, error) {
				return 0, nil
			},
		}
		assets := &mockAssetStore{
			destroyFn: func(ctx context.Context, publicID string) error {
				return errors.New("storage unavailable")
			},
		}

		uc := NewUsecase(venues, bookings, assets, inlineTxManager{}, noopLogger{})
		resp, err := uc.Execute(context.Background(), &DeleteVenueRequest{
			VenueID: "venue-1",
			OwnerID: "owner-1",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(0), resp.DeletedBookings)
	})
}
