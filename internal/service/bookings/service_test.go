package bookings

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuebook/VB-BookingService/internal/domain"
	bookingRepo "github.com/venuebook/VB-BookingService/internal/infra/storage/booking"
	"github.com/venuebook/VB-BookingService/internal/service/bookings/models"
	"github.com/venuebook/VB-BookingService/pkg/ptr"
)

type mockBookingRepo struct {
	getByIDFn         func(ctx context.Context, id string) (*domain.Booking, error)
	getByOwnerIDFn    func(ctx context.Context, ownerID string) ([]*domain.Booking, error)
	getByCustomerIDFn func(ctx context.Context, customerID string) ([]*domain.Booking, error)
	acceptFn          func(ctx context.Context, id string) error
	cancelFn          func(ctx context.Context, id string, reason string) error
	deleteFn          func(ctx context.Context, id string) error
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockBookingRepo) GetByOwnerID(ctx context.Context, ownerID string) ([]*domain.Booking, error) {
	return m.getByOwnerIDFn(ctx, ownerID)
}

func (m *mockBookingRepo) GetByCustomerID(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	return m.getByCustomerIDFn(ctx, customerID)
}

func (m *mockBookingRepo) Accept(ctx context.Context, id string) error {
	return m.acceptFn(ctx, id)
}

func (m *mockBookingRepo) Cancel(ctx context.Context, id string, reason string) error {
	return m.cancelFn(ctx, id, reason)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
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

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func testBooking(status domain.BookingStatus) *domain.Booking {
	now := time.Now()
	return &domain.Booking{
		ID:           "booking-1",
		VenueID:      "venue-1",
		OwnerID:      "owner-1",
		CustomerID:   "customer-1",
		CustomerName: "Ivan Ivanov",
		EventDate:    now.AddDate(0, 1, 0),
		TimeSlot:     domain.SlotNoon,
		Guests:       50,
		TotalAmount:  1500,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestService_Accept(t *testing.T) {
	t.Run("pending booking becomes accepted", func(t *testing.T) {
		acceptedAt := time.Now()
		repo := &mockBookingRepo{
			acceptFn: func(ctx context.Context, id string) error { return nil },
		}
		calls := 0
		repo.getByIDFn = func(ctx context.Context, id string) (*domain.Booking, error) {
			calls++
			if calls == 1 {
				return testBooking(domain.StatusPending), nil
			}
			b := testBooking(domain.StatusAccepted)
			b.AcceptedAt = &acceptedAt
			return b, nil
		}

		svc := NewService(repo, &mockAssetStore{}, noopLogger{})
		resp, err := svc.Accept(context.Background(), "booking-1")

		require.NoError(t, err)
		assert.Equal(t, "accepted", resp.Status)
		require.NotNil(t, resp.AcceptedAt)
	})

	t.Run("accepted booking cannot be accepted again", func(t *testing.T) {
		repo := &mockBookingRepo{
			getByIDFn: func(ctx context.Context, id string) (*domain.Booking, error) {
				return testBooking(domain.StatusAccepted), nil
			},
		}

		svc := NewService(repo, &mockAssetStore{}, noopLogger{})
		_, err := svc.Accept(context.Background(), "booking-1")

		assert.ErrorIs(t, err, ErrCannotAccept)
	})

	t.Run("canceled booking cannot be accepted", func(t *testing.T) {
		repo := &mockBookingRepo{
			getByIDFn: func(ctx context.Context, id string) (*domain.Booking, error) {
				return testBooking(domain.StatusCanceled), nil
			},
		}

		svc := NewService(repo, &mockAssetStore{}, noopLogger{})
		_, err := svc.Accept(context.Background(), "booking-1")

		assert.ErrorIs(t, err, ErrCannotAccept)
	})

	t.Run("unknown booking", func(t *testing.T) {
		repo := &mockBookingRepo{
			getByIDFn: func(ctx context.Context, id string) (*domain.Booking, error) {
				return nil, bookingRepo.ErrBookingNotFound
			},
		}

		svc := NewService(repo, &mockAssetStore{}, noopLogger{})
		_, err := svc.Accept(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_Cancel(t *testing.T) {
	newRepo := func(initial domain.BookingStatus, capturedReason *string) *mockBookingRepo {
		repo := &mockBookingRepo{
			cancelFn: func(ctx context.Context, id string, reason string) error {
				*capturedReason = reason
				return nil
			},
		}
		calls := 0
		repo.getByIDFn = func(ctx context.Context, id string) (*domain.Booking, error) {
			calls++
			if calls == 1 {
				return testBooking(initial), nil
			}
			b := testBooking(domain.StatusCanceled)
			now := time.Now()
			b.CanceledAt = &now
			b.CancellationReason = capturedReason
			return b, nil
		}
		return repo
	}

	t.Run("explicit reason is persisted", func(t *testing.T) {
		var gotReason string
		repo := newRepo(domain.StatusPending, &gotReason)

		svc := NewService(repo, &mockAssetStore{}, noopLogger{})
		resp, err := svc.Cancel(context.Background(), "booking-1", &models.CancelBookingRequest{
			Reason:    ptr.Ptr("Weather forecast"),
			ActorRole: domain.RoleCustomer,
		})

		require.NoError(t, err)
		assert.Equal(t, "canceled", resp.Status)
		assert.Equal(t, "Weather forecast", gotReason)
	})

	t.Run("default reason depends on actor role", func(t *testing.T) {
		for role, want := range map[domain.Role]string{
			domain.RoleOwner:    "Canceled by owner",
			domain.RoleCustomer: "Canceled by customer",
		} {
			var gotReason string
			repo := newRepo(domain.StatusPending, &gotReason)

			svc := NewService(repo, &mockAssetStore{}, noopLogger{})
			_, err := svc.Cancel(context.Background(), "booking-1", &models.CancelBookingRequest{
				ActorRole: role,
			})

			require.NoError(t, err)
			assert.Equal(t, want, gotReason)
		}
	})

	t.Run("accepted booking can be cancelled", func(t *testing.T) {
		var gotReason string
		repo := newRepo(domain.StatusAccepted, &gotReason)

		svc := NewService(repo, &mockAssetStore{}, noopLogger{})
		_, err := svc.Cancel(context.Background(), "booking-1", &models.CancelBookingRequest{
			ActorRole: domain.RoleOwner,
		})

		require.NoError(t, err)
	})

	t.Run("canceled booking cannot be cancelled again", func(t *testing.T) {
		repo := &mockBookingRepo{
			getByIDFn: func(ctx context.Context, id string) (*domain.Booking, error) {
				return testBooking(domain.StatusCanceled), nil
			},
		}

		svc := NewService(repo, &mockAssetStore{}, noopLogger{})
		_, err := svc.Cancel(context.Background(), "booking-1", &models.CancelBookingRequest{
			ActorRole: domain.RoleOwner,
		})

		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("reason too long", func(t *testing.T) {
		repo := &mockBookingRepo{
			getByIDFn: func(ctx context.Context, id string) (*domain.Booking, error) {
				return testBooking(domain.StatusPending), nil
			},
		}

		svc := NewService(repo, &mockAssetStore{}, noopLogger{})
		_, err := svc.Cancel(context.Background(), "booking-1", &models.CancelBookingRequest{
			Reason:    ptr.Ptr(strings.Repeat("x", domain.MaxCancellationReasonLength+1)),
			ActorRole: domain.RoleCustomer,
		})

		assert.ErrorIs(t, err, ErrReasonTooLong)
	})

	t.Run("receipt is destroyed on cancel", func(t *testing.T) {
		var gotReason string
		repo := newRepo(domain.StatusPending, &gotReason)
		repo.getByIDFn = func(ctx context.Context, id string) (*domain.Booking, error) {
			b := testBooking(domain.StatusPending)
			b.Receipt = &domain.PaymentReceipt{
				URL:        "https://cdn.example/receipt.jpg",
				PublicID:   "receipts/abc",
				UploadedAt: time.Now(),
			}
			return b, nil
		}
		assets := &mockAssetStore{}

		svc := NewService(repo, assets, noopLogger{})
		_, err := svc.Cancel(context.Background(), "booking-1", &models.CancelBookingRequest{
			ActorRole: domain.RoleCustomer,
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"receipts/abc"}, assets.destroyed)
	})

	t.Run("receipt destroy failure does not block cancel", func(t *testing.T) {
		var gotReason string
		repo := newRepo(domain.StatusPending, &gotReason)
		repo.getByIDFn = func(ctx context.Context, id string) (*domain.Booking, error) {
			b := testBooking(domain.StatusPending)
			b.Receipt = &domain.PaymentReceipt{
				URL:        "https://cdn.example/receipt.jpg",
				PublicID:   "receipts/abc",
				UploadedAt: time.Now(),
			}
			return b, nil
		}
		assets := &mockAssetStore{
			destroyFn: func(ctx context.Context, publicID string) error {
				return errors.New("storage unavailable")
			},
		}

		svc := NewService(repo, assets, noopLogger{})
		_, err := svc.Cancel(context.Background(), "booking-1", &models.CancelBookingRequest{
			ActorRole: domain.RoleCustomer,
		})

		require.NoError(t, err)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("deletes booking and receipt", func(t *testing.T) {
		repo := &mockBookingRepo{
			getByIDFn: func(ctx context.Context, id string) (*domain.Booking, error) {
				b := testBooking(domain.StatusCanceled)
				b.Receipt = &domain.PaymentReceipt{
					URL:        "https://cdn.example/receipt.jpg",
					PublicID:   "receipts/xyz",
					UploadedAt: time.Now(),
				}
				return b, nil
			},
			deleteFn: func(ctx context.Context, id string) error { return nil },
		}
		assets := &mockAssetStore{}

		svc := NewService(repo, assets, noopLogger{})
		err := svc.Delete(context.Background(), "booking-1")

		require.NoError(t, err)
		assert.Equal(t, []string{"receipts/xyz"}, assets.destroyed)
	})

	t.Run("unknown booking", func(t *testing.T) {
		repo := &mockBookingRepo{
			getByIDFn: func(ctx context.Context, id string) (*domain.Booking, error) {
				return nil, bookingRepo.ErrBookingNotFound
			},
		}

		svc := NewService(repo, &mockAssetStore{}, noopLogger{})
		err := svc.Delete(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_GetByOwner(t *testing.T) {
	repo := &mockBookingRepo{
		getByOwnerIDFn: func(ctx context.Context, ownerID string) ([]*domain.Booking, error) {
			return []*domain.Booking{testBooking(domain.StatusPending)}, nil
		},
	}

	svc := NewService(repo, &mockAssetStore{}, noopLogger{})
	resp, err := svc.GetByOwner(context.Background(), "owner-1")

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "booking-1", resp.Bookings[0].ID)

	// чек отсутствует: все три поля null
	assert.Nil(t, resp.Bookings[0].PaymentReceipt.URL)
	assert.Nil(t, resp.Bookings[0].PaymentReceipt.PublicID)
	assert.Nil(t, resp.Bookings[0].PaymentReceipt.UploadedAt)
}

func TestService_GetByCustomer(t *testing.T) {
	repo := &mockBookingRepo{
		getByCustomerIDFn: func(ctx context.Context, customerID string) ([]*domain.Booking, error) {
			return []*domain.Booking{}, nil
		},
	}

	svc := NewService(repo, &mockAssetStore{}, noopLogger{})
	resp, err := svc.GetByCustomer(context.Background(), "customer-1")

	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.Empty(t, resp.Bookings)
}
