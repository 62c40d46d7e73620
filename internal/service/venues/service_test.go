package venues

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuebook/VB-BookingService/internal/domain"
	userRepo "github.com/venuebook/VB-BookingService/internal/infra/storage/user"
	venueRepo "github.com/venuebook/VB-BookingService/internal/infra/storage/venue"
)

type mockVenueRepo struct {
	getByIDFn      func(ctx context.Context, id string) (*domain.Venue, error)
	getByOwnerIDFn func(ctx context.Context, ownerID string) ([]*domain.Venue, error)
	getByCityFn    func(ctx context.Context, city string) ([]*domain.Venue, error)
}

func (m *mockVenueRepo) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockVenueRepo) GetByOwnerID(ctx context.Context, ownerID string) ([]*domain.Venue, error) {
	return m.getByOwnerIDFn(ctx, ownerID)
}

func (m *mockVenueRepo) GetByCity(ctx context.Context, city string) ([]*domain.Venue, error) {
	return m.getByCityFn(ctx, city)
}

type mockUserRepo struct {
	getByIDFn func(ctx context.Context, id string) (*domain.User, error)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return m.getByIDFn(ctx, id)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func testVenue() *domain.Venue {
	now := time.Now()
	return &domain.Venue{
		ID:          "venue-1",
		OwnerID:     "owner-1",
		Name:        "Loft on Main",
		Description: "Spacious loft for events",
		Address:     "12 Main st",
		City:        "Moscow",
		Capacity:    120,
		PricePerDay: 900,
		Amenities:   []string{"wifi", "parking"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestService_GetByID(t *testing.T) {
	t.Run("venue with owner info", func(t *testing.T) {
		venues := &mockVenueRepo{
			getByIDFn: func(ctx context.Context, id string) (*domain.Venue, error) {
				return testVenue(), nil
			},
		}
		users := &mockUserRepo{
			getByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
				return &domain.User{
					ID:    "owner-1",
					Name:  "Olga",
					Email: "olga@example.com",
					Phone: "+79990001122",
					Role:  domain.RoleOwner,
				}, nil
			},
		}

		svc := NewService(venues, users, noopLogger{})
		resp, err := svc.GetByID(context.Background(), "venue-1")

		require.NoError(t, err)
		assert.Equal(t, "venue-1", resp.ID)
		require.NotNil(t, resp.Owner)
		assert.Equal(t, "Olga", resp.Owner.Name)
		assert.Equal(t, "olga@example.com", resp.Owner.Email)
	})

	t.Run("missing owner does not fail the request", func(t *testing.T) {
		venues := &mockVenueRepo{
			getByIDFn: func(ctx context.Context, id string) (*domain.Venue, error) {
				return testVenue(), nil
			},
		}
		users := &mockUserRepo{
			getByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
				return nil, userRepo.ErrUserNotFound
			},
		}

		svc := NewService(venues, users, noopLogger{})
		resp, err := svc.GetByID(context.Background(), "venue-1")

		require.NoError(t, err)
		assert.Nil(t, resp.Owner)
	})

	t.Run("unknown venue", func(t *testing.T) {
		venues := &mockVenueRepo{
			getByIDFn: func(ctx context.Context, id string) (*domain.Venue, error) {
				return nil, venueRepo.ErrVenueNotFound
			},
		}
		users := &mockUserRepo{}

		svc := NewService(venues, users, noopLogger{})
		_, err := svc.GetByID(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrVenueNotFound)
	})

	t.Run("repository failure maps to internal error", func(t *testing.T) {
		venues := &mockVenueRepo{
			getByIDFn: func(ctx context.Context, id string) (*domain.Venue, error) {
				return nil, errors.New("connection refused")
			},
		}
		users := &mockUserRepo{}

		svc := NewService(venues, users, noopLogger{})
		_, err := svc.GetByID(context.Background(), "venue-1")

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestService_GetByCity(t *testing.T) {
	venues := &mockVenueRepo{
		getByCityFn: func(ctx context.Context, city string) ([]*domain.Venue, error) {
			return []*domain.Venue{testVenue()}, nil
		},
	}

	svc := NewService(venues, &mockUserRepo{}, noopLogger{})
	resp, err := svc.GetByCity(context.Background(), "moscow")

	require.NoError(t, err)
	require.Len(t, resp.Venues, 1)
	assert.Equal(t, "Moscow", resp.Venues[0].City)
	assert.Nil(t, resp.Venues[0].Owner)
}

func TestService_GetByOwner(t *testing.T) {
	venues := &mockVenueRepo{
		getByOwnerIDFn: func(ctx context.Context, ownerID string) ([]*domain.Venue, error) {
			return []*domain.Venue{}, nil
		},
	}

	svc := NewService(venues, &mockUserRepo{}, noopLogger{})
	resp, err := svc.GetByOwner(context.Background(), "owner-1")

	require.NoError(t, err)
	assert.NotNil(t, resp.Venues)
	assert.Empty(t, resp.Venues)
}
