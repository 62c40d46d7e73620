package create_venue

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuebook/VB-BookingService/internal/domain"
	"github.com/venuebook/VB-BookingService/internal/integrations/cloudinary"
)

type mockVenueRepo struct {
	createFn func(ctx context.Context, venue *domain.Venue) (*domain.Venue, error)
}

func (m *mockVenueRepo) Create(ctx context.Context, venue *domain.Venue) (*domain.Venue, error) {
	return m.createFn(ctx, venue)
}

type mockAssetStore struct {
	uploadFn  func(ctx context.Context, data []byte, subfolder string) (*cloudinary.UploadResult, error)
	uploads   int
	destroyed []string
}

func (m *mockAssetStore) Upload(ctx context.Context, data []byte, subfolder string) (*cloudinary.UploadResult, error) {
	m.uploads++
	if m.uploadFn != nil {
		return m.uploadFn(ctx, data, subfolder)
	}
	return &cloudinary.UploadResult{
		URL:      fmt.Sprintf("https://cdn.example/img-%d.jpg", m.uploads),
		PublicID: fmt.Sprintf("venues/img-%d", m.uploads),
	}, nil
}

func (m *mockAssetStore) Destroy(ctx context.Context, publicID string) error {
	m.destroyed = append(m.destroyed, publicID)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func validRequest() *CreateVenueRequest {
	return &CreateVenueRequest{
		OwnerID:     "owner-1",
		Name:        "Loft on Main",
		Description: "Spacious loft for private events",
		Address:     "12 Main st",
		City:        "Moscow",
		Capacity:    120,
		PricePerDay: 900,
		Amenities:   []string{"Wi-Fi", "Parking"},
	}
}

func TestUsecase_Execute(t *testing.T) {
	t.Run("creates venue with uploaded images", func(t *testing.T) {
		var inserted *domain.Venue
		repo := &mockVenueRepo{
			createFn: func(ctx context.Context, venue *domain.Venue) (*domain.Venue, error) {
				inserted = venue
				venue.ID = "venue-1"
				return venue, nil
			},
		}
		assets := &mockAssetStore{}

		req := validRequest()
		req.Images = [][]byte{[]byte("first"), []byte("second")}

		uc := NewUsecase(repo, assets, noopLogger{})
		resp, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "venue-1", resp.ID)

		require.Len(t, inserted.Images, 2)
		assert.True(t, inserted.Images[0].IsPrimary)
		assert.False(t, inserted.Images[1].IsPrimary)
		assert.Empty(t, assets.destroyed)
	})

	t.Run("validation failures", func(t *testing.T) {
		cases := map[string]func(r *CreateVenueRequest){
			"short name":        func(r *CreateVenueRequest) { r.Name = "ab" },
			"short description": func(r *CreateVenueRequest) { r.Description = "too short" },
			"missing address":   func(r *CreateVenueRequest) { r.Address = " " },
			"missing city":      func(r *CreateVenueRequest) { r.City = "" },
			"zero capacity":     func(r *CreateVenueRequest) { r.Capacity = 0 },
			"negative price":    func(r *CreateVenueRequest) { r.PricePerDay = -1 },
			"unknown amenity":   func(r *CreateVenueRequest) { r.Amenities = []string{"helipad"} },
			"amenity catalog is case-sensitive": func(r *CreateVenueRequest) {
				r.Amenities = []string{"wifi", "parking"}
			},
			"too many images": func(r *CreateVenueRequest) {
				for i := 0; i <= domain.MaxVenueImages; i++ {
					r.Images = append(r.Images, []byte("img"))
				}
			},
		}

		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				req := validRequest()
				mutate(req)

				uc := NewUsecase(&mockVenueRepo{}, &mockAssetStore{}, noopLogger{})
				_, err := uc.Execute(context.Background(), req)

				assert.ErrorIs(t, err, ErrValidation)
			})
		}
	})

	t.Run("upload failure cleans up earlier uploads", func(t *testing.T) {
		assets := &mockAssetStore{}
		assets.uploadFn = func(ctx context.Context, data []byte, subfolder string) (*cloudinary.UploadResult, error) {
			if assets.uploads == 2 {
				return nil, errors.New("cloudinary unavailable")
			}
			return &cloudinary.UploadResult{
				URL:      fmt.Sprintf("https://cdn.example/img-%d.jpg", assets.uploads),
				PublicID: fmt.Sprintf("venues/img-%d", assets.uploads),
			}, nil
		}

		req := validRequest()
		req.Images = [][]byte{[]byte("first"), []byte("second")}

		uc := NewUsecase(&mockVenueRepo{}, assets, noopLogger{})
		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrImageUpload)
		assert.Equal(t, []string{"venues/img-1"}, assets.destroyed)
	})

	t.Run("insert failure destroys uploaded images", func(t *testing.T) {
		repo := &mockVenueRepo{
			createFn: func(ctx context.Context, venue *domain.Venue) (*domain.Venue, error) {
				return nil, errors.New("connection reset")
			},
		}
		assets := &mockAssetStore{}

		req := validRequest()
		req.Images = [][]byte{[]byte("first")}

		uc := NewUsecase(repo, assets, noopLogger{})
		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrInternal)
		assert.Equal(t, []string{"venues/img-1"}, assets.destroyed)
	})
}
