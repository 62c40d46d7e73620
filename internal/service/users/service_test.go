package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/venuebook/VB-BookingService/internal/domain"
	userRepo "github.com/venuebook/VB-BookingService/internal/infra/storage/user"
	"github.com/venuebook/VB-BookingService/internal/service/users/models"
)

type mockUserRepo struct {
	createFn     func(ctx context.Context, user *domain.User) (*domain.User, error)
	getByIDFn    func(ctx context.Context, id string) (*domain.User, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return m.createFn(ctx, user)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.getByEmailFn(ctx, email)
}

type mockTokenIssuer struct {
	issueFn func(userID string, role string) (string, error)
}

func (m *mockTokenIssuer) Issue(userID string, role string) (string, error) {
	if m.issueFn != nil {
		return m.issueFn(userID, role)
	}
	return "test-token", nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func validRegisterRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		Name:            "Ivan",
		Email:           "Ivan@Example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Phone:           "+79990001122",
		Role:            "customer",
	}
}

func TestService_Register(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		var stored *domain.User
		repo := &mockUserRepo{
			createFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
				stored = user
				out := *user
				out.ID = "user-1"
				out.CreatedAt = time.Now()
				return &out, nil
			},
		}

		svc := NewService(repo, &mockTokenIssuer{}, noopLogger{})
		resp, err := svc.Register(context.Background(), validRegisterRequest())

		require.NoError(t, err)
		assert.Equal(t, "test-token", resp.Token)
		assert.Equal(t, "user-1", resp.User.ID)
		assert.Equal(t, "ivan@example.com", resp.User.Email)

		// хэш вместо пароля, и пароль им проверяется
		require.NotNil(t, stored)
		assert.NotEqual(t, "secret1", stored.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
	})

	t.Run("validation failures", func(t *testing.T) {
		cases := map[string]func(r *models.RegisterRequest){
			"empty name":        func(r *models.RegisterRequest) { r.Name = " " },
			"bad email":         func(r *models.RegisterRequest) { r.Email = "not-an-email" },
			"short password":    func(r *models.RegisterRequest) { r.Password = "12345"; r.ConfirmPassword = "12345" },
			"password mismatch": func(r *models.RegisterRequest) { r.ConfirmPassword = "other1" },
			"unknown role":      func(r *models.RegisterRequest) { r.Role = "admin" },
		}

		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				req := validRegisterRequest()
				mutate(req)

				svc := NewService(&mockUserRepo{}, &mockTokenIssuer{}, noopLogger{})
				_, err := svc.Register(context.Background(), req)

				assert.ErrorIs(t, err, ErrValidation)
			})
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := &mockUserRepo{
			createFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
				return nil, userRepo.ErrEmailTaken
			},
		}

		svc := NewService(repo, &mockTokenIssuer{}, noopLogger{})
		_, err := svc.Register(context.Background(), validRegisterRequest())

		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	existing := &domain.User{
		ID:           "user-1",
		Name:         "Ivan",
		Email:        "ivan@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
	}

	t.Run("successful login", func(t *testing.T) {
		repo := &mockUserRepo{
			getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
				assert.Equal(t, "ivan@example.com", email)
				return existing, nil
			},
		}

		svc := NewService(repo, &mockTokenIssuer{}, noopLogger{})
		resp, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    " Ivan@Example.com ",
			Password: "secret1",
		})

		require.NoError(t, err)
		assert.Equal(t, "test-token", resp.Token)
		assert.Equal(t, "user-1", resp.User.ID)
	})

	t.Run("unknown email and wrong password map to the same error", func(t *testing.T) {
		unknownRepo := &mockUserRepo{
			getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
				return nil, userRepo.ErrUserNotFound
			},
		}
		knownRepo := &mockUserRepo{
			getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
				return existing, nil
			},
		}

		svc := NewService(unknownRepo, &mockTokenIssuer{}, noopLogger{})
		_, errUnknown := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret1",
		})

		svc = NewService(knownRepo, &mockTokenIssuer{}, noopLogger{})
		_, errWrongPass := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "ivan@example.com",
			Password: "wrong",
		})

		assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
	})
}

func TestService_GetMe(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		repo := &mockUserRepo{
			getByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
				return &domain.User{
					ID:           "user-1",
					Name:         "Ivan",
					Email:        "ivan@example.com",
					PasswordHash: "hash",
					Role:         domain.RoleCustomer,
				}, nil
			},
		}

		svc := NewService(repo, &mockTokenIssuer{}, noopLogger{})
		resp, err := svc.GetMe(context.Background(), "user-1")

		require.NoError(t, err)
		assert.Equal(t, "user-1", resp.ID)
		assert.Equal(t, "customer", resp.Role)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := &mockUserRepo{
			getByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
				return nil, userRepo.ErrUserNotFound
			},
		}

		svc := NewService(repo, &mockTokenIssuer{}, noopLogger{})
		_, err := svc.GetMe(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
