package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/venuebook/VB-BookingService/internal/domain"
	userRepo "github.com/venuebook/VB-BookingService/internal/infra/storage/user"
	"github.com/venuebook/VB-BookingService/internal/service/users/models"
)

// Service сервис регистрации и аутентификации пользователей
type Service struct {
	userRepo UserRepository
	tokens   TokenIssuer
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(
	userRepo UserRepository,
	tokens TokenIssuer,
	logger Logger,
) *Service {
	return &Service{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register регистрирует нового пользователя и выдает токен доступа
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	s.logger.Info("Register: registering user email=%s role=%s", req.Email, req.Role)

	if err := validateRegister(req); err != nil {
		s.logger.Warn("Register: validation failed for email=%s: %v", req.Email, err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Phone:        strings.TrimSpace(req.Phone),
		Role:         domain.Role(req.Role),
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email %s already registered", user.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error for email=%s: %v", user.Email, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	token, err := s.tokens.Issue(created.ID, string(created.Role))
	if err != nil {
		s.logger.Error("Register: failed to issue token for user id=%s: %v", created.ID, err)
		return nil, fmt.Errorf("%w: Register - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Register: successfully registered user id=%s", created.ID)
	return &models.AuthResponse{Token: token, User: *models.FromDomainUser(created)}, nil
}

// Login проверяет учетные данные и выдает токен доступа
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Info("Login: authenticating email=%s", email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email %s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for email %s", email)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, string(user.Role))
	if err != nil {
		s.logger.Error("Login: failed to issue token for user id=%s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: successfully authenticated user id=%s", user.ID)
	return &models.AuthResponse{Token: token, User: *models.FromDomainUser(user)}, nil
}

// GetMe возвращает публичные данные пользователя по id из токена
func (s *Service) GetMe(ctx context.Context, userID string) (*models.UserResponse, error) {
	s.logger.Info("GetMe: fetching user id=%s", userID)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetMe: user id=%s not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetMe: repository error for user id=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetMe - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

func validateRegister(req *models.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(req.Email) == "" || !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: valid email is required", ErrValidation)
	}
	if len(req.Password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, domain.MinPasswordLength)
	}
	if req.Password != req.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", ErrValidation)
	}
	if !domain.Role(req.Role).IsValid() {
		return fmt.Errorf("%w: role must be customer or owner", ErrValidation)
	}
	return nil
}
