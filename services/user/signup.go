package user

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	userRepo "ecoskip/database/repository/user"
	"ecoskip/models"
	"ecoskip/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor for stored password hashes.
const PasswordCost = 10

// MaxPasswordBytes is the longest password bcrypt will hash.
const MaxPasswordBytes = 72

// Register validates the request, rejects duplicate emails, stores the user with a
// bcrypt hash and returns a signed token.
func (s *DefaultUserService) Register(ctx context.Context, req models.UserRegistrationData) (*AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validateRegistration(&req); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), PasswordCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        strings.TrimSpace(req.Phone),
		District:     strings.TrimSpace(req.District),
		Language:     req.Language,
		Role:         models.RoleCustomer,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		// Lost a race with a concurrent registration for the same email.
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			return nil, ErrUserExists
		}
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	utils.GetLogger().Info("User registered", zap.String("userId", u.ID), zap.String("district", u.District))
	return s.authResponse(u)
}

func validateRegistration(req *models.UserRegistrationData) error {
	if strings.TrimSpace(req.Name) == "" || req.Email == "" || req.Password == "" ||
		strings.TrimSpace(req.Phone) == "" || strings.TrimSpace(req.District) == "" {
		return fmt.Errorf("%w: name, email, password, phone and district are required", ErrInvalidInput)
	}
	if len(req.Password) > MaxPasswordBytes {
		return fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidInput, MaxPasswordBytes)
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return fmt.Errorf("%w: email is not valid", ErrInvalidInput)
	}
	if req.Language == "" {
		req.Language = models.LanguageEnglish
	}
	if !req.Language.Valid() {
		return fmt.Errorf("%w: language must be one of en, si, ta", ErrInvalidInput)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *DefaultUserService) authResponse(u *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, s.TokenTTL)
	if err != nil {
		utils.GetLogger().Error("failed to sign token", zap.String("userId", u.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &AuthResponse{Token: token, User: u.Public()}, nil
}
