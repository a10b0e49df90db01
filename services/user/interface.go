package user

import (
	"context"
	"time"

	userRepo "ecoskip/database/repository/user"
	"ecoskip/models"
)

type UserService interface {
	Register(ctx context.Context, req models.UserRegistrationData) (*AuthResponse, error)
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	TokenTTL time.Duration
}

func NewUserService(repo userRepo.UserRepository, tokenTTL time.Duration) *DefaultUserService {
	return &DefaultUserService{Repo: repo, TokenTTL: tokenTTL}
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}
