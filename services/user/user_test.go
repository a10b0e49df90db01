package user

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"ecoskip/config"
	userRepo "ecoskip/database/repository/user"
	"ecoskip/models"
	"ecoskip/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	config.AppConfig.JWTSecret = "test-secret"
	os.Exit(m.Run())
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func registration() models.UserRegistrationData {
	return models.UserRegistrationData{
		Name:     "Kasun Perera",
		Email:    " Kasun@Example.com ",
		Password: "s3cret-pass",
		Phone:    "0771234567",
		District: "Colombo",
	}
}

func TestRegister_Success(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo, 24*time.Hour)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "kasun@example.com").Return(nil, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil)

	resp, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "kasun@example.com", resp.User.Email)
	assert.Equal(t, models.LanguageEnglish, resp.User.Language)
	assert.Equal(t, models.RoleCustomer, resp.User.Role)

	created := repo.Calls[1].Arguments.Get(1).(*models.User)
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "s3cret-pass", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("s3cret-pass")))
	cost, err := bcrypt.Cost([]byte(created.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, PasswordCost, cost)

	id, err := utils.ExtractIDFromToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, id)
	repo.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo, time.Hour)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "kasun@example.com").Return(&models.User{ID: "existing"}, nil)

	_, err := svc.Register(ctx, registration())
	assert.ErrorIs(t, err, ErrUserExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateOnInsert(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo, time.Hour)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "kasun@example.com").Return(nil, nil)
	repo.On("Create", ctx, mock.Anything).Return(userRepo.ErrDuplicateEmail)

	_, err := svc.Register(ctx, registration())
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestRegister_Validation(t *testing.T) {
	svc := NewUserService(new(mockUserRepo), time.Hour)
	ctx := context.Background()

	missing := registration()
	missing.District = ""
	_, err := svc.Register(ctx, missing)
	assert.ErrorIs(t, err, ErrInvalidInput)

	badEmail := registration()
	badEmail.Email = "not-an-email"
	_, err = svc.Register(ctx, badEmail)
	assert.ErrorIs(t, err, ErrInvalidInput)

	badLang := registration()
	badLang.Language = "fr"
	_, err = svc.Register(ctx, badLang)
	assert.ErrorIs(t, err, ErrInvalidInput)

	longPassword := registration()
	longPassword.Password = strings.Repeat("ab", 37)
	_, err = svc.Register(ctx, longPassword)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegister_StoreFailure(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo, time.Hour)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "kasun@example.com").Return(nil, errors.New("server selection timeout"))

	_, err := svc.Register(ctx, registration())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserExists)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &models.User{ID: "u1", Email: "kasun@example.com", PasswordHash: string(hash), Role: models.RoleCustomer}
	ctx := context.Background()

	repo := new(mockUserRepo)
	repo.On("GetByEmail", ctx, "kasun@example.com").Return(stored, nil)
	repo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, nil)
	svc := NewUserService(repo, time.Hour)

	resp, err := svc.Login(ctx, "KASUN@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.User.ID)

	_, err = svc.Login(ctx, "kasun@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "ghost@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetUserByID(t *testing.T) {
	ctx := context.Background()
	repo := new(mockUserRepo)
	repo.On("GetByID", ctx, "u1").Return(&models.User{ID: "u1"}, nil)
	repo.On("GetByID", ctx, "gone").Return(nil, userRepo.ErrNotFound)
	svc := NewUserService(repo, time.Hour)

	u, err := svc.GetUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	_, err = svc.GetUserByID(ctx, "gone")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
