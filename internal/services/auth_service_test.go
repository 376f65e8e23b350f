package services_test

import (
	"testing"
	"time"

	"fittrack/internal/apperrors"
	"fittrack/internal/models"
	"fittrack/internal/repositories"
	"fittrack/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newAuthService(repo repositories.UserRepository) *services.AuthService {
	tokens := services.NewTokenService("test_jwt_secret", 24*time.Hour)
	return services.NewAuthService(repo, tokens)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	mockRepo.On("GetByEmail", "test@example.com").Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.User).ID = "user-1"
	}).Return(nil).Once()

	resp, err := authService.Register("test@example.com", "Test User", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "user-1", resp.User.ID)
	assert.Equal(t, "test@example.com", resp.User.Email)
	assert.Equal(t, "Test User", resp.User.Name)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterMissingFields(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	for _, args := range [][3]string{
		{"", "Test User", "password123"},
		{"test@example.com", "", "password123"},
		{"test@example.com", "Test User", ""},
	} {
		_, err := authService.Register(args[0], args[1], args[2])
		assert.Error(t, err)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		assert.Contains(t, err.Error(), "All fields are required")
	}
	mockRepo.AssertNotCalled(t, "Create")
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	existing := &models.User{ID: "user-1", Email: "test@example.com"}
	mockRepo.On("GetByEmail", "test@example.com").Return(existing, nil).Once()

	_, err := authService.Register("test@example.com", "Test User", "password123")
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "Email already in use")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterNormalizesEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	mockRepo.On("GetByEmail", "test@example.com").Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		user := args.Get(0).(*models.User)
		assert.Equal(t, "test@example.com", user.Email)
		user.ID = "user-1"
	}).Return(nil).Once()

	resp, err := authService.Register("Test@Example.COM", "Test User", "password123")
	assert.NoError(t, err)
	assert.Equal(t, "test@example.com", resp.User.Email)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	user := &models.User{
		ID:           "user-1",
		Email:        "test@example.com",
		Name:         "Test User",
		PasswordHash: string(hash),
	}
	mockRepo.On("GetByEmail", "test@example.com").Return(user, nil).Once()

	resp, err := authService.Login("test@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "user-1", resp.User.ID)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginMissingFields(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	_, err := authService.Login("", "password123")
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "Email and password are required")

	_, err = authService.Login("test@example.com", "")
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

// Wrong password and unknown email must be indistinguishable to the caller.
func TestAuthService_LoginInvalidCredentials(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	user := &models.User{ID: "user-1", Email: "test@example.com", PasswordHash: string(hash)}

	mockRepo.On("GetByEmail", "test@example.com").Return(user, nil).Once()
	_, wrongPasswordErr := authService.Login("test@example.com", "wrongpassword")
	assert.Error(t, wrongPasswordErr)

	mockRepo.On("GetByEmail", "unknown@example.com").Return(nil, repositories.ErrNotFound).Once()
	_, unknownEmailErr := authService.Login("unknown@example.com", "password123")
	assert.Error(t, unknownEmailErr)

	assert.Equal(t, apperrors.KindAuth, apperrors.KindOf(wrongPasswordErr))
	assert.Equal(t, apperrors.KindAuth, apperrors.KindOf(unknownEmailErr))
	assert.Equal(t, wrongPasswordErr.Error(), unknownEmailErr.Error())
	assert.Equal(t, "Invalid credentials", wrongPasswordErr.Error())
	mockRepo.AssertExpectations(t)
}

func TestAuthService_PasswordIsHashed(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	var stored string
	mockRepo.On("GetByEmail", "test@example.com").Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		user := args.Get(0).(*models.User)
		user.ID = "user-1"
		stored = user.PasswordHash
	}).Return(nil).Once()

	_, err := authService.Register("test@example.com", "Test User", "password123")
	assert.NoError(t, err)
	assert.NotEqual(t, "password123", stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("password123")))
	mockRepo.AssertExpectations(t)
}
