package services_test

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/Shradhesh0/sweet-shop-mgmt/internal/apperrors"
	"github.com/Shradhesh0/sweet-shop-mgmt/internal/models"
	"github.com/Shradhesh0/sweet-shop-mgmt/internal/services"
)

// MockUserRepository is a mock implementation of repositories.UserRepository.
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

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

const testJWTSecret = "test_jwt_secret"

func newAuthService(repo *MockUserRepository) *services.AuthService {
	return services.NewAuthService(repo, testJWTSecret, 24*time.Hour)
}

func parseClaims(t *testing.T, token string) jwt.MapClaims {
	t.Helper()
	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	return claims
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	user := &models.User{
		Email:    "test@example.com",
		Password: "password123",
		Name:     "Test User",
	}

	mockRepo.On("GetByEmail", user.Email).Return(nil, apperrors.ErrUserNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	token, err := authService.Register(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	mockRepo.AssertExpectations(t)

	// Role defaults to user, password is stored hashed.
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))

	claims := parseClaims(t, token)
	assert.Equal(t, user.Email, claims["email"])
	assert.Equal(t, "user", claims["role"])
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	user := &models.User{Email: "taken@example.com", Password: "password123", Name: "Dup"}

	mockRepo.On("GetByEmail", user.Email).Return(&models.User{ID: 1}, nil).Once()

	_, err := authService.Register(user)
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_Register_DuplicateAtStore(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	user := &models.User{Email: "race@example.com", Password: "password123", Name: "Race"}

	// The advisory lookup misses but the unique index catches the duplicate.
	mockRepo.On("GetByEmail", user.Email).Return(nil, apperrors.ErrUserNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(apperrors.ErrEmailTaken).Once()

	_, err := authService.Register(user)
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       42,
		Email:    "test@example.com",
		Password: string(hashed),
		Name:     "Test User",
		Role:     models.RoleAdmin,
	}

	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()

	token, loggedIn, err := authService.Login(user.Email, "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)

	claims := parseClaims(t, token)
	assert.Equal(t, float64(42), claims["id"])
	assert.Equal(t, user.Email, claims["email"])
	assert.Equal(t, "admin", claims["role"])
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{ID: 1, Email: "test@example.com", Password: string(hashed)}

	// Wrong password.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, _, err := authService.Login(user.Email, "wrongpassword")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// Unknown email yields the same error.
	mockRepo.On("GetByEmail", "ghost@example.com").Return(nil, apperrors.ErrUserNotFound).Once()
	_, _, err = authService.Login("ghost@example.com", "password123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{ID: 7, Email: "test@example.com", Password: string(hashed), Role: models.RoleUser}
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()

	token, _, err := authService.Login(user.Email, "password123")
	assert.NoError(t, err)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, float64(7), claims["id"])

	// Garbage token.
	_, err = authService.ValidateToken("not.a.token")
	assert.Error(t, err)

	// Expired token.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   7,
		"role": "user",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})
	expiredString, _ := expired.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredString)
	assert.Error(t, err)

	// Token signed with a different secret.
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  7,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	forgedString, _ := forged.SignedString([]byte("other_secret"))
	_, err = authService.ValidateToken(forgedString)
	assert.Error(t, err)
}
