package services_test

import (
	"fmt"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"inventaris/internal/ledger"
	"inventaris/internal/models"
	"inventaris/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a testify mock of repositories.UserRepository.
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

const (
	testJWTSecret  = "test_jwt_secret"
	testAdminEmail = "admin@inventaris.com"
)

// TestMain suppresses service logging for cleaner test output.
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestAuthService_EnsureAdmin_SeedsOnce(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, testAdminEmail)

	// First run: no admin yet, one gets created with a bcrypt hash.
	mockRepo.On("GetByEmail", testAdminEmail).
		Return(nil, fmt.Errorf("user with email %s: %w", testAdminEmail, ledger.ErrNotFound)).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(0).(*models.User)
			assert.Equal(t, testAdminEmail, user.Email)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("admin123")))
		}).Return(nil).Once()

	err := authService.EnsureAdmin("Administrator", "admin123")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Second run: admin exists, nothing is created.
	mockRepo.On("GetByEmail", testAdminEmail).Return(&models.User{ID: "admin-1"}, nil).Once()
	err = authService.EnsureAdmin("Administrator", "admin123")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, testAdminEmail)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := &models.User{
		ID:       "admin-1",
		FullName: "Administrator",
		Email:    testAdminEmail,
		Password: string(hashedPassword),
	}

	// Successful login with the shared password
	mockRepo.On("GetByEmail", testAdminEmail).Return(admin, nil).Once()
	token, err := authService.Login("admin123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, "admin-1", claims["user_id"])
	assert.Equal(t, testAdminEmail, claims["email"])
	mockRepo.AssertExpectations(t)

	// Wrong password
	mockRepo.On("GetByEmail", testAdminEmail).Return(admin, nil).Once()
	_, err = authService.Login("wrongpassword")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	mockRepo.AssertExpectations(t)

	// Missing admin user
	mockRepo.On("GetByEmail", testAdminEmail).
		Return(nil, fmt.Errorf("user with email %s: %w", testAdminEmail, ledger.ErrNotFound)).Once()
	_, err = authService.Login("admin123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "admin user not found")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RefreshToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, testAdminEmail)

	admin := &models.User{ID: "admin-1", FullName: "Administrator", Email: testAdminEmail}

	mockRepo.On("GetByID", "admin-1").Return(admin, nil).Once()
	token, err := authService.RefreshToken("admin-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	mockRepo.On("GetByID", "ghost").
		Return(nil, fmt.Errorf("user with ID ghost: %w", ledger.ErrNotFound)).Once()
	_, err = authService.RefreshToken("ghost")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, testAdminEmail)

	// Valid token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "admin-1",
		"email":   testAdminEmail,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	validTokenString, _ := token.SignedString([]byte(testJWTSecret))

	claims, err := authService.ValidateToken(validTokenString)
	assert.NoError(t, err)
	assert.Equal(t, "admin-1", claims["user_id"])

	// Garbage token
	_, err = authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")

	// Expired token
	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "admin-1",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	expiredTokenString, _ := expiredToken.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredTokenString)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}
