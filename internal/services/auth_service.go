package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"inventaris/internal/ledger"
	"inventaris/internal/models"
	"inventaris/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles the single-admin login model: one seeded admin account,
// a shared password, and stateless JWT tokens for the API routes.
type AuthService struct {
	userRepo   repositories.UserRepository
	adminEmail string
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret, adminEmail string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		adminEmail: adminEmail,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
}

// EnsureAdmin seeds the admin account if it does not exist yet. The password
// is stored as a bcrypt hash.
func (s *AuthService) EnsureAdmin(fullName, password string) error {
	if _, err := s.userRepo.GetByEmail(s.adminEmail); err == nil {
		return nil
	} else if !errors.Is(err, ledger.ErrNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := &models.User{
		FullName: fullName,
		Email:    s.adminEmail,
		Password: string(hashedPassword),
	}
	if err := s.userRepo.Create(admin); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	log.Printf("Seeded admin user %s", s.adminEmail)
	return nil
}

// Login verifies the shared admin password and returns a JWT token.
func (s *AuthService) Login(password string) (string, error) {
	admin, err := s.userRepo.GetByEmail(s.adminEmail)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			return "", fmt.Errorf("admin user not found; run the seeder first")
		}
		return "", fmt.Errorf("failed to load admin user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	return s.generateToken(admin)
}

// RefreshToken issues a fresh token for an already-authenticated user.
func (s *AuthService) RefreshToken(userID string) (string, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return "", fmt.Errorf("invalid credentials")
	}
	return s.generateToken(user)
}

// GetProfile loads the authenticated user's profile.
func (s *AuthService) GetProfile(userID string) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}

func (s *AuthService) generateToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   user.ID,
		"email":     user.Email,
		"full_name": user.FullName,
		"exp":       time.Now().Add(s.tokenDurat).Unix(),
		"iat":       time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
