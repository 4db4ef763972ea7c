package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/research-api/internal/auth"
	"github.com/ahmetcoskunkizilkaya/research-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/research-api/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials is returned for a bad login and for any token
	// that does not resolve to a user. The causes are deliberately not
	// distinguishable from the outside.
	ErrInvalidCredentials = errors.New("could not validate credentials")
	ErrInactiveAccount    = errors.New("inactive user")
	ErrEmailTaken         = errors.New("email already registered")
)

type AuthService struct {
	db     *gorm.DB
	tokens *auth.TokenService
}

func NewAuthService(db *gorm.DB, tokens *auth.TokenService) *AuthService {
	return &AuthService{db: db, tokens: tokens}
}

// Login checks the credentials and issues an access token.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !auth.VerifyPassword(req.Password, user.HashedPassword) {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrInactiveAccount
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// Resolve maps an access token to the user it identifies. It is the single
// gate for every authenticated operation: signature, expiry, subject and
// account lookup failures all collapse into ErrInvalidCredentials, and
// deactivated accounts are rejected with ErrInactiveAccount.
func (s *AuthService) Resolve(ctx context.Context, token string) (*models.User, error) {
	email, err := s.tokens.Verify(token)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.IsActive {
		return nil, ErrInactiveAccount
	}

	return &user, nil
}

// CreateUser stores a new account with a hashed password. Used by the
// initdb bootstrap; there is no public registration endpoint.
func (s *AuthService) CreateUser(ctx context.Context, email, password, fullName string) (*models.User, error) {
	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Email:          email,
		HashedPassword: hash,
		FullName:       fullName,
		IsActive:       true,
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}
