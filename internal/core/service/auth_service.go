package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/crudify/crudify-server/internal/core/domain"
	"github.com/crudify/crudify-server/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Register creates a new account and returns its projection with a fresh
// token. The username uniqueness check runs strictly before the email check,
// so when both collide the reported reason is always the username collision.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*ports.AuthResult, error) {
	taken, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrUsernameTaken
	}

	taken, err = s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("user registered")

	return s.issue(created)
}

// Login verifies credentials and returns the account projection with a fresh
// token. A missing user and a wrong password are indistinguishable to the
// caller. The projection comes from a second lookup; if the record vanished
// between verification and that lookup, ErrUserVanished is returned instead.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	if err := s.verify(ctx, username, password); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserVanished
		}
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("user logged in")

	return s.issue(user)
}

func (s *AuthService) verify(ctx context.Context, username, password string) error {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidCredentials
		}
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}

func (s *AuthService) issue(user *domain.User) (*ports.AuthResult, error) {
	claims := jwt.MapClaims{
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &ports.AuthResult{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}
