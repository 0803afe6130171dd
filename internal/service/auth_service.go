package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/myflix-service/internal/auth"
	"github.com/spec-kit/myflix-service/internal/config"
	"github.com/spec-kit/myflix-service/internal/domain"
	"github.com/spec-kit/myflix-service/internal/events"
	"github.com/spec-kit/myflix-service/internal/repository"
	apperrors "github.com/spec-kit/myflix-service/pkg/util"
)

// RegisterInput carries validated registration fields.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	Birthday *time.Time
}

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL()),
		dispatcher: dispatcher,
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new account. The username pre-check is advisory; the
// store's unique index decides the winner of concurrent registrations and the
// loser gets a duplicate-username conflict, never a silent overwrite.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if _, err := s.users.GetByUsername(ctx, input.Username); err == nil {
		return nil, apperrors.NewDuplicateUsername(input.Username)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	user := &domain.User{
		Username:     input.Username,
		PasswordHash: hash,
		Email:        input.Email,
		Birthday:     input.Birthday,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, apperrors.NewDuplicateUsername(input.Username)
		}
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventUserRegistered, user.ID, events.UserAccountPayload{Username: user.Username})
	return user, nil
}

// Login verifies credentials and issues a token embedding only the identity
// key. Unknown username and wrong password are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, domain.Token, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", domain.Token{}, apperrors.NewInvalidCredentials()
		}
		return nil, "", domain.Token{}, apperrors.MapError(err)
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", domain.Token{}, apperrors.NewInvalidCredentials()
	}

	token, issued, err := s.tokenMgr.GenerateToken(user.ID)
	if err != nil {
		return nil, "", domain.Token{}, apperrors.MapError(err)
	}
	return user, token, issued, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, userID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
