package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/myflix-service/internal/auth"
	"github.com/spec-kit/myflix-service/internal/domain"
	"github.com/spec-kit/myflix-service/internal/events"
	"github.com/spec-kit/myflix-service/internal/repository"
	apperrors "github.com/spec-kit/myflix-service/pkg/util"
)

// UpdateProfileInput holds optional profile changes; nil fields are left
// untouched.
type UpdateProfileInput struct {
	Username *string
	Password *string
	Email    *string
	Birthday *time.Time
}

// UserService manages account profiles and favorite lists. Ownership is
// enforced by the HTTP layer before any of these methods run.
type UserService struct {
	users      repository.UserRepository
	movies     repository.MovieRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, movies repository.MovieRepository, dispatcher events.Dispatcher, bcryptCost int) *UserService {
	return &UserService{users: users, movies: movies, dispatcher: dispatcher, bcryptCost: bcryptCost}
}

// GetProfile returns the account for a username.
func (s *UserService) GetProfile(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// UpdateProfile applies the supplied field changes, re-hashing the password
// when one is provided.
func (s *UserService) UpdateProfile(ctx context.Context, username string, input UpdateProfileInput) (*domain.User, error) {
	user, err := s.GetProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	if input.Username != nil && *input.Username != "" {
		user.Username = *input.Username
	}
	if input.Password != nil && *input.Password != "" {
		hash, err := auth.HashPassword(*input.Password, s.bcryptCost)
		if err != nil {
			return nil, apperrors.MapError(err)
		}
		user.PasswordHash = hash
	}
	if input.Email != nil && *input.Email != "" {
		user.Email = *input.Email
	}
	if input.Birthday != nil {
		user.Birthday = input.Birthday
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, apperrors.NewDuplicateUsername(user.Username)
		}
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventUserUpdated, user.ID, events.UserAccountPayload{Username: user.Username})
	return user, nil
}

// DeleteAccount removes the account and its favorites.
func (s *UserService) DeleteAccount(ctx context.Context, username string) error {
	user, err := s.GetProfile(ctx, username)
	if err != nil {
		return err
	}
	if err := s.users.Delete(ctx, user.ID); err != nil {
		return apperrors.MapError(err)
	}
	s.publish(ctx, events.EventUserDeleted, user.ID, events.UserAccountPayload{Username: user.Username})
	return nil
}

// AddFavorite records a movie on the user's favorites list. Adding a movie
// that is already listed is a no-op.
func (s *UserService) AddFavorite(ctx context.Context, username, movieID string) (*domain.User, error) {
	user, err := s.GetProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	if _, err := uuid.Parse(movieID); err != nil {
		return nil, apperrors.NewNotFound("movie")
	}
	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("movie")
		}
		return nil, apperrors.MapError(err)
	}

	if err := s.users.AddFavorite(ctx, user.ID, movie.ID); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventFavoriteAdded, user.ID, events.FavoritePayload{
		Username:   user.Username,
		MovieID:    movie.ID,
		MovieTitle: movie.Title,
	})
	return s.GetProfile(ctx, username)
}

// RemoveFavorite drops a movie from the user's favorites list.
func (s *UserService) RemoveFavorite(ctx context.Context, username, movieID string) (*domain.User, error) {
	user, err := s.GetProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	if _, err := uuid.Parse(movieID); err != nil {
		return nil, apperrors.NewNotFound("movie")
	}
	if err := s.users.RemoveFavorite(ctx, user.ID, movieID); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventFavoriteRemoved, user.ID, events.FavoritePayload{
		Username: user.Username,
		MovieID:  movieID,
	})
	return s.GetProfile(ctx, username)
}

func (s *UserService) publish(ctx context.Context, eventType events.EventType, userID string, payload interface{}) {
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
