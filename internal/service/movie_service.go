package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/myflix-service/internal/domain"
	"github.com/spec-kit/myflix-service/internal/repository"
	apperrors "github.com/spec-kit/myflix-service/pkg/util"
)

// MovieService exposes catalog reads.
type MovieService struct {
	movies repository.MovieRepository
}

// NewMovieService builds the service.
func NewMovieService(movies repository.MovieRepository) *MovieService {
	return &MovieService{movies: movies}
}

// List returns the full catalog.
func (s *MovieService) List(ctx context.Context) ([]domain.Movie, error) {
	result, err := s.movies.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// GetByTitle returns a single movie by exact title.
func (s *MovieService) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	movie, err := s.movies.GetByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("movie")
		}
		return nil, apperrors.MapError(err)
	}
	return movie, nil
}

// GenreView returns the genre description together with its movies.
func (s *MovieService) GenreView(ctx context.Context, genreName string) (*domain.Genre, []domain.Movie, error) {
	matches, err := s.movies.ListByGenre(ctx, genreName)
	if err != nil {
		return nil, nil, apperrors.MapError(err)
	}
	if len(matches) == 0 {
		return nil, nil, apperrors.NewNotFound("genre")
	}
	genre := matches[0].Genre
	return &genre, matches, nil
}

// DirectorView returns the director biography together with their movies.
func (s *MovieService) DirectorView(ctx context.Context, directorName string) (*domain.Director, []domain.Movie, error) {
	matches, err := s.movies.ListByDirector(ctx, directorName)
	if err != nil {
		return nil, nil, apperrors.MapError(err)
	}
	if len(matches) == 0 {
		return nil, nil, apperrors.NewNotFound("director")
	}
	director := matches[0].Director
	return &director, matches, nil
}
