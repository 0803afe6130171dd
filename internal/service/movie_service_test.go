package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/myflix-service/internal/domain"
)

func newMovieServiceFixture() *MovieService {
	return NewMovieService(&fakeMovieRepo{movies: []domain.Movie{
		{
			ID:       "movie-1",
			Title:    "Inception",
			Genre:    domain.Genre{Name: "Thriller", Description: "Suspense driven"},
			Director: domain.Director{Name: "Christopher Nolan", Bio: "British-American director"},
		},
		{
			ID:       "movie-2",
			Title:    "The Matrix",
			Genre:    domain.Genre{Name: "Science Fiction", Description: "Futuristic themes"},
			Director: domain.Director{Name: "Lana Wachowski"},
		},
	}})
}

func TestMovieService_List(t *testing.T) {
	t.Parallel()

	movies, err := newMovieServiceFixture().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, movies, 2)
}

func TestMovieService_GetByTitle(t *testing.T) {
	t.Parallel()

	svc := newMovieServiceFixture()

	movie, err := svc.GetByTitle(context.Background(), "Inception")
	require.NoError(t, err)
	assert.Equal(t, "movie-1", movie.ID)

	_, err = svc.GetByTitle(context.Background(), "Unknown Title")
	assertDomainCode(t, err, "NOT_FOUND")
}

func TestMovieService_GenreView(t *testing.T) {
	t.Parallel()

	svc := newMovieServiceFixture()

	genre, movies, err := svc.GenreView(context.Background(), "Thriller")
	require.NoError(t, err)
	assert.Equal(t, "Suspense driven", genre.Description)
	require.Len(t, movies, 1)
	assert.Equal(t, "Inception", movies[0].Title)

	_, _, err = svc.GenreView(context.Background(), "Western")
	assertDomainCode(t, err, "NOT_FOUND")
}

func TestMovieService_DirectorView(t *testing.T) {
	t.Parallel()

	svc := newMovieServiceFixture()

	director, movies, err := svc.DirectorView(context.Background(), "Christopher Nolan")
	require.NoError(t, err)
	assert.Equal(t, "British-American director", director.Bio)
	require.Len(t, movies, 1)

	_, _, err = svc.DirectorView(context.Background(), "Nobody")
	assertDomainCode(t, err, "NOT_FOUND")
}
