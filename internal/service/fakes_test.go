package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/myflix-service/internal/domain"
	"github.com/spec-kit/myflix-service/internal/events"
	"github.com/spec-kit/myflix-service/internal/repository"
	apperrors "github.com/spec-kit/myflix-service/pkg/util"
)

type fakeUserRepo struct {
	mu        sync.Mutex
	users     map[string]*domain.User
	seq       int
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return repository.ErrDuplicateUsername
		}
	}
	f.seq++
	user.ID = fmt.Sprintf("user-%d", f.seq)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.users[user.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	for id, other := range f.users {
		if id != user.ID && other.Username == user.Username {
			return repository.ErrDuplicateUsername
		}
	}
	favorites := existing.FavoriteMovies
	stored := *user
	stored.FavoriteMovies = favorites
	stored.UpdatedAt = time.Now()
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user, ok := f.users[id]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) AddFavorite(_ context.Context, userID, movieID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[userID]
	if !ok {
		return pgx.ErrNoRows
	}
	for _, existing := range user.FavoriteMovies {
		if existing == movieID {
			return nil
		}
	}
	user.FavoriteMovies = append(user.FavoriteMovies, movieID)
	return nil
}

func (f *fakeUserRepo) RemoveFavorite(_ context.Context, userID, movieID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[userID]
	if !ok {
		return pgx.ErrNoRows
	}
	kept := user.FavoriteMovies[:0]
	for _, existing := range user.FavoriteMovies {
		if existing != movieID {
			kept = append(kept, existing)
		}
	}
	user.FavoriteMovies = kept
	return nil
}

type fakeMovieRepo struct {
	movies []domain.Movie
}

func (f *fakeMovieRepo) List(context.Context) ([]domain.Movie, error) {
	return f.movies, nil
}

func (f *fakeMovieRepo) GetByID(_ context.Context, id string) (*domain.Movie, error) {
	for i := range f.movies {
		if f.movies[i].ID == id {
			return &f.movies[i], nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeMovieRepo) GetByTitle(_ context.Context, title string) (*domain.Movie, error) {
	for i := range f.movies {
		if f.movies[i].Title == title {
			return &f.movies[i], nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeMovieRepo) ListByGenre(_ context.Context, genreName string) ([]domain.Movie, error) {
	var result []domain.Movie
	for _, movie := range f.movies {
		if movie.Genre.Name == genreName {
			result = append(result, movie)
		}
	}
	return result, nil
}

func (f *fakeMovieRepo) ListByDirector(_ context.Context, directorName string) ([]domain.Movie, error) {
	var result []domain.Movie
	for _, movie := range f.movies {
		if movie.Director.Name == directorName {
			result = append(result, movie)
		}
	}
	return result, nil
}

type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) recorded() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event{}, d.events...)
}

func assertDomainCode(t *testing.T, err error, code string) {
	t.Helper()
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}
