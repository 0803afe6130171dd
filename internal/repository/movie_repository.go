package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/myflix-service/internal/domain"
)

const movieColumns = `id, title, description, year, rate,
               genre_name, genre_description,
               director_name, director_bio, director_birth, director_death,
               actors, image_path, featured, created_at, updated_at`

// MovieRepository encapsulates catalog persistence. The catalog is read-only
// from the API's perspective; content is loaded through migrations or ops
// tooling.
type MovieRepository interface {
	List(ctx context.Context) ([]domain.Movie, error)
	GetByID(ctx context.Context, id string) (*domain.Movie, error)
	GetByTitle(ctx context.Context, title string) (*domain.Movie, error)
	ListByGenre(ctx context.Context, genreName string) ([]domain.Movie, error)
	ListByDirector(ctx context.Context, directorName string) ([]domain.Movie, error)
}

type movieRepository struct {
	pool *pgxpool.Pool
}

// NewMovieRepository instantiates repository.
func NewMovieRepository(pool *pgxpool.Pool) MovieRepository {
	return &movieRepository{pool: pool}
}

func (r *movieRepository) List(ctx context.Context) ([]domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY title`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMovies(rows)
}

func (r *movieRepository) GetByID(ctx context.Context, id string) (*domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *movieRepository) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE title=$1`
	return r.fetchSingle(ctx, query, title)
}

func (r *movieRepository) ListByGenre(ctx context.Context, genreName string) ([]domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE LOWER(genre_name)=LOWER($1) ORDER BY title`
	rows, err := r.pool.Query(ctx, query, genreName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMovies(rows)
}

func (r *movieRepository) ListByDirector(ctx context.Context, directorName string) ([]domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE LOWER(director_name)=LOWER($1) ORDER BY title`
	rows, err := r.pool.Query(ctx, query, directorName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMovies(rows)
}

func (r *movieRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Movie, error) {
	row := r.pool.QueryRow(ctx, query, arg)
	var movie domain.Movie
	if err := scanMovie(row, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

func scanMovie(row pgx.Row, movie *domain.Movie) error {
	return row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Year,
		&movie.Rate,
		&movie.Genre.Name,
		&movie.Genre.Description,
		&movie.Director.Name,
		&movie.Director.Bio,
		&movie.Director.Birth,
		&movie.Director.Death,
		&movie.Actors,
		&movie.ImagePath,
		&movie.Featured,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
}

func scanMovies(rows pgx.Rows) ([]domain.Movie, error) {
	var result []domain.Movie
	for rows.Next() {
		var movie domain.Movie
		if err := scanMovie(rows, &movie); err != nil {
			return nil, err
		}
		result = append(result, movie)
	}
	return result, rows.Err()
}
