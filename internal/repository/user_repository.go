package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/myflix-service/internal/domain"
)

// ErrDuplicateUsername is returned when an insert or rename collides with the
// unique username index.
var ErrDuplicateUsername = errors.New("username already taken")

// UserRepository defines persistence access for accounts and their favorites.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	AddFavorite(ctx context.Context, userID, movieID string) error
	RemoveFavorite(ctx context.Context, userID, movieID string) error
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (username, password_hash, email, birthday)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		user.Username,
		user.PasswordHash,
		user.Email,
		user.Birthday,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	return mapUniqueViolation(err)
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	const query = `
        UPDATE users SET username=$1, password_hash=$2, email=$3, birthday=$4, updated_at=NOW()
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		user.Username,
		user.PasswordHash,
		user.Email,
		user.Birthday,
		user.ID,
	)
	if err != nil {
		return mapUniqueViolation(err)
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	// favorites rows go with the user via ON DELETE CASCADE
	cmd, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `
        SELECT id, username, password_hash, email, birthday, created_at, updated_at
        FROM users WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `
        SELECT id, username, password_hash, email, birthday, created_at, updated_at
        FROM users WHERE username=$1`
	return r.fetchSingle(ctx, query, username)
}

func (r *userRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Email,
		&user.Birthday,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}

	favorites, err := r.listFavorites(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.FavoriteMovies = favorites
	return &user, nil
}

func (r *userRepository) listFavorites(ctx context.Context, userID string) ([]string, error) {
	const query = `
        SELECT movie_id FROM user_favorite_movies
        WHERE user_id=$1 ORDER BY added_at`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var movieID string
		if err := rows.Scan(&movieID); err != nil {
			return nil, err
		}
		result = append(result, movieID)
	}
	return result, rows.Err()
}

func (r *userRepository) AddFavorite(ctx context.Context, userID, movieID string) error {
	// idempotent: re-adding an existing favorite is a no-op
	const query = `
        INSERT INTO user_favorite_movies (user_id, movie_id)
        VALUES ($1, $2)
        ON CONFLICT (user_id, movie_id) DO NOTHING`
	_, err := r.pool.Exec(ctx, query, userID, movieID)
	return err
}

func (r *userRepository) RemoveFavorite(ctx context.Context, userID, movieID string) error {
	const query = `DELETE FROM user_favorite_movies WHERE user_id=$1 AND movie_id=$2`
	_, err := r.pool.Exec(ctx, query, userID, movieID)
	return err
}

func mapUniqueViolation(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateUsername
	}
	return err
}
