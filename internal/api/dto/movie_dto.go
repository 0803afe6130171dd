package dto

import (
	"time"

	"github.com/spec-kit/myflix-service/internal/domain"
)

// GenreResponse describes a movie category.
type GenreResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DirectorResponse holds director biography details.
type DirectorResponse struct {
	Name  string     `json:"name"`
	Bio   string     `json:"bio"`
	Birth *time.Time `json:"birth,omitempty"`
	Death *time.Time `json:"death,omitempty"`
}

// MovieResponse is the client-facing movie shape.
type MovieResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Year        int              `json:"year"`
	Rate        float64          `json:"rate"`
	Genre       GenreResponse    `json:"genre"`
	Director    DirectorResponse `json:"director"`
	Actors      []string         `json:"actors"`
	ImagePath   string           `json:"image_path,omitempty"`
	Featured    bool             `json:"featured"`
}

// GenreViewResponse bundles a genre with its movies.
type GenreViewResponse struct {
	Genre  GenreResponse   `json:"genre"`
	Movies []MovieResponse `json:"movies"`
}

// DirectorViewResponse bundles a director with their movies.
type DirectorViewResponse struct {
	Director DirectorResponse `json:"director"`
	Movies   []MovieResponse  `json:"movies"`
}

// NewMovieResponse maps a domain movie to its response shape.
func NewMovieResponse(movie *domain.Movie) MovieResponse {
	actors := movie.Actors
	if actors == nil {
		actors = []string{}
	}
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Year:        movie.Year,
		Rate:        movie.Rate,
		Genre: GenreResponse{
			Name:        movie.Genre.Name,
			Description: movie.Genre.Description,
		},
		Director: DirectorResponse{
			Name:  movie.Director.Name,
			Bio:   movie.Director.Bio,
			Birth: movie.Director.Birth,
			Death: movie.Director.Death,
		},
		Actors:    actors,
		ImagePath: movie.ImagePath,
		Featured:  movie.Featured,
	}
}

// NewMovieResponses maps a slice of domain movies.
func NewMovieResponses(movies []domain.Movie) []MovieResponse {
	result := make([]MovieResponse, 0, len(movies))
	for i := range movies {
		result = append(result, NewMovieResponse(&movies[i]))
	}
	return result
}
