package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/myflix-service/internal/api/dto"
	"github.com/spec-kit/myflix-service/internal/service"
)

// MoviesHandler exposes catalog read endpoints.
type MoviesHandler struct {
	movies *service.MovieService
}

// NewMoviesHandler constructs handler.
func NewMoviesHandler(movieService *service.MovieService) *MoviesHandler {
	return &MoviesHandler{movies: movieService}
}

// List handles GET /movies.
func (h *MoviesHandler) List(c *fiber.Ctx) error {
	movies, err := h.movies.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewMovieResponses(movies)})
}

// GetByTitle handles GET /movies/:title.
func (h *MoviesHandler) GetByTitle(c *fiber.Ctx) error {
	movie, err := h.movies.GetByTitle(c.UserContext(), c.Params("title"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewMovieResponse(movie)})
}

// GetGenre handles GET /movies/genre/:genreName.
func (h *MoviesHandler) GetGenre(c *fiber.Ctx) error {
	genre, movies, err := h.movies.GenreView(c.UserContext(), c.Params("genreName"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.GenreViewResponse{
		Genre: dto.GenreResponse{
			Name:        genre.Name,
			Description: genre.Description,
		},
		Movies: dto.NewMovieResponses(movies),
	}})
}

// GetDirector handles GET /movies/directors/:directorName.
func (h *MoviesHandler) GetDirector(c *fiber.Ctx) error {
	director, movies, err := h.movies.DirectorView(c.UserContext(), c.Params("directorName"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.DirectorViewResponse{
		Director: dto.DirectorResponse{
			Name:  director.Name,
			Bio:   director.Bio,
			Birth: director.Birth,
			Death: director.Death,
		},
		Movies: dto.NewMovieResponses(movies),
	}})
}
