package handlers

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/myflix-service/internal/api/dto"
	"github.com/spec-kit/myflix-service/internal/service"
	apperrors "github.com/spec-kit/myflix-service/pkg/util"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9]{5,}$`)

// UsersHandler exposes registration, profile and favorites endpoints.
type UsersHandler struct {
	auth  *service.AuthService
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService, userService *service.UserService) *UsersHandler {
	return &UsersHandler{auth: authService, users: userService}
}

// Register handles POST /users.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := validateRegistration(req); len(details) > 0 {
		return apperrors.NewValidationError("invalid registration fields", details)
	}

	birthday, err := parseBirthday(req.Birthday)
	if err != nil {
		return apperrors.NewValidationError("invalid birthday", map[string]any{"birthday": "expected YYYY-MM-DD"})
	}

	user, err := h.auth.Register(c.UserContext(), service.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Birthday: birthday,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// GetProfile handles GET /users/:username.
func (h *UsersHandler) GetProfile(c *fiber.Ctx) error {
	user, err := h.users.GetProfile(c.UserContext(), c.Params("username"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// Update handles PUT /users/:username.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username != nil && *req.Username != "" && !usernamePattern.MatchString(*req.Username) {
		return apperrors.NewValidationError("invalid username",
			map[string]any{"username": "at least 5 alphanumeric characters"})
	}
	if req.Email != nil && *req.Email != "" && !strings.Contains(*req.Email, "@") {
		return apperrors.NewValidationError("invalid email", map[string]any{"email": "not a valid address"})
	}

	input := service.UpdateProfileInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	}
	if req.Birthday != nil && *req.Birthday != "" {
		birthday, err := parseBirthday(*req.Birthday)
		if err != nil {
			return apperrors.NewValidationError("invalid birthday", map[string]any{"birthday": "expected YYYY-MM-DD"})
		}
		input.Birthday = birthday
	}

	user, err := h.users.UpdateProfile(c.UserContext(), c.Params("username"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// Delete handles DELETE /users/:username.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	if err := h.users.DeleteAccount(c.UserContext(), c.Params("username")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}

// AddFavorite handles POST /users/:username/movies/:movieID.
func (h *UsersHandler) AddFavorite(c *fiber.Ctx) error {
	user, err := h.users.AddFavorite(c.UserContext(), c.Params("username"), c.Params("movieID"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// RemoveFavorite handles DELETE /users/:username/movies/:movieID.
func (h *UsersHandler) RemoveFavorite(c *fiber.Ctx) error {
	user, err := h.users.RemoveFavorite(c.UserContext(), c.Params("username"), c.Params("movieID"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

func validateRegistration(req dto.RegisterRequest) map[string]any {
	details := map[string]any{}
	if !usernamePattern.MatchString(req.Username) {
		details["username"] = "at least 5 alphanumeric characters"
	}
	if req.Password == "" {
		details["password"] = "required"
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		details["email"] = "not a valid address"
	}
	return details
}

func parseBirthday(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return nil, err
		}
	}
	return &parsed, nil
}
