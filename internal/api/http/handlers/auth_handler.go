package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/myflix-service/internal/api/dto"
	"github.com/spec-kit/myflix-service/internal/ratelimit"
	"github.com/spec-kit/myflix-service/internal/service"
	apperrors "github.com/spec-kit/myflix-service/pkg/util"
)

// AuthHandler exposes the login endpoint.
type AuthHandler struct {
	auth    *service.AuthService
	limiter *ratelimit.LoginLimiter
	logger  *zap.Logger
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, limiter *ratelimit.LoginLimiter, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: authService, limiter: limiter, logger: logger}
}

// Login handles POST /login. The response envelope is part of the public
// contract: 200 {user, token}, 400 {message, info} on bad credentials,
// 500 {message, error} on unexpected failure.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid login credentials",
			"info":    "malformed request body",
		})
	}
	if req.Username == "" || req.Password == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid login credentials",
			"info":    "username and password required",
		})
	}

	if !h.limiter.Allow(c.UserContext(), req.Username, c.IP()) {
		return apperrors.NewRateLimited("too many login attempts")
	}

	user, token, _, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		var domainErr *apperrors.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == "INVALID_CREDENTIALS" {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid login credentials",
				"info":    "incorrect username or password",
			})
		}
		h.logger.Error("login failed", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
			"error":   "unexpected failure",
		})
	}

	return c.JSON(fiber.Map{
		"user":  fiber.Map{"id": user.ID},
		"token": token,
	})
}
