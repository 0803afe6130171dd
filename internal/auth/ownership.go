package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/myflix-service/pkg/util"
)

// RequireSelf ensures the path username matches the authenticated principal.
// The check is a pure comparison: it runs after token verification and before
// any store access in the handler, regardless of request body contents.
func RequireSelf(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.User == nil {
			return apperrors.NewInvalidToken("authentication required")
		}
		if c.Params(param) != principal.User.Username {
			return apperrors.NewPermissionDenied("cannot act on another user's account")
		}
		return c.Next()
	}
}
