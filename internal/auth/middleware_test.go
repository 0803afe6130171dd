package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/myflix-service/internal/domain"
	apperrors "github.com/spec-kit/myflix-service/pkg/util"
)

type fakeUserRepo struct {
	byID map[string]*domain.User
}

func (f *fakeUserRepo) Create(context.Context, *domain.User) error         { return nil }
func (f *fakeUserRepo) Update(context.Context, *domain.User) error         { return nil }
func (f *fakeUserRepo) Delete(context.Context, string) error               { return nil }
func (f *fakeUserRepo) AddFavorite(context.Context, string, string) error  { return nil }
func (f *fakeUserRepo) RemoveFavorite(context.Context, string, string) error {
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if user, ok := f.byID[id]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, user := range f.byID {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func newTestApp(t *testing.T, tm *TokenManager, repo *fakeUserRepo) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"code": domainErr.Code})
		},
	})

	middleware := NewAuthMiddleware(tm, repo)
	app.Get("/whoami", middleware.Handle, func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		require.True(t, ok)
		return c.JSON(fiber.Map{"username": principal.User.Username})
	})

	app.Put("/users/:username", middleware.Handle, RequireSelf("username"), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "updated"})
	})

	return app
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager(testSecret, time.Hour)
	repo := &fakeUserRepo{byID: map[string]*domain.User{
		"id-alice": {ID: "id-alice", Username: "alice"},
	}}
	app := newTestApp(t, tm, repo)

	aliceToken, _, err := tm.GenerateToken("id-alice")
	require.NoError(t, err)
	ghostToken, _, err := tm.GenerateToken("id-ghost")
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", authHeader: "Basic " + aliceToken, wantStatus: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer not.a.jwt", wantStatus: http.StatusUnauthorized},
		{name: "deleted principal", authHeader: "Bearer " + ghostToken, wantStatus: http.StatusUnauthorized},
		{name: "valid token", authHeader: "Bearer " + aliceToken, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestRequireSelf(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager(testSecret, time.Hour)
	repo := &fakeUserRepo{byID: map[string]*domain.User{
		"id-alice": {ID: "id-alice", Username: "alice"},
		"id-bob":   {ID: "id-bob", Username: "bob"},
	}}
	app := newTestApp(t, tm, repo)

	bobToken, _, err := tm.GenerateToken("id-bob")
	require.NoError(t, err)
	aliceToken, _, err := tm.GenerateToken("id-alice")
	require.NoError(t, err)

	// bob modifying alice's account is rejected before any handler logic
	req := httptest.NewRequest(http.MethodPut, "/users/alice", nil)
	req.Header.Set("Authorization", "Bearer "+bobToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPut, "/users/alice", nil)
	req.Header.Set("Authorization", "Bearer "+aliceToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
