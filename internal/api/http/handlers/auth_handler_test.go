package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/myflix-service/internal/config"
	"github.com/spec-kit/myflix-service/internal/domain"
	"github.com/spec-kit/myflix-service/internal/ratelimit"
	"github.com/spec-kit/myflix-service/internal/service"
	apperrors "github.com/spec-kit/myflix-service/pkg/util"
)

type stubUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
	seq   int
}

func (s *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	user.ID = fmt.Sprintf("user-%d", s.seq)
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *stubUserRepo) Update(context.Context, *domain.User) error        { return nil }
func (s *stubUserRepo) Delete(context.Context, string) error              { return nil }
func (s *stubUserRepo) AddFavorite(context.Context, string, string) error { return nil }
func (s *stubUserRepo) RemoveFavorite(context.Context, string, string) error {
	return nil
}

func (s *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.users[id]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *stubUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func newLoginTestApp(t *testing.T) (*fiber.App, *service.AuthService) {
	t.Helper()

	repo := &stubUserRepo{users: make(map[string]*domain.User)}
	authService := service.NewAuthService(config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenTTLHours: 1,
		BcryptCost:    bcrypt.MinCost,
	}, repo, nil)

	limiter := ratelimit.NewLoginLimiter(nil, 10, time.Minute, zap.NewNop())
	handler := NewAuthHandler(authService, limiter, zap.NewNop())

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"code": domainErr.Code})
		},
	})
	app.Post("/login", handler.Login)

	_, err := authService.Register(context.Background(), service.RegisterInput{
		Username: "nina1",
		Password: "correct",
		Email:    "nina@example.com",
	})
	require.NoError(t, err)

	return app, authService
}

func postLogin(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	app, authService := newLoginTestApp(t)
	resp := postLogin(t, app, `{"Username":"nina1","Password":"correct"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.NotEmpty(t, payload.Token)

	// the token decodes back to the logged-in user's identity key
	claims, err := authService.TokenManager().ParseToken(payload.Token)
	require.NoError(t, err)
	assert.Equal(t, payload.User.ID, claims.ID)
}

func TestLogin_BadCredentials(t *testing.T) {
	t.Parallel()

	app, _ := newLoginTestApp(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "wrong password", body: `{"Username":"nina1","Password":"wrong"}`},
		{name: "unknown username", body: `{"Username":"nobody","Password":"correct"}`},
		{name: "missing password", body: `{"Username":"nina1"}`},
		{name: "malformed body", body: `{"Username":`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp := postLogin(t, app, tt.body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var payload struct {
				Message string `json:"message"`
				Info    string `json:"info"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
			assert.Equal(t, "Invalid login credentials", payload.Message)
			assert.NotEmpty(t, payload.Info)
		})
	}
}
