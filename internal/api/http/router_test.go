package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mitrokit/ventures-api/internal/api/http/handlers"
	"github.com/mitrokit/ventures-api/internal/auth"
	"github.com/mitrokit/ventures-api/internal/config"
	"github.com/mitrokit/ventures-api/internal/events"
	"github.com/mitrokit/ventures-api/internal/github"
	"github.com/mitrokit/ventures-api/internal/observability"
	"github.com/mitrokit/ventures-api/internal/ratelimit"
	"github.com/mitrokit/ventures-api/internal/repository"
	"github.com/mitrokit/ventures-api/internal/service"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	authCfg := config.AuthConfig{
		JWTSecret:     testSecret,
		TokenTTLHours: 24,
		BcryptCost:    4,
		CookieName:    "token",
	}

	seed, err := repository.DemoUsers(authCfg.BcryptCost)
	require.NoError(t, err)
	userRepo := repository.NewMemoryUserRepository(seed)
	messageRepo := repository.NewMemoryMessageRepository()
	subscriberRepo := repository.NewMemorySubscriberRepository()

	limiter := ratelimit.NewMemoryLimiter(100, time.Minute)
	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(authCfg, userRepo, dispatcher)
	contactService := service.NewContactService(messageRepo, limiter, dispatcher)
	subscribeService := service.NewSubscribeService(subscriberRepo, limiter, dispatcher)

	authenticator := auth.NewAuthenticator(authService.TokenManager(), authCfg.CookieName)
	gate := auth.NewRouteGate(authService.TokenManager(), authCfg.CookieName, PublicPrefixes, ProtectedPrefixes)

	metrics := observability.NewMetrics()

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), metrics, 0)
	RegisterRoutes(app, RouteConfig{
		Health:        handlers.NewHealthHandler("test", "test", nil, nil),
		Auth:          handlers.NewAuthHandler(authService, authCfg.CookieName, false),
		Contact:       handlers.NewContactHandler(contactService),
		Subscribe:     handlers.NewSubscribeHandler(subscribeService),
		Repos:         handlers.NewReposHandler(github.NewClient(config.GitHubConfig{})),
		Admin:         handlers.NewAdminHandler(messageRepo, subscriberRepo, metrics),
		Gate:          gate,
		Authenticator: authenticator,
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
}

func loginAs(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	resp := postJSON(t, app, "/api/auth/login", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
			User  struct {
				Email string `json:"email"`
				Role  string `json:"role"`
			} `json:"user"`
		} `json:"data"`
	}
	decodeBody(t, resp, &body)
	require.True(t, body.Success)
	require.NotEmpty(t, body.Data.Token)
	return body.Data.Token
}

func TestLoginThenProtectedRequestAllowed(t *testing.T) {
	app := newTestApp(t)
	token := loginAs(t, app, "admin@mitrokit.com", "admin123")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The cookie path works too.
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginSetsCookie(t *testing.T) {
	app := newTestApp(t)
	resp := postJSON(t, app, "/api/auth/login", map[string]string{
		"email": "admin@mitrokit.com", "password": "admin123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tokenCookie *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "token" {
			tokenCookie = cookie
		}
	}
	require.NotNil(t, tokenCookie)
	assert.NotEmpty(t, tokenCookie.Value)
	assert.True(t, tokenCookie.HttpOnly)
	assert.Equal(t, "/", tokenCookie.Path)
	assert.Equal(t, http.SameSiteLaxMode, tokenCookie.SameSite)
}

func TestExpiredTokenRejected(t *testing.T) {
	app := newTestApp(t)

	claims := &auth.Claims{
		UserID: "1",
		Email:  "admin@mitrokit.com",
		Role:   "ADMIN",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: expired})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?redirect=%2Fadmin", resp.Header.Get("Location"))
}

func TestLoginWrongPasswordRejected(t *testing.T) {
	app := newTestApp(t)
	resp := postJSON(t, app, "/api/auth/login", map[string]string{
		"email": "admin@mitrokit.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
}

func TestPublicPathNeedsNoToken(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/login", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health/live", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestInsufficientRoleForbidden(t *testing.T) {
	app := newTestApp(t)
	token := loginAs(t, app, "demo@mitrokit.com", "demo123")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestContactSubmitAndAdminListing(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/contact", map[string]string{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"subject": "Project",
		"content": "I would like to discuss a project.",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var submitBody struct {
		Success bool `json:"success"`
		Data    struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	decodeBody(t, resp, &submitBody)
	assert.True(t, submitBody.Success)
	assert.NotEmpty(t, submitBody.Data.ID)

	token := loginAs(t, app, "admin@mitrokit.com", "admin123")
	req := httptest.NewRequest(http.MethodGet, "/api/admin/messages", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	listResp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var listBody struct {
		Data []struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	decodeBody(t, listResp, &listBody)
	require.Len(t, listBody.Data, 1)
	assert.Equal(t, "Jane Doe", listBody.Data[0].Name)
}

func TestContactValidationDetails(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/contact", map[string]string{"name": "J", "email": "bad", "content": "short"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Details struct {
				Errors []string `json:"errors"`
			} `json:"details"`
		} `json:"error"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Len(t, body.Error.Details.Errors, 3)
}

func TestSubscribeEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/subscribe", map[string]string{"email": "jane@example.com", "name": "Jane"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decodeBody(t, resp, &body)
	assert.True(t, body.Success)
	assert.Equal(t, "Successfully subscribed to newsletter!", body.Message)
}
