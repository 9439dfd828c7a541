package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mitrokit/ventures-api/internal/api/dto"
	"github.com/mitrokit/ventures-api/internal/service"
	apperrors "github.com/mitrokit/ventures-api/pkg/util"
)

// AuthHandler exposes the login flow.
type AuthHandler struct {
	auth          *service.AuthService
	cookieName    string
	secureCookies bool
}

// NewAuthHandler constructs handler. secureCookies should be true in
// production so the token cookie is only sent over TLS.
func NewAuthHandler(authService *service.AuthService, cookieName string, secureCookies bool) *AuthHandler {
	return &AuthHandler{auth: authService, cookieName: cookieName, secureCookies: secureCookies}
}

// Login handles POST /api/auth/login. On success the token is returned in
// the body and mirrored into an HttpOnly cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password are required", nil)
	}

	user, token, exp, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		MaxAge:   int(time.Until(exp).Seconds()),
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{
		"success": true,
		"data": dto.LoginData{
			User:      dto.NewUserPayload(user),
			Token:     token,
			ExpiresAt: exp,
		},
	})
}

// Logout handles POST /api/auth/logout by clearing the token cookie. Tokens
// themselves are stateless and stay valid until expiry.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"success": true})
}

// LoginPage handles GET /login, the target of gate redirects. The service
// renders no HTML; this documents where credentials go and preserves the
// return path.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message":  "POST email and password to /api/auth/login",
		"redirect": c.Query("redirect"),
	})
}
