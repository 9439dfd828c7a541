package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mitrokit/ventures-api/internal/domain"
	apperrors "github.com/mitrokit/ventures-api/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller as derived from verified
// token claims.
type Principal struct {
	ID    string
	Email string
	Name  string
	Role  domain.Role
}

// Authenticator derives a caller identity from request credential fields.
type Authenticator struct {
	tokens     *TokenManager
	cookieName string
}

// NewAuthenticator constructs an authenticator backed by the token manager.
func NewAuthenticator(tokens *TokenManager, cookieName string) *Authenticator {
	return &Authenticator{tokens: tokens, cookieName: cookieName}
}

// BearerToken extracts the token from an Authorization header. It returns
// the empty string when the header is absent or not a Bearer scheme.
func BearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Authenticate resolves an identity from the raw header and cookie values.
// The bearer header takes precedence; the cookie is the fallback. Any
// failure (missing token, malformed header, failed verification) yields nil.
func (a *Authenticator) Authenticate(authHeader, cookieValue string) *Principal {
	token := BearerToken(authHeader)
	if token == "" {
		token = cookieValue
	}
	if token == "" {
		return nil
	}

	claims, err := a.tokens.Verify(token)
	if err != nil {
		return nil
	}
	return &Principal{
		ID:    claims.UserID,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  claims.Role,
	}
}

// Handle enforces authentication for protected routes. The resolved
// principal is stored on the request context for downstream handlers.
func (a *Authenticator) Handle(c *fiber.Ctx) error {
	principal := a.Authenticate(c.Get(fiber.HeaderAuthorization), c.Cookies(a.cookieName))
	if principal == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	c.Locals(principalKey, principal)
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
