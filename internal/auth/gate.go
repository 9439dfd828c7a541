package auth

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/mitrokit/ventures-api/pkg/util"
)

// RouteGate is the first-line request interceptor. It allows public paths
// outright, gates declared protected prefixes, and fails open for everything
// else. The gate performs full signature verification rather than trusting a
// bare payload decode; it remains advisory — protected handlers still run
// the authenticator themselves.
type RouteGate struct {
	tokens     *TokenManager
	cookieName string
	loginPath  string
	public     []string
	protected  []string
}

// NewRouteGate constructs a gate over statically declared path prefix sets.
func NewRouteGate(tokens *TokenManager, cookieName string, public, protected []string) *RouteGate {
	return &RouteGate{
		tokens:     tokens,
		cookieName: cookieName,
		loginPath:  "/login",
		public:     public,
		protected:  protected,
	}
}

// Handle intercepts each inbound request before routing. Protected page
// paths without a valid token redirect to the login page carrying the
// original path; protected API paths reject with 401.
func (g *RouteGate) Handle(c *fiber.Ctx) error {
	path := c.Path()

	if matchesPrefix(path, g.public) {
		return c.Next()
	}
	if !matchesPrefix(path, g.protected) {
		// Ordinary content routes are not gated.
		return c.Next()
	}

	token := BearerToken(c.Get(fiber.HeaderAuthorization))
	if token == "" {
		token = c.Cookies(g.cookieName)
	}

	if token != "" {
		if _, err := g.tokens.Verify(token); err == nil {
			return c.Next()
		}
	}

	if strings.HasPrefix(path, "/api/") {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.Redirect(g.loginRedirect(path), fiber.StatusFound)
}

func (g *RouteGate) loginRedirect(returnPath string) string {
	query := url.Values{}
	query.Set("redirect", returnPath)
	return g.loginPath + "?" + query.Encode()
}

func matchesPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
