package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitrokit/ventures-api/internal/domain"
)

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", BearerToken("Bearer abc"))
	assert.Equal(t, "abc", BearerToken("bearer abc"))
	assert.Equal(t, "", BearerToken(""))
	assert.Equal(t, "", BearerToken("Basic abc"))
	assert.Equal(t, "", BearerToken("Bearer"))
}

func TestAuthenticator_HeaderPrecedence(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	authenticator := NewAuthenticator(tm, "token")

	headerToken, _, err := tm.Issue(&domain.User{ID: "1", Email: "a@mitrokit.com", Role: domain.RoleAdmin})
	require.NoError(t, err)
	cookieToken, _, err := tm.Issue(&domain.User{ID: "2", Email: "b@mitrokit.com", Role: domain.RoleUser})
	require.NoError(t, err)

	principal := authenticator.Authenticate("Bearer "+headerToken, cookieToken)
	require.NotNil(t, principal)
	assert.Equal(t, "1", principal.ID)
}

func TestAuthenticator_CookieFallback(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	authenticator := NewAuthenticator(tm, "token")

	cookieToken, _, err := tm.Issue(&domain.User{ID: "2", Email: "b@mitrokit.com", Role: domain.RoleUser})
	require.NoError(t, err)

	// No header at all.
	principal := authenticator.Authenticate("", cookieToken)
	require.NotNil(t, principal)
	assert.Equal(t, "2", principal.ID)

	// Malformed header falls back to the cookie.
	principal = authenticator.Authenticate("Token something", cookieToken)
	require.NotNil(t, principal)
	assert.Equal(t, "2", principal.ID)
}

func TestAuthenticator_Failures(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	authenticator := NewAuthenticator(tm, "token")

	assert.Nil(t, authenticator.Authenticate("", ""))
	assert.Nil(t, authenticator.Authenticate("Bearer garbage", ""))
	assert.Nil(t, authenticator.Authenticate("", "garbage"))

	other := NewTokenManager("other-secret", time.Hour)
	foreign, _, err := other.Issue(&domain.User{ID: "1", Email: "a@mitrokit.com", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Nil(t, authenticator.Authenticate("Bearer "+foreign, ""))
}
