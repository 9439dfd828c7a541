package auth

import (
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitrokit/ventures-api/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    "1",
		Email: "admin@mitrokit.com",
		Name:  "Mwaki Denis",
		Role:  domain.RoleAdmin,
	}
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 24*time.Hour)

	token, exp, err := tm.Issue(testUser())
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.UserID)
	assert.Equal(t, "admin@mitrokit.com", claims.Email)
	assert.Equal(t, "Mwaki Denis", claims.Name)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestTokenManager_TamperedSignature(t *testing.T) {
	tm := NewTokenManager("test-secret", 24*time.Hour)

	token, _, err := tm.Issue(testUser())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = tm.Verify(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 24*time.Hour)
	verifier := NewTokenManager("secret-b", 24*time.Hour)

	token, _, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager("test-secret", 24*time.Hour)

	claims := &Claims{
		UserID: "1",
		Email:  "admin@mitrokit.com",
		Role:   domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
	require.NoError(t, err)

	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_Malformed(t *testing.T) {
	tm := NewTokenManager("test-secret", 24*time.Hour)

	for _, input := range []string{"", "garbage", "a.b", "a.b.c.d", "not base64 at all!!"} {
		_, err := tm.Verify(input)
		assert.ErrorIs(t, err, ErrTokenMalformed, "input %q", input)
	}
}

func TestTokenManager_RejectsWrongSigningMethod(t *testing.T) {
	tm := NewTokenManager("test-secret", 24*time.Hour)

	claims := &Claims{
		UserID: "1",
		Role:   domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(tm.secret)
	require.NoError(t, err)

	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_RejectsUnknownRole(t *testing.T) {
	tm := NewTokenManager("test-secret", 24*time.Hour)

	claims := &Claims{
		UserID: "1",
		Email:  "admin@mitrokit.com",
		Role:   domain.Role("ROOT"),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
	require.NoError(t, err)

	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
