package security

import (
	"strings"
	"testing"
	"time"

	"aspire_system/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *model.User {
	return &model.User{
		ID:       42,
		Username: "alice",
		Email:    "alice@example.com",
	}
}

func TestTokenService_IssueValidate(t *testing.T) {
	s := NewTokenService([]byte("test-secret"), time.Hour, "auth_token")

	token, err := s.Issue(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.True(t, s.Validate(token))
}

func TestTokenService_ClaimsRoundtrip(t *testing.T) {
	s := NewTokenService([]byte("test-secret"), time.Hour, "auth_token")
	user := testUser()

	token, err := s.Issue(user)
	require.NoError(t, err)

	claims, err := s.DecodeClaims(token)
	require.NoError(t, err)
	assert.Equal(t, user.Username, claims.Subject)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenService_ExpiredToken(t *testing.T) {
	// Negative lifetime issues a token that is already expired.
	s := NewTokenService([]byte("test-secret"), -time.Minute, "auth_token")

	token, err := s.Issue(testUser())
	require.NoError(t, err)

	assert.False(t, s.Validate(token))
	_, err = s.DecodeClaims(token)
	assert.Error(t, err)
}

func TestTokenService_WrongKey(t *testing.T) {
	issuer := NewTokenService([]byte("key-one"), time.Hour, "auth_token")
	verifier := NewTokenService([]byte("key-two"), time.Hour, "auth_token")

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	assert.False(t, verifier.Validate(token))
}

func TestTokenService_TamperedToken(t *testing.T) {
	s := NewTokenService([]byte("test-secret"), time.Hour, "auth_token")

	token, err := s.Issue(testUser())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + ".eyJzdWIiOiJtYWxsb3J5In0." + parts[2]

	assert.False(t, s.Validate(tampered))
	assert.False(t, s.Validate("not-a-token"))
	assert.False(t, s.Validate(""))
}

func TestTokenService_AuthCookie(t *testing.T) {
	s := NewTokenService([]byte("test-secret"), 2*time.Hour, "session")

	cookie := s.AuthCookie("tok123")
	assert.Equal(t, "session", cookie.Name)
	assert.Equal(t, "tok123", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 7200, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.Contains(t, cookie.String(), "SameSite=Lax")
}

func TestTokenService_LogoutCookie(t *testing.T) {
	s := NewTokenService([]byte("test-secret"), 2*time.Hour, "session")

	cookie := s.LogoutCookie()
	assert.Equal(t, "session", cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	// MaxAge<0 serializes as Max-Age=0, expiring the cookie immediately.
	assert.Contains(t, cookie.String(), "Max-Age=0")
}
