package security

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"aspire_system/internal/domain/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the payload carried by an identity token. The subject holds
// the username; the user's numeric id and email travel as private claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"id"`
	Email  string `json:"email"`
}

// TokenService issues and validates signed, time-limited identity tokens
// and builds the cookie that carries them. The signing key is read-only
// after construction, so concurrent use needs no synchronization.
type TokenService struct {
	key        []byte
	lifetime   time.Duration
	cookieName string
}

func NewTokenService(secret []byte, lifetime time.Duration, cookieName string) *TokenService {
	return &TokenService{key: secret, lifetime: lifetime, cookieName: cookieName}
}

// Issue signs a token for the user, valid for the configured lifetime.
func (s *TokenService) Issue(user *model.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
		UserID: user.ID,
		Email:  user.Email,
	})

	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate reports whether the token's signature verifies under the
// current key and its expiry has not passed. Any structural,
// cryptographic or expiry failure yields false.
func (s *TokenService) Validate(tokenString string) bool {
	_, err := s.parse(tokenString)
	return err == nil
}

// DecodeClaims verifies the token and returns its claims. Only meaningful
// for tokens that Validate accepts.
func (s *TokenService) DecodeClaims(tokenString string) (*Claims, error) {
	return s.parse(tokenString)
}

func (s *TokenService) parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return s.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}
	return claims, nil
}

func (s *TokenService) CookieName() string {
	return s.cookieName
}

// AuthCookie wraps a token in the authentication cookie. Secure is left
// off for plain-HTTP development; front it with TLS in production.
func (s *TokenService) AuthCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     s.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.lifetime / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// LogoutCookie carries the same attributes with an empty value and
// Max-Age=0 on the wire, expiring the cookie client-side immediately.
func (s *TokenService) LogoutCookie() *http.Cookie {
	return &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
