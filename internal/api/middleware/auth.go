package middleware

import (
	"context"
	"net/http"

	"aspire_system/internal/common/security"
	"aspire_system/internal/domain/model"
	"aspire_system/internal/domain/repository"
)

type contextKey string

const principalCtxKey contextKey = "principal"

// Authenticator resolves the caller's identity from the token cookie.
// Exactly one resolution attempt happens per request; a missing, invalid
// or expired token leaves the request anonymous and processing continues.
// Rejecting anonymous callers is the access policy's job, not this one's.
type Authenticator struct {
	tokens   *security.TokenService
	userRepo repository.UserRepository
}

func NewAuthenticator(tokens *security.TokenService, userRepo repository.UserRepository) *Authenticator {
	return &Authenticator{tokens: tokens, userRepo: userRepo}
}

func (a *Authenticator) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(a.tokens.CookieName())
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		if !a.tokens.Validate(cookie.Value) {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := a.tokens.DecodeClaims(cookie.Value)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		user, err := a.userRepo.FindByUsername(r.Context(), claims.Subject)
		if err != nil {
			// Token outlived the user record; treat as anonymous.
			next.ServeHTTP(w, r)
			return
		}

		ctx := withPrincipal(r.Context(), model.NewPrincipal(user))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func withPrincipal(ctx context.Context, p *model.Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey, p)
}

// PrincipalFromContext returns the authenticated principal for this
// request, if one was resolved.
func PrincipalFromContext(ctx context.Context) (*model.Principal, bool) {
	p, ok := ctx.Value(principalCtxKey).(*model.Principal)
	return p, ok
}
