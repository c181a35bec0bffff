package middleware

import (
	"net/http"
	"strings"

	"aspire_system/internal/common"
)

// AccessRule pairs a path pattern with an authentication requirement.
// A pattern ending in "/**" matches the path prefix; anything else
// matches exactly.
type AccessRule struct {
	Pattern     string
	RequireAuth bool
}

func (rule AccessRule) matches(path string) bool {
	if strings.HasSuffix(rule.Pattern, "/**") {
		prefix := strings.TrimSuffix(rule.Pattern, "**")
		return path == strings.TrimSuffix(prefix, "/") || strings.HasPrefix(path, prefix)
	}
	return path == rule.Pattern
}

// EnforcePolicy evaluates the rules in order against the request path;
// the first match wins. A matched rule requiring authentication rejects
// requests without a resolved principal. An unmatched path is allowed.
func EnforcePolicy(rules []AccessRule) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, rule := range rules {
				if !rule.matches(r.URL.Path) {
					continue
				}
				if rule.RequireAuth {
					if _, ok := PrincipalFromContext(r.Context()); !ok {
						common.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
						return
					}
				}
				break
			}
			next.ServeHTTP(w, r)
		})
	}
}
