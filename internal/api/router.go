package api

import (
	"net/http"
	"time"

	"aspire_system/internal/api/handler"
	"aspire_system/internal/api/middleware"
	"aspire_system/internal/app/service"
	"aspire_system/internal/common/security"
	"aspire_system/internal/domain/repository"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// AccessPolicy is the ordered access-control rule list, evaluated first
// match wins: auth endpoints are public, the rest of the API requires a
// principal, everything else (health etc.) is open.
func AccessPolicy() []middleware.AccessRule {
	return []middleware.AccessRule{
		{Pattern: "/api/auth/**", RequireAuth: false},
		{Pattern: "/api/**", RequireAuth: true},
		{Pattern: "/**", RequireAuth: false},
	}
}

func NewRouter(
	authService *service.AuthService,
	userService *service.UserService,
	tokens *security.TokenService,
	userRepo repository.UserRepository,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Identity resolution runs on every request; the policy decides which
	// paths actually require it.
	authenticator := middleware.NewAuthenticator(tokens, userRepo)
	r.Use(authenticator.Handler)
	r.Use(middleware.EnforcePolicy(AccessPolicy()))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(api chi.Router) {
		authHandler := handler.NewAuthHandler(authService, tokens)
		api.Route("/auth", authHandler.RegisterRoutes)

		userHandler := handler.NewUserHandler(userService)
		api.Route("/users", userHandler.RegisterRoutes)
	})

	return r
}
