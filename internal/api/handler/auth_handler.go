package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"aspire_system/internal/api/middleware"
	"aspire_system/internal/app/service"
	"aspire_system/internal/common"
	"aspire_system/internal/common/security"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	authService *service.AuthService
	tokens      *security.TokenService
}

func NewAuthHandler(authService *service.AuthService, tokens *security.TokenService) *AuthHandler {
	return &AuthHandler{authService: authService, tokens: tokens}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/login", h.login)
	r.Post("/logout", h.logout)
	r.Get("/me", h.me)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.authService.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			// No body and no cookie: nothing discloses which check failed.
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		common.RespondWithError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	http.SetCookie(w, h.tokens.AuthCookie(token))
	common.RespondWithJSON(w, http.StatusOK, user.Detail())
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.tokens.LogoutCookie())
	w.WriteHeader(http.StatusOK)
}

func (h *AuthHandler) me(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Re-fetch by id: the record may have been deleted since issuance.
	user, err := h.authService.CurrentUser(r.Context(), principal.ID)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user.Detail())
}
