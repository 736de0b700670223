package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/akraev/reposhare/internal/app/service"
	"github.com/akraev/reposhare/internal/middleware"
)

type AuthHandler struct {
	auth   service.AuthIface
	github service.GitHubIface
	logger *zap.Logger
}

func NewAuth(auth service.AuthIface, github service.GitHubIface, l *zap.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		github: github,
		logger: l,
	}
}

// GitHubLogin exchanges the OAuth authorization code for a GitHub
// token, resolves the user behind it and sets the session cookie.
func (h *AuthHandler) GitHubLogin(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 15*time.Second)
	defer cancel()

	var request struct {
		Code string `json:"code"`
	}

	err := decodeJSONBody(res, req, &request)
	if err != nil {
		var mr *malformedRequest
		if errors.As(err, &mr) {
			http.Error(res, mr.msg, mr.status)
			return
		}
		h.logger.Error(err.Error())
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if request.Code == "" {
		http.Error(res, "authorization code is required", http.StatusBadRequest)
		return
	}

	token, err := h.github.ExchangeCode(ctx, request.Code)
	if err != nil {
		h.logger.Info("code exchange rejected", zap.Error(err))
		http.Error(res, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.github.FetchUser(ctx, token)
	if err != nil {
		h.logger.Error("cannot fetch user", zap.Error(err))
		http.Error(res, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		return
	}

	tokenString, err := h.auth.BuildJWTString(service.SessionUser{
		Login:       user.Login,
		Name:        user.Name,
		GitHubToken: token,
	})
	if err != nil {
		res.WriteHeader(http.StatusInternalServerError)
		return
	}

	http.SetCookie(res, &http.Cookie{
		Name:     "token",
		Value:    tokenString,
		Expires:  time.Now().Add(service.TokenExp),
		HttpOnly: true,
		Path:     "/",
	})

	writeJSON(res, http.StatusOK, map[string]string{
		"login": user.Login,
		"name":  user.Name,
	})
}

// Repositories proxies the owner's current repository list from GitHub
// using the token stored in the session.
func (h *AuthHandler) Repositories(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 30*time.Second)
	defer cancel()

	claims, ok := req.Context().Value(middleware.ClaimsKey).(*service.Claims)
	if !ok {
		http.Error(res, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	repos, err := h.github.FetchRepositories(ctx, claims.GitHubToken)
	if err != nil {
		h.logger.Error("cannot fetch repositories", zap.Error(err))
		http.Error(res, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		return
	}

	writeJSON(res, http.StatusOK, repos)
}
