package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/akraev/reposhare/internal/app/service"
	"github.com/akraev/reposhare/internal/middleware"
	"github.com/akraev/reposhare/internal/models"
)

type PostHandler struct {
	linkService service.LinkServiceIface
	logger      *zap.Logger
}

func NewPost(s service.LinkServiceIface, l *zap.Logger) *PostHandler {
	return &PostHandler{
		linkService: s,
		logger:      l,
	}
}

// CreateLink mints a shareable link from the submitted repository list.
func (h *PostHandler) CreateLink(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	claims, ok := req.Context().Value(middleware.ClaimsKey).(*service.Claims)
	if !ok {
		http.Error(res, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.CreateLinkRequest
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

	record, url, err := h.linkService.CreateLink(ctx, claims.UserID, claims.DisplayName,
		request.Repositories, request.IncludePrivate, request.DurationHours)
	if errors.Is(err, service.ErrInvalidDuration) {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.Error("cannot create link", zap.Error(err))
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(res, http.StatusCreated, models.CreateLinkResponse{
		Result: url,
		Link:   linkView(record),
	})
}

// ExtendLink pushes a link's expiry forward for its owner.
func (h *PostHandler) ExtendLink(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	userID, ok := req.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		http.Error(res, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.ExtendLinkRequest
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

	linkID := chi.URLParam(req, "id")
	ok, err = h.linkService.ExtendLink(ctx, linkID, request.AdditionalHours, userID)
	if !ok {
		switch {
		case errors.Is(err, service.ErrLinkNotFound):
			http.Error(res, "link not found", http.StatusNotFound)
		case errors.Is(err, service.ErrNotOwner):
			http.Error(res, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		case errors.Is(err, service.ErrLinkInactive):
			http.Error(res, "link is no longer active", http.StatusConflict)
		case errors.Is(err, service.ErrInvalidDuration):
			http.Error(res, err.Error(), http.StatusBadRequest)
		default:
			h.logger.Error("cannot extend link", zap.Error(err))
			http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	res.WriteHeader(http.StatusOK)
}

// DeactivateLink soft-deletes a link: it stops resolving but stays in
// the store until the next sweep.
func (h *PostHandler) DeactivateLink(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	linkID := chi.URLParam(req, "id")
	ok, err := h.linkService.DeactivateLink(ctx, linkID)
	if !ok {
		if errors.Is(err, service.ErrLinkNotFound) {
			http.Error(res, "link not found", http.StatusNotFound)
			return
		}
		h.logger.Error("cannot deactivate link", zap.Error(err))
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	res.WriteHeader(http.StatusOK)
}
