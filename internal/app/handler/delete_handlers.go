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
)

type DeleteHandler struct {
	linkService service.LinkServiceIface
	logger      *zap.Logger
}

func NewDelete(s service.LinkServiceIface, l *zap.Logger) *DeleteHandler {
	return &DeleteHandler{
		linkService: s,
		logger:      l,
	}
}

// DeleteLink removes a link and its index entry. Only the owner may
// delete; not-found and forbidden answer distinct statuses.
func (h *DeleteHandler) DeleteLink(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	userID, ok := req.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		http.Error(res, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	linkID := chi.URLParam(req, "id")
	ok, err := h.linkService.DeleteLink(ctx, linkID, userID)
	if !ok {
		switch {
		case errors.Is(err, service.ErrLinkNotFound):
			http.Error(res, "link not found", http.StatusNotFound)
		case errors.Is(err, service.ErrNotOwner):
			http.Error(res, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		default:
			h.logger.Error("cannot delete link", zap.Error(err))
			http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	res.WriteHeader(http.StatusNoContent)
}
