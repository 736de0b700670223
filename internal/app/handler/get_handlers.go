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

type GetHandler struct {
	linkService service.LinkServiceIface
	logger      *zap.Logger
}

func NewGet(s service.LinkServiceIface, l *zap.Logger) *GetHandler {
	return &GetHandler{
		linkService: s,
		logger:      l,
	}
}

// ShareView serves the public snapshot behind /share/{id}. A successful
// view counts as one access; expired links answer 410 and stay dead.
func (h *GetHandler) ShareView(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	linkID := chi.URLParam(req, "id")
	result := h.linkService.ValidateLink(ctx, linkID)

	if !result.Valid {
		switch result.Reason {
		case service.ReasonNotFound:
			writeJSON(res, http.StatusNotFound, models.ShareErrorResponse{Error: string(result.Reason)})
		case service.ReasonExpired, service.ReasonDeactivated:
			writeJSON(res, http.StatusGone, models.ShareErrorResponse{Error: string(result.Reason)})
		default:
			res.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	writeJSON(res, http.StatusOK, models.ShareViewResponse{
		OwnerName:       result.Link.OwnerName,
		Repositories:    result.Link.Repositories,
		ExpiresAt:       result.Link.ExpiresAt,
		TimeRemainingMS: result.TimeRemaining.Milliseconds(),
	})
}

// LinksByOwner lists the session owner's active links, newest first.
func (h *GetHandler) LinksByOwner(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	userID, ok := req.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		http.Error(res, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	links, err := h.linkService.LinksByOwner(ctx, userID)
	if err != nil {
		h.logger.Error("cannot list links", zap.Error(err))
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	views := make([]models.LinkView, 0, len(links))
	for i := range links {
		views = append(views, linkView(&links[i]))
	}

	writeJSON(res, http.StatusOK, views)
}

// LinkStats reports a link's counters to its owner without counting as
// an access. Non-owners get 403, never the counters.
func (h *GetHandler) LinkStats(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	userID, ok := req.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		http.Error(res, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	linkID := chi.URLParam(req, "id")
	stats, err := h.linkService.LinkStats(ctx, linkID, userID)
	if errors.Is(err, service.ErrLinkNotFound) {
		http.Error(res, "link not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, service.ErrNotOwner) {
		http.Error(res, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	if err != nil {
		h.logger.Error("cannot read link stats", zap.Error(err))
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(res, http.StatusOK, models.LinkStatsResponse{
		AccessCount:     stats.AccessCount,
		TimeRemainingMS: stats.TimeRemaining.Milliseconds(),
		IsActive:        stats.IsActive,
		CreatedAt:       stats.CreatedAt,
		ExpiresAt:       stats.ExpiresAt,
		LastAccessedAt:  stats.LastAccessedAt,
	})
}

// SystemStats reports store-wide counters.
func (h *GetHandler) SystemStats(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	stats, err := h.linkService.SystemStats(ctx)
	if err != nil {
		h.logger.Error("cannot read system stats", zap.Error(err))
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(res, http.StatusOK, models.SystemStatsResponse{
		TotalLinks:    stats.TotalLinks,
		ActiveLinks:   stats.ActiveLinks,
		ExpiredLinks:  stats.ExpiredLinks,
		TotalAccesses: stats.TotalAccesses,
	})
}

// PingStore reports storage health.
func (h *GetHandler) PingStore(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	if err := h.linkService.PingContext(ctx); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.WriteHeader(http.StatusOK)
}
