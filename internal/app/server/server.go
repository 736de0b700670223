package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/akraev/reposhare/internal/app/handler"
	"github.com/akraev/reposhare/internal/app/service"
	"github.com/akraev/reposhare/internal/middleware"
)

// Init wires the router: the public share view and ping, the OAuth
// exchange, the session-guarded link management API and the
// subnet-guarded system stats.
func Init(logger *zap.Logger, withGzip bool, linkService service.LinkServiceIface, auth service.AuthIface, github service.GitHubIface, trustedSubnet string) *chi.Mux {
	getHandler := handler.NewGet(linkService, logger)
	postHandler := handler.NewPost(linkService, logger)
	deleteHandler := handler.NewDelete(linkService, logger)
	authHandler := handler.NewAuth(auth, github, logger)

	r := chi.NewRouter()
	r.Use(middleware.WithRequestLogging(logger))
	if withGzip {
		r.Use(middleware.WithGZIP)
	}

	// Public surface: third parties resolve shares without a session.
	r.Get("/share/{id}", getHandler.ShareView)
	r.Get("/ping", getHandler.PingStore)
	r.Post("/api/auth/github", authHandler.GitHubLogin)

	// Owner surface.
	r.Group(func(r chi.Router) {
		r.Use(middleware.WithJWT(auth))

		r.Get("/api/repositories", authHandler.Repositories)
		r.Post("/api/links", postHandler.CreateLink)
		r.Get("/api/links", getHandler.LinksByOwner)
		r.Get("/api/links/{id}/stats", getHandler.LinkStats)
		r.Post("/api/links/{id}/extend", postHandler.ExtendLink)
		r.Post("/api/links/{id}/deactivate", postHandler.DeactivateLink)
		r.Delete("/api/links/{id}", deleteHandler.DeleteLink)
	})

	// Operator surface.
	r.Group(func(r chi.Router) {
		r.Use(middleware.WithSubnet(trustedSubnet))

		r.Get("/api/internal/stats", getHandler.SystemStats)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
