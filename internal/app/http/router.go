package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/app/config"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/app/http/handlers"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/app/http/middleware"
)

func NewRouter(cfg config.Config, h *handlers.Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.InternalAuth(cfg.InternalToken))

			r.Post("/concierge/message", h.ConciergeMessage)
			r.Post("/concierge/lookbook", h.CreateLookbook)
		})
	})

	return r
}
