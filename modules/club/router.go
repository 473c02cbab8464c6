package club

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/clubhouse/handler"
	"github.com/dmitrymomot/clubhouse/pkg/httpserver"
	"github.com/dmitrymomot/clubhouse/pkg/requestid"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures which resources to mount. Each resource is
// optional and only mounted if provided.
type RouterOptions struct {
	Members       Mountable
	Sports        Mountable
	Subscriptions Mountable

	// Probes back /health/ready; /health/live is always mounted.
	Probes []httpserver.Probe
	Logger *slog.Logger
	// ErrorHandler renders unmatched routes. Defaults to the handler
	// package default.
	ErrorHandler handler.ErrorHandler[handler.Context]
}

// Router builds the API router. Every request gets an X-Request-ID.
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)

	r.NotFound(handler.Wrap(
		func(handler.Context, struct{}) handler.Response { return handler.Error(handler.ErrNotFound) },
		handler.WithErrorHandler[handler.Context, struct{}](opts.ErrorHandler),
	))
	r.MethodNotAllowed(handler.Wrap(
		func(handler.Context, struct{}) handler.Response { return handler.Error(handler.ErrMethodNotAllowed) },
		handler.WithErrorHandler[handler.Context, struct{}](opts.ErrorHandler),
	))

	r.Route("/health", func(health chi.Router) {
		health.Get("/live", httpserver.LivenessHandler())
		health.Get("/ready", httpserver.ReadinessHandler(opts.Logger, opts.Probes...))
	})

	if opts.Members != nil {
		r.Mount("/members", opts.Members.Handle())
	}
	if opts.Sports != nil {
		r.Mount("/sports", opts.Sports.Handle())
	}
	if opts.Subscriptions != nil {
		r.Mount("/subscriptions", opts.Subscriptions.Handle())
	}

	return r
}
