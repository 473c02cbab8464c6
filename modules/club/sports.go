package club

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/clubhouse/handler"
	"github.com/dmitrymomot/clubhouse/pkg/binder"
	"github.com/dmitrymomot/clubhouse/svc/sport"
)

// Sports serves /sports.
type Sports struct {
	svc          sport.Service
	errorHandler handler.ErrorHandler[handler.Context]
	// cacheControl lets clients and proxies reuse the listing for as long
	// as the server-side cache would.
	cacheControl string
}

type SportsOption func(*Sports)

// WithCatalogMaxAge aligns the listing's Cache-Control max-age with the
// catalog cache TTL. Non-positive values keep the default.
func WithCatalogMaxAge(ttl time.Duration) SportsOption {
	return func(s *Sports) {
		if ttl > 0 {
			s.cacheControl = cacheControl(ttl)
		}
	}
}

func NewSports(svc sport.Service, errorHandler handler.ErrorHandler[handler.Context], opts ...SportsOption) *Sports {
	if svc == nil {
		panic("club: sport service is required")
	}
	s := &Sports{
		svc:          svc,
		errorHandler: errorHandler,
		cacheControl: cacheControl(sport.DefaultCacheTTL),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func cacheControl(ttl time.Duration) string {
	return fmt.Sprintf("public, max-age=%d", int64(ttl/time.Second))
}

type sportIDRequest struct {
	ID string `path:"id"`
}

type updateSportRequest struct {
	ID string `path:"id" json:"-"`
	sport.UpdateInput
}

func (h *Sports) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/", handler.Wrap(h.create,
		handler.WithBinders[handler.Context, sport.CreateInput](binder.JSON()),
		handler.WithErrorHandler[handler.Context, sport.CreateInput](h.errorHandler),
	))
	r.Get("/", handler.Wrap(h.list,
		handler.WithErrorHandler[handler.Context, struct{}](h.errorHandler),
	))
	r.Get("/{id}", handler.Wrap(h.get,
		handler.WithBinders[handler.Context, sportIDRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, sportIDRequest](h.errorHandler),
	))
	r.Patch("/{id}", handler.Wrap(h.update,
		handler.WithBinders[handler.Context, updateSportRequest](
			binder.Path(chi.URLParam),
			binder.JSON(),
		),
		handler.WithErrorHandler[handler.Context, updateSportRequest](h.errorHandler),
	))
	r.Delete("/{id}", handler.Wrap(h.remove,
		handler.WithBinders[handler.Context, sportIDRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, sportIDRequest](h.errorHandler),
	))

	return r
}

func (h *Sports) create(ctx handler.Context, req sport.CreateInput) handler.Response {
	s, err := h.svc.Create(ctx, req)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(s, handler.WithJSONStatus(http.StatusCreated))
}

func (h *Sports) list(ctx handler.Context, _ struct{}) handler.Response {
	sports, err := h.svc.FindAll(ctx)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(sports, handler.WithJSONHeader("Cache-Control", h.cacheControl))
}

func (h *Sports) get(ctx handler.Context, req sportIDRequest) handler.Response {
	s, err := h.svc.FindOne(ctx, req.ID)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(s)
}

func (h *Sports) update(ctx handler.Context, req updateSportRequest) handler.Response {
	s, err := h.svc.Update(ctx, req.ID, req.UpdateInput)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(s)
}

func (h *Sports) remove(ctx handler.Context, req sportIDRequest) handler.Response {
	s, err := h.svc.Remove(ctx, req.ID)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(s)
}
