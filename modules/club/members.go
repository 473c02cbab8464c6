package club

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/clubhouse/handler"
	"github.com/dmitrymomot/clubhouse/pkg/binder"
	"github.com/dmitrymomot/clubhouse/svc/member"
)

// Members serves /members.
type Members struct {
	svc          member.Service
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewMembers panics on nil svc. A nil errorHandler falls back to the
// handler package default.
func NewMembers(svc member.Service, errorHandler handler.ErrorHandler[handler.Context]) *Members {
	if svc == nil {
		panic("club: member service is required")
	}
	return &Members{svc: svc, errorHandler: errorHandler}
}

type memberIDRequest struct {
	ID string `path:"id"`
}

type updateMemberRequest struct {
	ID string `path:"id" json:"-"`
	member.UpdateInput
}

func (h *Members) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/", handler.Wrap(h.create,
		handler.WithBinders[handler.Context, member.CreateInput](binder.JSON()),
		handler.WithErrorHandler[handler.Context, member.CreateInput](h.errorHandler),
	))
	r.Get("/", handler.Wrap(h.list,
		handler.WithErrorHandler[handler.Context, struct{}](h.errorHandler),
	))
	r.Get("/{id}", handler.Wrap(h.get,
		handler.WithBinders[handler.Context, memberIDRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, memberIDRequest](h.errorHandler),
	))
	r.Patch("/{id}", handler.Wrap(h.update,
		handler.WithBinders[handler.Context, updateMemberRequest](
			binder.Path(chi.URLParam),
			binder.JSON(),
		),
		handler.WithErrorHandler[handler.Context, updateMemberRequest](h.errorHandler),
	))
	r.Delete("/{id}", handler.Wrap(h.remove,
		handler.WithBinders[handler.Context, memberIDRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, memberIDRequest](h.errorHandler),
	))

	return r
}

func (h *Members) create(ctx handler.Context, req member.CreateInput) handler.Response {
	m, err := h.svc.Create(ctx, req)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(m, handler.WithJSONStatus(http.StatusCreated))
}

func (h *Members) list(ctx handler.Context, _ struct{}) handler.Response {
	members, err := h.svc.FindAll(ctx)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(members)
}

func (h *Members) get(ctx handler.Context, req memberIDRequest) handler.Response {
	m, err := h.svc.FindOne(ctx, req.ID)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(m)
}

func (h *Members) update(ctx handler.Context, req updateMemberRequest) handler.Response {
	m, err := h.svc.Update(ctx, req.ID, req.UpdateInput)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(m)
}

func (h *Members) remove(ctx handler.Context, req memberIDRequest) handler.Response {
	msg, err := h.svc.Remove(ctx, req.ID)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(messageResponse{Message: msg})
}
