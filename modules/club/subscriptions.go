package club

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/clubhouse/handler"
	"github.com/dmitrymomot/clubhouse/pkg/binder"
	"github.com/dmitrymomot/clubhouse/svc/subscription"
)

// Subscriptions serves /subscriptions. Update and delete address a
// subscription by the composite key carried in the JSON body.
type Subscriptions struct {
	svc          subscription.Service
	errorHandler handler.ErrorHandler[handler.Context]
}

func NewSubscriptions(svc subscription.Service, errorHandler handler.ErrorHandler[handler.Context]) *Subscriptions {
	if svc == nil {
		panic("club: subscription service is required")
	}
	return &Subscriptions{svc: svc, errorHandler: errorHandler}
}

type byMemberRequest struct {
	MemberID string `path:"memberId"`
}

type bySportRequest struct {
	SportID string `path:"sportId"`
}

func (h *Subscriptions) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/", handler.Wrap(h.subscribe,
		handler.WithBinders[handler.Context, subscription.SubscribeInput](binder.JSON()),
		handler.WithErrorHandler[handler.Context, subscription.SubscribeInput](h.errorHandler),
	))
	r.Get("/", handler.Wrap(h.list,
		handler.WithErrorHandler[handler.Context, struct{}](h.errorHandler),
	))
	r.Get("/member/{memberId}", handler.Wrap(h.byMember,
		handler.WithBinders[handler.Context, byMemberRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, byMemberRequest](h.errorHandler),
	))
	r.Get("/sport/{sportId}", handler.Wrap(h.bySport,
		handler.WithBinders[handler.Context, bySportRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, bySportRequest](h.errorHandler),
	))
	r.Patch("/", handler.Wrap(h.update,
		handler.WithBinders[handler.Context, subscription.UpdateInput](binder.JSON()),
		handler.WithErrorHandler[handler.Context, subscription.UpdateInput](h.errorHandler),
	))
	r.Delete("/", handler.Wrap(h.unsubscribe,
		handler.WithBinders[handler.Context, subscription.Key](binder.JSON()),
		handler.WithErrorHandler[handler.Context, subscription.Key](h.errorHandler),
	))

	return r
}

func (h *Subscriptions) subscribe(ctx handler.Context, req subscription.SubscribeInput) handler.Response {
	sub, err := h.svc.Subscribe(ctx, req)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(sub, handler.WithJSONStatus(http.StatusCreated))
}

func (h *Subscriptions) list(ctx handler.Context, _ struct{}) handler.Response {
	subs, err := h.svc.FindAll(ctx)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(subs)
}

func (h *Subscriptions) byMember(ctx handler.Context, req byMemberRequest) handler.Response {
	subs, err := h.svc.FindByMemberID(ctx, req.MemberID)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(subs)
}

func (h *Subscriptions) bySport(ctx handler.Context, req bySportRequest) handler.Response {
	subs, err := h.svc.FindBySportID(ctx, req.SportID)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(subs)
}

func (h *Subscriptions) update(ctx handler.Context, req subscription.UpdateInput) handler.Response {
	sub, err := h.svc.Update(ctx, req)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(sub)
}

func (h *Subscriptions) unsubscribe(ctx handler.Context, req subscription.Key) handler.Response {
	msg, err := h.svc.Unsubscribe(ctx, req)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(messageResponse{Message: msg})
}
