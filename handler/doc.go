// Package handler adapts typed handler functions to net/http.
//
// A HandlerFunc receives a Context and a request value populated by the
// configured binders, and returns a Response:
//
//	h := handler.HandlerFunc[handler.Context, createRequest](
//		func(ctx handler.Context, req createRequest) handler.Response {
//			item, err := svc.Create(ctx, req.Input)
//			if err != nil {
//				return handler.JSONError(err)
//			}
//			return handler.JSON(item, handler.WithJSONStatus(http.StatusCreated))
//		},
//	)
//	r.Post("/", handler.Wrap(h,
//		handler.WithBinders[handler.Context, createRequest](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, createRequest](errHandler),
//	))
//
// Responses use a single JSON envelope: {"data": ...} on success and
// {"error": {"code", "message", "details"}} on failure.
package handler
