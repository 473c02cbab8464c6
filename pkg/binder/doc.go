// Package binder fills request structs from HTTP requests.
//
// Each binder handles one source and is applied in order by handler.Wrap:
//
//	type updateRequest struct {
//		ID string `path:"id" json:"-"`
//		member.UpdateInput
//	}
//
//	handler.Wrap(h, handler.WithBinders[handler.Context, updateRequest](
//		binder.Path(chi.URLParam),
//		binder.JSON(),
//	))
//
// Binders that have nothing to read return ErrBinderNotApplicable, which
// Wrap skips.
package binder
