package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrFailedToParsePath    = errors.New("failed to parse path parameters")
	ErrMissingContentType   = errors.New("missing content type")
	// ErrBinderNotApplicable means the request carries nothing for this binder.
	ErrBinderNotApplicable = errors.New("binder not applicable")
)

// IsBindError reports whether err was produced while reading the request.
func IsBindError(err error) bool {
	return errors.Is(err, ErrUnsupportedMediaType) ||
		errors.Is(err, ErrFailedToParseJSON) ||
		errors.Is(err, ErrFailedToParsePath) ||
		errors.Is(err, ErrMissingContentType)
}
