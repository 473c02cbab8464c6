package club

import (
	"net/http"

	"github.com/dmitrymomot/clubhouse/handler"
	"github.com/dmitrymomot/clubhouse/pkg/validator"
	"github.com/dmitrymomot/clubhouse/svc/svcerr"
)

// ClassifyServiceError maps service failures to HTTP responses. Pass it to
// handler.NewErrorHandler.
func ClassifyServiceError(err error) (handler.ErrorInfo, bool) {
	kind := svcerr.KindOf(err)
	if kind == nil {
		return handler.ErrorInfo{}, false
	}

	info := handler.ErrorInfo{
		Message: svcerr.MessageOf(err),
		Details: validator.ExtractValidationErrors(err).Details(),
	}
	switch kind {
	case svcerr.ErrValidationFailed:
		info.StatusCode, info.Code = http.StatusBadRequest, "validation_failed"
	case svcerr.ErrInvalidArgument:
		info.StatusCode, info.Code = http.StatusBadRequest, "invalid_argument"
	case svcerr.ErrNotFound:
		info.StatusCode, info.Code = http.StatusNotFound, "not_found"
	case svcerr.ErrReferenceNotFound:
		info.StatusCode, info.Code = http.StatusNotFound, "reference_not_found"
	case svcerr.ErrPersistenceInconsistency:
		info.StatusCode, info.Code = http.StatusInternalServerError, "persistence_inconsistency"
	default:
		info.StatusCode, info.Code = http.StatusInternalServerError, "internal_server_error"
	}
	return info, true
}

type messageResponse struct {
	Message string `json:"message"`
}
