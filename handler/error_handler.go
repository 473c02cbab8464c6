package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/clubhouse/pkg/binder"
	"github.com/dmitrymomot/clubhouse/pkg/logger"
	"github.com/dmitrymomot/clubhouse/pkg/requestid"
	"github.com/dmitrymomot/clubhouse/pkg/validator"
)

const genericErrorMessage = "An error occurred processing your request"

// ErrorInfo is the classified form of an error as sent to the client.
type ErrorInfo struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string][]string
}

// ErrorClassifier maps errors it recognizes to ErrorInfo. It returns false
// for errors it does not handle.
type ErrorClassifier func(err error) (ErrorInfo, bool)

func determineLogLevel(statusCode int) slog.Level {
	if statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// classifyError tries the custom classifiers first, then the built-in
// mappings for bind, validation and HTTP errors.
func classifyError(err error, classifiers []ErrorClassifier) ErrorInfo {
	for _, classify := range classifiers {
		if info, ok := classify(err); ok {
			return info
		}
	}

	var httpErr HTTPError
	switch {
	case binder.IsBindError(err):
		return ErrorInfo{StatusCode: http.StatusBadRequest, Code: "bad_request", Message: err.Error()}
	case validator.IsValidationError(err):
		return ErrorInfo{
			StatusCode: http.StatusBadRequest,
			Code:       "validation_failed",
			Message:    "Validation failed",
			Details:    validator.ExtractValidationErrors(err).Details(),
		}
	case errors.As(err, &httpErr):
		return ErrorInfo{StatusCode: httpErr.Code, Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	}

	return ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrInternalServerError.Key,
		Message:    genericErrorMessage,
	}
}

func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	r := ctx.Request()
	log.LogAttrs(r.Context(), determineLogLevel(info.StatusCode), "request error",
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.Component("error_handler"),
	)
}

// NewErrorHandler logs every error and renders the JSON error envelope.
// Configure it once in main and pass it to every module.
func NewErrorHandler(log *slog.Logger, classifiers ...ErrorClassifier) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		info := classifyError(err, classifiers)
		logError(log, ctx, err, info)

		if renderErr := errorResponse(info).Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
			log.Error("failed to render error response",
				logger.Error(renderErr),
				logger.Event("render_error_response"),
			)
		}
	}
}
