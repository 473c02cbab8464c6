// Package logger builds log/slog loggers for the service.
//
// New accepts option funcs; Config maps APP_ENV, APP_NAME, LOG_LEVEL and
// LOG_FORMAT onto them. Development uses the text handler at debug level and
// production uses JSON at info level. Context extractors attach
// request-scoped values such as the request id to every record written with
// a *Context logging method:
//
//	log := logger.New(append(cfg.Options(),
//	    logger.WithContextExtractors(requestid.LogExtractor()),
//	)...)
//	log.InfoContext(r.Context(), "sport created", logger.SportID(id))
//
// The attribute helpers (Error, Component, MemberID, ...) keep attribute keys
// consistent across packages.
package logger
