// Package httpserver runs an http.Handler with graceful shutdown and
// provides liveness and readiness handlers.
//
//	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
package httpserver
