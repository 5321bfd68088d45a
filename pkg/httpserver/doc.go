// Package httpserver wraps net/http's Server with signal-aware graceful
// shutdown, sane timeout defaults, and structured logging.
//
// Run blocks until the passed context is canceled, SIGINT/SIGTERM arrives, or
// the listener fails, then drains in-flight requests within the configured
// shutdown timeout.
//
//	srv := httpserver.New(
//	    httpserver.WithAddr(cfg.Addr),
//	    httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", slog.String("error", err.Error()))
//	}
package httpserver
