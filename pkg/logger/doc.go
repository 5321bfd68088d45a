// Package logger builds configured log/slog loggers with sensible defaults.
//
// New applies functional options over production-safe defaults (JSON format,
// info level, stdout). WithDevelopment and WithProduction bundle the usual
// per-environment settings, and SetAsDefault installs the result process-wide
// so libraries falling back to slog.Default pick it up.
//
//	log := logger.New(
//	    logger.WithDevelopment("fieldchaind"),
//	    logger.WithAttr(slog.String("version", version)),
//	)
//	logger.SetAsDefault(log)
package logger
