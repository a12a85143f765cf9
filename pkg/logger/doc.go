// Package logger builds *slog.Logger values with functional options and
// injects request-scoped attributes taken from context.Context.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "formlab"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.WarnContext(ctx, "submission rejected",
//	    logger.Surface("api"),
//	    logger.Fields("email", "terms"),
//	)
//
// The attribute helpers (Error, RequestID, Fields, Component, ...) keep key
// names consistent across packages. Error and RequestID return an empty
// attribute for zero input, so they can be passed unconditionally.
package logger
