// Package logger builds *slog.Logger instances for fieldcheck from
// functional options and provides helper attribute constructors.
//
// New selects slog.NewTextHandler or slog.NewJSONHandler based on the
// configured Format. When ContextExtractor callbacks are registered the handler
// is wrapped so they run on every record. That is how values
// carried by a context.Context, such as the environment or the id of a check
// run, end up in the log output.
//
// # Usage
//
//	level, err := logger.ParseLevel(cfg.LogLevel)
//	if err != nil {
//	    return err
//	}
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "fieldcheck"),
//	    logger.WithLevel(level),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.DebugContext(ctx, "validation failed",
//	    logger.Field("email"),
//	    logger.Validation("isEmail"),
//	    logger.Severity("error"),
//	)
//
// # Configuration
//
//   - WithEnvironment: level and format preset for development, staging or production.
//   - WithFormat, ParseFormat: output format.
//   - WithLevel, ParseLevel: minimum level.
//   - WithAttr: static attributes.
//   - WithContextExtractors / WithContextValue: attributes from context.
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("rules loaded", logger.Error(err))
//
// needs no nil check.
package logger
