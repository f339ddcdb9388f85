// Package environment carries the current environment (development, staging,
// production) through context.Context and into structured logs.
//
// Parse normalises names read from configuration, WithContext and FromContext
// move the value through a context, and LoggerExtractor exposes it to the
// logger package as an "env" attribute:
//
//	ctx := environment.WithContext(ctx, environment.Parse(cfg.Env))
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//	log.InfoContext(ctx, "check finished")
//
// Missing values result in the zero value ("").
package environment
