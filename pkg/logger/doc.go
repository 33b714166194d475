// Package logger builds *slog.Logger instances for the licensing service and
// provides attribute helpers so that customer, plan and website fields are
// named the same way everywhere.
//
// New creates a text or JSON handler depending on the configured Format and
// wraps it with LogHandlerDecorator, which runs every registered
// ContextExtractor before a record is written. CustomerIDExtractor pulls the
// id stored by WithCustomerID.
//
// # Usage
//
//	level, err := logger.ParseLevel(cfg.LogLevel)
//	if err != nil {
//	    return err
//	}
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.Name),
//	    logger.WithLevel(level),
//	    logger.WithContextExtractors(logger.CustomerIDExtractor),
//	)
//
//	ctx = logger.WithCustomerID(ctx, customer.ID)
//	log.InfoContext(ctx, "plan updated",
//	    logger.PlanType(sub.Plan().Type()),
//	    logger.Transition(license.TransitionDowngrade),
//	)
//
// Error and ErrorCode return an empty attribute for nil/empty input, which
// slog drops, so they can be passed unconditionally.
package logger
