package schedule

import (
	"context"
	"time"

	"go-micro.dev/v4/logger"
)

// GetPeriodicWrapper repeats fn every interval, failures are logged and do not break the cycle
func GetPeriodicWrapper(l logger.Logger, interval time.Duration, fn func(logger.Logger, context.Context) error) ExecuteFn {
	return func(ctx context.Context) Result {
		if err := fn(l, ctx); err != nil {
			l.Logf(logger.ErrorLevel, "Operation failed: %s", err)
		} else {
			l.Log(logger.DebugLevel, "Complete")
		}
		return Result{Result: OpResultRetryAfter, After: interval}
	}
}

// GetRetryWrapper repeats fn with growing delay until it succeeds
func GetRetryWrapper(l logger.Logger, fn func(logger.Logger, context.Context) error) ExecuteFn {
	return func(ctx context.Context) Result {
		if err := fn(l, ctx); err != nil {
			l.Logf(logger.WarnLevel, "Operation failed, retry later: %s", err)
			return Result{Result: OpResultRetry}
		}
		l.Log(logger.DebugLevel, "Complete")
		return Result{Result: OpResultDone}
	}
}
