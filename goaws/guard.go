package goaws

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/aws/smithy-go"
)

// Guard runs fn as the operation op. A panic in fn is recovered as an
// InternalError. Any fault is classified into an AwsError, logged once at
// error level with the caller's source location, and returned in place of
// the underlying error. A failed call always returns the zero result.
func Guard[T any](ctx context.Context, logger *slog.Logger, op string, fn func() (T, error)) (res T, err error) {
	var pcs [1]uintptr
	runtime.Callers(2, pcs[:]) // skip runtime.Callers and Guard

	defer func() {
		if r := recover(); r != nil {
			err = NewInternalError(fmt.Errorf("%s: panic: %v", op, r))
		}
		if err != nil {
			var zero T
			res = zero
			ae := Classify(err)
			logFault(ctx, LoggerOrDefault(logger), pcs[0], op, err, ae)
			err = ae
		}
	}()

	return fn()
}

func logFault(ctx context.Context, logger *slog.Logger, pc uintptr, op string, cause error, ae AwsError) {
	if ctx == nil {
		ctx = context.Background()
	}
	h := logger.Handler()
	if !h.Enabled(ctx, slog.LevelError) {
		return
	}

	r := slog.NewRecord(time.Now(), slog.LevelError, "operation failed", pc)
	r.AddAttrs(
		slog.String("op", op),
		slog.String("kind", string(ae.Kind())),
		slog.String("error_type", errorType(cause)),
		slog.String("error", ae.Error()),
	)
	var apiErr smithy.APIError
	if errors.As(cause, &apiErr) {
		r.AddAttrs(slog.String("code", apiErr.ErrorCode()))
	}
	_ = h.Handle(ctx, r)
}

// errorType names the innermost error of a single-wrap chain.
func errorType(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return fmt.Sprintf("%T", err)
		}
		err = next
	}
}
