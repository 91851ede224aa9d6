package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"runtime/debug"
	"time"

	"blog-cms/internal/domain"
	"blog-cms/internal/logger"
	"blog-cms/internal/metrics"
	"blog-cms/internal/validator"
)

// outcomeSuccess labels successful use case runs in metrics.
const outcomeSuccess = "success"

// Logger logs the start and the outcome of every request.
func Logger[Req, Resp any](name string) Middleware[Req, Resp] {
	return func(ctx context.Context, req Req, next Handler[Req, Resp]) (Resp, error) {
		log := logger.WithUseCase(name)
		if requestID := logger.RequestIDFromContext(ctx); requestID != "" {
			log = log.With(slog.String("request_id", requestID))
		}

		start := time.Now()
		log.DebugContext(ctx, "use case started")

		resp, err := next(ctx, req)
		elapsed := slog.Duration("duration", time.Since(start))
		if err == nil {
			log.InfoContext(ctx, "use case completed", elapsed)
			return resp, nil
		}

		ge := FromError(err)
		attrs := []any{
			elapsed,
			slog.String("category", string(ge.Category)),
			slog.String("code", ge.Code),
		}
		if ge.Category == CategoryInternal {
			if cause := errors.Unwrap(ge); cause != nil {
				attrs = append(attrs, slog.String("error", cause.Error()))
			}
			log.ErrorContext(ctx, "use case failed", attrs...)
		} else {
			log.InfoContext(ctx, "use case rejected", attrs...)
		}
		return resp, err
	}
}

// Metrics records the duration and outcome of every request.
func Metrics[Req, Resp any](name string) Middleware[Req, Resp] {
	return func(ctx context.Context, req Req, next Handler[Req, Resp]) (Resp, error) {
		start := time.Now()
		resp, err := next(ctx, req)

		outcome := outcomeSuccess
		if err != nil {
			outcome = string(FromError(err).Category)
		}
		metrics.ObserveUseCase(name, outcome, time.Since(start).Seconds())
		return resp, err
	}
}

// ErrorHandler turns every error, and any panic further down the chain,
// into a *Error.
func ErrorHandler[Req, Resp any]() Middleware[Req, Resp] {
	return func(ctx context.Context, req Req, next Handler[Req, Resp]) (resp Resp, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.ErrorContext(ctx, "panic in use case",
					slog.Any("panic", r),
					slog.String("stack", string(debug.Stack())),
				)
				var zero Resp
				resp, err = zero, FromError(fmt.Errorf("panic: %v", r))
			}
		}()

		resp, err = next(ctx, req)
		if err != nil {
			var zero Resp
			return zero, FromError(err)
		}
		return resp, nil
	}
}

// Translation replaces domain error messages and field messages with the
// translator's text. Keys without a translation are left as they are and
// the original error is never modified.
func Translation[Req, Resp any](t Translator) Middleware[Req, Resp] {
	return func(ctx context.Context, req Req, next Handler[Req, Resp]) (Resp, error) {
		resp, err := next(ctx, req)
		if err == nil {
			return resp, nil
		}
		// Internal failures are never shown, keep their details for the log.
		de, ok := domain.AsError(err)
		if !ok || CategoryOf(de.Kind()) == CategoryInternal {
			return resp, err
		}

		translated := &domain.Error{Code: de.Code, Message: de.Message, Fields: maps.Clone(de.Fields)}
		if text, ok := t.Translate(string(de.Code)); ok {
			translated.Message = text
		}
		for field, key := range translated.Fields {
			if text, ok := t.Translate(key); ok {
				translated.Fields[field] = text
			}
		}
		return resp, translated
	}
}

// Validatable requests check their own shape before processing.
type Validatable interface {
	Validate() error
}

// Validation runs Validate on requests that implement Validatable and
// reports failures as VALIDATION_FAILED with field details.
func Validation[Req, Resp any]() Middleware[Req, Resp] {
	return func(ctx context.Context, req Req, next Handler[Req, Resp]) (Resp, error) {
		if v, ok := any(req).(Validatable); ok {
			if err := v.Validate(); err != nil {
				var zero Resp
				return zero, validator.ToDomainError(err)
			}
		}
		return next(ctx, req)
	}
}
