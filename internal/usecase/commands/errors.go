package commands

import (
	"context"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("hotel-booking/internal/usecase/commands")

// classify maps repository kinds to domain sentinels. Anything that is not
// already a business outcome is marked as an infrastructure failure.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errs.IsExpected(err):
		return err
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrHoldNotFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrHoldNotActive)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name)
}

// endSpan records err on span before ending it. Expected outcomes are not
// span errors.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		if !errs.IsExpected(err) {
			span.SetStatus(codes.Error, err.Error())
		}
	}
	span.End()
}
