package logger

import (
	"context"
	"log/slog"
)

type customerIDCtxKey struct{}

// WithCustomerID stores the customer being operated on so that every record
// logged with ctx carries it.
func WithCustomerID(ctx context.Context, id any) context.Context {
	return context.WithValue(ctx, customerIDCtxKey{}, id)
}

// CustomerIDFromContext returns the customer id stored by WithCustomerID.
func CustomerIDFromContext(ctx context.Context) (any, bool) {
	id := ctx.Value(customerIDCtxKey{})
	return id, id != nil
}

// CustomerIDExtractor injects the customer id from context under "customer_id".
func CustomerIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id, ok := CustomerIDFromContext(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return CustomerID(id), true
}

type stepCtxKey struct{}

// WithStep stores the index of the scenario step being applied.
func WithStep(ctx context.Context, i int) context.Context {
	return context.WithValue(ctx, stepCtxKey{}, i)
}

// StepExtractor injects the scenario step index from context under "step".
func StepExtractor(ctx context.Context) (slog.Attr, bool) {
	i, ok := ctx.Value(stepCtxKey{}).(int)
	if !ok {
		return slog.Attr{}, false
	}
	return Step(i), true
}
