package trace

import "context"

type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying id, retrievable via
// RequestIDFrom. An empty id is a valid, present value, distinct from no
// id having been set at all.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom reports the request ID carried by ctx, if any.
func RequestIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}
