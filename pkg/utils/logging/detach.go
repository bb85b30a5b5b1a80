package logging

import "context"

// Detach creates a context.Background() based context that inherits logger,
// request ID, delivery ID and time function from ctx. Use it for goroutines
// that outlive the HTTP request they were started from.
func Detach(ctx context.Context) context.Context {
	bgCtx := With(context.Background(), From(ctx))
	return InheritContextValues(bgCtx, ctx)
}
