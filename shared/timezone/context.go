package timezone

import (
	"context"
	"time"
)

type contextKey struct{}

// NewContext returns a context carrying loc as the ambient active timezone.
// The active zone rides the request context explicitly so that anything
// detached from a request (background publisher, consumer, job) has to state
// which zone it means instead of inheriting one silently.
func NewContext(ctx context.Context, loc *time.Location) context.Context {
	return context.WithValue(ctx, contextKey{}, loc)
}

// FromContext returns the ambient active timezone carried by ctx, falling
// back to the application zone when none was set.
func FromContext(ctx context.Context) *time.Location {
	if loc, ok := ctx.Value(contextKey{}).(*time.Location); ok && loc != nil {
		return loc
	}

	return GetLocation()
}
