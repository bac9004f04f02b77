package http

import "context"

type key string

const viewerID key = "id"

// GetViewerIDFromContext returns a viewer ID from a context
func GetViewerIDFromContext(ctx context.Context) (int, bool) {
	val := ctx.Value(viewerID)
	id, ok := val.(int)
	return id, ok
}

// WithViewerID stores a viewer ID in the context
func WithViewerID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, viewerID, id)
}
