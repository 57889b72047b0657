package config

import "context"

type ctxKey struct{}

// WithSettings attaches settings to the context.
func WithSettings(ctx context.Context, s Settings) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext retrieves settings from the context.
// Returns Default() if none are attached.
func FromContext(ctx context.Context) Settings {
	if s, ok := ctx.Value(ctxKey{}).(Settings); ok {
		return s
	}
	return Default()
}
