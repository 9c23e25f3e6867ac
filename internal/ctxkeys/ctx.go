package ctxkeys

import (
	"context"

	"portfolio/internal/config"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	AdminKey  contextKey = "admin"
	ConfigKey contextKey = "config"
)

// Admin returns the authenticated admin's email, or "" when the request
// carries no valid session.
func Admin(ctx context.Context) string {
	email, _ := ctx.Value(AdminKey).(string)
	return email
}

func WithAdmin(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, AdminKey, email)
}

func Config(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(ConfigKey).(*config.Config)
	return cfg
}

func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ConfigKey, cfg)
}
