package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"responsivas/internal/domain/session"
)

// Auth is the session guard for protected routes. A missing token is
// 401; a present but invalid or expired token is 403.
type Auth struct {
	session session.Servicer
	log     *slog.Logger
}

func New(session session.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		session: session,
		log:     log.With("component", "auth_middleware"),
	}
}

type contextKey string

const identityKey contextKey = "identity"

func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			a.reject(ctx, http.StatusUnauthorized, "missing token")
			return
		}

		identity, err := a.session.Verify(token)
		if err != nil {
			if errors.Is(err, session.ErrExpiredToken) {
				a.log.Debug("expired token rejected")
			} else {
				a.log.Debug("invalid token rejected", "error", err)
			}
			a.reject(ctx, http.StatusForbidden, "invalid or expired token")
			return
		}

		newCtx := context.WithValue(ctx.Context(), identityKey, identity)
		next(huma.WithContext(ctx, newCtx))
	}
}

func (a *Auth) reject(ctx huma.Context, status int, message string) {
	ctx.SetStatus(status)
	ctx.SetHeader("Content-Type", "application/json")
	if err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{"error": message}); err != nil {
		a.log.Error("failed to encode error body", "error", err)
	}
}

// WithIdentity stores the authenticated identity; exported for handler
// tests.
func WithIdentity(ctx context.Context, identity string) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentity returns the authenticated identity set by the guard.
func GetIdentity(ctx context.Context) (string, bool) {
	identity, ok := ctx.Value(identityKey).(string)
	return identity, ok
}
