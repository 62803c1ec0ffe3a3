package auth

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"responsivas/internal/domain/session"
)

const testSecret = "guard-test-secret"

type whoamiOutput struct {
	Body struct {
		Identity string `json:"identity"`
	}
}

// setupGuardedAPI mounts a single guarded operation that echoes the
// identity the guard placed in the request context.
func setupGuardedAPI(t *testing.T) (http.Handler, *session.Service) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	sessionService := session.NewService(testSecret, log)
	guard := New(sessionService, log)

	mux := chi.NewMux()
	api := humachi.New(mux, huma.DefaultConfig("test", "1.0.0"))
	huma.Register(api, huma.Operation{
		OperationID: "whoami",
		Method:      http.MethodGet,
		Path:        "/whoami",
		Middlewares: huma.Middlewares{guard.Middleware()},
	}, func(ctx context.Context, _ *struct{}) (*whoamiOutput, error) {
		out := &whoamiOutput{}
		out.Body.Identity, _ = GetIdentity(ctx)
		return out, nil
	})

	return mux, sessionService
}

func TestMiddleware_MissingToken(t *testing.T) {
	handler, _ := setupGuardedAPI(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "empty bearer", header: "Bearer "},
		{name: "wrong scheme", header: "Basic YWRtaW46YWRtaW4="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "missing token")
		})
	}
}

func TestMiddleware_InvalidToken(t *testing.T) {
	handler, _ := setupGuardedAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or expired token")
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	handler, _ := setupGuardedAPI(t)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "admin",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMiddleware_ValidToken(t *testing.T) {
	handler, sessionService := setupGuardedAPI(t)

	token, err := sessionService.Issue("admin")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"identity":"admin"`)
}

func TestIdentityContext(t *testing.T) {
	ctx := WithIdentity(context.Background(), "admin")

	identity, ok := GetIdentity(ctx)
	require.True(t, ok)
	assert.Equal(t, "admin", identity)

	_, ok = GetIdentity(context.Background())
	assert.False(t, ok)
}
