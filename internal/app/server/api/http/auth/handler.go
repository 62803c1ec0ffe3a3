package auth

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"responsivas/internal/domain/admin"
	"responsivas/internal/domain/session"
)

type Handler struct {
	admin      admin.Servicer
	session    session.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(admin admin.Servicer, session session.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		admin:      admin,
		session:    session,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.loginOp(), h.login)
}

// login responds identically to unknown identity and wrong password.
func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	if err := h.admin.Authenticate(input.Body.Username, input.Body.Password); err != nil {
		return nil, huma.Error401Unauthorized("Credenciales incorrectas")
	}

	token, err := h.session.Issue(input.Body.Username)
	if err != nil {
		h.log.Error("failed to issue token", "error", err)
		return nil, huma.Error500InternalServerError("Error en el servidor")
	}

	return &loginOutput{
		Body: LoginResponse{Token: token},
	}, nil
}
