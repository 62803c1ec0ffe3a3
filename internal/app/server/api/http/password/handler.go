package password

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"responsivas/internal/domain/credential"
)

type Handler struct {
	service    credential.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service credential.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.recentOp(), h.recent)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.revealOp(), h.reveal)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*credentialOutput, error) {
	c, err := h.service.Create(ctx, input.Body.Categoria, input.Body.Servicio, input.Body.Contrasena, input.Body.Descripcion)
	if err != nil {
		if errors.Is(err, credential.ErrInvalidInput) {
			return nil, huma.Error400BadRequest(err.Error())
		}
		return nil, huma.Error500InternalServerError("Error al guardar la contraseña")
	}

	return &credentialOutput{Body: *c}, nil
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	creds, err := h.service.List(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Error al obtener la lista de contraseñas")
	}

	return &listOutput{Body: creds}, nil
}

func (h *Handler) find(ctx context.Context, input *idInput) (*credentialOutput, error) {
	c, err := h.service.Get(ctx, input.ID)
	if err != nil {
		if errors.Is(err, credential.ErrNotFound) {
			return nil, huma.Error404NotFound("No encontrado")
		}
		return nil, huma.Error500InternalServerError("Error al obtener la contraseña")
	}

	return &credentialOutput{Body: *c}, nil
}

func (h *Handler) reveal(ctx context.Context, input *idInput) (*revealOutput, error) {
	plaintext, err := h.service.Reveal(ctx, input.ID)
	if err != nil {
		if errors.Is(err, credential.ErrNotFound) {
			return nil, huma.Error404NotFound("No encontrado")
		}
		return nil, huma.Error500InternalServerError("No se pudo descifrar la contraseña")
	}

	return &revealOutput{Body: revealResponse{Password: plaintext}}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*credentialOutput, error) {
	c, err := h.service.Update(ctx, input.ID, input.Body.Categoria, input.Body.Servicio, input.Body.Contrasena, input.Body.Descripcion)
	if err != nil {
		switch {
		case errors.Is(err, credential.ErrInvalidInput):
			return nil, huma.Error400BadRequest(err.Error())
		case errors.Is(err, credential.ErrNotFound):
			return nil, huma.Error404NotFound("No encontrado")
		default:
			return nil, huma.Error500InternalServerError("Error al guardar la contraseña")
		}
	}

	return &credentialOutput{Body: *c}, nil
}

// delete is best-effort: an absent id still reports success.
func (h *Handler) delete(ctx context.Context, input *idInput) (*messageOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, huma.Error500InternalServerError("Error al eliminar el registro")
	}

	return &messageOutput{Body: passwordMessageResponse{Mensaje: "Registro eliminado correctamente"}}, nil
}

func (h *Handler) recent(ctx context.Context, _ *struct{}) (*recentOutput, error) {
	c, err := h.service.MostRecent(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Error al obtener la última contraseña")
	}

	// Empty store renders as {}, matching the dashboard's expectation.
	return &recentOutput{Body: passwordRecentResponse{Credential: c}}, nil
}
