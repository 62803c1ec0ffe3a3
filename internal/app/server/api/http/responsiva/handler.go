package responsiva

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"responsivas/internal/domain/custody"
)

type Handler struct {
	service    custody.Servicer
	files      Saver
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service custody.Servicer, files Saver, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		files:      files,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.listBriefOp(), h.listBrief)
	huma.Register(api, h.statsOp(), h.stats)
	huma.Register(api, h.recentOp(), h.recent)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*responsivaOutput, error) {
	r, err := h.service.Create(ctx, &custody.Responsiva{
		Ciudad:          input.Body.Ciudad,
		Fecha:           input.Body.Fecha,
		Responsable:     input.Body.Responsable,
		Empresa:         input.Body.Empresa,
		TipoEquipo:      input.Body.TipoEquipo,
		Marca:           input.Body.Marca,
		Modelo:          input.Body.Modelo,
		NumeroSerie:     input.Body.NumeroSerie,
		Accesorios:      input.Body.Accesorios,
		Estado:          input.Body.Estado,
		ResponsableArea: input.Body.ResponsableArea,
	})
	if err != nil {
		return nil, huma.Error500InternalServerError("Error al guardar la responsiva")
	}

	return &responsivaOutput{Body: *r}, nil
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	list, err := h.service.List(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Error al obtener las responsivas")
	}

	return &listOutput{Body: list}, nil
}

func (h *Handler) listBrief(ctx context.Context, _ *struct{}) (*listBriefOutput, error) {
	list, err := h.service.ListBrief(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Error al obtener la lista de responsivas")
	}

	return &listBriefOutput{Body: list}, nil
}

// delete is best-effort: an absent id still reports success.
func (h *Handler) delete(ctx context.Context, input *idInput) (*messageOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, huma.Error500InternalServerError("Error al eliminar la responsiva")
	}

	return &messageOutput{Body: responsivaMessageResponse{Mensaje: "Responsiva eliminada"}}, nil
}

func (h *Handler) stats(ctx context.Context, _ *struct{}) (*statsOutput, error) {
	stats, err := h.service.Stats(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Error al obtener las estadísticas")
	}

	return &statsOutput{Body: stats}, nil
}

func (h *Handler) recent(ctx context.Context, _ *struct{}) (*recentOutput, error) {
	r, err := h.service.MostRecent(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Error al obtener la última responsiva")
	}

	// Empty table renders as {}, matching the dashboard's expectation.
	return &recentOutput{Body: responsivaRecentResponse{Responsiva: r}}, nil
}
