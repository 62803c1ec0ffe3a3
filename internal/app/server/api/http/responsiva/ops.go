package responsiva

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "responsivas-create",
		Method:        http.MethodPost,
		Path:          "/api/responsivas",
		Summary:       "Create a responsiva",
		Tags:          []string{"responsivas"},
		Middlewares:   h.middleware,
		DefaultStatus: http.StatusCreated,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "responsivas-list",
		Method:      http.MethodGet,
		Path:        "/api/responsivas",
		Summary:     "List responsivas, newest first",
		Tags:        []string{"responsivas"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) listBriefOp() huma.Operation {
	return huma.Operation{
		OperationID: "responsivas-list-brief",
		Method:      http.MethodGet,
		Path:        "/api/responsivas/lista",
		Summary:     "Reduced listing for the upload selector",
		Tags:        []string{"responsivas"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "responsivas-delete",
		Method:      http.MethodDelete,
		Path:        "/api/responsivas/{id}",
		Summary:     "Delete a responsiva",
		Tags:        []string{"responsivas"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) statsOp() huma.Operation {
	return huma.Operation{
		OperationID: "responsivas-kpi-stats",
		Method:      http.MethodGet,
		Path:        "/api/responsivas/kpis/stats",
		Summary:     "Totals and missing-document count",
		Tags:        []string{"responsivas"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) recentOp() huma.Operation {
	return huma.Operation{
		OperationID: "responsivas-kpi-recent",
		Method:      http.MethodGet,
		Path:        "/api/responsivas/kpis/reciente",
		Summary:     "Most recent responsiva by fecha",
		Tags:        []string{"responsivas"},
		Middlewares: h.middleware,
	}
}
