package password

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "passwords-create",
		Method:        http.MethodPost,
		Path:          "/api/passwords",
		Summary:       "Create a credential",
		Tags:          []string{"passwords"},
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
		DefaultStatus: http.StatusCreated,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "passwords-list",
		Method:      http.MethodGet,
		Path:        "/api/passwords",
		Summary:     "List credentials without secrets",
		Tags:        []string{"passwords"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "passwords-find",
		Method:      http.MethodGet,
		Path:        "/api/passwords/{id}",
		Summary:     "Get one credential without its secret",
		Tags:        []string{"passwords"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) revealOp() huma.Operation {
	return huma.Operation{
		OperationID: "passwords-reveal",
		Method:      http.MethodGet,
		Path:        "/api/passwords/{id}/reveal",
		Summary:     "Reveal one credential's plaintext",
		Tags:        []string{"passwords"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "passwords-update",
		Method:      http.MethodPut,
		Path:        "/api/passwords/{id}",
		Summary:     "Update a credential",
		Tags:        []string{"passwords"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "passwords-delete",
		Method:      http.MethodDelete,
		Path:        "/api/passwords/{id}",
		Summary:     "Delete a credential",
		Tags:        []string{"passwords"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) recentOp() huma.Operation {
	return huma.Operation{
		OperationID: "passwords-kpi-recent",
		Method:      http.MethodGet,
		Path:        "/api/passwords/kpis/reciente",
		Summary:     "Most recently created credential",
		Tags:        []string{"passwords"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
