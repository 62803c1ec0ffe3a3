package responsiva

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"responsivas/internal/domain/custody"
)

// Saver stores an uploaded document on disk and returns the generated
// filename. Satisfied by files.Store.
type Saver interface {
	Save(originalName string, content io.Reader) (string, error)
}

const maxUploadSize = 20 << 20 // 20 MiB

// UploadHandler accepts the multipart form with the signed document.
// It is a plain chi handler, not a huma operation: the SPA posts
// multipart/form-data with an "archivo" file field and the target "id".
func (h *Handler) UploadHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.log.Debug("malformed multipart form", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Archivo inválido"})
		return
	}

	id, err := strconv.Atoi(r.FormValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "id inválido"})
		return
	}

	file, header, err := r.FormFile("archivo")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Archivo inválido"})
		return
	}
	defer file.Close()

	name, err := h.files.Save(header.Filename, file)
	if err != nil {
		h.log.Error("failed to store upload", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Error al guardar el archivo"})
		return
	}

	if err := h.service.AttachFile(r.Context(), id, name); err != nil {
		if errors.Is(err, custody.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "No encontrado"})
			return
		}
		h.log.Error("failed to attach upload", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Error al guardar el archivo"})
		return
	}

	writeJSON(w, http.StatusOK, responsivaMessageResponse{Mensaje: "Archivo guardado", Archivo: name})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
