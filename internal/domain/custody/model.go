package custody

import "time"

// Responsiva is one equipment-custody acknowledgment record. ArchivoPDF
// stays nil until the signed document is uploaded and is set exactly
// once; the file itself lives on disk, only its name is persisted.
type Responsiva struct {
	ID              int       `json:"id"`
	Ciudad          string    `json:"ciudad"`
	Fecha           string    `json:"fecha"`
	Responsable     string    `json:"responsable"`
	Empresa         string    `json:"empresa"`
	TipoEquipo      string    `json:"tipo_equipo"`
	Marca           string    `json:"marca"`
	Modelo          string    `json:"modelo"`
	NumeroSerie     string    `json:"numero_serie"`
	Accesorios      string    `json:"accesorios"`
	Estado          string    `json:"estado"`
	ResponsableArea string    `json:"responsable_area"`
	ArchivoPDF      *string   `json:"archivo_pdf"`
	CreatedAt       time.Time `json:"created_at"`
}

// Brief is the reduced listing used by the upload page selector.
type Brief struct {
	ID          int    `json:"id"`
	Responsable string `json:"responsable"`
	Fecha       string `json:"fecha"`
}

// Stats are the dashboard counters: total records and how many still
// lack a signed document.
type Stats struct {
	Total     int `json:"total"`
	Faltantes int `json:"faltantes"`
}
