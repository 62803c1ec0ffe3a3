package responsiva

import "responsivas/internal/domain/custody"

type createInput struct {
	Body responsivaRequest
}

type idInput struct {
	ID int `path:"id" doc:"Responsiva id"`
}

// responsivaRequest mirrors the SPA's form payload, camelCase as the frontend
// sends it.
type responsivaRequest struct {
	Ciudad          string `json:"ciudad"`
	Fecha           string `json:"fecha" doc:"YYYY-MM-DD"`
	Responsable     string `json:"responsable"`
	Empresa         string `json:"empresa"`
	TipoEquipo      string `json:"tipoEquipo"`
	Marca           string `json:"marca"`
	Modelo          string `json:"modelo"`
	NumeroSerie     string `json:"numeroSerie"`
	Accesorios      string `json:"accesorios"`
	Estado          string `json:"estado"`
	ResponsableArea string `json:"responsableArea"`
}

type responsivaOutput struct {
	Body custody.Responsiva
}

type listOutput struct {
	Body []custody.Responsiva
}

type listBriefOutput struct {
	Body []custody.Brief
}

type statsOutput struct {
	Body custody.Stats
}

type messageOutput struct {
	Body responsivaMessageResponse
}

type responsivaMessageResponse struct {
	Mensaje string `json:"mensaje"`
	Archivo string `json:"archivo,omitempty"`
}

type recentOutput struct {
	Body responsivaRecentResponse
}

// responsivaRecentResponse embeds the responsiva so an empty table marshals to a
// bare object instead of null.
type responsivaRecentResponse struct {
	*custody.Responsiva
}
