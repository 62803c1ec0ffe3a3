package credential

import "time"

// Credential is the summary shape of a stored credential. The sealed
// secret envelope deliberately has no field here: it never leaves the
// repository except through Reveal, which returns plaintext only.
type Credential struct {
	ID          int       `json:"id"`
	Categoria   string    `json:"categoria"`
	Servicio    string    `json:"servicio_o_usuario"`
	Descripcion string    `json:"descripcion"`
	CreatedAt   time.Time `json:"created_at"`
}
