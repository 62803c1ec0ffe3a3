package password

import "responsivas/internal/domain/credential"

type createInput struct {
	Body passwordRequest
}

type idInput struct {
	ID int `path:"id" doc:"Credential id"`
}

type updateInput struct {
	ID   int `path:"id" doc:"Credential id"`
	Body passwordRequest
}

// passwordRequest mirrors the SPA form. An empty contrasena on update means
// "keep the stored secret".
type passwordRequest struct {
	Categoria   string `json:"categoria"`
	Servicio    string `json:"servicio_o_usuario"`
	Contrasena  string `json:"contrasena"`
	Descripcion string `json:"descripcion"`
}

type credentialOutput struct {
	Body credential.Credential
}

type listOutput struct {
	Body []credential.Credential
}

type revealOutput struct {
	Body revealResponse
}

type revealResponse struct {
	Password string `json:"password"`
}

type messageOutput struct {
	Body passwordMessageResponse
}

type passwordMessageResponse struct {
	Mensaje string `json:"mensaje"`
}

type recentOutput struct {
	Body passwordRecentResponse
}

// passwordRecentResponse embeds the credential so an empty store marshals to
// a bare object instead of null.
type passwordRecentResponse struct {
	*credential.Credential
}
