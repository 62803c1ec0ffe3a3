package auth

type loginInput struct {
	Body LoginRequest
}

type loginOutput struct {
	Body LoginResponse
}

type LoginRequest struct {
	Username string `json:"username" doc:"Administrator identity"`
	Password string `json:"password" doc:"Administrator password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
