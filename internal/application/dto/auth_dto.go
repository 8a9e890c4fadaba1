package dto

// LoginRequest credenciais do operador ou dono.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginResponse token emitido após login.
type LoginResponse struct {
	Token       string `json:"token"`
	OperadorID  string `json:"operador_id"`
	MerceariaID string `json:"mercearia_id"`
	Role        string `json:"role"`
	Nome        string `json:"nome"`
}
