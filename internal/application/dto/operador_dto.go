package dto

import "time"

// OperadorRequest criação/edição de operador.
type OperadorRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Senha    string `json:"senha,omitempty"`
}

// OperadorResponse operador devolvido ao front (nunca expõe o hash).
type OperadorResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Telefone  string    `json:"telefone,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
