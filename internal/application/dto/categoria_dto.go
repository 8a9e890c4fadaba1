package dto

// CategoriaRequest criação/edição de categoria.
type CategoriaRequest struct {
	Nome string `json:"nome"`
}

// CategoriaResponse categoria devolvida ao front.
type CategoriaResponse struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}
