package entity

// Categoria agrupa produtos do catálogo de uma mercearia.
type Categoria struct {
	ID          string
	MerceariaID string
	Nome        string
}
