package entity

import "time"

// Status de acesso do operador.
const (
	OperadorAtivo   = "ativo"
	OperadorInativo = "inativo"
)

// Papéis reconhecidos pelo middleware RBAC.
const (
	RoleAdmin    = "admin"    // administração da plataforma
	RoleMerchant = "merchant" // dono da mercearia
	RoleOperador = "operador" // terminal de PDV
)

// Operador representa uma conta de acesso vinculada a uma mercearia (PDV ou dono).
type Operador struct {
	ID          string
	MerceariaID string
	Nome        string
	Email       string
	Telefone    string
	SenhaHash   string
	Role        string
	Status      string // ativo | inativo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
