package repository

import (
	"github.com/shopspring/decimal"

	"github.com/caderneta/mercearia-api/internal/domain/entity"
)

// ClienteRepository define o porto de persistência do caderninho de clientes.
// GetForUpdate bloqueia a linha do cliente; toda mutação de saldo passa por ele.
type ClienteRepository interface {
	Create(c *entity.Cliente) error
	GetByID(merceariaID, id string) (*entity.Cliente, error)
	GetForUpdate(merceariaID, id string) (*entity.Cliente, error)
	Update(c *entity.Cliente) error
	UpdateSaldo(id string, novoSaldo decimal.Decimal) error
	// Delete remove o cliente; devolve false se não existir na mercearia.
	Delete(merceariaID, id string) (bool, error)
	// Buscar procura por prefixo de nome ou telefone (PDV ágil).
	Buscar(merceariaID, termo string, limit int) ([]*entity.Cliente, error)
	ListAll(merceariaID string) ([]*entity.Cliente, error)
	// ListDevedores devolve clientes com saldo acima de minSaldo, maior saldo primeiro.
	ListDevedores(merceariaID string, minSaldo decimal.Decimal) ([]*entity.Cliente, error)
}
