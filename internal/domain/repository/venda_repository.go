package repository

import "github.com/caderneta/mercearia-api/internal/domain/entity"

// VendaRepository define o porto de persistência de vendas e seus itens.
// Vendas são imutáveis depois de criadas.
type VendaRepository interface {
	Create(v *entity.Venda) error
	CreateItem(i *entity.VendaItem) error
	GetByID(merceariaID, id string) (*entity.Venda, error)
	// ListFiadoPorCliente devolve as vendas fiado do cliente com itens carregados,
	// mais recentes primeiro.
	ListFiadoPorCliente(merceariaID, clienteID string) ([]*entity.Venda, error)
}
