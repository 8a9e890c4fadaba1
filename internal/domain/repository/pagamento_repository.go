package repository

import "github.com/caderneta/mercearia-api/internal/domain/entity"

// PagamentoFiadoRepository persiste eventos de liquidação do fiado.
type PagamentoFiadoRepository interface {
	Create(p *entity.PagamentoFiado) error
	ListPorCliente(merceariaID, clienteID string) ([]*entity.PagamentoFiado, error)
}
