package postgres

import (
	"context"
	"fmt"

	"github.com/caderneta/mercearia-api/internal/domain/entity"
	"github.com/caderneta/mercearia-api/internal/domain/repository"
)

var _ repository.PagamentoFiadoRepository = (*PagamentoFiadoRepo)(nil)

// PagamentoFiadoRepo implementação do porto PagamentoFiadoRepository sobre PostgreSQL.
type PagamentoFiadoRepo struct {
	q Querier
}

// NewPagamentoFiadoRepository constrói o adaptador de pagamentos de fiado. Passar pool ou tx (Querier).
func NewPagamentoFiadoRepository(q Querier) *PagamentoFiadoRepo {
	return &PagamentoFiadoRepo{q: q}
}

// Create registra o evento de liquidação. Sempre chamado dentro da tx que abate o saldo.
func (r *PagamentoFiadoRepo) Create(p *entity.PagamentoFiado) error {
	query := `
		INSERT INTO pagamentos_fiado (id, mercearia_id, cliente_id, valor_pago, meio_pagamento, data_pagamento)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.MerceariaID, p.ClienteID, p.ValorPago, p.MeioPagamento, p.DataPagamento,
	)
	if err != nil {
		return fmt.Errorf("insert pagamento fiado: %w", err)
	}
	return nil
}

// ListPorCliente devolve o histórico de pagamentos do cliente, mais recentes primeiro.
func (r *PagamentoFiadoRepo) ListPorCliente(merceariaID, clienteID string) ([]*entity.PagamentoFiado, error) {
	query := `
		SELECT id, mercearia_id, cliente_id, valor_pago, meio_pagamento, data_pagamento
		FROM pagamentos_fiado
		WHERE mercearia_id = $1 AND cliente_id = $2
		ORDER BY data_pagamento DESC`
	rows, err := r.q.Query(context.Background(), query, merceariaID, clienteID)
	if err != nil {
		return nil, fmt.Errorf("list pagamentos fiado: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.PagamentoFiado, 0)
	for rows.Next() {
		var p entity.PagamentoFiado
		if err := rows.Scan(&p.ID, &p.MerceariaID, &p.ClienteID, &p.ValorPago, &p.MeioPagamento, &p.DataPagamento); err != nil {
			return nil, fmt.Errorf("scan pagamento fiado: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
