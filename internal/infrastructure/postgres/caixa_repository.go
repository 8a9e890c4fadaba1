package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/caderneta/mercearia-api/internal/domain/entity"
	"github.com/caderneta/mercearia-api/internal/domain/repository"
)

var _ repository.CaixaRepository = (*CaixaRepo)(nil)

// CaixaRepo implementação do porto CaixaRepository sobre PostgreSQL.
type CaixaRepo struct {
	q Querier
}

// NewCaixaRepository constrói o adaptador do caixa. Passar pool ou tx (Querier).
func NewCaixaRepository(q Querier) *CaixaRepo {
	return &CaixaRepo{q: q}
}

// Create registra uma transação de caixa. Vendas e liquidações chamam na mesma tx.
func (r *CaixaRepo) Create(t *entity.TransacaoCaixa) error {
	query := `
		INSERT INTO transacoes_caixa (id, mercearia_id, tipo, meio_pagamento, valor, origem, referencia_id, data_transacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.MerceariaID, t.Tipo, t.MeioPagamento, t.Valor, t.Origem, t.ReferenciaID, t.DataTransacao,
	)
	if err != nil {
		return fmt.Errorf("insert transacao caixa: %w", err)
	}
	return nil
}

// EntradasDesde devolve as entradas a partir do instante dado (resumo do dia).
func (r *CaixaRepo) EntradasDesde(merceariaID string, desde time.Time) ([]*entity.TransacaoCaixa, error) {
	query := `
		SELECT id, mercearia_id, tipo, meio_pagamento, valor, origem, referencia_id, data_transacao
		FROM transacoes_caixa
		WHERE mercearia_id = $1 AND tipo = 'entrada' AND data_transacao >= $2
		ORDER BY data_transacao DESC`
	rows, err := r.q.Query(context.Background(), query, merceariaID, desde)
	if err != nil {
		return nil, fmt.Errorf("list entradas caixa: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.TransacaoCaixa, 0)
	for rows.Next() {
		var t entity.TransacaoCaixa
		if err := rows.Scan(
			&t.ID, &t.MerceariaID, &t.Tipo, &t.MeioPagamento, &t.Valor,
			&t.Origem, &t.ReferenciaID, &t.DataTransacao,
		); err != nil {
			return nil, fmt.Errorf("scan transacao caixa: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}
