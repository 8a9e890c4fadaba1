package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/caderneta/mercearia-api/internal/domain/entity"
	"github.com/caderneta/mercearia-api/internal/domain/repository"
)

var _ repository.ContaPagarRepository = (*ContaPagarRepo)(nil)

const contaColunas = `id, mercearia_id, descricao, valor, data_vencimento, status, data_pagamento, created_at`

// ContaPagarRepo implementação do porto ContaPagarRepository sobre PostgreSQL.
type ContaPagarRepo struct {
	q Querier
}

// NewContaPagarRepository constrói o adaptador de contas a pagar. Passar pool ou tx (Querier).
func NewContaPagarRepository(q Querier) *ContaPagarRepo {
	return &ContaPagarRepo{q: q}
}

// Create persiste uma conta a pagar pendente.
func (r *ContaPagarRepo) Create(c *entity.ContaPagar) error {
	query := `
		INSERT INTO contas_a_pagar (` + contaColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.MerceariaID, c.Descricao, c.Valor, c.DataVencimento, c.Status, c.DataPagamento, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert conta a pagar: %w", err)
	}
	return nil
}

// List devolve as contas da mercearia, vencimento mais próximo primeiro.
func (r *ContaPagarRepo) List(merceariaID string) ([]*entity.ContaPagar, error) {
	query := `SELECT ` + contaColunas + ` FROM contas_a_pagar WHERE mercearia_id = $1 ORDER BY data_vencimento`
	rows, err := r.q.Query(context.Background(), query, merceariaID)
	if err != nil {
		return nil, fmt.Errorf("list contas: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.ContaPagar, 0)
	for rows.Next() {
		var c entity.ContaPagar
		if err := rows.Scan(
			&c.ID, &c.MerceariaID, &c.Descricao, &c.Valor, &c.DataVencimento,
			&c.Status, &c.DataPagamento, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan conta: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// GetByID obtém uma conta, escopada pela mercearia.
func (r *ContaPagarRepo) GetByID(merceariaID, id string) (*entity.ContaPagar, error) {
	query := `SELECT ` + contaColunas + ` FROM contas_a_pagar WHERE mercearia_id = $1 AND id = $2`
	var c entity.ContaPagar
	err := r.q.QueryRow(context.Background(), query, merceariaID, id).Scan(
		&c.ID, &c.MerceariaID, &c.Descricao, &c.Valor, &c.DataVencimento,
		&c.Status, &c.DataPagamento, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get conta: %w", err)
	}
	return &c, nil
}

// UpdatePendente edita a conta apenas enquanto pendente; false se não existir ou já paga.
func (r *ContaPagarRepo) UpdatePendente(c *entity.ContaPagar) (bool, error) {
	query := `
		UPDATE contas_a_pagar
		SET descricao = $3, valor = $4, data_vencimento = $5
		WHERE mercearia_id = $1 AND id = $2 AND status = 'pendente'`
	cmd, err := r.q.Exec(context.Background(), query,
		c.MerceariaID, c.ID, c.Descricao, c.Valor, c.DataVencimento,
	)
	if err != nil {
		return false, fmt.Errorf("update conta pendente: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// DeletePendente remove a conta apenas enquanto pendente; contas pagas são históricas.
func (r *ContaPagarRepo) DeletePendente(merceariaID, id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM contas_a_pagar WHERE mercearia_id = $1 AND id = $2 AND status = 'pendente'`,
		merceariaID, id)
	if err != nil {
		return false, fmt.Errorf("delete conta pendente: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// MarcarPaga grava status paga e data de pagamento; nil se a conta não for encontrada.
func (r *ContaPagarRepo) MarcarPaga(merceariaID, id string, quando time.Time) (*entity.ContaPagar, error) {
	query := `
		UPDATE contas_a_pagar
		SET status = 'paga', data_pagamento = $3
		WHERE mercearia_id = $1 AND id = $2
		RETURNING ` + contaColunas
	var c entity.ContaPagar
	err := r.q.QueryRow(context.Background(), query, merceariaID, id, quando).Scan(
		&c.ID, &c.MerceariaID, &c.Descricao, &c.Valor, &c.DataVencimento,
		&c.Status, &c.DataPagamento, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("marcar conta paga: %w", err)
	}
	return &c, nil
}
