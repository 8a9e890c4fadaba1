package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/caderneta/mercearia-api/internal/domain"
	"github.com/caderneta/mercearia-api/internal/domain/entity"
	"github.com/caderneta/mercearia-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

const clienteColunas = `id, mercearia_id, nome, telefone, saldo_devedor, limite_credito, data_vencimento, created_at, updated_at`

// ClienteRepo implementação do porto ClienteRepository sobre PostgreSQL (usável com pool ou tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository constrói o adaptador de clientes. Passar pool ou tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste um novo cliente com saldo zero.
func (r *ClienteRepo) Create(c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (` + clienteColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.MerceariaID, c.Nome, c.Telefone, c.SaldoDevedor, c.LimiteCredito,
		c.DataVencimento, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtém um cliente pelo ID, escopado pela mercearia.
func (r *ClienteRepo) GetByID(merceariaID, id string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColunas + ` FROM clientes WHERE mercearia_id = $1 AND id = $2`
	return r.scanUm(r.q.QueryRow(context.Background(), query, merceariaID, id), "get cliente")
}

// GetForUpdate obtém o cliente e bloqueia a linha (SELECT FOR UPDATE).
func (r *ClienteRepo) GetForUpdate(merceariaID, id string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColunas + ` FROM clientes WHERE mercearia_id = $1 AND id = $2 FOR UPDATE`
	return r.scanUm(r.q.QueryRow(context.Background(), query, merceariaID, id), "get cliente for update")
}

// Update atualiza o cadastro. Saldo devedor não passa por aqui.
func (r *ClienteRepo) Update(c *entity.Cliente) error {
	query := `
		UPDATE clientes
		SET nome = $3, telefone = $4, limite_credito = $5, data_vencimento = $6, updated_at = $7
		WHERE mercearia_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		c.MerceariaID, c.ID, c.Nome, c.Telefone, c.LimiteCredito, c.DataVencimento, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// UpdateSaldo grava o novo saldo devedor. Chamar só com a linha bloqueada via GetForUpdate.
func (r *ClienteRepo) UpdateSaldo(id string, novoSaldo decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE clientes SET saldo_devedor = $2, updated_at = now() WHERE id = $1`,
		id, novoSaldo,
	)
	if err != nil {
		return fmt.Errorf("update saldo: %w", err)
	}
	return nil
}

// Delete remove o cliente. O caso de uso já garantiu saldo zerado sob lock.
func (r *ClienteRepo) Delete(merceariaID, id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM clientes WHERE mercearia_id = $1 AND id = $2`, merceariaID, id)
	if err != nil {
		return false, fmt.Errorf("delete cliente: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Buscar procura por prefixo de nome ou telefone, case-insensitive.
func (r *ClienteRepo) Buscar(merceariaID, termo string, limit int) ([]*entity.Cliente, error) {
	query := `
		SELECT ` + clienteColunas + `
		FROM clientes
		WHERE mercearia_id = $1 AND (nome ILIKE $2 OR telefone LIKE $2)
		ORDER BY nome
		LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, merceariaID, termo+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("buscar clientes: %w", err)
	}
	return r.scanLista(rows)
}

// ListAll devolve todos os clientes da mercearia em ordem alfabética.
func (r *ClienteRepo) ListAll(merceariaID string) ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteColunas + ` FROM clientes WHERE mercearia_id = $1 ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query, merceariaID)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	return r.scanLista(rows)
}

// ListDevedores devolve os clientes com saldo acima de minSaldo, maior dívida primeiro.
func (r *ClienteRepo) ListDevedores(merceariaID string, minSaldo decimal.Decimal) ([]*entity.Cliente, error) {
	query := `
		SELECT ` + clienteColunas + `
		FROM clientes
		WHERE mercearia_id = $1 AND saldo_devedor > $2
		ORDER BY saldo_devedor DESC`
	rows, err := r.q.Query(context.Background(), query, merceariaID, minSaldo)
	if err != nil {
		return nil, fmt.Errorf("list devedores: %w", err)
	}
	return r.scanLista(rows)
}

func (r *ClienteRepo) scanUm(row pgx.Row, op string) (*entity.Cliente, error) {
	var c entity.Cliente
	err := row.Scan(
		&c.ID, &c.MerceariaID, &c.Nome, &c.Telefone, &c.SaldoDevedor,
		&c.LimiteCredito, &c.DataVencimento, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

func (r *ClienteRepo) scanLista(rows pgx.Rows) ([]*entity.Cliente, error) {
	defer rows.Close()
	out := make([]*entity.Cliente, 0)
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(
			&c.ID, &c.MerceariaID, &c.Nome, &c.Telefone, &c.SaldoDevedor,
			&c.LimiteCredito, &c.DataVencimento, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
