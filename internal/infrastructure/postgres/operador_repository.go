package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/caderneta/mercearia-api/internal/domain"
	"github.com/caderneta/mercearia-api/internal/domain/entity"
	"github.com/caderneta/mercearia-api/internal/domain/repository"
)

var _ repository.OperadorRepository = (*OperadorRepo)(nil)

const operadorColunas = `id, mercearia_id, nome, email, telefone, senha_hash, role, status, created_at, updated_at`

// OperadorRepo implementação do porto OperadorRepository sobre PostgreSQL.
type OperadorRepo struct {
	q Querier
}

// NewOperadorRepository constrói o adaptador de operadores. Passar pool ou tx (Querier).
func NewOperadorRepository(q Querier) *OperadorRepo {
	return &OperadorRepo{q: q}
}

// Create persiste um operador. Email é único no sistema inteiro.
func (r *OperadorRepo) Create(o *entity.Operador) error {
	query := `
		INSERT INTO operadores (` + operadorColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.MerceariaID, o.Nome, o.Email, o.Telefone, o.SenhaHash,
		o.Role, o.Status, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert operador: %w", err)
	}
	return nil
}

// GetByID obtém um operador pelo ID.
func (r *OperadorRepo) GetByID(id string) (*entity.Operador, error) {
	query := `SELECT ` + operadorColunas + ` FROM operadores WHERE id = $1`
	return r.scanUm(r.q.QueryRow(context.Background(), query, id), "get operador")
}

// GetByEmail obtém um operador pelo email (login).
func (r *OperadorRepo) GetByEmail(email string) (*entity.Operador, error) {
	query := `SELECT ` + operadorColunas + ` FROM operadores WHERE lower(email) = lower($1)`
	return r.scanUm(r.q.QueryRow(context.Background(), query, email), "get operador por email")
}

// ListByMercearia devolve os operadores da mercearia em ordem alfabética.
func (r *OperadorRepo) ListByMercearia(merceariaID string) ([]*entity.Operador, error) {
	query := `SELECT ` + operadorColunas + ` FROM operadores WHERE mercearia_id = $1 ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query, merceariaID)
	if err != nil {
		return nil, fmt.Errorf("list operadores: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Operador, 0)
	for rows.Next() {
		var o entity.Operador
		if err := rows.Scan(
			&o.ID, &o.MerceariaID, &o.Nome, &o.Email, &o.Telefone, &o.SenhaHash,
			&o.Role, &o.Status, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan operador: %w", err)
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}

// Update atualiza nome, telefone e hash de senha do operador.
func (r *OperadorRepo) Update(o *entity.Operador) error {
	query := `
		UPDATE operadores
		SET nome = $2, telefone = $3, senha_hash = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.Nome, o.Telefone, o.SenhaHash, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update operador: %w", err)
	}
	return nil
}

// UpdateStatus ativa/desativa o acesso; false se não existir na mercearia.
func (r *OperadorRepo) UpdateStatus(merceariaID, id, status string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE operadores SET status = $3, updated_at = now() WHERE mercearia_id = $1 AND id = $2`,
		merceariaID, id, status,
	)
	if err != nil {
		return false, fmt.Errorf("update status operador: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete remove a conta do operador.
func (r *OperadorRepo) Delete(merceariaID, id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM operadores WHERE mercearia_id = $1 AND id = $2`, merceariaID, id)
	if err != nil {
		return false, fmt.Errorf("delete operador: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *OperadorRepo) scanUm(row pgx.Row, op string) (*entity.Operador, error) {
	var o entity.Operador
	err := row.Scan(
		&o.ID, &o.MerceariaID, &o.Nome, &o.Email, &o.Telefone, &o.SenhaHash,
		&o.Role, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &o, nil
}
