package postgres

import (
	"context"
	"fmt"

	"github.com/caderneta/mercearia-api/internal/domain"
	"github.com/caderneta/mercearia-api/internal/domain/entity"
	"github.com/caderneta/mercearia-api/internal/domain/repository"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementação do porto CategoriaRepository sobre PostgreSQL.
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository constrói o adaptador de categorias. Passar pool ou tx (Querier).
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Create persiste uma categoria. Nome é único por mercearia.
func (r *CategoriaRepo) Create(c *entity.Categoria) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO categorias (id, mercearia_id, nome) VALUES ($1, $2, $3)`,
		c.ID, c.MerceariaID, c.Nome,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// List devolve as categorias da mercearia em ordem alfabética.
func (r *CategoriaRepo) List(merceariaID string) ([]*entity.Categoria, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, mercearia_id, nome FROM categorias WHERE mercearia_id = $1 ORDER BY nome`,
		merceariaID,
	)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Categoria, 0)
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.MerceariaID, &c.Nome); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Update renomeia a categoria; devolve false se não existir na mercearia.
func (r *CategoriaRepo) Update(c *entity.Categoria) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE categorias SET nome = $3 WHERE mercearia_id = $1 AND id = $2`,
		c.MerceariaID, c.ID, c.Nome,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrDuplicado
		}
		return false, fmt.Errorf("update categoria: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete remove a categoria; o FK em produtos é ON DELETE SET NULL.
func (r *CategoriaRepo) Delete(merceariaID, id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM categorias WHERE mercearia_id = $1 AND id = $2`, merceariaID, id)
	if err != nil {
		return false, fmt.Errorf("delete categoria: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
