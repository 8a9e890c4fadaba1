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

var _ repository.MerceariaRepository = (*MerceariaRepo)(nil)

const merceariaColunas = `id, nome_fantasia, cnpj, telefone, email_contato, endereco_completo, logo_url, status_assinatura, data_vencimento, created_at, updated_at`

// MerceariaRepo implementação do porto MerceariaRepository sobre PostgreSQL.
type MerceariaRepo struct {
	q Querier
}

// NewMerceariaRepository constrói o adaptador de mercearias. Passar pool ou tx (Querier).
func NewMerceariaRepository(q Querier) *MerceariaRepo {
	return &MerceariaRepo{q: q}
}

// Create persiste uma nova mercearia.
func (r *MerceariaRepo) Create(m *entity.Mercearia) error {
	query := `
		INSERT INTO mercearias (` + merceariaColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.NomeFantasia, m.CNPJ, m.Telefone, m.EmailContato, m.EnderecoCompleto,
		m.LogoURL, m.StatusAssinatura, m.DataVencimento, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert mercearia: %w", err)
	}
	return nil
}

// GetByID obtém uma mercearia pelo ID.
func (r *MerceariaRepo) GetByID(id string) (*entity.Mercearia, error) {
	query := `SELECT ` + merceariaColunas + ` FROM mercearias WHERE id = $1`
	var m entity.Mercearia
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.NomeFantasia, &m.CNPJ, &m.Telefone, &m.EmailContato, &m.EnderecoCompleto,
		&m.LogoURL, &m.StatusAssinatura, &m.DataVencimento, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mercearia: %w", err)
	}
	return &m, nil
}

// Update atualiza o cadastro da mercearia. Status passa por UpdateStatus.
func (r *MerceariaRepo) Update(m *entity.Mercearia) error {
	query := `
		UPDATE mercearias
		SET nome_fantasia = $2, cnpj = $3, telefone = $4, email_contato = $5,
		    endereco_completo = $6, logo_url = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.NomeFantasia, m.CNPJ, m.Telefone, m.EmailContato,
		m.EnderecoCompleto, m.LogoURL, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update mercearia: %w", err)
	}
	return nil
}

// UpdateStatus troca o status de assinatura; false se a mercearia não existir.
func (r *MerceariaRepo) UpdateStatus(id, status string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE mercearias SET status_assinatura = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return false, fmt.Errorf("update status mercearia: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ListAtivas devolve todas as mercearias não excluídas, mais recentes primeiro.
func (r *MerceariaRepo) ListAtivas() ([]*entity.Mercearia, error) {
	query := `
		SELECT ` + merceariaColunas + `
		FROM mercearias WHERE status_assinatura <> 'excluida'
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list mercearias ativas: %w", err)
	}
	return r.scanLista(rows)
}

// ListExcluidas devolve as mercearias marcadas como excluídas.
func (r *MerceariaRepo) ListExcluidas() ([]*entity.Mercearia, error) {
	query := `
		SELECT ` + merceariaColunas + `
		FROM mercearias WHERE status_assinatura = 'excluida'
		ORDER BY updated_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list mercearias excluidas: %w", err)
	}
	return r.scanLista(rows)
}

func (r *MerceariaRepo) scanLista(rows pgx.Rows) ([]*entity.Mercearia, error) {
	defer rows.Close()
	out := make([]*entity.Mercearia, 0)
	for rows.Next() {
		var m entity.Mercearia
		if err := rows.Scan(
			&m.ID, &m.NomeFantasia, &m.CNPJ, &m.Telefone, &m.EmailContato, &m.EnderecoCompleto,
			&m.LogoURL, &m.StatusAssinatura, &m.DataVencimento, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan mercearia: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}
