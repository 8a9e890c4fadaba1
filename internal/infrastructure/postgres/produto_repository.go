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

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

const produtoColunas = `id, mercearia_id, nome, nome_normalizado, codigo_barras, estoque_atual, estoque_minimo, preco_custo, preco_venda, categoria_id, unidade_medida, created_at, updated_at`

// ProdutoRepo implementação do porto ProdutoRepository sobre PostgreSQL (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador de persistência de produtos. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

// Create persiste um novo produto. Código de barras é único por mercearia.
func (r *ProdutoRepo) Create(p *entity.Produto) error {
	query := `
		INSERT INTO produtos (` + produtoColunas + `)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.MerceariaID, p.Nome, p.NomeNormalizado, p.CodigoBarras,
		p.EstoqueAtual, p.EstoqueMinimo, p.PrecoCusto, p.PrecoVenda,
		p.CategoriaID, p.UnidadeMedida, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto pelo ID, escopado pela mercearia.
func (r *ProdutoRepo) GetByID(merceariaID, id string) (*entity.Produto, error) {
	query := `SELECT ` + produtoColunas + ` FROM produtos WHERE mercearia_id = $1 AND id = $2`
	return r.scanUm(r.q.QueryRow(context.Background(), query, merceariaID, id), "get produto")
}

// GetForUpdate obtém o produto e bloqueia a linha (SELECT FOR UPDATE).
func (r *ProdutoRepo) GetForUpdate(merceariaID, id string) (*entity.Produto, error) {
	query := `SELECT ` + produtoColunas + ` FROM produtos WHERE mercearia_id = $1 AND id = $2 FOR UPDATE`
	return r.scanUm(r.q.QueryRow(context.Background(), query, merceariaID, id), "get produto for update")
}

// UpdateEstoque grava o estoque como valor absoluto. Baixas e reposições de
// venda chamam com a linha bloqueada via GetForUpdate; a correção de cadastro
// do retaguarda grava direto.
func (r *ProdutoRepo) UpdateEstoque(id string, novoEstoque decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE produtos SET estoque_atual = $2, updated_at = now() WHERE id = $1`,
		id, novoEstoque,
	)
	if err != nil {
		return fmt.Errorf("update estoque: %w", err)
	}
	return nil
}

// Update atualiza o cadastro do produto. Estoque não é tocado aqui; correções
// de estoque passam por UpdateEstoque.
func (r *ProdutoRepo) Update(p *entity.Produto) error {
	query := `
		UPDATE produtos
		SET nome = $3, nome_normalizado = $4, codigo_barras = NULLIF($5, ''), estoque_minimo = $6,
		    preco_custo = $7, preco_venda = $8, categoria_id = $9, unidade_medida = $10, updated_at = $11
		WHERE mercearia_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		p.MerceariaID, p.ID, p.Nome, p.NomeNormalizado, p.CodigoBarras,
		p.EstoqueMinimo, p.PrecoCusto, p.PrecoVenda, p.CategoriaID, p.UnidadeMedida, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// Delete remove o produto. Itens de venda antigos guardam o nome desnormalizado.
func (r *ProdutoRepo) Delete(merceariaID, id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM produtos WHERE mercearia_id = $1 AND id = $2`, merceariaID, id)
	if err != nil {
		return false, fmt.Errorf("delete produto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List devolve o catálogo da mercearia em ordem alfabética.
func (r *ProdutoRepo) List(merceariaID string) ([]*entity.Produto, error) {
	query := `SELECT ` + produtoColunas + ` FROM produtos WHERE mercearia_id = $1 ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query, merceariaID)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	return r.scanLista(rows)
}

// ListEstoqueBaixo devolve os produtos com estoque no mínimo ou abaixo.
func (r *ProdutoRepo) ListEstoqueBaixo(merceariaID string) ([]*entity.Produto, error) {
	query := `
		SELECT ` + produtoColunas + `
		FROM produtos
		WHERE mercearia_id = $1 AND estoque_atual <= estoque_minimo
		ORDER BY estoque_atual ASC`
	rows, err := r.q.Query(context.Background(), query, merceariaID)
	if err != nil {
		return nil, fmt.Errorf("list estoque baixo: %w", err)
	}
	return r.scanLista(rows)
}

// BuscarPDV busca por código de barras exato ou prefixo de nome (case-insensitive).
func (r *ProdutoRepo) BuscarPDV(merceariaID, termo string, limit int) ([]*entity.Produto, error) {
	query := `
		SELECT ` + produtoColunas + `
		FROM produtos
		WHERE mercearia_id = $1 AND (codigo_barras = $2 OR nome ILIKE $3)
		ORDER BY nome
		LIMIT $4`
	rows, err := r.q.Query(context.Background(), query, merceariaID, termo, termo+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("buscar produtos pdv: %w", err)
	}
	return r.scanLista(rows)
}

// BuscarNormalizado compara contra nome_normalizado; o termo já chega sem acentos.
func (r *ProdutoRepo) BuscarNormalizado(merceariaID, termoNormalizado string, limit int) ([]*entity.Produto, error) {
	query := `
		SELECT ` + produtoColunas + `
		FROM produtos
		WHERE mercearia_id = $1 AND nome_normalizado LIKE $2
		ORDER BY nome
		LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, merceariaID, "%"+termoNormalizado+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("buscar produtos normalizado: %w", err)
	}
	return r.scanLista(rows)
}

func (r *ProdutoRepo) scanUm(row pgx.Row, op string) (*entity.Produto, error) {
	var p entity.Produto
	var codigoBarras *string
	err := row.Scan(
		&p.ID, &p.MerceariaID, &p.Nome, &p.NomeNormalizado, &codigoBarras,
		&p.EstoqueAtual, &p.EstoqueMinimo, &p.PrecoCusto, &p.PrecoVenda,
		&p.CategoriaID, &p.UnidadeMedida, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if codigoBarras != nil {
		p.CodigoBarras = *codigoBarras
	}
	return &p, nil
}

func (r *ProdutoRepo) scanLista(rows pgx.Rows) ([]*entity.Produto, error) {
	defer rows.Close()
	out := make([]*entity.Produto, 0)
	for rows.Next() {
		var p entity.Produto
		var codigoBarras *string
		if err := rows.Scan(
			&p.ID, &p.MerceariaID, &p.Nome, &p.NomeNormalizado, &codigoBarras,
			&p.EstoqueAtual, &p.EstoqueMinimo, &p.PrecoCusto, &p.PrecoVenda,
			&p.CategoriaID, &p.UnidadeMedida, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		if codigoBarras != nil {
			p.CodigoBarras = *codigoBarras
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
