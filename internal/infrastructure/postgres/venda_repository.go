package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/caderneta/mercearia-api/internal/domain/entity"
	"github.com/caderneta/mercearia-api/internal/domain/repository"
)

var _ repository.VendaRepository = (*VendaRepo)(nil)

// VendaRepo implementação do porto VendaRepository sobre PostgreSQL (usável com pool ou tx).
type VendaRepo struct {
	q Querier
}

// NewVendaRepository constrói o adaptador de vendas. Passar pool ou tx (Querier).
func NewVendaRepository(q Querier) *VendaRepo {
	return &VendaRepo{q: q}
}

// Create persiste o cabeçalho da venda. Itens vão via CreateItem na mesma tx.
func (r *VendaRepo) Create(v *entity.Venda) error {
	query := `
		INSERT INTO vendas (id, mercearia_id, cliente_id, operador_id, valor_total, meio_pagamento, data_venda)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.MerceariaID, v.ClienteID, v.OperadorID, v.ValorTotal, v.MeioPagamento, v.DataVenda,
	)
	if err != nil {
		return fmt.Errorf("insert venda: %w", err)
	}
	return nil
}

// CreateItem persiste uma linha da venda com o nome do produto desnormalizado.
func (r *VendaRepo) CreateItem(i *entity.VendaItem) error {
	query := `
		INSERT INTO venda_itens (id, venda_id, produto_id, produto_nome, quantidade, preco_unitario)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		i.ID, i.VendaID, i.ProdutoID, i.ProdutoNome, i.Quantidade, i.PrecoUnitario,
	)
	if err != nil {
		return fmt.Errorf("insert venda item: %w", err)
	}
	return nil
}

// GetByID obtém uma venda com seus itens carregados.
func (r *VendaRepo) GetByID(merceariaID, id string) (*entity.Venda, error) {
	query := `
		SELECT id, mercearia_id, cliente_id, operador_id, valor_total, meio_pagamento, data_venda
		FROM vendas WHERE mercearia_id = $1 AND id = $2`
	var v entity.Venda
	err := r.q.QueryRow(context.Background(), query, merceariaID, id).Scan(
		&v.ID, &v.MerceariaID, &v.ClienteID, &v.OperadorID, &v.ValorTotal, &v.MeioPagamento, &v.DataVenda,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venda: %w", err)
	}
	itens, err := r.listItens([]string{v.ID})
	if err != nil {
		return nil, err
	}
	v.Itens = itens[v.ID]
	return &v, nil
}

// ListFiadoPorCliente devolve as vendas fiado do cliente com itens, mais recentes primeiro.
func (r *VendaRepo) ListFiadoPorCliente(merceariaID, clienteID string) ([]*entity.Venda, error) {
	query := `
		SELECT id, mercearia_id, cliente_id, operador_id, valor_total, meio_pagamento, data_venda
		FROM vendas
		WHERE mercearia_id = $1 AND cliente_id = $2 AND meio_pagamento = 'fiado'
		ORDER BY data_venda DESC`
	rows, err := r.q.Query(context.Background(), query, merceariaID, clienteID)
	if err != nil {
		return nil, fmt.Errorf("list vendas fiado: %w", err)
	}
	defer rows.Close()

	vendas := make([]*entity.Venda, 0)
	ids := make([]string, 0)
	for rows.Next() {
		var v entity.Venda
		if err := rows.Scan(
			&v.ID, &v.MerceariaID, &v.ClienteID, &v.OperadorID, &v.ValorTotal, &v.MeioPagamento, &v.DataVenda,
		); err != nil {
			return nil, fmt.Errorf("scan venda: %w", err)
		}
		vendas = append(vendas, &v)
		ids = append(ids, v.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return vendas, nil
	}

	itensPorVenda, err := r.listItens(ids)
	if err != nil {
		return nil, err
	}
	for _, v := range vendas {
		v.Itens = itensPorVenda[v.ID]
	}
	return vendas, nil
}

// listItens carrega os itens de um conjunto de vendas em uma consulta só.
func (r *VendaRepo) listItens(vendaIDs []string) (map[string][]entity.VendaItem, error) {
	query := `
		SELECT id, venda_id, produto_id, produto_nome, quantidade, preco_unitario
		FROM venda_itens WHERE venda_id = ANY($1)
		ORDER BY produto_nome`
	rows, err := r.q.Query(context.Background(), query, vendaIDs)
	if err != nil {
		return nil, fmt.Errorf("list venda itens: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.VendaItem)
	for rows.Next() {
		var i entity.VendaItem
		if err := rows.Scan(&i.ID, &i.VendaID, &i.ProdutoID, &i.ProdutoNome, &i.Quantidade, &i.PrecoUnitario); err != nil {
			return nil, fmt.Errorf("scan venda item: %w", err)
		}
		out[i.VendaID] = append(out[i.VendaID], i)
	}
	return out, rows.Err()
}
