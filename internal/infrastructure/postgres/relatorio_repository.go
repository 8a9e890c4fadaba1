package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/caderneta/mercearia-api/internal/domain/entity"
	"github.com/caderneta/mercearia-api/internal/domain/repository"
)

var _ repository.RelatorioRepository = (*RelatorioRepo)(nil)

// RelatorioRepo consultas de agregação para os relatórios gerenciais.
// Só leitura; roda fora de transação, direto no pool.
type RelatorioRepo struct {
	q Querier
}

// NewRelatorioRepository constrói o adaptador de relatórios.
func NewRelatorioRepository(q Querier) *RelatorioRepo {
	return &RelatorioRepo{q: q}
}

// DRE monta o demonstrativo de resultado do período [inicio, fim).
// CMV usa o preço de custo atual do produto; itens de produtos excluídos
// entram com custo zero (LEFT JOIN).
func (r *RelatorioRepo) DRE(ctx context.Context, merceariaID string, inicio, fim time.Time) (*repository.DREResult, error) {
	res := &repository.DREResult{
		ReceitaBruta:    decimal.Zero,
		ReceitaDinheiro: decimal.Zero,
		ReceitaPix:      decimal.Zero,
		ReceitaCartao:   decimal.Zero,
		ReceitaFiado:    decimal.Zero,
		CMV:             decimal.Zero,
		DespesasPagas:   decimal.Zero,
	}

	receitaQuery := `
		SELECT meio_pagamento, COALESCE(SUM(valor_total), 0)
		FROM vendas
		WHERE mercearia_id = $1 AND data_venda >= $2 AND data_venda < $3
		GROUP BY meio_pagamento`
	rows, err := r.q.Query(ctx, receitaQuery, merceariaID, inicio, fim)
	if err != nil {
		return nil, fmt.Errorf("dre receita: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var meio string
		var total decimal.Decimal
		if err := rows.Scan(&meio, &total); err != nil {
			return nil, fmt.Errorf("scan dre receita: %w", err)
		}
		res.ReceitaBruta = res.ReceitaBruta.Add(total)
		switch meio {
		case entity.MeioDinheiro:
			res.ReceitaDinheiro = total
		case entity.MeioPix:
			res.ReceitaPix = total
		case entity.MeioCartao:
			res.ReceitaCartao = total
		case entity.MeioFiado:
			res.ReceitaFiado = total
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	cmvQuery := `
		SELECT COALESCE(SUM(vi.quantidade * COALESCE(p.preco_custo, 0)), 0)
		FROM venda_itens vi
		JOIN vendas v ON v.id = vi.venda_id
		LEFT JOIN produtos p ON p.id = vi.produto_id
		WHERE v.mercearia_id = $1 AND v.data_venda >= $2 AND v.data_venda < $3`
	if err := r.q.QueryRow(ctx, cmvQuery, merceariaID, inicio, fim).Scan(&res.CMV); err != nil {
		return nil, fmt.Errorf("dre cmv: %w", err)
	}

	despesasQuery := `
		SELECT COALESCE(SUM(valor), 0)
		FROM contas_a_pagar
		WHERE mercearia_id = $1 AND status = 'paga'
		  AND data_pagamento >= $2 AND data_pagamento < $3`
	if err := r.q.QueryRow(ctx, despesasQuery, merceariaID, inicio, fim).Scan(&res.DespesasPagas); err != nil {
		return nil, fmt.Errorf("dre despesas: %w", err)
	}

	res.LucroBruto = res.ReceitaBruta.Sub(res.CMV)
	res.LucroLiquido = res.LucroBruto.Sub(res.DespesasPagas)
	return res, nil
}

// ProdutosVendidos agrega quantidade e receita por produto no período [inicio, fim),
// opcionalmente filtrado por categoria. Maior receita primeiro.
func (r *RelatorioRepo) ProdutosVendidos(ctx context.Context, merceariaID string, inicio, fim time.Time, categoriaID *string) ([]repository.ProdutoVendidoResult, error) {
	query := `
		SELECT COALESCE(vi.produto_id::text, ''), vi.produto_nome, COALESCE(c.nome, ''),
		       COALESCE(SUM(vi.quantidade), 0), COALESCE(SUM(vi.quantidade * vi.preco_unitario), 0)
		FROM venda_itens vi
		JOIN vendas v ON v.id = vi.venda_id
		LEFT JOIN produtos p ON p.id = vi.produto_id
		LEFT JOIN categorias c ON c.id = p.categoria_id
		WHERE v.mercearia_id = $1 AND v.data_venda >= $2 AND v.data_venda < $3
		  AND ($4::text IS NULL OR p.categoria_id = $4)
		GROUP BY vi.produto_id, vi.produto_nome, c.nome
		ORDER BY SUM(vi.quantidade * vi.preco_unitario) DESC`
	rows, err := r.q.Query(ctx, query, merceariaID, inicio, fim, categoriaID)
	if err != nil {
		return nil, fmt.Errorf("relatorio produtos: %w", err)
	}
	defer rows.Close()

	out := make([]repository.ProdutoVendidoResult, 0)
	for rows.Next() {
		var linha repository.ProdutoVendidoResult
		if err := rows.Scan(
			&linha.ProdutoID, &linha.ProdutoNome, &linha.CategoriaNome,
			&linha.QuantidadeTotal, &linha.ReceitaTotal,
		); err != nil {
			return nil, fmt.Errorf("scan relatorio produtos: %w", err)
		}
		out = append(out, linha)
	}
	return out, rows.Err()
}
