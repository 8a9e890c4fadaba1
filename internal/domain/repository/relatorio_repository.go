package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DREResult agrega o demonstrativo de resultado de um período [inicio, fim).
type DREResult struct {
	ReceitaBruta    decimal.Decimal
	ReceitaDinheiro decimal.Decimal
	ReceitaPix      decimal.Decimal
	ReceitaCartao   decimal.Decimal
	ReceitaFiado    decimal.Decimal
	CMV             decimal.Decimal // custo das mercadorias vendidas (qtd × preço de custo)
	DespesasPagas   decimal.Decimal // contas a pagar quitadas no período
	LucroBruto      decimal.Decimal
	LucroLiquido    decimal.Decimal
}

// ProdutoVendidoResult é uma linha do relatório de produtos vendidos.
type ProdutoVendidoResult struct {
	ProdutoID       string
	ProdutoNome     string
	CategoriaNome   string
	QuantidadeTotal decimal.Decimal
	ReceitaTotal    decimal.Decimal
}

// RelatorioRepository consultas de agregação somente leitura.
// Intervalos são meio-abertos: [inicio, fim).
type RelatorioRepository interface {
	DRE(ctx context.Context, merceariaID string, inicio, fim time.Time) (*DREResult, error)
	ProdutosVendidos(ctx context.Context, merceariaID string, inicio, fim time.Time, categoriaID *string) ([]ProdutoVendidoResult, error)
}
