package dto

import "github.com/shopspring/decimal"

// ProdutoRequest criação/atualização de produto.
type ProdutoRequest struct {
	Nome          string          `json:"nome"`
	CodigoBarras  string          `json:"codigo_barras"`
	EstoqueAtual  decimal.Decimal `json:"estoque_atual"`
	EstoqueMinimo decimal.Decimal `json:"estoque_minimo"`
	PrecoCusto    decimal.Decimal `json:"preco_custo"`
	PrecoVenda    decimal.Decimal `json:"preco_venda"`
	CategoriaID   *string         `json:"categoria_id"`
	UnidadeMedida string          `json:"unidade_medida"`
}

// ProdutoResponse produto devolvido ao front.
type ProdutoResponse struct {
	ID            string          `json:"id"`
	Nome          string          `json:"nome"`
	CodigoBarras  string          `json:"codigo_barras,omitempty"`
	EstoqueAtual  decimal.Decimal `json:"estoque_atual"`
	EstoqueMinimo decimal.Decimal `json:"estoque_minimo"`
	PrecoCusto    decimal.Decimal `json:"preco_custo"`
	PrecoVenda    decimal.Decimal `json:"preco_venda"`
	CategoriaID   *string         `json:"categoria_id,omitempty"`
	NomeCategoria string          `json:"nome_categoria,omitempty"`
	UnidadeMedida string          `json:"unidade_medida"`
	EstoqueBaixo  bool            `json:"estoque_baixo"`
}
