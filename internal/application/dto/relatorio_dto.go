package dto

import "github.com/shopspring/decimal"

// DREResponse demonstrativo de resultado do exercício no período.
type DREResponse struct {
	ReceitaBruta    decimal.Decimal `json:"receita_bruta"`
	ReceitaDinheiro decimal.Decimal `json:"receita_dinheiro"`
	ReceitaPix      decimal.Decimal `json:"receita_pix"`
	ReceitaCartao   decimal.Decimal `json:"receita_cartao"`
	ReceitaFiado    decimal.Decimal `json:"receita_fiado"`
	CMV             decimal.Decimal `json:"cmv"`
	LucroBruto      decimal.Decimal `json:"lucro_bruto"`
	DespesasPagas   decimal.Decimal `json:"despesas_pagas"`
	LucroLiquido    decimal.Decimal `json:"lucro_liquido"`
}

// ProdutoVendidoResponse linha do relatório de produtos vendidos.
type ProdutoVendidoResponse struct {
	ProdutoID       string          `json:"produto_id"`
	ProdutoNome     string          `json:"produto_nome"`
	CategoriaNome   string          `json:"categoria_nome,omitempty"`
	QuantidadeTotal decimal.Decimal `json:"quantidade_total"`
	ReceitaTotal    decimal.Decimal `json:"receita_total"`
}
