package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemCarrinho linha do carrinho enviada pelo PDV.
type ItemCarrinho struct {
	ProdutoID     string          `json:"produto_id"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
}

// FinalizarVendaRequest checkout de uma venda.
// ValorTotal é reconciliado com a soma dos itens no servidor.
type FinalizarVendaRequest struct {
	ValorTotal    decimal.Decimal `json:"valor_total"`
	MeioPagamento string          `json:"meio_pagamento"`
	Carrinho      []ItemCarrinho  `json:"carrinho"`
	ClienteID     *string         `json:"cliente_id"`
}

// FinalizarVendaResponse resposta do checkout.
type FinalizarVendaResponse struct {
	VendaID    string          `json:"venda_id"`
	ValorTotal decimal.Decimal `json:"valor_total"`
	Message    string          `json:"message"`
}

// VendaFiadoResponse venda fiado com itens (extrato do caderninho).
type VendaFiadoResponse struct {
	VendaID    string              `json:"venda_id"`
	DataVenda  time.Time           `json:"data_venda"`
	ValorTotal decimal.Decimal     `json:"valor_total"`
	Itens      []ItemFiadoResponse `json:"itens"`
}

// ItemFiadoResponse item de uma venda fiado.
type ItemFiadoResponse struct {
	ProdutoNome   string          `json:"produto_nome"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
}
