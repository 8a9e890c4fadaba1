package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContaPagarRequest criação/edição de conta a pagar.
type ContaPagarRequest struct {
	Descricao      string          `json:"descricao"`
	Valor          decimal.Decimal `json:"valor"`
	DataVencimento time.Time       `json:"data_vencimento"`
}

// ContaPagarResponse conta a pagar com status derivado (atrasada quando vencida).
type ContaPagarResponse struct {
	ID             string          `json:"id"`
	Descricao      string          `json:"descricao"`
	Valor          decimal.Decimal `json:"valor"`
	DataVencimento time.Time       `json:"data_vencimento"`
	Status         string          `json:"status"`
	DataPagamento  *time.Time      `json:"data_pagamento,omitempty"`
}

// ResumoCaixaResponse entradas do dia por meio de pagamento.
type ResumoCaixaResponse struct {
	TotalEntradasDia decimal.Decimal `json:"total_entradas_dia"`
	TotalDinheiro    decimal.Decimal `json:"total_dinheiro"`
	TotalPix         decimal.Decimal `json:"total_pix"`
	TotalCartao      decimal.Decimal `json:"total_cartao"`
}
