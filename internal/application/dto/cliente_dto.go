package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CriarClienteRequest cadastro de cliente no caderninho.
type CriarClienteRequest struct {
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
}

// AtualizarClienteRequest edição de cliente (inclui limite de crédito e vencimento).
type AtualizarClienteRequest struct {
	Nome           string          `json:"nome"`
	Telefone       string          `json:"telefone"`
	LimiteCredito  decimal.Decimal `json:"limite_credito"`
	DataVencimento *time.Time      `json:"data_vencimento"`
}

// ClienteResponse cliente devolvido ao front.
type ClienteResponse struct {
	ID             string          `json:"id"`
	Nome           string          `json:"nome"`
	Telefone       string          `json:"telefone,omitempty"`
	SaldoDevedor   decimal.Decimal `json:"saldo_devedor"`
	LimiteCredito  decimal.Decimal `json:"limite_credito"`
	DataVencimento *time.Time      `json:"data_vencimento,omitempty"`
}

// LiquidarFiadoRequest pagamento que abate o saldo devedor.
type LiquidarFiadoRequest struct {
	ClienteID     string          `json:"cliente_id"`
	ValorPago     decimal.Decimal `json:"valor_pago"`
	MeioPagamento string          `json:"meio_pagamento"`
}

// LiquidarFiadoResponse resultado da liquidação.
type LiquidarFiadoResponse struct {
	Message   string          `json:"message"`
	NovoSaldo decimal.Decimal `json:"novo_saldo"`
}
