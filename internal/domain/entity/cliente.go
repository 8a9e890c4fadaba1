package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cliente representa um cliente do caderninho de fiado de uma mercearia.
// SaldoDevedor começa em zero e nunca fica negativo; LimiteCredito zero
// significa limite não configurado (fiado liberado).
type Cliente struct {
	ID             string
	MerceariaID    string
	Nome           string
	Telefone       string
	SaldoDevedor   decimal.Decimal
	LimiteCredito  decimal.Decimal
	DataVencimento *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
