package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status persistidos de uma conta a pagar. "atrasada" é derivado
// (pendente com vencimento no passado), nunca gravado.
const (
	ContaPendente = "pendente"
	ContaPaga     = "paga"
	ContaAtrasada = "atrasada"
)

// ContaPagar representa uma despesa da mercearia (fornecedor, aluguel...).
type ContaPagar struct {
	ID             string
	MerceariaID    string
	Descricao      string
	Valor          decimal.Decimal
	DataVencimento time.Time
	Status         string // pendente | paga
	DataPagamento  *time.Time
	CreatedAt      time.Time
}

// StatusDerivado devolve o status exibido: pendente vencida vira atrasada.
func (c *ContaPagar) StatusDerivado(agora time.Time) string {
	if c.Status == ContaPendente && c.DataVencimento.Before(agora) {
		return ContaAtrasada
	}
	return c.Status
}
