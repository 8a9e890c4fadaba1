package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PagamentoFiado é o evento de liquidação: um pagamento que reduz o
// saldo devedor de um cliente. Registrado na mesma transação do abatimento.
type PagamentoFiado struct {
	ID            string
	MerceariaID   string
	ClienteID     string
	ValorPago     decimal.Decimal
	MeioPagamento string
	DataPagamento time.Time
}
