package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transação do caixa.
const (
	CaixaEntrada = "entrada"
	CaixaSaida   = "saida"
)

// Origens de uma transação de caixa.
const (
	OrigemVenda  = "venda"
	OrigemFiado  = "fiado"
	OrigemManual = "manual"
)

// TransacaoCaixa registra dinheiro que entrou ou saiu do caixa da mercearia.
// Vendas à vista e liquidações de fiado geram uma entrada na mesma transação SQL.
type TransacaoCaixa struct {
	ID            string
	MerceariaID   string
	Tipo          string // entrada | saida
	MeioPagamento string
	Valor         decimal.Decimal
	Origem        string // venda | fiado | manual
	ReferenciaID  *string
	DataTransacao time.Time
}
