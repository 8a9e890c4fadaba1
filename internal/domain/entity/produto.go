package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto representa um item do catálogo de uma mercearia.
// EstoqueAtual é decimal porque há venda a granel (kg, litro); nunca fica negativo —
// só é decrementado dentro da transação de uma venda confirmada.
type Produto struct {
	ID              string
	MerceariaID     string
	Nome            string
	NomeNormalizado string // nome sem acentos, minúsculo; mantido na escrita para busca
	CodigoBarras    string // opcional, único por mercearia
	EstoqueAtual    decimal.Decimal
	EstoqueMinimo   decimal.Decimal
	PrecoCusto      decimal.Decimal
	PrecoVenda      decimal.Decimal
	CategoriaID     *string
	UnidadeMedida   string // un, kg, l...
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EstoqueBaixo indica se o produto atingiu o estoque mínimo configurado.
func (p *Produto) EstoqueBaixo() bool {
	return p.EstoqueAtual.LessThanOrEqual(p.EstoqueMinimo)
}
