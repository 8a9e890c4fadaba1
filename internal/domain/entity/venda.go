package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Meios de pagamento aceitos no PDV.
const (
	MeioDinheiro = "dinheiro"
	MeioPix      = "pix"
	MeioCartao   = "cartao"
	MeioFiado    = "fiado"
)

// ParseMeioPagamento normaliza o meio de pagamento recebido do PDV.
// Aceita variações de caixa e acento ("Fiado", "Cartão"). Devolve "" se desconhecido.
func ParseMeioPagamento(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dinheiro":
		return MeioDinheiro
	case "pix":
		return MeioPix
	case "cartao", "cartão", "debito", "débito", "credito", "crédito":
		return MeioCartao
	case "fiado":
		return MeioFiado
	default:
		return ""
	}
}

// Venda é o registro imutável de um checkout concluído.
// ClienteID só é preenchido em vendas fiado.
type Venda struct {
	ID            string
	MerceariaID   string
	ClienteID     *string
	OperadorID    string
	ValorTotal    decimal.Decimal
	MeioPagamento string
	DataVenda     time.Time
	Itens         []VendaItem
}

// VendaItem é uma linha da venda com o preço praticado no momento.
// ProdutoNome é desnormalizado para o histórico sobreviver à exclusão do produto.
type VendaItem struct {
	ID            string
	VendaID       string
	ProdutoID     *string
	ProdutoNome   string
	Quantidade    decimal.Decimal
	PrecoUnitario decimal.Decimal
}

// Subtotal devolve quantidade × preço unitário.
func (i VendaItem) Subtotal() decimal.Decimal {
	return i.Quantidade.Mul(i.PrecoUnitario)
}
