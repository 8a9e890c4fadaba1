package entity

import "time"

// Status de assinatura da mercearia.
const (
	AssinaturaAtiva     = "ativa"
	AssinaturaBloqueada = "bloqueada"
	AssinaturaExcluida  = "excluida"
)

// Mercearia representa um tenant: uma loja com catálogo, clientes e caixa próprios.
// Todo dado do sistema é particionado por MerceariaID.
type Mercearia struct {
	ID               string
	NomeFantasia     string
	CNPJ             string
	Telefone         string
	EmailContato     string
	EnderecoCompleto string
	LogoURL          string
	StatusAssinatura string // ativa | bloqueada | excluida
	DataVencimento   *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// AssinaturaVencida indica se a assinatura passou da data de vencimento.
func (m *Mercearia) AssinaturaVencida(agora time.Time) bool {
	return m.DataVencimento != nil && m.DataVencimento.Before(agora)
}
