package dto

import "time"

// RegistrarMerceariaRequest registro de uma nova loja com a conta do dono.
type RegistrarMerceariaRequest struct {
	NomeFantasia string `json:"nome_fantasia"`
	NomeDono     string `json:"nome_dono"`
	Email        string `json:"email"`
	Senha        string `json:"senha"`
}

// DadosMerceariaRequest atualização do cadastro da loja.
type DadosMerceariaRequest struct {
	NomeFantasia     string `json:"nome_fantasia"`
	CNPJ             string `json:"cnpj"`
	Telefone         string `json:"telefone"`
	EmailContato     string `json:"email_contato"`
	EnderecoCompleto string `json:"endereco_completo"`
	LogoURL          string `json:"logo_url"`
}

// MerceariaResponse dados da loja.
type MerceariaResponse struct {
	ID               string     `json:"id"`
	NomeFantasia     string     `json:"nome_fantasia"`
	CNPJ             string     `json:"cnpj,omitempty"`
	Telefone         string     `json:"telefone,omitempty"`
	EmailContato     string     `json:"email_contato,omitempty"`
	EnderecoCompleto string     `json:"endereco_completo,omitempty"`
	LogoURL          string     `json:"logo_url,omitempty"`
	StatusAssinatura string     `json:"status_assinatura"`
	DataVencimento   *time.Time `json:"data_vencimento,omitempty"`
}

// StatusAssinaturaResponse verificação de assinatura no login.
type StatusAssinaturaResponse struct {
	Status  string `json:"status"`
	Nome    string `json:"nome"`
	LogoURL string `json:"logo_url,omitempty"`
}
