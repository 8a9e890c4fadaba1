package usecase

import (
	"time"

	"github.com/caderneta/mercearia-api/internal/application/dto"
	"github.com/caderneta/mercearia-api/internal/domain"
	"github.com/caderneta/mercearia-api/internal/domain/entity"
	"github.com/caderneta/mercearia-api/internal/domain/repository"
)

// MerceariaUseCase gestão dos tenants: registro, cadastro, assinatura
// e administração da plataforma (exclusão lógica e restauração).
type MerceariaUseCase struct {
	merceariaRepo repository.MerceariaRepository
}

// NewMerceariaUseCase constrói o caso de uso.
func NewMerceariaUseCase(merceariaRepo repository.MerceariaRepository) *MerceariaUseCase {
	return &MerceariaUseCase{merceariaRepo: merceariaRepo}
}

// Dados devolve o cadastro completo da mercearia.
func (uc *MerceariaUseCase) Dados(merceariaID string) (*dto.MerceariaResponse, error) {
	m, err := uc.merceariaRepo.GetByID(merceariaID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNaoEncontrado
	}
	resp := toMerceariaResponse(m)
	return &resp, nil
}

// AtualizarDados edita o cadastro (CNPJ, contato, endereço, logo).
func (uc *MerceariaUseCase) AtualizarDados(merceariaID string, in dto.DadosMerceariaRequest) (*dto.MerceariaResponse, error) {
	if in.NomeFantasia == "" {
		return nil, domain.ErrEntradaInvalida
	}
	m, err := uc.merceariaRepo.GetByID(merceariaID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNaoEncontrado
	}
	m.NomeFantasia = in.NomeFantasia
	m.CNPJ = in.CNPJ
	m.Telefone = in.Telefone
	m.EmailContato = in.EmailContato
	m.EnderecoCompleto = in.EnderecoCompleto
	m.LogoURL = in.LogoURL
	m.UpdatedAt = time.Now()
	if err := uc.merceariaRepo.Update(m); err != nil {
		return nil, err
	}
	resp := toMerceariaResponse(m)
	return &resp, nil
}

// VerificarAssinatura checa o status no login. Assinatura ativa vencida é
// rebaixada para bloqueada na hora da checagem.
func (uc *MerceariaUseCase) VerificarAssinatura(merceariaID string) (*dto.StatusAssinaturaResponse, error) {
	m, err := uc.merceariaRepo.GetByID(merceariaID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNaoEncontrado
	}
	status := m.StatusAssinatura
	if status == entity.AssinaturaAtiva && m.AssinaturaVencida(time.Now()) {
		if _, err := uc.merceariaRepo.UpdateStatus(m.ID, entity.AssinaturaBloqueada); err != nil {
			return nil, err
		}
		status = entity.AssinaturaBloqueada
	}
	return &dto.StatusAssinaturaResponse{
		Status:  status,
		Nome:    m.NomeFantasia,
		LogoURL: m.LogoURL,
	}, nil
}

// ListarAtivas lista todas as mercearias não excluídas (admin da plataforma).
func (uc *MerceariaUseCase) ListarAtivas() ([]dto.MerceariaResponse, error) {
	lista, err := uc.merceariaRepo.ListAtivas()
	if err != nil {
		return nil, err
	}
	return toMerceariaResponses(lista), nil
}

// ListarExcluidas lista as mercearias marcadas como excluídas (admin).
func (uc *MerceariaUseCase) ListarExcluidas() ([]dto.MerceariaResponse, error) {
	lista, err := uc.merceariaRepo.ListExcluidas()
	if err != nil {
		return nil, err
	}
	return toMerceariaResponses(lista), nil
}

// Excluir marca a mercearia como excluída (exclusão lógica, reversível).
func (uc *MerceariaUseCase) Excluir(merceariaID string) error {
	ok, err := uc.merceariaRepo.UpdateStatus(merceariaID, entity.AssinaturaExcluida)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// Restaurar reativa uma mercearia excluída.
func (uc *MerceariaUseCase) Restaurar(merceariaID string) error {
	ok, err := uc.merceariaRepo.UpdateStatus(merceariaID, entity.AssinaturaAtiva)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNaoEncontrado
	}
	return nil
}

func toMerceariaResponse(m *entity.Mercearia) dto.MerceariaResponse {
	return dto.MerceariaResponse{
		ID:               m.ID,
		NomeFantasia:     m.NomeFantasia,
		CNPJ:             m.CNPJ,
		Telefone:         m.Telefone,
		EmailContato:     m.EmailContato,
		EnderecoCompleto: m.EnderecoCompleto,
		LogoURL:          m.LogoURL,
		StatusAssinatura: m.StatusAssinatura,
		DataVencimento:   m.DataVencimento,
	}
}

func toMerceariaResponses(lista []*entity.Mercearia) []dto.MerceariaResponse {
	out := make([]dto.MerceariaResponse, 0, len(lista))
	for _, m := range lista {
		out = append(out, toMerceariaResponse(m))
	}
	return out
}
