package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/caderneta/mercearia-api/internal/application/dto"
	"github.com/caderneta/mercearia-api/internal/domain"
	"github.com/caderneta/mercearia-api/internal/domain/entity"
	"github.com/caderneta/mercearia-api/internal/domain/repository"
)

// OperadorUseCase gestão das contas de operador de uma mercearia.
type OperadorUseCase struct {
	operadorRepo repository.OperadorRepository
}

// NewOperadorUseCase constrói o caso de uso.
func NewOperadorUseCase(operadorRepo repository.OperadorRepository) *OperadorUseCase {
	return &OperadorUseCase{operadorRepo: operadorRepo}
}

// Criar cadastra um operador ativo com senha hasheada (bcrypt).
func (uc *OperadorUseCase) Criar(merceariaID string, in dto.OperadorRequest) (*dto.OperadorResponse, error) {
	if merceariaID == "" || in.Nome == "" || in.Email == "" || in.Senha == "" {
		return nil, domain.ErrEntradaInvalida
	}
	existente, err := uc.operadorRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicado
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	o := &entity.Operador{
		ID:          uuid.New().String(),
		MerceariaID: merceariaID,
		Nome:        in.Nome,
		Email:       in.Email,
		Telefone:    in.Telefone,
		SenhaHash:   string(hash),
		Role:        entity.RoleOperador,
		Status:      entity.OperadorAtivo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.operadorRepo.Create(o); err != nil {
		return nil, err
	}
	resp := toOperadorResponse(o)
	return &resp, nil
}

// Listar devolve os operadores da mercearia em ordem alfabética.
func (uc *OperadorUseCase) Listar(merceariaID string) ([]dto.OperadorResponse, error) {
	operadores, err := uc.operadorRepo.ListByMercearia(merceariaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OperadorResponse, 0, len(operadores))
	for _, o := range operadores {
		out = append(out, toOperadorResponse(o))
	}
	return out, nil
}

// Detalhes devolve um operador, garantindo o escopo da mercearia.
func (uc *OperadorUseCase) Detalhes(merceariaID, id string) (*dto.OperadorResponse, error) {
	o, err := uc.operadorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil || o.MerceariaID != merceariaID {
		return nil, domain.ErrNaoEncontrado
	}
	resp := toOperadorResponse(o)
	return &resp, nil
}

// Atualizar edita nome/telefone e, se enviada, troca a senha.
func (uc *OperadorUseCase) Atualizar(merceariaID, id string, in dto.OperadorRequest) (*dto.OperadorResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrEntradaInvalida
	}
	o, err := uc.operadorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil || o.MerceariaID != merceariaID {
		return nil, domain.ErrNaoEncontrado
	}
	o.Nome = in.Nome
	o.Telefone = in.Telefone
	if in.Senha != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		o.SenhaHash = string(hash)
	}
	o.UpdatedAt = time.Now()
	if err := uc.operadorRepo.Update(o); err != nil {
		return nil, err
	}
	resp := toOperadorResponse(o)
	return &resp, nil
}

// AlterarStatus ativa ou desativa o acesso do operador.
func (uc *OperadorUseCase) AlterarStatus(merceariaID, id, status string) error {
	if status != entity.OperadorAtivo && status != entity.OperadorInativo {
		return domain.ErrEntradaInvalida
	}
	ok, err := uc.operadorRepo.UpdateStatus(merceariaID, id, status)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// Deletar remove a conta do operador.
func (uc *OperadorUseCase) Deletar(merceariaID, id string) error {
	ok, err := uc.operadorRepo.Delete(merceariaID, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// ValidarAcesso confirma que o operador existe e está ativo (entrada no PDV).
func (uc *OperadorUseCase) ValidarAcesso(operadorID string) error {
	if operadorID == "" {
		return domain.ErrEntradaInvalida
	}
	o, err := uc.operadorRepo.GetByID(operadorID)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.ErrNaoEncontrado
	}
	if o.Status != entity.OperadorAtivo {
		return domain.ErrAcessoNegado
	}
	return nil
}

func toOperadorResponse(o *entity.Operador) dto.OperadorResponse {
	return dto.OperadorResponse{
		ID:        o.ID,
		Nome:      o.Nome,
		Email:     o.Email,
		Telefone:  o.Telefone,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}
