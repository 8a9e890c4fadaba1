package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/caderneta/mercearia-api/internal/application/dto"
	"github.com/caderneta/mercearia-api/internal/domain"
	"github.com/caderneta/mercearia-api/internal/domain/entity"
	"github.com/caderneta/mercearia-api/internal/domain/repository"
	"github.com/caderneta/mercearia-api/pkg/jwt"
)

// JWTConfig configuração para emissão de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login de operadores e donos de mercearia.
type AuthUseCase struct {
	operadorRepo  repository.OperadorRepository
	merceariaRepo repository.MerceariaRepository
	jwtCfg        JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(operadorRepo repository.OperadorRepository, merceariaRepo repository.MerceariaRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{operadorRepo: operadorRepo, merceariaRepo: merceariaRepo, jwtCfg: jwtCfg}
}

// Registrar cria a mercearia e a conta do dono (role merchant) e já emite o token.
func (uc *AuthUseCase) Registrar(in dto.RegistrarMerceariaRequest) (*dto.LoginResponse, error) {
	if in.NomeFantasia == "" || in.NomeDono == "" || in.Email == "" || in.Senha == "" {
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
	m := &entity.Mercearia{
		ID:               uuid.New().String(),
		NomeFantasia:     in.NomeFantasia,
		StatusAssinatura: entity.AssinaturaAtiva,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.merceariaRepo.Create(m); err != nil {
		return nil, err
	}
	dono := &entity.Operador{
		ID:          uuid.New().String(),
		MerceariaID: m.ID,
		Nome:        in.NomeDono,
		Email:       in.Email,
		SenhaHash:   string(hash),
		Role:        entity.RoleMerchant,
		Status:      entity.OperadorAtivo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.operadorRepo.Create(dono); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, dono.ID, m.ID, dono.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:       token,
		OperadorID:  dono.ID,
		MerceariaID: m.ID,
		Role:        dono.Role,
		Nome:        dono.Nome,
	}, nil
}

// Login valida credenciais e emite o JWT com mercearia e papel.
// Operador inativo ou mercearia bloqueada não entram, mesmo com senha certa.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Senha == "" {
		return nil, domain.ErrEntradaInvalida
	}
	o, err := uc.operadorRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNaoAutorizado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(o.SenhaHash), []byte(in.Senha)); err != nil {
		return nil, domain.ErrNaoAutorizado
	}
	if o.Status != entity.OperadorAtivo {
		return nil, domain.ErrAcessoNegado
	}
	m, err := uc.merceariaRepo.GetByID(o.MerceariaID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if m.StatusAssinatura != entity.AssinaturaAtiva {
		return nil, domain.ErrAssinaturaBloqueada
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, o.ID, o.MerceariaID, o.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:       token,
		OperadorID:  o.ID,
		MerceariaID: o.MerceariaID,
		Role:        o.Role,
		Nome:        o.Nome,
	}, nil
}
