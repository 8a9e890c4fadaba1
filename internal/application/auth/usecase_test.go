package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/caderneta/mercearia-api/internal/application/auth"
	"github.com/caderneta/mercearia-api/internal/application/dto"
	"github.com/caderneta/mercearia-api/internal/domain"
	"github.com/caderneta/mercearia-api/internal/domain/entity"
	"github.com/caderneta/mercearia-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type memOperadorRepo struct {
	operadores map[string]*entity.Operador
}

func newMemOperadorRepo() *memOperadorRepo {
	return &memOperadorRepo{operadores: map[string]*entity.Operador{}}
}

func (r *memOperadorRepo) Create(o *entity.Operador) error {
	cc := *o
	r.operadores[o.ID] = &cc
	return nil
}

func (r *memOperadorRepo) GetByID(id string) (*entity.Operador, error) {
	o, ok := r.operadores[id]
	if !ok {
		return nil, nil
	}
	cc := *o
	return &cc, nil
}

func (r *memOperadorRepo) GetByEmail(email string) (*entity.Operador, error) {
	for _, o := range r.operadores {
		if strings.EqualFold(o.Email, email) {
			cc := *o
			return &cc, nil
		}
	}
	return nil, nil
}

func (r *memOperadorRepo) ListByMercearia(string) ([]*entity.Operador, error) { return nil, nil }
func (r *memOperadorRepo) Update(*entity.Operador) error                      { return nil }
func (r *memOperadorRepo) UpdateStatus(_, _, _ string) (bool, error)          { return false, nil }
func (r *memOperadorRepo) Delete(_, _ string) (bool, error)                   { return false, nil }

type memMerceariaRepo struct {
	mercearias map[string]*entity.Mercearia
}

func newMemMerceariaRepo() *memMerceariaRepo {
	return &memMerceariaRepo{mercearias: map[string]*entity.Mercearia{}}
}

func (r *memMerceariaRepo) Create(m *entity.Mercearia) error {
	cc := *m
	r.mercearias[m.ID] = &cc
	return nil
}

func (r *memMerceariaRepo) GetByID(id string) (*entity.Mercearia, error) {
	m, ok := r.mercearias[id]
	if !ok {
		return nil, nil
	}
	cc := *m
	return &cc, nil
}

func (r *memMerceariaRepo) Update(*entity.Mercearia) error             { return nil }
func (r *memMerceariaRepo) UpdateStatus(_, _ string) (bool, error)     { return false, nil }
func (r *memMerceariaRepo) ListAtivas() ([]*entity.Mercearia, error)   { return nil, nil }
func (r *memMerceariaRepo) ListExcluidas() ([]*entity.Mercearia, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var cfg = auth.JWTConfig{Secret: "segredo-de-teste", ExpMinutes: 60, Issuer: "mercearia-api-test"}

func setup(t *testing.T) (*auth.AuthUseCase, *memOperadorRepo, *memMerceariaRepo) {
	t.Helper()
	operadorRepo := newMemOperadorRepo()
	merceariaRepo := newMemMerceariaRepo()
	return auth.NewAuthUseCase(operadorRepo, merceariaRepo, cfg), operadorRepo, merceariaRepo
}

func seedOperador(t *testing.T, opRepo *memOperadorRepo, mercRepo *memMerceariaRepo, statusOperador, statusAssinatura string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.MinCost)
	require.NoError(t, err)
	mercRepo.mercearias["merc-1"] = &entity.Mercearia{
		ID: "merc-1", NomeFantasia: "Mercearia do Bairro", StatusAssinatura: statusAssinatura,
	}
	opRepo.operadores["op-1"] = &entity.Operador{
		ID: "op-1", MerceariaID: "merc-1", Nome: "Maria", Email: "maria@example.com",
		SenhaHash: string(hash), Role: entity.RoleMerchant, Status: statusOperador,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Sucesso_EmiteTokenComClaims(t *testing.T) {
	uc, opRepo, mercRepo := setup(t)
	seedOperador(t, opRepo, mercRepo, entity.OperadorAtivo, entity.AssinaturaAtiva)

	out, err := uc.Login(dto.LoginRequest{Email: "maria@example.com", Senha: "senha123"})
	require.NoError(t, err)
	assert.Equal(t, "op-1", out.OperadorID)
	assert.Equal(t, "merc-1", out.MerceariaID)
	assert.Equal(t, entity.RoleMerchant, out.Role)

	operadorID, merceariaID, role, err := jwt.Parse(cfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "op-1", operadorID)
	assert.Equal(t, "merc-1", merceariaID)
	assert.Equal(t, entity.RoleMerchant, role)
}

func TestLogin_SenhaErrada(t *testing.T) {
	uc, opRepo, mercRepo := setup(t)
	seedOperador(t, opRepo, mercRepo, entity.OperadorAtivo, entity.AssinaturaAtiva)

	_, err := uc.Login(dto.LoginRequest{Email: "maria@example.com", Senha: "errada"})
	require.ErrorIs(t, err, domain.ErrNaoAutorizado)
}

func TestLogin_EmailDesconhecido(t *testing.T) {
	uc, _, _ := setup(t)
	_, err := uc.Login(dto.LoginRequest{Email: "ninguem@example.com", Senha: "senha123"})
	require.ErrorIs(t, err, domain.ErrNaoAutorizado, "mesmo erro de credencial, sem vazar se o email existe")
}

func TestLogin_OperadorInativo(t *testing.T) {
	uc, opRepo, mercRepo := setup(t)
	seedOperador(t, opRepo, mercRepo, entity.OperadorInativo, entity.AssinaturaAtiva)

	_, err := uc.Login(dto.LoginRequest{Email: "maria@example.com", Senha: "senha123"})
	require.ErrorIs(t, err, domain.ErrAcessoNegado, "senha certa não basta para conta desativada")
}

func TestLogin_AssinaturaBloqueada(t *testing.T) {
	uc, opRepo, mercRepo := setup(t)
	seedOperador(t, opRepo, mercRepo, entity.OperadorAtivo, entity.AssinaturaBloqueada)

	_, err := uc.Login(dto.LoginRequest{Email: "maria@example.com", Senha: "senha123"})
	require.ErrorIs(t, err, domain.ErrAssinaturaBloqueada)
}

func TestLogin_CamposVazios(t *testing.T) {
	uc, _, _ := setup(t)
	_, err := uc.Login(dto.LoginRequest{})
	require.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestRegistrar_CriaMerceariaEDonoComToken(t *testing.T) {
	uc, opRepo, mercRepo := setup(t)

	out, err := uc.Registrar(dto.RegistrarMerceariaRequest{
		NomeFantasia: "Mercadinho da Esquina",
		NomeDono:     "João",
		Email:        "joao@example.com",
		Senha:        "senha123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleMerchant, out.Role, "dono entra como merchant")
	assert.NotEmpty(t, out.Token)

	m, ok := mercRepo.mercearias[out.MerceariaID]
	require.True(t, ok, "mercearia persistida")
	assert.Equal(t, entity.AssinaturaAtiva, m.StatusAssinatura, "assinatura nasce ativa")

	dono, ok := opRepo.operadores[out.OperadorID]
	require.True(t, ok, "dono persistido")
	assert.Equal(t, out.MerceariaID, dono.MerceariaID)
	assert.NotEqual(t, "senha123", dono.SenhaHash, "senha nunca em claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(dono.SenhaHash), []byte("senha123")))
}

func TestRegistrar_EmailJaUsado(t *testing.T) {
	uc, opRepo, mercRepo := setup(t)
	seedOperador(t, opRepo, mercRepo, entity.OperadorAtivo, entity.AssinaturaAtiva)

	_, err := uc.Registrar(dto.RegistrarMerceariaRequest{
		NomeFantasia: "Outra",
		NomeDono:     "Maria",
		Email:        "MARIA@example.com",
		Senha:        "senha123",
	})
	require.ErrorIs(t, err, domain.ErrDuplicado, "comparação de email ignora caixa")
}

func TestRegistrar_CamposObrigatorios(t *testing.T) {
	uc, _, _ := setup(t)
	_, err := uc.Registrar(dto.RegistrarMerceariaRequest{NomeFantasia: "Só o nome"})
	require.ErrorIs(t, err, domain.ErrEntradaInvalida)
}
