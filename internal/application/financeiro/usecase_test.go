package financeiro_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caderneta/mercearia-api/internal/application/dto"
	"github.com/caderneta/mercearia-api/internal/application/financeiro"
	"github.com/caderneta/mercearia-api/internal/domain"
	"github.com/caderneta/mercearia-api/internal/domain/entity"
)

const mercID = "mercearia-1"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type memContaRepo struct {
	contas map[string]*entity.ContaPagar
}

func newMemContaRepo() *memContaRepo {
	return &memContaRepo{contas: map[string]*entity.ContaPagar{}}
}

func (r *memContaRepo) Create(c *entity.ContaPagar) error {
	cc := *c
	r.contas[c.ID] = &cc
	return nil
}

func (r *memContaRepo) List(merceariaID string) ([]*entity.ContaPagar, error) {
	var out []*entity.ContaPagar
	for _, c := range r.contas {
		if c.MerceariaID == merceariaID {
			cc := *c
			out = append(out, &cc)
		}
	}
	return out, nil
}

func (r *memContaRepo) GetByID(merceariaID, id string) (*entity.ContaPagar, error) {
	c, ok := r.contas[id]
	if !ok || c.MerceariaID != merceariaID {
		return nil, nil
	}
	cc := *c
	return &cc, nil
}

func (r *memContaRepo) UpdatePendente(c *entity.ContaPagar) (bool, error) {
	atual, ok := r.contas[c.ID]
	if !ok || atual.MerceariaID != c.MerceariaID || atual.Status != entity.ContaPendente {
		return false, nil
	}
	atual.Descricao = c.Descricao
	atual.Valor = c.Valor
	atual.DataVencimento = c.DataVencimento
	return true, nil
}

func (r *memContaRepo) DeletePendente(merceariaID, id string) (bool, error) {
	c, ok := r.contas[id]
	if !ok || c.MerceariaID != merceariaID || c.Status != entity.ContaPendente {
		return false, nil
	}
	delete(r.contas, id)
	return true, nil
}

func (r *memContaRepo) MarcarPaga(merceariaID, id string, quando time.Time) (*entity.ContaPagar, error) {
	c, ok := r.contas[id]
	if !ok || c.MerceariaID != merceariaID {
		return nil, nil
	}
	c.Status = entity.ContaPaga
	c.DataPagamento = &quando
	cc := *c
	return &cc, nil
}

type memCaixaRepo struct {
	transacoes []entity.TransacaoCaixa
}

func (r *memCaixaRepo) Create(t *entity.TransacaoCaixa) error {
	r.transacoes = append(r.transacoes, *t)
	return nil
}

func (r *memCaixaRepo) EntradasDesde(merceariaID string, desde time.Time) ([]*entity.TransacaoCaixa, error) {
	var out []*entity.TransacaoCaixa
	for i := range r.transacoes {
		t := r.transacoes[i]
		if t.MerceariaID == merceariaID && t.Tipo == entity.CaixaEntrada && !t.DataTransacao.Before(desde) {
			out = append(out, &t)
		}
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func setup(t *testing.T) (*financeiro.UseCase, *memContaRepo, *memCaixaRepo) {
	t.Helper()
	contaRepo := newMemContaRepo()
	caixaRepo := &memCaixaRepo{}
	return financeiro.NewUseCase(contaRepo, caixaRepo), contaRepo, caixaRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCriarConta_NascePendente(t *testing.T) {
	uc, contaRepo, _ := setup(t)

	out, err := uc.CriarConta(mercID, dto.ContaPagarRequest{
		Descricao:      "Fornecedor de hortifruti",
		Valor:          dec("350.00"),
		DataVencimento: time.Now().AddDate(0, 0, 7),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ContaPendente, out.Status)
	assert.Equal(t, entity.ContaPendente, contaRepo.contas[out.ID].Status)
}

func TestCriarConta_ValorNaoPositivo_Rejeitado(t *testing.T) {
	uc, _, _ := setup(t)
	_, err := uc.CriarConta(mercID, dto.ContaPagarRequest{
		Descricao:      "Aluguel",
		Valor:          decimal.Zero,
		DataVencimento: time.Now(),
	})
	require.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestListarContas_PendenteVencida_VemComoAtrasada(t *testing.T) {
	uc, contaRepo, _ := setup(t)
	contaRepo.contas["vencida"] = &entity.ContaPagar{
		ID: "vencida", MerceariaID: mercID, Descricao: "Luz",
		Valor: dec("200.00"), Status: entity.ContaPendente,
		DataVencimento: time.Now().AddDate(0, 0, -3),
	}
	contaRepo.contas["futura"] = &entity.ContaPagar{
		ID: "futura", MerceariaID: mercID, Descricao: "Água",
		Valor: dec("80.00"), Status: entity.ContaPendente,
		DataVencimento: time.Now().AddDate(0, 0, 3),
	}

	out, err := uc.ListarContas(mercID, "")
	require.NoError(t, err)
	require.Len(t, out, 2)

	porID := map[string]string{}
	for _, c := range out {
		porID[c.ID] = c.Status
	}
	assert.Equal(t, entity.ContaAtrasada, porID["vencida"], "pendente com vencimento passado exibe atrasada")
	assert.Equal(t, entity.ContaPendente, porID["futura"])
	// "atrasada" nunca é gravada, só exibida.
	assert.Equal(t, entity.ContaPendente, contaRepo.contas["vencida"].Status)
}

func TestListarContas_FiltroPorStatusDerivado(t *testing.T) {
	uc, contaRepo, _ := setup(t)
	pago := time.Now().AddDate(0, 0, -1)
	contaRepo.contas["a"] = &entity.ContaPagar{
		ID: "a", MerceariaID: mercID, Descricao: "Luz", Valor: dec("200.00"),
		Status: entity.ContaPendente, DataVencimento: time.Now().AddDate(0, 0, -3),
	}
	contaRepo.contas["b"] = &entity.ContaPagar{
		ID: "b", MerceariaID: mercID, Descricao: "Telefone", Valor: dec("90.00"),
		Status: entity.ContaPaga, DataVencimento: time.Now().AddDate(0, 0, -10), DataPagamento: &pago,
	}

	atrasadas, err := uc.ListarContas(mercID, "atrasada")
	require.NoError(t, err)
	require.Len(t, atrasadas, 1)
	assert.Equal(t, "a", atrasadas[0].ID)

	pagas, err := uc.ListarContas(mercID, "paga")
	require.NoError(t, err)
	require.Len(t, pagas, 1)
	assert.Equal(t, "b", pagas[0].ID, "conta paga vencida não vira atrasada")
}

func TestAtualizarConta_Paga_NaoEncontrada(t *testing.T) {
	uc, contaRepo, _ := setup(t)
	pago := time.Now()
	contaRepo.contas["c1"] = &entity.ContaPagar{
		ID: "c1", MerceariaID: mercID, Descricao: "Aluguel", Valor: dec("900.00"),
		Status: entity.ContaPaga, DataVencimento: time.Now(), DataPagamento: &pago,
	}

	_, err := uc.AtualizarConta(mercID, "c1", dto.ContaPagarRequest{
		Descricao: "Aluguel reajustado", Valor: dec("950.00"), DataVencimento: time.Now(),
	})
	require.ErrorIs(t, err, domain.ErrNaoEncontrado, "conta paga é imutável")
	assert.Equal(t, "Aluguel", contaRepo.contas["c1"].Descricao)
}

func TestDeletarConta_Paga_Recusa(t *testing.T) {
	uc, contaRepo, _ := setup(t)
	pago := time.Now()
	contaRepo.contas["c1"] = &entity.ContaPagar{
		ID: "c1", MerceariaID: mercID, Descricao: "Luz", Valor: dec("100.00"),
		Status: entity.ContaPaga, DataVencimento: time.Now(), DataPagamento: &pago,
	}

	err := uc.DeletarConta(mercID, "c1")
	require.ErrorIs(t, err, domain.ErrNaoEncontrado)
	assert.Contains(t, contaRepo.contas, "c1", "histórico de pagamento preservado")
}

func TestPagarConta_GravaDataPagamento(t *testing.T) {
	uc, contaRepo, _ := setup(t)
	contaRepo.contas["c1"] = &entity.ContaPagar{
		ID: "c1", MerceariaID: mercID, Descricao: "Fornecedor", Valor: dec("500.00"),
		Status: entity.ContaPendente, DataVencimento: time.Now().AddDate(0, 0, -1),
	}

	out, err := uc.PagarConta(mercID, "c1")
	require.NoError(t, err)
	assert.Equal(t, entity.ContaPaga, out.Status)
	require.NotNil(t, out.DataPagamento)
	assert.WithinDuration(t, time.Now(), *out.DataPagamento, time.Minute)
}

func TestPagarConta_Inexistente(t *testing.T) {
	uc, _, _ := setup(t)
	_, err := uc.PagarConta(mercID, "fantasma")
	require.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestResumoCaixa_SomaPorMeio(t *testing.T) {
	uc, _, caixaRepo := setup(t)
	hoje := time.Now()
	ontem := hoje.AddDate(0, 0, -1)

	caixaRepo.transacoes = []entity.TransacaoCaixa{
		{MerceariaID: mercID, Tipo: entity.CaixaEntrada, MeioPagamento: entity.MeioDinheiro, Valor: dec("50.00"), DataTransacao: hoje},
		{MerceariaID: mercID, Tipo: entity.CaixaEntrada, MeioPagamento: entity.MeioPix, Valor: dec("30.00"), DataTransacao: hoje},
		{MerceariaID: mercID, Tipo: entity.CaixaEntrada, MeioPagamento: entity.MeioCartao, Valor: dec("20.00"), DataTransacao: hoje},
		{MerceariaID: mercID, Tipo: entity.CaixaEntrada, MeioPagamento: entity.MeioDinheiro, Valor: dec("10.00"), DataTransacao: hoje},
		// fora do dia: não entra no resumo
		{MerceariaID: mercID, Tipo: entity.CaixaEntrada, MeioPagamento: entity.MeioDinheiro, Valor: dec("99.00"), DataTransacao: ontem},
	}

	out, err := uc.ResumoCaixa(mercID)
	require.NoError(t, err)
	assert.True(t, dec("110.00").Equal(out.TotalEntradasDia), "esperado 110.00, veio %s", out.TotalEntradasDia)
	assert.True(t, dec("60.00").Equal(out.TotalDinheiro))
	assert.True(t, dec("30.00").Equal(out.TotalPix))
	assert.True(t, dec("20.00").Equal(out.TotalCartao))
}

func TestResumoCaixa_SemMovimento_Zerado(t *testing.T) {
	uc, _, _ := setup(t)
	out, err := uc.ResumoCaixa(mercID)
	require.NoError(t, err)
	assert.True(t, decimal.Zero.Equal(out.TotalEntradasDia))
}
