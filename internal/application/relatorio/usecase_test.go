package relatorio_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caderneta/mercearia-api/internal/application/dto"
	"github.com/caderneta/mercearia-api/internal/application/relatorio"
	"github.com/caderneta/mercearia-api/internal/domain"
	"github.com/caderneta/mercearia-api/internal/domain/entity"
	"github.com/caderneta/mercearia-api/internal/domain/repository"
)

const mercID = "mercearia-1"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type memRelatorioRepo struct {
	dre    *repository.DREResult
	linhas []repository.ProdutoVendidoResult

	// capturado para inspecionar o período repassado
	ultimoInicio time.Time
	ultimoFim    time.Time
	ultimaCat    *string
}

func (r *memRelatorioRepo) DRE(_ context.Context, _ string, inicio, fim time.Time) (*repository.DREResult, error) {
	r.ultimoInicio, r.ultimoFim = inicio, fim
	return r.dre, nil
}

func (r *memRelatorioRepo) ProdutosVendidos(_ context.Context, _ string, inicio, fim time.Time, categoriaID *string) ([]repository.ProdutoVendidoResult, error) {
	r.ultimoInicio, r.ultimoFim, r.ultimaCat = inicio, fim, categoriaID
	return r.linhas, nil
}

type memMerceariaRepo struct{ m *entity.Mercearia }

func (r *memMerceariaRepo) Create(*entity.Mercearia) error            { return nil }
func (r *memMerceariaRepo) GetByID(string) (*entity.Mercearia, error) { return r.m, nil }
func (r *memMerceariaRepo) Update(*entity.Mercearia) error            { return nil }
func (r *memMerceariaRepo) UpdateStatus(_, _ string) (bool, error)    { return false, nil }
func (r *memMerceariaRepo) ListAtivas() ([]*entity.Mercearia, error)  { return nil, nil }
func (r *memMerceariaRepo) ListExcluidas() ([]*entity.Mercearia, error) {
	return nil, nil
}

type fakePDFGen struct {
	nome   string
	inicio time.Time
	fim    time.Time
}

func (g *fakePDFGen) GerarDREPDF(nomeMercearia string, inicio, fim time.Time, _ *dto.DREResponse) ([]byte, error) {
	g.nome, g.inicio, g.fim = nomeMercearia, inicio, fim
	return []byte("%PDF-1.7 fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func dia(d string) time.Time {
	t, _ := time.Parse("2006-01-02", d)
	return t
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestDRE_PeriodoInvalido(t *testing.T) {
	uc := relatorio.NewUseCase(&memRelatorioRepo{}, &memMerceariaRepo{}, nil)

	casos := []struct {
		nome        string
		inicio, fim time.Time
	}{
		{"fim igual ao inicio", dia("2026-03-01"), dia("2026-03-01")},
		{"fim antes do inicio", dia("2026-03-10"), dia("2026-03-01")},
	}
	for _, c := range casos {
		_, err := uc.DRE(context.Background(), mercID, c.inicio, c.fim)
		assert.ErrorIs(t, err, domain.ErrPeriodoInvalido, c.nome)
	}

	_, err := uc.DRE(context.Background(), mercID, time.Time{}, dia("2026-03-01"))
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "início zerado")
}

func TestDRE_RepassaAgregadosDoRepositorio(t *testing.T) {
	repo := &memRelatorioRepo{dre: &repository.DREResult{
		ReceitaBruta:    dec("1000.00"),
		ReceitaDinheiro: dec("400.00"),
		ReceitaPix:      dec("300.00"),
		ReceitaCartao:   dec("200.00"),
		ReceitaFiado:    dec("100.00"),
		CMV:             dec("600.00"),
		DespesasPagas:   dec("150.00"),
		LucroBruto:      dec("400.00"),
		LucroLiquido:    dec("250.00"),
	}}
	uc := relatorio.NewUseCase(repo, &memMerceariaRepo{}, nil)

	out, err := uc.DRE(context.Background(), mercID, dia("2026-03-01"), dia("2026-04-01"))
	require.NoError(t, err)

	assert.True(t, dec("1000.00").Equal(out.ReceitaBruta))
	assert.True(t, dec("400.00").Equal(out.LucroBruto), "receita - CMV")
	assert.True(t, dec("250.00").Equal(out.LucroLiquido), "lucro bruto - despesas pagas")
	soma := out.ReceitaDinheiro.Add(out.ReceitaPix).Add(out.ReceitaCartao).Add(out.ReceitaFiado)
	assert.True(t, out.ReceitaBruta.Equal(soma), "receita bruta é a soma dos meios")
	assert.Equal(t, dia("2026-03-01"), repo.ultimoInicio)
	assert.Equal(t, dia("2026-04-01"), repo.ultimoFim, "fim exclusivo repassado como veio")
}

func TestDREPDF_UsaNomeDaMercearia(t *testing.T) {
	repo := &memRelatorioRepo{dre: &repository.DREResult{}}
	gen := &fakePDFGen{}
	uc := relatorio.NewUseCase(repo, &memMerceariaRepo{m: &entity.Mercearia{
		ID: mercID, NomeFantasia: "Mercearia do Bairro",
	}}, gen)

	pdf, err := uc.DREPDF(context.Background(), mercID, dia("2026-03-01"), dia("2026-04-01"))
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "Mercearia do Bairro", gen.nome)
	assert.Equal(t, dia("2026-04-01"), gen.fim)
}

func TestDREPDF_MerceariaInexistente(t *testing.T) {
	repo := &memRelatorioRepo{dre: &repository.DREResult{}}
	uc := relatorio.NewUseCase(repo, &memMerceariaRepo{m: nil}, &fakePDFGen{})

	_, err := uc.DREPDF(context.Background(), mercID, dia("2026-03-01"), dia("2026-04-01"))
	require.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestProdutosVendidos_SemVendas_DevolveVazio(t *testing.T) {
	uc := relatorio.NewUseCase(&memRelatorioRepo{}, &memMerceariaRepo{}, nil)

	out, err := uc.ProdutosVendidos(context.Background(), mercID, dia("2026-03-01"), dia("2026-04-01"), nil)
	require.NoError(t, err)
	assert.NotNil(t, out, "slice vazio, nunca null no JSON")
	assert.Empty(t, out)
}

func TestProdutosVendidos_RepassaFiltroDeCategoria(t *testing.T) {
	repo := &memRelatorioRepo{linhas: []repository.ProdutoVendidoResult{
		{ProdutoID: "p1", ProdutoNome: "Arroz 5kg", CategoriaNome: "Grãos", QuantidadeTotal: dec("12"), ReceitaTotal: dec("300.00")},
		{ProdutoID: "p2", ProdutoNome: "Feijão", CategoriaNome: "Grãos", QuantidadeTotal: dec("8"), ReceitaTotal: dec("64.00")},
	}}
	uc := relatorio.NewUseCase(repo, &memMerceariaRepo{}, nil)

	catID := "cat-graos"
	out, err := uc.ProdutosVendidos(context.Background(), mercID, dia("2026-03-01"), dia("2026-04-01"), &catID)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Arroz 5kg", out[0].ProdutoNome)
	require.NotNil(t, repo.ultimaCat)
	assert.Equal(t, "cat-graos", *repo.ultimaCat)
}
