package relatorio

import (
	"context"
	"time"

	"github.com/caderneta/mercearia-api/internal/application/dto"
	"github.com/caderneta/mercearia-api/internal/domain"
	"github.com/caderneta/mercearia-api/internal/domain/repository"
)

// DREPDFGenerator gera a versão em PDF do DRE (implementado com Maroto).
type DREPDFGenerator interface {
	GerarDREPDF(nomeMercearia string, inicio, fim time.Time, dre *dto.DREResponse) ([]byte, error)
}

// UseCase relatórios somente leitura sobre o histórico de vendas e despesas.
// Intervalos são meio-abertos [inicio, fim); chamadas idênticas sem escritas
// no meio devolvem o mesmo resultado.
type UseCase struct {
	relatorioRepo repository.RelatorioRepository
	merceariaRepo repository.MerceariaRepository
	pdfGen        DREPDFGenerator
}

// NewUseCase constrói o caso de uso.
func NewUseCase(relatorioRepo repository.RelatorioRepository, merceariaRepo repository.MerceariaRepository, pdfGen DREPDFGenerator) *UseCase {
	return &UseCase{relatorioRepo: relatorioRepo, merceariaRepo: merceariaRepo, pdfGen: pdfGen}
}

// DRE gera o demonstrativo de resultado do período.
func (uc *UseCase) DRE(ctx context.Context, merceariaID string, inicio, fim time.Time) (*dto.DREResponse, error) {
	if err := validarPeriodo(merceariaID, inicio, fim); err != nil {
		return nil, err
	}
	r, err := uc.relatorioRepo.DRE(ctx, merceariaID, inicio, fim)
	if err != nil {
		return nil, err
	}
	return &dto.DREResponse{
		ReceitaBruta:    r.ReceitaBruta,
		ReceitaDinheiro: r.ReceitaDinheiro,
		ReceitaPix:      r.ReceitaPix,
		ReceitaCartao:   r.ReceitaCartao,
		ReceitaFiado:    r.ReceitaFiado,
		CMV:             r.CMV,
		LucroBruto:      r.LucroBruto,
		DespesasPagas:   r.DespesasPagas,
		LucroLiquido:    r.LucroLiquido,
	}, nil
}

// DREPDF gera o demonstrativo do período em PDF para impressão.
func (uc *UseCase) DREPDF(ctx context.Context, merceariaID string, inicio, fim time.Time) ([]byte, error) {
	dre, err := uc.DRE(ctx, merceariaID, inicio, fim)
	if err != nil {
		return nil, err
	}
	m, err := uc.merceariaRepo.GetByID(merceariaID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return uc.pdfGen.GerarDREPDF(m.NomeFantasia, inicio, fim, dre)
}

// ProdutosVendidos agrega quantidade e receita por produto, com filtro
// opcional de categoria. Sem resultados devolve slice vazio, nunca nil
// com linha nula.
func (uc *UseCase) ProdutosVendidos(ctx context.Context, merceariaID string, inicio, fim time.Time, categoriaID *string) ([]dto.ProdutoVendidoResponse, error) {
	if err := validarPeriodo(merceariaID, inicio, fim); err != nil {
		return nil, err
	}
	linhas, err := uc.relatorioRepo.ProdutosVendidos(ctx, merceariaID, inicio, fim, categoriaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProdutoVendidoResponse, 0, len(linhas))
	for _, l := range linhas {
		out = append(out, dto.ProdutoVendidoResponse{
			ProdutoID:       l.ProdutoID,
			ProdutoNome:     l.ProdutoNome,
			CategoriaNome:   l.CategoriaNome,
			QuantidadeTotal: l.QuantidadeTotal,
			ReceitaTotal:    l.ReceitaTotal,
		})
	}
	return out, nil
}

func validarPeriodo(merceariaID string, inicio, fim time.Time) error {
	if merceariaID == "" || inicio.IsZero() || fim.IsZero() {
		return domain.ErrEntradaInvalida
	}
	if !fim.After(inicio) {
		return domain.ErrPeriodoInvalido
	}
	return nil
}
