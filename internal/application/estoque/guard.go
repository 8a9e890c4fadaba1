package estoque

import (
	"github.com/shopspring/decimal"

	"github.com/caderneta/mercearia-api/internal/domain"
	"github.com/caderneta/mercearia-api/internal/domain/entity"
	"github.com/caderneta/mercearia-api/internal/domain/repository"
)

// Baixar decrementa o estoque de um produto dentro da transação do chamador.
// Bloqueia a linha (SELECT FOR UPDATE), rejeita resultado negativo com
// ErrEstoqueInsuficiente e grava o novo valor. O produtoRepo recebido DEVE
// estar atado à mesma tx da venda: se qualquer item falhar, o rollback do
// chamador desfaz todas as baixas anteriores.
func Baixar(produtoRepo repository.ProdutoRepository, merceariaID, produtoID string, qtd decimal.Decimal) (*entity.Produto, error) {
	if !qtd.GreaterThan(decimal.Zero) {
		return nil, domain.ErrEntradaInvalida
	}
	p, err := produtoRepo.GetForUpdate(merceariaID, produtoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNaoEncontrado
	}
	novo := p.EstoqueAtual.Sub(qtd)
	if novo.IsNegative() {
		return nil, domain.ErrEstoqueInsuficiente
	}
	if err := produtoRepo.UpdateEstoque(p.ID, novo); err != nil {
		return nil, err
	}
	p.EstoqueAtual = novo
	return p, nil
}

// Repor incrementa o estoque (entrada de mercadoria ou estorno), também sob lock.
func Repor(produtoRepo repository.ProdutoRepository, merceariaID, produtoID string, qtd decimal.Decimal) (*entity.Produto, error) {
	if !qtd.GreaterThan(decimal.Zero) {
		return nil, domain.ErrEntradaInvalida
	}
	p, err := produtoRepo.GetForUpdate(merceariaID, produtoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNaoEncontrado
	}
	novo := p.EstoqueAtual.Add(qtd)
	if err := produtoRepo.UpdateEstoque(p.ID, novo); err != nil {
		return nil, err
	}
	p.EstoqueAtual = novo
	return p, nil
}
