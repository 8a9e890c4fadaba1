package venda

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/caderneta/mercearia-api/internal/application/dto"
	"github.com/caderneta/mercearia-api/internal/application/estoque"
	"github.com/caderneta/mercearia-api/internal/domain"
	"github.com/caderneta/mercearia-api/internal/domain/entity"
	"github.com/caderneta/mercearia-api/internal/domain/repository"
)

// toleranciaReconciliacao é a diferença máxima aceita entre o total informado
// pelo PDV e o total recalculado no servidor (arredondamento de centavos).
var toleranciaReconciliacao = decimal.NewFromFloat(0.01)

// FinalizarVendaUseCase fecha uma venda em uma única transação: baixa o
// estoque item a item, recalcula o total no servidor, grava a venda e, se
// fiado, lança o débito no saldo do cliente. Qualquer falha desfaz tudo.
type FinalizarVendaUseCase struct {
	txRunner TxRunner
}

// NewFinalizarVendaUseCase constrói o caso de uso.
func NewFinalizarVendaUseCase(txRunner TxRunner) *FinalizarVendaUseCase {
	return &FinalizarVendaUseCase{txRunner: txRunner}
}

// Finalizar valida o carrinho antes de abrir a transação e executa o checkout.
// Validação nunca toca o banco; erro de validação sai como ErrEntradaInvalida.
func (uc *FinalizarVendaUseCase) Finalizar(ctx context.Context, merceariaID, operadorID string, in dto.FinalizarVendaRequest) (*dto.FinalizarVendaResponse, error) {
	meio := entity.ParseMeioPagamento(in.MeioPagamento)
	if merceariaID == "" || meio == "" || len(in.Carrinho) == 0 {
		return nil, domain.ErrEntradaInvalida
	}
	if !in.ValorTotal.GreaterThan(decimal.Zero) {
		return nil, domain.ErrEntradaInvalida
	}
	if meio == entity.MeioFiado && (in.ClienteID == nil || *in.ClienteID == "") {
		return nil, domain.ErrEntradaInvalida
	}
	for _, item := range in.Carrinho {
		if item.ProdutoID == "" || !item.Quantidade.GreaterThan(decimal.Zero) || item.PrecoUnitario.IsNegative() {
			return nil, domain.ErrEntradaInvalida
		}
	}

	// Trava produtos em ordem de ID para não deadlockar com vendas concorrentes.
	carrinho := make([]dto.ItemCarrinho, len(in.Carrinho))
	copy(carrinho, in.Carrinho)
	sort.Slice(carrinho, func(i, j int) bool { return carrinho[i].ProdutoID < carrinho[j].ProdutoID })

	now := time.Now()
	vendaID := uuid.New().String()
	var totalServidor decimal.Decimal

	err := uc.txRunner.RunVenda(ctx, func(
		produtoRepo repository.ProdutoRepository,
		clienteRepo repository.ClienteRepository,
		vendaRepo repository.VendaRepository,
		caixaRepo repository.CaixaRepository,
	) error {
		// 1) Baixa de estoque por item; a primeira falha aborta a venda inteira.
		itens := make([]entity.VendaItem, 0, len(carrinho))
		total := decimal.Zero
		for _, item := range carrinho {
			produto, err := estoque.Baixar(produtoRepo, merceariaID, item.ProdutoID, item.Quantidade)
			if err != nil {
				return err
			}
			preco := item.PrecoUnitario
			if preco.IsZero() {
				preco = produto.PrecoVenda
			}
			produtoID := produto.ID
			itens = append(itens, entity.VendaItem{
				ID:            uuid.New().String(),
				VendaID:       vendaID,
				ProdutoID:     &produtoID,
				ProdutoNome:   produto.Nome,
				Quantidade:    item.Quantidade,
				PrecoUnitario: preco,
			})
			total = total.Add(item.Quantidade.Mul(preco))
		}

		// 2) Total recalculado no servidor é o que vale; o informado pelo PDV
		// só é aceito dentro da tolerância de centavos.
		if total.Sub(in.ValorTotal).Abs().GreaterThan(toleranciaReconciliacao) {
			return domain.ErrEntradaInvalida
		}
		totalServidor = total

		// 3) Cabeçalho e itens da venda.
		v := &entity.Venda{
			ID:            vendaID,
			MerceariaID:   merceariaID,
			ClienteID:     in.ClienteID,
			OperadorID:    operadorID,
			ValorTotal:    total,
			MeioPagamento: meio,
			DataVenda:     now,
		}
		if meio != entity.MeioFiado {
			v.ClienteID = nil
		}
		if err := vendaRepo.Create(v); err != nil {
			return err
		}
		for i := range itens {
			if err := vendaRepo.CreateItem(&itens[i]); err != nil {
				return err
			}
		}

		// 4) Fiado: lança o débito no saldo do cliente sob lock de linha.
		if meio == entity.MeioFiado {
			cliente, err := clienteRepo.GetForUpdate(merceariaID, *in.ClienteID)
			if err != nil {
				return err
			}
			if cliente == nil {
				return domain.ErrNaoEncontrado
			}
			novoSaldo := cliente.SaldoDevedor.Add(total)
			// Limite zero = não configurado; dívida acima do limite só bloqueia
			// quando o dono definiu um limite para o cliente.
			if cliente.LimiteCredito.GreaterThan(decimal.Zero) && novoSaldo.GreaterThan(cliente.LimiteCredito) {
				return domain.ErrLimiteCreditoExcedido
			}
			return clienteRepo.UpdateSaldo(cliente.ID, novoSaldo)
		}

		// 5) À vista: entrada no caixa na mesma transação.
		ref := vendaID
		return caixaRepo.Create(&entity.TransacaoCaixa{
			ID:            uuid.New().String(),
			MerceariaID:   merceariaID,
			Tipo:          entity.CaixaEntrada,
			MeioPagamento: meio,
			Valor:         total,
			Origem:        entity.OrigemVenda,
			ReferenciaID:  &ref,
			DataTransacao: now,
		})
	})
	if err != nil {
		return nil, err
	}

	return &dto.FinalizarVendaResponse{
		VendaID:    vendaID,
		ValorTotal: totalServidor,
		Message:    "Venda registrada com sucesso!",
	}, nil
}
