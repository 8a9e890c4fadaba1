package venda_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caderneta/mercearia-api/internal/application/dto"
	"github.com/caderneta/mercearia-api/internal/application/venda"
	"github.com/caderneta/mercearia-api/internal/domain"
	"github.com/caderneta/mercearia-api/internal/domain/entity"
	"github.com/caderneta/mercearia-api/internal/domain/repository"
)

const mercID = "mercearia-1"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória com semântica transacional: o runner tira um snapshot do
// estado antes do callback e restaura tudo se o callback falhar, imitando o
// rollback do PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	produtos map[string]*entity.Produto
	clientes map[string]*entity.Cliente
	vendas   map[string]*entity.Venda
	itens    []entity.VendaItem
	caixa    []entity.TransacaoCaixa
}

func newMemStore() *memStore {
	return &memStore{
		produtos: map[string]*entity.Produto{},
		clientes: map[string]*entity.Cliente{},
		vendas:   map[string]*entity.Venda{},
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for id, p := range s.produtos {
		cp := *p
		c.produtos[id] = &cp
	}
	for id, cl := range s.clientes {
		cc := *cl
		c.clientes[id] = &cc
	}
	for id, v := range s.vendas {
		cv := *v
		c.vendas[id] = &cv
	}
	c.itens = append([]entity.VendaItem(nil), s.itens...)
	c.caixa = append([]entity.TransacaoCaixa(nil), s.caixa...)
	return c
}

type memTxRunner struct {
	store *memStore
}

func (r *memTxRunner) RunVenda(_ context.Context, fn func(
	produtoRepo repository.ProdutoRepository,
	clienteRepo repository.ClienteRepository,
	vendaRepo repository.VendaRepository,
	caixaRepo repository.CaixaRepository,
) error) error {
	snapshot := r.store.clone()
	err := fn(
		&memProdutoRepo{s: r.store},
		&memClienteRepo{s: r.store},
		&memVendaRepo{s: r.store},
		&memCaixaRepo{s: r.store},
	)
	if err != nil {
		*r.store = *snapshot
		return err
	}
	return nil
}

type memProdutoRepo struct{ s *memStore }

func (r *memProdutoRepo) Create(p *entity.Produto) error {
	cp := *p
	r.s.produtos[p.ID] = &cp
	return nil
}

func (r *memProdutoRepo) GetByID(merceariaID, id string) (*entity.Produto, error) {
	p, ok := r.s.produtos[id]
	if !ok || p.MerceariaID != merceariaID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProdutoRepo) GetForUpdate(merceariaID, id string) (*entity.Produto, error) {
	return r.GetByID(merceariaID, id)
}

func (r *memProdutoRepo) UpdateEstoque(id string, novoEstoque decimal.Decimal) error {
	r.s.produtos[id].EstoqueAtual = novoEstoque
	return nil
}

func (r *memProdutoRepo) Update(*entity.Produto) error          { return nil }
func (r *memProdutoRepo) Delete(_, _ string) (bool, error)      { return false, nil }
func (r *memProdutoRepo) List(string) ([]*entity.Produto, error) { return nil, nil }
func (r *memProdutoRepo) ListEstoqueBaixo(string) ([]*entity.Produto, error) {
	return nil, nil
}
func (r *memProdutoRepo) BuscarPDV(_, _ string, _ int) ([]*entity.Produto, error) {
	return nil, nil
}
func (r *memProdutoRepo) BuscarNormalizado(_, _ string, _ int) ([]*entity.Produto, error) {
	return nil, nil
}

type memClienteRepo struct{ s *memStore }

func (r *memClienteRepo) Create(c *entity.Cliente) error {
	cc := *c
	r.s.clientes[c.ID] = &cc
	return nil
}

func (r *memClienteRepo) GetByID(merceariaID, id string) (*entity.Cliente, error) {
	c, ok := r.s.clientes[id]
	if !ok || c.MerceariaID != merceariaID {
		return nil, nil
	}
	cc := *c
	return &cc, nil
}

func (r *memClienteRepo) GetForUpdate(merceariaID, id string) (*entity.Cliente, error) {
	return r.GetByID(merceariaID, id)
}

func (r *memClienteRepo) Update(*entity.Cliente) error { return nil }

func (r *memClienteRepo) UpdateSaldo(id string, novoSaldo decimal.Decimal) error {
	r.s.clientes[id].SaldoDevedor = novoSaldo
	return nil
}

func (r *memClienteRepo) Delete(_, id string) (bool, error) {
	_, ok := r.s.clientes[id]
	delete(r.s.clientes, id)
	return ok, nil
}

func (r *memClienteRepo) Buscar(_, _ string, _ int) ([]*entity.Cliente, error) { return nil, nil }
func (r *memClienteRepo) ListAll(string) ([]*entity.Cliente, error)            { return nil, nil }
func (r *memClienteRepo) ListDevedores(string, decimal.Decimal) ([]*entity.Cliente, error) {
	return nil, nil
}

type memVendaRepo struct{ s *memStore }

func (r *memVendaRepo) Create(v *entity.Venda) error {
	cv := *v
	r.s.vendas[v.ID] = &cv
	return nil
}

func (r *memVendaRepo) CreateItem(i *entity.VendaItem) error {
	r.s.itens = append(r.s.itens, *i)
	return nil
}

func (r *memVendaRepo) GetByID(_, id string) (*entity.Venda, error) {
	v, ok := r.s.vendas[id]
	if !ok {
		return nil, nil
	}
	cv := *v
	return &cv, nil
}

func (r *memVendaRepo) ListFiadoPorCliente(_, _ string) ([]*entity.Venda, error) {
	return nil, nil
}

type memCaixaRepo struct{ s *memStore }

func (r *memCaixaRepo) Create(t *entity.TransacaoCaixa) error {
	r.s.caixa = append(r.s.caixa, *t)
	return nil
}

func (r *memCaixaRepo) EntradasDesde(string, time.Time) ([]*entity.TransacaoCaixa, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func novoProduto(id, nome string, estoque, precoVenda string) *entity.Produto {
	return &entity.Produto{
		ID:           id,
		MerceariaID:  mercID,
		Nome:         nome,
		EstoqueAtual: dec(estoque),
		PrecoVenda:   dec(precoVenda),
	}
}

func setup(t *testing.T) (*venda.FinalizarVendaUseCase, *memStore) {
	t.Helper()
	store := newMemStore()
	return venda.NewFinalizarVendaUseCase(&memTxRunner{store: store}), store
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestFinalizar_VendaAVista_BaixaEstoqueERegistraCaixa(t *testing.T) {
	uc, store := setup(t)
	store.produtos["p1"] = novoProduto("p1", "Arroz 5kg", "10", "25.00")

	out, err := uc.Finalizar(context.Background(), mercID, "op-1", dto.FinalizarVendaRequest{
		ValorTotal:    dec("50.00"),
		MeioPagamento: "dinheiro",
		Carrinho: []dto.ItemCarrinho{
			{ProdutoID: "p1", Quantidade: dec("2"), PrecoUnitario: dec("25.00")},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, dec("8").Equal(store.produtos["p1"].EstoqueAtual), "estoque deve cair de 10 para 8")
	require.Len(t, store.vendas, 1)
	v := store.vendas[out.VendaID]
	require.NotNil(t, v)
	assert.Nil(t, v.ClienteID, "venda à vista não vincula cliente")
	assert.True(t, dec("50.00").Equal(v.ValorTotal))
	require.Len(t, store.caixa, 1, "venda à vista lança entrada no caixa")
	assert.Equal(t, entity.OrigemVenda, store.caixa[0].Origem)
	assert.True(t, dec("50.00").Equal(store.caixa[0].Valor))
}

func TestFinalizar_EstoqueInsuficiente_DesfazTudo(t *testing.T) {
	uc, store := setup(t)
	store.produtos["p1"] = novoProduto("p1", "Feijão", "10", "8.00")
	store.produtos["p2"] = novoProduto("p2", "Óleo", "1", "9.00")

	_, err := uc.Finalizar(context.Background(), mercID, "op-1", dto.FinalizarVendaRequest{
		ValorTotal:    dec("98.00"),
		MeioPagamento: "pix",
		Carrinho: []dto.ItemCarrinho{
			{ProdutoID: "p1", Quantidade: dec("10"), PrecoUnitario: dec("8.00")},
			{ProdutoID: "p2", Quantidade: dec("2"), PrecoUnitario: dec("9.00")},
		},
	})
	require.ErrorIs(t, err, domain.ErrEstoqueInsuficiente)

	// Rollback total: nem o primeiro item pode ter sido baixado.
	assert.True(t, dec("10").Equal(store.produtos["p1"].EstoqueAtual))
	assert.True(t, dec("1").Equal(store.produtos["p2"].EstoqueAtual))
	assert.Empty(t, store.vendas)
	assert.Empty(t, store.itens)
	assert.Empty(t, store.caixa)
}

func TestFinalizar_VendasSequenciais_SegundaSemEstoque(t *testing.T) {
	uc, store := setup(t)
	store.produtos["p1"] = novoProduto("p1", "Leite", "10", "6.00")

	carrinho := []dto.ItemCarrinho{{ProdutoID: "p1", Quantidade: dec("6"), PrecoUnitario: dec("6.00")}}

	_, err := uc.Finalizar(context.Background(), mercID, "op-1", dto.FinalizarVendaRequest{
		ValorTotal: dec("36.00"), MeioPagamento: "dinheiro", Carrinho: carrinho,
	})
	require.NoError(t, err)

	_, err = uc.Finalizar(context.Background(), mercID, "op-1", dto.FinalizarVendaRequest{
		ValorTotal: dec("36.00"), MeioPagamento: "dinheiro", Carrinho: carrinho,
	})
	require.ErrorIs(t, err, domain.ErrEstoqueInsuficiente, "10 - 6 = 4, segunda venda de 6 não cabe")

	assert.True(t, dec("4").Equal(store.produtos["p1"].EstoqueAtual))
	assert.Len(t, store.vendas, 1, "só a primeira venda pode existir")
}

func TestFinalizar_TotalDivergente_Rejeitado(t *testing.T) {
	uc, store := setup(t)
	store.produtos["p1"] = novoProduto("p1", "Café", "5", "18.00")

	_, err := uc.Finalizar(context.Background(), mercID, "op-1", dto.FinalizarVendaRequest{
		ValorTotal:    dec("100.00"), // total real: 18.00
		MeioPagamento: "cartao",
		Carrinho: []dto.ItemCarrinho{
			{ProdutoID: "p1", Quantidade: dec("1"), PrecoUnitario: dec("18.00")},
		},
	})
	require.ErrorIs(t, err, domain.ErrEntradaInvalida)
	assert.True(t, dec("5").Equal(store.produtos["p1"].EstoqueAtual), "rollback do estoque")
	assert.Empty(t, store.vendas)
}

func TestFinalizar_PrecoZero_UsaPrecoDoCatalogo(t *testing.T) {
	uc, store := setup(t)
	store.produtos["p1"] = novoProduto("p1", "Açúcar", "5", "4.50")

	out, err := uc.Finalizar(context.Background(), mercID, "op-1", dto.FinalizarVendaRequest{
		ValorTotal:    dec("9.00"),
		MeioPagamento: "dinheiro",
		Carrinho: []dto.ItemCarrinho{
			{ProdutoID: "p1", Quantidade: dec("2")}, // sem preço: vale o do catálogo
		},
	})
	require.NoError(t, err)
	assert.True(t, dec("9.00").Equal(out.ValorTotal))
	require.Len(t, store.itens, 1)
	assert.True(t, dec("4.50").Equal(store.itens[0].PrecoUnitario))
}

func TestFinalizar_FiadoSemCliente_Rejeitado(t *testing.T) {
	uc, store := setup(t)
	store.produtos["p1"] = novoProduto("p1", "Pão", "5", "1.00")

	_, err := uc.Finalizar(context.Background(), mercID, "op-1", dto.FinalizarVendaRequest{
		ValorTotal:    dec("1.00"),
		MeioPagamento: "fiado",
		Carrinho: []dto.ItemCarrinho{
			{ProdutoID: "p1", Quantidade: dec("1"), PrecoUnitario: dec("1.00")},
		},
	})
	require.ErrorIs(t, err, domain.ErrEntradaInvalida)
	assert.True(t, dec("5").Equal(store.produtos["p1"].EstoqueAtual), "validação não pode tocar o estoque")
}

func TestFinalizar_Fiado_LancaDebitoNoSaldo(t *testing.T) {
	uc, store := setup(t)
	store.produtos["p1"] = novoProduto("p1", "Carne", "8", "30.00")
	store.clientes["c1"] = &entity.Cliente{
		ID: "c1", MerceariaID: mercID, Nome: "Dona Maria",
		SaldoDevedor: dec("20.00"), LimiteCredito: decimal.Zero,
	}

	clienteID := "c1"
	_, err := uc.Finalizar(context.Background(), mercID, "op-1", dto.FinalizarVendaRequest{
		ValorTotal:    dec("30.00"),
		MeioPagamento: "Fiado",
		ClienteID:     &clienteID,
		Carrinho: []dto.ItemCarrinho{
			{ProdutoID: "p1", Quantidade: dec("1"), PrecoUnitario: dec("30.00")},
		},
	})
	require.NoError(t, err)

	assert.True(t, dec("50.00").Equal(store.clientes["c1"].SaldoDevedor), "20 + 30 = 50")
	assert.Empty(t, store.caixa, "fiado não entra dinheiro no caixa")
	require.Len(t, store.vendas, 1)
	for _, v := range store.vendas {
		require.NotNil(t, v.ClienteID)
		assert.Equal(t, "c1", *v.ClienteID)
	}
}

func TestFinalizar_Fiado_LimiteCreditoExcedido_DesfazEstoque(t *testing.T) {
	uc, store := setup(t)
	store.produtos["p1"] = novoProduto("p1", "Cesta básica", "3", "60.00")
	store.clientes["c1"] = &entity.Cliente{
		ID: "c1", MerceariaID: mercID, Nome: "Seu João",
		SaldoDevedor: dec("30.00"), LimiteCredito: dec("50.00"),
	}

	clienteID := "c1"
	_, err := uc.Finalizar(context.Background(), mercID, "op-1", dto.FinalizarVendaRequest{
		ValorTotal:    dec("60.00"),
		MeioPagamento: "fiado",
		ClienteID:     &clienteID,
		Carrinho: []dto.ItemCarrinho{
			{ProdutoID: "p1", Quantidade: dec("1"), PrecoUnitario: dec("60.00")},
		},
	})
	require.ErrorIs(t, err, domain.ErrLimiteCreditoExcedido)

	assert.True(t, dec("3").Equal(store.produtos["p1"].EstoqueAtual), "estoque restaurado pelo rollback")
	assert.True(t, dec("30.00").Equal(store.clientes["c1"].SaldoDevedor), "saldo intocado")
	assert.Empty(t, store.vendas)
}

func TestFinalizar_LimiteZero_NaoBloqueia(t *testing.T) {
	uc, store := setup(t)
	store.produtos["p1"] = novoProduto("p1", "Gás", "2", "110.00")
	store.clientes["c1"] = &entity.Cliente{
		ID: "c1", MerceariaID: mercID, Nome: "Zé",
		SaldoDevedor: dec("500.00"), LimiteCredito: decimal.Zero,
	}

	clienteID := "c1"
	_, err := uc.Finalizar(context.Background(), mercID, "op-1", dto.FinalizarVendaRequest{
		ValorTotal:    dec("110.00"),
		MeioPagamento: "fiado",
		ClienteID:     &clienteID,
		Carrinho: []dto.ItemCarrinho{
			{ProdutoID: "p1", Quantidade: dec("1"), PrecoUnitario: dec("110.00")},
		},
	})
	require.NoError(t, err, "limite zero significa não configurado, fiado liberado")
	assert.True(t, dec("610.00").Equal(store.clientes["c1"].SaldoDevedor))
}

func TestFinalizar_CarrinhoVazio_Rejeitado(t *testing.T) {
	uc, _ := setup(t)
	_, err := uc.Finalizar(context.Background(), mercID, "op-1", dto.FinalizarVendaRequest{
		ValorTotal:    dec("10.00"),
		MeioPagamento: "dinheiro",
	})
	require.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestFinalizar_MeioPagamentoDesconhecido_Rejeitado(t *testing.T) {
	uc, _ := setup(t)
	_, err := uc.Finalizar(context.Background(), mercID, "op-1", dto.FinalizarVendaRequest{
		ValorTotal:    dec("10.00"),
		MeioPagamento: "cheque",
		Carrinho: []dto.ItemCarrinho{
			{ProdutoID: "p1", Quantidade: dec("1"), PrecoUnitario: dec("10.00")},
		},
	})
	require.ErrorIs(t, err, domain.ErrEntradaInvalida)
}
