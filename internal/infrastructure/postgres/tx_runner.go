package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caderneta/mercearia-api/internal/application/fiado"
	"github.com/caderneta/mercearia-api/internal/application/venda"
	"github.com/caderneta/mercearia-api/internal/domain/repository"
)

var _ venda.TxRunner = (*TxRunner)(nil)
var _ fiado.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
// Conflitos de serialização e deadlocks viram ErrTransacaoAbortada.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunVenda abre uma transação com os repositórios do checkout (estoque,
// cliente, venda e caixa atados à mesma tx) e faz Commit ou Rollback.
func (r *TxRunner) RunVenda(ctx context.Context, fn func(
	produtoRepo repository.ProdutoRepository,
	clienteRepo repository.ClienteRepository,
	vendaRepo repository.VendaRepository,
	caixaRepo repository.CaixaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	produtoRepo := NewProdutoRepository(tx)
	clienteRepo := NewClienteRepository(tx)
	vendaRepo := NewVendaRepository(tx)
	caixaRepo := NewCaixaRepository(tx)

	if err := fn(produtoRepo, clienteRepo, vendaRepo, caixaRepo); err != nil {
		return mapTxError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return mapTxError(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

// RunFiado abre uma transação para liquidação e exclusão segura de clientes.
func (r *TxRunner) RunFiado(ctx context.Context, fn func(
	clienteRepo repository.ClienteRepository,
	pagamentoRepo repository.PagamentoFiadoRepository,
	caixaRepo repository.CaixaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	clienteRepo := NewClienteRepository(tx)
	pagamentoRepo := NewPagamentoFiadoRepository(tx)
	caixaRepo := NewCaixaRepository(tx)

	if err := fn(clienteRepo, pagamentoRepo, caixaRepo); err != nil {
		return mapTxError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return mapTxError(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}
