package venda

import (
	"context"

	"github.com/caderneta/mercearia-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa tx. Garante o tudo-ou-nada do checkout:
// baixa de estoque, venda, itens e lançamento no fiado/caixa comitam juntos
// ou nada persiste.
type TxRunner interface {
	RunVenda(ctx context.Context, fn func(
		produtoRepo repository.ProdutoRepository,
		clienteRepo repository.ClienteRepository,
		vendaRepo repository.VendaRepository,
		caixaRepo repository.CaixaRepository,
	) error) error
}
