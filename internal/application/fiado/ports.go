package fiado

import (
	"context"

	"github.com/caderneta/mercearia-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco com os
// repositórios do caderninho atados à tx. Liquidação e exclusão segura
// precisam do lock de linha do cliente na mesma transação da checagem.
type TxRunner interface {
	RunFiado(ctx context.Context, fn func(
		clienteRepo repository.ClienteRepository,
		pagamentoRepo repository.PagamentoFiadoRepository,
		caixaRepo repository.CaixaRepository,
	) error) error
}
