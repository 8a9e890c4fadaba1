package fiado

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/caderneta/mercearia-api/internal/application/dto"
	"github.com/caderneta/mercearia-api/internal/domain"
	"github.com/caderneta/mercearia-api/internal/domain/entity"
	"github.com/caderneta/mercearia-api/internal/domain/repository"
)

// saldoMinimoDivida: clientes com saldo acima disso aparecem na lista de
// dívidas (corta resíduos de arredondamento).
var saldoMinimoDivida = decimal.NewFromFloat(0.01)

// UseCase casos de uso do caderninho de fiado: liquidação, dívidas,
// exclusão segura e cadastro de clientes.
type UseCase struct {
	txRunner    TxRunner
	clienteRepo repository.ClienteRepository
	vendaRepo   repository.VendaRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(txRunner TxRunner, clienteRepo repository.ClienteRepository, vendaRepo repository.VendaRepository) *UseCase {
	return &UseCase{txRunner: txRunner, clienteRepo: clienteRepo, vendaRepo: vendaRepo}
}

// Liquidar abate um pagamento do saldo devedor do cliente.
// Leitura, validação e escrita acontecem sob lock de linha na mesma transação:
// duas liquidações concorrentes nunca leem o mesmo saldo. Pagamento acima do
// saldo falha com ErrPagamentoExcedeSaldo e não altera nada.
func (uc *UseCase) Liquidar(ctx context.Context, merceariaID string, in dto.LiquidarFiadoRequest) (*dto.LiquidarFiadoResponse, error) {
	meio := entity.ParseMeioPagamento(in.MeioPagamento)
	if merceariaID == "" || in.ClienteID == "" || meio == "" || meio == entity.MeioFiado {
		return nil, domain.ErrEntradaInvalida
	}
	if !in.ValorPago.GreaterThan(decimal.Zero) {
		return nil, domain.ErrEntradaInvalida
	}

	now := time.Now()
	var novoSaldo decimal.Decimal

	err := uc.txRunner.RunFiado(ctx, func(
		clienteRepo repository.ClienteRepository,
		pagamentoRepo repository.PagamentoFiadoRepository,
		caixaRepo repository.CaixaRepository,
	) error {
		cliente, err := clienteRepo.GetForUpdate(merceariaID, in.ClienteID)
		if err != nil {
			return err
		}
		if cliente == nil {
			return domain.ErrNaoEncontrado
		}
		// O saldo atual é o teto: não existe pagamento maior que a dívida.
		if in.ValorPago.GreaterThan(cliente.SaldoDevedor) {
			return domain.ErrPagamentoExcedeSaldo
		}
		novoSaldo = cliente.SaldoDevedor.Sub(in.ValorPago)
		if err := clienteRepo.UpdateSaldo(cliente.ID, novoSaldo); err != nil {
			return err
		}
		pagamentoID := uuid.New().String()
		if err := pagamentoRepo.Create(&entity.PagamentoFiado{
			ID:            pagamentoID,
			MerceariaID:   merceariaID,
			ClienteID:     cliente.ID,
			ValorPago:     in.ValorPago,
			MeioPagamento: meio,
			DataPagamento: now,
		}); err != nil {
			return err
		}
		// O dinheiro da liquidação entra no caixa do dia.
		return caixaRepo.Create(&entity.TransacaoCaixa{
			ID:            uuid.New().String(),
			MerceariaID:   merceariaID,
			Tipo:          entity.CaixaEntrada,
			MeioPagamento: meio,
			Valor:         in.ValorPago,
			Origem:        entity.OrigemFiado,
			ReferenciaID:  &pagamentoID,
			DataTransacao: now,
		})
	})
	if err != nil {
		return nil, err
	}

	return &dto.LiquidarFiadoResponse{
		Message:   "Pagamento registrado com sucesso.",
		NovoSaldo: novoSaldo,
	}, nil
}

// ListarDividas devolve os clientes com saldo devedor relevante, maior primeiro.
func (uc *UseCase) ListarDividas(merceariaID string) ([]dto.ClienteResponse, error) {
	clientes, err := uc.clienteRepo.ListDevedores(merceariaID, saldoMinimoDivida)
	if err != nil {
		return nil, err
	}
	return toClienteResponses(clientes), nil
}

// DeletarClienteSeguro exclui o cliente somente se o saldo for zero.
// Checagem e exclusão rodam sob lock na mesma transação: uma venda fiado
// concorrente não consegue lançar débito entre a checagem e o delete.
func (uc *UseCase) DeletarClienteSeguro(ctx context.Context, merceariaID, clienteID string) error {
	if merceariaID == "" || clienteID == "" {
		return domain.ErrEntradaInvalida
	}
	return uc.txRunner.RunFiado(ctx, func(
		clienteRepo repository.ClienteRepository,
		_ repository.PagamentoFiadoRepository,
		_ repository.CaixaRepository,
	) error {
		cliente, err := clienteRepo.GetForUpdate(merceariaID, clienteID)
		if err != nil {
			return err
		}
		if cliente == nil {
			return domain.ErrNaoEncontrado
		}
		if cliente.SaldoDevedor.GreaterThan(decimal.Zero) {
			return domain.ErrSaldoPendente
		}
		ok, err := clienteRepo.Delete(merceariaID, clienteID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNaoEncontrado
		}
		return nil
	})
}

// ItensFiado devolve as vendas fiado do cliente agrupadas com seus itens.
func (uc *UseCase) ItensFiado(merceariaID, clienteID string) ([]dto.VendaFiadoResponse, error) {
	vendas, err := uc.vendaRepo.ListFiadoPorCliente(merceariaID, clienteID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VendaFiadoResponse, 0, len(vendas))
	for _, v := range vendas {
		resp := dto.VendaFiadoResponse{
			VendaID:    v.ID,
			DataVenda:  v.DataVenda,
			ValorTotal: v.ValorTotal,
			Itens:      make([]dto.ItemFiadoResponse, 0, len(v.Itens)),
		}
		for _, item := range v.Itens {
			resp.Itens = append(resp.Itens, dto.ItemFiadoResponse{
				ProdutoNome:   item.ProdutoNome,
				Quantidade:    item.Quantidade,
				PrecoUnitario: item.PrecoUnitario,
			})
		}
		out = append(out, resp)
	}
	return out, nil
}

// CriarCliente cadastra um cliente novo com saldo zero.
func (uc *UseCase) CriarCliente(merceariaID string, in dto.CriarClienteRequest) (*dto.ClienteResponse, error) {
	if merceariaID == "" || in.Nome == "" {
		return nil, domain.ErrEntradaInvalida
	}
	now := time.Now()
	c := &entity.Cliente{
		ID:            uuid.New().String(),
		MerceariaID:   merceariaID,
		Nome:          in.Nome,
		Telefone:      in.Telefone,
		SaldoDevedor:  decimal.Zero,
		LimiteCredito: decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.clienteRepo.Create(c); err != nil {
		return nil, err
	}
	resp := toClienteResponse(c)
	return &resp, nil
}

// AtualizarCliente edita nome, telefone, limite de crédito e vencimento.
// O saldo devedor nunca é editado por aqui — só venda fiado e liquidação mexem nele.
func (uc *UseCase) AtualizarCliente(merceariaID, clienteID string, in dto.AtualizarClienteRequest) (*dto.ClienteResponse, error) {
	if in.Nome == "" || in.LimiteCredito.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}
	c, err := uc.clienteRepo.GetByID(merceariaID, clienteID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNaoEncontrado
	}
	c.Nome = in.Nome
	c.Telefone = in.Telefone
	c.LimiteCredito = in.LimiteCredito
	c.DataVencimento = in.DataVencimento
	c.UpdatedAt = time.Now()
	if err := uc.clienteRepo.Update(c); err != nil {
		return nil, err
	}
	resp := toClienteResponse(c)
	return &resp, nil
}

// BuscarClientes busca por prefixo de nome ou telefone (PDV ágil).
func (uc *UseCase) BuscarClientes(merceariaID, termo string) ([]dto.ClienteResponse, error) {
	if termo == "" {
		return nil, domain.ErrEntradaInvalida
	}
	clientes, err := uc.clienteRepo.Buscar(merceariaID, termo, 10)
	if err != nil {
		return nil, err
	}
	return toClienteResponses(clientes), nil
}

// ListarClientes devolve o caderninho completo em ordem alfabética.
func (uc *UseCase) ListarClientes(merceariaID string) ([]dto.ClienteResponse, error) {
	clientes, err := uc.clienteRepo.ListAll(merceariaID)
	if err != nil {
		return nil, err
	}
	return toClienteResponses(clientes), nil
}

func toClienteResponse(c *entity.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ID:             c.ID,
		Nome:           c.Nome,
		Telefone:       c.Telefone,
		SaldoDevedor:   c.SaldoDevedor,
		LimiteCredito:  c.LimiteCredito,
		DataVencimento: c.DataVencimento,
	}
}

func toClienteResponses(clientes []*entity.Cliente) []dto.ClienteResponse {
	out := make([]dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, toClienteResponse(c))
	}
	return out
}
