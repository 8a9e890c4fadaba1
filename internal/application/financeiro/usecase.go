package financeiro

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/caderneta/mercearia-api/internal/application/dto"
	"github.com/caderneta/mercearia-api/internal/domain"
	"github.com/caderneta/mercearia-api/internal/domain/entity"
	"github.com/caderneta/mercearia-api/internal/domain/repository"
)

// UseCase contas a pagar e resumo do caixa da mercearia.
type UseCase struct {
	contaRepo repository.ContaPagarRepository
	caixaRepo repository.CaixaRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(contaRepo repository.ContaPagarRepository, caixaRepo repository.CaixaRepository) *UseCase {
	return &UseCase{contaRepo: contaRepo, caixaRepo: caixaRepo}
}

// CriarConta registra uma nova conta a pagar, sempre pendente.
func (uc *UseCase) CriarConta(merceariaID string, in dto.ContaPagarRequest) (*dto.ContaPagarResponse, error) {
	if merceariaID == "" || in.Descricao == "" || !in.Valor.GreaterThan(decimal.Zero) || in.DataVencimento.IsZero() {
		return nil, domain.ErrEntradaInvalida
	}
	c := &entity.ContaPagar{
		ID:             uuid.New().String(),
		MerceariaID:    merceariaID,
		Descricao:      in.Descricao,
		Valor:          in.Valor,
		DataVencimento: in.DataVencimento,
		Status:         entity.ContaPendente,
		CreatedAt:      time.Now(),
	}
	if err := uc.contaRepo.Create(c); err != nil {
		return nil, err
	}
	resp := toContaResponse(c, time.Now())
	return &resp, nil
}

// ListarContas devolve as contas com status derivado, filtrado por
// pendente | paga | atrasada ("" devolve todas), vencimento mais próximo primeiro.
func (uc *UseCase) ListarContas(merceariaID, statusFiltro string) ([]dto.ContaPagarResponse, error) {
	contas, err := uc.contaRepo.List(merceariaID)
	if err != nil {
		return nil, err
	}
	agora := time.Now()
	out := make([]dto.ContaPagarResponse, 0, len(contas))
	for _, c := range contas {
		derivado := c.StatusDerivado(agora)
		if statusFiltro != "" && derivado != statusFiltro {
			continue
		}
		out = append(out, toContaResponse(c, agora))
	}
	return out, nil
}

// AtualizarConta edita descrição/valor/vencimento de uma conta ainda pendente.
func (uc *UseCase) AtualizarConta(merceariaID, id string, in dto.ContaPagarRequest) (*dto.ContaPagarResponse, error) {
	if in.Descricao == "" || !in.Valor.GreaterThan(decimal.Zero) || in.DataVencimento.IsZero() {
		return nil, domain.ErrEntradaInvalida
	}
	c := &entity.ContaPagar{
		ID:             id,
		MerceariaID:    merceariaID,
		Descricao:      in.Descricao,
		Valor:          in.Valor,
		DataVencimento: in.DataVencimento,
	}
	ok, err := uc.contaRepo.UpdatePendente(c)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNaoEncontrado
	}
	atualizada, err := uc.contaRepo.GetByID(merceariaID, id)
	if err != nil {
		return nil, err
	}
	if atualizada == nil {
		return nil, domain.ErrNaoEncontrado
	}
	resp := toContaResponse(atualizada, time.Now())
	return &resp, nil
}

// PagarConta marca a conta como paga com a data de pagamento de agora.
func (uc *UseCase) PagarConta(merceariaID, id string) (*dto.ContaPagarResponse, error) {
	c, err := uc.contaRepo.MarcarPaga(merceariaID, id, time.Now())
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNaoEncontrado
	}
	resp := toContaResponse(c, time.Now())
	return &resp, nil
}

// DeletarConta exclui uma conta ainda pendente (pagas são históricas).
func (uc *UseCase) DeletarConta(merceariaID, id string) error {
	ok, err := uc.contaRepo.DeletePendente(merceariaID, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// ResumoCaixa soma as entradas de hoje por meio de pagamento.
func (uc *UseCase) ResumoCaixa(merceariaID string) (*dto.ResumoCaixaResponse, error) {
	agora := time.Now()
	inicioDia := time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, agora.Location())
	entradas, err := uc.caixaRepo.EntradasDesde(merceariaID, inicioDia)
	if err != nil {
		return nil, err
	}
	resumo := &dto.ResumoCaixaResponse{
		TotalEntradasDia: decimal.Zero,
		TotalDinheiro:    decimal.Zero,
		TotalPix:         decimal.Zero,
		TotalCartao:      decimal.Zero,
	}
	for _, t := range entradas {
		resumo.TotalEntradasDia = resumo.TotalEntradasDia.Add(t.Valor)
		switch t.MeioPagamento {
		case entity.MeioDinheiro:
			resumo.TotalDinheiro = resumo.TotalDinheiro.Add(t.Valor)
		case entity.MeioPix:
			resumo.TotalPix = resumo.TotalPix.Add(t.Valor)
		case entity.MeioCartao:
			resumo.TotalCartao = resumo.TotalCartao.Add(t.Valor)
		}
	}
	return resumo, nil
}

func toContaResponse(c *entity.ContaPagar, agora time.Time) dto.ContaPagarResponse {
	return dto.ContaPagarResponse{
		ID:             c.ID,
		Descricao:      c.Descricao,
		Valor:          c.Valor,
		DataVencimento: c.DataVencimento,
		Status:         c.StatusDerivado(agora),
		DataPagamento:  c.DataPagamento,
	}
}
