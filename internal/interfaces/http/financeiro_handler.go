package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caderneta/mercearia-api/internal/application/dto"
	"github.com/caderneta/mercearia-api/internal/application/financeiro"
)

// FinanceiroHandler rotas de contas a pagar e resumo do caixa (protegido).
type FinanceiroHandler struct {
	uc *financeiro.UseCase
}

// NewFinanceiroHandler constrói o handler.
func NewFinanceiroHandler(uc *financeiro.UseCase) *FinanceiroHandler {
	return &FinanceiroHandler{uc: uc}
}

// CriarConta godoc
// @Summary      Criar conta a pagar
// @Tags         financeiro
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ContaPagarRequest  true  "Dados da conta"
// @Success      201   {object}  dto.ContaPagarResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/financeiro/contas [post]
func (h *FinanceiroHandler) CriarConta(c *fiber.Ctx) error {
	var in dto.ContaPagarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CriarConta(GetMerceariaID(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListarContas godoc
// @Summary      Listar contas a pagar (filtro opcional pendente|paga|atrasada)
// @Tags         financeiro
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtro de status"
// @Success      200     {array}  dto.ContaPagarResponse
// @Router       /api/financeiro/contas [get]
func (h *FinanceiroHandler) ListarContas(c *fiber.Ctx) error {
	out, err := h.uc.ListarContas(GetMerceariaID(c), c.Query("status"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// AtualizarConta godoc
// @Summary      Editar conta ainda pendente
// @Tags         financeiro
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID da conta"
// @Param        body  body  dto.ContaPagarRequest  true  "Dados da conta"
// @Success      200   {object}  dto.ContaPagarResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/financeiro/contas/{id} [put]
func (h *FinanceiroHandler) AtualizarConta(c *fiber.Ctx) error {
	var in dto.ContaPagarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.AtualizarConta(GetMerceariaID(c), c.Params("id"), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// PagarConta godoc
// @Summary      Marcar conta como paga
// @Tags         financeiro
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da conta"
// @Success      200  {object}  dto.ContaPagarResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/financeiro/contas/{id}/pagar [patch]
func (h *FinanceiroHandler) PagarConta(c *fiber.Ctx) error {
	out, err := h.uc.PagarConta(GetMerceariaID(c), c.Params("id"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// DeletarConta godoc
// @Summary      Deletar conta ainda pendente (pagas são históricas)
// @Tags         financeiro
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da conta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/financeiro/contas/{id} [delete]
func (h *FinanceiroHandler) DeletarConta(c *fiber.Ctx) error {
	if err := h.uc.DeletarConta(GetMerceariaID(c), c.Params("id")); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "conta removida"})
}

// ResumoCaixa godoc
// @Summary      Entradas do dia por meio de pagamento
// @Tags         financeiro
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ResumoCaixaResponse
// @Router       /api/financeiro/caixa/resumo [get]
func (h *FinanceiroHandler) ResumoCaixa(c *fiber.Ctx) error {
	out, err := h.uc.ResumoCaixa(GetMerceariaID(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}
