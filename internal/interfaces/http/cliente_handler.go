package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caderneta/mercearia-api/internal/application/dto"
	"github.com/caderneta/mercearia-api/internal/application/fiado"
)

// ClienteHandler rotas do caderninho de clientes e do fiado (protegido).
type ClienteHandler struct {
	uc *fiado.UseCase
}

// NewClienteHandler constrói o handler.
func NewClienteHandler(uc *fiado.UseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// Criar godoc
// @Summary      Cadastrar cliente no caderninho
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarClienteRequest  true  "Dados do cliente"
// @Success      201   {object}  dto.ClienteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/clientes [post]
func (h *ClienteHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CriarCliente(GetMerceariaID(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar clientes da mercearia
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ClienteResponse
// @Router       /api/clientes [get]
func (h *ClienteHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.ListarClientes(GetMerceariaID(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Buscar godoc
// @Summary      Buscar clientes por prefixo de nome ou telefone
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        termo  query  string  true  "Termo de busca"
// @Success      200    {array}  dto.ClienteResponse
// @Router       /api/clientes/busca [get]
func (h *ClienteHandler) Buscar(c *fiber.Ctx) error {
	out, err := h.uc.BuscarClientes(GetMerceariaID(c), c.Query("termo"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Devedores godoc
// @Summary      Listar clientes com saldo devedor, maior dívida primeiro
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ClienteResponse
// @Router       /api/clientes/devedores [get]
func (h *ClienteHandler) Devedores(c *fiber.Ctx) error {
	out, err := h.uc.ListarDividas(GetMerceariaID(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Atualizar godoc
// @Summary      Atualizar cadastro do cliente (saldo devedor nunca passa por aqui)
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID do cliente"
// @Param        body  body  dto.AtualizarClienteRequest  true  "Dados do cliente"
// @Success      200   {object}  dto.ClienteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [put]
func (h *ClienteHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.AtualizarClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.AtualizarCliente(GetMerceariaID(c), c.Params("id"), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Deletar godoc
// @Summary      Deletar cliente (recusado se houver saldo devedor)
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do cliente"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [delete]
func (h *ClienteHandler) Deletar(c *fiber.Ctx) error {
	if err := h.uc.DeletarClienteSeguro(c.Context(), GetMerceariaID(c), c.Params("id")); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cliente removido"})
}

// ItensFiado godoc
// @Summary      Extrato das compras fiado do cliente com itens
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do cliente"
// @Success      200  {array}  dto.VendaFiadoResponse
// @Router       /api/clientes/{id}/fiado [get]
func (h *ClienteHandler) ItensFiado(c *fiber.Ctx) error {
	out, err := h.uc.ItensFiado(GetMerceariaID(c), c.Params("id"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Liquidar godoc
// @Summary      Liquidar fiado (pagamento abate o saldo devedor)
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LiquidarFiadoRequest  true  "Pagamento"
// @Success      200   {object}  dto.LiquidarFiadoResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clientes/fiado/liquidar [post]
func (h *ClienteHandler) Liquidar(c *fiber.Ctx) error {
	var in dto.LiquidarFiadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Liquidar(c.Context(), GetMerceariaID(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}
