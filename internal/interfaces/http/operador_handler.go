package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caderneta/mercearia-api/internal/application/dto"
	"github.com/caderneta/mercearia-api/internal/application/usecase"
)

// OperadorHandler rotas de gestão das contas de operador (role merchant).
type OperadorHandler struct {
	uc *usecase.OperadorUseCase
}

// NewOperadorHandler constrói o handler.
func NewOperadorHandler(uc *usecase.OperadorUseCase) *OperadorHandler {
	return &OperadorHandler{uc: uc}
}

// Criar godoc
// @Summary      Criar conta de operador (PDV)
// @Tags         operadores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OperadorRequest  true  "Dados do operador"
// @Success      201   {object}  dto.OperadorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/operadores [post]
func (h *OperadorHandler) Criar(c *fiber.Ctx) error {
	var in dto.OperadorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Criar(GetMerceariaID(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar operadores da mercearia
// @Tags         operadores
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OperadorResponse
// @Router       /api/operadores [get]
func (h *OperadorHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar(GetMerceariaID(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Detalhes godoc
// @Summary      Detalhes de um operador
// @Tags         operadores
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do operador"
// @Success      200  {object}  dto.OperadorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/operadores/{id} [get]
func (h *OperadorHandler) Detalhes(c *fiber.Ctx) error {
	out, err := h.uc.Detalhes(GetMerceariaID(c), c.Params("id"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Atualizar godoc
// @Summary      Atualizar operador (senha só troca se enviada)
// @Tags         operadores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID do operador"
// @Param        body  body  dto.OperadorRequest  true  "Dados do operador"
// @Success      200   {object}  dto.OperadorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/operadores/{id} [put]
func (h *OperadorHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.OperadorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Atualizar(GetMerceariaID(c), c.Params("id"), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// AlterarStatus godoc
// @Summary      Ativar ou desativar o acesso do operador
// @Tags         operadores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do operador"
// @Param        body  body  object{status=string}  true  "ativo ou inativo"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/operadores/{id}/status [patch]
func (h *OperadorHandler) AlterarStatus(c *fiber.Ctx) error {
	var in struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.AlterarStatus(GetMerceariaID(c), c.Params("id"), in.Status); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "status atualizado"})
}

// Deletar godoc
// @Summary      Deletar conta de operador
// @Tags         operadores
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do operador"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/operadores/{id} [delete]
func (h *OperadorHandler) Deletar(c *fiber.Ctx) error {
	if err := h.uc.Deletar(GetMerceariaID(c), c.Params("id")); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "operador removido"})
}
