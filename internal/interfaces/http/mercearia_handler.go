package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caderneta/mercearia-api/internal/application/dto"
	"github.com/caderneta/mercearia-api/internal/application/usecase"
)

// MerceariaHandler rotas de cadastro e assinatura da mercearia do token,
// mais a administração da plataforma (role admin).
type MerceariaHandler struct {
	uc *usecase.MerceariaUseCase
}

// NewMerceariaHandler constrói o handler.
func NewMerceariaHandler(uc *usecase.MerceariaUseCase) *MerceariaHandler {
	return &MerceariaHandler{uc: uc}
}

// Dados godoc
// @Summary      Cadastro completo da mercearia do token
// @Tags         mercearias
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MerceariaResponse
// @Router       /api/mercearias/me [get]
func (h *MerceariaHandler) Dados(c *fiber.Ctx) error {
	out, err := h.uc.Dados(GetMerceariaID(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Atualizar godoc
// @Summary      Atualizar cadastro da mercearia (CNPJ, contato, endereço, logo)
// @Tags         mercearias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DadosMerceariaRequest  true  "Dados da loja"
// @Success      200   {object}  dto.MerceariaResponse
// @Router       /api/mercearias/me [put]
func (h *MerceariaHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.DadosMerceariaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.AtualizarDados(GetMerceariaID(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Assinatura godoc
// @Summary      Status de assinatura (ativa vencida é rebaixada para bloqueada)
// @Tags         mercearias
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatusAssinaturaResponse
// @Router       /api/mercearias/me/assinatura [get]
func (h *MerceariaHandler) Assinatura(c *fiber.Ctx) error {
	out, err := h.uc.VerificarAssinatura(GetMerceariaID(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// AdminListar godoc
// @Summary      Listar mercearias não excluídas (admin da plataforma)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MerceariaResponse
// @Router       /api/admin/mercearias [get]
func (h *MerceariaHandler) AdminListar(c *fiber.Ctx) error {
	out, err := h.uc.ListarAtivas()
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// AdminListarExcluidas godoc
// @Summary      Listar mercearias excluídas (admin da plataforma)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MerceariaResponse
// @Router       /api/admin/mercearias/excluidas [get]
func (h *MerceariaHandler) AdminListarExcluidas(c *fiber.Ctx) error {
	out, err := h.uc.ListarExcluidas()
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// AdminExcluir godoc
// @Summary      Exclusão lógica de uma mercearia (reversível)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da mercearia"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/mercearias/{id} [delete]
func (h *MerceariaHandler) AdminExcluir(c *fiber.Ctx) error {
	if err := h.uc.Excluir(c.Params("id")); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "mercearia excluída"})
}

// AdminRestaurar godoc
// @Summary      Restaurar uma mercearia excluída
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da mercearia"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/mercearias/{id}/restaurar [post]
func (h *MerceariaHandler) AdminRestaurar(c *fiber.Ctx) error {
	if err := h.uc.Restaurar(c.Params("id")); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "mercearia restaurada"})
}
