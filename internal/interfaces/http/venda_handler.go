package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caderneta/mercearia-api/internal/application/dto"
	"github.com/caderneta/mercearia-api/internal/application/venda"
)

// VendaHandler rota de checkout do PDV (protegido).
type VendaHandler struct {
	uc *venda.FinalizarVendaUseCase
}

// NewVendaHandler constrói o handler.
func NewVendaHandler(uc *venda.FinalizarVendaUseCase) *VendaHandler {
	return &VendaHandler{uc: uc}
}

// Finalizar godoc
// @Summary      Finalizar venda (baixa de estoque, registro e fiado em uma transação)
// @Tags         vendas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FinalizarVendaRequest  true  "Carrinho e pagamento"
// @Success      201   {object}  dto.FinalizarVendaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vendas/finalizar [post]
func (h *VendaHandler) Finalizar(c *fiber.Ctx) error {
	var in dto.FinalizarVendaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Finalizar(c.Context(), GetMerceariaID(c), GetOperadorID(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
