package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caderneta/mercearia-api/internal/application/auth"
	"github.com/caderneta/mercearia-api/internal/application/dto"
	"github.com/caderneta/mercearia-api/internal/application/usecase"
)

// AuthHandler rotas públicas de registro e login.
type AuthHandler struct {
	authUC     *auth.AuthUseCase
	operadorUC *usecase.OperadorUseCase
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(authUC *auth.AuthUseCase, operadorUC *usecase.OperadorUseCase) *AuthHandler {
	return &AuthHandler{authUC: authUC, operadorUC: operadorUC}
}

// Registrar godoc
// @Summary      Registrar mercearia e conta do dono
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMerceariaRequest  true  "Dados da loja e do dono"
// @Success      201   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/registrar [post]
func (h *AuthHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarMerceariaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.authUC.Registrar(in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Login de operador ou dono
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciais"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.authUC.Login(in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Validar godoc
// @Summary      Validar acesso do operador autenticado (entrada no PDV)
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/auth/validar [get]
func (h *AuthHandler) Validar(c *fiber.Ctx) error {
	if err := h.operadorUC.ValidarAcesso(GetOperadorID(c)); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "acesso liberado"})
}
