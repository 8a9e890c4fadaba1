package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caderneta/mercearia-api/internal/application/dto"
	"github.com/caderneta/mercearia-api/internal/application/estoque"
)

// ProdutoHandler rotas do catálogo de produtos (protegido).
type ProdutoHandler struct {
	uc *estoque.ProdutoUseCase
}

// NewProdutoHandler constrói o handler.
func NewProdutoHandler(uc *estoque.ProdutoUseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc}
}

// Criar godoc
// @Summary      Criar produto
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProdutoRequest  true  "Dados do produto"
// @Success      201   {object}  dto.ProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/produtos [post]
func (h *ProdutoHandler) Criar(c *fiber.Ctx) error {
	var in dto.ProdutoRequest
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
// @Summary      Listar catálogo da mercearia
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProdutoResponse
// @Router       /api/produtos [get]
func (h *ProdutoHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar(GetMerceariaID(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// EstoqueBaixo godoc
// @Summary      Listar produtos no estoque mínimo ou abaixo
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProdutoResponse
// @Router       /api/produtos/estoque-baixo [get]
func (h *ProdutoHandler) EstoqueBaixo(c *fiber.Ctx) error {
	out, err := h.uc.ListarEstoqueBaixo(GetMerceariaID(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// BuscarPDV godoc
// @Summary      Busca rápida do PDV (código de barras exato ou prefixo de nome)
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        termo  query  string  true  "Termo de busca"
// @Success      200    {array}  dto.ProdutoResponse
// @Router       /api/produtos/busca [get]
func (h *ProdutoHandler) BuscarPDV(c *fiber.Ctx) error {
	out, err := h.uc.BuscarPDV(GetMerceariaID(c), c.Query("termo"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// BuscarGlobal godoc
// @Summary      Busca por nome ignorando acentos ("acucar" encontra "Açúcar")
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        termo  query  string  true  "Termo de busca"
// @Success      200    {array}  dto.ProdutoResponse
// @Router       /api/produtos/busca-global [get]
func (h *ProdutoHandler) BuscarGlobal(c *fiber.Ctx) error {
	out, err := h.uc.BuscarGlobal(GetMerceariaID(c), c.Query("termo"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Atualizar godoc
// @Summary      Atualizar cadastro do produto (estoque não passa por aqui)
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID do produto"
// @Param        body  body  dto.ProdutoRequest  true  "Dados do produto"
// @Success      200   {object}  dto.ProdutoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [put]
func (h *ProdutoHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.ProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Atualizar(GetMerceariaID(c), c.Params("id"), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Deletar godoc
// @Summary      Deletar produto (histórico de vendas preserva o nome)
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do produto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [delete]
func (h *ProdutoHandler) Deletar(c *fiber.Ctx) error {
	if err := h.uc.Deletar(GetMerceariaID(c), c.Params("id")); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "produto removido"})
}
