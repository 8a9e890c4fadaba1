package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/caderneta/mercearia-api/internal/application/dto"
	"github.com/caderneta/mercearia-api/internal/application/relatorio"
)

// RelatorioHandler rotas dos relatórios gerenciais (protegido).
// Query params inicio e fim no formato 2006-01-02; fim é inclusivo na API
// e convertido aqui para o limite exclusivo do dia seguinte.
type RelatorioHandler struct {
	uc *relatorio.UseCase
}

// NewRelatorioHandler constrói o handler.
func NewRelatorioHandler(uc *relatorio.UseCase) *RelatorioHandler {
	return &RelatorioHandler{uc: uc}
}

// DRE godoc
// @Summary      Demonstrativo de resultado do período
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Param        inicio  query  string  true  "Data inicial (2006-01-02)"
// @Param        fim     query  string  true  "Data final inclusiva (2006-01-02)"
// @Success      200     {object}  dto.DREResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/financeiro/relatorios/dre [get]
func (h *RelatorioHandler) DRE(c *fiber.Ctx) error {
	inicio, fim, err := parsePeriodo(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "inicio e fim no formato 2006-01-02"})
	}
	out, err := h.uc.DRE(c.Context(), GetMerceariaID(c), inicio, fim)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// DREPDF godoc
// @Summary      Demonstrativo de resultado do período em PDF
// @Tags         relatorios
// @Security     Bearer
// @Produce      application/pdf
// @Param        inicio  query  string  true  "Data inicial (2006-01-02)"
// @Param        fim     query  string  true  "Data final inclusiva (2006-01-02)"
// @Success      200     {file}    binary
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/financeiro/relatorios/dre/pdf [get]
func (h *RelatorioHandler) DREPDF(c *fiber.Ctx) error {
	inicio, fim, err := parsePeriodo(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "inicio e fim no formato 2006-01-02"})
	}
	pdfBytes, err := h.uc.DREPDF(c.Context(), GetMerceariaID(c), inicio, fim)
	if err != nil {
		return responderErro(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="dre.pdf"`)
	return c.Send(pdfBytes)
}

// ProdutosVendidos godoc
// @Summary      Produtos vendidos no período, maior receita primeiro
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Param        inicio        query  string  true   "Data inicial (2006-01-02)"
// @Param        fim           query  string  true   "Data final inclusiva (2006-01-02)"
// @Param        categoria_id  query  string  false  "Filtro por categoria"
// @Success      200           {array}  dto.ProdutoVendidoResponse
// @Failure      400           {object}  dto.ErrorResponse
// @Router       /api/financeiro/relatorios/produtos [get]
func (h *RelatorioHandler) ProdutosVendidos(c *fiber.Ctx) error {
	inicio, fim, err := parsePeriodo(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "inicio e fim no formato 2006-01-02"})
	}
	var categoriaID *string
	if v := c.Query("categoria_id"); v != "" {
		categoriaID = &v
	}
	out, err := h.uc.ProdutosVendidos(c.Context(), GetMerceariaID(c), inicio, fim, categoriaID)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// parsePeriodo lê inicio/fim da query e devolve o intervalo meio-aberto
// [inicio, fim+1dia).
func parsePeriodo(c *fiber.Ctx) (time.Time, time.Time, error) {
	inicio, err := time.Parse("2006-01-02", c.Query("inicio"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	fim, err := time.Parse("2006-01-02", c.Query("fim"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return inicio, fim.AddDate(0, 0, 1), nil
}
