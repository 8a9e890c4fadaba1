package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caderneta/mercearia-api/internal/application/auth"
	"github.com/caderneta/mercearia-api/internal/application/estoque"
	"github.com/caderneta/mercearia-api/internal/application/fiado"
	"github.com/caderneta/mercearia-api/internal/application/financeiro"
	"github.com/caderneta/mercearia-api/internal/application/relatorio"
	"github.com/caderneta/mercearia-api/internal/application/usecase"
	"github.com/caderneta/mercearia-api/internal/application/venda"
	"github.com/caderneta/mercearia-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProdutoUC    *estoque.ProdutoUseCase
	VendaUC      *venda.FinalizarVendaUseCase
	FiadoUC      *fiado.UseCase
	FinanceiroUC *financeiro.UseCase
	RelatorioUC  *relatorio.UseCase
	MerceariaUC  *usecase.MerceariaUseCase
	OperadorUC   *usecase.OperadorUseCase
	CategoriaUC  *usecase.CategoriaUseCase
	JWTSecret    string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.OperadorUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/registrar", authHandler.Registrar)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/validar", authHandler.Validar)

	// Mercearia do token
	merceariaHandler := NewMerceariaHandler(deps.MerceariaUC)
	mercearias := protected.Group("/mercearias")
	mercearias.Get("/me", merceariaHandler.Dados)
	mercearias.Put("/me", RequireRole(entity.RoleMerchant), merceariaHandler.Atualizar)
	mercearias.Get("/me/assinatura", merceariaHandler.Assinatura)

	// Operadores (só o dono gerencia)
	operadorHandler := NewOperadorHandler(deps.OperadorUC)
	operadores := protected.Group("/operadores", RequireRole(entity.RoleMerchant))
	operadores.Post("/", operadorHandler.Criar)
	operadores.Get("/", operadorHandler.Listar)
	operadores.Get("/:id", operadorHandler.Detalhes)
	operadores.Put("/:id", operadorHandler.Atualizar)
	operadores.Patch("/:id/status", operadorHandler.AlterarStatus)
	operadores.Delete("/:id", operadorHandler.Deletar)

	// Categorias
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias := protected.Group("/categorias")
	categorias.Post("/", categoriaHandler.Criar)
	categorias.Get("/", categoriaHandler.Listar)
	categorias.Put("/:id", categoriaHandler.Atualizar)
	categorias.Delete("/:id", categoriaHandler.Deletar)

	// Produtos
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos := protected.Group("/produtos")
	produtos.Post("/", produtoHandler.Criar)
	produtos.Get("/", produtoHandler.Listar)
	produtos.Get("/estoque-baixo", produtoHandler.EstoqueBaixo)
	produtos.Get("/busca", produtoHandler.BuscarPDV)
	produtos.Get("/busca-global", produtoHandler.BuscarGlobal)
	produtos.Put("/:id", produtoHandler.Atualizar)
	produtos.Delete("/:id", produtoHandler.Deletar)

	// Vendas (PDV)
	vendaHandler := NewVendaHandler(deps.VendaUC)
	vendas := protected.Group("/vendas")
	vendas.Post("/finalizar", vendaHandler.Finalizar)

	// Clientes e fiado
	clienteHandler := NewClienteHandler(deps.FiadoUC)
	clientes := protected.Group("/clientes")
	clientes.Post("/", clienteHandler.Criar)
	clientes.Get("/", clienteHandler.Listar)
	clientes.Get("/busca", clienteHandler.Buscar)
	clientes.Get("/devedores", clienteHandler.Devedores)
	clientes.Post("/fiado/liquidar", clienteHandler.Liquidar)
	clientes.Get("/:id/fiado", clienteHandler.ItensFiado)
	clientes.Put("/:id", clienteHandler.Atualizar)
	clientes.Delete("/:id", clienteHandler.Deletar)

	// Financeiro: contas a pagar, caixa e relatórios
	financeiroHandler := NewFinanceiroHandler(deps.FinanceiroUC)
	relatorioHandler := NewRelatorioHandler(deps.RelatorioUC)
	fin := protected.Group("/financeiro")
	fin.Post("/contas", financeiroHandler.CriarConta)
	fin.Get("/contas", financeiroHandler.ListarContas)
	fin.Put("/contas/:id", financeiroHandler.AtualizarConta)
	fin.Patch("/contas/:id/pagar", financeiroHandler.PagarConta)
	fin.Delete("/contas/:id", financeiroHandler.DeletarConta)
	fin.Get("/caixa/resumo", financeiroHandler.ResumoCaixa)
	fin.Get("/relatorios/dre", relatorioHandler.DRE)
	fin.Get("/relatorios/dre/pdf", relatorioHandler.DREPDF)
	fin.Get("/relatorios/produtos", relatorioHandler.ProdutosVendidos)

	// Administração da plataforma
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	admin.Get("/mercearias", merceariaHandler.AdminListar)
	admin.Get("/mercearias/excluidas", merceariaHandler.AdminListarExcluidas)
	admin.Delete("/mercearias/:id", merceariaHandler.AdminExcluir)
	admin.Post("/mercearias/:id/restaurar", merceariaHandler.AdminRestaurar)
}
