package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/caderneta/mercearia-api/internal/application/auth"
	"github.com/caderneta/mercearia-api/internal/application/estoque"
	"github.com/caderneta/mercearia-api/internal/application/fiado"
	"github.com/caderneta/mercearia-api/internal/application/financeiro"
	"github.com/caderneta/mercearia-api/internal/application/relatorio"
	"github.com/caderneta/mercearia-api/internal/application/usecase"
	"github.com/caderneta/mercearia-api/internal/application/venda"
	infrapdf "github.com/caderneta/mercearia-api/internal/infrastructure/pdf"
	"github.com/caderneta/mercearia-api/internal/infrastructure/postgres"
	httpRouter "github.com/caderneta/mercearia-api/internal/interfaces/http"
	"github.com/caderneta/mercearia-api/pkg/config"
	"github.com/caderneta/mercearia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	produtoRepo := postgres.NewProdutoRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	vendaRepo := postgres.NewVendaRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	contaRepo := postgres.NewContaPagarRepository(pool)
	caixaRepo := postgres.NewCaixaRepository(pool)
	merceariaRepo := postgres.NewMerceariaRepository(pool)
	operadorRepo := postgres.NewOperadorRepository(pool)
	relatorioRepo := postgres.NewRelatorioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	produtoUC := estoque.NewProdutoUseCase(produtoRepo, categoriaRepo)
	vendaUC := venda.NewFinalizarVendaUseCase(txRunner)
	fiadoUC := fiado.NewUseCase(txRunner, clienteRepo, vendaRepo)
	financeiroUC := financeiro.NewUseCase(contaRepo, caixaRepo)
	relatorioUC := relatorio.NewUseCase(relatorioRepo, merceariaRepo, infrapdf.NewMarotoDREGenerator())
	merceariaUC := usecase.NewMerceariaUseCase(merceariaRepo)
	operadorUC := usecase.NewOperadorUseCase(operadorRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	authUC := auth.NewAuthUseCase(operadorRepo, merceariaRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Mercearia API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ProdutoUC:    produtoUC,
		VendaUC:      vendaUC,
		FiadoUC:      fiadoUC,
		FinanceiroUC: financeiroUC,
		RelatorioUC:  relatorioUC,
		MerceariaUC:  merceariaUC,
		OperadorUC:   operadorUC,
		CategoriaUC:  categoriaUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
