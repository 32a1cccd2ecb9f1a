package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/canek/storefront/internal/application/cart"
	"github.com/canek/storefront/internal/application/session"
	"github.com/canek/storefront/internal/infrastructure/backend"
	"github.com/canek/storefront/internal/infrastructure/localstore"
	httpRouter "github.com/canek/storefront/internal/interfaces/http"
	"github.com/canek/storefront/pkg/config"
	"github.com/canek/storefront/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	kv, err := localstore.NewFileStore(cfg.Store.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("armazenamento local")
	}

	// Os dois stores são construídos uma única vez na raiz e injetados
	// (nunca singletons ambientes); a sessão reidrata antes do servidor subir.
	navigator := httpRouter.NewNavigator(log)
	sessionStore := session.New(kv, navigator, log)
	sessionStore.Initialize()
	cartStore := cart.New(kv, log)

	client := backend.New(backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout(),
	}, log)
	detailLoader := backend.NewDetailLoader(client, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SessionStore: sessionStore,
		CartStore:    cartStore,
		Backend:      client,
		DetailLoader: detailLoader,
		Navigator:    navigator,
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
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação finalizada")
}
