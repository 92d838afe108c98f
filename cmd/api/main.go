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
	"github.com/lmoreau/gestock-api/internal/application/etiquette"
	"github.com/lmoreau/gestock-api/internal/application/inventaire"
	"github.com/lmoreau/gestock-api/internal/application/usecase"
	infrapdf "github.com/lmoreau/gestock-api/internal/infrastructure/pdf"
	"github.com/lmoreau/gestock-api/internal/infrastructure/postgres"
	httpRouter "github.com/lmoreau/gestock-api/internal/interfaces/http"
	"github.com/lmoreau/gestock-api/pkg/config"
	"github.com/lmoreau/gestock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	categorieRepo := postgres.NewCategorieRepository(pool)
	fournisseurRepo := postgres.NewFournisseurRepository(pool)
	produitRepo := postgres.NewProduitRepository(pool)
	mouvementRepo := postgres.NewMouvementStockRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	categorieUC := usecase.NewCategorieUseCase(categorieRepo)
	fournisseurUC := usecase.NewFournisseurUseCase(fournisseurRepo)
	produitUC := usecase.NewProduitUseCase(produitRepo, categorieRepo, fournisseurRepo, txRunner)
	mouvementUC := usecase.NewMouvementUseCase(mouvementRepo, produitRepo)
	stockUC := usecase.NewStockUseCase(stockRepo, produitRepo)
	registerMouvementUC := inventaire.NewRegisterMouvementUseCase(txRunner, produitRepo)

	etiquetteGenerator := infrapdf.NewMarotoEtiquetteGenerator()
	etiquetteUC := etiquette.NewUseCase(produitRepo, stockRepo, etiquetteGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local : http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategorieUC:       categorieUC,
		FournisseurUC:     fournisseurUC,
		ProduitUC:         produitUC,
		MouvementUC:       mouvementUC,
		StockUC:           stockUC,
		RegisterMouvement: registerMouvementUC,
		EtiquetteUC:       etiquetteUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP arrêté")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
