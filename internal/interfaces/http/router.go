package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lmoreau/gestock-api/internal/application/etiquette"
	"github.com/lmoreau/gestock-api/internal/application/inventaire"
	"github.com/lmoreau/gestock-api/internal/application/usecase"
)

// RouterDeps dépendances pour le router.
type RouterDeps struct {
	CategorieUC       *usecase.CategorieUseCase
	FournisseurUC     *usecase.FournisseurUseCase
	ProduitUC         *usecase.ProduitUseCase
	MouvementUC       *usecase.MouvementUseCase
	StockUC           *usecase.StockUseCase
	RegisterMouvement *inventaire.RegisterMouvementUseCase
	EtiquetteUC       *etiquette.UseCase
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	// Catégories
	categories := app.Group("/categories")
	categorieHandler := NewCategorieHandler(deps.CategorieUC)
	categories.Get("/", categorieHandler.List)
	categories.Post("/", categorieHandler.Create)
	categories.Get("/:id", categorieHandler.GetByID)
	categories.Put("/:id", categorieHandler.Update)
	categories.Delete("/:id", categorieHandler.Delete)

	// Fournisseurs
	fournisseurs := app.Group("/fournisseurs")
	fournisseurHandler := NewFournisseurHandler(deps.FournisseurUC)
	fournisseurs.Get("/", fournisseurHandler.List)
	fournisseurs.Post("/", fournisseurHandler.Create)
	fournisseurs.Get("/:id", fournisseurHandler.GetByID)
	fournisseurs.Put("/:id", fournisseurHandler.Update)
	fournisseurs.Delete("/:id", fournisseurHandler.Delete)

	// Produits
	produits := app.Group("/produits")
	produitHandler := NewProduitHandler(deps.ProduitUC, deps.EtiquetteUC)
	produits.Get("/", produitHandler.List)
	produits.Post("/", produitHandler.Create)
	produits.Get("/:id", produitHandler.GetByID)
	produits.Put("/:id", produitHandler.Update)
	produits.Delete("/:id", produitHandler.Delete)
	produits.Get("/:id/etiquette", produitHandler.Etiquette)

	// Read model composite produit + stock
	app.Get("/produits-avec-stock/", produitHandler.ListAvecStock)

	// Mouvements de stock
	mouvements := app.Group("/mouvements-stock")
	mouvementHandler := NewMouvementHandler(deps.RegisterMouvement, deps.MouvementUC)
	mouvements.Get("/", mouvementHandler.List)
	mouvements.Post("/", mouvementHandler.Create)
	mouvements.Get("/:id", mouvementHandler.GetByID)

	// Stock courant
	stock := app.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Get("/", stockHandler.List)
	stock.Get("/:produit_id", stockHandler.GetByProduit)
}

// pageParams lit limit/offset avec valeurs par défaut et bornes.
func pageParams(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	offset = c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
