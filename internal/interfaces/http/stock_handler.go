package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lmoreau/gestock-api/internal/application/dto"
	"github.com/lmoreau/gestock-api/internal/application/usecase"
	"github.com/lmoreau/gestock-api/internal/domain"
)

// StockHandler gère les requêtes HTTP de consultation du stock courant.
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construit le handler.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Lister le stock courant
// @Description  stock_faible=true restreint aux produits à ou sous leur seuil stock_min.
// @Tags         stock
// @Produce      json
// @Param        stock_faible  query  bool  false  "Seulement le stock faible"
// @Param        limit         query  int   false  "Limite"  default(20)
// @Param        offset        query  int   false  "Offset"  default(0)
// @Success      200  {object}  dto.StockListResponse
// @Router       /stock/ [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.QueryBool("stock_faible"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByProduit godoc
// @Summary      Obtenir le stock courant d'un produit
// @Tags         stock
// @Produce      json
// @Param        produit_id  path  string  true  "ID du produit"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /stock/{produit_id} [get]
func (h *StockHandler) GetByProduit(c *fiber.Ctx) error {
	out, err := h.uc.GetByProduit(c.Params("produit_id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produit introuvable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
