package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lmoreau/gestock-api/internal/application/dto"
	"github.com/lmoreau/gestock-api/internal/application/inventaire"
	"github.com/lmoreau/gestock-api/internal/application/usecase"
	"github.com/lmoreau/gestock-api/internal/domain"
)

// MouvementHandler gère les requêtes HTTP du journal des mouvements.
type MouvementHandler struct {
	register *inventaire.RegisterMouvementUseCase
	uc       *usecase.MouvementUseCase
}

// NewMouvementHandler construit le handler.
func NewMouvementHandler(register *inventaire.RegisterMouvementUseCase, uc *usecase.MouvementUseCase) *MouvementHandler {
	return &MouvementHandler{register: register, uc: uc}
}

// Create godoc
// @Summary      Enregistrer un mouvement de stock
// @Description  ENTREE ajoute, SORTIE retire (refusée si le solde deviendrait négatif),
//
//	AJUSTEMENT fixe la quantité absolue. Le mouvement et le stock courant
//	sont écrits dans la même transaction.
//
// @Tags         mouvements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMouvementRequest  true  "produit_id, type, quantite, motif"
// @Success      201   {object}  dto.MouvementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /mouvements-stock/ [post]
func (h *MouvementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMouvementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.register.Register(c.Context(), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type ou quantité invalide"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produit introuvable"})
		case domain.ErrStockInsuffisant:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK_INSUFFISANT", Message: "stock insuffisant"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Lister les mouvements de stock
// @Tags         mouvements
// @Produce      json
// @Param        produit_id  query  string  false  "Filtrer par produit"
// @Param        limit       query  int     false  "Limite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.MouvementListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /mouvements-stock/ [get]
func (h *MouvementHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Query("produit_id"), limit, offset)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produit introuvable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtenir un mouvement par ID
// @Tags         mouvements
// @Produce      json
// @Param        id   path  string  true  "ID du mouvement"
// @Success      200  {object}  dto.MouvementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /mouvements-stock/{id} [get]
func (h *MouvementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "mouvement introuvable"})
	}
	return c.JSON(out)
}
