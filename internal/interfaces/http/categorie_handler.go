package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lmoreau/gestock-api/internal/application/dto"
	"github.com/lmoreau/gestock-api/internal/application/usecase"
	"github.com/lmoreau/gestock-api/internal/domain"
)

// CategorieHandler gère les requêtes HTTP pour les catégories.
type CategorieHandler struct {
	uc *usecase.CategorieUseCase
}

// NewCategorieHandler construit le handler.
func NewCategorieHandler(uc *usecase.CategorieUseCase) *CategorieHandler {
	return &CategorieHandler{uc: uc}
}

// Create godoc
// @Summary      Créer une catégorie
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategorieRequest  true  "Données de la catégorie"
// @Success      201   {object}  dto.CategorieResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /categories/ [post]
func (h *CategorieHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategorieRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if in.Nom == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nom est requis"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ce nom de catégorie existe déjà"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtenir une catégorie par ID
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la catégorie"
// @Success      200  {object}  dto.CategorieResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /categories/{id} [get]
func (h *CategorieHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "catégorie introuvable"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Lister les catégories
// @Tags         categories
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.CategorieListResponse
// @Router       /categories/ [get]
func (h *CategorieHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modifier une catégorie
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la catégorie"
// @Param        body  body  dto.UpdateCategorieRequest  true  "Champs à modifier"
// @Success      200   {object}  dto.CategorieResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /categories/{id} [put]
func (h *CategorieHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategorieRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ce nom de catégorie existe déjà"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "catégorie introuvable"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer une catégorie
// @Tags         categories
// @Param        id  path  string  true  "ID de la catégorie"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /categories/{id} [delete]
func (h *CategorieHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "catégorie introuvable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
