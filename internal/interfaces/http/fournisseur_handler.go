package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lmoreau/gestock-api/internal/application/dto"
	"github.com/lmoreau/gestock-api/internal/application/usecase"
	"github.com/lmoreau/gestock-api/internal/domain"
)

// FournisseurHandler gère les requêtes HTTP pour les fournisseurs.
type FournisseurHandler struct {
	uc *usecase.FournisseurUseCase
}

// NewFournisseurHandler construit le handler.
func NewFournisseurHandler(uc *usecase.FournisseurUseCase) *FournisseurHandler {
	return &FournisseurHandler{uc: uc}
}

// Create godoc
// @Summary      Créer un fournisseur
// @Tags         fournisseurs
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFournisseurRequest  true  "Données du fournisseur"
// @Success      201   {object}  dto.FournisseurResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /fournisseurs/ [post]
func (h *FournisseurHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFournisseurRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if in.Nom == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nom est requis"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtenir un fournisseur par ID
// @Tags         fournisseurs
// @Produce      json
// @Param        id   path  string  true  "ID du fournisseur"
// @Success      200  {object}  dto.FournisseurResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /fournisseurs/{id} [get]
func (h *FournisseurHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fournisseur introuvable"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Lister les fournisseurs
// @Tags         fournisseurs
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.FournisseurListResponse
// @Router       /fournisseurs/ [get]
func (h *FournisseurHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modifier un fournisseur
// @Tags         fournisseurs
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID du fournisseur"
// @Param        body  body  dto.UpdateFournisseurRequest  true  "Champs à modifier"
// @Success      200   {object}  dto.FournisseurResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /fournisseurs/{id} [put]
func (h *FournisseurHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFournisseurRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fournisseur introuvable"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer un fournisseur
// @Tags         fournisseurs
// @Param        id  path  string  true  "ID du fournisseur"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /fournisseurs/{id} [delete]
func (h *FournisseurHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fournisseur introuvable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
