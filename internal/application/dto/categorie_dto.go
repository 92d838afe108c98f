package dto

import "time"

// CreateCategorieRequest entrée pour créer une catégorie.
type CreateCategorieRequest struct {
	Nom         string `json:"nom" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

// UpdateCategorieRequest entrée pour modifier une catégorie (mise à jour partielle).
type UpdateCategorieRequest struct {
	Nom         *string `json:"nom" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
}

// CategorieResponse sortie d'une catégorie.
type CategorieResponse struct {
	ID          string    `json:"id"`
	Nom         string    `json:"nom"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategorieListResponse liste paginée de catégories.
type CategorieListResponse struct {
	Items []CategorieResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
