package dto

import "time"

// CreateFournisseurRequest entrée pour créer un fournisseur.
type CreateFournisseurRequest struct {
	Nom       string `json:"nom" validate:"required,min=1,max=200"`
	Contact   string `json:"contact"`
	Telephone string `json:"telephone"`
	Email     string `json:"email" validate:"omitempty,email"`
	Adresse   string `json:"adresse"`
}

// UpdateFournisseurRequest entrée pour modifier un fournisseur (mise à jour partielle).
type UpdateFournisseurRequest struct {
	Nom       *string `json:"nom" validate:"omitempty,min=1,max=200"`
	Contact   *string `json:"contact"`
	Telephone *string `json:"telephone"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Adresse   *string `json:"adresse"`
}

// FournisseurResponse sortie d'un fournisseur.
type FournisseurResponse struct {
	ID        string    `json:"id"`
	Nom       string    `json:"nom"`
	Contact   string    `json:"contact"`
	Telephone string    `json:"telephone"`
	Email     string    `json:"email"`
	Adresse   string    `json:"adresse"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FournisseurListResponse liste paginée de fournisseurs.
type FournisseurListResponse struct {
	Items []FournisseurResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
