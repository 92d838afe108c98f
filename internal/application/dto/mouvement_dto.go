package dto

import "time"

// CreateMouvementRequest entrée pour enregistrer un mouvement de stock.
// Quantite est strictement positive ; pour AJUSTEMENT c'est la nouvelle
// quantité absolue, pas un delta.
type CreateMouvementRequest struct {
	ProduitID string `json:"produit_id" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=ENTREE SORTIE AJUSTEMENT"`
	Quantite  int    `json:"quantite" validate:"required,min=1"`
	Motif     string `json:"motif"`
}

// MouvementResponse sortie d'un mouvement.
type MouvementResponse struct {
	ID            string    `json:"id"`
	ProduitID     string    `json:"produit_id"`
	Type          string    `json:"type"`
	Quantite      int       `json:"quantite"`
	QuantiteAvant int       `json:"quantite_avant"`
	QuantiteApres int       `json:"quantite_apres"`
	Motif         string    `json:"motif"`
	CreatedAt     time.Time `json:"created_at"`
}

// MouvementListResponse liste paginée de mouvements.
type MouvementListResponse struct {
	Items []MouvementResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
