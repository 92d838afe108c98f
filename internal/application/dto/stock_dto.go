package dto

import "time"

// StockResponse sortie du stock courant d'un produit.
type StockResponse struct {
	ProduitID          string     `json:"produit_id"`
	QuantiteDisponible int        `json:"quantite_disponible"`
	DerniereEntree     *time.Time `json:"derniere_entree,omitempty"`
	DerniereSortie     *time.Time `json:"derniere_sortie,omitempty"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// StockListResponse liste paginée de lignes de stock.
type StockListResponse struct {
	Items []StockResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
