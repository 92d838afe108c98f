package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProduitRequest entrée pour créer un produit.
type CreateProduitRequest struct {
	Nom           string          `json:"nom" validate:"required,min=1,max=200"`
	Reference     string          `json:"reference" validate:"required,min=1,max=100"`
	Description   string          `json:"description"`
	CategorieID   string          `json:"categorie_id"`
	FournisseurID string          `json:"fournisseur_id"`
	PrixUnitaire  decimal.Decimal `json:"prix_unitaire"`
	StockMin      int             `json:"stock_min" validate:"min=0"`
	StockMax      int             `json:"stock_max" validate:"min=0"`
	Unite         string          `json:"unite"`
}

// UpdateProduitRequest entrée pour modifier un produit (mise à jour partielle :
// seuls les champs fournis sont appliqués). La référence n'est pas modifiable.
type UpdateProduitRequest struct {
	Nom           *string          `json:"nom" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description"`
	CategorieID   *string          `json:"categorie_id"`
	FournisseurID *string          `json:"fournisseur_id"`
	PrixUnitaire  *decimal.Decimal `json:"prix_unitaire"`
	StockMin      *int             `json:"stock_min" validate:"omitempty,min=0"`
	StockMax      *int             `json:"stock_max" validate:"omitempty,min=0"`
	Unite         *string          `json:"unite"`
}

// ProduitResponse sortie d'un produit.
type ProduitResponse struct {
	ID            string          `json:"id"`
	Nom           string          `json:"nom"`
	Reference     string          `json:"reference"`
	Description   string          `json:"description"`
	CategorieID   string          `json:"categorie_id,omitempty"`
	FournisseurID string          `json:"fournisseur_id,omitempty"`
	PrixUnitaire  decimal.Decimal `json:"prix_unitaire"`
	StockMin      int             `json:"stock_min"`
	StockMax      int             `json:"stock_max"`
	Unite         string          `json:"unite"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProduitListResponse liste paginée de produits.
type ProduitListResponse struct {
	Items []ProduitResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ProduitAvecStockResponse produit enrichi de son stock courant.
type ProduitAvecStockResponse struct {
	ProduitResponse
	QuantiteDisponible int        `json:"quantite_disponible"`
	StockFaible        bool       `json:"stock_faible"`
	DerniereEntree     *time.Time `json:"derniere_entree,omitempty"`
	DerniereSortie     *time.Time `json:"derniere_sortie,omitempty"`
}

// ProduitAvecStockListResponse liste paginée du read model produit+stock.
type ProduitAvecStockListResponse struct {
	Items []ProduitAvecStockResponse `json:"items"`
	Page  PageResponse               `json:"page"`
}
