package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produit représente un article référencé du stock.
// La référence est unique ; le stock courant vit dans Stock et n'est modifié
// que par les mouvements.
type Produit struct {
	ID            string
	Nom           string
	Reference     string // code unique
	Description   string
	CategorieID   string // vide si non catégorisé
	FournisseurID string // vide si sans fournisseur
	PrixUnitaire  decimal.Decimal
	StockMin      int // seuil d'alerte stock faible (quantité <= StockMin)
	StockMax      int
	Unite         string // libellé d'unité : pièce, kg, litre...
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
