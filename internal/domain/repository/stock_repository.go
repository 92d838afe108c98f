package repository

import "github.com/lmoreau/gestock-api/internal/domain/entity"

// StockRepository définit le port du stock courant par produit.
// Utilisé à l'intérieur des transactions pour garantir la cohérence avec le journal.
type StockRepository interface {
	// Get retourne le stock courant ; une ligne absente vaut quantité zéro.
	Get(produitID string) (*entity.Stock, error)
	// GetForUpdate verrouille la ligne (SELECT FOR UPDATE) le temps de la transaction.
	GetForUpdate(produitID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	// List retourne les lignes de stock ; stockFaible limite aux produits dont
	// la quantité disponible est inférieure ou égale à leur seuil stock_min.
	List(stockFaible bool, limit, offset int) ([]*entity.Stock, error)
	Delete(produitID string) error
}
