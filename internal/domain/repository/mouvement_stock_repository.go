package repository

import "github.com/lmoreau/gestock-api/internal/domain/entity"

// MouvementStockRepository définit le port de persistance pour le journal des mouvements.
type MouvementStockRepository interface {
	Create(mouvement *entity.MouvementStock) error
	GetByID(id string) (*entity.MouvementStock, error)
	// List retourne les mouvements les plus récents d'abord.
	// produitID vide = tous les produits.
	List(produitID string, limit, offset int) ([]*entity.MouvementStock, error)
	CountByProduit(produitID string) (int, error)
}
