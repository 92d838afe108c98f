package repository

import (
	"time"

	"github.com/lmoreau/gestock-api/internal/domain/entity"
)

// ProduitAvecStock combine un produit et son stock courant (read model composite).
type ProduitAvecStock struct {
	Produit            entity.Produit
	QuantiteDisponible int
	DerniereEntree     *time.Time
	DerniereSortie     *time.Time
}

// ProduitRepository définit le port de persistance pour Produit (DIP).
// search est un filtre plein texte insensible à la casse sur nom, référence et
// description (combinés en OU) ; vide = pas de filtre.
type ProduitRepository interface {
	Create(produit *entity.Produit) error
	GetByID(id string) (*entity.Produit, error)
	GetByReference(reference string) (*entity.Produit, error)
	Update(produit *entity.Produit) error
	List(search string, limit, offset int) ([]*entity.Produit, error)
	ListAvecStock(search string, limit, offset int) ([]*ProduitAvecStock, error)
	Delete(id string) error
}
