package repository

import "github.com/lmoreau/gestock-api/internal/domain/entity"

// FournisseurRepository définit le port de persistance pour Fournisseur (DIP).
type FournisseurRepository interface {
	Create(fournisseur *entity.Fournisseur) error
	GetByID(id string) (*entity.Fournisseur, error)
	Update(fournisseur *entity.Fournisseur) error
	List(limit, offset int) ([]*entity.Fournisseur, error)
	Delete(id string) error
}
