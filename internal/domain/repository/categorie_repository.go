package repository

import "github.com/lmoreau/gestock-api/internal/domain/entity"

// CategorieRepository définit le port de persistance pour Categorie (DIP).
type CategorieRepository interface {
	Create(categorie *entity.Categorie) error
	GetByID(id string) (*entity.Categorie, error)
	GetByNom(nom string) (*entity.Categorie, error)
	Update(categorie *entity.Categorie) error
	List(limit, offset int) ([]*entity.Categorie, error)
	Delete(id string) error
}
