package entity

import "time"

// Categorie représente une catégorie de produits. Le nom est unique.
type Categorie struct {
	ID          string
	Nom         string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
