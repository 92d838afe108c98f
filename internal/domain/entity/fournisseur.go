package entity

import "time"

// Fournisseur représente un fournisseur de produits.
type Fournisseur struct {
	ID        string
	Nom       string
	Contact   string // nom de la personne à contacter
	Telephone string
	Email     string
	Adresse   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
