package entity

import "time"

// Stock représente le stock courant d'un produit (une ligne par produit).
// Dérivé du journal des mouvements : QuantiteDisponible est toujours égale au
// QuantiteApres du dernier mouvement du produit.
type Stock struct {
	ProduitID          string
	QuantiteDisponible int
	DerniereEntree     *time.Time
	DerniereSortie     *time.Time
	UpdatedAt          time.Time
}
