package entity

import "time"

// Types de mouvement de stock.
const (
	MouvementENTREE     = "ENTREE"     // entrée en stock
	MouvementSORTIE     = "SORTIE"     // sortie de stock
	MouvementAJUSTEMENT = "AJUSTEMENT" // mise à niveau absolue (inventaire)
)

// MouvementStock représente une ligne du journal des mouvements.
// QuantiteAvant/QuantiteApres capturent le solde autour du mouvement pour l'audit.
type MouvementStock struct {
	ID            string
	ProduitID     string
	Type          string // ENTREE, SORTIE, AJUSTEMENT
	Quantite      int    // toujours positive ; valeur absolue pour AJUSTEMENT
	QuantiteAvant int
	QuantiteApres int
	Motif         string
	CreatedAt     time.Time
}
