package domain

import "errors"

// Erreurs de domaine (sans dépendances externes).
var (
	ErrNotFound         = errors.New("ressource introuvable")
	ErrInvalidInput     = errors.New("entrée invalide")
	ErrDuplicate        = errors.New("ressource dupliquée")
	ErrConflict         = errors.New("conflit avec l'état actuel")
	ErrStockInsuffisant = errors.New("stock insuffisant")
)
