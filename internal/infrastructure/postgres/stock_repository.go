package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lmoreau/gestock-api/internal/domain/entity"
	"github.com/lmoreau/gestock-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implémentation de StockRepository sur PostgreSQL (pool ou tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construit l'adaptateur. Passer un pool ou une tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `produit_id, quantite_disponible, derniere_entree, derniere_sortie, updated_at`

// Get retourne le stock courant d'un produit. Une ligne absente vaut quantité zéro.
func (r *StockRepo) Get(produitID string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stock WHERE produit_id = $1`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, produitID).Scan(
		&s.ProduitID, &s.QuantiteDisponible, &s.DerniereEntree, &s.DerniereSortie, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProduitID: produitID}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate retourne le stock et verrouille la ligne (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(produitID string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stock WHERE produit_id = $1 FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, produitID).Scan(
		&s.ProduitID, &s.QuantiteDisponible, &s.DerniereEntree, &s.DerniereSortie, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProduitID: produitID}, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Upsert insère ou met à jour la ligne de stock d'un produit.
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (produit_id, quantite_disponible, derniere_entree, derniere_sortie, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (produit_id)
		DO UPDATE SET quantite_disponible = EXCLUDED.quantite_disponible,
			derniere_entree = EXCLUDED.derniere_entree,
			derniere_sortie = EXCLUDED.derniere_sortie,
			updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		stock.ProduitID, stock.QuantiteDisponible, stock.DerniereEntree, stock.DerniereSortie,
	)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// List liste les lignes de stock ; stockFaible restreint aux produits sous ou
// au seuil stock_min (borne incluse).
func (r *StockRepo) List(stockFaible bool, limit, offset int) ([]*entity.Stock, error) {
	query := `
		SELECT s.produit_id, s.quantite_disponible, s.derniere_entree, s.derniere_sortie, s.updated_at
		FROM stock s
		JOIN produits p ON p.id = s.produit_id`
	if stockFaible {
		query += ` WHERE s.quantite_disponible <= p.stock_min`
	}
	query += ` ORDER BY s.updated_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ProduitID, &s.QuantiteDisponible, &s.DerniereEntree, &s.DerniereSortie, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete supprime la ligne de stock d'un produit.
func (r *StockRepo) Delete(produitID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock WHERE produit_id = $1`, produitID)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return nil
}
