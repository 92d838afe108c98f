package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/lmoreau/gestock-api/internal/domain/entity"
	"github.com/lmoreau/gestock-api/internal/domain/repository"
)

var _ repository.MouvementStockRepository = (*MouvementStockRepo)(nil)

// MouvementStockRepo implémentation du journal des mouvements sur PostgreSQL (pool ou tx).
type MouvementStockRepo struct {
	q Querier
}

// NewMouvementStockRepository construit l'adaptateur. Passer un pool ou une tx (Querier).
func NewMouvementStockRepository(q Querier) *MouvementStockRepo {
	return &MouvementStockRepo{q: q}
}

// Create persiste un mouvement de stock.
func (r *MouvementStockRepo) Create(mouvement *entity.MouvementStock) error {
	if mouvement.ID == "" {
		mouvement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO mouvements_stock (id, produit_id, type, quantite, quantite_avant, quantite_apres, motif, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		mouvement.ID, mouvement.ProduitID, mouvement.Type, mouvement.Quantite,
		mouvement.QuantiteAvant, mouvement.QuantiteApres, mouvement.Motif, mouvement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert mouvement: %w", err)
	}
	return nil
}

// GetByID retourne un mouvement par ID (nil si absent).
func (r *MouvementStockRepo) GetByID(id string) (*entity.MouvementStock, error) {
	query := `
		SELECT id, produit_id, type, quantite, quantite_avant, quantite_apres, motif, created_at
		FROM mouvements_stock WHERE id = $1`
	var m entity.MouvementStock
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProduitID, &m.Type, &m.Quantite, &m.QuantiteAvant, &m.QuantiteApres, &m.Motif, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mouvement: %w", err)
	}
	return &m, nil
}

// List liste les mouvements du plus récent au plus ancien, avec filtre produit optionnel.
func (r *MouvementStockRepo) List(produitID string, limit, offset int) ([]*entity.MouvementStock, error) {
	query := `
		SELECT id, produit_id, type, quantite, quantite_avant, quantite_apres, motif, created_at
		FROM mouvements_stock`
	args := []any{}
	pos := 1
	if produitID != "" {
		query += fmt.Sprintf(` WHERE produit_id = $%d`, pos)
		args = append(args, produitID)
		pos++
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list mouvements: %w", err)
	}
	defer rows.Close()
	var list []*entity.MouvementStock
	for rows.Next() {
		var m entity.MouvementStock
		if err := rows.Scan(&m.ID, &m.ProduitID, &m.Type, &m.Quantite, &m.QuantiteAvant,
			&m.QuantiteApres, &m.Motif, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan mouvement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CountByProduit compte les mouvements d'un produit (garde de suppression).
func (r *MouvementStockRepo) CountByProduit(produitID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM mouvements_stock WHERE produit_id = $1`, produitID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count mouvements: %w", err)
	}
	return count, nil
}
