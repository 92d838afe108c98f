package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lmoreau/gestock-api/internal/domain/entity"
	"github.com/lmoreau/gestock-api/internal/domain/repository"
)

var _ repository.FournisseurRepository = (*FournisseurRepo)(nil)

// FournisseurRepo implémentation du port FournisseurRepository sur PostgreSQL (pool ou tx).
type FournisseurRepo struct {
	q Querier
}

// NewFournisseurRepository construit l'adaptateur. Passer un pool ou une tx (Querier).
func NewFournisseurRepository(q Querier) *FournisseurRepo {
	return &FournisseurRepo{q: q}
}

// Create persiste un nouveau fournisseur.
func (r *FournisseurRepo) Create(fournisseur *entity.Fournisseur) error {
	query := `
		INSERT INTO fournisseurs (id, nom, contact, telephone, email, adresse, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		fournisseur.ID, fournisseur.Nom, fournisseur.Contact, fournisseur.Telephone,
		fournisseur.Email, fournisseur.Adresse, fournisseur.CreatedAt, fournisseur.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert fournisseur: %w", err)
	}
	return nil
}

// GetByID retourne un fournisseur par ID (nil si absent).
func (r *FournisseurRepo) GetByID(id string) (*entity.Fournisseur, error) {
	query := `
		SELECT id, nom, contact, telephone, email, adresse, created_at, updated_at
		FROM fournisseurs WHERE id = $1`
	var f entity.Fournisseur
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.Nom, &f.Contact, &f.Telephone, &f.Email, &f.Adresse, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fournisseur: %w", err)
	}
	return &f, nil
}

// Update met à jour un fournisseur existant.
func (r *FournisseurRepo) Update(fournisseur *entity.Fournisseur) error {
	query := `
		UPDATE fournisseurs SET nom = $2, contact = $3, telephone = $4, email = $5, adresse = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		fournisseur.ID, fournisseur.Nom, fournisseur.Contact, fournisseur.Telephone,
		fournisseur.Email, fournisseur.Adresse, fournisseur.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update fournisseur: %w", err)
	}
	return nil
}

// List liste les fournisseurs par ordre alphabétique avec pagination.
func (r *FournisseurRepo) List(limit, offset int) ([]*entity.Fournisseur, error) {
	query := `
		SELECT id, nom, contact, telephone, email, adresse, created_at, updated_at
		FROM fournisseurs ORDER BY nom LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list fournisseurs: %w", err)
	}
	defer rows.Close()
	var list []*entity.Fournisseur
	for rows.Next() {
		var f entity.Fournisseur
		if err := rows.Scan(&f.ID, &f.Nom, &f.Contact, &f.Telephone, &f.Email, &f.Adresse, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan fournisseur: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Delete supprime un fournisseur par ID. Les produits rattachés passent à fournisseur_id NULL (FK ON DELETE SET NULL).
func (r *FournisseurRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM fournisseurs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete fournisseur: %w", err)
	}
	return nil
}
