package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lmoreau/gestock-api/internal/domain"
	"github.com/lmoreau/gestock-api/internal/domain/entity"
	"github.com/lmoreau/gestock-api/internal/domain/repository"
)

var _ repository.CategorieRepository = (*CategorieRepo)(nil)

// CategorieRepo implémentation du port CategorieRepository sur PostgreSQL (pool ou tx).
type CategorieRepo struct {
	q Querier
}

// NewCategorieRepository construit l'adaptateur. Passer un pool ou une tx (Querier).
func NewCategorieRepository(q Querier) *CategorieRepo {
	return &CategorieRepo{q: q}
}

// Create persiste une nouvelle catégorie.
func (r *CategorieRepo) Create(categorie *entity.Categorie) error {
	query := `
		INSERT INTO categories (id, nom, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		categorie.ID, categorie.Nom, categorie.Description, categorie.CreatedAt, categorie.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categorie: %w", err)
	}
	return nil
}

// GetByID retourne une catégorie par ID (nil si absente).
func (r *CategorieRepo) GetByID(id string) (*entity.Categorie, error) {
	query := `
		SELECT id, nom, description, created_at, updated_at
		FROM categories WHERE id = $1`
	var c entity.Categorie
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Nom, &c.Description, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categorie: %w", err)
	}
	return &c, nil
}

// GetByNom retourne une catégorie par nom (nil si absente).
func (r *CategorieRepo) GetByNom(nom string) (*entity.Categorie, error) {
	query := `
		SELECT id, nom, description, created_at, updated_at
		FROM categories WHERE nom = $1`
	var c entity.Categorie
	err := r.q.QueryRow(context.Background(), query, nom).Scan(
		&c.ID, &c.Nom, &c.Description, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categorie by nom: %w", err)
	}
	return &c, nil
}

// Update met à jour une catégorie existante.
func (r *CategorieRepo) Update(categorie *entity.Categorie) error {
	query := `
		UPDATE categories SET nom = $2, description = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		categorie.ID, categorie.Nom, categorie.Description, categorie.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update categorie: %w", err)
	}
	return nil
}

// List liste les catégories par ordre alphabétique avec pagination.
func (r *CategorieRepo) List(limit, offset int) ([]*entity.Categorie, error) {
	query := `
		SELECT id, nom, description, created_at, updated_at
		FROM categories ORDER BY nom LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categorie
	for rows.Next() {
		var c entity.Categorie
		if err := rows.Scan(&c.ID, &c.Nom, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan categorie: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete supprime une catégorie par ID. Les produits rattachés passent à categorie_id NULL (FK ON DELETE SET NULL).
func (r *CategorieRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete categorie: %w", err)
	}
	return nil
}
