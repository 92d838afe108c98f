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

var _ repository.ProduitRepository = (*ProduitRepo)(nil)

// ProduitRepo implémentation du port ProduitRepository sur PostgreSQL (pool ou tx).
type ProduitRepo struct {
	q Querier
}

// NewProduitRepository construit l'adaptateur. Passer un pool ou une tx (Querier).
func NewProduitRepository(q Querier) *ProduitRepo {
	return &ProduitRepo{q: q}
}

const produitColumns = `id, nom, reference, description, categorie_id, fournisseur_id, prix_unitaire, stock_min, stock_max, unite, created_at, updated_at`

// Create persiste un nouveau produit. La ligne de stock à zéro est créée par
// le cas d'usage dans la même transaction.
func (r *ProduitRepo) Create(produit *entity.Produit) error {
	query := `
		INSERT INTO produits (` + produitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		produit.ID, produit.Nom, produit.Reference, produit.Description,
		nullable(produit.CategorieID), nullable(produit.FournisseurID),
		produit.PrixUnitaire, produit.StockMin, produit.StockMax, produit.Unite,
		produit.CreatedAt, produit.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert produit: %w", err)
	}
	return nil
}

// GetByID retourne un produit par ID (nil si absent).
func (r *ProduitRepo) GetByID(id string) (*entity.Produit, error) {
	query := `SELECT ` + produitColumns + ` FROM produits WHERE id = $1`
	return r.getOne(query, id)
}

// GetByReference retourne un produit par référence unique (nil si absent).
func (r *ProduitRepo) GetByReference(reference string) (*entity.Produit, error) {
	query := `SELECT ` + produitColumns + ` FROM produits WHERE reference = $1`
	return r.getOne(query, reference)
}

func (r *ProduitRepo) getOne(query string, arg any) (*entity.Produit, error) {
	var p entity.Produit
	var categorieID, fournisseurID *string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Nom, &p.Reference, &p.Description, &categorieID, &fournisseurID,
		&p.PrixUnitaire, &p.StockMin, &p.StockMax, &p.Unite, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produit: %w", err)
	}
	if categorieID != nil {
		p.CategorieID = *categorieID
	}
	if fournisseurID != nil {
		p.FournisseurID = *fournisseurID
	}
	return &p, nil
}

// Update met à jour un produit existant. La référence n'est pas modifiable ;
// le stock se gère uniquement via les mouvements.
func (r *ProduitRepo) Update(produit *entity.Produit) error {
	query := `
		UPDATE produits SET nom = $2, description = $3, categorie_id = $4, fournisseur_id = $5,
			prix_unitaire = $6, stock_min = $7, stock_max = $8, unite = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		produit.ID, produit.Nom, produit.Description,
		nullable(produit.CategorieID), nullable(produit.FournisseurID),
		produit.PrixUnitaire, produit.StockMin, produit.StockMax, produit.Unite, produit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update produit: %w", err)
	}
	return nil
}

// List liste les produits avec recherche plein texte optionnelle (insensible à
// la casse, sur nom, référence et description combinés en OU) et pagination.
func (r *ProduitRepo) List(search string, limit, offset int) ([]*entity.Produit, error) {
	query := `SELECT ` + produitColumns + ` FROM produits`
	args := []any{}
	pos := 1
	if search != "" {
		query += fmt.Sprintf(` WHERE nom ILIKE $%d OR reference ILIKE $%d OR description ILIKE $%d`, pos, pos, pos)
		args = append(args, "%"+search+"%")
		pos++
	}
	query += fmt.Sprintf(` ORDER BY nom LIMIT $%d OFFSET $%d`, pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list produits: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produit
	for rows.Next() {
		var p entity.Produit
		var categorieID, fournisseurID *string
		if err := rows.Scan(&p.ID, &p.Nom, &p.Reference, &p.Description, &categorieID, &fournisseurID,
			&p.PrixUnitaire, &p.StockMin, &p.StockMax, &p.Unite, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan produit: %w", err)
		}
		if categorieID != nil {
			p.CategorieID = *categorieID
		}
		if fournisseurID != nil {
			p.FournisseurID = *fournisseurID
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListAvecStock retourne produits et stock courant en une seule requête
// (LEFT JOIN : un produit sans ligne de stock vaut quantité zéro).
func (r *ProduitRepo) ListAvecStock(search string, limit, offset int) ([]*repository.ProduitAvecStock, error) {
	query := `
		SELECT p.id, p.nom, p.reference, p.description, p.categorie_id, p.fournisseur_id,
			p.prix_unitaire, p.stock_min, p.stock_max, p.unite, p.created_at, p.updated_at,
			COALESCE(s.quantite_disponible, 0), s.derniere_entree, s.derniere_sortie
		FROM produits p
		LEFT JOIN stock s ON s.produit_id = p.id`
	args := []any{}
	pos := 1
	if search != "" {
		query += fmt.Sprintf(` WHERE p.nom ILIKE $%d OR p.reference ILIKE $%d OR p.description ILIKE $%d`, pos, pos, pos)
		args = append(args, "%"+search+"%")
		pos++
	}
	query += fmt.Sprintf(` ORDER BY p.nom LIMIT $%d OFFSET $%d`, pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list produits avec stock: %w", err)
	}
	defer rows.Close()
	var list []*repository.ProduitAvecStock
	for rows.Next() {
		var ps repository.ProduitAvecStock
		var categorieID, fournisseurID *string
		if err := rows.Scan(
			&ps.Produit.ID, &ps.Produit.Nom, &ps.Produit.Reference, &ps.Produit.Description,
			&categorieID, &fournisseurID, &ps.Produit.PrixUnitaire,
			&ps.Produit.StockMin, &ps.Produit.StockMax, &ps.Produit.Unite,
			&ps.Produit.CreatedAt, &ps.Produit.UpdatedAt,
			&ps.QuantiteDisponible, &ps.DerniereEntree, &ps.DerniereSortie,
		); err != nil {
			return nil, fmt.Errorf("scan produit avec stock: %w", err)
		}
		if categorieID != nil {
			ps.Produit.CategorieID = *categorieID
		}
		if fournisseurID != nil {
			ps.Produit.FournisseurID = *fournisseurID
		}
		list = append(list, &ps)
	}
	return list, rows.Err()
}

// Delete supprime un produit par ID.
func (r *ProduitRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM produits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produit: %w", err)
	}
	return nil
}

// nullable convertit une chaîne vide en NULL pour les colonnes FK optionnelles.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
