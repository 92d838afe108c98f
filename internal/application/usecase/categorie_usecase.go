package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/lmoreau/gestock-api/internal/application/dto"
	"github.com/lmoreau/gestock-api/internal/domain"
	"github.com/lmoreau/gestock-api/internal/domain/entity"
	"github.com/lmoreau/gestock-api/internal/domain/repository"
)

// CategorieUseCase cas d'usage CRUD pour les catégories. Le nom est unique.
type CategorieUseCase struct {
	repo repository.CategorieRepository
}

// NewCategorieUseCase construit le cas d'usage.
func NewCategorieUseCase(repo repository.CategorieRepository) *CategorieUseCase {
	return &CategorieUseCase{repo: repo}
}

// Create crée une catégorie. Refuse un nom déjà utilisé.
func (uc *CategorieUseCase) Create(in dto.CreateCategorieRequest) (*dto.CategorieResponse, error) {
	existing, _ := uc.repo.GetByNom(in.Nom)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	categorie := &entity.Categorie{
		ID:          uuid.New().String(),
		Nom:         in.Nom,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(categorie); err != nil {
		return nil, err
	}
	return toCategorieResponse(categorie), nil
}

// GetByID retourne une catégorie par ID (nil si absente).
func (uc *CategorieUseCase) GetByID(id string) (*dto.CategorieResponse, error) {
	categorie, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if categorie == nil {
		return nil, nil
	}
	return toCategorieResponse(categorie), nil
}

// Update applique une mise à jour partielle : seuls les champs fournis changent.
func (uc *CategorieUseCase) Update(id string, in dto.UpdateCategorieRequest) (*dto.CategorieResponse, error) {
	categorie, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if categorie == nil {
		return nil, nil
	}
	if in.Nom != nil && *in.Nom != categorie.Nom {
		existing, _ := uc.repo.GetByNom(*in.Nom)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		categorie.Nom = *in.Nom
	}
	if in.Description != nil {
		categorie.Description = *in.Description
	}
	categorie.UpdatedAt = time.Now()
	if err := uc.repo.Update(categorie); err != nil {
		return nil, err
	}
	return toCategorieResponse(categorie), nil
}

// List liste les catégories avec pagination.
func (uc *CategorieUseCase) List(limit, offset int) (*dto.CategorieListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategorieResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategorieResponse(c))
	}
	return &dto.CategorieListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete supprime une catégorie. Les produits rattachés restent (categorie_id remis à NULL en base).
func (uc *CategorieUseCase) Delete(id string) error {
	categorie, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if categorie == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toCategorieResponse(c *entity.Categorie) *dto.CategorieResponse {
	if c == nil {
		return nil
	}
	return &dto.CategorieResponse{
		ID:          c.ID,
		Nom:         c.Nom,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
