package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/lmoreau/gestock-api/internal/application/dto"
	"github.com/lmoreau/gestock-api/internal/domain"
	"github.com/lmoreau/gestock-api/internal/domain/entity"
	"github.com/lmoreau/gestock-api/internal/domain/repository"
)

// FournisseurUseCase cas d'usage CRUD pour les fournisseurs.
type FournisseurUseCase struct {
	repo repository.FournisseurRepository
}

// NewFournisseurUseCase construit le cas d'usage.
func NewFournisseurUseCase(repo repository.FournisseurRepository) *FournisseurUseCase {
	return &FournisseurUseCase{repo: repo}
}

// Create crée un fournisseur.
func (uc *FournisseurUseCase) Create(in dto.CreateFournisseurRequest) (*dto.FournisseurResponse, error) {
	now := time.Now()
	fournisseur := &entity.Fournisseur{
		ID:        uuid.New().String(),
		Nom:       in.Nom,
		Contact:   in.Contact,
		Telephone: in.Telephone,
		Email:     in.Email,
		Adresse:   in.Adresse,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(fournisseur); err != nil {
		return nil, err
	}
	return toFournisseurResponse(fournisseur), nil
}

// GetByID retourne un fournisseur par ID (nil si absent).
func (uc *FournisseurUseCase) GetByID(id string) (*dto.FournisseurResponse, error) {
	fournisseur, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if fournisseur == nil {
		return nil, nil
	}
	return toFournisseurResponse(fournisseur), nil
}

// Update applique une mise à jour partielle.
func (uc *FournisseurUseCase) Update(id string, in dto.UpdateFournisseurRequest) (*dto.FournisseurResponse, error) {
	fournisseur, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if fournisseur == nil {
		return nil, nil
	}
	if in.Nom != nil {
		fournisseur.Nom = *in.Nom
	}
	if in.Contact != nil {
		fournisseur.Contact = *in.Contact
	}
	if in.Telephone != nil {
		fournisseur.Telephone = *in.Telephone
	}
	if in.Email != nil {
		fournisseur.Email = *in.Email
	}
	if in.Adresse != nil {
		fournisseur.Adresse = *in.Adresse
	}
	fournisseur.UpdatedAt = time.Now()
	if err := uc.repo.Update(fournisseur); err != nil {
		return nil, err
	}
	return toFournisseurResponse(fournisseur), nil
}

// List liste les fournisseurs avec pagination.
func (uc *FournisseurUseCase) List(limit, offset int) (*dto.FournisseurListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FournisseurResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFournisseurResponse(f))
	}
	return &dto.FournisseurListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete supprime un fournisseur. Les produits rattachés restent (fournisseur_id remis à NULL en base).
func (uc *FournisseurUseCase) Delete(id string) error {
	fournisseur, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if fournisseur == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toFournisseurResponse(f *entity.Fournisseur) *dto.FournisseurResponse {
	if f == nil {
		return nil
	}
	return &dto.FournisseurResponse{
		ID:        f.ID,
		Nom:       f.Nom,
		Contact:   f.Contact,
		Telephone: f.Telephone,
		Email:     f.Email,
		Adresse:   f.Adresse,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
