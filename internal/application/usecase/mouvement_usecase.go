package usecase

import (
	"github.com/lmoreau/gestock-api/internal/application/dto"
	"github.com/lmoreau/gestock-api/internal/domain"
	"github.com/lmoreau/gestock-api/internal/domain/entity"
	"github.com/lmoreau/gestock-api/internal/domain/repository"
)

// MouvementUseCase consultation du journal des mouvements.
// L'écriture passe par inventaire.RegisterMouvementUseCase.
type MouvementUseCase struct {
	repo        repository.MouvementStockRepository
	produitRepo repository.ProduitRepository
}

// NewMouvementUseCase construit le cas d'usage.
func NewMouvementUseCase(repo repository.MouvementStockRepository, produitRepo repository.ProduitRepository) *MouvementUseCase {
	return &MouvementUseCase{repo: repo, produitRepo: produitRepo}
}

// GetByID retourne un mouvement par ID (nil si absent).
func (uc *MouvementUseCase) GetByID(id string) (*dto.MouvementResponse, error) {
	mouvement, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mouvement == nil {
		return nil, nil
	}
	return toMouvementResponse(mouvement), nil
}

// List liste les mouvements, du plus récent au plus ancien, avec filtre
// produit optionnel. Un produit inconnu est signalé plutôt que de retourner
// une liste vide silencieuse.
func (uc *MouvementUseCase) List(produitID string, limit, offset int) (*dto.MouvementListResponse, error) {
	if produitID != "" {
		produit, err := uc.produitRepo.GetByID(produitID)
		if err != nil {
			return nil, err
		}
		if produit == nil {
			return nil, domain.ErrNotFound
		}
	}
	list, err := uc.repo.List(produitID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MouvementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMouvementResponse(m))
	}
	return &dto.MouvementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toMouvementResponse(m *entity.MouvementStock) *dto.MouvementResponse {
	if m == nil {
		return nil
	}
	return &dto.MouvementResponse{
		ID:            m.ID,
		ProduitID:     m.ProduitID,
		Type:          m.Type,
		Quantite:      m.Quantite,
		QuantiteAvant: m.QuantiteAvant,
		QuantiteApres: m.QuantiteApres,
		Motif:         m.Motif,
		CreatedAt:     m.CreatedAt,
	}
}
