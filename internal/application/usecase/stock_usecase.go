package usecase

import (
	"github.com/lmoreau/gestock-api/internal/application/dto"
	"github.com/lmoreau/gestock-api/internal/domain"
	"github.com/lmoreau/gestock-api/internal/domain/entity"
	"github.com/lmoreau/gestock-api/internal/domain/repository"
)

// StockUseCase consultation du stock courant. Le stock n'est jamais écrit ici,
// seulement par le moteur de mouvements.
type StockUseCase struct {
	repo        repository.StockRepository
	produitRepo repository.ProduitRepository
}

// NewStockUseCase construit le cas d'usage.
func NewStockUseCase(repo repository.StockRepository, produitRepo repository.ProduitRepository) *StockUseCase {
	return &StockUseCase{repo: repo, produitRepo: produitRepo}
}

// GetByProduit retourne le stock courant d'un produit (nil si produit inconnu).
func (uc *StockUseCase) GetByProduit(produitID string) (*dto.StockResponse, error) {
	produit, err := uc.produitRepo.GetByID(produitID)
	if err != nil {
		return nil, err
	}
	if produit == nil {
		return nil, domain.ErrNotFound
	}
	stock, err := uc.repo.Get(produitID)
	if err != nil {
		return nil, err
	}
	return toStockResponse(stock), nil
}

// List liste les lignes de stock ; stockFaible restreint aux produits dont la
// quantité disponible est inférieure ou égale à leur seuil stock_min.
func (uc *StockUseCase) List(stockFaible bool, limit, offset int) (*dto.StockListResponse, error) {
	list, err := uc.repo.List(stockFaible, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStockResponse(s))
	}
	return &dto.StockListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toStockResponse(s *entity.Stock) *dto.StockResponse {
	if s == nil {
		return nil
	}
	return &dto.StockResponse{
		ProduitID:          s.ProduitID,
		QuantiteDisponible: s.QuantiteDisponible,
		DerniereEntree:     s.DerniereEntree,
		DerniereSortie:     s.DerniereSortie,
		UpdatedAt:          s.UpdatedAt,
	}
}
