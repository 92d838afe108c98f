package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lmoreau/gestock-api/internal/application/dto"
	"github.com/lmoreau/gestock-api/internal/application/inventaire"
	"github.com/lmoreau/gestock-api/internal/domain"
	"github.com/lmoreau/gestock-api/internal/domain/entity"
	"github.com/lmoreau/gestock-api/internal/domain/repository"
)

// ProduitUseCase cas d'usage CRUD pour les produits. La création insère la
// ligne de stock à zéro dans la même transaction ; la quantité elle-même n'est
// ensuite modifiable que par les mouvements.
type ProduitUseCase struct {
	repo            repository.ProduitRepository
	categorieRepo   repository.CategorieRepository
	fournisseurRepo repository.FournisseurRepository
	txRunner        inventaire.TxRunner
}

// NewProduitUseCase construit le cas d'usage.
func NewProduitUseCase(
	repo repository.ProduitRepository,
	categorieRepo repository.CategorieRepository,
	fournisseurRepo repository.FournisseurRepository,
	txRunner inventaire.TxRunner,
) *ProduitUseCase {
	return &ProduitUseCase{
		repo:            repo,
		categorieRepo:   categorieRepo,
		fournisseurRepo: fournisseurRepo,
		txRunner:        txRunner,
	}
}

// Create crée un produit et sa ligne de stock à zéro, atomiquement.
// Refuse une référence déjà utilisée et des rattachements inexistants.
func (uc *ProduitUseCase) Create(ctx context.Context, in dto.CreateProduitRequest) (*dto.ProduitResponse, error) {
	existing, _ := uc.repo.GetByReference(in.Reference)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.StockMin < 0 || in.StockMax < 0 || (in.StockMax > 0 && in.StockMax < in.StockMin) {
		return nil, domain.ErrInvalidInput
	}
	if in.CategorieID != "" {
		categorie, err := uc.categorieRepo.GetByID(in.CategorieID)
		if err != nil {
			return nil, err
		}
		if categorie == nil {
			return nil, domain.ErrNotFound
		}
	}
	if in.FournisseurID != "" {
		fournisseur, err := uc.fournisseurRepo.GetByID(in.FournisseurID)
		if err != nil {
			return nil, err
		}
		if fournisseur == nil {
			return nil, domain.ErrNotFound
		}
	}
	if in.Unite == "" {
		in.Unite = "pièce"
	}
	now := time.Now()
	produit := &entity.Produit{
		ID:            uuid.New().String(),
		Nom:           in.Nom,
		Reference:     in.Reference,
		Description:   in.Description,
		CategorieID:   in.CategorieID,
		FournisseurID: in.FournisseurID,
		PrixUnitaire:  in.PrixUnitaire,
		StockMin:      in.StockMin,
		StockMax:      in.StockMax,
		Unite:         in.Unite,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	err := uc.txRunner.Run(ctx, func(
		_ repository.MouvementStockRepository,
		stockRepo repository.StockRepository,
		produitRepo repository.ProduitRepository,
	) error {
		if err := produitRepo.Create(produit); err != nil {
			return err
		}
		return stockRepo.Upsert(&entity.Stock{
			ProduitID:          produit.ID,
			QuantiteDisponible: 0,
			UpdatedAt:          now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toProduitResponse(produit), nil
}

// GetByID retourne un produit par ID (nil si absent).
func (uc *ProduitUseCase) GetByID(id string) (*dto.ProduitResponse, error) {
	produit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produit == nil {
		return nil, nil
	}
	return toProduitResponse(produit), nil
}

// Update applique une mise à jour partielle. La référence n'est pas modifiable.
func (uc *ProduitUseCase) Update(id string, in dto.UpdateProduitRequest) (*dto.ProduitResponse, error) {
	produit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produit == nil {
		return nil, nil
	}
	if in.Nom != nil {
		produit.Nom = *in.Nom
	}
	if in.Description != nil {
		produit.Description = *in.Description
	}
	if in.CategorieID != nil {
		if *in.CategorieID != "" {
			categorie, err := uc.categorieRepo.GetByID(*in.CategorieID)
			if err != nil {
				return nil, err
			}
			if categorie == nil {
				return nil, domain.ErrNotFound
			}
		}
		produit.CategorieID = *in.CategorieID
	}
	if in.FournisseurID != nil {
		if *in.FournisseurID != "" {
			fournisseur, err := uc.fournisseurRepo.GetByID(*in.FournisseurID)
			if err != nil {
				return nil, err
			}
			if fournisseur == nil {
				return nil, domain.ErrNotFound
			}
		}
		produit.FournisseurID = *in.FournisseurID
	}
	if in.PrixUnitaire != nil {
		produit.PrixUnitaire = *in.PrixUnitaire
	}
	if in.StockMin != nil {
		if *in.StockMin < 0 {
			return nil, domain.ErrInvalidInput
		}
		produit.StockMin = *in.StockMin
	}
	if in.StockMax != nil {
		if *in.StockMax < 0 {
			return nil, domain.ErrInvalidInput
		}
		produit.StockMax = *in.StockMax
	}
	if in.Unite != nil {
		produit.Unite = *in.Unite
	}
	produit.UpdatedAt = time.Now()
	if err := uc.repo.Update(produit); err != nil {
		return nil, err
	}
	return toProduitResponse(produit), nil
}

// List liste les produits avec recherche plein texte optionnelle et pagination.
func (uc *ProduitUseCase) List(search string, limit, offset int) (*dto.ProduitListResponse, error) {
	list, err := uc.repo.List(search, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProduitResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProduitResponse(p))
	}
	return &dto.ProduitListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListAvecStock retourne le read model composite produit + stock courant.
func (uc *ProduitUseCase) ListAvecStock(search string, limit, offset int) (*dto.ProduitAvecStockListResponse, error) {
	list, err := uc.repo.ListAvecStock(search, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProduitAvecStockResponse, 0, len(list))
	for _, ps := range list {
		items = append(items, dto.ProduitAvecStockResponse{
			ProduitResponse:    *toProduitResponse(&ps.Produit),
			QuantiteDisponible: ps.QuantiteDisponible,
			StockFaible:        ps.QuantiteDisponible <= ps.Produit.StockMin,
			DerniereEntree:     ps.DerniereEntree,
			DerniereSortie:     ps.DerniereSortie,
		})
	}
	return &dto.ProduitAvecStockListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete supprime un produit et sa ligne de stock, atomiquement.
// Refusé (conflit) si le produit a des mouvements : le journal d'audit prime.
func (uc *ProduitUseCase) Delete(ctx context.Context, id string) error {
	produit, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if produit == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(
		mouvementRepo repository.MouvementStockRepository,
		stockRepo repository.StockRepository,
		produitRepo repository.ProduitRepository,
	) error {
		count, err := mouvementRepo.CountByProduit(id)
		if err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrConflict
		}
		if err := stockRepo.Delete(id); err != nil {
			return err
		}
		return produitRepo.Delete(id)
	})
}

func toProduitResponse(p *entity.Produit) *dto.ProduitResponse {
	if p == nil {
		return nil
	}
	return &dto.ProduitResponse{
		ID:            p.ID,
		Nom:           p.Nom,
		Reference:     p.Reference,
		Description:   p.Description,
		CategorieID:   p.CategorieID,
		FournisseurID: p.FournisseurID,
		PrixUnitaire:  p.PrixUnitaire,
		StockMin:      p.StockMin,
		StockMax:      p.StockMax,
		Unite:         p.Unite,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
