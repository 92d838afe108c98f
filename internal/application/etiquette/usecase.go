package etiquette

import (
	"context"
	"fmt"

	"github.com/lmoreau/gestock-api/internal/domain"
	"github.com/lmoreau/gestock-api/internal/domain/entity"
	"github.com/lmoreau/gestock-api/internal/domain/repository"
)

// Generator génère le PDF d'une étiquette produit (QR code inclus).
// Implémenté par l'adaptateur Maroto dans infrastructure/pdf.
type Generator interface {
	GenerateEtiquette(ctx context.Context, produit *entity.Produit, stock *entity.Stock) ([]byte, error)
}

// UseCase produit l'étiquette imprimable d'un produit : nom, référence,
// QR code de la référence et quantité en stock au moment de l'impression.
type UseCase struct {
	produitRepo repository.ProduitRepository
	stockRepo   repository.StockRepository
	generator   Generator
}

// NewUseCase construit le cas d'usage.
func NewUseCase(produitRepo repository.ProduitRepository, stockRepo repository.StockRepository, generator Generator) *UseCase {
	return &UseCase{produitRepo: produitRepo, stockRepo: stockRepo, generator: generator}
}

// DownloadEtiquette retourne le PDF de l'étiquette et un nom de fichier.
func (uc *UseCase) DownloadEtiquette(ctx context.Context, produitID string) (pdfBytes []byte, filename string, err error) {
	produit, err := uc.produitRepo.GetByID(produitID)
	if err != nil {
		return nil, "", fmt.Errorf("etiquette: charger produit: %w", err)
	}
	if produit == nil {
		return nil, "", domain.ErrNotFound
	}
	stock, err := uc.stockRepo.Get(produitID)
	if err != nil {
		return nil, "", fmt.Errorf("etiquette: charger stock: %w", err)
	}
	pdfBytes, err = uc.generator.GenerateEtiquette(ctx, produit, stock)
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, fmt.Sprintf("etiquette-%s.pdf", produit.Reference), nil
}
