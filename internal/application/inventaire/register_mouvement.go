package inventaire

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lmoreau/gestock-api/internal/application/dto"
	"github.com/lmoreau/gestock-api/internal/domain"
	"github.com/lmoreau/gestock-api/internal/domain/entity"
	"github.com/lmoreau/gestock-api/internal/domain/repository"
)

// RegisterMouvementUseCase enregistre les mouvements de stock de façon
// transactionnelle (ENTREE, SORTIE, AJUSTEMENT) avec verrouillage de la ligne
// de stock (SELECT FOR UPDATE) et Commit/Rollback.
type RegisterMouvementUseCase struct {
	txRunner    TxRunner
	produitRepo repository.ProduitRepository
}

// NewRegisterMouvementUseCase construit le cas d'usage.
func NewRegisterMouvementUseCase(txRunner TxRunner, produitRepo repository.ProduitRepository) *RegisterMouvementUseCase {
	return &RegisterMouvementUseCase{
		txRunner:    txRunner,
		produitRepo: produitRepo,
	}
}

// Register ouvre une transaction, verrouille la ligne de stock du produit,
// calcule le nouveau solde selon le type de mouvement et persiste le mouvement
// et le stock courant ensemble. Règles :
//   - ENTREE     : apres = avant + quantite
//   - SORTIE     : apres = avant - quantite ; refusée si apres < 0
//   - AJUSTEMENT : apres = quantite (valeur absolue, pas un delta)
//
// Une SORTIE refusée n'écrit rien : ni mouvement, ni stock.
func (uc *RegisterMouvementUseCase) Register(ctx context.Context, in dto.CreateMouvementRequest) (*dto.MouvementResponse, error) {
	switch in.Type {
	case entity.MouvementENTREE, entity.MouvementSORTIE:
		if in.Quantite <= 0 {
			return nil, domain.ErrInvalidInput
		}
	case entity.MouvementAJUSTEMENT:
		if in.Quantite < 0 {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	produit, err := uc.produitRepo.GetByID(in.ProduitID)
	if err != nil {
		return nil, err
	}
	if produit == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var out *dto.MouvementResponse

	// Commit si tout passe, Rollback sinon (TxRunner.Run s'en charge)
	err = uc.txRunner.Run(ctx, func(
		mouvementRepo repository.MouvementStockRepository,
		stockRepo repository.StockRepository,
		_ repository.ProduitRepository,
	) error {
		// Verrouille la ligne de stock pour éviter la perte de mise à jour
		// entre deux mouvements concurrents sur le même produit.
		stock, err := stockRepo.GetForUpdate(in.ProduitID)
		if err != nil {
			return err
		}

		avant := stock.QuantiteDisponible
		var apres int
		switch in.Type {
		case entity.MouvementENTREE:
			apres = avant + in.Quantite
			stock.DerniereEntree = &now
		case entity.MouvementSORTIE:
			apres = avant - in.Quantite
			if apres < 0 {
				return domain.ErrStockInsuffisant
			}
			stock.DerniereSortie = &now
		case entity.MouvementAJUSTEMENT:
			apres = in.Quantite
			// L'ajustement horodate le sens du correctif
			if apres > avant {
				stock.DerniereEntree = &now
			} else if apres < avant {
				stock.DerniereSortie = &now
			}
		}

		stock.QuantiteDisponible = apres
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}

		mouvement := &entity.MouvementStock{
			ID:            uuid.New().String(),
			ProduitID:     in.ProduitID,
			Type:          in.Type,
			Quantite:      in.Quantite,
			QuantiteAvant: avant,
			QuantiteApres: apres,
			Motif:         in.Motif,
			CreatedAt:     now,
		}
		if err := mouvementRepo.Create(mouvement); err != nil {
			return err
		}

		out = &dto.MouvementResponse{
			ID:            mouvement.ID,
			ProduitID:     mouvement.ProduitID,
			Type:          mouvement.Type,
			Quantite:      mouvement.Quantite,
			QuantiteAvant: mouvement.QuantiteAvant,
			QuantiteApres: mouvement.QuantiteApres,
			Motif:         mouvement.Motif,
			CreatedAt:     mouvement.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
