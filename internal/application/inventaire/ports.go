package inventaire

import (
	"context"

	"github.com/lmoreau/gestock-api/internal/domain/repository"
)

// TxRunner exécute une fonction dans une transaction de base de données, en lui
// passant des repositories liés à cette transaction. Garantit l'atomicité
// journal des mouvements + stock courant.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		mouvementRepo repository.MouvementStockRepository,
		stockRepo repository.StockRepository,
		produitRepo repository.ProduitRepository,
	) error) error
}
