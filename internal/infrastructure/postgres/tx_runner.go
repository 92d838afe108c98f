package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lmoreau/gestock-api/internal/application/inventaire"
	"github.com/lmoreau/gestock-api/internal/domain/repository"
)

var _ inventaire.TxRunner = (*TxRunner)(nil)

// TxRunner exécute des callbacks dans une transaction PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construit le runner avec le pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run ouvre une transaction, exécute fn avec des repositories liés à cette
// transaction, puis Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	mouvementRepo repository.MouvementStockRepository,
	stockRepo repository.StockRepository,
	produitRepo repository.ProduitRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	mouvementRepo := NewMouvementStockRepository(tx)
	stockRepo := NewStockRepository(tx)
	produitRepo := NewProduitRepository(tx)

	if err := fn(mouvementRepo, stockRepo, produitRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
