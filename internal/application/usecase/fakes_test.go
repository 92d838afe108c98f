package usecase_test

import (
	"context"
	"sort"
	"strings"

	"github.com/lmoreau/gestock-api/internal/domain/entity"
	"github.com/lmoreau/gestock-api/internal/domain/repository"
)

// Implémentations en mémoire des ports de persistance, partagées par les tests
// du package. Elles reproduisent les conventions des adaptateurs PostgreSQL :
// nil pour un enregistrement absent, ligne de stock absente = quantité zéro.

// ──────────────────────────────────────────────────────────────────────────────
// Produits
// ──────────────────────────────────────────────────────────────────────────────

type memProduitRepo struct {
	produits map[string]*entity.Produit
	stocks   *memStockRepo // pour le read model ListAvecStock
}

func newMemProduitRepo() *memProduitRepo {
	return &memProduitRepo{produits: map[string]*entity.Produit{}}
}

func (r *memProduitRepo) Create(p *entity.Produit) error {
	copie := *p
	r.produits[p.ID] = &copie
	return nil
}

func (r *memProduitRepo) GetByID(id string) (*entity.Produit, error) {
	p, ok := r.produits[id]
	if !ok {
		return nil, nil
	}
	copie := *p
	return &copie, nil
}

func (r *memProduitRepo) GetByReference(reference string) (*entity.Produit, error) {
	for _, p := range r.produits {
		if p.Reference == reference {
			copie := *p
			return &copie, nil
		}
	}
	return nil, nil
}

func (r *memProduitRepo) Update(p *entity.Produit) error {
	copie := *p
	r.produits[p.ID] = &copie
	return nil
}

func (r *memProduitRepo) List(search string, limit, offset int) ([]*entity.Produit, error) {
	var list []*entity.Produit
	for _, p := range r.produits {
		if search == "" || strings.Contains(strings.ToLower(p.Nom), strings.ToLower(search)) {
			copie := *p
			list = append(list, &copie)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Nom < list[j].Nom })
	return paginer(list, limit, offset), nil
}

func (r *memProduitRepo) ListAvecStock(search string, limit, offset int) ([]*repository.ProduitAvecStock, error) {
	produits, err := r.List(search, limit, offset)
	if err != nil {
		return nil, err
	}
	list := make([]*repository.ProduitAvecStock, 0, len(produits))
	for _, p := range produits {
		stock, _ := r.stocks.Get(p.ID)
		list = append(list, &repository.ProduitAvecStock{
			Produit:            *p,
			QuantiteDisponible: stock.QuantiteDisponible,
			DerniereEntree:     stock.DerniereEntree,
			DerniereSortie:     stock.DerniereSortie,
		})
	}
	return list, nil
}

func (r *memProduitRepo) Delete(id string) error {
	delete(r.produits, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock
// ──────────────────────────────────────────────────────────────────────────────

type memStockRepo struct {
	stocks map[string]entity.Stock
}

func newMemStockRepo() *memStockRepo {
	return &memStockRepo{stocks: map[string]entity.Stock{}}
}

func (r *memStockRepo) Get(produitID string) (*entity.Stock, error) {
	if s, ok := r.stocks[produitID]; ok {
		copie := s
		return &copie, nil
	}
	return &entity.Stock{ProduitID: produitID}, nil
}

func (r *memStockRepo) GetForUpdate(produitID string) (*entity.Stock, error) {
	return r.Get(produitID)
}

func (r *memStockRepo) Upsert(s *entity.Stock) error {
	r.stocks[s.ProduitID] = *s
	return nil
}

func (r *memStockRepo) List(stockFaible bool, limit, offset int) ([]*entity.Stock, error) {
	var list []*entity.Stock
	for id := range r.stocks {
		s := r.stocks[id]
		list = append(list, &s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ProduitID < list[j].ProduitID })
	return paginer(list, limit, offset), nil
}

func (r *memStockRepo) Delete(produitID string) error {
	delete(r.stocks, produitID)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Mouvements
// ──────────────────────────────────────────────────────────────────────────────

type memMouvementRepo struct {
	mouvements []*entity.MouvementStock
}

func (r *memMouvementRepo) Create(m *entity.MouvementStock) error {
	copie := *m
	r.mouvements = append(r.mouvements, &copie)
	return nil
}

func (r *memMouvementRepo) GetByID(id string) (*entity.MouvementStock, error) {
	for _, m := range r.mouvements {
		if m.ID == id {
			copie := *m
			return &copie, nil
		}
	}
	return nil, nil
}

func (r *memMouvementRepo) List(produitID string, limit, offset int) ([]*entity.MouvementStock, error) {
	var list []*entity.MouvementStock
	for i := len(r.mouvements) - 1; i >= 0; i-- {
		m := r.mouvements[i]
		if produitID == "" || m.ProduitID == produitID {
			copie := *m
			list = append(list, &copie)
		}
	}
	return paginer(list, limit, offset), nil
}

func (r *memMouvementRepo) CountByProduit(produitID string) (int, error) {
	n := 0
	for _, m := range r.mouvements {
		if m.ProduitID == produitID {
			n++
		}
	}
	return n, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Catégories et fournisseurs
// ──────────────────────────────────────────────────────────────────────────────

type memCategorieRepo struct {
	categories map[string]*entity.Categorie
}

func newMemCategorieRepo() *memCategorieRepo {
	return &memCategorieRepo{categories: map[string]*entity.Categorie{}}
}

func (r *memCategorieRepo) Create(c *entity.Categorie) error {
	copie := *c
	r.categories[c.ID] = &copie
	return nil
}

func (r *memCategorieRepo) GetByID(id string) (*entity.Categorie, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	copie := *c
	return &copie, nil
}

func (r *memCategorieRepo) GetByNom(nom string) (*entity.Categorie, error) {
	for _, c := range r.categories {
		if c.Nom == nom {
			copie := *c
			return &copie, nil
		}
	}
	return nil, nil
}

func (r *memCategorieRepo) Update(c *entity.Categorie) error {
	copie := *c
	r.categories[c.ID] = &copie
	return nil
}

func (r *memCategorieRepo) List(limit, offset int) ([]*entity.Categorie, error) {
	var list []*entity.Categorie
	for _, c := range r.categories {
		copie := *c
		list = append(list, &copie)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Nom < list[j].Nom })
	return paginer(list, limit, offset), nil
}

func (r *memCategorieRepo) Delete(id string) error {
	delete(r.categories, id)
	return nil
}

type memFournisseurRepo struct {
	fournisseurs map[string]*entity.Fournisseur
}

func newMemFournisseurRepo() *memFournisseurRepo {
	return &memFournisseurRepo{fournisseurs: map[string]*entity.Fournisseur{}}
}

func (r *memFournisseurRepo) Create(f *entity.Fournisseur) error {
	copie := *f
	r.fournisseurs[f.ID] = &copie
	return nil
}

func (r *memFournisseurRepo) GetByID(id string) (*entity.Fournisseur, error) {
	f, ok := r.fournisseurs[id]
	if !ok {
		return nil, nil
	}
	copie := *f
	return &copie, nil
}

func (r *memFournisseurRepo) Update(f *entity.Fournisseur) error {
	copie := *f
	r.fournisseurs[f.ID] = &copie
	return nil
}

func (r *memFournisseurRepo) List(limit, offset int) ([]*entity.Fournisseur, error) {
	var list []*entity.Fournisseur
	for _, f := range r.fournisseurs {
		copie := *f
		list = append(list, &copie)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Nom < list[j].Nom })
	return paginer(list, limit, offset), nil
}

func (r *memFournisseurRepo) Delete(id string) error {
	delete(r.fournisseurs, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner
// ──────────────────────────────────────────────────────────────────────────────

// memTxRunner exécute fn sur les repos en mémoire et rejoue la sémantique de
// Rollback : si fn échoue, l'état des repos écrits en transaction est restauré.
type memTxRunner struct {
	mouvementRepo *memMouvementRepo
	stockRepo     *memStockRepo
	produitRepo   *memProduitRepo
}

func (tx *memTxRunner) Run(_ context.Context, fn func(
	mouvementRepo repository.MouvementStockRepository,
	stockRepo repository.StockRepository,
	produitRepo repository.ProduitRepository,
) error) error {
	avantMouvements := len(tx.mouvementRepo.mouvements)
	avantStocks := map[string]entity.Stock{}
	for id, s := range tx.stockRepo.stocks {
		avantStocks[id] = s
	}
	avantProduits := map[string]*entity.Produit{}
	for id, p := range tx.produitRepo.produits {
		avantProduits[id] = p
	}

	if err := fn(tx.mouvementRepo, tx.stockRepo, tx.produitRepo); err != nil {
		tx.mouvementRepo.mouvements = tx.mouvementRepo.mouvements[:avantMouvements]
		tx.stockRepo.stocks = avantStocks
		tx.produitRepo.produits = avantProduits
		return err
	}
	return nil
}

func paginer[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
