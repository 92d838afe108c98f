package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmoreau/gestock-api/internal/application/dto"
	"github.com/lmoreau/gestock-api/internal/application/etiquette"
	"github.com/lmoreau/gestock-api/internal/application/inventaire"
	"github.com/lmoreau/gestock-api/internal/application/usecase"
	"github.com/lmoreau/gestock-api/internal/domain/entity"
	"github.com/lmoreau/gestock-api/internal/domain/repository"
	infrapdf "github.com/lmoreau/gestock-api/internal/infrastructure/pdf"
	apphttp "github.com/lmoreau/gestock-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Persistance en mémoire pour les tests de bout en bout (handlers réels,
// cas d'usage réels, pas de base de données)
// ──────────────────────────────────────────────────────────────────────────────

type store struct {
	categories   map[string]*entity.Categorie
	fournisseurs map[string]*entity.Fournisseur
	produits     map[string]*entity.Produit
	stocks       map[string]entity.Stock
	mouvements   []*entity.MouvementStock
}

func newStore() *store {
	return &store{
		categories:   map[string]*entity.Categorie{},
		fournisseurs: map[string]*entity.Fournisseur{},
		produits:     map[string]*entity.Produit{},
		stocks:       map[string]entity.Stock{},
	}
}

// seedProduit insère directement un produit et sa ligne de stock.
func (s *store) seedProduit(id, reference string, stockMin, quantite int) {
	s.produits[id] = &entity.Produit{
		ID:        id,
		Nom:       "Produit " + reference,
		Reference: reference,
		StockMin:  stockMin,
		Unite:     "pièce",
	}
	s.stocks[id] = entity.Stock{ProduitID: id, QuantiteDisponible: quantite}
}

type categoriesRepo struct{ s *store }

func (r categoriesRepo) Create(c *entity.Categorie) error {
	r.s.categories[c.ID] = c
	return nil
}

func (r categoriesRepo) GetByID(id string) (*entity.Categorie, error) {
	return r.s.categories[id], nil
}

func (r categoriesRepo) GetByNom(nom string) (*entity.Categorie, error) {
	for _, c := range r.s.categories {
		if c.Nom == nom {
			return c, nil
		}
	}
	return nil, nil
}

func (r categoriesRepo) Update(c *entity.Categorie) error {
	r.s.categories[c.ID] = c
	return nil
}

func (r categoriesRepo) List(limit, offset int) ([]*entity.Categorie, error) {
	var list []*entity.Categorie
	for _, c := range r.s.categories {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Nom < list[j].Nom })
	return list, nil
}

func (r categoriesRepo) Delete(id string) error {
	delete(r.s.categories, id)
	return nil
}

type fournisseursRepo struct{ s *store }

func (r fournisseursRepo) Create(f *entity.Fournisseur) error {
	r.s.fournisseurs[f.ID] = f
	return nil
}

func (r fournisseursRepo) GetByID(id string) (*entity.Fournisseur, error) {
	return r.s.fournisseurs[id], nil
}

func (r fournisseursRepo) Update(f *entity.Fournisseur) error {
	r.s.fournisseurs[f.ID] = f
	return nil
}

func (r fournisseursRepo) List(limit, offset int) ([]*entity.Fournisseur, error) {
	var list []*entity.Fournisseur
	for _, f := range r.s.fournisseurs {
		list = append(list, f)
	}
	return list, nil
}

func (r fournisseursRepo) Delete(id string) error {
	delete(r.s.fournisseurs, id)
	return nil
}

type produitsRepo struct{ s *store }

func (r produitsRepo) Create(p *entity.Produit) error {
	r.s.produits[p.ID] = p
	return nil
}

func (r produitsRepo) GetByID(id string) (*entity.Produit, error) {
	return r.s.produits[id], nil
}

func (r produitsRepo) GetByReference(reference string) (*entity.Produit, error) {
	for _, p := range r.s.produits {
		if p.Reference == reference {
			return p, nil
		}
	}
	return nil, nil
}

func (r produitsRepo) Update(p *entity.Produit) error {
	r.s.produits[p.ID] = p
	return nil
}

func (r produitsRepo) List(search string, limit, offset int) ([]*entity.Produit, error) {
	var list []*entity.Produit
	for _, p := range r.s.produits {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Nom < list[j].Nom })
	return list, nil
}

func (r produitsRepo) ListAvecStock(search string, limit, offset int) ([]*repository.ProduitAvecStock, error) {
	produits, _ := r.List(search, limit, offset)
	list := make([]*repository.ProduitAvecStock, 0, len(produits))
	for _, p := range produits {
		stock := r.s.stocks[p.ID]
		list = append(list, &repository.ProduitAvecStock{
			Produit:            *p,
			QuantiteDisponible: stock.QuantiteDisponible,
			DerniereEntree:     stock.DerniereEntree,
			DerniereSortie:     stock.DerniereSortie,
		})
	}
	return list, nil
}

func (r produitsRepo) Delete(id string) error {
	delete(r.s.produits, id)
	return nil
}

type stocksRepo struct{ s *store }

func (r stocksRepo) Get(produitID string) (*entity.Stock, error) {
	if st, ok := r.s.stocks[produitID]; ok {
		copie := st
		return &copie, nil
	}
	return &entity.Stock{ProduitID: produitID}, nil
}

func (r stocksRepo) GetForUpdate(produitID string) (*entity.Stock, error) {
	return r.Get(produitID)
}

func (r stocksRepo) Upsert(st *entity.Stock) error {
	r.s.stocks[st.ProduitID] = *st
	return nil
}

// List rejoue la jointure SQL : le filtre stock faible compare la quantité
// disponible au seuil stock_min du produit (inclusif).
func (r stocksRepo) List(stockFaible bool, limit, offset int) ([]*entity.Stock, error) {
	var list []*entity.Stock
	for id := range r.s.stocks {
		st := r.s.stocks[id]
		if stockFaible {
			p, ok := r.s.produits[id]
			if !ok || st.QuantiteDisponible > p.StockMin {
				continue
			}
		}
		list = append(list, &st)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ProduitID < list[j].ProduitID })
	return list, nil
}

func (r stocksRepo) Delete(produitID string) error {
	delete(r.s.stocks, produitID)
	return nil
}

type mouvementsRepo struct{ s *store }

func (r mouvementsRepo) Create(m *entity.MouvementStock) error {
	r.s.mouvements = append(r.s.mouvements, m)
	return nil
}

func (r mouvementsRepo) GetByID(id string) (*entity.MouvementStock, error) {
	for _, m := range r.s.mouvements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r mouvementsRepo) List(produitID string, limit, offset int) ([]*entity.MouvementStock, error) {
	var list []*entity.MouvementStock
	for i := len(r.s.mouvements) - 1; i >= 0; i-- {
		m := r.s.mouvements[i]
		if produitID == "" || m.ProduitID == produitID {
			list = append(list, m)
		}
	}
	return list, nil
}

func (r mouvementsRepo) CountByProduit(produitID string) (int, error) {
	n := 0
	for _, m := range r.s.mouvements {
		if m.ProduitID == produitID {
			n++
		}
	}
	return n, nil
}

// txRunner exécute fn sur le store et restaure l'état écrit si fn échoue.
type txRunner struct{ s *store }

func (tx txRunner) Run(_ context.Context, fn func(
	mouvementRepo repository.MouvementStockRepository,
	stockRepo repository.StockRepository,
	produitRepo repository.ProduitRepository,
) error) error {
	avantMouvements := len(tx.s.mouvements)
	avantStocks := map[string]entity.Stock{}
	for id, st := range tx.s.stocks {
		avantStocks[id] = st
	}
	avantProduits := map[string]*entity.Produit{}
	for id, p := range tx.s.produits {
		avantProduits[id] = p
	}

	if err := fn(mouvementsRepo{tx.s}, stocksRepo{tx.s}, produitsRepo{tx.s}); err != nil {
		tx.s.mouvements = tx.s.mouvements[:avantMouvements]
		tx.s.stocks = avantStocks
		tx.s.produits = avantProduits
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp monte l'application complète (router et cas d'usage réels) sur
// une persistance en mémoire.
func buildTestApp(t *testing.T) (*fiber.App, *store) {
	t.Helper()
	s := newStore()

	catRepo := categoriesRepo{s}
	fouRepo := fournisseursRepo{s}
	prodRepo := produitsRepo{s}
	stockRepo := stocksRepo{s}
	mvtRepo := mouvementsRepo{s}
	tx := txRunner{s}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CategorieUC:       usecase.NewCategorieUseCase(catRepo),
		FournisseurUC:     usecase.NewFournisseurUseCase(fouRepo),
		ProduitUC:         usecase.NewProduitUseCase(prodRepo, catRepo, fouRepo, tx),
		MouvementUC:       usecase.NewMouvementUseCase(mvtRepo, prodRepo),
		StockUC:           usecase.NewStockUseCase(stockRepo, prodRepo),
		RegisterMouvement: inventaire.NewRegisterMouvementUseCase(tx, prodRepo),
		EtiquetteUC:       etiquette.NewUseCase(prodRepo, stockRepo, infrapdf.NewMarotoEtiquetteGenerator()),
	})
	return app, s
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

const produitA = "aaaaaaaa-0000-0000-0000-000000000001"

// ──────────────────────────────────────────────────────────────────────────────
// Mouvements de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_CycleDeVieDuStock(t *testing.T) {
	app, s := buildTestApp(t)
	s.seedProduit(produitA, "CAB-HDMI-2M", 10, 0)

	// Entrée de 50
	resp := doJSON(t, app, http.MethodPost, "/mouvements-stock/", dto.CreateMouvementRequest{
		ProduitID: produitA, Type: entity.MouvementENTREE, Quantite: 50, Motif: "réception fournisseur",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	entree := decode[dto.MouvementResponse](t, resp)
	assert.Equal(t, 0, entree.QuantiteAvant)
	assert.Equal(t, 50, entree.QuantiteApres)

	// Sortie de 20 : solde 30
	resp = doJSON(t, app, http.MethodPost, "/mouvements-stock/", dto.CreateMouvementRequest{
		ProduitID: produitA, Type: entity.MouvementSORTIE, Quantite: 20,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	sortie := decode[dto.MouvementResponse](t, resp)
	assert.Equal(t, 30, sortie.QuantiteApres)

	// Sortie de 40 sur 30 : refusée, le solde ne bouge pas
	resp = doJSON(t, app, http.MethodPost, "/mouvements-stock/", dto.CreateMouvementRequest{
		ProduitID: produitA, Type: entity.MouvementSORTIE, Quantite: 40,
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	errResp := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "STOCK_INSUFFISANT", errResp.Code)

	resp = doJSON(t, app, http.MethodGet, "/stock/"+produitA, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stock := decode[dto.StockResponse](t, resp)
	assert.Equal(t, 30, stock.QuantiteDisponible)

	// Ajustement après inventaire : le solde devient exactement 12
	resp = doJSON(t, app, http.MethodPost, "/mouvements-stock/", dto.CreateMouvementRequest{
		ProduitID: produitA, Type: entity.MouvementAJUSTEMENT, Quantite: 12, Motif: "inventaire annuel",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	ajustement := decode[dto.MouvementResponse](t, resp)
	assert.Equal(t, 30, ajustement.QuantiteAvant)
	assert.Equal(t, 12, ajustement.QuantiteApres)

	// Le journal ne contient que les mouvements acceptés, du plus récent au plus ancien
	resp = doJSON(t, app, http.MethodGet, "/mouvements-stock/?produit_id="+produitA, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	journal := decode[dto.MouvementListResponse](t, resp)
	require.Len(t, journal.Items, 3)
	assert.Equal(t, entity.MouvementAJUSTEMENT, journal.Items[0].Type)
	assert.Equal(t, entity.MouvementENTREE, journal.Items[2].Type)
}

func TestAPI_MouvementProduitInconnu(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/mouvements-stock/", dto.CreateMouvementRequest{
		ProduitID: "inconnu", Type: entity.MouvementENTREE, Quantite: 10,
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestAPI_MouvementTypeInvalide(t *testing.T) {
	app, s := buildTestApp(t)
	s.seedProduit(produitA, "CAB-HDMI-2M", 10, 0)

	resp := doJSON(t, app, http.MethodPost, "/mouvements-stock/", dto.CreateMouvementRequest{
		ProduitID: produitA, Type: "TRANSFERT", Quantite: 10,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)
}

func TestAPI_MouvementCorpsInvalide(t *testing.T) {
	app, _ := buildTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/mouvements-stock/", bytes.NewReader([]byte("{pas du json")))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode[dto.ErrorResponse](t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock faible et read model
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_FiltreStockFaibleInclusif(t *testing.T) {
	app, s := buildTestApp(t)
	s.seedProduit("p-sous", "PRD-A", 10, 8)
	s.seedProduit("p-egal", "PRD-B", 10, 10)
	s.seedProduit("p-dessus", "PRD-C", 10, 11)

	resp := doJSON(t, app, http.MethodGet, "/stock/?stock_faible=true", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.StockListResponse](t, resp)

	require.Len(t, out.Items, 2, "8 et 10 sont à ou sous le seuil de 10, 11 non")
	ids := []string{out.Items[0].ProduitID, out.Items[1].ProduitID}
	assert.ElementsMatch(t, []string{"p-sous", "p-egal"}, ids)
}

func TestAPI_ProduitsAvecStock(t *testing.T) {
	app, s := buildTestApp(t)
	s.seedProduit(produitA, "CAB-HDMI-2M", 10, 4)

	resp := doJSON(t, app, http.MethodGet, "/produits-avec-stock/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.ProduitAvecStockListResponse](t, resp)

	require.Len(t, out.Items, 1)
	assert.Equal(t, 4, out.Items[0].QuantiteDisponible)
	assert.True(t, out.Items[0].StockFaible)
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD : cas d'erreur notables
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_CategorieNomDuplique(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/categories/", dto.CreateCategorieRequest{Nom: "Câblage"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/categories/", dto.CreateCategorieRequest{Nom: "Câblage"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", decode[dto.ErrorResponse](t, resp).Code)
}

func TestAPI_ProduitSuppressionRefuseeAvecMouvements(t *testing.T) {
	app, s := buildTestApp(t)
	s.seedProduit(produitA, "CAB-HDMI-2M", 10, 0)

	resp := doJSON(t, app, http.MethodPost, "/mouvements-stock/", dto.CreateMouvementRequest{
		ProduitID: produitA, Type: entity.MouvementENTREE, Quantite: 5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/produits/"+produitA, nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", decode[dto.ErrorResponse](t, resp).Code)

	// Le produit est toujours là
	resp = doJSON(t, app, http.MethodGet, "/produits/"+produitA, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAPI_ProduitReferenceDupliquee(t *testing.T) {
	app, s := buildTestApp(t)
	s.seedProduit(produitA, "CAB-HDMI-2M", 10, 0)

	resp := doJSON(t, app, http.MethodPost, "/produits/", dto.CreateProduitRequest{
		Nom: "Doublon", Reference: "CAB-HDMI-2M",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", decode[dto.ErrorResponse](t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Étiquette PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_EtiquettePDF(t *testing.T) {
	app, s := buildTestApp(t)
	s.seedProduit(produitA, "CAB-HDMI-2M", 10, 30)

	resp := doJSON(t, app, http.MethodGet, "/produits/"+produitA+"/etiquette", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "etiquette-CAB-HDMI-2M.pdf")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")), "le corps doit être un document PDF")
}

func TestAPI_EtiquetteProduitInconnu(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/produits/inconnu/etiquette", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
