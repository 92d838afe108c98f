// seed importe un catalogue initial depuis un fichier CSV : catégories et
// fournisseurs sont créés à la volée (par nom), les produits avec une
// référence déjà connue sont ignorés.
//
// Format attendu (en-tête obligatoire) :
//
//	reference;nom;description;categorie;fournisseur;prix_unitaire;stock_min;stock_max;unite
//
// Usage : go run ./cmd/seed [chemin/produits.csv]
// Par défaut, cherche produits.csv dans le répertoire courant.
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/lmoreau/gestock-api/internal/application/dto"
	"github.com/lmoreau/gestock-api/internal/application/usecase"
	"github.com/lmoreau/gestock-api/internal/domain"
	"github.com/lmoreau/gestock-api/internal/domain/repository"
	"github.com/lmoreau/gestock-api/internal/infrastructure/postgres"
	"github.com/lmoreau/gestock-api/pkg/config"
)

func main() {
	csvPath := "produits.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Charger la configuration : %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Connexion à PostgreSQL : %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	categorieRepo := postgres.NewCategorieRepository(pool)
	fournisseurRepo := postgres.NewFournisseurRepository(pool)
	produitRepo := postgres.NewProduitRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	categorieUC := usecase.NewCategorieUseCase(categorieRepo)
	fournisseurUC := usecase.NewFournisseurUseCase(fournisseurRepo)
	produitUC := usecase.NewProduitUseCase(produitRepo, categorieRepo, fournisseurRepo, txRunner)

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ouvrir le CSV : %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = 9

	records, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Lire le CSV : %v\n", err)
		os.Exit(1)
	}
	if len(records) < 2 {
		fmt.Fprintln(os.Stderr, "CSV vide (en-tête seul ou fichier vide)")
		os.Exit(1)
	}

	// IDs des catégories et fournisseurs déjà créés pendant cet import, par nom.
	categories := map[string]string{}
	fournisseurs := map[string]string{}

	var crees, ignores int
	for i, rec := range records[1:] {
		ligne := i + 2 // numéro de ligne dans le fichier, en-tête compris

		reference, nom, description := rec[0], rec[1], rec[2]
		categorieNom, fournisseurNom := rec[3], rec[4]

		prix, err := decimal.NewFromString(rec[5])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Ligne %d : prix invalide %q : %v\n", ligne, rec[5], err)
			os.Exit(1)
		}
		stockMin, err := strconv.Atoi(rec[6])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Ligne %d : stock_min invalide %q\n", ligne, rec[6])
			os.Exit(1)
		}
		stockMax, err := strconv.Atoi(rec[7])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Ligne %d : stock_max invalide %q\n", ligne, rec[7])
			os.Exit(1)
		}
		unite := rec[8]

		categorieID, err := ensureCategorie(categorieUC, categorieRepo, categories, categorieNom)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Ligne %d : catégorie %q : %v\n", ligne, categorieNom, err)
			os.Exit(1)
		}
		fournisseurID, err := ensureFournisseur(fournisseurUC, fournisseurs, fournisseurNom)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Ligne %d : fournisseur %q : %v\n", ligne, fournisseurNom, err)
			os.Exit(1)
		}

		_, err = produitUC.Create(ctx, dto.CreateProduitRequest{
			Nom:           nom,
			Reference:     reference,
			Description:   description,
			CategorieID:   categorieID,
			FournisseurID: fournisseurID,
			PrixUnitaire:  prix,
			StockMin:      stockMin,
			StockMax:      stockMax,
			Unite:         unite,
		})
		switch {
		case err == domain.ErrDuplicate:
			ignores++
		case err != nil:
			fmt.Fprintf(os.Stderr, "Ligne %d : produit %q : %v\n", ligne, reference, err)
			os.Exit(1)
		default:
			crees++
		}
	}

	fmt.Printf("Import terminé : %d produit(s) créé(s), %d ignoré(s) (référence déjà connue)\n", crees, ignores)
}

// ensureCategorie retourne l'ID de la catégorie nommée, en la créant au besoin.
// Un nom vide signifie "sans catégorie".
func ensureCategorie(uc *usecase.CategorieUseCase, repo repository.CategorieRepository, cache map[string]string, nom string) (string, error) {
	if nom == "" {
		return "", nil
	}
	if id, ok := cache[nom]; ok {
		return id, nil
	}
	existing, err := repo.GetByNom(nom)
	if err != nil {
		return "", err
	}
	if existing != nil {
		cache[nom] = existing.ID
		return existing.ID, nil
	}
	created, err := uc.Create(dto.CreateCategorieRequest{Nom: nom})
	if err != nil {
		return "", err
	}
	cache[nom] = created.ID
	return created.ID, nil
}

// ensureFournisseur retourne l'ID du fournisseur nommé, en le créant s'il n'a
// pas déjà été vu pendant cet import. Un nom vide signifie "sans fournisseur".
func ensureFournisseur(uc *usecase.FournisseurUseCase, cache map[string]string, nom string) (string, error) {
	if nom == "" {
		return "", nil
	}
	if id, ok := cache[nom]; ok {
		return id, nil
	}
	created, err := uc.Create(dto.CreateFournisseurRequest{Nom: nom})
	if err != nil {
		return "", err
	}
	cache[nom] = created.ID
	return created.ID, nil
}
