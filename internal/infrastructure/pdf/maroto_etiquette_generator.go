// Package pdf génère l'étiquette imprimable d'un produit avec Maroto v2.
//
// Format A6 paysage, pensé pour une planche d'étiquettes :
//
//	┌──────────────────────────────────┐
//	│  NOM DU PRODUIT                  │
//	│  Réf : REF-001     ┌─────────┐   │
//	│  Unité : pièce     │   QR    │   │
//	│  Prix : 12,50 €    └─────────┘   │
//	│  En stock : 42 (au 30/08/2026)   │
//	└──────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/lmoreau/gestock-api/internal/application/etiquette"
	"github.com/lmoreau/gestock-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 33, Green: 66, Blue: 99}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ etiquette.Generator = (*MarotoEtiquetteGenerator)(nil)

// MarotoEtiquetteGenerator implémente etiquette.Generator avec Maroto v2.
type MarotoEtiquetteGenerator struct{}

// NewMarotoEtiquetteGenerator construit le générateur.
func NewMarotoEtiquetteGenerator() *MarotoEtiquetteGenerator { return &MarotoEtiquetteGenerator{} }

// GenerateEtiquette génère le PDF de l'étiquette et retourne ses octets.
// Le QR code encode la référence du produit, scannable depuis le tableau de bord.
func (g *MarotoEtiquetteGenerator) GenerateEtiquette(_ context.Context, produit *entity.Produit, stock *entity.Stock) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A6).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(5).WithRightMargin(5).
		WithTopMargin(5).WithBottomMargin(5).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Étiquette "+produit.Reference, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(8).Add(
		col.New(12).Add(
			text.New(produit.Nom, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 1,
			}),
		),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.4}))

	m.AddRows(row.New(30).Add(
		col.New(7).Add(
			text.New("Réf : "+produit.Reference, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 2,
			}),
			text.New("Unité : "+produit.Unite, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Prix : %s €", produit.PrixUnitaire.StringFixed(2)), props.Text{
				Size: 8, Top: 15, Color: colorGray,
			}),
			text.New(fmt.Sprintf("En stock : %d (au %s)",
				stock.QuantiteDisponible,
				stock.UpdatedAt.Format("02/01/2006"),
			), props.Text{Size: 7, Top: 22, Color: colorGray}),
		),
		col.New(5).Add(code.NewQr(produit.Reference, props.Rect{
			Percent: 90,
			Center:  true,
		})),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: générer étiquette: %w", err)
	}
	return doc.GetBytes(), nil
}
