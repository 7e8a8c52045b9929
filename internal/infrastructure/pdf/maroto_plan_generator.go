// Package pdf implementa la representación gráfica del plan de producción.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Cantidad | Valor Unit. | Valor Total      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: valor agregado del plan                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appplanning "github.com/jhoicas/Produccion-api/internal/application/planning"
	"github.com/jhoicas/Produccion-api/internal/domain/planning"
)

var _ appplanning.PlanPDFGenerator = (*MarotoPlanGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPlanGenerator implementa planning.PlanPDFGenerator usando Maroto v2.
type MarotoPlanGenerator struct{}

// NewMarotoPlanGenerator construye el generador.
func NewMarotoPlanGenerator() *MarotoPlanGenerator { return &MarotoPlanGenerator{} }

// GeneratePlanPDF genera el PDF del plan y devuelve sus bytes.
func (g *MarotoPlanGenerator) GeneratePlanPDF(
	_ context.Context,
	plan *planning.Plan,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Plan de Producción", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, item := range plan.Items {
		m.AddRows(itemRow(item))
	}
	if len(plan.Items) == 0 {
		m.AddRows(emptyPlanRow())
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(plan))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("PLAN DE PRODUCCIÓN", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Asignación de materias primas por prioridad de valor", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	headerRight := header
	headerRight.Align = align.Right
	return row.New(7).Add(
		col.New(6).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("Cantidad", headerRight)),
		col.New(2).Add(text.New("Valor Unit.", headerRight)),
		col.New(2).Add(text.New("Valor Total", headerRight)),
	)
}

func itemRow(item planning.PlanItem) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	cellRight := cell
	cellRight.Align = align.Right
	return row.New(6).Add(
		col.New(6).Add(text.New(item.ProductName, cell)),
		col.New(2).Add(text.New(strconv.Itoa(item.Quantity), cellRight)),
		col.New(2).Add(text.New(item.UnitValue.StringFixed(2), cellRight)),
		col.New(2).Add(text.New(item.TotalValue.StringFixed(2), cellRight)),
	)
}

func emptyPlanRow() core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New("Sin producción posible con el stock actual", props.Text{
			Size: 9, Align: align.Center, Color: colorGray, Top: 2,
		})),
	)
}

func totalRow(plan *planning.Plan) core.Row {
	return row.New(9).Add(
		col.New(8).Add(text.New("VALOR TOTAL DEL PLAN", props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
		})),
		col.New(4).Add(text.New(plan.TotalValue.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
		})),
	)
}
