// Package pdf genera la ficha imprimible de un número de serie con su historial
// de movimientos en el libro de stock.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Número de serie + Artículo  │  Estado + Bodega      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  GARANTÍA / AMC                                              │
//	│  COMPRA: documento, fecha, proveedor, tasa                   │
//	│  ENTREGA: documento, fecha, cliente                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Hora | Comprobante | Bodega | Cant.          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con el número de serie                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	appsn "github.com/jhoicas/Stock-ledger-api/internal/application/serialno"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
)

var _ appsn.CardGenerator = (*MarotoCardGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoCardGenerator implementa serialno.CardGenerator usando Maroto v2.
type MarotoCardGenerator struct{}

// NewMarotoCardGenerator construye el generador.
func NewMarotoCardGenerator() *MarotoCardGenerator { return &MarotoCardGenerator{} }

// SerialNoCard genera el PDF de la ficha y devuelve sus bytes.
// history se imprime en el orden recibido.
func (g *MarotoCardGenerator) SerialNoCard(sr *entity.SerialNo, history []*entity.StockLedgerEntry) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha de número de serie "+sr.SerialNo, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sr))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(maintenanceRow(sr))
	m.AddRows(purchaseRow(sr))
	m.AddRows(deliveryRow(sr))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range historyRows(history) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(sr))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ficha: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: número de serie + artículo (izq) y estado + bodega (der).
func headerRow(sr *entity.SerialNo) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(sr.SerialNo, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   %s", sr.ItemCode, nonEmpty(sr.ItemName, "")), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("NÚMERO DE SERIE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(sr.Status, entity.SerialNoStatusNotAvailable), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Bodega: "+nonEmpty(sr.Warehouse, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// maintenanceRow: garantía y contrato AMC.
func maintenanceRow(sr *entity.SerialNo) core.Row {
	return section(12, "GARANTÍA / AMC", fmt.Sprintf(
		"Estado: %s   |   Garantía hasta: %s   |   AMC hasta: %s   |   Periodo: %d días",
		nonEmpty(sr.MaintenanceStatus, "—"),
		formatDate(sr.WarrantyExpiryDate),
		formatDate(sr.AMCExpiryDate),
		sr.WarrantyPeriod,
	))
}

// purchaseRow: procedencia del último ingreso.
func purchaseRow(sr *entity.SerialNo) core.Row {
	return section(12, "COMPRA / INGRESO", fmt.Sprintf(
		"%s %s   |   Fecha: %s %s   |   Proveedor: %s   |   Tasa: $%s",
		nonEmpty(sr.PurchaseDocumentType, "—"), sr.PurchaseDocumentNo,
		formatDate(sr.PurchaseDate), sr.PurchaseTime,
		nonEmpty(sr.SupplierName, nonEmpty(sr.Supplier, "—")),
		formatMoney(sr.PurchaseRate.StringFixed(0)),
	))
}

// deliveryRow: procedencia de la última salida.
func deliveryRow(sr *entity.SerialNo) core.Row {
	return section(12, "ENTREGA / SALIDA", fmt.Sprintf(
		"%s %s   |   Fecha: %s %s   |   Cliente: %s",
		nonEmpty(sr.DeliveryDocumentType, "—"), sr.DeliveryDocumentNo,
		formatDate(sr.DeliveryDate), sr.DeliveryTime,
		nonEmpty(sr.CustomerName, nonEmpty(sr.Customer, "—")),
	))
}

func section(height float64, title, body string) core.Row {
	return row.New(height).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(body, props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Fecha", 2, align.Left),
		h("Hora", 1, align.Center),
		h("Comprobante", 5, align.Left),
		h("Bodega", 2, align.Left),
		h("Cant.", 2, align.Right),
	)
}

// historyRows: una fila por movimiento.
func historyRows(history []*entity.StockLedgerEntry) []core.Row {
	result := make([]core.Row, 0, len(history))
	for _, e := range history {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				e.PostingDate.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				e.PostingTime,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				e.VoucherType+" "+e.VoucherNo,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				e.Warehouse,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				e.ActualQty.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	if len(result) == 0 {
		result = append(result, row.New(7).Add(col.New(12).Add(
			text.New("Sin movimientos registrados", props.Text{Size: 8, Top: 1, Color: colorGray}),
		)))
	}
	return result
}

// footerRow: QR con el número de serie para etiquetado.
func footerRow(sr *entity.SerialNo) core.Row {
	return row.New(40).Add(
		col.New(4).Add(code.NewQr(sr.SerialNo, props.Rect{
			Percent: 95,
			Center:  true,
		})),
		col.New(8).Add(
			text.New("Escanee el código QR para identificar\nla unidad en bodega.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Generado el "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 7, Top: 18, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "—"
	}
	return t.Format("02/01/2006")
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	neg := len(s) > 0 && s[0] == '-'
	if neg {
		s = s[1:]
	}
	n := len(s)
	buf := make([]byte, 0, n+n/3+1)
	if neg {
		buf = append(buf, '-')
	}
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
