// Package pdf renders an assembled document tree to PDF bytes with maroto.
package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/diewo77/invoice-studio/internal/document"
	"github.com/diewo77/invoice-studio/internal/money"
)

const (
	lineHeight   = 5.0
	gapHeight    = 6.0
	sideMargin   = 14.0 // ~40pt, maroto works in millimeters
	footerHeight = 10.0 // taller bottom band for the attribution line
)

var gray = props.Color{Red: 110, Green: 110, Blue: 110}

// Renderer is the backend turning document trees into letter-sized PDFs.
type Renderer struct{}

func New() *Renderer { return &Renderer{} }

func (r *Renderer) Render(doc *document.Document) ([]byte, error) {
	m := maroto.New(buildConfig(doc))
	if err := registerFooter(m, doc.Footer); err != nil {
		return nil, fmt.Errorf("register footer: %w", err)
	}

	addHeader(m, doc)
	addBillTo(m, doc.BillTo)
	addItems(m, doc.Items)
	addTotals(m, doc.Totals)
	addBlock(m, doc.Notes)
	addBlock(m, doc.Payment)

	generated, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return generated.GetBytes(), nil
}

func buildConfig(doc *document.Document) *entity.Config {
	b := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(sideMargin).
		WithTopMargin(sideMargin).
		WithRightMargin(sideMargin).
		WithDefaultFont(&props.Font{Family: fontfamily.Arial, Size: 10})
	if doc.Footer.PageNumbers {
		b = b.WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    8,
			Color:   &gray,
		})
	}
	return b.Build()
}

func registerFooter(m core.Maroto, footer document.Footer) error {
	return m.RegisterFooter(row.New(footerHeight).Add(
		text.NewCol(12, footer.Attribution, props.Text{Size: 8, Align: align.Center, Color: &gray}),
	))
}

// addHeader lays the issuer identity block on the left against the title and
// metadata table on the right, band by band.
func addHeader(m core.Maroto, doc *document.Document) {
	issuer := doc.Header.Issuer.Lines
	meta := doc.Header.Meta

	name := ""
	if len(issuer) > 0 {
		name = issuer[0]
	}
	m.AddRow(8,
		text.NewCol(6, name, props.Text{Size: 12, Style: fontstyle.Bold}),
		text.NewCol(6, doc.Title, props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Right}),
	)

	bands := len(meta)
	if len(issuer)-1 > bands {
		bands = len(issuer) - 1
	}
	for i := 0; i < bands; i++ {
		line := ""
		if i+1 < len(issuer) {
			line = issuer[i+1]
		}
		label, value := "", ""
		if i < len(meta) {
			label, value = meta[i].Label, meta[i].Value
		}
		m.AddRow(lineHeight,
			text.NewCol(6, line, props.Text{Size: 9}),
			text.NewCol(3, label, props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
			text.NewCol(3, value, props.Text{Size: 9, Align: align.Right}),
		)
	}
	m.AddRow(gapHeight)
}

func addBillTo(m core.Maroto, block document.Block) {
	m.AddRow(lineHeight, text.NewCol(12, block.Label, props.Text{Size: 9, Style: fontstyle.Bold, Color: &gray}))
	for _, line := range block.Lines {
		m.AddRow(lineHeight, text.NewCol(12, line, props.Text{Size: 10}))
	}
	m.AddRow(gapHeight)
}

func addItems(m core.Maroto, items document.ItemsTable) {
	cols := make([]core.Col, 0, len(items.Columns))
	for i, name := range items.Columns {
		cols = append(cols, text.NewCol(columnWidth(i), name, props.Text{
			Size:  9,
			Style: fontstyle.Bold,
			Align: columnAlign(i),
		}))
	}
	m.AddRow(6, cols...)

	for _, row := range items.Rows {
		m.AddRow(lineHeight,
			text.NewCol(6, row.Description, props.Text{Size: 10}),
			text.NewCol(2, money.Quantity(row.Quantity), props.Text{Size: 10, Align: align.Right}),
			text.NewCol(2, money.Format(row.UnitRate), props.Text{Size: 10, Align: align.Right}),
			text.NewCol(2, money.Format(row.Amount), props.Text{Size: 10, Align: align.Right}),
		)
	}
	m.AddRow(gapHeight)
}

func columnWidth(i int) int {
	if i == 0 {
		return 6
	}
	return 2
}

func columnAlign(i int) align.Type {
	if i == 0 {
		return align.Left
	}
	return align.Right
}

func addTotals(m core.Maroto, totals document.TotalsTable) {
	for _, row := range totals.Rows {
		style := fontstyle.Normal
		if row.Bold {
			style = fontstyle.Bold
		}
		m.AddRow(lineHeight,
			text.NewCol(6, ""),
			text.NewCol(3, row.Label, props.Text{Size: 10, Style: style, Align: align.Right}),
			text.NewCol(3, money.Format(row.Value), props.Text{Size: 10, Style: style, Align: align.Right}),
		)
	}
	m.AddRow(gapHeight)
}

func addBlock(m core.Maroto, block document.Block) {
	m.AddRow(lineHeight, text.NewCol(12, block.Label, props.Text{Size: 9, Style: fontstyle.Bold, Color: &gray}))
	for _, line := range block.Lines {
		m.AddRow(lineHeight, text.NewCol(12, line, props.Text{Size: 10}))
	}
	m.AddRow(gapHeight)
}
