package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/diewo77/invoice-studio/internal/document"
	"github.com/diewo77/invoice-studio/internal/models"
)

// ErrNoLineItems gates the generate action: an invoice needs at least one
// billable row.
var ErrNoLineItems = errors.New("no_line_items")

// DefaultsSaver persists the session defaults on each generate action.
type DefaultsSaver interface {
	Save(models.SessionDefaults) error
}

// Renderer produces the final artifact bytes from an assembled document.
type Renderer interface {
	Render(*document.Document) ([]byte, error)
}

// Artifact is the downloadable result of a generate action.
type Artifact struct {
	Filename string
	PDF      []byte
}

// Generator runs the explicit "generate" action: precondition check,
// best-effort defaults persistence, assembly, rendering.
type Generator struct {
	defaults DefaultsSaver
	renderer Renderer
}

func NewGenerator(defaults DefaultsSaver, renderer Renderer) *Generator {
	return &Generator{defaults: defaults, renderer: renderer}
}

func (g *Generator) Generate(rec models.InvoiceRecord) (Artifact, error) {
	if len(rec.LineItems) == 0 {
		return Artifact{}, ErrNoLineItems
	}
	if g.defaults != nil {
		d := models.SessionDefaults{
			Issuer:              rec.Issuer,
			PaymentInstructions: rec.PaymentInstructions,
		}
		if err := g.defaults.Save(d); err != nil {
			// a broken defaults cache never blocks the download
			log.Printf("defaults save failed: %v", err)
		}
	}
	totals := ComputeTotals(rec.LineItems, rec.Discount, rec.TaxRate)
	doc := document.Assemble(rec, totals)
	data, err := g.renderer.Render(doc)
	if err != nil {
		return Artifact{}, fmt.Errorf("pdf_generation_failed: %w", err)
	}
	return Artifact{Filename: doc.Filename, PDF: data}, nil
}
