// Package document builds a declarative description of the invoice PDF:
// typed section descriptors assembled from the record and its totals, handed
// to a rendering backend afterwards.
package document

type Document struct {
	Title    string
	Filename string
	Header   Header
	BillTo   Block
	Items    ItemsTable
	Totals   TotalsTable
	Notes    Block
	Payment  Block
	Footer   Footer
}

// Header pairs the issuer identity block with the title/metadata table.
type Header struct {
	Issuer Block
	Meta   []MetaRow
}

// Block is a labelled run of text lines.
type Block struct {
	Label string
	Lines []string
}

type MetaRow struct {
	Label string
	Value string
}

type ItemsTable struct {
	Columns []string
	Rows    []ItemRow
}

type ItemRow struct {
	Description string
	Quantity    float64
	UnitRate    float64
	Amount      float64
}

type TotalsTable struct {
	Rows []TotalRow
}

type TotalRow struct {
	Label string
	Value float64
	Bold  bool
}

// Footer repeats on every page.
type Footer struct {
	Attribution string
	PageNumbers bool
}
