package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/diewo77/invoice-studio/internal/config"
	"github.com/diewo77/invoice-studio/internal/form"
	"github.com/diewo77/invoice-studio/internal/models"
	"github.com/diewo77/invoice-studio/internal/money"
	"github.com/diewo77/invoice-studio/internal/pdf"
	"github.com/diewo77/invoice-studio/internal/services"
	"github.com/diewo77/invoice-studio/internal/store"
)

var (
	inputFlag = flag.String("input", "", "JSON file describing the invoice to fill in")
	outFlag   = flag.String("out", "", "Directory for the generated PDF (default OUTPUT_DIR)")
)

func main() {
	flag.Parse()
	_ = godotenv.Load()
	cfg := config.Load()

	st, err := store.Open(cfg.DefaultsDSN)
	if err != nil {
		log.Fatalf("open defaults store: %v", err)
	}
	defaults, err := st.Load()
	if err != nil {
		// best effort: a broken cache starts the session empty
		log.Printf("defaults unavailable, starting empty: %v", err)
		defaults = models.SessionDefaults{}
	}

	f := form.New(defaults)
	if *inputFlag != "" {
		if err := applyInput(f, *inputFlag); err != nil {
			log.Fatalf("apply input %s: %v", *inputFlag, err)
		}
	}

	totals := f.Totals()
	log.Printf("subtotal=%s tax=%s total=%s",
		money.Format(totals.Subtotal), money.Format(totals.Tax), money.Format(totals.Total))
	if v := f.Violations(); !v.Empty() {
		for field, msg := range v {
			log.Printf("field %s: %s", field, msg)
		}
	}

	gen := services.NewGenerator(st, pdf.New())
	artifact, err := gen.Generate(f.Record())
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	outDir := cfg.OutputDir
	if *outFlag != "" {
		outDir = *outFlag
	}
	path := filepath.Join(outDir, artifact.Filename)
	if err := os.WriteFile(path, artifact.PDF, 0o644); err != nil {
		log.Fatalf("write %s: %v", path, err)
	}
	log.Printf("wrote %s (%d bytes)", path, len(artifact.PDF))
}

// applyInput drives the typed setters from a JSON invoice description.
// Empty strings leave the session defaults and the generated number/dates in
// place.
func applyInput(f *form.Form, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var in models.InvoiceRecord
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	setIfPresent(in.Issuer.Name, f.SetIssuerName)
	setIfPresent(in.Issuer.AddressLine, f.SetIssuerAddressLine)
	setIfPresent(in.Issuer.LocalityLine, f.SetIssuerLocalityLine)
	setIfPresent(in.Issuer.Phone, f.SetIssuerPhone)
	setIfPresent(in.Issuer.Email, f.SetIssuerEmail)
	setIfPresent(in.Issuer.TaxID, f.SetIssuerTaxID)

	setIfPresent(in.Client.Name, f.SetClientName)
	setIfPresent(in.Client.AddressLine, f.SetClientAddressLine)
	setIfPresent(in.Client.LocalityLine, f.SetClientLocalityLine)
	setIfPresent(in.Client.Email, f.SetClientEmail)

	setIfPresent(in.Metadata.InvoiceNumber, f.SetInvoiceNumber)
	setIfPresent(in.Metadata.IssueDate, f.SetIssueDate)
	setIfPresent(in.Metadata.DueDate, f.SetDueDate)
	setIfPresent(in.Metadata.Terms, f.SetTerms)
	setIfPresent(in.Metadata.Reference, f.SetReference)

	setIfPresent(in.Notes, f.SetNotes)
	setIfPresent(in.PaymentInstructions, f.SetPaymentInstructions)
	f.SetTaxRate(in.TaxRate)
	f.SetDiscount(in.Discount)

	for _, it := range in.LineItems {
		idx := f.AddLineItem()
		f.SetItemDescription(idx, it.Description)
		f.SetItemQuantity(idx, it.Quantity)
		f.SetItemUnitRate(idx, it.UnitRate)
	}
	return nil
}

func setIfPresent(v string, set func(string)) {
	if v != "" {
		set(v)
	}
}
