package store

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/diewo77/invoice-studio/internal/models"
)

func setupTestStore(t *testing.T) (*GormStore, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&DefaultsRecord{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewGormStore(db), db
}

func sampleDefaults() models.SessionDefaults {
	return models.SessionDefaults{
		Issuer: models.Party{
			Name: "Acme", AddressLine: "1 Main St", LocalityLine: "Springfield",
			Phone: "555-0100", Email: "billing@acme.test", TaxID: "12-3456789",
		},
		PaymentInstructions: "Wire to account 123",
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, _ := setupTestStore(t)
	if err := s.Save(sampleDefaults()); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != sampleDefaults() {
		t.Fatalf("round trip mismatch: %#v", got)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s, db := setupTestStore(t)
	if err := s.Save(sampleDefaults()); err != nil {
		t.Fatalf("first save: %v", err)
	}
	updated := sampleDefaults()
	updated.PaymentInstructions = "New bank, account 456"
	if err := s.Save(updated); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.PaymentInstructions != "New bank, account 456" {
		t.Fatalf("not overwritten: %q", got.PaymentInstructions)
	}
	var count int64
	if err := db.Model(&DefaultsRecord{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected single row, got %d", count)
	}
}

func TestLoadAbsentYieldsEmpty(t *testing.T) {
	s, _ := setupTestStore(t)
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != (models.SessionDefaults{}) {
		t.Fatalf("expected empty defaults, got %#v", got)
	}
}

func TestLoadMalformedPayloadTreatedAsAbsent(t *testing.T) {
	s, db := setupTestStore(t)
	rec := DefaultsRecord{Key: DefaultsKey, Payload: "{not json"}
	if err := db.Create(&rec).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("malformed payload must not error: %v", err)
	}
	if got != (models.SessionDefaults{}) {
		t.Fatalf("expected empty defaults, got %#v", got)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	got, err := s.Load()
	if err != nil || got != (models.SessionDefaults{}) {
		t.Fatalf("fresh store should be empty: %#v err=%v", got, err)
	}
	if err := s.Save(sampleDefaults()); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err = s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != sampleDefaults() {
		t.Fatalf("round trip mismatch: %#v", got)
	}
}

func TestNormalizeDSN(t *testing.T) {
	cases := []struct{ in, want string }{
		{`"postgres://u:p@localhost/db"`, "postgres://u:p@localhost/db"},
		{"host=localhost user=u dbname=db", "host=localhost user=u dbname=db sslmode=disable"},
		{"file:defaults.db", "file:defaults.db"},
		{"  ", ""},
	}
	for _, c := range cases {
		if got := NormalizeDSN(c.in); got != c.want {
			t.Fatalf("NormalizeDSN(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestIsPostgresDSN(t *testing.T) {
	if !IsPostgresDSN("postgres://u@localhost/db") || !IsPostgresDSN("host=localhost dbname=db") {
		t.Fatalf("postgres DSNs not recognized")
	}
	if IsPostgresDSN("file:defaults.db") || IsPostgresDSN("invoice-studio.db") {
		t.Fatalf("sqlite DSN misclassified")
	}
}
