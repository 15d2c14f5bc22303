package product

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var productCols = []string{"sku", "title_en", "title_th", "description_en", "description_th", "category", "supplier", "images", "pdfs", "featured", "active", "created_at", "updated_at"}

func TestPostgresListActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(productCols).
		AddRow("nor145", "Nor145 Sound Analyser", "เครื่องวัดเสียง", "Class 1", nil, "Sound Level Meters", "Norsonic", `["/img/nor145.jpg"]`, `[]`, true, true, "t", "u").
		AddRow("sonocat", "Sonocat", nil, "intensity", nil, "Acoustic Cameras", "Soundinsight", nil, "not-json", false, true, "t", "u")
	mock.ExpectQuery("FROM product").WillReturnRows(rows)

	products, err := repo.ListActive(Filter{})
	if err != nil {
		t.Fatalf("ListActive failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if len(products[0].Images) != 1 || products[0].Images[0] != "/img/nor145.jpg" {
		t.Fatalf("images column not parsed: %#v", products[0].Images)
	}
	// NULL and malformed media columns both become empty lists
	if products[1].Images == nil || len(products[1].Images) != 0 {
		t.Fatalf("NULL images should parse to empty list, got %#v", products[1].Images)
	}
	if products[1].PDFs == nil || len(products[1].PDFs) != 0 {
		t.Fatalf("malformed pdfs should parse to empty list, got %#v", products[1].PDFs)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresListActive_SupplierFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(productCols).
		AddRow("nor145", "Nor145", nil, "d", nil, "Sound Level Meters", "Norsonic", `[]`, `[]`, false, true, "t", "u")
	mock.ExpectQuery("supplier = ").WithArgs("Norsonic").WillReturnRows(rows)

	products, err := repo.ListActive(Filter{Supplier: "Norsonic"})
	if err != nil {
		t.Fatalf("ListActive failed: %v", err)
	}
	if len(products) != 1 || products[0].SupplierName() != "Norsonic" {
		t.Fatalf("unexpected result: %#v", products)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetBySKU_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM product").WithArgs("missing").WillReturnRows(sqlmock.NewRows(productCols))

	if _, err := repo.GetBySKU("missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresSearch_CountAndPage(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT count").
		WithArgs("%sound%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	rows := sqlmock.NewRows(productCols).
		AddRow("nor145", "Nor145 Sound Analyser", nil, "d", nil, "Sound Level Meters", "Norsonic", `[]`, `[]`, false, true, "t", "u")
	mock.ExpectQuery("FROM product").
		WithArgs("%sound%", 1, 1).
		WillReturnRows(rows)

	products, total, err := repo.Search(SearchParams{Query: "sound", Page: 2, Limit: 1})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if total != 3 || len(products) != 1 {
		t.Fatalf("expected total=3 page of 1, got total=%d n=%d", total, len(products))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresDelete_SoftDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("SET active = FALSE").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete("ghost"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSanitizeQuery(t *testing.T) {
	if got := sanitizeQuery("  nor%145_;'\" "); got != "nor145" {
		t.Fatalf("sanitizeQuery produced %q", got)
	}
}
