package inquiry

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var inquiryCols = []string{"id", "name", "email", "phone", "company", "subject", "message", "product_sku", "language", "items", "status", "created_at", "updated_at"}

func TestPostgresGetByID_ParsesItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(inquiryCols).
		AddRow("q-1", "Somsak", "somsak@example.com", nil, nil, "Quote request", "m", nil, "en",
			`[{"product_sku":"nor145","title_en":"Nor145 Sound Analyser","quantity":2}]`, "new", "t", "u")
	mock.ExpectQuery("FROM contact_inquiry").WithArgs("q-1").WillReturnRows(rows)

	inq, err := repo.GetByID("q-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(inq.Items) != 1 || inq.Items[0].ProductSKU != "nor145" || inq.Items[0].Quantity != 2 {
		t.Fatalf("items column not parsed: %#v", inq.Items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByID_CorruptItemsStillReturnsInquiry(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(inquiryCols).
		AddRow("q-2", "Somsak", "somsak@example.com", nil, nil, "Hi", "m", nil, "en",
			"not-json", "new", "t", "u")
	mock.ExpectQuery("FROM contact_inquiry").WithArgs("q-2").WillReturnRows(rows)

	inq, err := repo.GetByID("q-2")
	if err != nil {
		t.Fatalf("a bad items column must not fail the read: %v", err)
	}
	if inq.ID != "q-2" || len(inq.Items) != 0 {
		t.Fatalf("unexpected inquiry: %#v", inq)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresUpdateStatus_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE contact_inquiry").
		WithArgs("ghost", "closed", "u").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if _, err := repo.UpdateStatus("ghost", "closed", "u"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
