package inquiry

import (
	"database/sql"
	"encoding/json"
	"log"
)

const inquiryColumns = `id, name, email, phone, company, subject, message, product_sku, language, items, status, created_at, updated_at`

const (
	insertInquiryQuery = `INSERT INTO contact_inquiry (` + inquiryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	listInquiriesQuery = `SELECT ` + inquiryColumns + `
		FROM contact_inquiry
		ORDER BY created_at DESC`

	getInquiryQuery = `SELECT ` + inquiryColumns + `
		FROM contact_inquiry
		WHERE id = $1`

	updateStatusQuery = `UPDATE contact_inquiry
		SET status = $2, updated_at = $3
		WHERE id = $1`
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(inq Inquiry) (Inquiry, error) {
	itemsJSON, err := json.Marshal(inq.Items)
	if err != nil {
		return Inquiry{}, err
	}

	_, err = r.db.Exec(insertInquiryQuery,
		inq.ID, inq.Name, inq.Email, inq.Phone, inq.Company, inq.Subject,
		inq.Message, inq.ProductSKU, inq.Language, itemsJSON, inq.Status,
		inq.CreatedAt, inq.UpdatedAt)
	if err != nil {
		return Inquiry{}, err
	}
	return inq, nil
}

func (r *PostgresRepository) List() ([]Inquiry, error) {
	rows, err := r.db.Query(listInquiriesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inquiries := make([]Inquiry, 0)
	for rows.Next() {
		inq, err := scanInquiry(rows)
		if err != nil {
			return nil, err
		}
		inquiries = append(inquiries, inq)
	}
	return inquiries, rows.Err()
}

func (r *PostgresRepository) GetByID(id string) (Inquiry, error) {
	inq, err := scanInquiry(r.db.QueryRow(getInquiryQuery, id))
	if err == sql.ErrNoRows {
		return Inquiry{}, ErrNotFound
	}
	if err != nil {
		return Inquiry{}, err
	}
	return inq, nil
}

func (r *PostgresRepository) UpdateStatus(id, status, updatedAt string) (Inquiry, error) {
	res, err := r.db.Exec(updateStatusQuery, id, status, updatedAt)
	if err != nil {
		return Inquiry{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Inquiry{}, ErrNotFound
	}
	return r.GetByID(id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInquiry(s rowScanner) (Inquiry, error) {
	var inq Inquiry
	var phone, company, productSKU sql.NullString
	var itemsJSON []byte

	err := s.Scan(&inq.ID, &inq.Name, &inq.Email, &phone, &company,
		&inq.Subject, &inq.Message, &productSKU, &inq.Language, &itemsJSON,
		&inq.Status, &inq.CreatedAt, &inq.UpdatedAt)
	if err != nil {
		return Inquiry{}, err
	}

	if phone.Valid {
		inq.Phone = &phone.String
	}
	if company.Valid {
		inq.Company = &company.String
	}
	if productSKU.Valid {
		inq.ProductSKU = &productSKU.String
	}
	// a corrupt items column must not hide the inquiry itself
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &inq.Items); err != nil {
			log.Printf("inquiry %s: could not decode items column: %v", inq.ID, err)
		}
	}
	return inq, nil
}
