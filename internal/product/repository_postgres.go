package product

import (
	"database/sql"
	"strconv"
	"strings"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	productColumns = `sku, title_en, title_th, description_en, description_th, category, supplier, images, pdfs, featured, active, created_at, updated_at`

	listActiveQuery = `
		SELECT ` + productColumns + `
		FROM product
		WHERE active = TRUE
		ORDER BY title_en, sku
	`
	getBySKUQuery = `
		SELECT ` + productColumns + `
		FROM product
		WHERE lower(sku) = lower($1)
	`
	listFeaturedQuery = `
		SELECT ` + productColumns + `
		FROM product
		WHERE active = TRUE AND featured = TRUE
		ORDER BY title_en, sku
	`
	insertProductQuery = `
		INSERT INTO product (` + productColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`
	updateProductQuery = `
		UPDATE product
		SET title_en = $1,
			title_th = $2,
			description_en = $3,
			description_th = $4,
			category = $5,
			supplier = $6,
			images = $7,
			pdfs = $8,
			featured = $9,
			active = $10,
			updated_at = $11
		WHERE lower(sku) = lower($12)
	`
	softDeleteQuery  = `UPDATE product SET active = FALSE WHERE lower(sku) = lower($1)`
	setFeaturedQuery = `UPDATE product SET featured = $1 WHERE lower(sku) = lower($2)`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListActive(f Filter) ([]Product, error) {
	q := listActiveQuery
	args := []any{}
	conds := []string{}
	if f.Category != "" {
		conds = append(conds, `category = $1`)
		args = append(args, f.Category)
	}
	if f.Supplier != "" {
		if len(args) == 0 {
			conds = append(conds, `supplier = $1`)
		} else {
			conds = append(conds, `supplier = $2`)
		}
		args = append(args, f.Supplier)
	}
	if len(conds) > 0 {
		q = `
		SELECT ` + productColumns + `
		FROM product
		WHERE active = TRUE AND ` + strings.Join(conds, " AND ") + `
		ORDER BY title_en, sku
	`
	}

	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetBySKU(sku string) (Product, error) {
	row := r.db.QueryRow(getBySKUQuery, sku)
	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) ListFeatured(limit int) ([]Product, error) {
	q := listFeaturedQuery
	args := []any{}
	if limit > 0 {
		q += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Search pushes the text filter into SQL. The query string is stripped of
// characters that have meaning inside LIKE patterns before binding.
func (r *PostgresRepository) Search(params SearchParams) ([]Product, int, error) {
	pattern := "%" + sanitizeQuery(params.Query) + "%"

	where := `active = TRUE
		AND (sku ILIKE $1 OR title_en ILIKE $1 OR coalesce(title_th,'') ILIKE $1
			OR description_en ILIKE $1 OR coalesce(category,'') ILIKE $1
			OR coalesce(supplier,'') ILIKE $1)`
	args := []any{pattern}
	if params.Category != "" {
		where += ` AND category = $2`
		args = append(args, params.Category)
	}

	var total int
	if err := r.db.QueryRow(`SELECT count(*) FROM product WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit
	if offset < 0 {
		offset = 0
	}
	n := len(args)
	q := `SELECT ` + productColumns + ` FROM product WHERE ` + where +
		` ORDER BY title_en, sku LIMIT $` + strconv.Itoa(n+1) + ` OFFSET $` + strconv.Itoa(n+2)
	args = append(args, params.Limit, offset)

	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepository) ListBySKUs(skus []string) ([]Product, error) {
	if len(skus) == 0 {
		return []Product{}, nil
	}
	q := `SELECT ` + productColumns + ` FROM product WHERE lower(sku) = ANY($1::text[])`
	lowered := make([]string, len(skus))
	for i, s := range skus {
		lowered[i] = strings.ToLower(s)
	}
	rows, err := r.db.Query(q, pq.Array(lowered))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byKey := make(map[string]Product, len(skus))
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		byKey[strings.ToLower(p.SKU)] = p
	}
	// preserve caller order
	out := make([]Product, 0, len(skus))
	for _, s := range lowered {
		if p, ok := byKey[s]; ok {
			out = append(out, p)
		}
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	_, err := r.db.Exec(
		insertProductQuery,
		p.SKU,
		p.TitleEN,
		p.TitleTH,
		p.DescriptionEN,
		p.DescriptionTH,
		p.Category,
		p.Supplier,
		EncodeMediaList(p.Images),
		EncodeMediaList(p.PDFs),
		p.Featured,
		p.Active,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return Product{}, ErrSKUExists
		}
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Update(sku string, p Product) (Product, error) {
	result, err := r.db.Exec(
		updateProductQuery,
		p.TitleEN,
		p.TitleTH,
		p.DescriptionEN,
		p.DescriptionTH,
		p.Category,
		p.Supplier,
		EncodeMediaList(p.Images),
		EncodeMediaList(p.PDFs),
		p.Featured,
		p.Active,
		p.UpdatedAt,
		sku,
	)
	if err != nil {
		return Product{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Product{}, err
	}
	if affected == 0 {
		return Product{}, ErrNotFound
	}
	return r.GetBySKU(sku)
}

func (r *PostgresRepository) Delete(sku string) error {
	result, err := r.db.Exec(softDeleteQuery, sku)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) SetFeatured(sku string, featured bool) error {
	result, err := r.db.Exec(setFeaturedQuery, featured, sku)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(scanner rowScanner) (Product, error) {
	p := Product{}
	var (
		titleTH   sql.NullString
		descTH    sql.NullString
		category  sql.NullString
		supplier  sql.NullString
		images    []byte
		pdfs      []byte
		createdAt sql.NullString
		updatedAt sql.NullString
	)
	if err := scanner.Scan(
		&p.SKU,
		&p.TitleEN,
		&titleTH,
		&p.DescriptionEN,
		&descTH,
		&category,
		&supplier,
		&images,
		&pdfs,
		&p.Featured,
		&p.Active,
		&createdAt,
		&updatedAt,
	); err != nil {
		return Product{}, err
	}

	if titleTH.Valid {
		p.TitleTH = &titleTH.String
	}
	if descTH.Valid {
		p.DescriptionTH = &descTH.String
	}
	if category.Valid {
		p.Category = &category.String
	}
	if supplier.Valid {
		p.Supplier = &supplier.String
	}
	if createdAt.Valid {
		p.CreatedAt = &createdAt.String
	}
	if updatedAt.Valid {
		p.UpdatedAt = &updatedAt.String
	}
	p.Images = ParseMediaList(images)
	p.PDFs = ParseMediaList(pdfs)

	return p, nil
}

// sanitizeQuery drops characters that would act as wildcards or escapes in a
// LIKE pattern. Users paste model numbers with slashes and percent signs.
func sanitizeQuery(q string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '%', '_', '\\', '\'', '"', ';':
			return -1
		}
		return r
	}, strings.TrimSpace(q))
}
