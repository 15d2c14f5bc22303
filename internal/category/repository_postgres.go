package category

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	categoryColumns = `c.category_id, c.slug, c.name_en, c.name_th, c.description, c.parent_id, c.active`

	// product_count is derived, never stored; the LEFT JOIN keeps empty
	// categories visible with a zero badge.
	listActiveQuery = `
		SELECT ` + categoryColumns + `, count(p.sku) AS product_count
		FROM category c
		LEFT JOIN product p ON p.category = c.name_en AND p.active = TRUE
		WHERE c.active = TRUE
		GROUP BY c.category_id
		ORDER BY c.name_en
	`
	getBySlugQuery = `
		SELECT ` + categoryColumns + `, count(p.sku) AS product_count
		FROM category c
		LEFT JOIN product p ON p.category = c.name_en AND p.active = TRUE
		WHERE lower(c.slug) = lower($1)
		GROUP BY c.category_id
	`
	getByIDQuery = `
		SELECT ` + categoryColumns + `, count(p.sku) AS product_count
		FROM category c
		LEFT JOIN product p ON p.category = c.name_en AND p.active = TRUE
		WHERE c.category_id = $1
		GROUP BY c.category_id
	`
	insertCategoryQuery = `
		INSERT INTO category (slug, name_en, name_th, description, parent_id, active)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING category_id
	`
	updateCategoryQuery = `
		UPDATE category
		SET slug = $1, name_en = $2, name_th = $3, description = $4, parent_id = $5, active = $6
		WHERE category_id = $7
	`
	deactivateCategoryQuery = `UPDATE category SET active = FALSE WHERE category_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListActive() ([]Category, error) {
	rows, err := r.db.Query(listActiveQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			continue
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetBySlug(slug string) (Category, error) {
	c, err := scanCategory(r.db.QueryRow(getBySlugQuery, slug))
	if err != nil {
		if err == sql.ErrNoRows {
			return Category{}, ErrNotFound
		}
		return Category{}, err
	}
	return c, nil
}

func (r *PostgresRepository) GetByID(id int) (Category, error) {
	c, err := scanCategory(r.db.QueryRow(getByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Category{}, ErrNotFound
		}
		return Category{}, err
	}
	return c, nil
}

func (r *PostgresRepository) Create(c Category) (Category, error) {
	var id int
	err := r.db.QueryRow(insertCategoryQuery, c.Slug, c.NameEN, c.NameTH, c.Description, c.ParentID, c.Active).Scan(&id)
	if err != nil {
		return Category{}, err
	}
	c.ID = id
	return c, nil
}

func (r *PostgresRepository) Update(id int, c Category) (Category, error) {
	result, err := r.db.Exec(updateCategoryQuery, c.Slug, c.NameEN, c.NameTH, c.Description, c.ParentID, c.Active, id)
	if err != nil {
		return Category{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Category{}, err
	}
	if affected == 0 {
		return Category{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deactivateCategoryQuery, id)
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

func (r *PostgresRepository) ListAssignments(productSKU string) ([]ProductCategory, error) {
	rows, err := r.db.Query(
		`SELECT product_sku, category_id, is_primary FROM product_category WHERE lower(product_sku) = lower($1) ORDER BY category_id`,
		productSKU,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ProductCategory, 0)
	for rows.Next() {
		var pc ProductCategory
		if err := rows.Scan(&pc.ProductSKU, &pc.CategoryID, &pc.Primary); err != nil {
			continue
		}
		out = append(out, pc)
	}
	return out, rows.Err()
}

// SetAssignments replaces a product's category links in one transaction and
// mirrors the primary category's name into the product row.
func (r *PostgresRepository) SetAssignments(productSKU string, assignments []ProductCategory) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`DELETE FROM product_category WHERE lower(product_sku) = lower($1)`, productSKU); err != nil {
		return err
	}
	for _, a := range assignments {
		if _, err := tx.Exec(
			`INSERT INTO product_category (product_sku, category_id, is_primary) VALUES ($1,$2,$3)`,
			productSKU, a.CategoryID, a.Primary,
		); err != nil {
			return err
		}
		if a.Primary {
			if _, err := tx.Exec(
				`UPDATE product SET category = (SELECT name_en FROM category WHERE category_id = $1) WHERE lower(sku) = lower($2)`,
				a.CategoryID, productSKU,
			); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(scanner rowScanner) (Category, error) {
	c := Category{}
	var (
		nameTH   sql.NullString
		desc     sql.NullString
		parentID sql.NullInt64
	)
	if err := scanner.Scan(&c.ID, &c.Slug, &c.NameEN, &nameTH, &desc, &parentID, &c.Active, &c.ProductCount); err != nil {
		return Category{}, err
	}
	if nameTH.Valid {
		c.NameTH = &nameTH.String
	}
	if desc.Valid {
		c.Description = &desc.String
	}
	if parentID.Valid {
		v := int(parentID.Int64)
		c.ParentID = &v
	}
	return c, nil
}
