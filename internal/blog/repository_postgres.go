package blog

import (
	"database/sql"

	"github.com/lib/pq"
)

const postColumns = `id, slug, title_en, title_th, excerpt_en, excerpt_th, content_en, content_th,
	author, featured_image, category, tags, seo_keywords, reading_time, published, published_at,
	created_at, updated_at`

const (
	listPublishedQuery = `SELECT ` + postColumns + `
		FROM blog_post
		WHERE published = TRUE
		ORDER BY published_at DESC`

	listPublishedByCategoryQuery = `SELECT ` + postColumns + `
		FROM blog_post
		WHERE published = TRUE AND category = $1
		ORDER BY published_at DESC`

	listAllQuery = `SELECT ` + postColumns + `
		FROM blog_post
		ORDER BY created_at DESC`

	getPostBySlugQuery = `SELECT ` + postColumns + `
		FROM blog_post
		WHERE lower(slug) = lower($1)`

	getPostByIDQuery = `SELECT ` + postColumns + `
		FROM blog_post
		WHERE id = $1`

	insertPostQuery = `INSERT INTO blog_post (slug, title_en, title_th, excerpt_en, excerpt_th,
		content_en, content_th, author, featured_image, category, tags, seo_keywords,
		reading_time, published, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`

	updatePostQuery = `UPDATE blog_post
		SET slug = $2, title_en = $3, title_th = $4, excerpt_en = $5, excerpt_th = $6,
			content_en = $7, content_th = $8, author = $9, featured_image = $10,
			category = $11, tags = $12, seo_keywords = $13, reading_time = $14,
			published = $15, published_at = $16, updated_at = $17
		WHERE id = $1`

	deletePostQuery = `DELETE FROM blog_post WHERE id = $1`

	setPublishedQuery = `UPDATE blog_post
		SET published = $2, published_at = $3
		WHERE id = $1`
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListPublished(category string) ([]Post, error) {
	var rows *sql.Rows
	var err error
	if category != "" {
		rows, err = r.db.Query(listPublishedByCategoryQuery, category)
	} else {
		rows, err = r.db.Query(listPublishedQuery)
	}
	if err != nil {
		return nil, err
	}
	return collectPosts(rows)
}

func (r *PostgresRepository) ListAll() ([]Post, error) {
	rows, err := r.db.Query(listAllQuery)
	if err != nil {
		return nil, err
	}
	return collectPosts(rows)
}

func (r *PostgresRepository) GetBySlug(slug string) (Post, error) {
	post, err := scanPost(r.db.QueryRow(getPostBySlugQuery, slug))
	if err == sql.ErrNoRows {
		return Post{}, ErrNotFound
	}
	if err != nil {
		return Post{}, err
	}
	return post, nil
}

func (r *PostgresRepository) GetByID(id int) (Post, error) {
	post, err := scanPost(r.db.QueryRow(getPostByIDQuery, id))
	if err == sql.ErrNoRows {
		return Post{}, ErrNotFound
	}
	if err != nil {
		return Post{}, err
	}
	return post, nil
}

func (r *PostgresRepository) Create(p Post) (Post, error) {
	err := r.db.QueryRow(insertPostQuery,
		p.Slug, p.TitleEN, p.TitleTH, p.ExcerptEN, p.ExcerptTH, p.ContentEN, p.ContentTH,
		p.Author, p.FeaturedImage, p.Category, pq.Array(p.Tags), p.SEOKeywords,
		p.ReadingTime, p.Published, p.PublishedAt, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return Post{}, ErrSlugExists
		}
		return Post{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Update(id int, p Post) (Post, error) {
	res, err := r.db.Exec(updatePostQuery, id,
		p.Slug, p.TitleEN, p.TitleTH, p.ExcerptEN, p.ExcerptTH, p.ContentEN, p.ContentTH,
		p.Author, p.FeaturedImage, p.Category, pq.Array(p.Tags), p.SEOKeywords,
		p.ReadingTime, p.Published, p.PublishedAt, p.UpdatedAt)
	if err != nil {
		return Post{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Post{}, ErrNotFound
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(deletePostQuery, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) SetPublished(id int, published bool, publishedAt *string) (Post, error) {
	res, err := r.db.Exec(setPublishedQuery, id, published, publishedAt)
	if err != nil {
		return Post{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Post{}, ErrNotFound
	}
	return r.GetByID(id)
}

func collectPosts(rows *sql.Rows) ([]Post, error) {
	defer rows.Close()

	posts := make([]Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(s rowScanner) (Post, error) {
	var p Post
	var featuredImage, seoKeywords, publishedAt sql.NullString

	err := s.Scan(&p.ID, &p.Slug, &p.TitleEN, &p.TitleTH, &p.ExcerptEN, &p.ExcerptTH,
		&p.ContentEN, &p.ContentTH, &p.Author, &featuredImage, &p.Category,
		pq.Array(&p.Tags), &seoKeywords, &p.ReadingTime, &p.Published, &publishedAt,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return Post{}, err
	}

	if featuredImage.Valid {
		p.FeaturedImage = &featuredImage.String
	}
	if seoKeywords.Valid {
		p.SEOKeywords = &seoKeywords.String
	}
	if publishedAt.Valid {
		p.PublishedAt = &publishedAt.String
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p, nil
}
