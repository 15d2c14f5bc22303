package main

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/placidasia/catalog-backend/internal/application"
	"github.com/placidasia/catalog-backend/internal/blog"
	"github.com/placidasia/catalog-backend/internal/brand"
	"github.com/placidasia/catalog-backend/internal/cache"
	"github.com/placidasia/catalog-backend/internal/category"
	"github.com/placidasia/catalog-backend/internal/config"
	"github.com/placidasia/catalog-backend/internal/curation"
	"github.com/placidasia/catalog-backend/internal/guide"
	"github.com/placidasia/catalog-backend/internal/inquiry"
	"github.com/placidasia/catalog-backend/internal/mailer"
	"github.com/placidasia/catalog-backend/internal/newsletter"
	"github.com/placidasia/catalog-backend/internal/product"
	"github.com/placidasia/catalog-backend/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()
	ensureSchema(db)

	listings, err := cache.New(cfg.RedisURL)
	if err != nil {
		fmt.Printf("warning: redis unavailable, listing cache disabled: %v\n", err)
	}

	engine := curation.NewEngine()
	mail := mailer.NewLogMailer()

	productService := product.NewService(product.NewPostgresRepository(db))
	productHandler := product.NewHandler(productService)

	categoryService := category.NewService(category.NewPostgresRepository(db))
	categoryListing := category.NewListingService(categoryService, productService, engine, listings)
	categoryHandler := category.NewHandler(categoryService, categoryListing)

	applicationHandler := application.NewHandler(application.NewService(productService, engine, listings))
	brandHandler := brand.NewHandler(brand.NewService(productService, engine, listings))
	guideHandler := guide.NewHandler(guide.NewService(productService, engine, listings))

	inquiryService := inquiry.NewService(inquiry.NewPostgresRepository(db), productService, mail, cfg.InquiryNotifyAddr)
	inquiryHandler := inquiry.NewHandler(inquiryService)

	newsletterHandler := newsletter.NewHandler(newsletter.NewService(newsletter.NewPostgresRepository(db), mail))

	userService := user.NewService(user.NewPostgresRepository(db))
	seeded, created, err := userService.SeedAdmin(cfg.AdminSeedEmail, cfg.AdminSeedPassword)
	if err != nil {
		panic(err)
	}
	if created {
		fmt.Printf("seeded admin account %s\n", seeded.Email)
	}
	userHandler := user.NewHandler(userService)

	blogHandler := blog.NewHandler(blog.NewService(blog.NewPostgresRepository(db)))

	// public surface: the whole catalog is readable without a token
	userHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	applicationHandler.RegisterPublicRoutes(app)
	brandHandler.RegisterPublicRoutes(app)
	guideHandler.RegisterPublicRoutes(app)
	inquiryHandler.RegisterPublicRoutes(app)
	newsletterHandler.RegisterPublicRoutes(app)
	blogHandler.RegisterPublicRoutes(app)
	// product routes last to avoid :sku swallowing the static paths above
	productHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
		// catalog reads stay public; everything else needs an admin token
		Filter: func(c *fiber.Ctx) bool {
			if c.Method() != fiber.MethodGet {
				return false
			}
			// the categorize workflow under /products/:sku/categories is admin-only
			if strings.HasSuffix(c.Path(), "/categories") && strings.HasPrefix(c.Path(), "/api/v1/products/") {
				return false
			}
			return strings.HasPrefix(c.Path(), "/api/v1/products") ||
				strings.HasPrefix(c.Path(), "/api/v1/categories") ||
				strings.HasPrefix(c.Path(), "/api/v1/applications") ||
				strings.HasPrefix(c.Path(), "/api/v1/brands") ||
				strings.HasPrefix(c.Path(), "/api/v1/guides") ||
				strings.HasPrefix(c.Path(), "/api/v1/blog")
		},
	}))

	userHandler.RegisterProtectedRoutes(app)
	productHandler.RegisterProtectedRoutes(app)
	categoryHandler.RegisterProtectedRoutes(app)
	inquiryHandler.RegisterProtectedRoutes(app)
	newsletterHandler.RegisterProtectedRoutes(app)
	blogHandler.RegisterProtectedRoutes(app)

	if err := app.Listen(cfg.Addr); err != nil {
		panic(err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	fmt.Printf("%s %s -> %d (%v)\n", c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
	return err
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}
	if err := db.Ping(); err != nil {
		panic(err)
	}
	return db
}

// ensureSchema creates the tables the repositories expect. Statements
// are idempotent so restarts against an existing database are safe.
func ensureSchema(db *sql.DB) {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS product (
			sku TEXT PRIMARY KEY,
			title_en TEXT NOT NULL,
			title_th TEXT,
			description_en TEXT,
			description_th TEXT,
			category TEXT,
			supplier TEXT,
			images TEXT,
			pdfs TEXT,
			featured BOOLEAN NOT NULL DEFAULT FALSE,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS category (
			category_id SERIAL PRIMARY KEY,
			slug TEXT UNIQUE NOT NULL,
			name_en TEXT NOT NULL,
			name_th TEXT,
			description TEXT,
			parent_id INT,
			active BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS product_category (
			product_sku TEXT NOT NULL,
			category_id INT NOT NULL,
			is_primary BOOLEAN NOT NULL DEFAULT FALSE,
			PRIMARY KEY (product_sku, category_id)
		)`,
		`CREATE TABLE IF NOT EXISTS contact_inquiry (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT,
			company TEXT,
			subject TEXT NOT NULL,
			message TEXT NOT NULL,
			product_sku TEXT,
			language TEXT NOT NULL DEFAULT 'en',
			items JSONB NOT NULL DEFAULT '[]',
			status TEXT NOT NULL DEFAULT 'new',
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS newsletter_subscriber (
			id SERIAL PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			name TEXT,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			subscribed_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS blog_post (
			id SERIAL PRIMARY KEY,
			slug TEXT UNIQUE NOT NULL,
			title_en TEXT NOT NULL,
			title_th TEXT NOT NULL,
			excerpt_en TEXT NOT NULL DEFAULT '',
			excerpt_th TEXT NOT NULL DEFAULT '',
			content_en TEXT NOT NULL,
			content_th TEXT NOT NULL,
			author TEXT NOT NULL DEFAULT 'Placid Asia',
			featured_image TEXT,
			category TEXT NOT NULL,
			tags TEXT[] NOT NULL DEFAULT '{}',
			seo_keywords TEXT,
			reading_time INT NOT NULL DEFAULT 5,
			published BOOLEAN NOT NULL DEFAULT FALSE,
			published_at TEXT,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS admin_user (
			id SERIAL PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			name TEXT,
			created_at TEXT,
			updated_at TEXT
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}
}
