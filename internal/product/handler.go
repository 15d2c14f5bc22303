package product

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.listProducts)
	app.Get("/api/v1/products/featured", h.listFeatured)
	app.Get("/api/v1/products/:sku", h.getProduct)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/products", h.createProduct)
	app.Put("/api/v1/products/:sku", h.updateProduct)
	app.Delete("/api/v1/products/:sku", h.deleteProduct)
	app.Patch("/api/v1/products/:sku/featured", h.setFeatured)
}

// listProducts serves both the plain listing (?category= / ?supplier=) and the
// paginated search (?q=&page=&limit=). Presence of any search parameter
// switches to the paginated response shape.
func (h *Handler) listProducts(c *fiber.Ctx) error {
	q := c.Query("q")
	if q != "" || c.Query("page") != "" || c.Query("limit") != "" {
		page, _ := strconv.Atoi(c.Query("page", "1"))
		limit, _ := strconv.Atoi(c.Query("limit", "20"))
		products, total, err := h.service.Search(SearchParams{
			Query:    q,
			Category: c.Query("category"),
			Page:     page,
			Limit:    limit,
		})
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
		if page < 1 {
			page = 1
		}
		if limit < 1 || limit > 100 {
			limit = 20
		}
		pages := (total + limit - 1) / limit
		return c.JSON(fiber.Map{
			"products": products,
			"total":    total,
			"page":     page,
			"pages":    pages,
		})
	}

	products, err := h.service.ListActive(Filter{
		Category: c.Query("category"),
		Supplier: c.Query("supplier"),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(products)
}

func (h *Handler) listFeatured(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "8"))
	products, err := h.service.ListFeatured(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(products)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	p, err := h.service.GetBySKU(c.Params("sku"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return c.JSON(p)
}

func validateProductPayload(p *Product) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(p.SKU) == "" {
		errs["sku"] = "sku is required"
	}
	if strings.TrimSpace(p.TitleEN) == "" {
		errs["title_en"] = "title_en is required"
	}
	return errs
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	p := new(Product)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validateProductPayload(p); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if p.CreatedAt == nil {
		p.CreatedAt = &now
	}
	if p.UpdatedAt == nil {
		p.UpdatedAt = &now
	}
	p.Active = true

	created, err := h.service.Create(*p)
	if err != nil {
		if err == ErrSKUExists {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "sku already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	p := new(Product)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	p.SKU = c.Params("sku")
	if ves := validateProductPayload(p); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	now := time.Now().UTC().Format(time.RFC3339)
	p.UpdatedAt = &now

	updated, err := h.service.Update(c.Params("sku"), *p)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return c.JSON(updated)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("sku")); err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return c.SendString("Product deactivated")
}

func (h *Handler) setFeatured(c *fiber.Ctx) error {
	var body struct {
		Featured bool `json:"featured"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.service.SetFeatured(c.Params("sku"), body.Featured); err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return c.JSON(fiber.Map{"sku": c.Params("sku"), "featured": body.Featured})
}
