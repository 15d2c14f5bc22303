package brand

import (
	"github.com/gofiber/fiber/v2"

	"github.com/placidasia/catalog-backend/internal/content"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/brands", h.listBrands)
	app.Get("/api/v1/brands/:slug", h.getBrand)
}

func (h *Handler) listBrands(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

func (h *Handler) getBrand(c *fiber.Ctx) error {
	slug := c.Params("slug")

	// SONarchitect is a product by Sound of Numbers, not a brand; visitors
	// land here from old links and search engines.
	if slug == content.BrandSlugSONarchitect || slug == content.BrandSlugSONarchitectAlt {
		return c.JSON(fiber.Map{
			"slug":    slug,
			"notice":  "SONarchitect is a professional acoustic simulation software product, not a brand. It is manufactured by Sound of Numbers.",
			"brand":   "/api/v1/brands/sound-of-numbers",
			"product": "/api/v1/products/SONARCHITECT-SONARCHITECT",
		})
	}

	// Rion products are not carried in the catalog.
	if slug == content.BrandSlugRion {
		return c.JSON(fiber.Map{
			"slug":         slug,
			"notice":       "Rion products are not currently available in our catalog. We offer similar high-quality sound level meters and acoustic measurement equipment from other leading manufacturers.",
			"alternatives": []string{"norsonic", "bedrock-elite"},
		})
	}

	detail, found, err := h.service.Get(c.Context(), slug)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).SendString("Brand not found")
	}
	return c.JSON(detail)
}
