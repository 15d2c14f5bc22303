package category

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
	listing *ListingService
}

func NewHandler(service *Service, listing *ListingService) *Handler {
	return &Handler{service: service, listing: listing}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/categories", h.listCategories)
	app.Get("/api/v1/categories/:slug", h.getCategory)
	app.Get("/api/v1/categories/:slug/products", h.getCategoryProducts)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/categories", h.createCategory)
	app.Put("/api/v1/categories/:id", h.updateCategory)
	app.Delete("/api/v1/categories/:id", h.deleteCategory)
	app.Get("/api/v1/products/:sku/categories", h.listAssignments)
	app.Put("/api/v1/products/:sku/categories", h.setAssignments)
}

func (h *Handler) listCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListActive()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(categories)
}

func (h *Handler) getCategory(c *fiber.Ctx) error {
	cat, err := h.service.GetBySlug(c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Category not found")
	}
	return c.JSON(cat)
}

func (h *Handler) getCategoryProducts(c *fiber.Ctx) error {
	listing, found, err := h.listing.Get(c.Context(), c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).SendString("Category not found")
	}
	return c.JSON(listing)
}

func (h *Handler) createCategory(c *fiber.Ctx) error {
	cat := new(Category)
	if err := c.BodyParser(cat); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if strings.TrimSpace(cat.NameEN) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": map[string]string{"name_en": "name_en is required"}})
	}
	created, err := h.service.Create(*cat)
	if err != nil {
		if err == ErrSlugExists {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "slug already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateCategory(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	cat := new(Category)
	if err := c.BodyParser(cat); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	updated, err := h.service.Update(id, *cat)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Category not found")
	}
	return c.JSON(updated)
}

func (h *Handler) deleteCategory(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	if err := h.service.Delete(id); err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Category not found")
	}
	return c.SendString("Category deactivated")
}

func (h *Handler) listAssignments(c *fiber.Ctx) error {
	assignments, err := h.service.ListAssignments(c.Params("sku"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(assignments)
}

func (h *Handler) setAssignments(c *fiber.Ctx) error {
	var assignments []ProductCategory
	if err := c.BodyParser(&assignments); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.service.SetAssignments(c.Params("sku"), assignments); err != nil {
		switch err {
		case ErrMultiplePrimary:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).SendString("Category not found")
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(assignments)
}
