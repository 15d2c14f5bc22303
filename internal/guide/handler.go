package guide

import "github.com/gofiber/fiber/v2"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/guides", h.listGuides)
	app.Get("/api/v1/guides/:slug", h.getGuide)
}

func (h *Handler) listGuides(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

func (h *Handler) getGuide(c *fiber.Ctx) error {
	detail, found, err := h.service.Get(c.Context(), c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).SendString("Guide not found")
	}
	return c.JSON(detail)
}
