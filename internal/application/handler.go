package application

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/applications", h.listApplications)
	app.Get("/api/v1/applications/:slug", h.getApplication)
}

func (h *Handler) listApplications(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

func (h *Handler) getApplication(c *fiber.Ctx) error {
	detail, found, err := h.service.Get(c.Context(), c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).SendString("Application not found")
	}
	return c.JSON(detail)
}
