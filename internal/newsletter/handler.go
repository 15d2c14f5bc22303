package newsletter

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/newsletter", h.subscribe)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/newsletter", h.listSubscribers)
}

type subscribeRequest struct {
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

func (h *Handler) subscribe(c *fiber.Ctx) error {
	payload := new(subscribeRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if !strings.Contains(payload.Email, "@") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "valid email is required"})
	}

	sub, reactivated, err := h.service.Subscribe(payload.Email, payload.Name)
	if err != nil {
		if err == ErrAlreadySubscribed {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "This email is already subscribed"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	message := "Successfully subscribed to newsletter"
	if reactivated {
		message = "Subscription reactivated successfully"
	}
	return c.JSON(fiber.Map{
		"message": message,
		"subscriber": fiber.Map{
			"email": sub.Email,
			"name":  sub.Name,
		},
	})
}

func (h *Handler) listSubscribers(c *fiber.Ctx) error {
	var active *bool
	switch c.Query("active") {
	case "true":
		v := true
		active = &v
	case "false":
		v := false
		active = &v
	}

	subscribers, err := h.service.List(active)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{
		"count":       len(subscribers),
		"subscribers": subscribers,
	})
}
