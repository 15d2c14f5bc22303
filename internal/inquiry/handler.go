package inquiry

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
	app.Post("/api/v1/contact", h.submitContact)
	app.Post("/api/v1/quote-requests", h.submitQuote)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/inquiries", h.listInquiries)
	app.Get("/api/v1/inquiries/:id", h.getInquiry)
	app.Put("/api/v1/inquiries/:id", h.updateInquiry)
}

type contactRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone"`
	Company    *string `json:"company"`
	Subject    string  `json:"subject"`
	Message    string  `json:"message"`
	ProductSKU *string `json:"product_sku"`
	Language   string  `json:"language"`
}

func (h *Handler) submitContact(c *fiber.Ctx) error {
	payload := new(contactRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Name == "" || payload.Email == "" || payload.Subject == "" || payload.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name, email, subject, and message are required"})
	}

	created, err := h.service.SubmitContact(Inquiry{
		Name:       payload.Name,
		Email:      payload.Email,
		Phone:      payload.Phone,
		Company:    payload.Company,
		Subject:    payload.Subject,
		Message:    payload.Message,
		ProductSKU: payload.ProductSKU,
		Language:   payload.Language,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Inquiry submitted successfully",
		"inquiry_id": created.ID,
	})
}

type quoteRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Phone    *string     `json:"phone"`
	Company  *string     `json:"company"`
	Message  string      `json:"message"`
	Language string      `json:"language"`
	Items    []QuoteItem `json:"items"`
}

func (h *Handler) submitQuote(c *fiber.Ctx) error {
	payload := new(quoteRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Name == "" || payload.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name and email are required"})
	}
	if len(payload.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "items cannot be empty"})
	}
	for _, item := range payload.Items {
		if item.ProductSKU == "" || item.Quantity <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "each item needs a product_sku and a positive quantity"})
		}
	}

	created, err := h.service.SubmitQuote(Inquiry{
		Name:     payload.Name,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Company:  payload.Company,
		Message:  payload.Message,
		Language: payload.Language,
		Items:    payload.Items,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Quote request submitted successfully",
		"inquiry_id": created.ID,
	})
}

func (h *Handler) listInquiries(c *fiber.Ctx) error {
	inquiries, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(inquiries)
}

func (h *Handler) getInquiry(c *fiber.Ctx) error {
	inq, err := h.service.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Inquiry not found")
	}
	return c.JSON(inq)
}

type updateInquiryRequest struct {
	Status       string `json:"status"`
	ReplyMessage string `json:"reply_message"`
}

func (h *Handler) updateInquiry(c *fiber.Ctx) error {
	payload := new(updateInquiryRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if strings.TrimSpace(payload.Status) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "status is required"})
	}

	updated, err := h.service.UpdateStatus(c.Params("id"), payload.Status, payload.ReplyMessage)
	if err != nil {
		switch err {
		case ErrInvalidStatus:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).SendString("Inquiry not found")
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(updated)
}
