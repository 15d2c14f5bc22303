package blog

import (
	"strconv"
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
	app.Get("/api/v1/blog", h.listPosts)
	app.Get("/api/v1/blog/:slug", h.getPost)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/admin/blog", h.listAllPosts)
	app.Post("/api/v1/admin/blog", h.createPost)
	app.Put("/api/v1/admin/blog/:id", h.updatePost)
	app.Delete("/api/v1/admin/blog/:id", h.deletePost)
	app.Put("/api/v1/admin/blog/:id/publish", h.togglePublish)
}

func (h *Handler) listPosts(c *fiber.Ctx) error {
	posts, err := h.service.ListPublished(c.Query("category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"posts": posts, "count": len(posts)})
}

func (h *Handler) getPost(c *fiber.Ctx) error {
	post, err := h.service.GetPublished(c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Blog post not found")
	}
	return c.JSON(post)
}

func (h *Handler) listAllPosts(c *fiber.Ctx) error {
	posts, err := h.service.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"posts": posts, "count": len(posts)})
}

func (h *Handler) createPost(c *fiber.Ctx) error {
	post := new(Post)
	if err := c.BodyParser(post); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if missingRequiredFields(*post) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "title_en, title_th, content_en, content_th and category are required"})
	}

	created, err := h.service.Create(*post)
	if err != nil {
		if err == ErrSlugExists {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "slug already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updatePost(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	post := new(Post)
	if err := c.BodyParser(post); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.Update(id, *post)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Blog post not found")
	}
	return c.JSON(updated)
}

func (h *Handler) deletePost(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	if err := h.service.Delete(id); err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Blog post not found")
	}
	return c.SendString("Blog post deleted")
}

func (h *Handler) togglePublish(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	post, err := h.service.TogglePublish(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Blog post not found")
	}
	return c.JSON(post)
}

func missingRequiredFields(p Post) bool {
	return strings.TrimSpace(p.TitleEN) == "" || strings.TrimSpace(p.TitleTH) == "" ||
		strings.TrimSpace(p.ContentEN) == "" || strings.TrimSpace(p.ContentTH) == "" ||
		strings.TrimSpace(p.Category) == ""
}
