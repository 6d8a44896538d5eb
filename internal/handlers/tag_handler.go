package handlers

import (
	"log"

	"recipebox/internal/models"
	"recipebox/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// TagHandler handles HTTP requests for tags.
type TagHandler struct {
	catalogService *services.CatalogService
	validate       *validator.Validate
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(catalogService *services.CatalogService) *TagHandler {
	return &TagHandler{
		catalogService: catalogService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the tag routes with the Fiber app.
func (h *TagHandler) RegisterRoutes(router fiber.Router, required fiber.Handler) {
	tagRoutes := router.Group("/tags")
	tagRoutes.Get("/", h.HandleList)
	tagRoutes.Get("/:id", h.HandleGetByID)
	tagRoutes.Post("/", required, h.HandleCreate)
}

// HandleList lists every tag.
func (h *TagHandler) HandleList(c *fiber.Ctx) error {
	tags, err := h.catalogService.ListTags()
	if err != nil {
		log.Printf("Error listing tags: %v", err)
		return models.RespondWithError(c, err)
	}
	return c.JSON(tags)
}

// HandleGetByID retrieves a single tag.
func (h *TagHandler) HandleGetByID(c *fiber.Ctx) error {
	tag, err := h.catalogService.GetTag(c.Params("id"))
	if err != nil {
		log.Printf("Error getting tag %s: %v", c.Params("id"), err)
		return models.RespondWithError(c, err)
	}
	return c.JSON(tag)
}

// HandleCreate adds a tag.
func (h *TagHandler) HandleCreate(c *fiber.Ctx) error {
	var tag models.Tag
	if err := c.BodyParser(&tag); err != nil {
		log.Printf("Error parsing tag request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(tag); err != nil {
		return respondValidationErrors(c, err)
	}

	if err := h.catalogService.CreateTag(&tag); err != nil {
		log.Printf("Error creating tag: %v", err)
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tag)
}
