package handlers

import (
	"log"

	"recipebox/internal/models"
	"recipebox/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// IngredientHandler handles HTTP requests for the ingredient catalog.
type IngredientHandler struct {
	catalogService *services.CatalogService
	validate       *validator.Validate
}

// NewIngredientHandler creates a new IngredientHandler.
func NewIngredientHandler(catalogService *services.CatalogService) *IngredientHandler {
	return &IngredientHandler{
		catalogService: catalogService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the ingredient routes with the Fiber app.
func (h *IngredientHandler) RegisterRoutes(router fiber.Router, required fiber.Handler) {
	ingredientRoutes := router.Group("/ingredients")
	ingredientRoutes.Get("/", h.HandleList)
	ingredientRoutes.Get("/:id", h.HandleGetByID)
	ingredientRoutes.Post("/", required, h.HandleCreate)
}

// HandleList lists ingredients, optionally filtered by a name fragment.
func (h *IngredientHandler) HandleList(c *fiber.Ctx) error {
	ingredients, err := h.catalogService.SearchIngredients(c.Query("name"))
	if err != nil {
		log.Printf("Error listing ingredients: %v", err)
		return models.RespondWithError(c, err)
	}
	return c.JSON(ingredients)
}

// HandleGetByID retrieves a single ingredient.
func (h *IngredientHandler) HandleGetByID(c *fiber.Ctx) error {
	ingredient, err := h.catalogService.GetIngredient(c.Params("id"))
	if err != nil {
		log.Printf("Error getting ingredient %s: %v", c.Params("id"), err)
		return models.RespondWithError(c, err)
	}
	return c.JSON(ingredient)
}

// HandleCreate adds an ingredient to the catalog.
func (h *IngredientHandler) HandleCreate(c *fiber.Ctx) error {
	var ingredient models.Ingredient
	if err := c.BodyParser(&ingredient); err != nil {
		log.Printf("Error parsing ingredient request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(ingredient); err != nil {
		return respondValidationErrors(c, err)
	}

	if err := h.catalogService.CreateIngredient(&ingredient); err != nil {
		log.Printf("Error creating ingredient: %v", err)
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ingredient)
}
