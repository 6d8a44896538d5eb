package handlers

import (
	"log"

	"recipebox/internal/models"
	"recipebox/internal/services"
	"recipebox/pkg/pdfexport"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// RecipeHandler handles HTTP requests for recipes, engagement markers and
// the shopping list export.
type RecipeHandler struct {
	recipeService       *services.RecipeService
	engagementService   *services.EngagementService
	shoppingListService *services.ShoppingListService
	shoppingListTitle   string
	validate            *validator.Validate
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(
	recipeService *services.RecipeService,
	engagementService *services.EngagementService,
	shoppingListService *services.ShoppingListService,
	shoppingListTitle string,
) *RecipeHandler {
	return &RecipeHandler{
		recipeService:       recipeService,
		engagementService:   engagementService,
		shoppingListService: shoppingListService,
		shoppingListTitle:   shoppingListTitle,
		validate:            validator.New(),
	}
}

// RegisterRoutes registers the recipe routes with the Fiber app. The
// download route is registered before ":id" so it is not captured as an id.
func (h *RecipeHandler) RegisterRoutes(router fiber.Router, required, optional fiber.Handler) {
	recipeRoutes := router.Group("/recipes")
	recipeRoutes.Get("/", optional, h.HandleList)
	recipeRoutes.Get("/download_shopping_cart", required, h.HandleDownloadShoppingCart)
	recipeRoutes.Get("/:id", optional, h.HandleGetByID)
	recipeRoutes.Post("/", required, h.HandleCreate)
	recipeRoutes.Patch("/:id", required, h.HandleUpdate)
	recipeRoutes.Delete("/:id", required, h.HandleDelete)
	recipeRoutes.Post("/:id/favorite", required, h.HandleAddFavorite)
	recipeRoutes.Delete("/:id/favorite", required, h.HandleRemoveFavorite)
	recipeRoutes.Post("/:id/shopping_cart", required, h.HandleAddToCart)
	recipeRoutes.Delete("/:id/shopping_cart", required, h.HandleRemoveFromCart)
}

// HandleList lists recipes narrowed by the query filters: tags (slug,
// repeatable), author, is_favorited and is_in_shopping_cart. The viewer
// flags are ignored for anonymous requests.
func (h *RecipeHandler) HandleList(c *fiber.Ctx) error {
	viewerID := currentUserID(c)

	filter := models.RecipeListFilter{
		AuthorID: c.Query("author"),
	}
	for _, slug := range c.Context().QueryArgs().PeekMulti("tags") {
		filter.TagSlugs = append(filter.TagSlugs, string(slug))
	}
	if viewerID != "" {
		if c.QueryBool("is_favorited", false) {
			filter.FavoritedBy = viewerID
		}
		if c.QueryBool("is_in_shopping_cart", false) {
			filter.InCartOf = viewerID
		}
	}

	recipes, err := h.recipeService.ListRecipes(filter, viewerID)
	if err != nil {
		log.Printf("Error listing recipes: %v", err)
		return models.RespondWithError(c, err)
	}
	return c.JSON(recipes)
}

// HandleGetByID returns the read projection of a single recipe.
func (h *RecipeHandler) HandleGetByID(c *fiber.Ctx) error {
	recipe, err := h.recipeService.GetRecipe(c.Params("id"), currentUserID(c))
	if err != nil {
		log.Printf("Error getting recipe %s: %v", c.Params("id"), err)
		return models.RespondWithError(c, err)
	}
	return c.JSON(recipe)
}

// HandleCreate creates a recipe aggregate for the authenticated author.
func (h *RecipeHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.RecipeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing recipe request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	recipe, err := h.recipeService.CreateRecipe(currentUserID(c), req)
	if err != nil {
		log.Printf("Error creating recipe: %v", err)
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(recipe)
}

// HandleUpdate replaces the recipe's associations and applies the scalar
// fields present in the request.
func (h *RecipeHandler) HandleUpdate(c *fiber.Ctx) error {
	var req models.RecipeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing recipe update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	recipe, err := h.recipeService.UpdateRecipe(c.Params("id"), currentUserID(c), req)
	if err != nil {
		log.Printf("Error updating recipe %s: %v", c.Params("id"), err)
		return models.RespondWithError(c, err)
	}
	return c.JSON(recipe)
}

// HandleDelete removes the recipe and everything referencing it.
func (h *RecipeHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.recipeService.DeleteRecipe(c.Params("id"), currentUserID(c)); err != nil {
		log.Printf("Error deleting recipe %s: %v", c.Params("id"), err)
		return models.RespondWithError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleAddFavorite marks the recipe as favorited by the current user.
func (h *RecipeHandler) HandleAddFavorite(c *fiber.Ctx) error {
	recipe, err := h.engagementService.AddFavorite(currentUserID(c), c.Params("id"))
	if err != nil {
		log.Printf("Error adding favorite for recipe %s: %v", c.Params("id"), err)
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(recipe)
}

// HandleRemoveFavorite removes the favorite marker.
func (h *RecipeHandler) HandleRemoveFavorite(c *fiber.Ctx) error {
	if err := h.engagementService.RemoveFavorite(currentUserID(c), c.Params("id")); err != nil {
		log.Printf("Error removing favorite for recipe %s: %v", c.Params("id"), err)
		return models.RespondWithError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleAddToCart queues the recipe for the current user's shopping list.
func (h *RecipeHandler) HandleAddToCart(c *fiber.Ctx) error {
	recipe, err := h.engagementService.AddToCart(currentUserID(c), c.Params("id"))
	if err != nil {
		log.Printf("Error adding recipe %s to cart: %v", c.Params("id"), err)
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(recipe)
}

// HandleRemoveFromCart removes the cart marker.
func (h *RecipeHandler) HandleRemoveFromCart(c *fiber.Ctx) error {
	if err := h.engagementService.RemoveFromCart(currentUserID(c), c.Params("id")); err != nil {
		log.Printf("Error removing recipe %s from cart: %v", c.Params("id"), err)
		return models.RespondWithError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDownloadShoppingCart aggregates the current user's cart and streams
// it as a PDF table.
func (h *RecipeHandler) HandleDownloadShoppingCart(c *fiber.Ctx) error {
	items, err := h.shoppingListService.BuildShoppingList(currentUserID(c))
	if err != nil {
		log.Printf("Error building shopping list: %v", err)
		return models.RespondWithError(c, err)
	}

	document, err := pdfexport.Render(h.shoppingListTitle, items)
	if err != nil {
		log.Printf("Error rendering shopping list PDF: %v", err)
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="shopping_list.pdf"`)
	return c.Send(document)
}
