package handlers

import (
	"log"

	"recipebox/internal/models"
	"recipebox/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user profiles and subscriptions.
type UserHandler struct {
	userService         *services.UserService
	authService         *services.AuthService
	subscriptionService *services.SubscriptionService
	validate            *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(
	userService *services.UserService,
	authService *services.AuthService,
	subscriptionService *services.SubscriptionService,
) *UserHandler {
	return &UserHandler{
		userService:         userService,
		authService:         authService,
		subscriptionService: subscriptionService,
		validate:            validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app. Fixed paths
// are registered before the ":id" routes so "me" and "subscriptions" are
// never captured as ids.
func (h *UserHandler) RegisterRoutes(router fiber.Router, required, optional fiber.Handler) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", optional, h.HandleListUsers)
	userRoutes.Get("/me", required, h.HandleMe)
	userRoutes.Post("/set_password", required, h.HandleSetPassword)
	userRoutes.Get("/subscriptions", required, h.HandleListSubscriptions)
	userRoutes.Get("/:id", optional, h.HandleGetUser)
	userRoutes.Post("/:id/subscribe", required, h.HandleSubscribe)
	userRoutes.Delete("/:id/subscribe", required, h.HandleUnsubscribe)
}

// HandleListUsers lists every user profile.
func (h *UserHandler) HandleListUsers(c *fiber.Ctx) error {
	profiles, err := h.userService.ListProfiles(currentUserID(c))
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return models.RespondWithError(c, err)
	}
	return c.JSON(profiles)
}

// HandleMe returns the authenticated user's own profile.
func (h *UserHandler) HandleMe(c *fiber.Ctx) error {
	userID := currentUserID(c)
	profile, err := h.userService.GetProfile(userID, userID)
	if err != nil {
		log.Printf("Error getting current user %s: %v", userID, err)
		return models.RespondWithError(c, err)
	}
	return c.JSON(profile)
}

// HandleGetUser returns a single user profile.
func (h *UserHandler) HandleGetUser(c *fiber.Ctx) error {
	profile, err := h.userService.GetProfile(c.Params("id"), currentUserID(c))
	if err != nil {
		log.Printf("Error getting user %s: %v", c.Params("id"), err)
		return models.RespondWithError(c, err)
	}
	return c.JSON(profile)
}

// HandleSetPassword changes the authenticated user's password.
func (h *UserHandler) HandleSetPassword(c *fiber.Ctx) error {
	var req models.SetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing set_password request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	if err := h.authService.SetPassword(currentUserID(c), req); err != nil {
		log.Printf("Error changing password: %v", err)
		return models.RespondWithError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleListSubscriptions lists the authors the user follows, each with a
// recipe preview capped by the recipes_limit query parameter.
func (h *UserHandler) HandleListSubscriptions(c *fiber.Ctx) error {
	limit := c.QueryInt("recipes_limit", 0)
	subscriptions, err := h.subscriptionService.ListSubscriptions(currentUserID(c), limit)
	if err != nil {
		log.Printf("Error listing subscriptions: %v", err)
		return models.RespondWithError(c, err)
	}
	return c.JSON(subscriptions)
}

// HandleSubscribe follows the author in the path.
func (h *UserHandler) HandleSubscribe(c *fiber.Ctx) error {
	limit := c.QueryInt("recipes_limit", 0)
	subscription, err := h.subscriptionService.Subscribe(currentUserID(c), c.Params("id"), limit)
	if err != nil {
		log.Printf("Error subscribing to %s: %v", c.Params("id"), err)
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(subscription)
}

// HandleUnsubscribe unfollows the author in the path.
func (h *UserHandler) HandleUnsubscribe(c *fiber.Ctx) error {
	if err := h.subscriptionService.Unsubscribe(currentUserID(c), c.Params("id")); err != nil {
		log.Printf("Error unsubscribing from %s: %v", c.Params("id"), err)
		return models.RespondWithError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
