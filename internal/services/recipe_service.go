package services

import (
	"fmt"
	"log"

	"recipebox/internal/models"
	"recipebox/internal/repositories"
	"recipebox/pkg/rabbitmq"
)

// RecipeService handles the recipe aggregate: creation and full-replace
// updates of a recipe together with its ingredient lines and tag links,
// plus the viewer-dependent read projection.
type RecipeService struct {
	recipeRepo       repositories.RecipeRepository
	ingredientRepo   repositories.IngredientRepository
	tagRepo          repositories.TagRepository
	userRepo         repositories.UserRepository
	engagementRepo   repositories.EngagementRepository
	subscriptionRepo repositories.SubscriptionRepository
	mqClient         *rabbitmq.Client // RabbitMQ client, may be nil
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(
	recipeRepo repositories.RecipeRepository,
	ingredientRepo repositories.IngredientRepository,
	tagRepo repositories.TagRepository,
	userRepo repositories.UserRepository,
	engagementRepo repositories.EngagementRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	mqClient *rabbitmq.Client,
) *RecipeService {
	return &RecipeService{
		recipeRepo:       recipeRepo,
		ingredientRepo:   ingredientRepo,
		tagRepo:          tagRepo,
		userRepo:         userRepo,
		engagementRepo:   engagementRepo,
		subscriptionRepo: subscriptionRepo,
		mqClient:         mqClient,
	}
}

// validateAggregate runs every aggregate-level check before any write:
// non-empty, duplicate-free associations with positive amounts, a positive
// cooking time, and resolvable ingredient and tag references.
func (s *RecipeService) validateAggregate(lines []models.IngredientLinePayload, tagIDs []string, cookingTime int) error {
	if len(lines) == 0 {
		return models.NewValidationError("recipe must contain at least one ingredient")
	}
	seenIngredients := make(map[string]bool, len(lines))
	for _, line := range lines {
		if seenIngredients[line.ID] {
			return models.NewValidationError(fmt.Sprintf(
				"ingredient %s appears more than once", line.ID))
		}
		seenIngredients[line.ID] = true
		if line.Amount < 1 {
			return models.NewValidationError("ingredient amount must be at least 1")
		}
	}
	if cookingTime < 1 {
		return models.NewValidationError("cooking time must be at least 1")
	}
	if len(tagIDs) == 0 {
		return models.NewValidationError("recipe must have at least one tag")
	}
	seenTags := make(map[string]bool, len(tagIDs))
	for _, tagID := range tagIDs {
		if seenTags[tagID] {
			return models.NewValidationError(fmt.Sprintf(
				"tag %s appears more than once", tagID))
		}
		seenTags[tagID] = true
	}

	ingredientIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		ingredientIDs = append(ingredientIDs, line.ID)
	}
	ingredients, err := s.ingredientRepo.GetByIDs(ingredientIDs)
	if err != nil {
		return err
	}
	if len(ingredients) != len(ingredientIDs) {
		return models.NewNotFoundError("ingredient", missingID(ingredientIDs, ingredientKeys(ingredients)))
	}

	tags, err := s.tagRepo.GetByIDs(tagIDs)
	if err != nil {
		return err
	}
	if len(tags) != len(tagIDs) {
		return models.NewNotFoundError("tag", missingID(tagIDs, tagKeys(tags)))
	}
	return nil
}

func ingredientKeys(ingredients []models.Ingredient) map[string]bool {
	keys := make(map[string]bool, len(ingredients))
	for _, ingredient := range ingredients {
		keys[ingredient.ID] = true
	}
	return keys
}

func tagKeys(tags []models.Tag) map[string]bool {
	keys := make(map[string]bool, len(tags))
	for _, tag := range tags {
		keys[tag.ID] = true
	}
	return keys
}

func missingID(wanted []string, found map[string]bool) string {
	for _, id := range wanted {
		if !found[id] {
			return id
		}
	}
	return ""
}

func buildLines(payload []models.IngredientLinePayload) []models.IngredientLine {
	lines := make([]models.IngredientLine, 0, len(payload))
	for _, entry := range payload {
		lines = append(lines, models.IngredientLine{
			IngredientID: entry.ID,
			Amount:       entry.Amount,
		})
	}
	return lines
}

// CreateRecipe validates the full aggregate, writes it atomically and
// returns the author's read projection of the new recipe.
func (s *RecipeService) CreateRecipe(authorID string, req models.RecipeCreateRequest) (*models.RecipeResponse, error) {
	if err := s.validateAggregate(req.Ingredients, req.Tags, req.CookingTime); err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		AuthorID:    authorID,
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Image:       req.Image,
	}
	if err := s.recipeRepo.CreateWithAssociations(recipe, buildLines(req.Ingredients), req.Tags); err != nil {
		return nil, err
	}

	s.publishEvent("recipe.created", recipe)

	created, err := s.recipeRepo.GetByID(recipe.ID)
	if err != nil {
		return nil, err
	}
	return s.buildResponse(created, authorID)
}

// UpdateRecipe replaces the recipe's entire association set and applies the
// scalar fields present in the request. Only the author or an admin may
// update; an ingredient omitted from the payload is removed.
func (s *RecipeService) UpdateRecipe(recipeID, userID string, req models.RecipeUpdateRequest) (*models.RecipeResponse, error) {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(recipe, userID); err != nil {
		return nil, err
	}

	cookingTime := recipe.CookingTime
	if req.CookingTime != nil {
		cookingTime = *req.CookingTime
	}
	if err := s.validateAggregate(req.Ingredients, req.Tags, cookingTime); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Text != nil {
		updates["text"] = *req.Text
	}
	if req.CookingTime != nil {
		updates["cooking_time"] = *req.CookingTime
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}

	if err := s.recipeRepo.ReplaceWithAssociations(recipeID, updates, buildLines(req.Ingredients), req.Tags); err != nil {
		return nil, err
	}

	updated, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		return nil, err
	}
	return s.buildResponse(updated, userID)
}

// DeleteRecipe removes the recipe and everything referencing it.
func (s *RecipeService) DeleteRecipe(recipeID, userID string) error {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		return err
	}
	if err := s.authorize(recipe, userID); err != nil {
		return err
	}
	if err := s.recipeRepo.Delete(recipeID); err != nil {
		return err
	}
	s.publishEvent("recipe.deleted", recipe)
	return nil
}

// GetRecipe returns the read projection of the recipe for the viewer.
// An empty viewerID means an anonymous request.
func (s *RecipeService) GetRecipe(recipeID, viewerID string) (*models.RecipeResponse, error) {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		return nil, err
	}
	return s.buildResponse(recipe, viewerID)
}

// ListRecipes returns the projections of every recipe matching the filter.
func (s *RecipeService) ListRecipes(filter models.RecipeListFilter, viewerID string) ([]models.RecipeResponse, error) {
	recipes, err := s.recipeRepo.List(filter)
	if err != nil {
		return nil, err
	}
	responses := make([]models.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		response, err := s.buildResponse(&recipes[i], viewerID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *response)
	}
	return responses, nil
}

// authorize allows mutation by the recipe's author or an admin.
func (s *RecipeService) authorize(recipe *models.Recipe, userID string) error {
	if recipe.AuthorID == userID {
		return nil
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if !user.IsAdmin {
		return models.NewForbiddenError("only the author may modify this recipe")
	}
	return nil
}

// buildResponse assembles the externally visible shape of a recipe for a
// viewer. Only is_favorited and is_in_shopping_cart depend on the viewer;
// both are false for anonymous requests. The assembly performs reads only.
func (s *RecipeService) buildResponse(recipe *models.Recipe, viewerID string) (*models.RecipeResponse, error) {
	ingredients := make([]models.IngredientInRecipeResponse, 0, len(recipe.Lines))
	for _, line := range recipe.Lines {
		ingredients = append(ingredients, models.IngredientInRecipeResponse{
			ID:              line.Ingredient.ID,
			Name:            line.Ingredient.Name,
			MeasurementUnit: line.Ingredient.MeasurementUnit,
			Amount:          line.Amount,
		})
	}
	tags := make([]models.Tag, 0, len(recipe.TagLinks))
	for _, link := range recipe.TagLinks {
		tags = append(tags, link.Tag)
	}

	var isFavorited, isInCart, isSubscribed bool
	if viewerID != "" {
		var err error
		if isFavorited, err = s.engagementRepo.IsFavorited(viewerID, recipe.ID); err != nil {
			return nil, err
		}
		if isInCart, err = s.engagementRepo.IsInCart(viewerID, recipe.ID); err != nil {
			return nil, err
		}
		if isSubscribed, err = s.subscriptionRepo.Exists(viewerID, recipe.AuthorID); err != nil {
			return nil, err
		}
	}

	return &models.RecipeResponse{
		ID:               recipe.ID,
		Tags:             tags,
		Author:           models.NewUserResponse(recipe.Author, isSubscribed),
		Ingredients:      ingredients,
		IsFavorited:      isFavorited,
		IsInShoppingCart: isInCart,
		Name:             recipe.Name,
		Image:            recipe.Image,
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
	}, nil
}

// publishEvent emits a recipe lifecycle event, fire-and-forget.
func (s *RecipeService) publishEvent(event string, recipe *models.Recipe) {
	if s.mqClient == nil {
		return
	}
	payload := map[string]interface{}{
		"recipe_id": recipe.ID,
		"author_id": recipe.AuthorID,
		"name":      recipe.Name,
	}
	if err := s.mqClient.PublishRecipeEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event for recipe %s: %v", event, recipe.ID, err)
	}
}
