package services

import (
	"recipebox/internal/models"
	"recipebox/internal/repositories"
)

// EngagementService handles favorite and shopping-cart markers. Adding is
// create-only: a second add for the same (user, recipe) pair is a conflict,
// not an idempotent success.
type EngagementService struct {
	engagementRepo repositories.EngagementRepository
	recipeRepo     repositories.RecipeRepository
}

// NewEngagementService creates a new EngagementService.
func NewEngagementService(engagementRepo repositories.EngagementRepository, recipeRepo repositories.RecipeRepository) *EngagementService {
	return &EngagementService{
		engagementRepo: engagementRepo,
		recipeRepo:     recipeRepo,
	}
}

// AddFavorite marks the recipe as favorited and returns its compact shape.
func (s *EngagementService) AddFavorite(userID, recipeID string) (*models.RecipeMinimal, error) {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		return nil, err
	}
	if err := s.engagementRepo.AddFavorite(userID, recipeID); err != nil {
		return nil, err
	}
	minimal := models.NewRecipeMinimal(*recipe)
	return &minimal, nil
}

// RemoveFavorite deletes the favorite marker; absent pairs are not found.
func (s *EngagementService) RemoveFavorite(userID, recipeID string) error {
	if _, err := s.recipeRepo.GetByID(recipeID); err != nil {
		return err
	}
	return s.engagementRepo.RemoveFavorite(userID, recipeID)
}

// AddToCart queues the recipe for the user's shopping list.
func (s *EngagementService) AddToCart(userID, recipeID string) (*models.RecipeMinimal, error) {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		return nil, err
	}
	if err := s.engagementRepo.AddCartEntry(userID, recipeID); err != nil {
		return nil, err
	}
	minimal := models.NewRecipeMinimal(*recipe)
	return &minimal, nil
}

// RemoveFromCart deletes the cart marker; absent pairs are not found.
func (s *EngagementService) RemoveFromCart(userID, recipeID string) error {
	if _, err := s.recipeRepo.GetByID(recipeID); err != nil {
		return err
	}
	return s.engagementRepo.RemoveCartEntry(userID, recipeID)
}
