package services

import (
	"recipebox/internal/models"
	"recipebox/internal/repositories"
)

// SubscriptionService handles the follow graph between users.
type SubscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepository
	userRepo         repositories.UserRepository
	recipeRepo       repositories.RecipeRepository
}

// NewSubscriptionService creates a new SubscriptionService.
func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	userRepo repositories.UserRepository,
	recipeRepo repositories.RecipeRepository,
) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		recipeRepo:       recipeRepo,
	}
}

// Subscribe follows the author. Self-subscription is rejected here at the
// write path; the database constraint alone cannot express it.
func (s *SubscriptionService) Subscribe(subscriberID, authorID string, recipesLimit int) (*models.SubscriptionResponse, error) {
	if subscriberID == authorID {
		return nil, models.NewValidationError("cannot subscribe to yourself")
	}
	author, err := s.userRepo.GetByID(authorID)
	if err != nil {
		return nil, err
	}
	if err := s.subscriptionRepo.Create(subscriberID, authorID); err != nil {
		return nil, err
	}
	return s.annotate(author, recipesLimit)
}

// Unsubscribe removes the follow edge; an absent pair is not found.
func (s *SubscriptionService) Unsubscribe(subscriberID, authorID string) error {
	if _, err := s.userRepo.GetByID(authorID); err != nil {
		return err
	}
	return s.subscriptionRepo.Delete(subscriberID, authorID)
}

// ListSubscriptions returns every followed author annotated with their
// recipe count and a preview of their recipes capped at recipesLimit.
func (s *SubscriptionService) ListSubscriptions(subscriberID string, recipesLimit int) ([]models.SubscriptionResponse, error) {
	authors, err := s.subscriptionRepo.ListAuthors(subscriberID)
	if err != nil {
		return nil, err
	}
	responses := make([]models.SubscriptionResponse, 0, len(authors))
	for i := range authors {
		response, err := s.annotate(&authors[i], recipesLimit)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *response)
	}
	return responses, nil
}

func (s *SubscriptionService) annotate(author *models.User, recipesLimit int) (*models.SubscriptionResponse, error) {
	count, err := s.recipeRepo.CountByAuthor(author.ID)
	if err != nil {
		return nil, err
	}
	recipes, err := s.recipeRepo.GetByAuthor(author.ID, recipesLimit)
	if err != nil {
		return nil, err
	}
	preview := make([]models.RecipeMinimal, 0, len(recipes))
	for _, recipe := range recipes {
		preview = append(preview, models.NewRecipeMinimal(recipe))
	}
	return &models.SubscriptionResponse{
		UserResponse: models.NewUserResponse(*author, true),
		Recipes:      preview,
		RecipesCount: count,
	}, nil
}
