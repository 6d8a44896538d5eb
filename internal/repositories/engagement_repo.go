package repositories

import (
	"recipebox/internal/models"
)

// EngagementRepository defines the interface for the (user, recipe) marker
// rows: favorites and shopping cart entries. Add methods are create-only;
// a second add for the same pair fails with a conflict.
type EngagementRepository interface {
	AddFavorite(userID, recipeID string) error
	RemoveFavorite(userID, recipeID string) error
	IsFavorited(userID, recipeID string) (bool, error)
	AddCartEntry(userID, recipeID string) error
	RemoveCartEntry(userID, recipeID string) error
	IsInCart(userID, recipeID string) (bool, error)
	// CartLines returns every ingredient line, with its catalog ingredient
	// loaded, across all recipes currently in the user's shopping cart.
	CartLines(userID string) ([]models.IngredientLine, error)
}
