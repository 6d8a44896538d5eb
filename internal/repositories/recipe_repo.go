package repositories

import (
	"recipebox/internal/models"
)

// RecipeRepository defines the interface for recipe aggregate data access.
// CreateWithAssociations and ReplaceWithAssociations run inside a single
// database transaction: either every row of the aggregate is visible or
// none are.
type RecipeRepository interface {
	CreateWithAssociations(recipe *models.Recipe, lines []models.IngredientLine, tagIDs []string) error
	ReplaceWithAssociations(recipeID string, updates map[string]interface{}, lines []models.IngredientLine, tagIDs []string) error
	GetByID(id string) (*models.Recipe, error)
	List(filter models.RecipeListFilter) ([]models.Recipe, error)
	Delete(id string) error
	CountByAuthor(authorID string) (int64, error)
	GetByAuthor(authorID string, limit int) ([]models.Recipe, error)
}
