package repositories

import (
	"recipebox/internal/models"
)

// IngredientRepository defines the interface for ingredient catalog access.
type IngredientRepository interface {
	Create(ingredient *models.Ingredient) error
	GetByID(id string) (*models.Ingredient, error)
	GetByIDs(ids []string) ([]models.Ingredient, error)
	Search(name string) ([]models.Ingredient, error)
}

// TagRepository defines the interface for tag catalog access.
type TagRepository interface {
	Create(tag *models.Tag) error
	GetByID(id string) (*models.Tag, error)
	GetByIDs(ids []string) ([]models.Tag, error)
	GetAll() ([]models.Tag, error)
}
