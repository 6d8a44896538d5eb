package services

import (
	"recipebox/internal/models"
	"recipebox/internal/repositories"
)

// CatalogService handles the reference data: ingredients and tags.
type CatalogService struct {
	ingredientRepo repositories.IngredientRepository
	tagRepo        repositories.TagRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(ingredientRepo repositories.IngredientRepository, tagRepo repositories.TagRepository) *CatalogService {
	return &CatalogService{
		ingredientRepo: ingredientRepo,
		tagRepo:        tagRepo,
	}
}

// CreateIngredient adds a catalog ingredient.
func (s *CatalogService) CreateIngredient(ingredient *models.Ingredient) error {
	return s.ingredientRepo.Create(ingredient)
}

// GetIngredient retrieves a single ingredient by its ID.
func (s *CatalogService) GetIngredient(id string) (*models.Ingredient, error) {
	return s.ingredientRepo.GetByID(id)
}

// SearchIngredients lists ingredients filtered by a name fragment.
func (s *CatalogService) SearchIngredients(name string) ([]models.Ingredient, error) {
	return s.ingredientRepo.Search(name)
}

// CreateTag adds a tag.
func (s *CatalogService) CreateTag(tag *models.Tag) error {
	return s.tagRepo.Create(tag)
}

// GetTag retrieves a single tag by its ID.
func (s *CatalogService) GetTag(id string) (*models.Tag, error) {
	return s.tagRepo.GetByID(id)
}

// ListTags lists every tag.
func (s *CatalogService) ListTags() ([]models.Tag, error) {
	return s.tagRepo.GetAll()
}
