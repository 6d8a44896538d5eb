package repositories

import (
	"errors"
	"fmt"

	"recipebox/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMEngagementRepository is a GORM implementation of EngagementRepository.
type GORMEngagementRepository struct {
	db *gorm.DB
}

// NewGORMEngagementRepository creates a new instance of GORMEngagementRepository.
func NewGORMEngagementRepository(db *gorm.DB) *GORMEngagementRepository {
	return &GORMEngagementRepository{
		db: db,
	}
}

// AddFavorite inserts a favorite marker. The unique index on
// (user_id, recipe_id) turns a concurrent double-add into a conflict.
func (r *GORMEngagementRepository) AddFavorite(userID, recipeID string) error {
	favorite := models.Favorite{
		ID:       uuid.New().String(),
		UserID:   userID,
		RecipeID: recipeID,
	}
	if err := r.db.Create(&favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("recipe already in favorites")
		}
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// RemoveFavorite deletes the favorite marker for the pair.
func (r *GORMEngagementRepository) RemoveFavorite(userID, recipeID string) error {
	res := r.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&models.Favorite{})
	if res.Error != nil {
		return fmt.Errorf("failed to remove favorite: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return &models.AppError{Code: models.CodeNotFound, Message: "recipe is not in favorites"}
	}
	return nil
}

// IsFavorited reports whether the user has favorited the recipe.
func (r *GORMEngagementRepository) IsFavorited(userID, recipeID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return count > 0, nil
}

// AddCartEntry inserts a shopping cart marker for the pair.
func (r *GORMEngagementRepository) AddCartEntry(userID, recipeID string) error {
	entry := models.ShoppingCartEntry{
		ID:       uuid.New().String(),
		UserID:   userID,
		RecipeID: recipeID,
	}
	if err := r.db.Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("recipe already in shopping cart")
		}
		return fmt.Errorf("failed to add cart entry: %w", err)
	}
	return nil
}

// RemoveCartEntry deletes the shopping cart marker for the pair.
func (r *GORMEngagementRepository) RemoveCartEntry(userID, recipeID string) error {
	res := r.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&models.ShoppingCartEntry{})
	if res.Error != nil {
		return fmt.Errorf("failed to remove cart entry: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return &models.AppError{Code: models.CodeNotFound, Message: "recipe is not in shopping cart"}
	}
	return nil
}

// IsInCart reports whether the recipe is in the user's shopping cart.
func (r *GORMEngagementRepository) IsInCart(userID, recipeID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.ShoppingCartEntry{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check cart entry: %w", err)
	}
	return count > 0, nil
}

// CartLines fetches the ingredient lines of every recipe in the user's cart.
func (r *GORMEngagementRepository) CartLines(userID string) ([]models.IngredientLine, error) {
	var lines []models.IngredientLine
	err := r.db.
		Preload("Ingredient").
		Joins("JOIN shopping_cart_entries ON shopping_cart_entries.recipe_id = ingredient_lines.recipe_id").
		Where("shopping_cart_entries.user_id = ?", userID).
		Find(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart lines: %w", err)
	}
	return lines, nil
}
