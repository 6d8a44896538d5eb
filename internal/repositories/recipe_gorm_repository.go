package repositories

import (
	"errors"
	"fmt"

	"recipebox/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMRecipeRepository is a GORM implementation of RecipeRepository.
type GORMRecipeRepository struct {
	db *gorm.DB
}

// NewGORMRecipeRepository creates a new instance of GORMRecipeRepository.
func NewGORMRecipeRepository(db *gorm.DB) *GORMRecipeRepository {
	return &GORMRecipeRepository{
		db: db,
	}
}

// CreateWithAssociations inserts the recipe row together with all of its
// ingredient lines and tag links in one transaction. A unique-constraint
// violation lost to a concurrent writer surfaces as a conflict.
func (r *GORMRecipeRepository) CreateWithAssociations(recipe *models.Recipe, lines []models.IngredientLine, tagIDs []string) error {
	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		return insertAssociations(tx, recipe.ID, lines, tagIDs)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("recipe association already exists")
		}
		return fmt.Errorf("failed to create recipe: %w", err)
	}
	return nil
}

// ReplaceWithAssociations applies the given scalar updates and swaps the
// entire ingredient line and tag link sets for the recipe. The delete and
// reinsert run in the same transaction so a failure between them can never
// leave the recipe with a partial association set.
func (r *GORMRecipeRepository) ReplaceWithAssociations(recipeID string, updates map[string]interface{}, lines []models.IngredientLine, tagIDs []string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&models.Recipe{}).Where("id = ?", recipeID).Updates(updates).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.IngredientLine{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeTag{}).Error; err != nil {
			return err
		}
		return insertAssociations(tx, recipeID, lines, tagIDs)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("recipe association already exists")
		}
		return fmt.Errorf("failed to replace recipe %s: %w", recipeID, err)
	}
	return nil
}

func insertAssociations(tx *gorm.DB, recipeID string, lines []models.IngredientLine, tagIDs []string) error {
	for i := range lines {
		lines[i].ID = uuid.New().String()
		lines[i].RecipeID = recipeID
	}
	if err := tx.Create(&lines).Error; err != nil {
		return err
	}
	links := make([]models.RecipeTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		links = append(links, models.RecipeTag{
			ID:       uuid.New().String(),
			RecipeID: recipeID,
			TagID:    tagID,
		})
	}
	return tx.Create(&links).Error
}

// GetByID retrieves a recipe with its author, ingredient lines and tags.
func (r *GORMRecipeRepository) GetByID(id string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.
		Preload("Author").
		Preload("Lines.Ingredient").
		Preload("TagLinks.Tag").
		First(&recipe, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("recipe", id)
		}
		return nil, fmt.Errorf("failed to get recipe by ID %s: %w", id, err)
	}
	return &recipe, nil
}

// List retrieves recipes matching the filter descriptor, newest first.
func (r *GORMRecipeRepository) List(filter models.RecipeListFilter) ([]models.Recipe, error) {
	query := r.db.
		Preload("Author").
		Preload("Lines.Ingredient").
		Preload("TagLinks.Tag").
		Order("created_at DESC")

	if filter.AuthorID != "" {
		query = query.Where("author_id = ?", filter.AuthorID)
	}
	if len(filter.TagSlugs) > 0 {
		sub := r.db.Model(&models.RecipeTag{}).
			Select("recipe_tags.recipe_id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", filter.TagSlugs)
		query = query.Where("recipes.id IN (?)", sub)
	}
	if filter.FavoritedBy != "" {
		sub := r.db.Model(&models.Favorite{}).
			Select("recipe_id").
			Where("user_id = ?", filter.FavoritedBy)
		query = query.Where("recipes.id IN (?)", sub)
	}
	if filter.InCartOf != "" {
		sub := r.db.Model(&models.ShoppingCartEntry{}).
			Select("recipe_id").
			Where("user_id = ?", filter.InCartOf)
		query = query.Where("recipes.id IN (?)", sub)
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// Delete removes the recipe and everything referencing it: ingredient
// lines, tag links, favorites and shopping cart entries, all in one
// transaction. This is the documented cascade rule for the aggregate.
func (r *GORMRecipeRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, dependent := range []interface{}{
			&models.IngredientLine{},
			&models.RecipeTag{},
			&models.Favorite{},
			&models.ShoppingCartEntry{},
		} {
			if err := tx.Where("recipe_id = ?", id).Delete(dependent).Error; err != nil {
				return fmt.Errorf("failed to delete recipe dependents: %w", err)
			}
		}
		res := tx.Delete(&models.Recipe{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete recipe: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("recipe", id)
		}
		return nil
	})
}

// CountByAuthor returns the number of recipes published by the author.
func (r *GORMRecipeRepository) CountByAuthor(authorID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Recipe{}).Where("author_id = ?", authorID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count recipes for author %s: %w", authorID, err)
	}
	return count, nil
}

// GetByAuthor lists the author's recipes, newest first, capped at limit
// when limit is positive.
func (r *GORMRecipeRepository) GetByAuthor(authorID string, limit int) ([]models.Recipe, error) {
	query := r.db.Where("author_id = ?", authorID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to get recipes for author %s: %w", authorID, err)
	}
	return recipes, nil
}
