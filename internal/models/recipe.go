package models

import "time"

// Recipe is the aggregate root. It exclusively owns its ingredient lines
// and tag links: deleting a recipe deletes those rows (plus any favorites
// and cart entries pointing at it) in the same transaction.
type Recipe struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	AuthorID    string    `json:"author_id" gorm:"not null;index;type:varchar(36)"`
	Name        string    `json:"name" gorm:"not null;type:varchar(200)"`
	Text        string    `json:"text" gorm:"not null;type:text"`
	CookingTime int       `json:"cooking_time" gorm:"not null"`
	Image       string    `json:"image" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Author   User             `json:"-" gorm:"foreignKey:AuthorID"`
	Lines    []IngredientLine `json:"-" gorm:"foreignKey:RecipeID"`
	TagLinks []RecipeTag      `json:"-" gorm:"foreignKey:RecipeID"`
}

// IngredientLine joins a recipe to an ingredient with a quantity.
// A recipe may list an ingredient at most once; the unique index is the
// last line of defense under concurrent writes.
type IngredientLine struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	RecipeID     string `json:"recipe_id" gorm:"not null;uniqueIndex:idx_recipe_ingredient;type:varchar(36)"`
	IngredientID string `json:"ingredient_id" gorm:"not null;uniqueIndex:idx_recipe_ingredient;type:varchar(36)"`
	Amount       int    `json:"amount" gorm:"not null"`

	Ingredient Ingredient `json:"-" gorm:"foreignKey:IngredientID"`
}

// RecipeTag joins a recipe to a tag, unique per (recipe, tag) pair.
type RecipeTag struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	RecipeID string `json:"recipe_id" gorm:"not null;uniqueIndex:idx_recipe_tag;type:varchar(36)"`
	TagID    string `json:"tag_id" gorm:"not null;uniqueIndex:idx_recipe_tag;type:varchar(36)"`

	Tag Tag `json:"-" gorm:"foreignKey:TagID"`
}
