package models

import "time"

// Favorite marks a recipe as favorited by a user.
// The combination of UserID and RecipeID must be unique.
type Favorite struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"not null;uniqueIndex:idx_favorite_user_recipe;type:varchar(36)"`
	RecipeID  string    `json:"recipe_id" gorm:"not null;uniqueIndex:idx_favorite_user_recipe;type:varchar(36)"`
	CreatedAt time.Time `json:"created_at"`

	User   User   `json:"-" gorm:"foreignKey:UserID"`
	Recipe Recipe `json:"-" gorm:"foreignKey:RecipeID"`
}

// ShoppingCartEntry marks a recipe as queued for the user's shopping list.
// Same shape and lifecycle as Favorite.
type ShoppingCartEntry struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"not null;uniqueIndex:idx_cart_user_recipe;type:varchar(36)"`
	RecipeID  string    `json:"recipe_id" gorm:"not null;uniqueIndex:idx_cart_user_recipe;type:varchar(36)"`
	CreatedAt time.Time `json:"created_at"`

	User   User   `json:"-" gorm:"foreignKey:UserID"`
	Recipe Recipe `json:"-" gorm:"foreignKey:RecipeID"`
}

// TableName keeps the table name aligned with the entity name rather than
// GORM's default pluralization of "entries".
func (ShoppingCartEntry) TableName() string {
	return "shopping_cart_entries"
}
