package models

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	Username  string `json:"username" validate:"required,min=3,max=150"`
	FirstName string `json:"first_name" validate:"required,max=150"`
	LastName  string `json:"last_name" validate:"required,max=150"`
	Password  string `json:"password" validate:"required,min=6"`
}

// LoginRequest authenticates by email, which is the login identifier.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SetPasswordRequest changes the current user's password.
type SetPasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// IngredientLinePayload is one (ingredient, amount) entry of a recipe payload.
type IngredientLinePayload struct {
	ID     string `json:"id" validate:"required"`
	Amount int    `json:"amount" validate:"required,min=1"`
}

// RecipeCreateRequest carries the full aggregate: scalar fields plus the
// complete ingredient line and tag id sets.
type RecipeCreateRequest struct {
	Name        string                  `json:"name" validate:"required,max=200"`
	Text        string                  `json:"text" validate:"required"`
	CookingTime int                     `json:"cooking_time" validate:"required,min=1"`
	Image       string                  `json:"image"`
	Ingredients []IngredientLinePayload `json:"ingredients" validate:"required,min=1,dive"`
	Tags        []string                `json:"tags" validate:"required,min=1"`
}

// RecipeUpdateRequest replaces the association sets entirely; scalar fields
// are applied only when present in the request, so omitting the image keeps
// the stored one.
type RecipeUpdateRequest struct {
	Name        *string                 `json:"name" validate:"omitempty,max=200"`
	Text        *string                 `json:"text"`
	CookingTime *int                    `json:"cooking_time" validate:"omitempty,min=1"`
	Image       *string                 `json:"image"`
	Ingredients []IngredientLinePayload `json:"ingredients" validate:"required,min=1,dive"`
	Tags        []string                `json:"tags" validate:"required,min=1"`
}

// UserResponse is the external shape of a user. IsSubscribed depends on the
// viewer and is false for anonymous requests.
type UserResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// NewUserResponse maps a user row to its external shape.
func NewUserResponse(user User, isSubscribed bool) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsSubscribed: isSubscribed,
	}
}

// NewRecipeMinimal maps a recipe row to its compact shape.
func NewRecipeMinimal(recipe Recipe) RecipeMinimal {
	return RecipeMinimal{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.Image,
		CookingTime: recipe.CookingTime,
	}
}

// IngredientInRecipeResponse is an ingredient line joined with its catalog row.
type IngredientInRecipeResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// RecipeResponse is the full read projection of a recipe for a viewer.
// Only IsFavorited and IsInShoppingCart vary by viewer.
type RecipeResponse struct {
	ID               string                       `json:"id"`
	Tags             []Tag                        `json:"tags"`
	Author           UserResponse                 `json:"author"`
	Ingredients      []IngredientInRecipeResponse `json:"ingredients"`
	IsFavorited      bool                         `json:"is_favorited"`
	IsInShoppingCart bool                         `json:"is_in_shopping_cart"`
	Name             string                       `json:"name"`
	Image            string                       `json:"image"`
	Text             string                       `json:"text"`
	CookingTime      int                          `json:"cooking_time"`
}

// RecipeMinimal is the compact recipe shape returned by the engagement
// endpoints and subscription previews.
type RecipeMinimal struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// SubscriptionResponse is a followed author annotated with their recipe
// count and a capped preview of their recipes.
type SubscriptionResponse struct {
	UserResponse
	Recipes      []RecipeMinimal `json:"recipes"`
	RecipesCount int64           `json:"recipes_count"`
}

// ShoppingListItem is one consolidated row of the aggregated shopping list.
type ShoppingListItem struct {
	IngredientName  string `json:"ingredient_name"`
	MeasurementUnit string `json:"measurement_unit"`
	TotalAmount     int    `json:"total_amount"`
}

// RecipeListFilter is the pre-parsed filter descriptor for recipe listings.
// Empty fields are ignored.
type RecipeListFilter struct {
	TagSlugs    []string
	AuthorID    string
	FavoritedBy string
	InCartOf    string
}
