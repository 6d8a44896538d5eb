package services_test

import (
	"recipebox/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(id string, hashed string) error {
	args := m.Called(id, hashed)
	return args.Error(0)
}

// MockIngredientRepository is a mock implementation of repositories.IngredientRepository.
type MockIngredientRepository struct {
	mock.Mock
}

func (m *MockIngredientRepository) Create(ingredient *models.Ingredient) error {
	args := m.Called(ingredient)
	return args.Error(0)
}

func (m *MockIngredientRepository) GetByID(id string) (*models.Ingredient, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) GetByIDs(ids []string) ([]models.Ingredient, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) Search(name string) ([]models.Ingredient, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ingredient), args.Error(1)
}

// MockTagRepository is a mock implementation of repositories.TagRepository.
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) Create(tag *models.Tag) error {
	args := m.Called(tag)
	return args.Error(0)
}

func (m *MockTagRepository) GetByID(id string) (*models.Tag, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) GetByIDs(ids []string) ([]models.Tag, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) GetAll() ([]models.Tag, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

// MockRecipeRepository is a mock implementation of repositories.RecipeRepository.
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) CreateWithAssociations(recipe *models.Recipe, lines []models.IngredientLine, tagIDs []string) error {
	args := m.Called(recipe, lines, tagIDs)
	return args.Error(0)
}

func (m *MockRecipeRepository) ReplaceWithAssociations(recipeID string, updates map[string]interface{}, lines []models.IngredientLine, tagIDs []string) error {
	args := m.Called(recipeID, updates, lines, tagIDs)
	return args.Error(0)
}

func (m *MockRecipeRepository) GetByID(id string) (*models.Recipe, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) List(filter models.RecipeListFilter) ([]models.Recipe, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRecipeRepository) CountByAuthor(authorID string) (int64, error) {
	args := m.Called(authorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecipeRepository) GetByAuthor(authorID string, limit int) ([]models.Recipe, error) {
	args := m.Called(authorID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}

// MockEngagementRepository is a mock implementation of repositories.EngagementRepository.
type MockEngagementRepository struct {
	mock.Mock
}

func (m *MockEngagementRepository) AddFavorite(userID, recipeID string) error {
	args := m.Called(userID, recipeID)
	return args.Error(0)
}

func (m *MockEngagementRepository) RemoveFavorite(userID, recipeID string) error {
	args := m.Called(userID, recipeID)
	return args.Error(0)
}

func (m *MockEngagementRepository) IsFavorited(userID, recipeID string) (bool, error) {
	args := m.Called(userID, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementRepository) AddCartEntry(userID, recipeID string) error {
	args := m.Called(userID, recipeID)
	return args.Error(0)
}

func (m *MockEngagementRepository) RemoveCartEntry(userID, recipeID string) error {
	args := m.Called(userID, recipeID)
	return args.Error(0)
}

func (m *MockEngagementRepository) IsInCart(userID, recipeID string) (bool, error) {
	args := m.Called(userID, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementRepository) CartLines(userID string) ([]models.IngredientLine, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.IngredientLine), args.Error(1)
}

// MockSubscriptionRepository is a mock implementation of repositories.SubscriptionRepository.
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Create(subscriberID, authorID string) error {
	args := m.Called(subscriberID, authorID)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Delete(subscriberID, authorID string) error {
	args := m.Called(subscriberID, authorID)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Exists(subscriberID, authorID string) (bool, error) {
	args := m.Called(subscriberID, authorID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) ListAuthors(subscriberID string) ([]models.User, error) {
	args := m.Called(subscriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}
