package services

import (
	"sort"

	"recipebox/internal/models"
	"recipebox/internal/repositories"
)

// ShoppingListService builds the consolidated ingredient list across every
// recipe in a user's shopping cart.
type ShoppingListService struct {
	engagementRepo repositories.EngagementRepository
}

// NewShoppingListService creates a new ShoppingListService.
func NewShoppingListService(engagementRepo repositories.EngagementRepository) *ShoppingListService {
	return &ShoppingListService{
		engagementRepo: engagementRepo,
	}
}

// BuildShoppingList merges quantities by ingredient identity: for each
// distinct ingredient across the cart's recipes it sums the amounts and
// carries the ingredient's unit, which is consistent across lines because
// the unit is a property of the ingredient itself. Rows are ordered by
// ingredient name ascending, then unit: two ingredients may share a name
// as long as their units differ, so name alone does not order them.
func (s *ShoppingListService) BuildShoppingList(userID string) ([]models.ShoppingListItem, error) {
	lines, err := s.engagementRepo.CartLines(userID)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]*models.ShoppingListItem)
	for _, line := range lines {
		if item, ok := totals[line.IngredientID]; ok {
			item.TotalAmount += line.Amount
			continue
		}
		totals[line.IngredientID] = &models.ShoppingListItem{
			IngredientName:  line.Ingredient.Name,
			MeasurementUnit: line.Ingredient.MeasurementUnit,
			TotalAmount:     line.Amount,
		}
	}

	items := make([]models.ShoppingListItem, 0, len(totals))
	for _, item := range totals {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].IngredientName != items[j].IngredientName {
			return items[i].IngredientName < items[j].IngredientName
		}
		return items[i].MeasurementUnit < items[j].MeasurementUnit
	})
	return items, nil
}
