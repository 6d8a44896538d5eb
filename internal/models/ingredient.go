package models

// Ingredient is catalog reference data. The (name, measurement_unit) pair
// is globally unique: "sugar/g" and "sugar/tbsp" are distinct ingredients.
type Ingredient struct {
	ID              string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name            string `json:"name" gorm:"not null;uniqueIndex:idx_ingredient_name_unit;type:varchar(200)" validate:"required,max=200"`
	MeasurementUnit string `json:"measurement_unit" gorm:"not null;uniqueIndex:idx_ingredient_name_unit;type:varchar(20)" validate:"required,max=20"`
}
