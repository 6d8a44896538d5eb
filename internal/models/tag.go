package models

// Tag labels recipes for filtering. Name, slug and color are each unique.
type Tag struct {
	ID    string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name  string `json:"name" gorm:"not null;uniqueIndex;type:varchar(200)" validate:"required,max=200"`
	Slug  string `json:"slug" gorm:"not null;uniqueIndex;type:varchar(200)" validate:"required,max=200"`
	Color string `json:"color" gorm:"not null;uniqueIndex;type:varchar(7)" validate:"required,hexcolor"`
}
