package models

import "time"

// User represents an account that can publish recipes and follow authors.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(254)" validate:"required,email"`
	Username  string    `json:"username" gorm:"uniqueIndex;type:varchar(150)" validate:"required,min=3,max=150"`
	FirstName string    `json:"first_name" gorm:"type:varchar(150)" validate:"required,max=150"`
	LastName  string    `json:"last_name" gorm:"type:varchar(150)" validate:"required,max=150"`
	Password  string    `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	IsAdmin   bool      `json:"-" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Subscription is a directed follow edge between two users.
// The (subscriber, author) pair is unique; self-subscription is rejected
// at the service layer before this row is ever written.
type Subscription struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	SubscriberID string    `json:"subscriber_id" gorm:"not null;uniqueIndex:idx_subscriber_author;type:varchar(36)"`
	AuthorID     string    `json:"author_id" gorm:"not null;uniqueIndex:idx_subscriber_author;type:varchar(36)"`
	CreatedAt    time.Time `json:"created_at"`

	Subscriber User `json:"-" gorm:"foreignKey:SubscriberID"`
	Author     User `json:"-" gorm:"foreignKey:AuthorID"`
}
