package repositories

import (
	"recipebox/internal/models"
)

// SubscriptionRepository defines the interface for the follow graph.
type SubscriptionRepository interface {
	Create(subscriberID, authorID string) error
	Delete(subscriberID, authorID string) error
	Exists(subscriberID, authorID string) (bool, error)
	// ListAuthors returns every author the subscriber follows.
	ListAuthors(subscriberID string) ([]models.User, error)
}
