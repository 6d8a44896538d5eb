package repositories

import (
	"errors"
	"fmt"

	"recipebox/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMSubscriptionRepository is a GORM implementation of SubscriptionRepository.
type GORMSubscriptionRepository struct {
	db *gorm.DB
}

// NewGORMSubscriptionRepository creates a new instance of GORMSubscriptionRepository.
func NewGORMSubscriptionRepository(db *gorm.DB) *GORMSubscriptionRepository {
	return &GORMSubscriptionRepository{
		db: db,
	}
}

// Create inserts a follow edge; a duplicate pair fails with a conflict.
func (r *GORMSubscriptionRepository) Create(subscriberID, authorID string) error {
	subscription := models.Subscription{
		ID:           uuid.New().String(),
		SubscriberID: subscriberID,
		AuthorID:     authorID,
	}
	if err := r.db.Create(&subscription).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("already subscribed to this author")
		}
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

// Delete removes the follow edge for the pair.
func (r *GORMSubscriptionRepository) Delete(subscriberID, authorID string) error {
	res := r.db.Where("subscriber_id = ? AND author_id = ?", subscriberID, authorID).
		Delete(&models.Subscription{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete subscription: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return &models.AppError{Code: models.CodeNotFound, Message: "not subscribed to this author"}
	}
	return nil
}

// Exists reports whether the subscriber follows the author.
func (r *GORMSubscriptionRepository) Exists(subscriberID, authorID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).
		Where("subscriber_id = ? AND author_id = ?", subscriberID, authorID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check subscription: %w", err)
	}
	return count > 0, nil
}

// ListAuthors returns the authors the subscriber follows, oldest
// subscription first.
func (r *GORMSubscriptionRepository) ListAuthors(subscriberID string) ([]models.User, error) {
	var authors []models.User
	err := r.db.
		Joins("JOIN subscriptions ON subscriptions.author_id = users.id").
		Where("subscriptions.subscriber_id = ?", subscriberID).
		Order("subscriptions.created_at ASC").
		Find(&authors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribed authors: %w", err)
	}
	return authors, nil
}
