package services

import (
	"recipebox/internal/models"
	"recipebox/internal/repositories"
)

// UserService assembles user profiles, annotating each with whether the
// viewer follows them.
type UserService struct {
	userRepo         repositories.UserRepository
	subscriptionRepo repositories.SubscriptionRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository, subscriptionRepo repositories.SubscriptionRepository) *UserService {
	return &UserService{
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// GetProfile returns the user's profile for the viewer. An empty viewerID
// means an anonymous request and yields is_subscribed=false.
func (s *UserService) GetProfile(userID, viewerID string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	isSubscribed := false
	if viewerID != "" && viewerID != userID {
		if isSubscribed, err = s.subscriptionRepo.Exists(viewerID, userID); err != nil {
			return nil, err
		}
	}
	response := models.NewUserResponse(*user, isSubscribed)
	return &response, nil
}

// ListProfiles returns every user's profile for the viewer.
func (s *UserService) ListProfiles(viewerID string) ([]models.UserResponse, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}
	responses := make([]models.UserResponse, 0, len(users))
	for i := range users {
		isSubscribed := false
		if viewerID != "" && viewerID != users[i].ID {
			var err error
			if isSubscribed, err = s.subscriptionRepo.Exists(viewerID, users[i].ID); err != nil {
				return nil, err
			}
		}
		responses = append(responses, models.NewUserResponse(users[i], isSubscribed))
	}
	return responses, nil
}
