package services_test

import (
	"errors"
	"testing"

	"recipebox/internal/models"
	"recipebox/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, services.ValidateUsername("alice"))
	assert.NoError(t, services.ValidateUsername("a.lice@example+one-two"))

	err := services.ValidateUsername("alice smith")
	assertAppErrorCode(t, err, models.CodeValidation)

	err = services.ValidateUsername("кухня!")
	assertAppErrorCode(t, err, models.CodeValidation)

	// "me" collides with the /users/me route and is reserved.
	err = services.ValidateUsername("me")
	assertAppErrorCode(t, err, models.CodeValidation)
	err = services.ValidateUsername("ME")
	assertAppErrorCode(t, err, models.CodeValidation)
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, testSecret)

	req := models.RegisterRequest{
		Email:     "alice@example.com",
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Liddell",
		Password:  "plain-password",
	}

	mockRepo.On("GetByUsername", "alice").
		Return(nil, models.NewNotFoundError("user", "alice")).Once()
	mockRepo.On("GetByEmail", "alice@example.com").
		Return(nil, models.NewNotFoundError("user", "alice@example.com")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(0).(*models.User)
			// The stored password must be a bcrypt hash, never the plaintext.
			assert.NotEqual(t, "plain-password", user.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("plain-password")))
		}).
		Return(nil).Once()

	user, err := service.RegisterUser(req)

	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUser_UsernameTaken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, testSecret)

	mockRepo.On("GetByUsername", "alice").
		Return(&models.User{ID: "user-1", Username: "alice"}, nil).Once()

	_, err := service.RegisterUser(models.RegisterRequest{
		Email:    "other@example.com",
		Username: "alice",
		Password: "secret",
	})

	assertAppErrorCode(t, err, models.CodeConflict)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_RegisterUser_LookupFailure(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, testSecret)

	// A failed lookup is not a clean miss; registration must not proceed.
	mockRepo.On("GetByUsername", "alice").
		Return(nil, errors.New("connection refused")).Once()

	_, err := service.RegisterUser(models.RegisterRequest{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "secret",
	})

	assert.Error(t, err)
	assert.False(t, models.IsNotFound(err))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, testSecret)

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	mockRepo.On("GetByEmail", "alice@example.com").
		Return(&models.User{ID: "user-1", Username: "alice", Email: "alice@example.com", Password: string(hashed)}, nil)

	tokenString, err := service.LoginUser("alice@example.com", "correct-password")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	// The token must round-trip through ValidateToken and carry the user id.
	claims, err := service.ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "alice", claims["username"])

	_, err = service.LoginUser("alice@example.com", "wrong-password")
	assertAppErrorCode(t, err, models.CodeUnauthorized)
}

func TestAuthService_LoginUser_UnknownEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, testSecret)

	mockRepo.On("GetByEmail", "ghost@example.com").
		Return(nil, models.NewNotFoundError("user", "ghost@example.com")).Once()

	_, err := service.LoginUser("ghost@example.com", "whatever")
	assertAppErrorCode(t, err, models.CodeUnauthorized)
}

func TestAuthService_SetPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, testSecret)

	hashed, err := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	mockRepo.On("GetByID", "user-1").
		Return(&models.User{ID: "user-1", Password: string(hashed)}, nil)
	mockRepo.On("UpdatePassword", "user-1", mock.AnythingOfType("string")).
		Return(nil).Once()

	err = service.SetPassword("user-1", models.SetPasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "new-password",
	})
	assert.NoError(t, err)

	err = service.SetPassword("user-1", models.SetPasswordRequest{
		CurrentPassword: "wrong-password",
		NewPassword:     "new-password",
	})
	assertAppErrorCode(t, err, models.CodeValidation)

	err = service.SetPassword("user-1", models.SetPasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "old-password",
	})
	assertAppErrorCode(t, err, models.CodeValidation)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	service := services.NewAuthService(new(MockUserRepository), testSecret)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "user-1"})
	forgedString, err := forged.SignedString([]byte("another-secret"))
	assert.NoError(t, err)

	_, err = service.ValidateToken(forgedString)
	assert.Error(t, err)
}
