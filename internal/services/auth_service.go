package services

import (
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"recipebox/internal/models"
	"recipebox/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// usernameRe matches the allowed username alphabet: word characters plus
// the symbols . @ + -
var usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour, // Token valid for 24 hours
	}
}

// ValidateUsername enforces the username rules: restricted character set
// and the reserved value "me" (which collides with the /users/me route).
func ValidateUsername(username string) error {
	if !usernameRe.MatchString(username) {
		return models.NewValidationError(fmt.Sprintf(
			"username %q contains forbidden characters", username))
	}
	if strings.EqualFold(username, "me") {
		return models.NewValidationError(`username "me" is reserved`)
	}
	return nil
}

// RegisterUser registers a new user, hashes their password, and saves them
// to the database.
func (s *AuthService) RegisterUser(req models.RegisterRequest) (*models.User, error) {
	if err := ValidateUsername(req.Username); err != nil {
		return nil, err
	}

	// Check if username or email already exists. A not-found miss is the
	// good case; any other lookup error aborts the registration. The unique
	// indexes stay the last line of defense against a concurrent
	// registration.
	if existing, err := s.userRepo.GetByUsername(req.Username); err != nil && !models.IsNotFound(err) {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError(fmt.Sprintf("username %q already taken", req.Username))
	}
	if existing, err := s.userRepo.GetByEmail(req.Email); err != nil && !models.IsNotFound(err) {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError(fmt.Sprintf("email %q already registered", req.Email))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// LoginUser authenticates a user by email and returns a JWT token.
func (s *AuthService) LoginUser(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		// Do not reveal whether the email exists.
		return "", models.NewUnauthorizedError("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", models.NewUnauthorizedError("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(s.tokenDurat).Unix(), // Token expiration time
		"iat":      time.Now().Unix(),                   // Issued at time
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// SetPassword changes the user's password after verifying the current one.
// The new password must differ from the current one.
func (s *AuthService) SetPassword(userID string, req models.SetPasswordRequest) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return models.NewValidationError("current password is incorrect")
	}
	if req.NewPassword == req.CurrentPassword {
		return models.NewValidationError("new password must differ from the current one")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.userRepo.UpdatePassword(userID, string(hashed))
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
