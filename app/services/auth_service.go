package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/trixtech/trixtech/app/models"
	"github.com/trixtech/trixtech/app/repositories"
	"github.com/trixtech/trixtech/pkg/auth"
)

// AuthService handles registration and login.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a user with a bcrypt-hashed password and issues a token.
// role defaults to customer when empty; the caller validates it against the
// allowed set before reaching here. Returns ErrEmailTaken on a duplicate.
func (s *AuthService) Register(name, email, password, role string) (string, models.User, error) {
	if role == "" {
		role = models.RoleCustomer
	}

	taken, err := s.users.ExistsByEmail(email)
	if err != nil {
		return "", models.User{}, fmt.Errorf("auth: check email: %w", err)
	}
	if taken {
		return "", models.User{}, ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", models.User{}, fmt.Errorf("auth: hash password: %w", err)
	}

	user := models.User{Name: name, Email: email, Password: hash, Role: role}
	if err := s.users.Create(&user); err != nil {
		// Unique index still backstops the pre-check under concurrent registration.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", models.User{}, ErrEmailTaken
		}
		return "", models.User{}, fmt.Errorf("auth: create user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", models.User{}, fmt.Errorf("auth: issue token: %w", err)
	}

	return token, user, nil
}

// Login verifies email+password and issues a token.
// Returns ErrUnauthorized for an unknown email or a wrong password; the two
// cases are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (string, models.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", models.User{}, ErrUnauthorized
		}
		return "", models.User{}, fmt.Errorf("auth: find user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", models.User{}, ErrUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", models.User{}, fmt.Errorf("auth: issue token: %w", err)
	}

	return token, user, nil
}
