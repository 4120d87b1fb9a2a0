package store

import (
	"context"
	"errors"

	"kassa/internal/domain" // Importing domain models

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// UserStore persists account credentials.
type UserStore struct {
	db *gorm.DB
}

// NewUserStore wraps a database handle into a credential store.
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Register creates a new account and returns its ID. Uniqueness is a
// case-sensitive exact match on the username; duplicates fail with
// domain.ErrUsernameTaken regardless of password.
func (s *UserStore) Register(ctx context.Context, username, password string) (uint, error) {
	var existing domain.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&existing).Error
	if err == nil {
		return 0, domain.ErrUsernameTaken // Username already registered
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err // Store failure, not a taken name
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	user := domain.User{Username: username, Password: string(hash)}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		// Two concurrent registrations can both pass the lookup; the unique
		// index catches the loser here.
		return 0, domain.ErrUsernameTaken
	}
	return user.ID, nil
}

// Authenticate verifies a login attempt and returns the user ID. Unknown
// usernames and wrong passwords fail uniformly with
// domain.ErrInvalidCredentials so account existence never leaks.
func (s *UserStore) Authenticate(ctx context.Context, username, password string) (uint, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return 0, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return 0, domain.ErrInvalidCredentials
	}
	return user.ID, nil
}
