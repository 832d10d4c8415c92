package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/AZHamidaddin/CPIT490-FinalProject/internal/models"
	"github.com/AZHamidaddin/CPIT490-FinalProject/internal/password"
	"github.com/AZHamidaddin/CPIT490-FinalProject/internal/store"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Account handles registration and login.
type Account struct {
	store store.Store
}

func NewAccount(s store.Store) *Account {
	return &Account{store: s}
}

// Register validates input and the password policy, rejects duplicate emails,
// and persists a new user. The stored password is a bcrypt hash, never the
// plaintext.
func (a *Account) Register(ctx context.Context, name, email, pw string) (*models.User, error) {
	if name == "" || email == "" || pw == "" {
		return nil, &ValidationError{Message: "All fields are required"}
	}
	if !emailPattern.MatchString(email) {
		return nil, &ValidationError{Message: "Invalid email format. Please use a valid email address (e.g., example@domain.com)"}
	}
	if violations := password.Validate(pw, name, email); len(violations) > 0 {
		return nil, &ValidationError{Message: "Password validation failed", Errors: violations}
	}

	_, err := a.store.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, &ConflictError{Message: "Email already registered"}
	case !errors.Is(err, store.ErrNotFound):
		return nil, fmt.Errorf("check existing email: %w", err)
	}

	hash, err := password.Hash(pw)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &models.User{
		Name:        name,
		Email:       email,
		Password:    hash,
		ViewHistory: []models.WatchEntry{},
		CreatedAt:   time.Now().UTC(),
	}
	if err := a.store.CreateUser(ctx, u); err != nil {
		// The unique index can still fire if two registrations race.
		if errors.Is(err, store.ErrDuplicateEmail) {
			return nil, &ConflictError{Message: "Email already registered"}
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Login checks credentials and returns the user including the full watch
// history. Unknown emails and wrong passwords produce the identical error.
func (a *Account) Login(ctx context.Context, email, pw string) (*models.User, error) {
	if email == "" || pw == "" {
		return nil, &ValidationError{Message: "Email and password are required"}
	}
	u, err := a.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &AuthError{Message: "Invalid email or password"}
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !password.Check(pw, u.Password) {
		return nil, &AuthError{Message: "Invalid email or password"}
	}
	if u.ViewHistory == nil {
		u.ViewHistory = []models.WatchEntry{}
	}
	return u, nil
}

// GetByEmail backs the account inspection endpoint.
func (a *Account) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := a.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &NotFoundError{Message: "User not found"}
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}
