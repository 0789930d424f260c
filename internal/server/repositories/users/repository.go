// Package users declares the repository contract for account persistence.
package users

import (
	"context"

	"github.com/dmitrijs2005/tunedeck/internal/server/models"
)

// Repository defines operations on persisted user accounts.
type Repository interface {
	// Create stores a new user. A duplicate username results in
	// common.ErrConflict.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByID returns the user with the given identifier, or
	// common.ErrNotFound when absent.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByUsername returns the user with the given username, or
	// common.ErrNotFound when absent.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
