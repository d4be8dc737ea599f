// Package repository provides the data-access layer over the local
// store. Records are copied in and out of the store by value; callers
// never hold live store objects.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/nuzair/recipebox/internal/models"
)

// Users describes persistence operations for User records.
type Users interface {
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error

	// FindByID returns the user with the given id.
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// FindByUsername returns the user with the given username
	// (exact, case-sensitive match).
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// FindByToken returns the user whose stored session token equals
	// token.
	FindByToken(ctx context.Context, token string) (*models.User, error)

	// Save persists all mutable fields of an existing user record.
	Save(ctx context.Context, user *models.User) error

	// Delete removes the user record with the given id.
	Delete(ctx context.Context, id uuid.UUID) error
}
