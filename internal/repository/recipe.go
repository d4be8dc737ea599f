package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/nuzair/recipebox/internal/models"
)

// Recipes describes persistence operations for Recipe records. Every
// lookup that can mutate or reveal a record is scoped by the owning
// user id, which is what enforces ownership isolation.
type Recipes interface {
	// Create inserts a new recipe record.
	Create(ctx context.Context, recipe *models.Recipe) error

	// ListByUser returns all recipes owned by userID, ordered by
	// updated timestamp descending.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error)

	// FindByIDAndUser returns the recipe matching both id and owning
	// user id.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*models.Recipe, error)

	// Save persists all mutable fields of an existing recipe record.
	Save(ctx context.Context, recipe *models.Recipe) error

	// Delete removes the recipe matching both id and owning user id.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// DeleteByUser removes every recipe owned by userID.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error

	// ExistsForUser reports whether userID owns at least one recipe.
	ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error)
}
