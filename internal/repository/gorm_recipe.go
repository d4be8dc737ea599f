package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nuzair/recipebox/internal/models"
)

// GormRecipes implements Recipes on top of a gorm-managed store.
type GormRecipes struct {
	db *gorm.DB
}

// NewGormRecipes returns a Recipes repository bound to db.
func NewGormRecipes(db *gorm.DB) *GormRecipes {
	return &GormRecipes{db: db}
}

func (r *GormRecipes) Create(ctx context.Context, recipe *models.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *GormRecipes) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *GormRecipes) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.WithContext(ctx).
		First(&recipe, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *GormRecipes) Save(ctx context.Context, recipe *models.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *GormRecipes) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.Recipe{}, "id = ? AND user_id = ?", id, userID).Error
}

func (r *GormRecipes) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.Recipe{}, "user_id = ?", userID).Error
}

func (r *GormRecipes) ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	var recipe models.Recipe
	err := r.db.WithContext(ctx).
		Select("id").
		First(&recipe, "user_id = ?", userID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
