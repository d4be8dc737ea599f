package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/nuzair/recipebox/internal/catalog"
	"github.com/nuzair/recipebox/internal/models"
	"github.com/nuzair/recipebox/internal/repository"
)

// RecipeService owns the in-memory cache of the scoped user's recipes
// and the static recipe-type catalog. The cache is repopulated
// wholesale from the store after every mutation.
//
// RecipeService is not safe for concurrent use; all calls are expected
// to come from a single caller at a time.
type RecipeService struct {
	recipes repository.Recipes
	catalog *catalog.Catalog
	log     *logrus.Logger

	cache         []models.Recipe
	loading       bool
	searchText    string
	selectedType  *catalog.RecipeType
	currentUserID *uuid.UUID
}

// NewRecipeService creates a new RecipeService instance.
func NewRecipeService(recipes repository.Recipes, cat *catalog.Catalog, log *logrus.Logger) *RecipeService {
	return &RecipeService{
		recipes: recipes,
		catalog: cat,
		log:     log,
	}
}

// SetCurrentUser sets the user scope. A non-nil id triggers an
// immediate re-fetch; nil clears the cache without touching the store.
func (s *RecipeService) SetCurrentUser(ctx context.Context, userID *uuid.UUID) {
	s.currentUserID = userID
	if userID != nil {
		s.FetchRecipes(ctx)
	} else {
		s.cache = nil
	}
}

// CurrentUserID returns the currently scoped user id, or nil.
func (s *RecipeService) CurrentUserID() *uuid.UUID {
	return s.currentUserID
}

// IsLoading reports whether a fetch is in progress.
func (s *RecipeService) IsLoading() bool {
	return s.loading
}

// Recipes returns the cached recipe list.
func (s *RecipeService) Recipes() []models.Recipe {
	return s.cache
}

// SetSearchText sets the free-text filter applied by FilteredRecipes.
func (s *RecipeService) SetSearchText(text string) {
	s.searchText = text
}

// SearchText returns the current free-text filter.
func (s *RecipeService) SearchText() string {
	return s.searchText
}

// SetSelectedType sets the type filter applied by FilteredRecipes. Nil
// clears the filter.
func (s *RecipeService) SetSelectedType(t *catalog.RecipeType) {
	s.selectedType = t
}

// SelectedType returns the current type filter, or nil.
func (s *RecipeService) SelectedType() *catalog.RecipeType {
	return s.selectedType
}

// FetchRecipes replaces the cache with the scoped user's recipes,
// ordered by updated timestamp descending. Fetch failures are logged
// and leave the cache at its prior value.
func (s *RecipeService) FetchRecipes(ctx context.Context) {
	userID := s.currentUserID
	if userID == nil {
		s.cache = nil
		return
	}

	s.loading = true
	defer func() { s.loading = false }()

	recipes, err := s.recipes.ListByUser(ctx, *userID)
	if err != nil {
		s.log.Errorf("Error fetching recipes: %v", err)
		return
	}
	s.cache = recipes
}

// FilteredRecipes applies the selected-type filter and the free-text
// filter (case-insensitive substring over name and ingredients) to the
// cache and returns the result sorted by updated timestamp descending.
// It is a pure projection, recomputed on every call.
func (s *RecipeService) FilteredRecipes() []models.Recipe {
	filtered := make([]models.Recipe, 0, len(s.cache))
	search := strings.ToLower(s.searchText)

	for _, r := range s.cache {
		if s.selectedType != nil && r.TypeID != s.selectedType.ID {
			continue
		}
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		filtered = append(filtered, r)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].UpdatedAt.After(filtered[j].UpdatedAt)
	})
	return filtered
}

func matchesSearch(r models.Recipe, search string) bool {
	if strings.Contains(strings.ToLower(r.Name), search) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), search) {
			return true
		}
	}
	return false
}

// AddRecipe persists a new recipe, assigning the scoped user id when
// the recipe has none, and refreshes the cache.
func (s *RecipeService) AddRecipe(ctx context.Context, recipe *models.Recipe) error {
	if recipe.UserID == uuid.Nil {
		if s.currentUserID == nil {
			return ErrInvalidData
		}
		recipe.UserID = *s.currentUserID
	}

	if err := s.normalize(recipe); err != nil {
		return err
	}

	if err := s.recipes.Create(ctx, recipe); err != nil {
		return fmt.Errorf("failed to add recipe: %w", err)
	}

	s.FetchRecipes(ctx)
	return nil
}

// UpdateRecipe overwrites all mutable fields of the store record
// matching both the recipe id and the scoped user id, then refreshes
// the cache. A caller cannot update another user's recipe even by id.
func (s *RecipeService) UpdateRecipe(ctx context.Context, recipe *models.Recipe) error {
	if s.currentUserID == nil {
		return ErrRecipeNotFound
	}

	existing, err := s.recipes.FindByIDAndUser(ctx, recipe.ID, *s.currentUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return fmt.Errorf("failed to look up recipe: %w", err)
	}

	if err := s.normalize(recipe); err != nil {
		return err
	}

	existing.Name = recipe.Name
	existing.TypeID = recipe.TypeID
	existing.UserID = *s.currentUserID
	existing.Image = recipe.Image
	existing.Ingredients = recipe.Ingredients
	existing.Steps = recipe.Steps
	existing.IsFavorite = recipe.IsFavorite
	existing.PrepTime = recipe.PrepTime
	existing.Servings = recipe.Servings

	if err := s.recipes.Save(ctx, existing); err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}

	s.FetchRecipes(ctx)
	return nil
}

// DeleteRecipe removes the store record matching both the recipe id
// and the scoped user id, then refreshes the cache.
func (s *RecipeService) DeleteRecipe(ctx context.Context, recipe *models.Recipe) error {
	if s.currentUserID == nil {
		return ErrRecipeNotFound
	}

	if _, err := s.recipes.FindByIDAndUser(ctx, recipe.ID, *s.currentUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return fmt.Errorf("failed to look up recipe: %w", err)
	}

	if err := s.recipes.Delete(ctx, recipe.ID, *s.currentUserID); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	s.FetchRecipes(ctx)
	return nil
}

// ToggleFavorite flips the favorite flag and delegates to UpdateRecipe.
func (s *RecipeService) ToggleFavorite(ctx context.Context, recipe *models.Recipe) error {
	updated := *recipe
	updated.IsFavorite = !updated.IsFavorite
	return s.UpdateRecipe(ctx, &updated)
}

// RecipeType looks up a type in the static catalog.
func (s *RecipeService) RecipeType(id string) (catalog.RecipeType, bool) {
	return s.catalog.Get(id)
}

// RecipeTypes returns the static recipe-type catalog.
func (s *RecipeService) RecipeTypes() []catalog.RecipeType {
	return s.catalog.Types()
}

// LoadSampleData seeds the example recipes for userID. It is a no-op
// when the scope does not match userID, and, unless forced, when the
// user already owns any recipe.
func (s *RecipeService) LoadSampleData(ctx context.Context, userID uuid.UUID, force bool) {
	if s.currentUserID == nil || *s.currentUserID != userID {
		s.log.Warn("currentUserId mismatch when loading sample data")
		return
	}

	if !force {
		exists, err := s.recipes.ExistsForUser(ctx, userID)
		if err != nil {
			s.log.Errorf("Error checking existing recipes: %v", err)
			return
		}
		if exists {
			s.log.WithField("user_id", userID).Debug("sample data already present, skipping")
			return
		}
	}

	added := 0
	for _, recipe := range sampleRecipes(userID) {
		r := recipe
		if err := s.AddRecipe(ctx, &r); err != nil {
			s.log.Errorf("Error adding sample recipe %s: %v", r.Name, err)
			continue
		}
		added++
	}
	s.log.WithFields(logrus.Fields{"user_id": userID, "count": added}).Info("sample recipes added")

	s.FetchRecipes(ctx)
}

// normalize trims the recipe's text fields, drops blank ingredients and
// steps, and rejects records that would violate the data model.
func (s *RecipeService) normalize(recipe *models.Recipe) error {
	recipe.Name = strings.TrimSpace(recipe.Name)
	recipe.Ingredients = trimBlank(recipe.Ingredients)
	recipe.Steps = trimBlank(recipe.Steps)

	if recipe.Name == "" {
		return ErrInvalidData
	}
	if _, ok := s.catalog.Get(recipe.TypeID); !ok {
		return ErrInvalidData
	}
	if len(recipe.Ingredients) == 0 || len(recipe.Steps) == 0 {
		return ErrInvalidData
	}
	if recipe.PrepTime < 0 || recipe.Servings < 1 {
		return ErrInvalidData
	}
	return nil
}

func trimBlank(list models.StringList) models.StringList {
	out := make(models.StringList, 0, len(list))
	for _, item := range list {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
