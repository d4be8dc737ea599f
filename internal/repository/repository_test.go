package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nuzair/recipebox/internal/database"
	"github.com/nuzair/recipebox/internal/models"
	"github.com/nuzair/recipebox/internal/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	return db
}

func TestUsersCreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	users := repository.NewGormUsers(db)
	ctx := context.Background()

	token := "tok-1"
	user := &models.User{Username: "alice", PasswordHash: "hash", Token: &token}
	require.NoError(t, users.Create(ctx, user))
	require.NotEqual(t, uuid.Nil, user.ID)

	byID, err := users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	byName, err := users.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byToken, err := users.FindByToken(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byToken.ID)

	_, err = users.FindByUsername(ctx, "Alice")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUsersSaveClearsToken(t *testing.T) {
	db := setupTestDB(t)
	users := repository.NewGormUsers(db)
	ctx := context.Background()

	token := "tok-1"
	user := &models.User{Username: "alice", PasswordHash: "hash", Token: &token}
	require.NoError(t, users.Create(ctx, user))

	user.Token = nil
	require.NoError(t, users.Save(ctx, user))

	_, err := users.FindByToken(ctx, "tok-1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUsersDelete(t *testing.T) {
	db := setupTestDB(t)
	users := repository.NewGormUsers(db)
	ctx := context.Background()

	user := &models.User{Username: "alice", PasswordHash: "hash"}
	require.NoError(t, users.Create(ctx, user))
	require.NoError(t, users.Delete(ctx, user.ID))

	_, err := users.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func newRecipe(userID uuid.UUID, name string) *models.Recipe {
	return &models.Recipe{
		Name:        name,
		TypeID:      "dinner",
		UserID:      userID,
		Ingredients: models.StringList{"x"},
		Steps:       models.StringList{"y"},
		Servings:    1,
	}
}

func TestRecipesListByUserOrder(t *testing.T) {
	db := setupTestDB(t)
	recipes := repository.NewGormRecipes(db)
	ctx := context.Background()
	userID := uuid.New()

	older := newRecipe(userID, "older")
	require.NoError(t, recipes.Create(ctx, older))
	time.Sleep(5 * time.Millisecond)
	newer := newRecipe(userID, "newer")
	require.NoError(t, recipes.Create(ctx, newer))

	list, err := recipes.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "newer", list[0].Name)
	assert.Equal(t, "older", list[1].Name)

	// Touching the older recipe moves it to the front.
	time.Sleep(5 * time.Millisecond)
	older.IsFavorite = true
	require.NoError(t, recipes.Save(ctx, older))

	list, err = recipes.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "older", list[0].Name)
}

func TestRecipesOwnershipScoping(t *testing.T) {
	db := setupTestDB(t)
	recipes := repository.NewGormRecipes(db)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	r := newRecipe(alice, "tea")
	require.NoError(t, recipes.Create(ctx, r))

	_, err := recipes.FindByIDAndUser(ctx, r.ID, bob)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	found, err := recipes.FindByIDAndUser(ctx, r.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, "tea", found.Name)

	// Delete scoped to the wrong user leaves the record in place.
	require.NoError(t, recipes.Delete(ctx, r.ID, bob))
	_, err = recipes.FindByIDAndUser(ctx, r.ID, alice)
	assert.NoError(t, err)

	require.NoError(t, recipes.Delete(ctx, r.ID, alice))
	_, err = recipes.FindByIDAndUser(ctx, r.ID, alice)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRecipesExistsForUser(t *testing.T) {
	db := setupTestDB(t)
	recipes := repository.NewGormRecipes(db)
	ctx := context.Background()
	userID := uuid.New()

	exists, err := recipes.ExistsForUser(ctx, userID)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, recipes.Create(ctx, newRecipe(userID, "tea")))

	exists, err = recipes.ExistsForUser(ctx, userID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRecipesDeleteByUser(t *testing.T) {
	db := setupTestDB(t)
	recipes := repository.NewGormRecipes(db)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	require.NoError(t, recipes.Create(ctx, newRecipe(alice, "tea")))
	require.NoError(t, recipes.Create(ctx, newRecipe(alice, "soup")))
	require.NoError(t, recipes.Create(ctx, newRecipe(bob, "pie")))

	require.NoError(t, recipes.DeleteByUser(ctx, alice))

	exists, err := recipes.ExistsForUser(ctx, alice)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = recipes.ExistsForUser(ctx, bob)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRecipeListRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	recipes := repository.NewGormRecipes(db)
	ctx := context.Background()
	userID := uuid.New()

	r := newRecipe(userID, "tea")
	r.Ingredients = models.StringList{"Water", "Tea bag"}
	r.Steps = models.StringList{"Boil", "Steep"}
	require.NoError(t, recipes.Create(ctx, r))

	found, err := recipes.FindByIDAndUser(ctx, r.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, models.StringList{"Water", "Tea bag"}, found.Ingredients)
	assert.Equal(t, models.StringList{"Boil", "Steep"}, found.Steps)
}
