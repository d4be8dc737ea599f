package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nuzair/recipebox/internal/models"
)

// Register prompts for credentials and creates a new account.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Choose a password", a.out)
	if err != nil {
		return err
	}

	if err := a.auth.Register(ctx, username, password); err != nil {
		return err
	}

	user := a.auth.CurrentUser()
	fmt.Fprintf(a.out, "Welcome, %s!\n", user.Username)
	a.recipes.LoadSampleData(ctx, user.ID, false)
	return nil
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, username, password); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Welcome back, %s!\n", a.auth.CurrentUser().Username)
	return nil
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// DeleteAccount removes the account and its recipes after confirmation.
func (a *App) DeleteAccount(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Delete your account and all recipes? Type 'yes' to confirm", a.out)
	if err != nil {
		return err
	}
	if answer != "yes" {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}
	a.auth.DeleteAccount(ctx)
	fmt.Fprintln(a.out, "Account deleted.")
	return nil
}

// List prints the filtered recipe list, most recently updated first.
func (a *App) List(ctx context.Context) error {
	recipes := a.recipes.FilteredRecipes()
	if len(recipes) == 0 {
		fmt.Fprintln(a.out, "No recipes.")
		return nil
	}

	for i, r := range recipes {
		star := " "
		if r.IsFavorite {
			star = "*"
		}
		typeName := r.TypeID
		if t, ok := a.recipes.RecipeType(r.TypeID); ok {
			typeName = t.DisplayName
		}
		fmt.Fprintf(a.out, "%2d. %s %s [%s] %d min, serves %d\n",
			i+1, star, r.Name, typeName, r.PrepTime, r.Servings)
	}
	return nil
}

// Show prints the full detail of one recipe.
func (a *App) Show(ctx context.Context, args []string) error {
	recipe, err := a.recipeAt(args)
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, a.recipes.ShareText(recipe))
	return nil
}

// Add prompts for all recipe fields and persists a new recipe.
func (a *App) Add(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Recipe name", a.out)
	if err != nil {
		return err
	}

	typeIDs := make([]string, 0, len(a.recipes.RecipeTypes()))
	for _, t := range a.recipes.RecipeTypes() {
		typeIDs = append(typeIDs, t.ID)
	}
	typeID, err := getSimpleText(a.reader, "Type ("+strings.Join(typeIDs, ", ")+")", a.out)
	if err != nil {
		return err
	}

	ingredients, err := getLines(a.reader, "Ingredients", a.out)
	if err != nil {
		return err
	}
	steps, err := getLines(a.reader, "Steps", a.out)
	if err != nil {
		return err
	}
	prepTime, err := getInt(a.reader, "Prep time in minutes", 0, a.out)
	if err != nil {
		return err
	}
	servings, err := getInt(a.reader, "Servings", 1, a.out)
	if err != nil {
		return err
	}

	recipe := &models.Recipe{
		Name:        name,
		TypeID:      typeID,
		Ingredients: ingredients,
		Steps:       steps,
		PrepTime:    prepTime,
		Servings:    servings,
	}
	if err := a.recipes.AddRecipe(ctx, recipe); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %q.\n", recipe.Name)
	return nil
}

// Delete removes the selected recipe.
func (a *App) Delete(ctx context.Context, args []string) error {
	recipe, err := a.recipeAt(args)
	if err != nil {
		return err
	}
	if err := a.recipes.DeleteRecipe(ctx, recipe); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted %q.\n", recipe.Name)
	return nil
}

// Favorite toggles the favorite flag of the selected recipe.
func (a *App) Favorite(ctx context.Context, args []string) error {
	recipe, err := a.recipeAt(args)
	if err != nil {
		return err
	}
	if err := a.recipes.ToggleFavorite(ctx, recipe); err != nil {
		return err
	}
	return nil
}

// Share prints the plain-text share rendering of the selected recipe.
func (a *App) Share(ctx context.Context, args []string) error {
	recipe, err := a.recipeAt(args)
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, a.recipes.ShareText(recipe))
	return nil
}

// Search sets the free-text filter; no arguments clears it.
func (a *App) Search(ctx context.Context, args []string) error {
	a.recipes.SetSearchText(strings.Join(args, " "))
	return a.List(ctx)
}

// Filter sets the type filter; "none" or no arguments clears it.
func (a *App) Filter(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "none" {
		a.recipes.SetSelectedType(nil)
		return a.List(ctx)
	}
	t, ok := a.recipes.RecipeType(args[0])
	if !ok {
		return fmt.Errorf("unknown recipe type: %q", args[0])
	}
	a.recipes.SetSelectedType(&t)
	return a.List(ctx)
}

// Types prints the recipe-type catalog.
func (a *App) Types(ctx context.Context) error {
	for _, t := range a.recipes.RecipeTypes() {
		fmt.Fprintf(a.out, "%-10s %s\n", t.ID, t.DisplayName)
	}
	return nil
}

// Seed loads the sample recipes; "seed force" re-seeds even when
// recipes exist.
func (a *App) Seed(ctx context.Context, args []string) error {
	user := a.auth.CurrentUser()
	force := len(args) > 0 && args[0] == "force"
	a.recipes.LoadSampleData(ctx, user.ID, force)
	return a.List(ctx)
}

// ProfileImage reads an image file and stores it on the account.
func (a *App) ProfileImage(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: profile-image <path>")
	}
	image, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}
	a.auth.UpdateProfileImage(ctx, image)
	fmt.Fprintln(a.out, "Profile image updated.")
	return nil
}

// recipeAt resolves a 1-based index argument against the current
// filtered list.
func (a *App) recipeAt(args []string) (*models.Recipe, error) {
	recipes := a.recipes.FilteredRecipes()
	if len(recipes) == 0 {
		return nil, fmt.Errorf("no recipes")
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("which recipe? give a number from 'list'")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(recipes) {
		return nil, fmt.Errorf("no recipe numbered %q", args[0])
	}
	return &recipes[n-1], nil
}
