package service

import (
	"fmt"
	"strings"

	"github.com/nuzair/recipebox/internal/models"
)

// ShareText renders a plain-text version of a recipe for sharing with
// other applications.
func (s *RecipeService) ShareText(recipe *models.Recipe) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Check out this recipe: %s\n\n", recipe.Name)

	if t, ok := s.catalog.Get(recipe.TypeID); ok {
		fmt.Fprintf(&b, "Category: %s\n", t.DisplayName)
	}

	fmt.Fprintf(&b, "Prep Time: %d minutes\n", recipe.PrepTime)
	fmt.Fprintf(&b, "Servings: %d\n\n", recipe.Servings)

	b.WriteString("Ingredients:\n")
	for i, ingredient := range recipe.Ingredients {
		fmt.Fprintf(&b, "%d. %s\n", i+1, ingredient)
	}

	b.WriteString("\nInstructions:\n")
	for i, step := range recipe.Steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}

	return b.String()
}
