package service

import (
	"github.com/google/uuid"

	"github.com/nuzair/recipebox/internal/models"
)

// sampleRecipes returns the example recipes seeded for a fresh user.
func sampleRecipes(userID uuid.UUID) []models.Recipe {
	return []models.Recipe{
		{
			Name:        "Pancakes",
			TypeID:      "breakfast",
			UserID:      userID,
			Ingredients: models.StringList{"2 cups flour", "2 eggs", "1.5 cups milk", "2 tbsp butter", "2 tbsp sugar", "1 tsp baking powder", "1/2 tsp salt"},
			Steps:       models.StringList{"Mix dry ingredients", "Beat eggs and milk together", "Combine wet and dry ingredients", "Melt butter and add to batter", "Cook on griddle until bubbles form", "Flip and cook until golden"},
			PrepTime:    20,
			Servings:    4,
		},
		{
			Name:        "Caesar Salad",
			TypeID:      "salad",
			UserID:      userID,
			Ingredients: models.StringList{"Romaine lettuce", "Parmesan cheese", "Croutons", "Caesar dressing", "Lemon juice", "Black pepper"},
			Steps:       models.StringList{"Wash and chop lettuce", "Add dressing and toss", "Top with parmesan and croutons", "Add lemon juice and pepper to taste"},
			PrepTime:    15,
			Servings:    2,
		},
		{
			Name:        "Spaghetti Carbonara",
			TypeID:      "dinner",
			UserID:      userID,
			Ingredients: models.StringList{"400g spaghetti", "200g pancetta", "4 eggs", "100g Pecorino Romano", "Black pepper", "Salt"},
			Steps:       models.StringList{"Cook spaghetti al dente", "Fry pancetta until crispy", "Beat eggs with cheese", "Drain pasta, reserve water", "Mix pasta with pancetta", "Remove from heat, add egg mixture", "Toss quickly, add pasta water if needed"},
			PrepTime:    25,
			Servings:    4,
		},
		{
			Name:        "Chocolate Chip Cookies",
			TypeID:      "dessert",
			UserID:      userID,
			Ingredients: models.StringList{"2.25 cups flour", "1 cup butter", "0.75 cup sugar", "0.75 cup brown sugar", "2 eggs", "1 tsp vanilla", "1 tsp baking soda", "1 tsp salt", "2 cups chocolate chips"},
			Steps:       models.StringList{"Preheat oven to 375°F", "Cream butter and sugars", "Beat in eggs and vanilla", "Mix in flour, baking soda, and salt", "Stir in chocolate chips", "Drop onto baking sheets", "Bake 9-11 minutes"},
			PrepTime:    30,
			Servings:    48,
		},
		{
			Name:        "Greek Yogurt Parfait",
			TypeID:      "snack",
			UserID:      userID,
			Ingredients: models.StringList{"Greek yogurt", "Granola", "Fresh berries", "Honey", "Chia seeds"},
			Steps:       models.StringList{"Layer yogurt in glass", "Add granola layer", "Add berries", "Drizzle with honey", "Top with chia seeds"},
			PrepTime:    5,
			Servings:    1,
		},
		{
			Name:        "Tomato Soup",
			TypeID:      "soup",
			UserID:      userID,
			Ingredients: models.StringList{"6 large tomatoes", "1 onion", "3 cloves garlic", "2 cups vegetable broth", "1/2 cup cream", "Basil", "Salt", "Pepper"},
			Steps:       models.StringList{"Roast tomatoes at 400°F for 30 min", "Sauté onion and garlic", "Add roasted tomatoes and broth", "Simmer for 15 minutes", "Blend until smooth", "Stir in cream and basil", "Season to taste"},
			PrepTime:    45,
			Servings:    4,
		},
		{
			Name:        "Bruschetta",
			TypeID:      "appetizer",
			UserID:      userID,
			Ingredients: models.StringList{"Baguette", "4 tomatoes", "2 cloves garlic", "Fresh basil", "Olive oil", "Balsamic vinegar", "Salt", "Pepper"},
			Steps:       models.StringList{"Slice and toast baguette", "Dice tomatoes", "Mince garlic and basil", "Mix tomatoes, garlic, basil", "Add oil and vinegar", "Season with salt and pepper", "Top bread with mixture"},
			PrepTime:    15,
			Servings:    6,
		},
	}
}
