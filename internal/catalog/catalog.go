// Package catalog holds the static recipe-type catalog. The catalog is
// loaded once from a bundled JSON resource and is read-only for the
// lifetime of the process.
package catalog

import (
	_ "embed"
	"encoding/json"
)

//go:embed recipetypes.json
var recipeTypesJSON []byte

// RecipeType describes one entry of the static recipe-type catalog.
type RecipeType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	IconName    string `json:"iconName"`
}

type recipeTypesResponse struct {
	RecipeTypes []RecipeType `json:"recipeTypes"`
}

// Catalog is an immutable, ordered set of recipe types with id lookup.
type Catalog struct {
	types []RecipeType
	byID  map[string]RecipeType
}

// Load parses the embedded recipe-type resource. A malformed resource
// degrades to an empty catalog rather than failing startup.
func Load() *Catalog {
	return loadFrom(recipeTypesJSON)
}

func loadFrom(data []byte) *Catalog {
	var resp recipeTypesResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return &Catalog{byID: map[string]RecipeType{}}
	}

	c := &Catalog{
		types: resp.RecipeTypes,
		byID:  make(map[string]RecipeType, len(resp.RecipeTypes)),
	}
	for _, t := range resp.RecipeTypes {
		c.byID[t.ID] = t
	}
	return c
}

// Types returns all recipe types in resource order.
func (c *Catalog) Types() []RecipeType {
	out := make([]RecipeType, len(c.types))
	copy(out, c.types)
	return out
}

// Get returns the recipe type with the given id.
func (c *Catalog) Get(id string) (RecipeType, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// Len returns the number of types in the catalog.
func (c *Catalog) Len() int {
	return len(c.types)
}
