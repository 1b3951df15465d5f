package models

import "strings"

// Ingredient is one requirement of a recipe. Qty is free text, never parsed.
type Ingredient struct {
	Name string `json:"name"`
	Qty  string `json:"qty"`
}

// Recipe is a stored recipe. Image is a reference (URL or "tg:<file_id>"),
// not owned data.
type Recipe struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions string       `json:"instructions"`
	Image        string       `json:"image"`
	Category     string       `json:"category"`
}

// Clone returns a deep copy of the recipe
func (r Recipe) Clone() Recipe {
	out := r
	out.Ingredients = append([]Ingredient(nil), r.Ingredients...)
	return out
}

// RecipeStatus is derived from a recipe and the pantry on every view.
// It is never persisted.
type RecipeStatus struct {
	Missing         []Ingredient `json:"missing"`
	MatchPercentage float64      `json:"match_percentage"`
	CanCook         bool         `json:"can_cook"`
}

// RankedRecipe is a recipe annotated with its current status
type RankedRecipe struct {
	Recipe Recipe       `json:"recipe"`
	Status RecipeStatus `json:"status"`
}

// SearchMode selects which recipe field a search query is matched against
type SearchMode string

const (
	// SearchByName matches the query against the recipe name
	SearchByName SearchMode = "name"
	// SearchByIngredient matches the query against ingredient names
	SearchByIngredient SearchMode = "ingredients"
)

// ParseSearchMode converts user input to a SearchMode, defaulting to SearchByName
func ParseSearchMode(s string) SearchMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ingredients", "ingredient", "by_ingredient":
		return SearchByIngredient
	default:
		return SearchByName
	}
}

// Label returns a short description for the presentation layer
func (m SearchMode) Label() string {
	if m == SearchByIngredient {
		return "by ingredient"
	}
	return "by name"
}
