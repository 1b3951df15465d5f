// Package matcher decides which recipes can be cooked from the pantry and
// ranks them by how complete they are.
package matcher

import (
	"sort"

	"github.com/korjavin/pantrychef/pkg/models"
	"github.com/korjavin/pantrychef/pkg/textnorm"
)

// ComputeStatus compares the ingredients a recipe needs with the pantry.
// A requirement is satisfied only by a pantry item that normalizes to exactly
// the same text; there is no substring or fuzzy matching here.
func ComputeStatus(recipe models.Recipe, pantry []string) models.RecipeStatus {
	available := make(map[string]bool, len(pantry))
	for _, item := range pantry {
		available[textnorm.Normalize(item)] = true
	}
	return status(recipe, available)
}

func status(recipe models.Recipe, available map[string]bool) models.RecipeStatus {
	missing := make([]models.Ingredient, 0)
	for _, ingredient := range recipe.Ingredients {
		if !available[textnorm.Normalize(ingredient.Name)] {
			missing = append(missing, ingredient)
		}
	}

	return models.RecipeStatus{
		Missing:         missing,
		MatchPercentage: matchPercentage(len(recipe.Ingredients), len(missing)),
		CanCook:         len(missing) == 0,
	}
}

// matchPercentage treats a recipe without requirements as complete.
func matchPercentage(total, missing int) float64 {
	if total == 0 {
		return 100
	}
	return 100 * float64(total-missing) / float64(total)
}

// Matches reports whether recipe passes the search query in the given mode.
// An empty query matches everything.
func Matches(recipe models.Recipe, query string, mode models.SearchMode) bool {
	q := textnorm.Normalize(query)
	if q == "" {
		return true
	}
	return matches(recipe, q, mode)
}

func matches(recipe models.Recipe, normalizedQuery string, mode models.SearchMode) bool {
	if mode == models.SearchByIngredient {
		for _, ingredient := range recipe.Ingredients {
			if textnorm.Contains(ingredient.Name, normalizedQuery) {
				return true
			}
		}
		return false
	}
	return textnorm.Contains(recipe.Name, normalizedQuery)
}

// FilterAndRank keeps the recipes matching query, annotates each with its
// status and sorts cookable recipes first, then by match percentage
// descending. Ties are broken by normalized name, then id.
func FilterAndRank(recipes []models.Recipe, pantry []string, query string, mode models.SearchMode) []models.RankedRecipe {
	q := textnorm.Normalize(query)

	available := make(map[string]bool, len(pantry))
	for _, item := range pantry {
		available[textnorm.Normalize(item)] = true
	}

	ranked := make([]models.RankedRecipe, 0, len(recipes))
	for _, recipe := range recipes {
		if q != "" && !matches(recipe, q, mode) {
			continue
		}
		ranked = append(ranked, models.RankedRecipe{
			Recipe: recipe,
			Status: status(recipe, available),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Status.CanCook != b.Status.CanCook {
			return a.Status.CanCook
		}
		if a.Status.MatchPercentage != b.Status.MatchPercentage {
			return a.Status.MatchPercentage > b.Status.MatchPercentage
		}
		an, bn := textnorm.Normalize(a.Recipe.Name), textnorm.Normalize(b.Recipe.Name)
		if an != bn {
			return an < bn
		}
		return a.Recipe.ID < b.Recipe.ID
	})

	return ranked
}
