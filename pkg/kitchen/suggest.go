package kitchen

import (
	"github.com/sahilm/fuzzy"

	"github.com/korjavin/pantrychef/pkg/models"
	"github.com/korjavin/pantrychef/pkg/textnorm"
)

// SuggestPantryItems returns up to n pantry items that fuzzily resemble
// query. It is used for "did you mean" hints, never for cookability.
func (k *Kitchen) SuggestPantryItems(query string, n int) []string {
	if n <= 0 {
		return nil
	}
	items := k.Pantry()
	matches := fuzzy.Find(textnorm.Normalize(query), items)

	out := make([]string, 0, n)
	for _, m := range matches {
		if len(out) == n {
			break
		}
		out = append(out, m.Str)
	}
	return out
}

// SuggestRecipes returns up to n recipes whose normalized names fuzzily
// resemble query, best match first
func (k *Kitchen) SuggestRecipes(query string, n int) []models.Recipe {
	if n <= 0 {
		return nil
	}
	list := k.Recipes()
	names := make([]string, len(list))
	for i, r := range list {
		names[i] = textnorm.Normalize(r.Name)
	}

	matches := fuzzy.Find(textnorm.Normalize(query), names)
	out := make([]models.Recipe, 0, n)
	for _, m := range matches {
		if len(out) == n {
			break
		}
		out = append(out, list[m.Index])
	}
	return out
}
