// Package kitchen owns the application state: the pantry, the recipe
// collection and the recipe being authored. Every mutation goes through a
// named method that persists the changed collection before returning.
package kitchen

import (
	"errors"
	"fmt"
	"sync"

	"github.com/korjavin/pantrychef/pkg/logger"
	"github.com/korjavin/pantrychef/pkg/matcher"
	"github.com/korjavin/pantrychef/pkg/models"
	"github.com/korjavin/pantrychef/pkg/pantry"
	"github.com/korjavin/pantrychef/pkg/recipes"
	"github.com/korjavin/pantrychef/pkg/storage"
	"github.com/korjavin/pantrychef/pkg/textnorm"
)

var (
	// ErrRecipeNotFound is returned when no recipe has the requested id
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrNoDraft is returned by draft operations before StartDraft
	ErrNoDraft = errors.New("no recipe draft in progress")
)

// Kitchen is the single owner of pantry and recipe state. It is safe for
// concurrent use.
type Kitchen struct {
	mu sync.Mutex

	pantryService *pantry.Service
	recipeService *recipes.Service
	ids           *recipes.IDSource
	logger        *logger.Logger

	pantry  []string
	recipes []models.Recipe
	draft   *recipes.Draft
}

// New creates a kitchen with empty state. Call Load before use.
func New(pantryService *pantry.Service, recipeService *recipes.Service) *Kitchen {
	return &Kitchen{
		pantryService: pantryService,
		recipeService: recipeService,
		ids:           recipes.NewIDSource(0),
		logger:        logger.New("kitchen"),
		pantry:        []string{},
		recipes:       []models.Recipe{},
	}
}

// Load reads the pantry and recipes from storage. Unusable stored data is
// replaced in memory by the built-in defaults; a first run also writes the
// defaults so the store reflects what the user sees.
func (k *Kitchen) Load() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	p := k.pantryService.Load()
	r := k.recipeService.Load()

	k.pantry = p.Value
	k.recipes = r.Value
	k.ids.Observe(recipes.MaxID(k.recipes))

	k.logger.Info("Loaded %d pantry items (%s) and %d recipes (%s)", len(k.pantry), p.Source, len(k.recipes), r.Source)

	var errs []error
	if p.Source == storage.SourceMissing {
		errs = append(errs, k.savePantry())
	}
	if r.Source == storage.SourceMissing {
		errs = append(errs, k.saveRecipes())
	}
	return errors.Join(errs...)
}

// Pantry returns a copy of the pantry in insertion order
func (k *Kitchen) Pantry() []string {
	k.mu.Lock()
	defer k.mu.Unlock()
	return append([]string(nil), k.pantry...)
}

// Recipes returns a copy of the recipe collection in stored order
func (k *Kitchen) Recipes() []models.Recipe {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.recipesCopy()
}

func (k *Kitchen) recipesCopy() []models.Recipe {
	out := make([]models.Recipe, len(k.recipes))
	for i, r := range k.recipes {
		out[i] = r.Clone()
	}
	return out
}

// AddPantryItem adds raw to the pantry. It reports false without touching
// storage when raw is blank or already present.
func (k *Kitchen) AddPantryItem(raw string) (bool, error) {
	added, err := k.AddPantryItems([]string{raw})
	return len(added) > 0, err
}

// AddPantryItems adds every item and saves once. It returns the normalized
// names that were actually new.
func (k *Kitchen) AddPantryItems(raws []string) ([]string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	var added []string
	next := k.pantry
	for _, raw := range raws {
		before := len(next)
		next = pantry.AddItem(next, raw)
		if len(next) > before {
			added = append(added, next[len(next)-1])
		}
	}
	if len(added) == 0 {
		return nil, nil
	}

	k.pantry = next
	k.logger.Info("Added %v to the pantry", added)
	return added, k.savePantry()
}

// RemovePantryItem removes item from the pantry. An exact match is tried
// first so entries stored without normalization can still be removed;
// otherwise item is normalized before comparing.
func (k *Kitchen) RemovePantryItem(item string) (bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	clean := item
	next := pantry.RemoveItem(k.pantry, item)
	if len(next) == len(k.pantry) {
		clean = textnorm.Normalize(item)
		next = pantry.RemoveItem(k.pantry, clean)
	}
	if len(next) == len(k.pantry) {
		return false, nil
	}

	k.pantry = next
	k.logger.Info("Removed %s from the pantry", clean)
	return true, k.savePantry()
}

// ClearPantry empties the pantry
func (k *Kitchen) ClearPantry() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.pantry = []string{}
	k.logger.Info("Pantry cleared")
	return k.savePantry()
}

// View filters the recipes by query and ranks them against the pantry
func (k *Kitchen) View(query string, mode models.SearchMode) []models.RankedRecipe {
	k.mu.Lock()
	list := k.recipesCopy()
	items := append([]string(nil), k.pantry...)
	k.mu.Unlock()

	return matcher.FilterAndRank(list, items, query, mode)
}

// Recipe returns one recipe with its current status
func (k *Kitchen) Recipe(id int64) (models.RankedRecipe, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	for _, r := range k.recipes {
		if r.ID == id {
			return models.RankedRecipe{
				Recipe: r.Clone(),
				Status: matcher.ComputeStatus(r, k.pantry),
			}, nil
		}
	}
	return models.RankedRecipe{}, fmt.Errorf("%w: %d", ErrRecipeNotFound, id)
}

// ShoppingList returns the ingredients of a recipe the pantry lacks
func (k *Kitchen) ShoppingList(id int64) ([]models.Ingredient, error) {
	ranked, err := k.Recipe(id)
	if err != nil {
		return nil, err
	}
	return ranked.Status.Missing, nil
}

func (k *Kitchen) savePantry() error {
	return k.pantryService.Save(append([]string(nil), k.pantry...))
}

func (k *Kitchen) saveRecipes() error {
	return k.recipeService.Save(k.recipesCopy())
}
