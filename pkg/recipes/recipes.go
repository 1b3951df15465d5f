// Package recipes holds the recipe collection's persistence, the built-in
// seed recipes and the authoring draft.
package recipes

import (
	"fmt"

	"github.com/korjavin/pantrychef/pkg/logger"
	"github.com/korjavin/pantrychef/pkg/models"
	"github.com/korjavin/pantrychef/pkg/storage"
)

// Key is the storage key holding the recipe collection document
const Key = "recipes"

// Service persists the recipe collection
type Service struct {
	store  *storage.Store
	logger *logger.Logger
}

// New creates a new recipe service
func New(store *storage.Store) *Service {
	return &Service{
		store:  store,
		logger: logger.New("recipes"),
	}
}

// Load returns the stored recipes, or Seed when nothing usable is stored
func (s *Service) Load() storage.Decoded[[]models.Recipe] {
	d := storage.Load(s.store, Key, Seed())
	switch d.Source {
	case storage.SourceStored:
		s.logger.Debug("Loaded %d recipes", len(d.Value))
	case storage.SourceMissing:
		s.logger.Info("No recipes stored yet, seeding %d built-in recipes", len(d.Value))
	default:
		s.logger.Error("Could not read recipes (%s), using built-in recipes: %v", d.Source, d.Err)
	}
	if d.Value == nil {
		d.Value = []models.Recipe{}
	}
	return d
}

// Save overwrites the stored collection with recipes
func (s *Service) Save(recipes []models.Recipe) error {
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	if err := s.store.Set(Key, recipes); err != nil {
		s.logger.Error("Failed to save %d recipes: %v", len(recipes), err)
		return fmt.Errorf("failed to save recipes: %w", err)
	}
	return nil
}

// MaxID returns the largest id in recipes, or 0
func MaxID(recipes []models.Recipe) int64 {
	var max int64
	for _, r := range recipes {
		if r.ID > max {
			max = r.ID
		}
	}
	return max
}
