package pantry

import (
	"fmt"

	"github.com/korjavin/pantrychef/pkg/logger"
	"github.com/korjavin/pantrychef/pkg/storage"
	"github.com/korjavin/pantrychef/pkg/textnorm"
)

// Key is the storage key holding the pantry document
const Key = "pantry"

// DefaultItems is the pantry a first run starts with
func DefaultItems() []string {
	return []string{"huevo", "aceite", "sal"}
}

// AddItem normalizes raw and appends it unless it is blank or already present.
// The input slice is never modified.
func AddItem(items []string, raw string) []string {
	clean := textnorm.Normalize(raw)
	if clean == "" || contains(items, clean) {
		return items
	}
	out := make([]string, len(items), len(items)+1)
	copy(out, items)
	return append(out, clean)
}

// RemoveItem returns items without every entry exactly equal to item.
// Callers pass already-normalized values.
func RemoveItem(items []string, item string) []string {
	out := make([]string, 0, len(items))
	for _, existing := range items {
		if existing != item {
			out = append(out, existing)
		}
	}
	return out
}

// Has reports whether the pantry holds name, comparing normalized forms
func Has(items []string, name string) bool {
	want := textnorm.Normalize(name)
	for _, existing := range items {
		if textnorm.Normalize(existing) == want {
			return true
		}
	}
	return false
}

func contains(items []string, item string) bool {
	for _, existing := range items {
		if existing == item {
			return true
		}
	}
	return false
}

// Service persists the pantry document
type Service struct {
	store  *storage.Store
	logger *logger.Logger
}

// New creates a new pantry service
func New(store *storage.Store) *Service {
	return &Service{
		store:  store,
		logger: logger.New("pantry"),
	}
}

// Load returns the stored pantry, or DefaultItems when nothing usable is stored
func (s *Service) Load() storage.Decoded[[]string] {
	d := storage.Load(s.store, Key, DefaultItems())
	switch d.Source {
	case storage.SourceStored:
		s.logger.Debug("Loaded pantry with %d items", len(d.Value))
	case storage.SourceMissing:
		s.logger.Info("No pantry stored yet, starting with %d default items", len(d.Value))
	default:
		s.logger.Error("Could not read pantry (%s), using defaults: %v", d.Source, d.Err)
	}
	if d.Value == nil {
		d.Value = []string{}
	}
	return d
}

// Save overwrites the stored pantry with items
func (s *Service) Save(items []string) error {
	if items == nil {
		items = []string{}
	}
	if err := s.store.Set(Key, items); err != nil {
		s.logger.Error("Failed to save pantry: %v", err)
		return fmt.Errorf("failed to save pantry: %w", err)
	}
	return nil
}
