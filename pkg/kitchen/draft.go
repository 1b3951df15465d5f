package kitchen

import (
	"github.com/korjavin/pantrychef/pkg/models"
	"github.com/korjavin/pantrychef/pkg/recipes"
	"github.com/korjavin/pantrychef/pkg/richtext"
)

// StartDraft begins a new, empty recipe draft, discarding any previous one
func (k *Kitchen) StartDraft() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.draft = &recipes.Draft{}
}

// Draft returns a copy of the current draft
func (k *Kitchen) Draft() (recipes.Draft, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.draft == nil {
		return recipes.Draft{}, false
	}
	d := *k.draft
	d.Ingredients = append([]models.Ingredient(nil), k.draft.Ingredients...)
	return d, true
}

// DiscardDraft drops the current draft
func (k *Kitchen) DiscardDraft() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.draft = nil
}

func (k *Kitchen) withDraft(fn func(d *recipes.Draft)) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.draft == nil {
		return ErrNoDraft
	}
	fn(k.draft)
	return nil
}

// SetDraftName sets the name of the draft
func (k *Kitchen) SetDraftName(name string) error {
	return k.withDraft(func(d *recipes.Draft) { d.Name = name })
}

// AddDraftIngredient adds an ingredient to the draft. It reports false when
// the name is blank.
func (k *Kitchen) AddDraftIngredient(name, qty string) (bool, error) {
	var added bool
	err := k.withDraft(func(d *recipes.Draft) { added = d.AddIngredient(name, qty) })
	return added, err
}

// AppendDraftInstructions appends text to the draft instructions
func (k *Kitchen) AppendDraftInstructions(text string) error {
	return k.withDraft(func(d *recipes.Draft) { d.AppendInstructions(text) })
}

// InsertDraftFormat appends a formatting snippet to the draft instructions
func (k *Kitchen) InsertDraftFormat(kind richtext.Snippet) error {
	return k.withDraft(func(d *recipes.Draft) { d.InsertFormat(kind) })
}

// SetDraftImage sets the image reference of the draft
func (k *Kitchen) SetDraftImage(ref string) error {
	return k.withDraft(func(d *recipes.Draft) { d.Image = ref })
}

// SaveDraft validates the draft, assigns it a fresh id and appends it to the
// collection. An invalid draft is left in place and the collection is not
// changed. The draft is consumed once the recipe is in the collection, even
// if persisting it fails.
func (k *Kitchen) SaveDraft() (models.Recipe, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.draft == nil {
		return models.Recipe{}, ErrNoDraft
	}
	if err := k.draft.Validate(); err != nil {
		return models.Recipe{}, err
	}

	recipe, err := k.draft.Build(k.ids.Next())
	if err != nil {
		return models.Recipe{}, err
	}

	k.recipes = append(k.recipes, recipe)
	k.draft = nil
	k.logger.Info("Saved recipe %q (id %d, %d ingredients)", recipe.Name, recipe.ID, len(recipe.Ingredients))

	return recipe.Clone(), k.saveRecipes()
}
