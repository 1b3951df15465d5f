package recipes

import (
	"errors"
	"strings"

	"github.com/korjavin/pantrychef/pkg/models"
	"github.com/korjavin/pantrychef/pkg/richtext"
	"github.com/korjavin/pantrychef/pkg/textnorm"
)

const (
	// DefaultQuantity is used when an ingredient is added without a quantity
	DefaultQuantity = "Al gusto"
	// UserCategory tags every recipe authored by the user
	UserCategory = "Personal"
	// PlaceholderImage is used when a draft is saved without an image
	PlaceholderImage = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?auto=format&fit=crop&w=800&q=80"
)

var (
	// ErrBlankName rejects a draft whose name is empty after trimming
	ErrBlankName = errors.New("recipe name is blank")
	// ErrNoIngredients rejects a draft without ingredients
	ErrNoIngredients = errors.New("recipe has no ingredients")
)

// Draft is a recipe being authored. It becomes a Recipe through Build.
type Draft struct {
	Name         string
	Ingredients  []models.Ingredient
	Instructions string
	Image        string
}

// AddIngredient appends an ingredient with a normalized name. A blank name is
// ignored and reported as false; a blank quantity becomes DefaultQuantity.
func (d *Draft) AddIngredient(name, qty string) bool {
	clean := textnorm.Normalize(name)
	if clean == "" {
		return false
	}
	qty = strings.TrimSpace(qty)
	if qty == "" {
		qty = DefaultQuantity
	}
	d.Ingredients = append(d.Ingredients, models.Ingredient{Name: clean, Qty: qty})
	return true
}

// AppendInstructions adds text as new line(s) at the end of the
// instructions. Text right after a bullet marker continues that bullet.
func (d *Draft) AppendInstructions(text string) {
	if d.Instructions == "" || strings.HasSuffix(d.Instructions, richtext.SnippetBullet.Text()) {
		d.Instructions += text
		return
	}
	d.Instructions += "\n" + text
}

// InsertFormat inserts a formatting snippet at the end of the instructions
func (d *Draft) InsertFormat(kind richtext.Snippet) {
	n := len([]rune(d.Instructions))
	d.Instructions = richtext.InsertSnippet(d.Instructions, n, n, kind)
}

// Validate reports why the draft cannot be saved, if it cannot
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrBlankName
	}
	if len(d.Ingredients) == 0 {
		return ErrNoIngredients
	}
	return nil
}

// Build turns a valid draft into a recipe with the given id
func (d Draft) Build(id int64) (models.Recipe, error) {
	if err := d.Validate(); err != nil {
		return models.Recipe{}, err
	}

	image := d.Image
	if image == "" {
		image = PlaceholderImage
	}

	return models.Recipe{
		ID:           id,
		Name:         strings.TrimSpace(d.Name),
		Ingredients:  append([]models.Ingredient(nil), d.Ingredients...),
		Instructions: d.Instructions,
		Image:        image,
		Category:     UserCategory,
	}, nil
}
