package recipes

import "github.com/korjavin/pantrychef/pkg/models"

// Seed returns the built-in recipes used on first run and whenever the stored
// collection cannot be decoded. Each call returns a fresh copy.
func Seed() []models.Recipe {
	return []models.Recipe{
		{
			ID:   1,
			Name: "Tortilla de Papas",
			Ingredients: []models.Ingredient{
				{Name: "huevo", Qty: "4 unidades"},
				{Name: "papa", Qty: "3 grandes"},
				{Name: "cebolla", Qty: "1 media"},
				{Name: "aceite", Qty: "Abundante"},
			},
			Instructions: "**Paso 1:** Pelar y cortar las papas en láminas finas.\n" +
				"- Freír en abundante aceite caliente.\n" +
				"- Añadir la cebolla picada a mitad de cocción.\n" +
				"\n" +
				"**Paso 2:** Batir los huevos y mezclar con las papas escurridas.\n" +
				"**Paso 3:** Cuajar en la sartén vuelta y vuelta.",
			Image:    "https://images.unsplash.com/photo-1565557623262-b51c2513a641?auto=format&fit=crop&w=800&q=80",
			Category: "Cena",
		},
		{
			ID:   2,
			Name: "Ensalada Caprese",
			Ingredients: []models.Ingredient{
				{Name: "tomate", Qty: "2 maduros"},
				{Name: "queso", Qty: "200g mozzarella"},
				{Name: "albahaca", Qty: "Hojas frescas"},
				{Name: "aceite", Qty: "Al gusto"},
			},
			Instructions: "- Lavar bien los tomates.\n" +
				"- Cortar el tomate y la mozzarella en rodajas del mismo grosor.\n" +
				"- Alternar una rodaja de tomate, una de queso y una hoja de albahaca.\n" +
				"**Final:** Rociar con aceite de oliva virgen extra.",
			Image:    "https://images.unsplash.com/photo-1529312266912-b33cf6227e24?auto=format&fit=crop&w=800&q=80",
			Category: "Ligero",
		},
		{
			ID:   3,
			Name: "Panqueques",
			Ingredients: []models.Ingredient{
				{Name: "harina", Qty: "1 taza"},
				{Name: "leche", Qty: "1 taza"},
				{Name: "huevo", Qty: "1 unidad"},
				{Name: "azucar", Qty: "1 cda"},
			},
			Instructions: "**Mezcla:**\n" +
				"- Juntar todos los ingredientes en la licuadora.\n" +
				"- Licuar hasta que no queden grumos.\n" +
				"\n" +
				"**Cocción:**\n" +
				"- Calentar sartén con un poco de manteca.\n" +
				"- Verter mezcla y cocinar vuelta y vuelta.",
			Image:    "https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445?auto=format&fit=crop&w=800&q=80",
			Category: "Postre",
		},
	}
}
