package matcher

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/korjavin/pantrychef/pkg/models"
)

func tortilla() models.Recipe {
	return models.Recipe{
		ID:   1,
		Name: "Tortilla de Papas",
		Ingredients: []models.Ingredient{
			{Name: "huevo", Qty: "4 unidades"},
			{Name: "papa", Qty: "3 grandes"},
			{Name: "cebolla", Qty: "1 media"},
			{Name: "aceite", Qty: "Abundante"},
		},
	}
}

func names(ingredients []models.Ingredient) []string {
	out := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		out = append(out, ing.Name)
	}
	return out
}

func TestComputeStatusScenarios(t *testing.T) {
	tests := []struct {
		name        string
		pantry      []string
		wantMissing []string
		wantPct     float64
		wantCook    bool
	}{
		{"partial pantry", []string{"huevo", "aceite", "sal"}, []string{"papa", "cebolla"}, 50, false},
		{"full pantry", []string{"huevo", "papa", "cebolla", "aceite"}, []string{}, 100, true},
		{"empty pantry", nil, []string{"huevo", "papa", "cebolla", "aceite"}, 0, false},
		{"accents and case", []string{"HUEVO", "Papá", " cebolla ", "Aceite"}, []string{}, 100, true},
		{"no substring matching", []string{"huevos", "papas", "cebollas", "aceite de oliva"}, []string{"huevo", "papa", "cebolla", "aceite"}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := ComputeStatus(tortilla(), tt.pantry)
			if got := names(st.Missing); !reflect.DeepEqual(got, tt.wantMissing) {
				t.Errorf("missing = %v, want %v", got, tt.wantMissing)
			}
			if st.MatchPercentage != tt.wantPct {
				t.Errorf("match = %v, want %v", st.MatchPercentage, tt.wantPct)
			}
			if st.CanCook != tt.wantCook {
				t.Errorf("canCook = %v, want %v", st.CanCook, tt.wantCook)
			}
		})
	}
}

func TestComputeStatusEmptyRecipe(t *testing.T) {
	st := ComputeStatus(models.Recipe{Name: "Agua"}, []string{"sal"})
	if !st.CanCook || st.MatchPercentage != 100 || len(st.Missing) != 0 {
		t.Fatalf("empty recipe should be complete and cookable, got %+v", st)
	}
}

func TestMissingIsOrderedSubsequence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	universe := []string{"huevo", "papa", "cebolla", "aceite", "sal", "leche", "harina", "tomate"}

	for i := 0; i < 200; i++ {
		var recipe models.Recipe
		for _, name := range universe {
			if rng.Intn(2) == 0 {
				recipe.Ingredients = append(recipe.Ingredients, models.Ingredient{Name: name})
			}
		}
		var pantry []string
		for _, name := range universe {
			if rng.Intn(2) == 0 {
				pantry = append(pantry, name)
			}
		}

		st := ComputeStatus(recipe, pantry)

		// Walk the requirements once; each missing entry must appear in order.
		j := 0
		satisfied := 0
		for _, ing := range recipe.Ingredients {
			if j < len(st.Missing) && st.Missing[j] == ing {
				j++
				continue
			}
			satisfied++
		}
		if j != len(st.Missing) {
			t.Fatalf("missing %v is not a subsequence of %v", st.Missing, recipe.Ingredients)
		}
		if len(st.Missing)+satisfied != len(recipe.Ingredients) {
			t.Fatalf("|missing|+|satisfied| != |L| for %v", recipe.Ingredients)
		}
		if st.CanCook != (len(st.Missing) == 0) {
			t.Fatalf("canCook inconsistent with missing for %v", recipe.Ingredients)
		}
	}
}

func TestMatchPercentageMonotonic(t *testing.T) {
	recipe := tortilla()
	additions := []string{"sal", "aceite", "leche", "papa", "huevo", "cebolla"}

	var pantry []string
	last := ComputeStatus(recipe, pantry).MatchPercentage
	for _, item := range additions {
		pantry = append(pantry, item)
		pct := ComputeStatus(recipe, pantry).MatchPercentage
		if pct < last {
			t.Fatalf("adding %q decreased match from %v to %v", item, last, pct)
		}
		last = pct
	}
	if last != 100 {
		t.Fatalf("expected 100 after adding every ingredient, got %v", last)
	}
}

func sampleRecipes() []models.Recipe {
	return []models.Recipe{
		tortilla(),
		{
			ID:   2,
			Name: "Ensalada Caprese",
			Ingredients: []models.Ingredient{
				{Name: "tomate"}, {Name: "queso"}, {Name: "albahaca"}, {Name: "aceite"},
			},
		},
		{
			ID:   3,
			Name: "Panqueques",
			Ingredients: []models.Ingredient{
				{Name: "harina"}, {Name: "leche"}, {Name: "huevo"}, {Name: "azucar"},
			},
		},
		{
			ID:          4,
			Name:        "Huevo Frito",
			Ingredients: []models.Ingredient{{Name: "huevo"}, {Name: "aceite"}},
		},
	}
}

func TestFilterAndRankEmptyQueryReturnsAllRanked(t *testing.T) {
	pantry := []string{"huevo", "aceite", "sal"}
	ranked := FilterAndRank(sampleRecipes(), pantry, "", models.SearchByName)

	if len(ranked) != 4 {
		t.Fatalf("expected 4 recipes, got %d", len(ranked))
	}

	var order []int64
	for _, r := range ranked {
		order = append(order, r.Recipe.ID)
	}
	// Huevo Frito cookable; Tortilla 50%; Caprese 25% and Panqueques 25% by name.
	want := []int64{4, 1, 2, 3}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
}

func TestFilterAndRankOrdering(t *testing.T) {
	pantry := []string{"tomate", "queso", "albahaca", "aceite", "huevo", "harina"}
	ranked := FilterAndRank(sampleRecipes(), pantry, "  ", models.SearchByName)

	seenUncookable := false
	for i, r := range ranked {
		if !r.Status.CanCook {
			seenUncookable = true
		} else if seenUncookable {
			t.Fatalf("cookable recipe %q ranked after an uncookable one", r.Recipe.Name)
		}
		if i > 0 {
			prev := ranked[i-1]
			if prev.Status.CanCook == r.Status.CanCook && prev.Status.MatchPercentage < r.Status.MatchPercentage {
				t.Fatalf("%q (%v) ranked before %q (%v)", prev.Recipe.Name, prev.Status.MatchPercentage, r.Recipe.Name, r.Status.MatchPercentage)
			}
		}
	}
}

func TestFilterAndRankQueries(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		mode    models.SearchMode
		wantIDs []int64
	}{
		{"by name accent-insensitive", "TORTÍLLA", models.SearchByName, []int64{1}},
		{"by name substring", "pa", models.SearchByName, []int64{1, 3}},
		{"by name no match", "sopa", models.SearchByName, []int64{}},
		{"by ingredient", "huev", models.SearchByIngredient, []int64{4, 1, 3}},
		{"by ingredient exact", "albahaca", models.SearchByIngredient, []int64{2}},
		{"name query ignored in ingredient mode", "caprese", models.SearchByIngredient, []int64{}},
	}

	pantry := []string{"huevo", "aceite"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := FilterAndRank(sampleRecipes(), pantry, tt.query, tt.mode)
			got := make([]int64, 0, len(ranked))
			for _, r := range ranked {
				got = append(got, r.Recipe.ID)
			}
			if !reflect.DeepEqual(got, tt.wantIDs) {
				t.Fatalf("ids = %v, want %v", got, tt.wantIDs)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	r := tortilla()
	if !Matches(r, "", models.SearchByName) {
		t.Error("empty query should match")
	}
	if !Matches(r, "cebolla", models.SearchByIngredient) {
		t.Error("expected ingredient match")
	}
	if Matches(r, "cebolla", models.SearchByName) {
		t.Error("ingredient should not match by name")
	}
}
