package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"Café", "cafe"},
		{"  HUEVO ", "huevo"},
		{"Azúcar", "azucar"},
		{"Piñón", "pinon"},
		{"crème brûlée", "creme brulee"},
		{"ÁÉÍÓÚ", "aeiou"},
		{"Ensalada Caprese", "ensalada caprese"},
		// ø has no decomposition and survives.
		{"Smørrebrød", "smørrebrød"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"", "Café", " Tortilla de Papas ", "ÑANDÚ", "á", "mixed Ünïcödé text", "\xff\xfe", "日本語",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestEqualAndContains(t *testing.T) {
	if !Equal("Café", "cafe") {
		t.Error("expected Café and cafe to be equal")
	}
	if !Equal("á", "á") {
		t.Error("expected decomposed and precomposed forms to be equal")
	}
	if Equal("papa", "papas") {
		t.Error("expected papa and papas to differ")
	}
	if !Contains("Tortilla de Papas", "PAPA") {
		t.Error("expected substring match ignoring case")
	}
	if !Contains("Panqueques", "") {
		t.Error("empty needle should match")
	}
	if Contains("Panqueques", "huevo") {
		t.Error("unexpected match")
	}
}
