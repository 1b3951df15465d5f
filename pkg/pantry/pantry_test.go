package pantry

import (
	"reflect"
	"testing"

	"github.com/korjavin/pantrychef/pkg/logger"
	"github.com/korjavin/pantrychef/pkg/storage"
)

func TestAddItem(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		raw   string
		want  []string
	}{
		{"normalizes", nil, "  Azúcar ", []string{"azucar"}},
		{"appends in order", []string{"huevo"}, "sal", []string{"huevo", "sal"}},
		{"dedups after normalization", []string{"huevo", "aceite", "sal"}, "HUEVO", []string{"huevo", "aceite", "sal"}},
		{"blank is a no-op", []string{"huevo"}, "   ", []string{"huevo"}},
		{"empty is a no-op", []string{"huevo"}, "", []string{"huevo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddItem(tt.items, tt.raw)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("AddItem(%v, %q) = %v, want %v", tt.items, tt.raw, got, tt.want)
			}
		})
	}
}

func TestAddItemDoesNotAlias(t *testing.T) {
	base := make([]string, 1, 4)
	base[0] = "huevo"
	a := AddItem(base, "sal")
	b := AddItem(base, "papa")
	if a[1] != "sal" || b[1] != "papa" {
		t.Fatalf("AddItem shares backing arrays: %v %v", a, b)
	}
}

func TestRemoveItem(t *testing.T) {
	items := []string{"huevo", "sal", "huevo", "aceite"}
	got := RemoveItem(items, "huevo")
	if !reflect.DeepEqual(got, []string{"sal", "aceite"}) {
		t.Fatalf("got %v", got)
	}
	if !reflect.DeepEqual(items, []string{"huevo", "sal", "huevo", "aceite"}) {
		t.Fatalf("input modified: %v", items)
	}

	// Comparison is exact; normalization is the caller's job.
	if got := RemoveItem([]string{"huevo"}, "HUEVO"); !reflect.DeepEqual(got, []string{"huevo"}) {
		t.Fatalf("expected exact comparison, got %v", got)
	}
}

func TestHas(t *testing.T) {
	items := []string{"cafe", "leche"}
	if !Has(items, "Café") {
		t.Error("expected Café to be found")
	}
	if Has(items, "azucar") {
		t.Error("unexpected azucar")
	}
}

func newService(t *testing.T) (*Service, *storage.Store) {
	t.Helper()
	logger.SetLevel(logger.LevelOff)
	store, err := storage.NewInMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return New(store), store
}

func TestServiceRoundTrip(t *testing.T) {
	svc, _ := newService(t)

	items := []string{"tomate", "queso", "albahaca", "aceite"}
	if err := svc.Save(items); err != nil {
		t.Fatalf("save: %v", err)
	}

	d := svc.Load()
	if d.Source != storage.SourceStored {
		t.Fatalf("source = %s, want stored", d.Source)
	}
	if !reflect.DeepEqual(d.Value, items) {
		t.Fatalf("got %v, want %v", d.Value, items)
	}
}

func TestServiceLoadDefaults(t *testing.T) {
	svc, store := newService(t)

	d := svc.Load()
	if d.Source != storage.SourceMissing || !reflect.DeepEqual(d.Value, DefaultItems()) {
		t.Fatalf("fresh store: got %v (%s)", d.Value, d.Source)
	}

	if err := store.SetRaw(Key, []byte("huevo,aceite")); err != nil {
		t.Fatalf("set raw: %v", err)
	}
	d = svc.Load()
	if d.Source != storage.SourceCorrupt || d.Err == nil {
		t.Fatalf("corrupt store: source %s err %v", d.Source, d.Err)
	}
	if !reflect.DeepEqual(d.Value, DefaultItems()) {
		t.Fatalf("corrupt store: got %v", d.Value)
	}
}

func TestServiceSaveEmpty(t *testing.T) {
	svc, store := newService(t)

	if err := svc.Save(nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := store.GetRaw(Key)
	if err != nil {
		t.Fatalf("get raw: %v", err)
	}
	if string(raw) != "[]" {
		t.Fatalf("stored %q, want []", raw)
	}
	if d := svc.Load(); d.Source != storage.SourceStored || len(d.Value) != 0 {
		t.Fatalf("got %v (%s)", d.Value, d.Source)
	}
}
