package storage

import (
	"errors"
	"reflect"
	"testing"

	"github.com/korjavin/pantrychef/pkg/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	logger.SetLevel(logger.LevelOff)
	s, err := NewInMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSetAndGetRaw(t *testing.T) {
	s := newTestStore(t)

	if err := s.Set("pantry", []string{"huevo", "sal"}); err != nil {
		t.Fatalf("set: %v", err)
	}

	raw, err := s.GetRaw("pantry")
	if err != nil {
		t.Fatalf("get raw: %v", err)
	}
	if string(raw) != `["huevo","sal"]` {
		t.Fatalf("stored %q", raw)
	}

	if _, err := s.GetRaw("absent"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	s := newTestStore(t)
	fallback := []string{"default"}

	if err := s.Set("ok", []string{"a", "b"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.SetRaw("broken", []byte("{not json")); err != nil {
		t.Fatalf("set raw: %v", err)
	}

	tests := []struct {
		key        string
		want       []string
		wantSource Source
		wantErr    bool
	}{
		{"ok", []string{"a", "b"}, SourceStored, false},
		{"absent", fallback, SourceMissing, false},
		{"broken", fallback, SourceCorrupt, true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			d := Load(s, tt.key, fallback)
			if d.Source != tt.wantSource {
				t.Fatalf("source = %s, want %s", d.Source, tt.wantSource)
			}
			if (d.Err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", d.Err, tt.wantErr)
			}
			if !reflect.DeepEqual(d.Value, tt.want) {
				t.Fatalf("value = %v, want %v", d.Value, tt.want)
			}
			if d.FromFallback() != (tt.wantSource != SourceStored) {
				t.Fatalf("FromFallback mismatch for %s", d.Source)
			}
		})
	}
}

func TestSetOverwritesWholeDocument(t *testing.T) {
	s := newTestStore(t)

	if err := s.Set("pantry", []string{"huevo", "aceite", "sal"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set("pantry", []string{"papa"}); err != nil {
		t.Fatalf("set: %v", err)
	}

	d := Load(s, "pantry", []string(nil))
	if !reflect.DeepEqual(d.Value, []string{"papa"}) {
		t.Fatalf("got %v, want [papa]", d.Value)
	}
}
