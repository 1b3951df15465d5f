package storage

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Source tells where a decoded value came from
type Source int

const (
	// SourceStored means the value was read and decoded successfully
	SourceStored Source = iota
	// SourceMissing means the key was never written and the fallback was used
	SourceMissing
	// SourceCorrupt means the stored bytes did not decode and the fallback was used
	SourceCorrupt
	// SourceUnavailable means the read itself failed and the fallback was used
	SourceUnavailable
)

// String returns a human-readable source
func (s Source) String() string {
	switch s {
	case SourceStored:
		return "stored"
	case SourceMissing:
		return "missing"
	case SourceCorrupt:
		return "corrupt"
	case SourceUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Decoded is the result of Load: either the stored value or the fallback,
// tagged with the reason the fallback was chosen.
type Decoded[T any] struct {
	Value  T
	Source Source
	Err    error
}

// FromFallback reports whether Value is the fallback rather than stored data
func (d Decoded[T]) FromFallback() bool {
	return d.Source != SourceStored
}

// Load reads key and decodes it into a T. It never fails: on a missing key,
// a read error or malformed JSON it returns fallback with Source and Err set.
func Load[T any](s *Store, key string, fallback T) Decoded[T] {
	data, err := s.GetRaw(key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Decoded[T]{Value: fallback, Source: SourceMissing}
		}
		return Decoded[T]{Value: fallback, Source: SourceUnavailable, Err: err}
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return Decoded[T]{
			Value:  fallback,
			Source: SourceCorrupt,
			Err:    fmt.Errorf("failed to decode %s: %w", key, err),
		}
	}
	return Decoded[T]{Value: value, Source: SourceStored}
}
